// Package strlist 处理数据表中以逗号分隔字符串存储的 id 列表字段。
// 字段有三种状态：NULL（无任何关系）、单个 id、多个逗号连接的 id。
package strlist

import "strings"

const delimiter = ","

// Apply returns the new field value after adding or removing value.
// The second return reports whether the field should be written back;
// it is false only when value is empty (no-op, keep the old value).
//
// 1. 原值为 NULL：增加 → 新值本身；删除 → 仍为 NULL
// 2. 原值非空：增加 → old + "," + value（不去重）；删除 → 移除第一个匹配项
func Apply(old *string, value string, isDelete bool) (*string, bool) {
	if value == "" {
		return old, false
	}
	if old == nil || *old == "" {
		if isDelete {
			return nil, true
		}
		v := value
		return &v, true
	}
	if isDelete {
		parts := strings.Split(*old, delimiter)
		for i, p := range parts {
			if p == value {
				joined := strings.Join(append(parts[:i], parts[i+1:]...), delimiter)
				if joined == "" {
					return nil, true
				}
				return &joined, true
			}
		}
		// 未找到视为成功，列表保持原样
		return old, true
	}
	appended := *old + delimiter + value
	return &appended, true
}

// Decode 将字段值转为显式的 id 切片，NULL 对应空切片。
func Decode(s *string) []string {
	if s == nil || *s == "" {
		return []string{}
	}
	parts := strings.Split(*s, delimiter)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	return out
}

// Encode joins ids back into the stored form; an empty slice maps to NULL.
func Encode(ids []string) *string {
	if len(ids) == 0 {
		return nil
	}
	joined := strings.Join(ids, delimiter)
	return &joined
}
