package model

import "time"

// TokenBlacklist 已注销的令牌。只追加不删除，命中即永久失效，
// 以原始 token 字符串为主键做精确查找。
type TokenBlacklist struct {
	Token     string    `gorm:"primarykey;size:512" json:"token"`
	CreatedAt time.Time `json:"create_time"`
}
