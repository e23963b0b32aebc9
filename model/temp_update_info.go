package model

import "time"

// TempUpdateInfo 临时更新信息：当某个操作需要修改"别的用户"的关系列表时，
// 先写入一条待处理记录，等目标用户下次被加载时再懒式应用并删除。
// 处理顺序按创建时间倒序（最新的先应用）。
type TempUpdateInfo struct {
	ID        string    `gorm:"primarykey;type:varchar(36)" json:"id"`
	UserID    string    `gorm:"type:varchar(36);not null;index" json:"user_id"` // 目标用户
	Value     string    `gorm:"size:36;not null" json:"value"`                  // 要增加或删除的id
	CreatorID string    `gorm:"type:varchar(36);not null" json:"creator_id"`
	IsDelete  bool      `gorm:"default:false" json:"is_delete"`
	CreatedAt time.Time `gorm:"index" json:"create_time"`
}
