package model

import "time"

// Comment 评论模型，创建后内容不可修改，只有点赞数会变化。
type Comment struct {
	ID         string    `gorm:"primarykey;type:varchar(36)" json:"id"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	AuthorID   string    `gorm:"type:varchar(36);not null;index" json:"author_id"`
	ArticleID  string    `gorm:"type:varchar(36);not null;index" json:"article_id"`
	VoteNumber int       `gorm:"default:0" json:"vote_number"`
	CreatedAt  time.Time `json:"create_time"`
}
