package model

import (
	"time"

	"blogapi/internal/strlist"
)

// Article 文章模型
type Article struct {
	ID         string    `gorm:"primarykey;type:varchar(36)" json:"id"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	AuthorID   string    `gorm:"type:varchar(36);not null;index" json:"author_id"`
	VoteNumber int       `gorm:"default:0" json:"vote_number"`
	Comments   *string   `gorm:"type:text" json:"-"` // 逗号分隔的评论id列表
	Selected   bool      `gorm:"default:false" json:"selected"`
	CreatedAt  time.Time `gorm:"index" json:"create_time"`
}

// ArticleView 将 comments 解码为数组后的响应视图。
type ArticleView struct {
	ID         string    `json:"id"`
	Content    string    `json:"content"`
	AuthorID   string    `json:"author_id"`
	VoteNumber int       `json:"vote_number"`
	Comments   []string  `json:"comments"`
	Selected   bool      `json:"selected"`
	CreatedAt  time.Time `json:"create_time"`
}

func (a *Article) View() ArticleView {
	return ArticleView{
		ID:         a.ID,
		Content:    a.Content,
		AuthorID:   a.AuthorID,
		VoteNumber: a.VoteNumber,
		Comments:   strlist.Decode(a.Comments),
		Selected:   a.Selected,
		CreatedAt:  a.CreatedAt,
	}
}

// ArticleViews 批量转换，列表接口使用。
func ArticleViews(articles []Article) []ArticleView {
	views := make([]ArticleView, 0, len(articles))
	for i := range articles {
		views = append(views, articles[i].View())
	}
	return views
}
