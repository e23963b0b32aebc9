package model

import (
	"time"

	"blogapi/internal/strlist"
)

// 性别枚举值，请求中以 "0"/"1" 传入
const (
	GenderMale   = "MALE"
	GenderFemale = "FEMALE"
)

// User 用户模型
// 七个 *_list 字段为逗号分隔的 id 列表，NULL 表示没有任何关系。
type User struct {
	ID                   string    `gorm:"primarykey;type:varchar(36)" json:"id"`
	Name                 string    `gorm:"not null;size:50" json:"name"`
	Avatar               string    `gorm:"size:255" json:"avatar"`
	Phone                *string   `gorm:"size:11;index" json:"phone,omitempty"`
	Password             *string   `gorm:"size:255" json:"-"` // bcrypt 哈希，忽略JSON序列化
	Gender               *string   `gorm:"size:10" json:"gender,omitempty"`
	CommentList          *string   `gorm:"column:comment_list;type:text" json:"-"`
	CollectedArticleList *string   `gorm:"column:collected_article_list;type:text" json:"-"`
	PublishedArticleList *string   `gorm:"column:published_article_list;type:text" json:"-"`
	LovedArticleList     *string   `gorm:"column:loved_article_list;type:text" json:"-"`
	FollowerList         *string   `gorm:"column:follower_list;type:text" json:"-"`
	FollowingList        *string   `gorm:"column:following_list;type:text" json:"-"`
	ReadHistoryList      *string   `gorm:"column:read_history_list;type:text" json:"-"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// UserProfile 返回给前端的用户视图，列表字段已解码为数组，不含密码。
type UserProfile struct {
	ID                   string   `json:"id"`
	Name                 string   `json:"name"`
	Avatar               string   `json:"avatar"`
	Phone                *string  `json:"phone"`
	Gender               *string  `json:"gender"`
	CommentList          []string `json:"comment_list"`
	CollectedArticleList []string `json:"collected_article_list"`
	PublishedArticleList []string `json:"published_article_list"`
	LovedArticleList     []string `json:"loved_article_list"`
	FollowerList         []string `json:"follower_list"`
	FollowingList        []string `json:"following_list"`
	ReadHistoryList      []string `json:"read_history_list"`
}

// Profile 数组字符串转数组
func (u *User) Profile() UserProfile {
	return UserProfile{
		ID:                   u.ID,
		Name:                 u.Name,
		Avatar:               u.Avatar,
		Phone:                u.Phone,
		Gender:               u.Gender,
		CommentList:          strlist.Decode(u.CommentList),
		CollectedArticleList: strlist.Decode(u.CollectedArticleList),
		PublishedArticleList: strlist.Decode(u.PublishedArticleList),
		LovedArticleList:     strlist.Decode(u.LovedArticleList),
		FollowerList:         strlist.Decode(u.FollowerList),
		FollowingList:        strlist.Decode(u.FollowingList),
		ReadHistoryList:      strlist.Decode(u.ReadHistoryList),
	}
}
