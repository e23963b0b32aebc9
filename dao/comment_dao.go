package dao

import (
	"context"

	"blogapi/model"

	"gorm.io/gorm"
)

type CommentDAO struct {
	db *gorm.DB
}

func NewCommentDAO(db *gorm.DB) *CommentDAO {
	return &CommentDAO{db: db}
}

func (dao *CommentDAO) CreateComment(ctx context.Context, comment *model.Comment) error {
	return dao.db.WithContext(ctx).Create(comment).Error
}

func (dao *CommentDAO) GetByID(ctx context.Context, id string) (*model.Comment, error) {
	var comment model.Comment
	err := dao.db.WithContext(ctx).Where("id = ?", id).First(&comment).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// UpdateVoteNumber 只有点赞数可以变化，评论内容创建后不可修改。
func (dao *CommentDAO) UpdateVoteNumber(ctx context.Context, id string, voteNumber int) error {
	return dao.db.WithContext(ctx).Model(&model.Comment{}).Where("id = ?", id).Update("vote_number", voteNumber).Error
}
