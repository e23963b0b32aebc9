package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"blogapi/dao"
	"blogapi/internal/metrics"
	"blogapi/internal/strlist"
	"blogapi/model"

	"gorm.io/gorm"
)

var ErrCommentNotFound = errors.New("评论不存在")

type CommentService struct {
	dao        *dao.CommentDAO
	articleDAO *dao.ArticleDAO
	userDAO    *dao.UserDAO
}

func NewCommentService(dao *dao.CommentDAO, articleDAO *dao.ArticleDAO, userDAO *dao.UserDAO) *CommentService {
	return &CommentService{dao: dao, articleDAO: articleDAO, userDAO: userDAO}
}

// Create 创建评论，同时把评论id追加进作者的 comment_list 和文章的 comments
func (s *CommentService) Create(ctx context.Context, author *model.User, articleID, content string) (*model.Comment, error) {
	article, err := s.articleDAO.GetByID(ctx, articleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}

	comment := &model.Comment{
		ID:        uuid.New().String(),
		Content:   content,
		AuthorID:  author.ID,
		ArticleID: articleID,
	}
	if err := s.dao.CreateComment(ctx, comment); err != nil {
		return nil, err
	}

	if newList, changed := strlist.Apply(author.CommentList, comment.ID, false); changed {
		if err := s.userDAO.UpdateFields(ctx, author.ID, map[string]interface{}{
			"comment_list": newList,
		}); err != nil {
			return nil, err
		}
		author.CommentList = newList
	}
	if newComments, changed := strlist.Apply(article.Comments, comment.ID, false); changed {
		if err := s.articleDAO.UpdateFields(ctx, articleID, map[string]interface{}{
			"comments": newComments,
		}); err != nil {
			return nil, err
		}
	}
	return comment, nil
}

// UpdateVote 评论只支持点赞数 +1，内容不可更新
func (s *CommentService) UpdateVote(ctx context.Context, id, voteNumber string) (*model.Comment, error) {
	if voteNumber != "1" {
		return nil, ErrVoteDelta
	}
	comment, err := s.dao.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	comment.VoteNumber++
	if err := s.dao.UpdateVoteNumber(ctx, id, comment.VoteNumber); err != nil {
		return nil, err
	}
	metrics.IncVote("comment")
	return comment, nil
}

// Get 获取单条评论
func (s *CommentService) Get(ctx context.Context, id string) (*model.Comment, error) {
	comment, err := s.dao.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	return comment, nil
}
