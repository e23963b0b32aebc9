package service

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"blogapi/dao"
	"blogapi/internal/metrics"
	"blogapi/internal/remote"
	"blogapi/internal/strlist"
	"blogapi/model"

	"gorm.io/gorm"
)

// 分页默认值
const (
	DefaultPage    = 1
	DefaultPerPage = 10
)

var (
	ErrArticleNotFound = errors.New("文章不存在")
	// 点赞只接受字面值 "1"，其它值一律拒绝而不是截断
	ErrVoteDelta = errors.New("点赞数量只能加1")
)

type ArticleService struct {
	dao     *dao.ArticleDAO
	userDAO *dao.UserDAO
	story   *remote.StoryClient
	logger  *zap.Logger
}

func NewArticleService(dao *dao.ArticleDAO, userDAO *dao.UserDAO, story *remote.StoryClient, logger *zap.Logger) *ArticleService {
	return &ArticleService{dao: dao, userDAO: userDAO, story: story, logger: logger}
}

// Create 创建文章并把文章id追加进作者的 published_article_list
func (s *ArticleService) Create(ctx context.Context, author *model.User, content string) (*model.Article, error) {
	article := &model.Article{
		ID:       uuid.New().String(),
		Content:  content,
		AuthorID: author.ID,
	}
	if err := s.dao.CreateArticle(ctx, article); err != nil {
		return nil, err
	}
	if newList, changed := strlist.Apply(author.PublishedArticleList, article.ID, false); changed {
		if err := s.userDAO.UpdateFields(ctx, author.ID, map[string]interface{}{
			"published_article_list": newList,
		}); err != nil {
			return nil, err
		}
		author.PublishedArticleList = newList
	}
	return article, nil
}

// Update 更新文章内容和/或点赞数。点赞数增量只能是 "1"，
// 点赞同时把文章id追加进点赞用户的 loved_article_list。
func (s *ArticleService) Update(ctx context.Context, voter *model.User, id, content, voteNumber string) (*model.Article, error) {
	if voteNumber != "" && voteNumber != "1" {
		return nil, ErrVoteDelta
	}

	article, err := s.dao.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}

	fields := map[string]interface{}{}
	if content != "" {
		fields["content"] = content
		article.Content = content
	}
	if voteNumber == "1" {
		article.VoteNumber++
		fields["vote_number"] = article.VoteNumber
	}
	if len(fields) > 0 {
		if err := s.dao.UpdateFields(ctx, id, fields); err != nil {
			return nil, err
		}
	}

	if voteNumber == "1" {
		metrics.IncVote("article")
		if newList, changed := strlist.Apply(voter.LovedArticleList, id, false); changed {
			if err := s.userDAO.UpdateFields(ctx, voter.ID, map[string]interface{}{
				"loved_article_list": newList,
			}); err != nil {
				return nil, err
			}
			voter.LovedArticleList = newList
		}
	}
	return article, nil
}

// Get 获取单篇文章
func (s *ArticleService) Get(ctx context.Context, id string) (*model.Article, error) {
	article, err := s.dao.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}
	return article, nil
}

func pageOffset(page, perPage int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	return (page - 1) * perPage, perPage
}

// ListByCreateTime 最新文章分页，hasMore 表示取满一页
func (s *ArticleService) ListByCreateTime(ctx context.Context, page, perPage int) ([]model.Article, bool, error) {
	offset, limit := pageOffset(page, perPage)
	articles, err := s.dao.ListByCreateTime(ctx, offset, limit)
	if err != nil {
		return nil, false, err
	}
	return articles, len(articles) == limit, nil
}

// ListSelected 精选文章分页
func (s *ArticleService) ListSelected(ctx context.Context, page, perPage int) ([]model.Article, bool, error) {
	offset, limit := pageOffset(page, perPage)
	articles, err := s.dao.ListSelected(ctx, offset, limit)
	if err != nil {
		return nil, false, err
	}
	return articles, len(articles) == limit, nil
}

// ListByFollower 当前用户 follower_list 中作者们的文章
func (s *ArticleService) ListByFollower(ctx context.Context, user *model.User, page, perPage int) ([]model.Article, bool, error) {
	authorIDs := strlist.Decode(user.FollowerList)
	if len(authorIDs) == 0 {
		return nil, false, nil
	}
	offset, limit := pageOffset(page, perPage)
	articles, err := s.dao.ListByAuthors(ctx, authorIDs, offset, limit)
	if err != nil {
		return nil, false, err
	}
	return articles, len(articles) == limit, nil
}

// Random 从外部故事接口拉取一批随机文章
func (s *ArticleService) Random(ctx context.Context) ([]json.RawMessage, error) {
	stories, err := s.story.RandomArticles(ctx)
	if err != nil {
		s.logger.Warn("random article fetch failed", zap.Error(err))
		return nil, err
	}
	return stories, nil
}
