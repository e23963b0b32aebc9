package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogapi/dao"
	"blogapi/model"
)

func newArticleFixture(t *testing.T) (*ArticleService, *dao.UserDAO, *dao.ArticleDAO) {
	db := setupTestDB(t)
	userDAO := dao.NewUserDAO(db)
	articleDAO := dao.NewArticleDAO(db)
	svc := NewArticleService(articleDAO, userDAO, nil, testLogger())
	return svc, userDAO, articleDAO
}

func TestCreateArticleAppendsPublishedList(t *testing.T) {
	svc, userDAO, _ := newArticleFixture(t)
	ctx := context.Background()

	author := &model.User{ID: "u1", Name: "u1"}
	require.NoError(t, userDAO.CreateUser(ctx, author))

	first, err := svc.Create(ctx, author, "第一篇")
	require.NoError(t, err)
	second, err := svc.Create(ctx, author, "第二篇")
	require.NoError(t, err)

	loaded, err := userDAO.GetByID(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, loaded.PublishedArticleList)
	assert.Equal(t, first.ID+","+second.ID, *loaded.PublishedArticleList)
}

// 点赞增量只接受 "1"，其它值报校验错误且点赞数不变
func TestUpdateArticleRejectsNonUnitVote(t *testing.T) {
	svc, userDAO, articleDAO := newArticleFixture(t)
	ctx := context.Background()

	voter := &model.User{ID: "u1", Name: "u1"}
	require.NoError(t, userDAO.CreateUser(ctx, voter))
	require.NoError(t, articleDAO.CreateArticle(ctx, &model.Article{ID: "a1", Content: "c", AuthorID: "u1"}))

	_, err := svc.Update(ctx, voter, "a1", "", "2")
	assert.ErrorIs(t, err, ErrVoteDelta)

	loaded, err := articleDAO.GetByID(ctx, "a1")
	require.NoError(t, err)
	assert.Zero(t, loaded.VoteNumber)
}

func TestUpdateArticleVoteIncrementsAndRecordsLoved(t *testing.T) {
	svc, userDAO, articleDAO := newArticleFixture(t)
	ctx := context.Background()

	voter := &model.User{ID: "u1", Name: "u1"}
	require.NoError(t, userDAO.CreateUser(ctx, voter))
	require.NoError(t, articleDAO.CreateArticle(ctx, &model.Article{ID: "a1", Content: "c", AuthorID: "u2", VoteNumber: 3}))

	article, err := svc.Update(ctx, voter, "a1", "", "1")
	require.NoError(t, err)
	assert.Equal(t, 4, article.VoteNumber)

	loadedVoter, err := userDAO.GetByID(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, loadedVoter.LovedArticleList)
	assert.Equal(t, "a1", *loadedVoter.LovedArticleList)
}

func TestUpdateArticleContentOnly(t *testing.T) {
	svc, userDAO, articleDAO := newArticleFixture(t)
	ctx := context.Background()

	voter := &model.User{ID: "u1", Name: "u1"}
	require.NoError(t, userDAO.CreateUser(ctx, voter))
	require.NoError(t, articleDAO.CreateArticle(ctx, &model.Article{ID: "a1", Content: "old", AuthorID: "u1"}))

	article, err := svc.Update(ctx, voter, "a1", "new", "")
	require.NoError(t, err)
	assert.Equal(t, "new", article.Content)
	assert.Zero(t, article.VoteNumber)

	// 没点赞就不动 loved_article_list
	loaded, err := userDAO.GetByID(ctx, "u1")
	require.NoError(t, err)
	assert.Nil(t, loaded.LovedArticleList)
}

func TestUpdateArticleNotFound(t *testing.T) {
	svc, userDAO, _ := newArticleFixture(t)
	ctx := context.Background()

	voter := &model.User{ID: "u1", Name: "u1"}
	require.NoError(t, userDAO.CreateUser(ctx, voter))

	_, err := svc.Update(ctx, voter, "missing", "x", "")
	assert.ErrorIs(t, err, ErrArticleNotFound)
}

func TestListByCreateTimeHasMore(t *testing.T) {
	svc, _, articleDAO := newArticleFixture(t)
	ctx := context.Background()

	for i := 0; i < 11; i++ {
		require.NoError(t, articleDAO.CreateArticle(ctx, &model.Article{
			ID: string(rune('a'+i)) + "-art", Content: "c", AuthorID: "u1",
		}))
	}

	articles, hasMore, err := svc.ListByCreateTime(ctx, 1, 10)
	require.NoError(t, err)
	assert.Len(t, articles, 10)
	assert.True(t, hasMore)

	articles, hasMore, err = svc.ListByCreateTime(ctx, 2, 10)
	require.NoError(t, err)
	assert.Len(t, articles, 1)
	assert.False(t, hasMore)
}

func TestListByFollowerEmptyList(t *testing.T) {
	svc, _, _ := newArticleFixture(t)

	articles, hasMore, err := svc.ListByFollower(context.Background(), &model.User{ID: "u1"}, 1, 10)
	require.NoError(t, err)
	assert.Empty(t, articles)
	assert.False(t, hasMore)
}
