package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogapi/dao"
	"blogapi/model"
)

func newCommentFixture(t *testing.T) (*CommentService, *dao.UserDAO, *dao.ArticleDAO, *dao.CommentDAO) {
	db := setupTestDB(t)
	userDAO := dao.NewUserDAO(db)
	articleDAO := dao.NewArticleDAO(db)
	commentDAO := dao.NewCommentDAO(db)
	return NewCommentService(commentDAO, articleDAO, userDAO), userDAO, articleDAO, commentDAO
}

func TestCreateCommentUpdatesBothLists(t *testing.T) {
	svc, userDAO, articleDAO, _ := newCommentFixture(t)
	ctx := context.Background()

	author := &model.User{ID: "u1", Name: "u1"}
	require.NoError(t, userDAO.CreateUser(ctx, author))
	require.NoError(t, articleDAO.CreateArticle(ctx, &model.Article{ID: "a1", Content: "c", AuthorID: "u2"}))

	comment, err := svc.Create(ctx, author, "a1", "不错")
	require.NoError(t, err)

	loadedUser, err := userDAO.GetByID(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, loadedUser.CommentList)
	assert.Equal(t, comment.ID, *loadedUser.CommentList)

	loadedArticle, err := articleDAO.GetByID(ctx, "a1")
	require.NoError(t, err)
	require.NotNil(t, loadedArticle.Comments)
	assert.Equal(t, comment.ID, *loadedArticle.Comments)
}

func TestCreateCommentUnknownArticle(t *testing.T) {
	svc, userDAO, _, _ := newCommentFixture(t)
	ctx := context.Background()

	author := &model.User{ID: "u1", Name: "u1"}
	require.NoError(t, userDAO.CreateUser(ctx, author))

	_, err := svc.Create(ctx, author, "missing", "内容")
	assert.ErrorIs(t, err, ErrArticleNotFound)
}

func TestUpdateCommentVotePolicy(t *testing.T) {
	svc, _, _, commentDAO := newCommentFixture(t)
	ctx := context.Background()

	require.NoError(t, commentDAO.CreateComment(ctx, &model.Comment{
		ID: "c1", Content: "x", AuthorID: "u1", ArticleID: "a1", VoteNumber: 5,
	}))

	_, err := svc.UpdateVote(ctx, "c1", "2")
	assert.ErrorIs(t, err, ErrVoteDelta)

	loaded, err := commentDAO.GetByID(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, 5, loaded.VoteNumber)

	updated, err := svc.UpdateVote(ctx, "c1", "1")
	require.NoError(t, err)
	assert.Equal(t, 6, updated.VoteNumber)
}

func TestUpdateCommentNotFound(t *testing.T) {
	svc, _, _, _ := newCommentFixture(t)

	_, err := svc.UpdateVote(context.Background(), "missing", "1")
	assert.ErrorIs(t, err, ErrCommentNotFound)
}
