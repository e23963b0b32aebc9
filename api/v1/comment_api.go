package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"blogapi/api/v1/request"
	"blogapi/internal/response"
	"blogapi/middleware"
	"blogapi/service"
)

type CommentAPI struct {
	service *service.CommentService
}

func NewCommentAPI(s *service.CommentService) *CommentAPI {
	return &CommentAPI{service: s}
}

// Create 创建评论
func (a *CommentAPI) Create(c *gin.Context) {
	var req request.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Msg(c, http.StatusBadRequest, "内容和文章id为必填项")
		return
	}
	user := middleware.CurrentUser(c)
	if user == nil {
		response.Msg(c, http.StatusUnauthorized, "用户校验失败")
		return
	}
	comment, err := a.service.Create(c.Request.Context(), user, req.ArticleID, req.Content)
	if err != nil {
		if errors.Is(err, service.ErrArticleNotFound) {
			response.Msg(c, http.StatusBadRequest, "文章id错误")
			return
		}
		response.Msg(c, http.StatusInternalServerError, "评论创建失败")
		return
	}
	response.Data(c, http.StatusOK, "评论创建成功", comment)
}

// Update 更新评论点赞数，不支持评论内容的更新
func (a *CommentAPI) Update(c *gin.Context) {
	id := c.Query("id")
	var req request.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil || id == "" {
		response.Msg(c, http.StatusBadRequest, "评论id和点赞数为必填项")
		return
	}
	comment, err := a.service.UpdateVote(c.Request.Context(), id, req.VoteNumber)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrVoteDelta), errors.Is(err, service.ErrCommentNotFound):
			response.Msg(c, http.StatusBadRequest, err.Error())
		default:
			response.Msg(c, http.StatusInternalServerError, "评论更新失败")
		}
		return
	}
	response.Data(c, http.StatusOK, "评论更新成功", comment)
}

// Get 获取单个评论详情
func (a *CommentAPI) Get(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		response.Msg(c, http.StatusBadRequest, "id为必填项")
		return
	}
	comment, err := a.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrCommentNotFound) {
			response.Msg(c, http.StatusBadRequest, err.Error())
			return
		}
		response.Msg(c, http.StatusInternalServerError, "获取评论失败")
		return
	}
	response.Data(c, http.StatusOK, "获取评论成功", comment)
}
