package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"blogapi/api/v1/request"
	"blogapi/internal/remote"
	"blogapi/internal/response"
	"blogapi/middleware"
	"blogapi/model"
	"blogapi/service"
)

type ArticleAPI struct {
	service *service.ArticleService
}

func NewArticleAPI(s *service.ArticleService) *ArticleAPI {
	return &ArticleAPI{service: s}
}

// Create 创建文章
func (a *ArticleAPI) Create(c *gin.Context) {
	var req request.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Msg(c, http.StatusBadRequest, "文章内容为必填项")
		return
	}
	user := middleware.CurrentUser(c)
	if user == nil {
		response.Msg(c, http.StatusUnauthorized, "用户校验失败")
		return
	}
	article, err := a.service.Create(c.Request.Context(), user, req.Content)
	if err != nil {
		response.Msg(c, http.StatusInternalServerError, "文章创建失败")
		return
	}
	response.Data(c, http.StatusOK, "文章创建成功", article.View())
}

// Update 更新文章内容和/或点赞数
func (a *ArticleAPI) Update(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		response.Msg(c, http.StatusBadRequest, "文章id为必填项")
		return
	}
	var req request.UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Msg(c, http.StatusBadRequest, err.Error())
		return
	}
	user := middleware.CurrentUser(c)
	if user == nil {
		response.Msg(c, http.StatusUnauthorized, "用户校验失败")
		return
	}
	article, err := a.service.Update(c.Request.Context(), user, id, req.Content, req.VoteNumber)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrVoteDelta), errors.Is(err, service.ErrArticleNotFound):
			response.Msg(c, http.StatusBadRequest, err.Error())
		default:
			response.Msg(c, http.StatusInternalServerError, "文章更新失败")
		}
		return
	}
	response.Data(c, http.StatusOK, "文章更新成功", article.View())
}

// Get 获取单篇文章
func (a *ArticleAPI) Get(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		response.Msg(c, http.StatusBadRequest, "文章id为必填项")
		return
	}
	article, err := a.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrArticleNotFound) {
			response.Msg(c, http.StatusBadRequest, err.Error())
			return
		}
		response.Msg(c, http.StatusInternalServerError, "文章获取失败")
		return
	}
	response.Data(c, http.StatusOK, "文章获取成功", article.View())
}

func (a *ArticleAPI) listResponse(c *gin.Context, articles []model.Article, hasMore bool) {
	if len(articles) == 0 {
		response.List(c, http.StatusNotFound, "无任何发布文章", false, []model.ArticleView{})
		return
	}
	response.List(c, http.StatusOK, "文章获取成功", hasMore, model.ArticleViews(articles))
}

// GetByCreateTime 最新文章列表
func (a *ArticleAPI) GetByCreateTime(c *gin.Context) {
	var q request.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Msg(c, http.StatusBadRequest, err.Error())
		return
	}
	articles, hasMore, err := a.service.ListByCreateTime(c.Request.Context(), q.Page, q.PerPage)
	if err != nil {
		response.List(c, http.StatusInternalServerError, "文章获取失败", false, []model.ArticleView{})
		return
	}
	a.listResponse(c, articles, hasMore)
}

// GetBySelected 精选文章列表
func (a *ArticleAPI) GetBySelected(c *gin.Context) {
	var q request.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Msg(c, http.StatusBadRequest, err.Error())
		return
	}
	articles, hasMore, err := a.service.ListSelected(c.Request.Context(), q.Page, q.PerPage)
	if err != nil {
		response.List(c, http.StatusInternalServerError, "文章获取失败", false, []model.ArticleView{})
		return
	}
	a.listResponse(c, articles, hasMore)
}

// GetByFollower 当前用户关注列表对应作者的文章
func (a *ArticleAPI) GetByFollower(c *gin.Context) {
	var q request.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Msg(c, http.StatusBadRequest, err.Error())
		return
	}
	user := middleware.CurrentUser(c)
	if user == nil {
		response.Msg(c, http.StatusUnauthorized, "用户校验失败")
		return
	}
	if user.FollowerList == nil {
		response.List(c, http.StatusNotFound, "未找到关注列表", false, []model.ArticleView{})
		return
	}
	articles, hasMore, err := a.service.ListByFollower(c.Request.Context(), user, q.Page, q.PerPage)
	if err != nil {
		response.List(c, http.StatusInternalServerError, "文章获取失败", false, []model.ArticleView{})
		return
	}
	a.listResponse(c, articles, hasMore)
}

// Random 从外部故事接口获取随机文章
func (a *ArticleAPI) Random(c *gin.Context) {
	stories, err := a.service.Random(c.Request.Context())
	if err != nil {
		if errors.Is(err, remote.ErrUpstream) {
			response.Msg(c, http.StatusInternalServerError, err.Error())
			return
		}
		response.Msg(c, http.StatusInternalServerError, "文章获取失败")
		return
	}
	response.Data(c, http.StatusOK, "文章获取成功", stories)
}
