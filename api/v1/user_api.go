package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"blogapi/api/v1/request"
	"blogapi/internal/metrics"
	"blogapi/internal/remote"
	"blogapi/internal/response"
	"blogapi/middleware"
	"blogapi/service"
)

// UserAPI 聚合了所有与用户相关的 HTTP Handler。
type UserAPI struct {
	service *service.UserService
	auth    *service.AuthService
}

// NewUserAPI wires the service layer into the HTTP handlers.
func NewUserAPI(s *service.UserService, a *service.AuthService) *UserAPI {
	return &UserAPI{service: s, auth: a}
}

// Register 注册用户，手机号模式或用户名密码模式
func (u *UserAPI) Register(c *gin.Context) {
	var req request.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Msg(c, http.StatusBadRequest, err.Error())
		return
	}
	if !req.IsPassword && req.Phone == "" {
		response.Msg(c, http.StatusBadRequest, "手机号为必填项")
		return
	}
	if req.IsPassword && req.Password == "" {
		response.Msg(c, http.StatusBadRequest, "用户名和密码为必填项")
		return
	}

	user, err := u.service.Register(c.Request.Context(), service.RegisterParams{
		Name:       req.Name,
		Avatar:     req.Avatar,
		Phone:      req.Phone,
		Password:   req.Password,
		IsPassword: req.IsPassword,
	})
	if err != nil {
		if errors.Is(err, service.ErrUserExists) {
			response.Msg(c, http.StatusUnauthorized, err.Error())
			return
		}
		response.Msg(c, http.StatusInternalServerError, "用户注册失败")
		return
	}
	response.Data(c, http.StatusOK, "用户注册成功", user.Profile())
}

// Login 用户登录，签发令牌并返回调和后的用户信息
func (u *UserAPI) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		metrics.IncLogin("bad_request")
		response.Msg(c, http.StatusBadRequest, err.Error())
		return
	}
	if !req.IsPassword && req.Phone == "" {
		metrics.IncLogin("bad_request")
		response.Msg(c, http.StatusBadRequest, "手机号为必填项")
		return
	}
	if req.IsPassword && req.Password == "" {
		metrics.IncLogin("bad_request")
		response.Msg(c, http.StatusBadRequest, "用户名和密码为必填项")
		return
	}

	token, user, err := u.service.Login(c.Request.Context(), service.LoginParams{
		Name:       req.Name,
		Phone:      req.Phone,
		Password:   req.Password,
		IsPassword: req.IsPassword,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoPassword):
			metrics.IncLogin("bad_request")
			response.Msg(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrUserNotRegistered),
			errors.Is(err, service.ErrWrongCredentials):
			metrics.IncLogin("unauthorized")
			response.Msg(c, http.StatusUnauthorized, err.Error())
		default:
			metrics.IncLogin("internal_error")
			response.Msg(c, http.StatusInternalServerError, "用户登录失败")
		}
		return
	}
	metrics.IncLogin("success")
	response.Extra(c, http.StatusOK, "用户登录成功", user.Profile(), map[string]interface{}{
		"token": token,
	})
}

// LoginWechat 微信登录，换取的凭证返回给前端，登录 token 仍由 Login 接口签发
func (u *UserAPI) LoginWechat(c *gin.Context) {
	var req request.WechatLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Msg(c, http.StatusBadRequest, "code为必填项")
		return
	}
	session, err := u.service.LoginWechat(c.Request.Context(), req.Code)
	if err != nil {
		if errors.Is(err, remote.ErrUpstream) {
			response.Msg(c, http.StatusInternalServerError, err.Error())
			return
		}
		response.Msg(c, http.StatusInternalServerError, "微信登录失败")
		return
	}
	response.Extra(c, http.StatusOK, "用户登录成功", nil, map[string]interface{}{
		"userSecret": session,
	})
}

// Logout 将当前令牌加入黑名单
func (u *UserAPI) Logout(c *gin.Context) {
	token := c.GetString(middleware.ContextTokenKey)
	if err := u.auth.Revoke(c.Request.Context(), token); err != nil {
		response.Msg(c, http.StatusInternalServerError, "用户登出失败")
		return
	}
	response.Msg(c, http.StatusOK, "用户登出成功")
}

// Get 获取任意单个用户信息，返回前先调和其待处理更新
func (u *UserAPI) Get(c *gin.Context) {
	id := c.Query("id")
	if id == "" || id == "undefined" || id == "null" {
		response.Msg(c, http.StatusBadRequest, "用户id为必填项")
		return
	}
	user, err := u.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.Msg(c, http.StatusBadRequest, err.Error())
			return
		}
		response.Msg(c, http.StatusInternalServerError, "获取用户信息失败")
		return
	}
	response.Data(c, http.StatusOK, "用户信息获取成功", user.Profile())
}

// Update 更新当前用户信息与关系列表
func (u *UserAPI) Update(c *gin.Context) {
	var req request.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Msg(c, http.StatusBadRequest, err.Error())
		return
	}
	user := middleware.CurrentUser(c)
	if user == nil {
		response.Msg(c, http.StatusUnauthorized, "用户校验失败")
		return
	}
	updated, err := u.service.Update(c.Request.Context(), user, service.UpdateParams{
		Name:               req.Name,
		Avatar:             req.Avatar,
		Password:           req.Password,
		Gender:             req.Gender,
		CollectedArticleID: req.CollectedArticleID,
		LovedArticleID:     req.LovedArticleID,
		PublishedArticleID: req.PublishedArticleID,
		ReadArticleID:      req.ReadArticleID,
		FollowerUserID:     req.FollowerUserID,
		FollowingUserID:    req.FollowingUserID,
		IsDelete:           req.IsDelete,
	})
	if err != nil {
		response.Msg(c, http.StatusInternalServerError, "修改用户信息失败")
		return
	}
	response.Data(c, http.StatusOK, "用户信息更新成功", updated.Profile())
}

// Find 按用户名或手机号判断用户是否存在
func (u *UserAPI) Find(c *gin.Context) {
	name := c.Query("name")
	phone := c.Query("phone")
	if name == "" && phone == "" {
		response.Msg(c, http.StatusUnauthorized, "手机号或者用户名称为必填项")
		return
	}
	exists, err := u.service.Find(c.Request.Context(), name, phone)
	if err != nil {
		response.Msg(c, http.StatusInternalServerError, "查询失败")
		return
	}
	msg := "用户不存在"
	if exists {
		msg = "用户存在"
	}
	response.Data(c, http.StatusOK, msg, exists)
}
