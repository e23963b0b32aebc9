package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"blogapi/internal/response"
	"blogapi/model"
	"blogapi/service"
)

// ContextUserKey 经过鉴权后写入 gin.Context 的用户记录
const ContextUserKey = "auth_user"

// ContextTokenKey 原始 bearer token，登出时需要
const ContextTokenKey = "auth_token"

// AuthMiddleware 校验 Authorization 头中的令牌。
// 校验成功后上下文里的用户已经过待处理更新的调和。
func AuthMiddleware(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		token := ""
		if strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimPrefix(authHeader, "Bearer ")
		}

		user, err := authService.Verify(c.Request.Context(), token)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrMissingToken),
				errors.Is(err, service.ErrTokenRevoked),
				errors.Is(err, service.ErrInvalidToken),
				errors.Is(err, service.ErrSubjectNotFound):
				response.Msg(c, http.StatusUnauthorized, err.Error())
			default:
				response.Msg(c, http.StatusInternalServerError, "用户校验失败")
			}
			c.Abort()
			return
		}

		c.Set(ContextUserKey, user)
		c.Set(ContextTokenKey, token)
		c.Next()
	}
}

// CurrentUser 取出鉴权中间件写入的用户
func CurrentUser(c *gin.Context) *model.User {
	v, ok := c.Get(ContextUserKey)
	if !ok {
		return nil
	}
	user, _ := v.(*model.User)
	return user
}
