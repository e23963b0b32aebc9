package v1

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"blogapi/config"
	"blogapi/dao"
	myvalidator "blogapi/internal/validator"
	"blogapi/middleware"
	"blogapi/model"
	"blogapi/service"
)

// newTestRouter 组装与 main 相同的路由，只是换成内存数据库和 miniredis。
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	old := config.GlobalConfig
	config.GlobalConfig = &config.Config{
		JWT: config.JWTConfig{Secret: "test-secret", Expire: 3600},
	}
	t.Cleanup(func() { config.GlobalConfig = old })

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.User{}, &model.Article{}, &model.Comment{},
		&model.TempUpdateInfo{}, &model.TokenBlacklist{},
	))

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		require.NoError(t, v.RegisterValidation("mobile", myvalidator.IsMobile))
	}

	logger := zap.NewNop()
	userDAO := dao.NewUserDAO(db)
	articleDAO := dao.NewArticleDAO(db)
	commentDAO := dao.NewCommentDAO(db)
	tempDAO := dao.NewTempUpdateDAO(db)
	blacklistDAO := dao.NewTokenBlacklistDAO(db)

	tempUpdateService := service.NewTempUpdateService(tempDAO, userDAO, logger)
	authService := service.NewAuthService(userDAO, blacklistDAO, tempUpdateService, rdb, logger)
	userService := service.NewUserService(userDAO, tempUpdateService, nil, logger)
	articleService := service.NewArticleService(articleDAO, userDAO, nil, logger)
	commentService := service.NewCommentService(commentDAO, articleDAO, userDAO)

	userAPI := NewUserAPI(userService, authService)
	articleAPI := NewArticleAPI(articleService)
	commentAPI := NewCommentAPI(commentService)
	tempAPI := NewTempUpdateAPI(tempUpdateService)

	authRequired := middleware.AuthMiddleware(authService)

	r := gin.New()
	user := r.Group("/api/user")
	{
		user.POST("/register", userAPI.Register)
		user.POST("/login", userAPI.Login)
		user.GET("/get", userAPI.Get)
		user.GET("/find", userAPI.Find)
		user.POST("/logout", authRequired, userAPI.Logout)
		user.POST("/update", authRequired, userAPI.Update)
	}
	article := r.Group("/api/article")
	{
		article.POST("/create", authRequired, articleAPI.Create)
		article.POST("/update", authRequired, articleAPI.Update)
		article.GET("/get", articleAPI.Get)
		article.GET("/getByCreateTime", articleAPI.GetByCreateTime)
	}
	comment := r.Group("/api/comment")
	{
		comment.POST("/create", authRequired, commentAPI.Create)
		comment.GET("/get", commentAPI.Get)
	}
	r.POST("/api/temp/create", authRequired, tempAPI.Create)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var parsed map[string]interface{}
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed))
	}
	return w, parsed
}

func registerAndLogin(t *testing.T, r *gin.Engine, phone string) (token, userID string) {
	t.Helper()
	w, body := doJSON(t, r, http.MethodPost, "/api/user/register", "", gin.H{"phone": phone})
	require.Equal(t, http.StatusOK, w.Code, "register body=%v", body)
	userID = body["data"].(map[string]interface{})["id"].(string)

	w, body = doJSON(t, r, http.MethodPost, "/api/user/login", "", gin.H{"phone": phone})
	require.Equal(t, http.StatusOK, w.Code, "login body=%v", body)
	token = body["token"].(string)
	return token, userID
}

func TestRegisterLoginLogoutFlow(t *testing.T) {
	r := newTestRouter(t)

	token, _ := registerAndLogin(t, r, "13800000001")

	// 重复注册同一手机号
	w, _ := doJSON(t, r, http.MethodPost, "/api/user/register", "", gin.H{"phone": "13800000001"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// 非法手机号被校验器拒绝
	w, _ = doJSON(t, r, http.MethodPost, "/api/user/register", "", gin.H{"phone": "12345"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// 登出后令牌立即失效
	w, _ = doJSON(t, r, http.MethodPost, "/api/user/logout", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	w, _ = doJSON(t, r, http.MethodPost, "/api/user/logout", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// A 关注 B：A 更新自己的 following，再为 B 写入一条临时更新；
// 下次加载 B 时 follower 关系生效。
func TestFollowPropagatesLazily(t *testing.T) {
	r := newTestRouter(t)

	tokenA, idA := registerAndLogin(t, r, "13800000001")
	_, idB := registerAndLogin(t, r, "13800000002")

	w, _ := doJSON(t, r, http.MethodPost, "/api/user/update", tokenA, gin.H{"followingUserId": idB})
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = doJSON(t, r, http.MethodPost, "/api/temp/create", tokenA, gin.H{
		"user_id": idB, "value": idA, "creator_id": idA,
	})
	require.Equal(t, http.StatusOK, w.Code)

	// B 被加载时待处理更新落到 following_list
	w, body := doJSON(t, r, http.MethodGet, "/api/user/get?id="+idB, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	following := body["data"].(map[string]interface{})["following_list"].([]interface{})
	require.Len(t, following, 1)
	assert.Equal(t, idA, following[0])
}

func TestArticleAndCommentFlow(t *testing.T) {
	r := newTestRouter(t)
	token, userID := registerAndLogin(t, r, "13800000001")

	w, body := doJSON(t, r, http.MethodPost, "/api/article/create", token, gin.H{"content": "你好世界"})
	require.Equal(t, http.StatusOK, w.Code)
	articleID := body["data"].(map[string]interface{})["id"].(string)

	// 点赞数只能加1
	w, _ = doJSON(t, r, http.MethodPost, "/api/article/update?id="+articleID, token, gin.H{"vote_number": "2"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w, body = doJSON(t, r, http.MethodPost, "/api/article/update?id="+articleID, token, gin.H{"vote_number": "1"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, body["data"].(map[string]interface{})["vote_number"])

	w, body = doJSON(t, r, http.MethodPost, "/api/comment/create", token, gin.H{
		"content": "第一条评论", "article_id": articleID,
	})
	require.Equal(t, http.StatusOK, w.Code)
	commentID := body["data"].(map[string]interface{})["id"].(string)

	// 文章的 comments 与作者的 comment_list 都已追加
	w, body = doJSON(t, r, http.MethodGet, "/api/article/get?id="+articleID, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	comments := body["data"].(map[string]interface{})["comments"].([]interface{})
	require.Len(t, comments, 1)
	assert.Equal(t, commentID, comments[0])

	w, body = doJSON(t, r, http.MethodGet, "/api/user/get?id="+userID, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	profile := body["data"].(map[string]interface{})
	assert.Equal(t, []interface{}{commentID}, profile["comment_list"])
	assert.Equal(t, []interface{}{articleID}, profile["published_article_list"])
	assert.Equal(t, []interface{}{articleID}, profile["loved_article_list"])
}

func TestGetByCreateTimePagination(t *testing.T) {
	r := newTestRouter(t)
	token, _ := registerAndLogin(t, r, "13800000001")

	for i := 0; i < 3; i++ {
		w, _ := doJSON(t, r, http.MethodPost, "/api/article/create", token, gin.H{
			"content": fmt.Sprintf("第%d篇", i),
		})
		require.Equal(t, http.StatusOK, w.Code)
	}

	w, body := doJSON(t, r, http.MethodGet, "/api/article/getByCreateTime?perpage=2&page=1", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["hasMore"])
	assert.Len(t, body["data"].([]interface{}), 2)

	w, body = doJSON(t, r, http.MethodGet, "/api/article/getByCreateTime?perpage=2&page=2", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, body["hasMore"])

	// 翻过末页后返回空列表与 404 包络
	w, _ = doJSON(t, r, http.MethodGet, "/api/article/getByCreateTime?perpage=2&page=9", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
