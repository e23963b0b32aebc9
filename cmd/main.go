package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	v1 "blogapi/api/v1"
	"blogapi/config"
	"blogapi/dao"
	"blogapi/internal/remote"
	myvalidator "blogapi/internal/validator"
	"blogapi/middleware"
	"blogapi/model"
	"blogapi/service"
)

func main() {
	// 初始化配置
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "../"
	}
	config.InitConfig(configPath)
	config.InitRedis()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// 初始化数据库
	db, err := gorm.Open(mysql.Open(config.GlobalConfig.MySQL.DSN), &gorm.Config{})
	if err != nil {
		panic(err)
	}

	// 自动迁移
	if err := db.AutoMigrate(
		&model.User{},
		&model.Article{},
		&model.Comment{},
		&model.TempUpdateInfo{},
		&model.TokenBlacklist{},
	); err != nil {
		panic(err)
	}

	// 初始化 DAO
	userDAO := dao.NewUserDAO(db)
	articleDAO := dao.NewArticleDAO(db)
	commentDAO := dao.NewCommentDAO(db)
	tempDAO := dao.NewTempUpdateDAO(db)
	blacklistDAO := dao.NewTokenBlacklistDAO(db)

	// 外部协作服务
	storyClient := remote.NewStoryClient(
		config.GlobalConfig.Story.BaseURL,
		config.GlobalConfig.Story.AppID,
		config.GlobalConfig.Story.AppSecret,
	)
	wechatClient := remote.NewWechatClient(
		config.GlobalConfig.Wechat.BaseURL,
		config.GlobalConfig.Wechat.AppID,
		config.GlobalConfig.Wechat.AppSecret,
	)

	// 初始化 Service 和 API
	tempUpdateService := service.NewTempUpdateService(tempDAO, userDAO, logger)
	authService := service.NewAuthService(userDAO, blacklistDAO, tempUpdateService, config.RedisClient, logger)
	userService := service.NewUserService(userDAO, tempUpdateService, wechatClient, logger)
	articleService := service.NewArticleService(articleDAO, userDAO, storyClient, logger)
	commentService := service.NewCommentService(commentDAO, articleDAO, userDAO)

	userAPI := v1.NewUserAPI(userService, authService)
	articleAPI := v1.NewArticleAPI(articleService)
	commentAPI := v1.NewCommentAPI(commentService)
	tempAPI := v1.NewTempUpdateAPI(tempUpdateService)

	// 初始化路由
	r := gin.Default()
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 注册自定义校验器
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := v.RegisterValidation("mobile", myvalidator.IsMobile); err != nil {
			panic(err)
		}
	}

	authRequired := middleware.AuthMiddleware(authService)

	// 用户信息相关
	user := r.Group("/api/user")
	{
		user.POST("/register", userAPI.Register)
		loginLimiter := middleware.LoginRateLimiter(config.RedisClient, 5, time.Minute)
		user.POST("/login", loginLimiter, userAPI.Login)
		user.POST("/login/wechat", userAPI.LoginWechat)
		user.GET("/get", userAPI.Get)
		user.GET("/find", userAPI.Find)
		user.POST("/logout", authRequired, userAPI.Logout)
		user.POST("/update", authRequired, userAPI.Update)
	}

	// 文章相关
	article := r.Group("/api/article")
	{
		article.POST("/create", authRequired, articleAPI.Create)
		article.POST("/update", authRequired, articleAPI.Update)
		article.GET("/get", articleAPI.Get)
		article.GET("/getByFollower", authRequired, articleAPI.GetByFollower)
		article.GET("/getByCreateTime", articleAPI.GetByCreateTime)
		article.GET("/getBySelected", articleAPI.GetBySelected)
		article.GET("/random", articleAPI.Random)
	}

	// 评论相关
	comment := r.Group("/api/comment")
	{
		comment.POST("/create", authRequired, commentAPI.Create)
		comment.POST("/update", authRequired, commentAPI.Update)
		comment.GET("/get", commentAPI.Get)
	}

	// 临时更新信息
	r.POST("/api/temp/create", authRequired, tempAPI.Create)

	// 启动服务
	if err := r.Run(config.GlobalConfig.Server.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
