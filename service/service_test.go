package service

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"blogapi/config"
	"blogapi/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Article{},
		&model.Comment{},
		&model.TempUpdateInfo{},
		&model.TokenBlacklist{},
	))
	return db
}

func setupTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	return redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

// 测试里直接设置全局配置，token 相关逻辑都从这里取密钥和 TTL
func setupTestConfig(t *testing.T, expireSeconds int64) {
	t.Helper()
	old := config.GlobalConfig
	config.GlobalConfig = &config.Config{
		JWT: config.JWTConfig{Secret: "test-secret", Expire: expireSeconds},
	}
	t.Cleanup(func() { config.GlobalConfig = old })
}

func testLogger() *zap.Logger { return zap.NewNop() }

func strp(s string) *string { return &s }
