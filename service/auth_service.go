package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"blogapi/config"
	"blogapi/dao"
	"blogapi/internal/auth"
	"blogapi/internal/metrics"
	"blogapi/model"

	"gorm.io/gorm"
)

// 鉴权失败的对外错误，不区分更细的原因（细节只记日志）
var (
	ErrMissingToken    = errors.New("未提供令牌")
	ErrTokenRevoked    = errors.New("无效令牌")
	ErrInvalidToken    = errors.New("令牌校验失败")
	ErrSubjectNotFound = errors.New("用户不存在")
)

// AuthService 负责令牌校验与注销。黑名单持久化在数据库里，
// Redis 只作为查找缓存，命中数据库后回填。
type AuthService struct {
	userDAO      *dao.UserDAO
	blacklistDAO *dao.TokenBlacklistDAO
	tempUpdate   *TempUpdateService
	rdb          *redis.Client
	logger       *zap.Logger
}

func NewAuthService(userDAO *dao.UserDAO, blacklistDAO *dao.TokenBlacklistDAO, tempUpdate *TempUpdateService, rdb *redis.Client, logger *zap.Logger) *AuthService {
	return &AuthService{
		userDAO:      userDAO,
		blacklistDAO: blacklistDAO,
		tempUpdate:   tempUpdate,
		rdb:          rdb,
		logger:       logger,
	}
}

func blacklistKey(token string) string {
	return fmt.Sprintf("blog:black:%s", token)
}

func (s *AuthService) cacheTTL() time.Duration {
	return time.Duration(config.GlobalConfig.JWT.Expire) * time.Second
}

// isRevoked 黑名单查找先走 Redis，未命中再查库，库命中回填缓存。
// Redis 故障时直接退回数据库，不影响结果正确性。
func (s *AuthService) isRevoked(ctx context.Context, token string) (bool, error) {
	if n, err := s.rdb.Exists(ctx, blacklistKey(token)).Result(); err == nil && n == 1 {
		return true, nil
	}
	revoked, err := s.blacklistDAO.Exists(ctx, token)
	if err != nil {
		return false, err
	}
	if revoked {
		_ = s.rdb.Set(ctx, blacklistKey(token), "1", s.cacheTTL()).Err()
	}
	return revoked, nil
}

// Verify 校验令牌并返回其指向的用户。
// 顺序：缺失 → 黑名单（先于签名校验） → 签名/过期 → 用户存在性 → 调和。
// 调和失败不导致鉴权失败，返回调和前的记录（细节见 DESIGN.md）。
func (s *AuthService) Verify(ctx context.Context, token string) (*model.User, error) {
	if token == "" {
		metrics.IncTokenCheck("missing")
		return nil, ErrMissingToken
	}

	revoked, err := s.isRevoked(ctx, token)
	if err != nil {
		return nil, err
	}
	if revoked {
		metrics.IncTokenCheck("revoked")
		return nil, ErrTokenRevoked
	}

	claims, err := auth.ParseToken(token)
	if err != nil {
		metrics.IncTokenCheck("invalid")
		s.logger.Info("token parse failed", zap.Error(err))
		return nil, ErrInvalidToken
	}

	user, err := s.userDAO.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			metrics.IncTokenCheck("subject_missing")
			return nil, ErrSubjectNotFound
		}
		return nil, err
	}

	// 认证成功后先调和待处理更新，让每次认证读取都看到收敛后的状态
	updated, err := s.tempUpdate.Reconcile(ctx, user.ID)
	if err != nil {
		s.logger.Warn("reconcile failed, returning possibly stale record",
			zap.String("user_id", user.ID), zap.Error(err))
	} else if updated != nil {
		user = updated
	}

	metrics.IncTokenCheck("ok")
	return user, nil
}

// Revoke 将令牌加入黑名单，重复注销不报错。
func (s *AuthService) Revoke(ctx context.Context, token string) error {
	if err := s.blacklistDAO.Add(ctx, token); err != nil {
		return err
	}
	_ = s.rdb.Set(ctx, blacklistKey(token), "1", s.cacheTTL()).Err()
	return nil
}
