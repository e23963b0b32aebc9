package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"blogapi/dao"
	"blogapi/internal/metrics"
	"blogapi/internal/strlist"
	"blogapi/model"
)

// TempUpdateService 管理跨用户的懒式更新队列。
// 当 A 关注 B 时，不直接改 B 的记录，而是写入一条临时更新信息；
// 等 B 下次被加载（登录、被查看、令牌校验）时统一应用到 following_list 并删除。
type TempUpdateService struct {
	tempDAO *dao.TempUpdateDAO
	userDAO *dao.UserDAO
	logger  *zap.Logger
}

func NewTempUpdateService(tempDAO *dao.TempUpdateDAO, userDAO *dao.UserDAO, logger *zap.Logger) *TempUpdateService {
	return &TempUpdateService{tempDAO: tempDAO, userDAO: userDAO, logger: logger}
}

// Enqueue 创建一条待处理记录
func (s *TempUpdateService) Enqueue(ctx context.Context, targetUserID, value, creatorID string, isDelete bool) (*model.TempUpdateInfo, error) {
	info := &model.TempUpdateInfo{
		ID:        uuid.New().String(),
		UserID:    targetUserID,
		Value:     value,
		CreatorID: creatorID,
		IsDelete:  isDelete,
	}
	if err := s.tempDAO.Create(ctx, info); err != nil {
		return nil, err
	}
	return info, nil
}

// Reconcile 将目标用户的全部待处理记录按创建时间倒序应用到 following_list。
// 每应用一条就落库一次并删除该记录，不做批量事务：中途失败时已应用的
// 记录保持生效，剩余记录留待下次调用重试。
// 没有任何待处理记录时返回 (nil, nil)，调用方继续使用手头已加载的用户。
func (s *TempUpdateService) Reconcile(ctx context.Context, userID string) (*model.User, error) {
	infos, err := s.tempDAO.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(infos) == 0 {
		return nil, nil
	}

	user, err := s.userDAO.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	for i := range infos {
		info := &infos[i]
		newVal, changed := strlist.Apply(user.FollowingList, info.Value, info.IsDelete)
		if changed {
			if err := s.userDAO.UpdateFollowingList(ctx, userID, newVal); err != nil {
				return nil, err
			}
			user.FollowingList = newVal
		}
		if err := s.tempDAO.Delete(ctx, info.ID); err != nil {
			return nil, err
		}
		metrics.IncReconcileApplied()
		s.logger.Debug("applied pending update",
			zap.String("user_id", userID),
			zap.String("value", info.Value),
			zap.Bool("is_delete", info.IsDelete))
	}
	return user, nil
}
