package dao

import (
	"context"

	"blogapi/model"

	"gorm.io/gorm"
)

type TempUpdateDAO struct {
	db *gorm.DB
}

func NewTempUpdateDAO(db *gorm.DB) *TempUpdateDAO {
	return &TempUpdateDAO{db: db}
}

// Create 写入一条临时更新信息
func (dao *TempUpdateDAO) Create(ctx context.Context, info *model.TempUpdateInfo) error {
	return dao.db.WithContext(ctx).Create(info).Error
}

// ListByUser 目标用户的全部待处理记录，按创建时间倒序（最新的先处理）。
// 同一时刻创建的记录以id做稳定次序。
func (dao *TempUpdateDAO) ListByUser(ctx context.Context, userID string) ([]model.TempUpdateInfo, error) {
	var infos []model.TempUpdateInfo
	err := dao.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&infos).Error
	return infos, err
}

// Delete 处理完一条记录后删除
func (dao *TempUpdateDAO) Delete(ctx context.Context, id string) error {
	return dao.db.WithContext(ctx).Where("id = ?", id).Delete(&model.TempUpdateInfo{}).Error
}

// CountByUser 测试与监控用
func (dao *TempUpdateDAO) CountByUser(ctx context.Context, userID string) (int64, error) {
	var cnt int64
	err := dao.db.WithContext(ctx).Model(&model.TempUpdateInfo{}).Where("user_id = ?", userID).Count(&cnt).Error
	return cnt, err
}
