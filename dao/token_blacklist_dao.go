package dao

import (
	"context"
	"errors"

	"blogapi/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TokenBlacklistDAO struct {
	db *gorm.DB
}

func NewTokenBlacklistDAO(db *gorm.DB) *TokenBlacklistDAO {
	return &TokenBlacklistDAO{db: db}
}

// Add 将 token 加入黑名单。重复加入不报错（幂等）。
func (dao *TokenBlacklistDAO) Add(ctx context.Context, token string) error {
	entry := &model.TokenBlacklist{Token: token}
	return dao.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(entry).Error
}

// Exists 判断 token 是否已被注销
func (dao *TokenBlacklistDAO) Exists(ctx context.Context, token string) (bool, error) {
	var entry model.TokenBlacklist
	err := dao.db.WithContext(ctx).Where("token = ?", token).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
