package dao

import (
	"context"

	"blogapi/model"

	"gorm.io/gorm"
)

type UserDAO struct {
	db *gorm.DB
}

// NewUserDAO 创建一个新的 UserDAO 实例
func NewUserDAO(db *gorm.DB) *UserDAO {
	return &UserDAO{db: db}
}

// CreateUser 创建新用户
func (dao *UserDAO) CreateUser(ctx context.Context, user *model.User) error {
	return dao.db.WithContext(ctx).Create(user).Error
}

// GetByID 根据id查询用户
func (dao *UserDAO) GetByID(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	err := dao.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByPhone 根据手机号查询用户
func (dao *UserDAO) FindByPhone(ctx context.Context, phone string) (*model.User, error) {
	var user model.User
	err := dao.db.WithContext(ctx).Where("phone = ?", phone).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByName 根据用户名查询用户
func (dao *UserDAO) FindByName(ctx context.Context, name string) (*model.User, error) {
	var user model.User
	err := dao.db.WithContext(ctx).Where("name = ?", name).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateFields 按字段更新用户，零值字段不会误写，所以用显式 map。
func (dao *UserDAO) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	return dao.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).Updates(fields).Error
}

// UpdateFollowingList 单独更新 following_list，调和流程每应用一条就落库一次。
func (dao *UserDAO) UpdateFollowingList(ctx context.Context, id string, value *string) error {
	return dao.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).Update("following_list", value).Error
}
