package service

import (
	"context"
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"blogapi/dao"
	"blogapi/internal/auth"
	"blogapi/internal/remote"
	"blogapi/internal/strlist"
	"blogapi/model"
	"blogapi/utils"

	"gorm.io/gorm"
)

// 注册时的默认昵称和头像
const (
	DefaultUserName   = "新用户"
	DefaultUserAvatar = "https://static.blogapi.cn/avatar/default.png"
)

var (
	ErrUserExists        = errors.New("用户已注册")
	ErrUserNotRegistered = errors.New("用户未注册")
	ErrWrongCredentials  = errors.New("用户名或密码错误")
	ErrNoPassword        = errors.New("用户未设置密码")
	ErrUserNotFound      = errors.New("用户不存在")
)

// UserService bundles the DAO, the deferred-update queue and the wechat client.
type UserService struct {
	dao        *dao.UserDAO
	tempUpdate *TempUpdateService
	wechat     *remote.WechatClient
	logger     *zap.Logger
}

func NewUserService(dao *dao.UserDAO, tempUpdate *TempUpdateService, wechat *remote.WechatClient, logger *zap.Logger) *UserService {
	return &UserService{dao: dao, tempUpdate: tempUpdate, wechat: wechat, logger: logger}
}

// RegisterParams 手机号注册（默认）或用户名密码注册
type RegisterParams struct {
	Name       string
	Avatar     string
	Phone      string
	Password   string
	IsPassword bool
}

// Register 注册新用户。手机号模式按手机号查重，密码模式按用户名查重并哈希密码。
func (s *UserService) Register(ctx context.Context, p RegisterParams) (*model.User, error) {
	if p.Name == "" {
		p.Name = DefaultUserName
	}
	if p.Avatar == "" {
		p.Avatar = DefaultUserAvatar
	}

	user := &model.User{
		ID:     uuid.New().String(),
		Name:   p.Name,
		Avatar: p.Avatar,
	}
	if p.IsPassword {
		if _, err := s.dao.FindByName(ctx, p.Name); err == nil {
			return nil, ErrUserExists
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		hashed, err := utils.HashPassword(p.Password)
		if err != nil {
			return nil, err
		}
		user.Password = &hashed
	} else {
		if _, err := s.dao.FindByPhone(ctx, p.Phone); err == nil {
			return nil, ErrUserExists
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		phone := p.Phone
		user.Phone = &phone
	}

	if err := s.dao.CreateUser(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUserExists
		}
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
			return nil, ErrUserExists
		}
		return nil, err
	}
	return user, nil
}

// LoginParams 手机号登录（默认）或用户名密码登录
type LoginParams struct {
	Name       string
	Phone      string
	Password   string
	IsPassword bool
}

// Login 校验身份后签发令牌，并在返回之前调和该用户的待处理更新。
func (s *UserService) Login(ctx context.Context, p LoginParams) (string, *model.User, error) {
	var user *model.User
	var err error
	if p.IsPassword {
		if p.Name == "" {
			p.Name = DefaultUserName
		}
		user, err = s.dao.FindByName(ctx, p.Name)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return "", nil, ErrUserNotRegistered
			}
			return "", nil, err
		}
		if user.Password == nil {
			return "", nil, ErrNoPassword
		}
		if !utils.CheckPasswordHash(p.Password, *user.Password) {
			return "", nil, ErrWrongCredentials
		}
	} else {
		user, err = s.dao.FindByPhone(ctx, p.Phone)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return "", nil, ErrUserNotRegistered
			}
			return "", nil, err
		}
	}

	token, err := auth.GenerateToken(user.ID)
	if err != nil {
		return "", nil, err
	}

	// 登录是调和的触发点之一；调和失败不影响登录本身
	updated, err := s.tempUpdate.Reconcile(ctx, user.ID)
	if err != nil {
		s.logger.Warn("reconcile on login failed", zap.String("user_id", user.ID), zap.Error(err))
	} else if updated != nil {
		user = updated
	}
	return token, user, nil
}

// LoginWechat 用前端 code 换取微信会话凭证，登录 token 仍走 Login 接口。
func (s *UserService) LoginWechat(ctx context.Context, code string) (*remote.WechatSession, error) {
	return s.wechat.ExchangeCode(ctx, code)
}

// Get 加载任意用户并调和其待处理更新
func (s *UserService) Get(ctx context.Context, id string) (*model.User, error) {
	user, err := s.dao.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	updated, err := s.tempUpdate.Reconcile(ctx, user.ID)
	if err != nil {
		s.logger.Warn("reconcile on get failed", zap.String("user_id", user.ID), zap.Error(err))
	} else if updated != nil {
		user = updated
	}
	return user, nil
}

// UpdateParams 用户信息更新。六个 *ID 字段共用一个 IsDelete 标志，
// 走同一套逗号列表编解码。
type UpdateParams struct {
	Name               string
	Avatar             string
	Password           string
	Gender             string // "0" MALE, "1" FEMALE
	CollectedArticleID string
	LovedArticleID     string
	PublishedArticleID string
	ReadArticleID      string
	FollowerUserID     string
	FollowingUserID    string
	IsDelete           bool
}

// Update 更新当前用户自己的资料与关系列表
func (s *UserService) Update(ctx context.Context, user *model.User, p UpdateParams) (*model.User, error) {
	fields := map[string]interface{}{}
	if p.Name != "" {
		fields["name"] = p.Name
	}
	if p.Avatar != "" {
		fields["avatar"] = p.Avatar
	}
	if p.Password != "" {
		hashed, err := utils.HashPassword(p.Password)
		if err != nil {
			return nil, err
		}
		fields["password"] = hashed
	}
	switch p.Gender {
	case "0":
		fields["gender"] = model.GenderMale
	case "1":
		fields["gender"] = model.GenderFemale
	}

	lists := []struct {
		column string
		old    *string
		value  string
	}{
		{"collected_article_list", user.CollectedArticleList, p.CollectedArticleID},
		{"loved_article_list", user.LovedArticleList, p.LovedArticleID},
		{"published_article_list", user.PublishedArticleList, p.PublishedArticleID},
		{"read_history_list", user.ReadHistoryList, p.ReadArticleID},
		{"follower_list", user.FollowerList, p.FollowerUserID},
		{"following_list", user.FollowingList, p.FollowingUserID},
	}
	for _, l := range lists {
		if newVal, changed := strlist.Apply(l.old, l.value, p.IsDelete); changed {
			fields[l.column] = newVal
		}
	}

	if len(fields) > 0 {
		if err := s.dao.UpdateFields(ctx, user.ID, fields); err != nil {
			return nil, err
		}
	}
	return s.dao.GetByID(ctx, user.ID)
}

// Find 按用户名或手机号判断用户是否存在
func (s *UserService) Find(ctx context.Context, name, phone string) (bool, error) {
	var err error
	if name != "" {
		_, err = s.dao.FindByName(ctx, name)
	} else {
		_, err = s.dao.FindByPhone(ctx, phone)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
