package request

// RegisterRequest 手机号注册（默认）或用户名密码注册
type RegisterRequest struct {
	Name       string `json:"name"`
	Avatar     string `json:"avatar"`
	IsPassword bool   `json:"isPassword"`
	Phone      string `json:"phone" binding:"omitempty,mobile"`
	Password   string `json:"password" binding:"omitempty,min=6"`
}

// LoginRequest 与注册同构的两种登录方式
type LoginRequest struct {
	Name       string `json:"name"`
	IsPassword bool   `json:"isPassword"`
	Phone      string `json:"phone" binding:"omitempty,mobile"`
	Password   string `json:"password"`
}

type WechatLoginRequest struct {
	Code string `json:"code" binding:"required"`
}

// UpdateUserRequest 六个列表操作字段共用 isDelete 标志
type UpdateUserRequest struct {
	Name               string `json:"name"`
	Avatar             string `json:"avatar"`
	Password           string `json:"password" binding:"omitempty,min=6"`
	Gender             string `json:"gender" binding:"omitempty,oneof=0 1"`
	CollectedArticleID string `json:"collectedArticleId"`
	LovedArticleID     string `json:"lovedArticleId"`
	PublishedArticleID string `json:"publishedArticleId"`
	ReadArticleID      string `json:"readArticleId"`
	FollowerUserID     string `json:"followerUserId"`
	FollowingUserID    string `json:"followingUserId"`
	IsDelete           bool   `json:"isDelete"`
}
