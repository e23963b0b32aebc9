package request

// CreateTempUpdateRequest 为别的用户创建一条待处理的列表更新
type CreateTempUpdateRequest struct {
	UserID    string `json:"user_id" binding:"required"`
	Value     string `json:"value" binding:"required"`
	CreatorID string `json:"creator_id" binding:"required"`
	IsDelete  bool   `json:"is_delete"`
}
