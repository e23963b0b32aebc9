package request

type CreateArticleRequest struct {
	Content string `json:"content" binding:"required"`
}

// UpdateArticleRequest vote_number 以字符串传递，策略上只接受 "1"
type UpdateArticleRequest struct {
	Content    string `json:"content"`
	VoteNumber string `json:"vote_number"`
}

// PageQuery 列表接口的分页参数
type PageQuery struct {
	PerPage int `form:"perpage,default=10"`
	Page    int `form:"page,default=1"`
}
