package request

type CreateCommentRequest struct {
	Content   string `json:"content" binding:"required"`
	ArticleID string `json:"article_id" binding:"required"`
}

type UpdateCommentRequest struct {
	VoteNumber string `json:"vote_number" binding:"required"`
}
