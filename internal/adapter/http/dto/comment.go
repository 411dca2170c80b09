package dto

type CreateCommentRequest struct {
	Message  string `json:"message" binding:"required"`
	AuthorID *int64 `json:"authorId"`
}

type CommentItem struct {
	ID        string  `json:"id"`
	AuthorID  *int64  `json:"authorId"`
	Message   string  `json:"message"`
	CreatedAt *string `json:"createdAt"`
}

type CommentCreatedResponse struct {
	CommentID string `json:"commentId"`
}

type CommentListResponse struct {
	Comments []CommentItem `json:"comments"`
}
