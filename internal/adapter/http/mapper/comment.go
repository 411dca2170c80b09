package mapper

import (
	"github.com/dephea/bitrix-task/internal/adapter/http/dto"
	"github.com/dephea/bitrix-task/internal/core/domain"
)

func ToCommentItems(comments []domain.Comment) []dto.CommentItem {
	items := make([]dto.CommentItem, 0, len(comments))
	for _, comment := range comments {
		items = append(items, dto.CommentItem{
			ID:        comment.ID,
			AuthorID:  comment.AuthorID,
			Message:   comment.Message,
			CreatedAt: comment.CreatedAt,
		})
	}
	return items
}

func ToCommentList(comments []domain.Comment) dto.CommentListResponse {
	return dto.CommentListResponse{Comments: ToCommentItems(comments)}
}
