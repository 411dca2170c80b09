package handlers

import (
	"github.com/dephea/bitrix-task/internal/adapter/http/dto"
	"github.com/dephea/bitrix-task/internal/adapter/http/mapper"
	"github.com/dephea/bitrix-task/internal/core/ports"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	taskService ports.TaskService
}

func NewCommentHandler(taskService ports.TaskService) *CommentHandler {
	return &CommentHandler{taskService: taskService}
}

func (h *CommentHandler) AddComment(c *gin.Context) {
	taskID, fieldErrs := bindTaskURI(c)

	var req dto.CreateCommentRequest
	input, bodyErrs := bindBody(c, &req)
	fieldErrs = append(fieldErrs, bodyErrs...)
	if len(fieldErrs) > 0 {
		respondValidation(c, fieldErrs)
		return
	}

	commentID, err := h.taskService.AddComment(c.Request.Context(), taskID, input)
	if err != nil {
		respondFailure(c, "add comment", err)
		return
	}

	respondOK(c, dto.CommentCreatedResponse{CommentID: commentID})
}

func (h *CommentHandler) ListComments(c *gin.Context) {
	taskID, fieldErrs := bindTaskURI(c)
	if len(fieldErrs) > 0 {
		respondValidation(c, fieldErrs)
		return
	}

	comments, err := h.taskService.ListComments(c.Request.Context(), taskID)
	if err != nil {
		respondFailure(c, "list comments", err)
		return
	}

	respondOK(c, mapper.ToCommentList(comments))
}
