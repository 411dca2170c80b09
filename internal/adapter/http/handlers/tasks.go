package handlers

import (
	"strconv"

	"github.com/dephea/bitrix-task/internal/adapter/http/dto"
	"github.com/dephea/bitrix-task/internal/adapter/http/mapper"
	"github.com/dephea/bitrix-task/internal/adapter/http/middleware"
	"github.com/dephea/bitrix-task/internal/adapter/http/validation"
	"github.com/dephea/bitrix-task/internal/core/domain"
	"github.com/dephea/bitrix-task/internal/core/ports"
	"github.com/dephea/bitrix-task/pkg/apierrors"

	"github.com/gin-gonic/gin"
)

type TaskHandler struct {
	taskService ports.TaskService
}

func NewTaskHandler(taskService ports.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req dto.CreateTaskRequest
	input, fieldErrs := bindBody(c, &req)
	if len(fieldErrs) > 0 {
		respondValidation(c, fieldErrs)
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), input)
	if err != nil {
		respondFailure(c, "create task", err)
		return
	}

	respondOK(c, mapper.ToTaskItem(task))
}

func (h *TaskHandler) ListTasks(c *gin.Context) {
	var query dto.ListTasksQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondValidation(c, validation.FieldErrors(err, apierrors.LocationQuery, middleware.GetLang(c)))
		return
	}

	offset := 0
	if query.Offset != "" {
		// Already checked by the pageoffset rule.
		offset, _ = strconv.Atoi(query.Offset)
	}

	page, err := h.taskService.ListTasks(c.Request.Context(), domain.ListTasksInput{
		Offset: offset,
		Query:  c.Request.URL.Query(),
	})
	if err != nil {
		respondFailure(c, "list tasks", err)
		return
	}

	respondOK(c, mapper.ToTaskList(page))
}

func (h *TaskHandler) GetTask(c *gin.Context) {
	taskID, fieldErrs := bindTaskURI(c)
	if len(fieldErrs) > 0 {
		respondValidation(c, fieldErrs)
		return
	}

	task, err := h.taskService.GetTask(c.Request.Context(), taskID)
	if err != nil {
		respondFailure(c, "get task", err)
		return
	}

	respondOK(c, mapper.ToOptionalTaskItem(task))
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	taskID, fieldErrs := bindTaskURI(c)

	var req dto.UpdateTaskRequest
	input, bodyErrs := bindBody(c, &req)
	fieldErrs = append(fieldErrs, bodyErrs...)
	if len(fieldErrs) > 0 {
		respondValidation(c, fieldErrs)
		return
	}

	task, err := h.taskService.UpdateTask(c.Request.Context(), taskID, input)
	if err != nil {
		respondFailure(c, "update task", err)
		return
	}

	respondOK(c, mapper.ToTaskItem(task))
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	taskID, fieldErrs := bindTaskURI(c)
	if len(fieldErrs) > 0 {
		respondValidation(c, fieldErrs)
		return
	}

	ok, err := h.taskService.DeleteTask(c.Request.Context(), taskID)
	if err != nil {
		respondFailure(c, "delete task", err)
		return
	}

	respondOK(c, dto.DeleteTaskResponse{Success: ok})
}
