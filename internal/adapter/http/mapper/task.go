package mapper

import (
	"github.com/dephea/bitrix-task/internal/adapter/http/dto"
	"github.com/dephea/bitrix-task/internal/core/domain"
)

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	return dto.TaskItem{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Creator:     task.Creator,
		Assignee:    task.Assignee,
		Priority:    task.Priority,
		Status:      task.Status,
		DueAt:       task.DueAt,
	}
}

// ToOptionalTaskItem keeps a missing task as nil so it renders as JSON null.
func ToOptionalTaskItem(task *domain.Task) *dto.TaskItem {
	if task == nil {
		return nil
	}
	item := ToTaskItem(*task)
	return &item
}

func ToTaskList(page domain.TaskPage) dto.TaskListResponse {
	return dto.TaskListResponse{
		Tasks: ToTaskItems(page.Tasks),
		Pagination: dto.Pagination{
			Offset: page.Offset,
			Total:  page.Total,
		},
	}
}
