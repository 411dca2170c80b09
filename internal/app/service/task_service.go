package service

import (
	"context"

	"github.com/dephea/bitrix-task/internal/core/domain"
	"github.com/dephea/bitrix-task/internal/core/ports"
	"github.com/dephea/bitrix-task/pkg/jsonobject"
)

type TaskService struct {
	gateway ports.TaskGateway
}

func NewTaskService(gateway ports.TaskGateway) *TaskService {
	return &TaskService{gateway: gateway}
}

func (s *TaskService) CreateTask(ctx context.Context, input *jsonobject.Object) (domain.Task, error) {
	return s.gateway.CreateTask(ctx, input)
}

// ListTasks fetches one page. Offset must already be a multiple of domain.PageSize.
func (s *TaskService) ListTasks(ctx context.Context, in domain.ListTasksInput) (domain.TaskPage, error) {
	page, err := s.gateway.ListTasks(ctx, in)
	if err != nil {
		return domain.TaskPage{}, err
	}
	if page.Tasks == nil {
		page.Tasks = []domain.Task{}
	}
	page.Offset = in.Offset
	return page, nil
}

func (s *TaskService) GetTask(ctx context.Context, taskID string) (*domain.Task, error) {
	return s.gateway.GetTask(ctx, taskID)
}

func (s *TaskService) UpdateTask(ctx context.Context, taskID string, input *jsonobject.Object) (domain.Task, error) {
	return s.gateway.UpdateTask(ctx, taskID, input)
}

func (s *TaskService) DeleteTask(ctx context.Context, taskID string) (bool, error) {
	return s.gateway.DeleteTask(ctx, taskID)
}

func (s *TaskService) AddComment(ctx context.Context, taskID string, input *jsonobject.Object) (string, error) {
	return s.gateway.AddComment(ctx, taskID, input)
}

func (s *TaskService) ListComments(ctx context.Context, taskID string) ([]domain.Comment, error) {
	comments, err := s.gateway.ListComments(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if comments == nil {
		comments = []domain.Comment{}
	}
	return comments, nil
}

var _ ports.TaskService = (*TaskService)(nil)
