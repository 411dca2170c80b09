package ports

import (
	"context"

	"github.com/dephea/bitrix-task/internal/core/domain"
	"github.com/dephea/bitrix-task/pkg/jsonobject"
)

// TaskGateway is the remote task provider. Write methods receive the client payload
// untouched so the provider adapter can apply its own field whitelist.
type TaskGateway interface {
	CreateTask(ctx context.Context, input *jsonobject.Object) (domain.Task, error)
	ListTasks(ctx context.Context, in domain.ListTasksInput) (domain.TaskPage, error)
	GetTask(ctx context.Context, taskID string) (*domain.Task, error)
	UpdateTask(ctx context.Context, taskID string, input *jsonobject.Object) (domain.Task, error)
	DeleteTask(ctx context.Context, taskID string) (bool, error)
	AddComment(ctx context.Context, taskID string, input *jsonobject.Object) (string, error)
	ListComments(ctx context.Context, taskID string) ([]domain.Comment, error)
	Ping(ctx context.Context) error
}

type TaskService interface {
	CreateTask(ctx context.Context, input *jsonobject.Object) (domain.Task, error)
	ListTasks(ctx context.Context, in domain.ListTasksInput) (domain.TaskPage, error)
	GetTask(ctx context.Context, taskID string) (*domain.Task, error)
	UpdateTask(ctx context.Context, taskID string, input *jsonobject.Object) (domain.Task, error)
	DeleteTask(ctx context.Context, taskID string) (bool, error)
	AddComment(ctx context.Context, taskID string, input *jsonobject.Object) (string, error)
	ListComments(ctx context.Context, taskID string) ([]domain.Comment, error)
}

type HealthChecker interface {
	Ping(ctx context.Context) error
}
