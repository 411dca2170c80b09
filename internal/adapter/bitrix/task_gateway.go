package bitrix

import (
	"context"
	"fmt"
	"net/url"

	"github.com/dephea/bitrix-task/internal/adapter/bitrix/mapper"
	"github.com/dephea/bitrix-task/internal/core/domain"
	"github.com/dephea/bitrix-task/internal/core/ports"
	"github.com/dephea/bitrix-task/pkg/jsonobject"
)

// TaskGateway maps every task operation onto exactly one provider call.
type TaskGateway struct {
	client *Client
}

type taskFieldsParams struct {
	TaskID string            `json:"taskId,omitempty"`
	Fields mapper.TaskFields `json:"fields"`
}

type listTasksParams struct {
	Filter map[string]string `json:"filter"`
	Start  int               `json:"start"`
}

type getTaskParams struct {
	TaskID string   `json:"taskId"`
	Select []string `json:"select"`
}

type taskIDParams struct {
	TaskID string `json:"taskId"`
}

type commentFieldsParams struct {
	TaskID string               `json:"taskId"`
	Fields mapper.CommentFields `json:"fields"`
}

var _ ports.TaskGateway = (*TaskGateway)(nil)

func NewTaskGateway(client *Client) *TaskGateway {
	return &TaskGateway{client: client}
}

func (g *TaskGateway) CreateTask(ctx context.Context, input *jsonobject.Object) (domain.Task, error) {
	// New tasks always start pending, whatever status the client sent, so its value is never decoded.
	fields, err := mapper.MapCreateTaskRequest(input.Without("status"))
	if err != nil {
		return domain.Task{}, err
	}
	status := domain.StatusPending
	fields.Status = &status

	body, err := g.client.Call(ctx, MethodTaskAdd, taskFieldsParams{Fields: fields})
	if err != nil {
		return domain.Task{}, err
	}

	task, err := mapper.MapCreateTaskResponse(body)
	if err != nil {
		return domain.Task{}, fmt.Errorf("%s: %w", MethodTaskAdd, err)
	}
	return task, nil
}

func (g *TaskGateway) ListTasks(ctx context.Context, in domain.ListTasksInput) (domain.TaskPage, error) {
	params := listTasksParams{
		Filter: mapper.MapGetTasksRequest(url.Values(in.Query)),
		Start:  in.Offset,
	}

	body, err := g.client.Call(ctx, MethodTaskList, params)
	if err != nil {
		return domain.TaskPage{}, err
	}

	page, err := mapper.MapGetTasksResponse(body)
	if err != nil {
		return domain.TaskPage{}, fmt.Errorf("%s: %w", MethodTaskList, err)
	}
	page.Offset = in.Offset
	return page, nil
}

func (g *TaskGateway) GetTask(ctx context.Context, taskID string) (*domain.Task, error) {
	body, err := g.client.Call(ctx, MethodTaskGet, getTaskParams{TaskID: taskID, Select: mapper.TaskSelect})
	if err != nil {
		return nil, err
	}

	task, err := mapper.MapGetOneTaskResponse(body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodTaskGet, err)
	}
	return task, nil
}

func (g *TaskGateway) UpdateTask(ctx context.Context, taskID string, input *jsonobject.Object) (domain.Task, error) {
	fields, err := mapper.MapCreateTaskRequest(input)
	if err != nil {
		return domain.Task{}, err
	}

	body, err := g.client.Call(ctx, MethodTaskUpdate, taskFieldsParams{TaskID: taskID, Fields: fields})
	if err != nil {
		return domain.Task{}, err
	}

	task, err := mapper.MapCreateTaskResponse(body)
	if err != nil {
		return domain.Task{}, fmt.Errorf("%s: %w", MethodTaskUpdate, err)
	}
	return task, nil
}

func (g *TaskGateway) DeleteTask(ctx context.Context, taskID string) (bool, error) {
	body, err := g.client.Call(ctx, MethodTaskDelete, taskIDParams{TaskID: taskID})
	if err != nil {
		return false, err
	}

	ok, err := mapper.MapDeleteTaskResponse(body)
	if err != nil {
		return false, fmt.Errorf("%s: %w", MethodTaskDelete, err)
	}
	return ok, nil
}

func (g *TaskGateway) AddComment(ctx context.Context, taskID string, input *jsonobject.Object) (string, error) {
	fields, err := mapper.MapCreateCommentRequest(input)
	if err != nil {
		return "", err
	}

	body, err := g.client.Call(ctx, MethodCommentAdd, commentFieldsParams{TaskID: taskID, Fields: fields})
	if err != nil {
		return "", err
	}

	commentID, err := mapper.MapCreateCommentResponse(body)
	if err != nil {
		return "", fmt.Errorf("%s: %w", MethodCommentAdd, err)
	}
	return commentID, nil
}

func (g *TaskGateway) ListComments(ctx context.Context, taskID string) ([]domain.Comment, error) {
	body, err := g.client.Call(ctx, MethodCommentGetList, taskIDParams{TaskID: taskID})
	if err != nil {
		return nil, err
	}

	comments, err := mapper.MapGetCommentsResponse(body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodCommentGetList, err)
	}
	return comments, nil
}

func (g *TaskGateway) Ping(ctx context.Context) error {
	return g.client.Ping(ctx)
}
