package tests

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	httpadapter "github.com/dephea/bitrix-task/internal/adapter/http"
	"github.com/dephea/bitrix-task/internal/adapter/http/handlers"
	"github.com/dephea/bitrix-task/internal/core/domain"
	"github.com/dephea/bitrix-task/pkg/apierrors"
	"github.com/dephea/bitrix-task/pkg/jsonobject"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type taskServiceMock struct {
	mock.Mock
}

func (m *taskServiceMock) CreateTask(ctx context.Context, input *jsonobject.Object) (domain.Task, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) ListTasks(ctx context.Context, in domain.ListTasksInput) (domain.TaskPage, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(domain.TaskPage), args.Error(1)
}

func (m *taskServiceMock) GetTask(ctx context.Context, taskID string) (*domain.Task, error) {
	args := m.Called(ctx, taskID)

	var task *domain.Task
	if value := args.Get(0); value != nil {
		task = value.(*domain.Task)
	}
	return task, args.Error(1)
}

func (m *taskServiceMock) UpdateTask(ctx context.Context, taskID string, input *jsonobject.Object) (domain.Task, error) {
	args := m.Called(ctx, taskID, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) DeleteTask(ctx context.Context, taskID string) (bool, error) {
	args := m.Called(ctx, taskID)
	return args.Bool(0), args.Error(1)
}

func (m *taskServiceMock) AddComment(ctx context.Context, taskID string, input *jsonobject.Object) (string, error) {
	args := m.Called(ctx, taskID, input)
	return args.String(0), args.Error(1)
}

func (m *taskServiceMock) ListComments(ctx context.Context, taskID string) ([]domain.Comment, error) {
	args := m.Called(ctx, taskID)

	var comments []domain.Comment
	if value := args.Get(0); value != nil {
		comments = value.([]domain.Comment)
	}
	return comments, args.Error(1)
}

type healthCheckerMock struct {
	mock.Mock
}

func (m *healthCheckerMock) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type envelopeResponse struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   json.RawMessage `json:"error"`
}

func newRouter(service *taskServiceMock, checker *healthCheckerMock) *gin.Engine {
	router := gin.New()
	httpadapter.RegisterRoutes(
		router,
		handlers.NewHealthHandler(checker),
		handlers.NewTaskHandler(service),
		handlers.NewCommentHandler(service),
	)
	return router
}

func serve(t *testing.T, router *gin.Engine, method, target, body string, headers ...string) (int, envelopeResponse) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var got envelopeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got), rec.Body.String())
	return rec.Code, got
}

func fieldErrors(t *testing.T, raw json.RawMessage) []apierrors.FieldError {
	t.Helper()
	var errs []apierrors.FieldError
	require.NoError(t, json.Unmarshal(raw, &errs))
	return errs
}

func strPtr(v string) *string { return &v }

func int64Ptr(v int64) *int64 { return &v }

func hasKeys(keys ...string) any {
	return mock.MatchedBy(func(input *jsonobject.Object) bool {
		if input.Len() != len(keys) {
			return false
		}
		for _, key := range keys {
			if !input.Has(key) {
				return false
			}
		}
		return true
	})
}
