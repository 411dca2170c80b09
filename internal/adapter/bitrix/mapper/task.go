// Package mapper translates between the public task API and the Bitrix24 task field vocabulary.
//
// Writes go through a whitelist: a payload carrying any key outside the allowed set is rejected
// before translation. Reads are projections: provider fields we do not know are dropped.
package mapper

import (
	"encoding/json"
	"net/url"

	"github.com/dephea/bitrix-task/internal/core/domain"
	"github.com/dephea/bitrix-task/pkg/jsonobject"
)

// TaskSelect is the field list requested when fetching a single task.
var TaskSelect = []string{
	"ID", "TITLE", "DESCRIPTION", "CREATED_BY", "RESPONSIBLE_ID", "PRIORITY", "STATUS", "DEADLINE",
}

var allowedTaskFields = map[string]struct{}{
	"title":       {},
	"description": {},
	"assignee":    {},
	"priority":    {},
	"due_at":      {},
	"status":      {},
}

// TaskFields is the provider write payload. Nil fields are not sent.
type TaskFields struct {
	Title         *string `json:"TITLE,omitempty"`
	Description   *string `json:"DESCRIPTION,omitempty"`
	ResponsibleID *string `json:"RESPONSIBLE_ID,omitempty"`
	Priority      *string `json:"PRIORITY,omitempty"`
	Deadline      *string `json:"DEADLINE,omitempty"`
	Status        *string `json:"STATUS,omitempty"`
}

type taskFilterParam struct {
	query  string
	filter string
}

var taskFilterParams = []taskFilterParam{
	{query: "created_from", filter: ">=CREATED_DATE"},
	{query: "created_to", filter: "<=CREATED_DATE"},
	{query: "due_from", filter: ">=DEADLINE"},
	{query: "due_to", filter: "<=DEADLINE"},
	{query: "status", filter: "REAL_STATUS"},
	{query: "assignee", filter: "RESPONSIBLE_ID"},
}

type providerUser struct {
	ID flexInt `json:"id"`
}

type providerTask struct {
	ID            code          `json:"id"`
	Title         string        `json:"title"`
	Description   *string       `json:"description"`
	Creator       *providerUser `json:"creator"`
	Responsible   *providerUser `json:"responsible"`
	CreatedBy     flexInt       `json:"createdBy"`
	ResponsibleID flexInt       `json:"responsibleId"`
	Priority      code          `json:"priority"`
	Status        code          `json:"status"`
	Deadline      *string       `json:"deadline"`
}

type singleTaskResult struct {
	Task *providerTask `json:"task"`
}

type taskListResult struct {
	Tasks []providerTask `json:"tasks"`
}

// MapCreateTaskRequest checks input against the task whitelist and renames it into provider fields.
// It serves both create and update: status is carried through and the caller decides what to force.
func MapCreateTaskRequest(input *jsonobject.Object) (TaskFields, error) {
	if extra := input.Except(allowedTaskFields); len(extra) > 0 {
		return TaskFields{}, &domain.ValidationError{Kind: domain.ValidationUnexpectedField, Fields: extra}
	}

	var (
		fields  TaskFields
		invalid []string
	)
	assign := func(key string, dst **string, decode func(json.RawMessage) (*string, error)) {
		raw, ok := input.Get(key)
		if !ok {
			return
		}
		value, err := decode(raw)
		if err != nil {
			invalid = append(invalid, key)
			return
		}
		*dst = value
	}

	assign("title", &fields.Title, decodeText)
	assign("description", &fields.Description, decodeText)
	assign("assignee", &fields.ResponsibleID, decodeCode)
	assign("priority", &fields.Priority, decodeCode)
	assign("due_at", &fields.Deadline, decodeText)
	assign("status", &fields.Status, decodeCode)

	if len(invalid) > 0 {
		return TaskFields{}, &domain.ValidationError{Kind: domain.ValidationInvalidValue, Fields: invalid}
	}
	return fields, nil
}

// MapCreateTaskResponse projects result.task. A missing task object is a MappingError.
func MapCreateTaskResponse(body []byte) (domain.Task, error) {
	task, err := MapGetOneTaskResponse(body)
	if err != nil {
		return domain.Task{}, err
	}
	if task == nil {
		return domain.Task{}, &domain.MappingError{Reason: "missing result.task"}
	}
	return *task, nil
}

// MapGetTasksRequest builds a sparse provider filter: absent or empty parameters add no key.
func MapGetTasksRequest(query url.Values) map[string]string {
	filter := make(map[string]string)
	for _, param := range taskFilterParams {
		if value := query.Get(param.query); value != "" {
			filter[param.filter] = value
		}
	}
	return filter
}

// MapGetTasksResponse projects result.tasks and the provider total.
// A response without a task list yields an empty page.
func MapGetTasksResponse(body []byte) (domain.TaskPage, error) {
	env, err := decodeEnvelope(body)
	if err != nil {
		return domain.TaskPage{}, err
	}

	page := domain.TaskPage{Tasks: []domain.Task{}}
	if env.Total != nil {
		page.Total = *env.Total
	}
	if !isObject(env.Result) {
		return page, nil
	}

	var result taskListResult
	if err := json.Unmarshal(env.Result, &result); err != nil {
		return domain.TaskPage{}, &domain.MappingError{Reason: "result.tasks: " + err.Error()}
	}
	for _, task := range result.Tasks {
		page.Tasks = append(page.Tasks, projectTask(task))
	}
	return page, nil
}

// MapGetOneTaskResponse projects result.task, returning nil when the provider found nothing.
func MapGetOneTaskResponse(body []byte) (*domain.Task, error) {
	env, err := decodeEnvelope(body)
	if err != nil {
		return nil, err
	}
	if !isObject(env.Result) {
		return nil, nil
	}

	var result singleTaskResult
	if err := json.Unmarshal(env.Result, &result); err != nil {
		return nil, &domain.MappingError{Reason: "result.task: " + err.Error()}
	}
	if result.Task == nil {
		return nil, nil
	}
	task := projectTask(*result.Task)
	return &task, nil
}

// MapDeleteTaskResponse reads the success flag from result.task.
func MapDeleteTaskResponse(body []byte) (bool, error) {
	env, err := decodeEnvelope(body)
	if err != nil {
		return false, err
	}
	if !isObject(env.Result) {
		return false, &domain.MappingError{Reason: "missing result"}
	}

	var result struct {
		Task *bool `json:"task"`
	}
	if err := json.Unmarshal(env.Result, &result); err != nil {
		return false, &domain.MappingError{Reason: "result.task: " + err.Error()}
	}
	return result.Task != nil && *result.Task, nil
}

func projectTask(p providerTask) domain.Task {
	task := domain.Task{
		ID:          string(p.ID),
		Title:       p.Title,
		Description: p.Description,
		Priority:    domain.PriorityLabel(string(p.Priority)),
		Status:      domain.StatusLabel(string(p.Status)),
		DueAt:       p.Deadline,
	}

	creator := p.CreatedBy
	if p.Creator != nil && p.Creator.ID.set {
		creator = p.Creator.ID
	}
	task.Creator = creator.value

	assignee := p.ResponsibleID
	if p.Responsible != nil && p.Responsible.ID.set {
		assignee = p.Responsible.ID
	}
	task.Assignee = assignee.ptr()

	return task
}
