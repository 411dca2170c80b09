package dto

type TaskItem struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Creator     int64   `json:"creator"`
	Assignee    *int64  `json:"assignee"`
	Priority    *string `json:"priority"`
	Status      *string `json:"status"`
	DueAt       *string `json:"due_at"`
}

type Pagination struct {
	Offset int `json:"offset"`
	Total  int `json:"total"`
}

type TaskListResponse struct {
	Tasks      []TaskItem `json:"tasks"`
	Pagination Pagination `json:"pagination"`
}

type DeleteTaskResponse struct {
	Success bool `json:"success"`
}

type TaskURI struct {
	ID string `uri:"id" binding:"required,number"`
}

// CreateTaskRequest only checks shapes. Unknown keys are rejected later by the provider whitelist.
// A status is accepted in any form and replaced by the pending status.
type CreateTaskRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description"`
	Priority    *int    `json:"priority" binding:"omitempty,intbetween=0:2"`
	Assignee    *int64  `json:"assignee"`
	DueAt       *string `json:"due_at" binding:"omitempty,iso8601"`
}

type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Priority    *int    `json:"priority" binding:"omitempty,intbetween=0:2"`
	Assignee    *int64  `json:"assignee" binding:"required"`
	DueAt       *string `json:"due_at" binding:"omitempty,iso8601"`
	Status      *int    `json:"status" binding:"required,intbetween=2:6"`
}

type ListTasksQuery struct {
	Status      string `form:"status" binding:"omitempty,number,intbetween=1:7"`
	Assignee    string `form:"assignee" binding:"omitempty,number"`
	CreatedFrom string `form:"created_from" binding:"omitempty,iso8601"`
	CreatedTo   string `form:"created_to" binding:"omitempty,iso8601"`
	DueFrom     string `form:"due_from" binding:"omitempty,iso8601"`
	DueTo       string `form:"due_to" binding:"omitempty,iso8601"`
	Offset      string `form:"offset" binding:"omitempty,pageoffset"`
}
