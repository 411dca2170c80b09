package domain

// Task is the external view of a provider task at request time.
type Task struct {
	ID          string
	Title       string
	Description *string
	Creator     int64
	Assignee    *int64
	Priority    *string
	Status      *string
	DueAt       *string
}

type Comment struct {
	ID        string
	AuthorID  *int64
	Message   string
	CreatedAt *string
}

type TaskPage struct {
	Tasks  []Task
	Offset int
	Total  int
}

// ListTasksInput carries the raw query parameters of a task listing.
type ListTasksInput struct {
	Offset int
	Query  map[string][]string
}
