package domain

import "time"

type TaskStatus string

const (
	TaskStatusTodo  TaskStatus = "todo"
	TaskStatusDoing TaskStatus = "doing"
	TaskStatusDone  TaskStatus = "done"
)

// TimestampLayout is the ISO-8601 form used for persisted and serialized timestamps.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// IsValid reports whether s is one of the three lifecycle stages.
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusDoing, TaskStatusDone:
		return true
	}
	return false
}

type Task struct {
	ID          uint64
	UserID      uint64
	Title       string
	Description *string
	Status      TaskStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type CreateTaskInput struct {
	UserID      uint64
	Title       string
	Description *string
}

// UpdateTaskInput carries the optional edits of a task. A nil Title keeps
// the stored title. DescriptionSet distinguishes an omitted description from
// an explicit null.
type UpdateTaskInput struct {
	Title          *string
	Description    *string
	DescriptionSet bool
}

// NewTaskRecord is the full set of columns written when a task is inserted.
type NewTaskRecord struct {
	UserID      uint64
	Title       string
	Description *string
	Status      TaskStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
