package dto

import "encoding/json"

// TaskItem is the wire form of a task. Description is null when absent.
type TaskItem struct {
	ID          uint64  `json:"id"`
	UserID      uint64  `json:"user_id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

type CreateTaskRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
}

type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

// MoveTaskRequest keeps status raw: a non-string value is still an
// invalid status, not a malformed body.
type MoveTaskRequest struct {
	Status json.RawMessage `json:"status"`
}
