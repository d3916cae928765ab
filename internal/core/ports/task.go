package ports

import (
	"context"
	"time"

	"taskflow/internal/core/domain"
)

type TaskRepository interface {
	Insert(ctx context.Context, record domain.NewTaskRecord) (uint64, error)
	// FindByID reports found=false, with a nil error, when no row matches.
	FindByID(ctx context.Context, id uint64) (domain.Task, bool, error)
	Update(ctx context.Context, id uint64, title string, description *string, updatedAt time.Time) error
	UpdateStatus(ctx context.Context, id uint64, status domain.TaskStatus, updatedAt time.Time) error
	Delete(ctx context.Context, id uint64) (int64, error)
	ListByUser(ctx context.Context, userID uint64) ([]domain.Task, error)
}

type TaskService interface {
	CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error)
	GetTask(ctx context.Context, id uint64) (domain.Task, bool, error)
	UpdateTask(ctx context.Context, id uint64, input domain.UpdateTaskInput) (domain.Task, error)
	DeleteTask(ctx context.Context, id uint64) error
	MoveTask(ctx context.Context, id uint64, status domain.TaskStatus) (domain.Task, error)
	ListTasks(ctx context.Context, userID uint64) ([]domain.Task, error)
}
