package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"taskflow/internal/core/domain"
	"taskflow/internal/core/ports"
)

type TaskRepository struct {
	mu    sync.RWMutex
	ids   sequence
	tasks map[uint64]domain.Task
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository() *TaskRepository {
	return &TaskRepository{tasks: make(map[uint64]domain.Task)}
}

func (r *TaskRepository) Insert(_ context.Context, record domain.NewTaskRecord) (uint64, error) {
	id := r.ids.next()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.tasks[id] = domain.Task{
		ID:          id,
		UserID:      record.UserID,
		Title:       record.Title,
		Description: copyString(record.Description),
		Status:      record.Status,
		CreatedAt:   record.CreatedAt,
		UpdatedAt:   record.UpdatedAt,
	}
	return id, nil
}

func (r *TaskRepository) FindByID(_ context.Context, id uint64) (domain.Task, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	task, ok := r.tasks[id]
	if !ok {
		return domain.Task{}, false, nil
	}
	return clone(task), true, nil
}

func (r *TaskRepository) Update(_ context.Context, id uint64, title string, description *string, updatedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.tasks[id]
	if !ok {
		return nil
	}
	task.Title = title
	task.Description = copyString(description)
	task.UpdatedAt = updatedAt
	r.tasks[id] = task
	return nil
}

func (r *TaskRepository) UpdateStatus(_ context.Context, id uint64, status domain.TaskStatus, updatedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.tasks[id]
	if !ok {
		return nil
	}
	task.Status = status
	task.UpdatedAt = updatedAt
	r.tasks[id] = task
	return nil
}

func (r *TaskRepository) Delete(_ context.Context, id uint64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tasks[id]; !ok {
		return 0, nil
	}
	delete(r.tasks, id)
	return 1, nil
}

func (r *TaskRepository) ListByUser(_ context.Context, userID uint64) ([]domain.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tasks := make([]domain.Task, 0)
	for _, task := range r.tasks {
		if task.UserID == userID {
			tasks = append(tasks, clone(task))
		}
	}
	sort.Slice(tasks, func(i, j int) bool {
		if !tasks[i].CreatedAt.Equal(tasks[j].CreatedAt) {
			return tasks[i].CreatedAt.Before(tasks[j].CreatedAt)
		}
		return tasks[i].ID < tasks[j].ID
	})
	return tasks, nil
}

func clone(task domain.Task) domain.Task {
	task.Description = copyString(task.Description)
	return task
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	value := *s
	return &value
}
