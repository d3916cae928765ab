package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"taskflow/internal/core/domain"
	"taskflow/internal/core/ports"
	"taskflow/pkg/clock"
)

type TaskService struct {
	taskRepository ports.TaskRepository
	clock          clock.Clock
}

func NewTaskService(taskRepository ports.TaskRepository, clk clock.Clock) *TaskService {
	if clk == nil {
		clk = clock.Real()
	}
	return &TaskService{taskRepository: taskRepository, clock: clk}
}

func (s *TaskService) CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	title, err := validateTitle(input.Title)
	if err != nil {
		return domain.Task{}, err
	}

	now := s.now()
	id, err := s.taskRepository.Insert(ctx, domain.NewTaskRecord{
		UserID:      input.UserID,
		Title:       title,
		Description: input.Description,
		Status:      domain.TaskStatusTodo,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return domain.Task{}, err
	}
	zap.L().Info("task created", zap.Uint64("task_id", id), zap.Uint64("user_id", input.UserID))

	return s.reload(ctx, id)
}

func (s *TaskService) GetTask(ctx context.Context, id uint64) (domain.Task, bool, error) {
	return s.taskRepository.FindByID(ctx, id)
}

func (s *TaskService) UpdateTask(ctx context.Context, id uint64, input domain.UpdateTaskInput) (domain.Task, error) {
	existing, err := s.loadExisting(ctx, id)
	if err != nil {
		return domain.Task{}, err
	}

	title := existing.Title
	if input.Title != nil {
		title = strings.TrimSpace(*input.Title)
	}
	// The stored title is re-validated too when no new one is supplied.
	if _, err := validateTitle(title); err != nil {
		return domain.Task{}, err
	}

	description := existing.Description
	if input.DescriptionSet {
		description = input.Description
	}

	if err := s.taskRepository.Update(ctx, id, title, description, s.touch(existing)); err != nil {
		return domain.Task{}, err
	}
	zap.L().Info("task updated", zap.Uint64("task_id", id))

	return s.reload(ctx, id)
}

func (s *TaskService) DeleteTask(ctx context.Context, id uint64) error {
	affected, err := s.taskRepository.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrTaskNotFound
	}
	zap.L().Info("task deleted", zap.Uint64("task_id", id))
	return nil
}

// MoveTask changes the status of a task. Every status is reachable from
// every other one; existence is checked before the status value.
func (s *TaskService) MoveTask(ctx context.Context, id uint64, status domain.TaskStatus) (domain.Task, error) {
	existing, err := s.loadExisting(ctx, id)
	if err != nil {
		return domain.Task{}, err
	}
	if !status.IsValid() {
		return domain.Task{}, domain.ErrInvalidStatus
	}

	if err := s.taskRepository.UpdateStatus(ctx, id, status, s.touch(existing)); err != nil {
		return domain.Task{}, err
	}
	zap.L().Info("task moved",
		zap.Uint64("task_id", id),
		zap.String("from", string(existing.Status)),
		zap.String("to", string(status)),
	)

	return s.reload(ctx, id)
}

func (s *TaskService) ListTasks(ctx context.Context, userID uint64) ([]domain.Task, error) {
	return s.taskRepository.ListByUser(ctx, userID)
}

func (s *TaskService) loadExisting(ctx context.Context, id uint64) (domain.Task, error) {
	task, found, err := s.taskRepository.FindByID(ctx, id)
	if err != nil {
		return domain.Task{}, err
	}
	if !found {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	return task, nil
}

func (s *TaskService) reload(ctx context.Context, id uint64) (domain.Task, error) {
	task, found, err := s.taskRepository.FindByID(ctx, id)
	if err != nil {
		return domain.Task{}, err
	}
	if !found {
		return domain.Task{}, fmt.Errorf("reload task %d: %w", id, domain.ErrTaskNotFound)
	}
	return task, nil
}

func (s *TaskService) now() time.Time {
	return s.clock.Now().UTC().Truncate(time.Millisecond)
}

// touch returns the updated_at value for a mutation of task, never earlier
// than its created_at.
func (s *TaskService) touch(task domain.Task) time.Time {
	now := s.now()
	if now.Before(task.CreatedAt) {
		return task.CreatedAt
	}
	return now
}

func validateTitle(title string) (string, error) {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return "", domain.ErrEmptyTitle
	}
	return trimmed, nil
}

var _ ports.TaskService = (*TaskService)(nil)
