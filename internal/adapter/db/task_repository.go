package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"taskflow/internal/core/domain"
	"taskflow/internal/core/ports"
)

const (
	insertTaskQuery = `
INSERT INTO tasks (user_id, title, description, status, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?)
`
	selectTaskByIDQuery = `
SELECT id, user_id, title, description, status, created_at, updated_at
FROM tasks
WHERE id = ?
`
	updateTaskQuery = `
UPDATE tasks
SET title = ?, description = ?, updated_at = ?
WHERE id = ?
`
	updateTaskStatusQuery = `
UPDATE tasks
SET status = ?, updated_at = ?
WHERE id = ?
`
	deleteTaskQuery = `DELETE FROM tasks WHERE id = ?`

	listTasksByUserQuery = `
SELECT id, user_id, title, description, status, created_at, updated_at
FROM tasks
WHERE user_id = ?
ORDER BY created_at ASC, id ASC
`
)

type TaskRepository struct {
	db *sqlx.DB
}

type taskRow struct {
	ID          uint64         `db:"id"`
	UserID      uint64         `db:"user_id"`
	Title       string         `db:"title"`
	Description sql.NullString `db:"description"`
	Status      string         `db:"status"`
	CreatedAt   string         `db:"created_at"`
	UpdatedAt   string         `db:"updated_at"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Insert(ctx context.Context, record domain.NewTaskRecord) (uint64, error) {
	result, err := r.db.ExecContext(
		ctx,
		insertTaskQuery,
		record.UserID,
		record.Title,
		toNullString(record.Description),
		string(record.Status),
		formatTimestamp(record.CreatedAt),
		formatTimestamp(record.UpdatedAt),
	)
	if err != nil {
		return 0, fmt.Errorf("insert task: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert task: %w", err)
	}
	return uint64(id), nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id uint64) (domain.Task, bool, error) {
	var row taskRow
	if err := r.db.GetContext(ctx, &row, selectTaskByIDQuery, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Task{}, false, nil
		}
		return domain.Task{}, false, fmt.Errorf("select task %d: %w", id, err)
	}

	task, err := mapTaskRowToDomainTask(row)
	if err != nil {
		return domain.Task{}, false, err
	}
	return task, true, nil
}

func (r *TaskRepository) Update(ctx context.Context, id uint64, title string, description *string, updatedAt time.Time) error {
	_, err := r.db.ExecContext(
		ctx,
		updateTaskQuery,
		title,
		toNullString(description),
		formatTimestamp(updatedAt),
		id,
	)
	if err != nil {
		return fmt.Errorf("update task %d: %w", id, err)
	}
	return nil
}

func (r *TaskRepository) UpdateStatus(ctx context.Context, id uint64, status domain.TaskStatus, updatedAt time.Time) error {
	_, err := r.db.ExecContext(ctx, updateTaskStatusQuery, string(status), formatTimestamp(updatedAt), id)
	if err != nil {
		return fmt.Errorf("update task %d status: %w", id, err)
	}
	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, id uint64) (int64, error) {
	result, err := r.db.ExecContext(ctx, deleteTaskQuery, id)
	if err != nil {
		return 0, fmt.Errorf("delete task %d: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete task %d: %w", id, err)
	}
	return affected, nil
}

func (r *TaskRepository) ListByUser(ctx context.Context, userID uint64) ([]domain.Task, error) {
	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, listTasksByUserQuery, userID); err != nil {
		return nil, fmt.Errorf("list tasks of user %d: %w", userID, err)
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		task, err := mapTaskRowToDomainTask(row)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	return tasks, nil
}

func mapTaskRowToDomainTask(row taskRow) (domain.Task, error) {
	createdAt, err := parseTimestamp(row.CreatedAt)
	if err != nil {
		return domain.Task{}, fmt.Errorf("task %d created_at: %w", row.ID, err)
	}
	updatedAt, err := parseTimestamp(row.UpdatedAt)
	if err != nil {
		return domain.Task{}, fmt.Errorf("task %d updated_at: %w", row.ID, err)
	}

	task := domain.Task{
		ID:        row.ID,
		UserID:    row.UserID,
		Title:     row.Title,
		Status:    domain.TaskStatus(row.Status),
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}

	if row.Description.Valid {
		value := row.Description.String
		task.Description = &value
	}

	return task, nil
}

func toNullString(value *string) sql.NullString {
	if value == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *value, Valid: true}
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(domain.TimestampLayout)
}

func parseTimestamp(value string) (time.Time, error) {
	return time.Parse(domain.TimestampLayout, value)
}
