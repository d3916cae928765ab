package mapper

import (
	"taskflow/internal/adapter/http/dto"
	"taskflow/internal/core/domain"
)

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	item := dto.TaskItem{
		ID:        task.ID,
		UserID:    task.UserID,
		Title:     task.Title,
		Status:    string(task.Status),
		CreatedAt: task.CreatedAt.UTC().Format(domain.TimestampLayout),
		UpdatedAt: task.UpdatedAt.UTC().Format(domain.TimestampLayout),
	}

	if task.Description != nil {
		value := *task.Description
		item.Description = &value
	}

	return item
}
