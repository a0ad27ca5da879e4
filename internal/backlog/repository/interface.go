package repository

import (
	"context"

	"smart-day-planner/internal/model"
)

//go:generate mockery --name TaskRepository
type TaskRepository interface {
	CreateTask(ctx context.Context, opts CreateTaskOptions) (model.Task, error)
	GetOneTask(ctx context.Context, opts GetOneTaskOptions) (model.Task, error)
	ListTasks(ctx context.Context, opts ListTasksOptions) ([]model.Task, int, error)
	UpdateTask(ctx context.Context, opts UpdateTaskOptions) (model.Task, error)
	UpdateTaskStatus(ctx context.Context, ids []string, status model.TaskStatus) error
}
