package usecase

import (
	"context"

	"smart-day-planner/internal/backlog"
	repo "smart-day-planner/internal/backlog/repository"
	"smart-day-planner/internal/model"
)

// List returns a paginated list of Tasks, newest first.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input backlog.ListInput) (backlog.ListOutput, error) {
	if input.Status != "" && !validStatus(input.Status) {
		return backlog.ListOutput{}, backlog.ErrInvalidStatus
	}

	tasks, total, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{
		Status: input.Status,
		Limit:  input.Limit,
		Offset: input.Offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListTasks: %v", err)
		return backlog.ListOutput{}, err
	}

	return backlog.ListOutput{
		Tasks:  tasks,
		Total:  total,
		Limit:  input.Limit,
		Offset: input.Offset,
	}, nil
}
