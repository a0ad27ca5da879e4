package usecase

import (
	"context"
	"strings"

	"smart-day-planner/internal/backlog"
	repo "smart-day-planner/internal/backlog/repository"
	"smart-day-planner/internal/model"
)

// Create validates and stores a new pending Task.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input backlog.CreateInput) (backlog.CreateOutput, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return backlog.CreateOutput{}, backlog.ErrTitleRequired
	}
	if input.DurationMinutes <= 0 {
		return backlog.CreateOutput{}, backlog.ErrInvalidDuration
	}
	if input.Priority < 0 || input.Priority > 9 {
		return backlog.CreateOutput{}, backlog.ErrInvalidPriority
	}

	task, err := uc.repo.CreateTask(ctx, repo.CreateTaskOptions{
		Title:           title,
		DurationMinutes: input.DurationMinutes,
		Priority:        input.Priority,
		TimePreference:  strings.TrimSpace(input.TimePreference),
		Location:        strings.TrimSpace(input.Location),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateTask: %v", err)
		return backlog.CreateOutput{}, err
	}

	return backlog.CreateOutput{Task: task}, nil
}
