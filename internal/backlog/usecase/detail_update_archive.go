package usecase

import (
	"context"
	"strings"

	"smart-day-planner/internal/backlog"
	repo "smart-day-planner/internal/backlog/repository"
	"smart-day-planner/internal/model"
)

// Detail retrieves a single Task by ID. Returns ErrTaskNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (backlog.DetailOutput, error) {
	task, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneTask: %v", err)
		return backlog.DetailOutput{}, err
	}
	if task.ID == "" {
		return backlog.DetailOutput{}, backlog.ErrTaskNotFound
	}
	return backlog.DetailOutput{Task: task}, nil
}

// Update modifies an existing Task. Returns ErrTaskNotFound when not found.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input backlog.UpdateInput) (backlog.UpdateOutput, error) {
	// Ensure task exists
	existing, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: input.ID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetOneTask: %v", err)
		return backlog.UpdateOutput{}, err
	}
	if existing.ID == "" {
		return backlog.UpdateOutput{}, backlog.ErrTaskNotFound
	}

	duration := existing.DurationMinutes
	if input.DurationMinutes != nil {
		duration = *input.DurationMinutes
	}
	if duration <= 0 {
		return backlog.UpdateOutput{}, backlog.ErrInvalidDuration
	}

	priority := existing.Priority
	if input.Priority != nil {
		priority = *input.Priority
	}
	if priority < 0 || priority > 9 {
		return backlog.UpdateOutput{}, backlog.ErrInvalidPriority
	}

	task, err := uc.repo.UpdateTask(ctx, repo.UpdateTaskOptions{
		ID:              input.ID,
		Title:           uc.coalesce(strings.TrimSpace(input.Title), existing.Title),
		DurationMinutes: duration,
		Priority:        priority,
		TimePreference:  uc.coalesce(strings.TrimSpace(input.TimePreference), existing.TimePreference),
		Location:        uc.coalesce(strings.TrimSpace(input.Location), existing.Location),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateTask: %v", err)
		return backlog.UpdateOutput{}, err
	}
	return backlog.UpdateOutput{Task: task}, nil
}

// Archive marks a Task archived so the planner stops considering it.
// Returns ErrTaskNotFound when not found.
func (uc *implUseCase) Archive(ctx context.Context, sc model.Scope, id string) error {
	existing, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Archive GetOneTask: %v", err)
		return err
	}
	if existing.ID == "" {
		return backlog.ErrTaskNotFound
	}
	if err := uc.repo.UpdateTaskStatus(ctx, []string{id}, model.TaskStatusArchived); err != nil {
		uc.l.Errorf(ctx, "uc.Archive UpdateTaskStatus: %v", err)
		return err
	}
	return nil
}
