package backlog

import (
	"context"

	"smart-day-planner/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Create validates and stores a new pending task.
	Create(ctx context.Context, sc model.Scope, input CreateInput) (CreateOutput, error)

	// List returns backlog tasks filtered by status, newest first.
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)

	// Detail returns a single task by ID.
	Detail(ctx context.Context, sc model.Scope, id string) (DetailOutput, error)

	// Update modifies an existing task. Empty fields keep their current value.
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (UpdateOutput, error)

	// Archive takes a task out of the backlog without scheduling it.
	Archive(ctx context.Context, sc model.Scope, id string) error
}
