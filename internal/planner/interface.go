package planner

import (
	"context"

	"smart-day-planner/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// PlanDay schedules pending backlog tasks into the free slots of one day.
	// With DryRun set, the plan is computed but nothing is persisted.
	PlanDay(ctx context.Context, sc model.Scope, input PlanDayInput) (PlanDayOutput, error)

	// GetDay returns the stored events of a single day in start order.
	GetDay(ctx context.Context, sc model.Scope, input GetDayInput) (GetDayOutput, error)
}
