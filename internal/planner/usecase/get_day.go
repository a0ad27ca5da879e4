package usecase

import (
	"context"
	"time"

	"smart-day-planner/internal/model"
	"smart-day-planner/internal/planner"
	repo "smart-day-planner/internal/planner/repository"
)

// GetDay returns the stored events of a single day in start order.
func (uc *implUseCase) GetDay(ctx context.Context, sc model.Scope, input planner.GetDayInput) (planner.GetDayOutput, error) {
	date, err := uc.resolveDate(input.Date, time.Now().In(uc.loc))
	if err != nil {
		return planner.GetDayOutput{}, err
	}

	events, err := uc.repo.ListEvents(ctx, repo.ListEventsOptions{Date: date})
	if err != nil {
		uc.l.Errorf(ctx, "uc.GetDay ListEvents: %v", err)
		return planner.GetDayOutput{}, err
	}

	return planner.GetDayOutput{
		Date:   date,
		Events: events,
	}, nil
}
