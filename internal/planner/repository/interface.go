package repository

import (
	"context"

	"smart-day-planner/internal/model"
)

//go:generate mockery --name EventRepository
type EventRepository interface {
	// CreateEvents stores a batch of events atomically.
	CreateEvents(ctx context.Context, opts []CreateEventOptions) ([]model.CalendarEvent, error)
	ListEvents(ctx context.Context, opts ListEventsOptions) ([]model.CalendarEvent, error)
	UpdateGoogleEventID(ctx context.Context, id, googleEventID string) error
}
