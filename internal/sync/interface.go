package sync

import (
	"context"

	"smart-day-planner/pkg/gcalendar"
)

// CalendarClient is the slice of the Google Calendar API the syncer needs.
type CalendarClient interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}
