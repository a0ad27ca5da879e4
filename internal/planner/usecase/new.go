package usecase

import (
	"context"
	"time"

	backlogRepo "smart-day-planner/internal/backlog/repository"
	"smart-day-planner/internal/model"
	"smart-day-planner/internal/planner/repository"
	"smart-day-planner/internal/scheduling"
	"smart-day-planner/pkg/datemath"
	"smart-day-planner/pkg/gcalendar"
	pkgLog "smart-day-planner/pkg/log"
)

// CalendarClient is the slice of the Google Calendar client the planner reads from.
type CalendarClient interface {
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
}

// EventPusher mirrors stored events to an external calendar in the background.
type EventPusher interface {
	PushEvents(events []model.CalendarEvent)
}

type implUseCase struct {
	l          pkgLog.Logger
	strategy   scheduling.Strategy
	taskRepo   backlogRepo.TaskRepository
	repo       repository.EventRepository
	calendar   CalendarClient // nil when Google Calendar is not configured
	pusher     EventPusher    // nil when Google Calendar is not configured
	dateMath   *datemath.Parser
	calendarID string
	loc        *time.Location
}

// New creates a new planner UseCase instance.
func New(
	l pkgLog.Logger,
	strategy scheduling.Strategy,
	taskRepo backlogRepo.TaskRepository,
	eventRepo repository.EventRepository,
	calendar CalendarClient,
	pusher EventPusher,
	dateMath *datemath.Parser,
	timezone string,
	calendarID string,
) *implUseCase {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		loc = time.UTC
	}
	return &implUseCase{
		l:          l,
		strategy:   strategy,
		taskRepo:   taskRepo,
		repo:       eventRepo,
		calendar:   calendar,
		pusher:     pusher,
		dateMath:   dateMath,
		calendarID: calendarID,
		loc:        loc,
	}
}
