package sync

import (
	stdsync "sync"
	"time"

	"smart-day-planner/internal/planner/repository"
	pkgLog "smart-day-planner/pkg/log"
)

type CalendarSyncer struct {
	calendar   CalendarClient
	repo       repository.EventRepository
	l          pkgLog.Logger
	calendarID string
	timezone   string
	loc        *time.Location
	wg         stdsync.WaitGroup
}

func NewCalendarSyncer(calendar CalendarClient, repo repository.EventRepository, l pkgLog.Logger, calendarID, timezone string) *CalendarSyncer {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		loc = time.UTC
	}
	return &CalendarSyncer{
		calendar:   calendar,
		repo:       repo,
		l:          l,
		calendarID: calendarID,
		timezone:   timezone,
		loc:        loc,
	}
}
