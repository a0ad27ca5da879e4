package usecase

import (
	"context"
	"time"

	"smart-day-planner/internal/planner"
	repo "smart-day-planner/internal/planner/repository"
	"smart-day-planner/internal/scheduling"
	"smart-day-planner/pkg/gcalendar"
)

// resolveDate turns relative words ("today", "next monday") or explicit
// YYYY-MM-DD dates into a normalized date string.
func (uc *implUseCase) resolveDate(raw string, now time.Time) (string, error) {
	day, err := uc.dateMath.Parse(raw, now)
	if err != nil {
		return "", planner.ErrInvalidDate
	}
	return day.Format(time.DateOnly), nil
}

// collectBusy merges stored events with the Google Calendar view of the day.
// Google being unreachable degrades to the local view, never fails the plan.
func (uc *implUseCase) collectBusy(ctx context.Context, date string) ([]scheduling.BusyInterval, error) {
	events, err := uc.repo.ListEvents(ctx, repo.ListEventsOptions{Date: date})
	if err != nil {
		return nil, err
	}

	busy := make([]scheduling.BusyInterval, 0, len(events))
	pushed := make(map[string]bool, len(events))
	for _, event := range events {
		busy = append(busy, scheduling.BusyInterval{
			Date:        event.Date,
			StartMinute: event.StartMinute,
			EndMinute:   event.EndMinute,
		})
		if event.GoogleEventID != "" {
			pushed[event.GoogleEventID] = true
		}
	}

	if uc.calendar == nil {
		return busy, nil
	}

	dayStart, err := time.ParseInLocation(time.DateOnly, date, uc.loc)
	if err != nil {
		return busy, nil
	}

	remote, err := uc.calendar.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: uc.calendarID,
		TimeMin:    dayStart,
		TimeMax:    dayStart.AddDate(0, 0, 1),
	})
	if err != nil {
		uc.l.Warnf(ctx, "uc.PlanDay ListEvents(google): %v", err)
		return busy, nil
	}

	for _, event := range remote {
		if pushed[event.ID] {
			// Mirrored by the planner itself, already counted above.
			continue
		}
		interval, ok := uc.remoteBusy(event, date)
		if !ok {
			continue
		}
		busy = append(busy, interval)
	}

	return busy, nil
}

// remoteBusy converts a Google event to a minute interval on the given date.
// All-day events don't block working hours.
func (uc *implUseCase) remoteBusy(event gcalendar.Event, date string) (scheduling.BusyInterval, bool) {
	start := event.StartTime.In(uc.loc)
	end := event.EndTime.In(uc.loc)

	if start.IsZero() || !end.After(start) {
		return scheduling.BusyInterval{}, false
	}
	if end.Sub(start) >= 24*time.Hour {
		return scheduling.BusyInterval{}, false
	}

	startDay := start.Format(time.DateOnly)
	endDay := end.Format(time.DateOnly)
	if startDay > date || endDay < date {
		return scheduling.BusyInterval{}, false
	}

	startMinute := 0
	if startDay == date {
		startMinute = scheduling.MinuteOf(start)
	}

	endMinute := 24 * 60
	if endDay == date {
		endMinute = scheduling.MinuteOf(end)
	}

	if endMinute <= startMinute {
		return scheduling.BusyInterval{}, false
	}

	return scheduling.BusyInterval{
		Date:        date,
		StartMinute: startMinute,
		EndMinute:   endMinute,
	}, true
}
