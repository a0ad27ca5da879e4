package sync

import (
	"context"
	"time"

	"smart-day-planner/internal/model"
	"smart-day-planner/pkg/gcalendar"
)

// PushEvents mirrors freshly planned events to Google Calendar.
// Runs in the background so planning never waits on Google.
func (s *CalendarSyncer) PushEvents(events []model.CalendarEvent) {
	if len(events) == 0 {
		return
	}

	s.wg.Add(1)
	go func(evs []model.CalendarEvent) {
		defer s.wg.Done()

		// CRITICAL: Add timeout to prevent goroutine leak
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		for _, event := range evs {
			s.pushWithRetry(ctx, event)
		}
	}(events)
}

// Wait blocks until all in-flight pushes have finished. The HTTP server never
// calls this; the one-shot CLI does so pending pushes are not lost on exit.
func (s *CalendarSyncer) Wait() {
	s.wg.Wait()
}

// pushWithRetry creates the remote event with exponential backoff.
func (s *CalendarSyncer) pushWithRetry(ctx context.Context, event model.CalendarEvent) {
	day, err := time.ParseInLocation(time.DateOnly, event.Date, s.loc)
	if err != nil {
		s.l.Errorf(ctx, "sync: event %s has invalid date %q: %v", event.ID, event.Date, err)
		return
	}

	start := day.Add(time.Duration(event.StartMinute) * time.Minute)
	end := day.Add(time.Duration(event.EndMinute) * time.Minute)

	maxRetries := 3
	backoff := 2 * time.Second

	for i := 0; i < maxRetries; i++ {
		created, err := s.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
			CalendarID:  s.calendarID,
			Summary:     event.Title,
			Description: "Planned by smart-day-planner",
			Location:    event.Location,
			StartTime:   start,
			EndTime:     end,
			Timezone:    s.timezone,
		})
		if err != nil {
			s.l.Warnf(ctx, "sync: push event %s failed (retry %d/%d): %v", event.ID, i+1, maxRetries, err)
			time.Sleep(backoff)
			backoff *= 2
			continue
		}

		if err := s.repo.UpdateGoogleEventID(ctx, event.ID, created.ID); err != nil {
			s.l.Errorf(ctx, "sync: record google event id for %s: %v", event.ID, err)
		}
		s.l.Infof(ctx, "sync: pushed event %s to google calendar: %s", event.ID, created.HtmlLink)
		return
	}

	s.l.Errorf(ctx, "sync: FAILED to push event %s after %d retries", event.ID, maxRetries)
}
