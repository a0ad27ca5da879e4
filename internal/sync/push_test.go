package sync_test

import (
	"context"
	"testing"
	"time"

	"smart-day-planner/internal/model"
	"smart-day-planner/internal/planner/repository"
	"smart-day-planner/internal/sync"
	"smart-day-planner/pkg/gcalendar"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type stubCalendar struct {
	created chan gcalendar.CreateEventRequest
}

func (s *stubCalendar) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	s.created <- req
	return &gcalendar.Event{ID: "g-123"}, nil
}

type stubEventRepo struct {
	recorded chan string
}

func (s *stubEventRepo) CreateEvents(ctx context.Context, opts []repository.CreateEventOptions) ([]model.CalendarEvent, error) {
	return nil, nil
}

func (s *stubEventRepo) ListEvents(ctx context.Context, opts repository.ListEventsOptions) ([]model.CalendarEvent, error) {
	return nil, nil
}

func (s *stubEventRepo) UpdateGoogleEventID(ctx context.Context, id, googleEventID string) error {
	s.recorded <- googleEventID
	return nil
}

func TestPushEvents(t *testing.T) {
	t.Run("Records Google Event ID", func(t *testing.T) {
		cal := &stubCalendar{created: make(chan gcalendar.CreateEventRequest, 1)}
		repo := &stubEventRepo{recorded: make(chan string, 1)}

		s := sync.NewCalendarSyncer(cal, repo, &mockLogger{}, "primary", "UTC")
		s.PushEvents([]model.CalendarEvent{{
			ID:          "ev-1",
			Title:       "Write report",
			Date:        "2026-03-02",
			StartMinute: 540,
			EndMinute:   600,
			Location:    "office",
		}})

		select {
		case req := <-cal.created:
			if req.Summary != "Write report" {
				t.Errorf("expected event title forwarded, got %q", req.Summary)
			}
			if req.StartTime.Hour() != 9 || req.StartTime.Minute() != 0 {
				t.Errorf("expected 09:00 start, got %v", req.StartTime)
			}
			if req.Location != "office" {
				t.Errorf("expected location forwarded, got %q", req.Location)
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for calendar push")
		}

		select {
		case id := <-repo.recorded:
			if id != "g-123" {
				t.Errorf("expected google event id g-123, got %q", id)
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for google event id record")
		}
	})

	t.Run("Skips Event With Invalid Date", func(t *testing.T) {
		cal := &stubCalendar{created: make(chan gcalendar.CreateEventRequest, 1)}
		repo := &stubEventRepo{recorded: make(chan string, 1)}

		s := sync.NewCalendarSyncer(cal, repo, &mockLogger{}, "primary", "UTC")
		s.PushEvents([]model.CalendarEvent{{ID: "ev-1", Date: "not-a-date", StartMinute: 540, EndMinute: 600}})

		select {
		case <-cal.created:
			t.Errorf("expected no push for invalid date")
		case <-time.After(150 * time.Millisecond):
		}
	})
}
