package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	backlogRepo "smart-day-planner/internal/backlog/repository"
	"smart-day-planner/internal/model"
	"smart-day-planner/internal/planner"
	"smart-day-planner/internal/planner/repository"
	"smart-day-planner/internal/planner/usecase"
	"smart-day-planner/internal/scheduling"
	"smart-day-planner/pkg/datemath"
	"smart-day-planner/pkg/gcalendar"
)

// planDate is far enough out that the workday always opens at 08:00.
const planDate = "2030-06-03"

// mock dependencies

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

type mockTaskRepo struct {
	fail    bool
	pending []model.Task

	statusIDs  []string
	lastStatus model.TaskStatus
}

func (m *mockTaskRepo) CreateTask(ctx context.Context, opts backlogRepo.CreateTaskOptions) (model.Task, error) {
	return model.Task{}, nil
}

func (m *mockTaskRepo) GetOneTask(ctx context.Context, opts backlogRepo.GetOneTaskOptions) (model.Task, error) {
	return model.Task{}, nil
}

func (m *mockTaskRepo) ListTasks(ctx context.Context, opts backlogRepo.ListTasksOptions) ([]model.Task, int, error) {
	if m.fail {
		return nil, 0, errors.New("db error")
	}
	return m.pending, len(m.pending), nil
}

func (m *mockTaskRepo) UpdateTask(ctx context.Context, opts backlogRepo.UpdateTaskOptions) (model.Task, error) {
	return model.Task{}, nil
}

func (m *mockTaskRepo) UpdateTaskStatus(ctx context.Context, ids []string, status model.TaskStatus) error {
	if m.fail {
		return errors.New("db error")
	}
	m.statusIDs = ids
	m.lastStatus = status
	return nil
}

type mockEventRepo struct {
	fail   bool
	stored []model.CalendarEvent

	created []repository.CreateEventOptions
}

func (m *mockEventRepo) CreateEvents(ctx context.Context, opts []repository.CreateEventOptions) ([]model.CalendarEvent, error) {
	if m.fail {
		return nil, errors.New("db error")
	}
	m.created = opts
	events := make([]model.CalendarEvent, len(opts))
	for i, opt := range opts {
		events[i] = model.CalendarEvent{
			ID:          "ev-" + opt.TaskID,
			TaskID:      opt.TaskID,
			Title:       opt.Title,
			Date:        opt.Date,
			StartMinute: opt.StartMinute,
			EndMinute:   opt.EndMinute,
			Source:      opt.Source,
		}
	}
	return events, nil
}

func (m *mockEventRepo) ListEvents(ctx context.Context, opts repository.ListEventsOptions) ([]model.CalendarEvent, error) {
	if m.fail {
		return nil, errors.New("db error")
	}
	out := make([]model.CalendarEvent, 0)
	for _, ev := range m.stored {
		if opts.Date == "" || ev.Date == opts.Date {
			out = append(out, ev)
		}
	}
	return out, nil
}

func (m *mockEventRepo) UpdateGoogleEventID(ctx context.Context, id, googleEventID string) error {
	return nil
}

type mockCalendar struct {
	fail   bool
	events []gcalendar.Event
}

func (m *mockCalendar) ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error) {
	if m.fail {
		return nil, errors.New("google unreachable")
	}
	return m.events, nil
}

type mockPusher struct {
	pushed []model.CalendarEvent
}

func (m *mockPusher) PushEvents(events []model.CalendarEvent) {
	m.pushed = append(m.pushed, events...)
}

func newPlannerUC(taskRepo *mockTaskRepo, eventRepo *mockEventRepo, cal usecase.CalendarClient, pusher usecase.EventPusher) planner.UseCase {
	dm, _ := datemath.NewParser("UTC")
	return usecase.New(
		&mockLogger{},
		scheduling.NewGreedyStrategy(),
		taskRepo,
		eventRepo,
		cal,
		pusher,
		dm,
		"UTC",
		"primary",
	)
}

func pendingTask(id, title string, duration, priority int, pref string, createdAt time.Time) model.Task {
	return model.Task{
		ID:              id,
		Title:           title,
		DurationMinutes: duration,
		Priority:        priority,
		TimePreference:  pref,
		Status:          model.TaskStatusPending,
		CreatedAt:       createdAt,
	}
}

func atDay(t *testing.T, clock string) time.Time {
	t.Helper()
	ts, err := time.Parse("2006-01-02 15:04", planDate+" "+clock)
	if err != nil {
		t.Fatalf("bad clock %q: %v", clock, err)
	}
	return ts
}

func TestPlanDay(t *testing.T) {
	sc := model.Scope{UserID: "u1"}
	base := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

	t.Run("Success Path", func(t *testing.T) {
		taskRepo := &mockTaskRepo{pending: []model.Task{
			pendingTask("task-a", "Deep work", 60, 1, "", base),
			pendingTask("task-b", "Dentist", 30, 2, "at 2pm", base.Add(time.Minute)),
		}}
		eventRepo := &mockEventRepo{}
		pusher := &mockPusher{}
		uc := newPlannerUC(taskRepo, eventRepo, nil, pusher)

		out, err := uc.PlanDay(context.Background(), sc, planner.PlanDayInput{Date: planDate})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if out.Date != planDate {
			t.Errorf("expected date %s, got %s", planDate, out.Date)
		}
		if len(out.Scheduled) != 2 {
			t.Fatalf("expected 2 scheduled tasks, got %d", len(out.Scheduled))
		}

		// Pinned task commits first, then the flexible one fills from the start.
		if out.Scheduled[0].Task.ID != "task-b" || out.Scheduled[0].StartMinute != 840 {
			t.Errorf("expected task-b pinned at 840, got %s at %d", out.Scheduled[0].Task.ID, out.Scheduled[0].StartMinute)
		}
		if out.Scheduled[1].Task.ID != "task-a" || out.Scheduled[1].StartMinute != 480 {
			t.Errorf("expected task-a at 480, got %s at %d", out.Scheduled[1].Task.ID, out.Scheduled[1].StartMinute)
		}
		if out.Scheduled[0].Start != "14:00" || out.Scheduled[0].End != "14:30" {
			t.Errorf("expected clock 14:00-14:30, got %s-%s", out.Scheduled[0].Start, out.Scheduled[0].End)
		}

		if len(eventRepo.created) != 2 {
			t.Errorf("expected 2 events persisted, got %d", len(eventRepo.created))
		}
		if eventRepo.created[0].Source != model.EventSourcePlanner {
			t.Errorf("expected planner source, got %q", eventRepo.created[0].Source)
		}
		if len(taskRepo.statusIDs) != 2 || taskRepo.lastStatus != model.TaskStatusScheduled {
			t.Errorf("expected both tasks marked scheduled, got %v %q", taskRepo.statusIDs, taskRepo.lastStatus)
		}
		if len(pusher.pushed) != 2 {
			t.Errorf("expected 2 events pushed to google, got %d", len(pusher.pushed))
		}
	})

	t.Run("Dry Run Persists Nothing", func(t *testing.T) {
		taskRepo := &mockTaskRepo{pending: []model.Task{
			pendingTask("task-a", "Deep work", 60, 1, "", base),
		}}
		eventRepo := &mockEventRepo{}
		pusher := &mockPusher{}
		uc := newPlannerUC(taskRepo, eventRepo, nil, pusher)

		out, err := uc.PlanDay(context.Background(), sc, planner.PlanDayInput{Date: planDate, DryRun: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.DryRun {
			t.Errorf("expected dry run flag echoed")
		}
		if len(out.Scheduled) != 1 {
			t.Errorf("expected 1 scheduled task, got %d", len(out.Scheduled))
		}
		if len(eventRepo.created) != 0 {
			t.Errorf("expected no events persisted on dry run, got %d", len(eventRepo.created))
		}
		if len(taskRepo.statusIDs) != 0 {
			t.Errorf("expected no status change on dry run, got %v", taskRepo.statusIDs)
		}
		if len(pusher.pushed) != 0 {
			t.Errorf("expected no push on dry run, got %d", len(pusher.pushed))
		}
	})

	t.Run("Stored Events Block Slots", func(t *testing.T) {
		taskRepo := &mockTaskRepo{pending: []model.Task{
			pendingTask("task-a", "Deep work", 60, 1, "", base),
		}}
		eventRepo := &mockEventRepo{stored: []model.CalendarEvent{
			{ID: "ev-x", Date: planDate, StartMinute: 480, EndMinute: 540},
		}}
		uc := newPlannerUC(taskRepo, eventRepo, nil, nil)

		out, err := uc.PlanDay(context.Background(), sc, planner.PlanDayInput{Date: planDate})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Scheduled) != 1 || out.Scheduled[0].StartMinute != 540 {
			t.Fatalf("expected task after stored event at 540, got %+v", out.Scheduled)
		}
	})

	t.Run("Google Busy Merges Into The Day", func(t *testing.T) {
		taskRepo := &mockTaskRepo{pending: []model.Task{
			pendingTask("task-a", "Deep work", 60, 1, "", base),
		}}
		eventRepo := &mockEventRepo{stored: []model.CalendarEvent{
			{ID: "ev-x", Date: planDate, StartMinute: 480, EndMinute: 540, GoogleEventID: "g-1"},
		}}
		cal := &mockCalendar{events: []gcalendar.Event{
			{ID: "g-1", Summary: "Mirrored", StartTime: atDay(t, "08:00"), EndTime: atDay(t, "09:00")},
			{ID: "g-2", Summary: "Standup", StartTime: atDay(t, "09:00"), EndTime: atDay(t, "10:00")},
		}}
		uc := newPlannerUC(taskRepo, eventRepo, cal, nil)

		out, err := uc.PlanDay(context.Background(), sc, planner.PlanDayInput{Date: planDate})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Scheduled) != 1 || out.Scheduled[0].StartMinute != 600 {
			t.Fatalf("expected task pushed past google busy to 600, got %+v", out.Scheduled)
		}
	})

	t.Run("Google Failure Degrades To Local View", func(t *testing.T) {
		taskRepo := &mockTaskRepo{pending: []model.Task{
			pendingTask("task-a", "Deep work", 60, 1, "", base),
		}}
		eventRepo := &mockEventRepo{stored: []model.CalendarEvent{
			{ID: "ev-x", Date: planDate, StartMinute: 480, EndMinute: 540},
		}}
		uc := newPlannerUC(taskRepo, eventRepo, &mockCalendar{fail: true}, nil)

		out, err := uc.PlanDay(context.Background(), sc, planner.PlanDayInput{Date: planDate})
		if err != nil {
			t.Fatalf("expected graceful degradation, got %v", err)
		}
		if len(out.Scheduled) != 1 || out.Scheduled[0].StartMinute != 540 {
			t.Fatalf("expected local-only plan at 540, got %+v", out.Scheduled)
		}
	})

	t.Run("All Day Google Events Are Ignored", func(t *testing.T) {
		dayStart, _ := time.Parse(time.DateOnly, planDate)
		taskRepo := &mockTaskRepo{pending: []model.Task{
			pendingTask("task-a", "Deep work", 60, 1, "", base),
		}}
		cal := &mockCalendar{events: []gcalendar.Event{
			{ID: "g-3", Summary: "Holiday", StartTime: dayStart, EndTime: dayStart.AddDate(0, 0, 1)},
		}}
		uc := newPlannerUC(taskRepo, &mockEventRepo{}, cal, nil)

		out, err := uc.PlanDay(context.Background(), sc, planner.PlanDayInput{Date: planDate})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Scheduled) != 1 || out.Scheduled[0].StartMinute != 480 {
			t.Fatalf("expected all-day event ignored, got %+v", out.Scheduled)
		}
	})

	t.Run("Unplaceable Tasks Are Reported", func(t *testing.T) {
		taskRepo := &mockTaskRepo{pending: []model.Task{
			pendingTask("task-big", "Full day offsite", 300, 1, "", base),
		}}
		eventRepo := &mockEventRepo{stored: []model.CalendarEvent{
			{ID: "ev-x", Date: planDate, StartMinute: 480, EndMinute: 1200},
		}}
		uc := newPlannerUC(taskRepo, eventRepo, nil, nil)

		out, err := uc.PlanDay(context.Background(), sc, planner.PlanDayInput{Date: planDate})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Scheduled) != 0 {
			t.Errorf("expected nothing scheduled, got %d", len(out.Scheduled))
		}
		if len(out.Unscheduled) != 1 || out.Unscheduled[0].ID != "task-big" {
			t.Errorf("expected task-big unscheduled, got %+v", out.Unscheduled)
		}
		if len(eventRepo.created) != 0 {
			t.Errorf("expected no persistence for an empty plan")
		}
	})

	t.Run("Empty Backlog", func(t *testing.T) {
		eventRepo := &mockEventRepo{}
		uc := newPlannerUC(&mockTaskRepo{}, eventRepo, nil, nil)

		out, err := uc.PlanDay(context.Background(), sc, planner.PlanDayInput{Date: planDate})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Scheduled) != 0 || len(out.Unscheduled) != 0 {
			t.Errorf("expected empty plan, got %+v", out)
		}
	})

	t.Run("Relative Date", func(t *testing.T) {
		dm, _ := datemath.NewParser("UTC")
		expected, _ := dm.Parse("tomorrow", time.Now())

		taskRepo := &mockTaskRepo{pending: []model.Task{
			pendingTask("task-a", "Deep work", 60, 1, "", base),
		}}
		uc := newPlannerUC(taskRepo, &mockEventRepo{}, nil, nil)

		out, err := uc.PlanDay(context.Background(), sc, planner.PlanDayInput{Date: "tomorrow", DryRun: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Date != expected.Format(time.DateOnly) {
			t.Errorf("expected tomorrow %s, got %s", expected.Format(time.DateOnly), out.Date)
		}
	})

	t.Run("Invalid Date", func(t *testing.T) {
		uc := newPlannerUC(&mockTaskRepo{}, &mockEventRepo{}, nil, nil)

		_, err := uc.PlanDay(context.Background(), sc, planner.PlanDayInput{Date: "2030-13-99"})
		if !errors.Is(err, planner.ErrInvalidDate) {
			t.Errorf("expected ErrInvalidDate, got %v", err)
		}
	})

	t.Run("Task Load Failure", func(t *testing.T) {
		uc := newPlannerUC(&mockTaskRepo{fail: true}, &mockEventRepo{}, nil, nil)

		_, err := uc.PlanDay(context.Background(), sc, planner.PlanDayInput{Date: planDate})
		if err == nil {
			t.Errorf("expected error when tasks cannot be loaded")
		}
	})
}

func TestGetDay(t *testing.T) {
	sc := model.Scope{UserID: "u1"}

	t.Run("Returns Stored Events", func(t *testing.T) {
		eventRepo := &mockEventRepo{stored: []model.CalendarEvent{
			{ID: "ev-1", Date: planDate, StartMinute: 540, EndMinute: 600, Title: "Deep work"},
			{ID: "ev-2", Date: "2030-06-04", StartMinute: 480, EndMinute: 510, Title: "Other day"},
		}}
		uc := newPlannerUC(&mockTaskRepo{}, eventRepo, nil, nil)

		out, err := uc.GetDay(context.Background(), sc, planner.GetDayInput{Date: planDate})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Date != planDate {
			t.Errorf("expected date %s, got %s", planDate, out.Date)
		}
		if len(out.Events) != 1 || out.Events[0].ID != "ev-1" {
			t.Errorf("expected only the day's events, got %+v", out.Events)
		}
	})

	t.Run("Invalid Date", func(t *testing.T) {
		uc := newPlannerUC(&mockTaskRepo{}, &mockEventRepo{}, nil, nil)

		_, err := uc.GetDay(context.Background(), sc, planner.GetDayInput{Date: "9999-99-99"})
		if !errors.Is(err, planner.ErrInvalidDate) {
			t.Errorf("expected ErrInvalidDate, got %v", err)
		}
	})
}
