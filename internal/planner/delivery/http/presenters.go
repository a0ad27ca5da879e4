package http

import (
	"smart-day-planner/internal/model"
	"smart-day-planner/internal/planner"
	"smart-day-planner/internal/scheduling"
)

// --- Request DTOs ---

type planReq struct {
	Date   string `json:"date"    binding:"omitempty,max=64"`
	DryRun bool   `json:"dry_run"`
}

func (r planReq) validate() error { return nil }

func (r planReq) toInput() planner.PlanDayInput {
	return planner.PlanDayInput{
		Date:   r.Date,
		DryRun: r.DryRun,
	}
}

// ---

type dayReq struct {
	Date string `form:"date" binding:"omitempty,max=64"`
}

func (r dayReq) validate() error { return nil }

func (r dayReq) toInput() planner.GetDayInput {
	return planner.GetDayInput{Date: r.Date}
}

// --- Response DTOs ---

type scheduledTaskResp struct {
	TaskID          string `json:"task_id"`
	Title           string `json:"title"`
	Start           string `json:"start"`
	End             string `json:"end"`
	StartMinute     int    `json:"start_minute"`
	EndMinute       int    `json:"end_minute"`
	DurationMinutes int    `json:"duration_minutes"`
	Priority        int    `json:"priority"`
	Location        string `json:"location,omitempty"`
}

type unscheduledTaskResp struct {
	TaskID          string `json:"task_id"`
	Title           string `json:"title"`
	DurationMinutes int    `json:"duration_minutes"`
	Priority        int    `json:"priority"`
}

type planResp struct {
	Date             string                `json:"date"`
	DryRun           bool                  `json:"dry_run"`
	Scheduled        []scheduledTaskResp   `json:"scheduled"`
	Unscheduled      []unscheduledTaskResp `json:"unscheduled"`
	ScheduledCount   int                   `json:"scheduled_count"`
	UnscheduledCount int                   `json:"unscheduled_count"`
}

func (h *handler) newPlanResp(out planner.PlanDayOutput) planResp {
	scheduled := make([]scheduledTaskResp, len(out.Scheduled))
	for i, s := range out.Scheduled {
		scheduled[i] = scheduledTaskResp{
			TaskID:          s.Task.ID,
			Title:           s.Task.Title,
			Start:           s.Start,
			End:             s.End,
			StartMinute:     s.StartMinute,
			EndMinute:       s.EndMinute,
			DurationMinutes: s.Task.DurationMinutes,
			Priority:        s.Task.Priority,
			Location:        s.Task.Location,
		}
	}

	unscheduled := make([]unscheduledTaskResp, len(out.Unscheduled))
	for i, task := range out.Unscheduled {
		unscheduled[i] = unscheduledTaskResp{
			TaskID:          task.ID,
			Title:           task.Title,
			DurationMinutes: task.DurationMinutes,
			Priority:        task.Priority,
		}
	}

	return planResp{
		Date:             out.Date,
		DryRun:           out.DryRun,
		Scheduled:        scheduled,
		Unscheduled:      unscheduled,
		ScheduledCount:   len(scheduled),
		UnscheduledCount: len(unscheduled),
	}
}

type eventResp struct {
	ID            string `json:"id"`
	TaskID        string `json:"task_id,omitempty"`
	Title         string `json:"title"`
	Date          string `json:"date"`
	Start         string `json:"start"`
	End           string `json:"end"`
	StartMinute   int    `json:"start_minute"`
	EndMinute     int    `json:"end_minute"`
	Location      string `json:"location,omitempty"`
	Source        string `json:"source"`
	GoogleEventID string `json:"google_event_id,omitempty"`
}

func newEventResp(event model.CalendarEvent) eventResp {
	return eventResp{
		ID:            event.ID,
		TaskID:        event.TaskID,
		Title:         event.Title,
		Date:          event.Date,
		Start:         scheduling.Clock(event.StartMinute),
		End:           scheduling.Clock(event.EndMinute),
		StartMinute:   event.StartMinute,
		EndMinute:     event.EndMinute,
		Location:      event.Location,
		Source:        string(event.Source),
		GoogleEventID: event.GoogleEventID,
	}
}

type dayResp struct {
	Date   string      `json:"date"`
	Events []eventResp `json:"events"`
}

func (h *handler) newDayResp(out planner.GetDayOutput) dayResp {
	events := make([]eventResp, len(out.Events))
	for i, event := range out.Events {
		events[i] = newEventResp(event)
	}
	return dayResp{
		Date:   out.Date,
		Events: events,
	}
}
