package planner

import "smart-day-planner/internal/model"

type PlanDayInput struct {
	// Date accepts "today", "tomorrow", "next monday" or a plain YYYY-MM-DD.
	// Empty means today.
	Date   string
	DryRun bool
}

// ScheduledTask pairs a backlog task with the slot it was given.
type ScheduledTask struct {
	Task        model.Task
	StartMinute int
	EndMinute   int
	Start       string // HH:MM
	End         string // HH:MM
}

type PlanDayOutput struct {
	Date        string
	Scheduled   []ScheduledTask
	Unscheduled []model.Task
	DryRun      bool
}

type GetDayInput struct {
	Date string
}

type GetDayOutput struct {
	Date   string
	Events []model.CalendarEvent
}
