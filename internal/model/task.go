package model

import "time"

// TaskStatus tracks where a task sits in its lifecycle.
type TaskStatus string

const (
	TaskStatusPending   TaskStatus = "pending"   // in the backlog, waiting for a plan
	TaskStatusScheduled TaskStatus = "scheduled" // placed on a day, no longer in the backlog
	TaskStatusArchived  TaskStatus = "archived"  // removed without being scheduled
)

// Task is a backlog entry waiting to be placed on a day.
type Task struct {
	ID              string // stable UUID; scheduling matches on this, never on the title
	Title           string
	DurationMinutes int    // estimated effort; must be positive to be schedulable
	Priority        int    // lower is more urgent
	TimePreference  string // free text, e.g. "after lunch", "at 2pm"; may be empty
	Location        string // optional place hint, carried onto the calendar event
	Status          TaskStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
