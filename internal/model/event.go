package model

import "time"

// EventSource tells where a calendar event came from.
type EventSource string

const (
	EventSourcePlanner  EventSource = "planner"  // committed by a plan run
	EventSourceExternal EventSource = "external" // imported busy block
)

// CalendarEvent is one occupied interval on a civil day. Start and end are
// minutes from local midnight, end exclusive.
type CalendarEvent struct {
	ID            string // stable UUID
	TaskID        string // originating backlog task; empty for external blocks
	Title         string
	Date          string // civil day, YYYY-MM-DD
	StartMinute   int
	EndMinute     int
	Location      string
	Source        EventSource
	GoogleEventID string // set once the event has been pushed to Google Calendar
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
