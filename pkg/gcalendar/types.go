package gcalendar

import "time"

// CreateEventRequest is the input for creating a Google Calendar event.
// The planner pushes one of these per committed assignment.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	Location    string
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string // e.g. "Asia/Ho_Chi_Minh"
}

// ListEventsRequest is the input for listing Google Calendar events.
// The planner lists one day at a time to collect busy intervals.
type ListEventsRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
	MaxResults int64
}

// Event is a simplified representation of a Google Calendar event.
// All-day events come back with midnight StartTime and EndTime.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	StartTime   time.Time
	EndTime     time.Time
	Location    string
}
