package scheduling

import "time"

// Task is the scheduler's view of a backlog entry. It deliberately carries no
// title: assignments refer back to tasks by stable ID alone.
type Task struct {
	ID              string
	DurationMinutes int
	Priority        int    // lower is more urgent
	TimePreference  string // free text, parsed leniently
}

// BusyInterval is an occupied stretch on some civil day, end exclusive.
// Intervals on days other than the target are ignored during planning.
type BusyInterval struct {
	Date        string // YYYY-MM-DD
	StartMinute int
	EndMinute   int
}

// Request is one self-contained planning call.
type Request struct {
	Tasks []Task         // nil is a caller bug (ErrNilTasks); empty is a valid empty plan
	Busy  []BusyInterval // may span any dates, filtered to Date internally
	Date  string         // target civil day, YYYY-MM-DD
	Now   time.Time      // injectable clock; zero value means time.Now()
}

// Assignment places one task at a concrete start minute on the target day.
type Assignment struct {
	TaskID          string
	StartMinute     int
	DurationMinutes int
}

// EndMinute is the exclusive end of the assignment.
func (a Assignment) EndMinute() int {
	return a.StartMinute + a.DurationMinutes
}

// Plan is the outcome of a planning call. Assignments appear in commit order:
// pinned placements first, then flexible ones.
type Plan struct {
	Date        string
	Assignments []Assignment
}
