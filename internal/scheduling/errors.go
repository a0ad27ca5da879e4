package scheduling

import "errors"

// Domain-specific errors for the scheduling package.
var (
	// ErrNilTasks flags a nil task list, which is a caller bug. An empty
	// (non-nil) list is a valid request and yields an empty plan.
	ErrNilTasks = errors.New("task list is nil")
)
