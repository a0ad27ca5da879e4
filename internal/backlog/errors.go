package backlog

import "errors"

var (
	ErrTitleRequired   = errors.New("title is required")
	ErrInvalidDuration = errors.New("duration must be a positive number of minutes")
	ErrInvalidPriority = errors.New("priority must be between 0 and 9")
	ErrInvalidStatus   = errors.New("invalid task status")
	ErrTaskNotFound    = errors.New("task not found")
)
