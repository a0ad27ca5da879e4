package repository

import "errors"

var (
	ErrFailedToInsertEvent = errors.New("failed to insert event")
	ErrFailedToListEvents  = errors.New("failed to list events")
	ErrFailedToUpdateEvent = errors.New("failed to update event")
)
