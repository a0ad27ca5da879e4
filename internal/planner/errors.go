package planner

import "errors"

var (
	ErrInvalidDate = errors.New("invalid date")
)
