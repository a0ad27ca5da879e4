package repository

import "smart-day-planner/internal/model"

type CreateEventOptions struct {
	TaskID      string
	Title       string
	Date        string // YYYY-MM-DD
	StartMinute int
	EndMinute   int
	Location    string
	Source      model.EventSource
}

type ListEventsOptions struct {
	Date   string
	Source model.EventSource
}
