package backlog

import "smart-day-planner/internal/model"

type CreateInput struct {
	Title           string
	DurationMinutes int
	Priority        int
	TimePreference  string
	Location        string
}

type CreateOutput struct {
	Task model.Task
}

type ListInput struct {
	Status model.TaskStatus
	Limit  int
	Offset int
}

type ListOutput struct {
	Tasks  []model.Task
	Total  int
	Limit  int
	Offset int
}

type DetailOutput struct {
	Task model.Task
}

type UpdateInput struct {
	ID              string
	Title           string
	DurationMinutes *int
	Priority        *int
	TimePreference  string
	Location        string
}

type UpdateOutput struct {
	Task model.Task
}
