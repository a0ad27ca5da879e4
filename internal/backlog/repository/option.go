package repository

import "smart-day-planner/internal/model"

type CreateTaskOptions struct {
	Title           string
	DurationMinutes int
	Priority        int
	TimePreference  string
	Location        string
}

type GetOneTaskOptions struct {
	ID     string
	Status model.TaskStatus
}

type ListTasksOptions struct {
	Status model.TaskStatus
	Limit  int
	Offset int
}

type UpdateTaskOptions struct {
	ID              string
	Title           string
	DurationMinutes int
	Priority        int
	TimePreference  string
	Location        string
}
