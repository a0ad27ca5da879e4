package http

import (
	"smart-day-planner/internal/backlog"
	"smart-day-planner/internal/model"
	"smart-day-planner/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	Title           string `json:"title"            binding:"required,min=1,max=255"`
	DurationMinutes int    `json:"duration_minutes" binding:"required,min=1,max=840"`
	Priority        *int   `json:"priority"         binding:"omitempty,min=0,max=9"`
	TimePreference  string `json:"time_preference"  binding:"max=255"`
	Location        string `json:"location"         binding:"max=255"`
}

func (r createReq) validate() error { return nil }

func (r createReq) toInput() backlog.CreateInput {
	// Priority defaults to 3 (middle of the 0-9 range) when omitted.
	priority := 3
	if r.Priority != nil {
		priority = *r.Priority
	}
	return backlog.CreateInput{
		Title:           r.Title,
		DurationMinutes: r.DurationMinutes,
		Priority:        priority,
		TimePreference:  r.TimePreference,
		Location:        r.Location,
	}
}

// ---

type listReq struct {
	Status string `form:"status"`
	Limit  int    `form:"limit"`
	Offset int    `form:"offset"`
}

func (r listReq) validate() error { return nil }

func (r listReq) toInput() backlog.ListInput {
	limit := r.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if r.Offset < 0 {
		r.Offset = 0
	}
	return backlog.ListInput{
		Status: model.TaskStatus(r.Status),
		Limit:  limit,
		Offset: r.Offset,
	}
}

// ---

type updateReq struct {
	ID              string `json:"-"` // populated from URI param
	Title           string `json:"title"            binding:"omitempty,min=1,max=255"`
	DurationMinutes *int   `json:"duration_minutes" binding:"omitempty,min=1,max=840"`
	Priority        *int   `json:"priority"         binding:"omitempty,min=0,max=9"`
	TimePreference  string `json:"time_preference"  binding:"omitempty,max=255"`
	Location        string `json:"location"         binding:"omitempty,max=255"`
}

func (r updateReq) validate() error { return nil }

func (r updateReq) toInput() backlog.UpdateInput {
	return backlog.UpdateInput{
		ID:              r.ID,
		Title:           r.Title,
		DurationMinutes: r.DurationMinutes,
		Priority:        r.Priority,
		TimePreference:  r.TimePreference,
		Location:        r.Location,
	}
}

// --- Response DTOs ---

type taskResp struct {
	ID              string            `json:"id"`
	Title           string            `json:"title"`
	DurationMinutes int               `json:"duration_minutes"`
	Priority        int               `json:"priority"`
	TimePreference  string            `json:"time_preference"`
	Location        string            `json:"location"`
	Status          string            `json:"status"`
	CreatedAt       response.DateTime `json:"created_at"`
	UpdatedAt       response.DateTime `json:"updated_at"`
}

func newTaskResp(task model.Task) taskResp {
	return taskResp{
		ID:              task.ID,
		Title:           task.Title,
		DurationMinutes: task.DurationMinutes,
		Priority:        task.Priority,
		TimePreference:  task.TimePreference,
		Location:        task.Location,
		Status:          string(task.Status),
		CreatedAt:       response.DateTime(task.CreatedAt),
		UpdatedAt:       response.DateTime(task.UpdatedAt),
	}
}

type createResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newCreateResp(out backlog.CreateOutput) createResp {
	return createResp{Task: newTaskResp(out.Task)}
}

type listResp struct {
	Tasks  []taskResp `json:"tasks"`
	Total  int        `json:"total"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}

func (h *handler) newListResp(out backlog.ListOutput) listResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, task := range out.Tasks {
		tasks[i] = newTaskResp(task)
	}
	return listResp{
		Tasks:  tasks,
		Total:  out.Total,
		Limit:  out.Limit,
		Offset: out.Offset,
	}
}

type detailResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newDetailResp(out backlog.DetailOutput) detailResp {
	return detailResp{Task: newTaskResp(out.Task)}
}

type updateResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newUpdateResp(out backlog.UpdateOutput) updateResp {
	return updateResp{Task: newTaskResp(out.Task)}
}
