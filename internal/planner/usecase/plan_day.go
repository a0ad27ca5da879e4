package usecase

import (
	"context"
	"sort"
	"time"

	backlogRepo "smart-day-planner/internal/backlog/repository"
	"smart-day-planner/internal/model"
	"smart-day-planner/internal/planner"
	repo "smart-day-planner/internal/planner/repository"
	"smart-day-planner/internal/scheduling"
)

// PlanDay schedules pending backlog tasks into the free slots of one day.
func (uc *implUseCase) PlanDay(ctx context.Context, sc model.Scope, input planner.PlanDayInput) (planner.PlanDayOutput, error) {
	now := time.Now().In(uc.loc)

	date, err := uc.resolveDate(input.Date, now)
	if err != nil {
		return planner.PlanDayOutput{}, err
	}

	pending, _, err := uc.taskRepo.ListTasks(ctx, backlogRepo.ListTasksOptions{Status: model.TaskStatusPending})
	if err != nil {
		uc.l.Errorf(ctx, "uc.PlanDay ListTasks: %v", err)
		return planner.PlanDayOutput{}, err
	}

	// Older tasks pin first when two tasks want the same exact slot.
	sort.SliceStable(pending, func(i, j int) bool {
		return pending[i].CreatedAt.Before(pending[j].CreatedAt)
	})

	busy, err := uc.collectBusy(ctx, date)
	if err != nil {
		uc.l.Errorf(ctx, "uc.PlanDay collectBusy: %v", err)
		return planner.PlanDayOutput{}, err
	}

	engineTasks := make([]scheduling.Task, len(pending))
	for i, task := range pending {
		engineTasks[i] = scheduling.Task{
			ID:              task.ID,
			DurationMinutes: task.DurationMinutes,
			Priority:        task.Priority,
			TimePreference:  task.TimePreference,
		}
	}

	plan, err := uc.strategy.PlanDay(ctx, scheduling.Request{
		Tasks: engineTasks,
		Busy:  busy,
		Date:  date,
		Now:   now,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.PlanDay %s strategy: %v", uc.strategy.Name(), err)
		return planner.PlanDayOutput{}, err
	}

	byID := make(map[string]model.Task, len(pending))
	for _, task := range pending {
		byID[task.ID] = task
	}

	scheduled := make([]planner.ScheduledTask, 0, len(plan.Assignments))
	scheduledIDs := make([]string, 0, len(plan.Assignments))
	placed := make(map[string]bool, len(plan.Assignments))
	for _, a := range plan.Assignments {
		scheduled = append(scheduled, planner.ScheduledTask{
			Task:        byID[a.TaskID],
			StartMinute: a.StartMinute,
			EndMinute:   a.EndMinute(),
			Start:       scheduling.Clock(a.StartMinute),
			End:         scheduling.Clock(a.EndMinute()),
		})
		scheduledIDs = append(scheduledIDs, a.TaskID)
		placed[a.TaskID] = true
	}

	unscheduled := make([]model.Task, 0)
	for _, task := range pending {
		if !placed[task.ID] {
			unscheduled = append(unscheduled, task)
		}
	}

	out := planner.PlanDayOutput{
		Date:        date,
		Scheduled:   scheduled,
		Unscheduled: unscheduled,
		DryRun:      input.DryRun,
	}

	if input.DryRun || len(scheduled) == 0 {
		return out, nil
	}

	eventOpts := make([]repo.CreateEventOptions, len(scheduled))
	for i, s := range scheduled {
		eventOpts[i] = repo.CreateEventOptions{
			TaskID:      s.Task.ID,
			Title:       s.Task.Title,
			Date:        date,
			StartMinute: s.StartMinute,
			EndMinute:   s.EndMinute,
			Location:    s.Task.Location,
			Source:      model.EventSourcePlanner,
		}
	}

	events, err := uc.repo.CreateEvents(ctx, eventOpts)
	if err != nil {
		uc.l.Errorf(ctx, "uc.PlanDay CreateEvents: %v", err)
		return planner.PlanDayOutput{}, err
	}

	if err := uc.taskRepo.UpdateTaskStatus(ctx, scheduledIDs, model.TaskStatusScheduled); err != nil {
		uc.l.Errorf(ctx, "uc.PlanDay UpdateTaskStatus: %v", err)
		return planner.PlanDayOutput{}, err
	}

	if uc.pusher != nil {
		uc.pusher.PushEvents(events)
	}

	return out, nil
}
