package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"smart-day-planner/internal/backlog/repository"
	"smart-day-planner/internal/model"
)

const taskColumns = `id, title, duration_minutes, priority, time_preference, location, status, created_at, updated_at`

func (r *implRepository) CreateTask(ctx context.Context, opts repository.CreateTaskOptions) (model.Task, error) {
	now := time.Now().UTC()
	task := model.Task{
		ID:              uuid.NewString(),
		Title:           opts.Title,
		DurationMinutes: opts.DurationMinutes,
		Priority:        opts.Priority,
		TimePreference:  opts.TimePreference,
		Location:        opts.Location,
		Status:          model.TaskStatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	query := fmt.Sprintf(`INSERT INTO tasks (%s) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`, taskColumns)

	_, err := r.db.ExecContext(ctx, query,
		task.ID,
		task.Title,
		task.DurationMinutes,
		task.Priority,
		task.TimePreference,
		task.Location,
		task.Status,
		task.CreatedAt,
		task.UpdatedAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repository.ErrFailedToInsertTask
	}

	return task, nil
}

func (r *implRepository) GetOneTask(ctx context.Context, opts repository.GetOneTaskOptions) (model.Task, error) {
	conds, args := buildTaskConditions(taskFilter{id: opts.ID, status: opts.Status})
	if len(conds) == 0 {
		return model.Task{}, repository.ErrFailedToGetTask
	}

	query := fmt.Sprintf(`SELECT %s FROM tasks WHERE %s LIMIT 1`, taskColumns, strings.Join(conds, " AND "))

	var task model.Task
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&task.ID,
		&task.Title,
		&task.DurationMinutes,
		&task.Priority,
		&task.TimePreference,
		&task.Location,
		&task.Status,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Task{}, nil
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneTask"), err)
		return model.Task{}, repository.ErrFailedToGetTask
	}

	return task, nil
}

func (r *implRepository) ListTasks(ctx context.Context, opts repository.ListTasksOptions) ([]model.Task, int, error) {
	conds, args := buildTaskConditions(taskFilter{status: opts.Status})

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	countQuery := `SELECT COUNT(*) FROM tasks` + where

	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListTasks"), err)
		return nil, 0, repository.ErrFailedToListTasks
	}

	query := fmt.Sprintf(`SELECT %s FROM tasks%s ORDER BY created_at DESC, id DESC`, taskColumns, where)
	listArgs := args
	if opts.Limit > 0 {
		query += ` LIMIT ? OFFSET ?`
		listArgs = append(listArgs, opts.Limit, opts.Offset)
	}

	rows, err := r.db.QueryContext(ctx, query, listArgs...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, 0, repository.ErrFailedToListTasks
	}
	defer rows.Close()

	tasks := make([]model.Task, 0)
	for rows.Next() {
		var task model.Task
		if err := rows.Scan(
			&task.ID,
			&task.Title,
			&task.DurationMinutes,
			&task.Priority,
			&task.TimePreference,
			&task.Location,
			&task.Status,
			&task.CreatedAt,
			&task.UpdatedAt,
		); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListTasks"), err)
			return nil, 0, repository.ErrFailedToListTasks
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListTasks"), err)
		return nil, 0, repository.ErrFailedToListTasks
	}

	return tasks, total, nil
}

func (r *implRepository) UpdateTask(ctx context.Context, opts repository.UpdateTaskOptions) (model.Task, error) {
	query := `UPDATE tasks
		SET title = ?, duration_minutes = ?, priority = ?, time_preference = ?, location = ?, updated_at = ?
		WHERE id = ?`

	res, err := r.db.ExecContext(ctx, query,
		opts.Title,
		opts.DurationMinutes,
		opts.Priority,
		opts.TimePreference,
		opts.Location,
		time.Now().UTC(),
		opts.ID,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTask"), err)
		return model.Task{}, repository.ErrFailedToUpdateTask
	}

	affected, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "%s rows affected: %v", r.dsn("UpdateTask"), err)
		return model.Task{}, repository.ErrFailedToUpdateTask
	}
	if affected == 0 {
		return model.Task{}, nil
	}

	return r.GetOneTask(ctx, repository.GetOneTaskOptions{ID: opts.ID})
}

func (r *implRepository) UpdateTaskStatus(ctx context.Context, ids []string, status model.TaskStatus) error {
	if len(ids) == 0 {
		return nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(ids)), ", ")
	query := fmt.Sprintf(`UPDATE tasks SET status = ?, updated_at = ? WHERE id IN (%s)`, placeholders)

	args := make([]any, 0, len(ids)+2)
	args = append(args, status, time.Now().UTC())
	for _, id := range ids {
		args = append(args, id)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTaskStatus"), err)
		return repository.ErrFailedToUpdateTask
	}

	return nil
}
