package sqlite

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"smart-day-planner/internal/model"
	"smart-day-planner/internal/planner/repository"
)

const eventColumns = `id, task_id, title, date, start_minute, end_minute, location, source, google_event_id, created_at, updated_at`

func (r *implRepository) CreateEvents(ctx context.Context, opts []repository.CreateEventOptions) ([]model.CalendarEvent, error) {
	if len(opts) == 0 {
		return []model.CalendarEvent{}, nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("CreateEvents"), err)
		return nil, repository.ErrFailedToInsertEvent
	}
	defer tx.Rollback()

	query := fmt.Sprintf(`INSERT INTO events (%s) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`, eventColumns)

	now := time.Now().UTC()
	events := make([]model.CalendarEvent, 0, len(opts))
	for _, opt := range opts {
		event := model.CalendarEvent{
			ID:          uuid.NewString(),
			TaskID:      opt.TaskID,
			Title:       opt.Title,
			Date:        opt.Date,
			StartMinute: opt.StartMinute,
			EndMinute:   opt.EndMinute,
			Location:    opt.Location,
			Source:      opt.Source,
			CreatedAt:   now,
			UpdatedAt:   now,
		}

		_, err := tx.ExecContext(ctx, query,
			event.ID,
			event.TaskID,
			event.Title,
			event.Date,
			event.StartMinute,
			event.EndMinute,
			event.Location,
			event.Source,
			event.GoogleEventID,
			event.CreatedAt,
			event.UpdatedAt,
		)
		if err != nil {
			r.l.Errorf(ctx, "%s: %v", r.dsn("CreateEvents"), err)
			return nil, repository.ErrFailedToInsertEvent
		}

		events = append(events, event)
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("CreateEvents"), err)
		return nil, repository.ErrFailedToInsertEvent
	}

	return events, nil
}

func (r *implRepository) ListEvents(ctx context.Context, opts repository.ListEventsOptions) ([]model.CalendarEvent, error) {
	conds, args := buildEventConditions(opts)

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	query := fmt.Sprintf(`SELECT %s FROM events%s ORDER BY start_minute ASC, id ASC`, eventColumns, where)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListEvents"), err)
		return nil, repository.ErrFailedToListEvents
	}
	defer rows.Close()

	events := make([]model.CalendarEvent, 0)
	for rows.Next() {
		var event model.CalendarEvent
		if err := rows.Scan(
			&event.ID,
			&event.TaskID,
			&event.Title,
			&event.Date,
			&event.StartMinute,
			&event.EndMinute,
			&event.Location,
			&event.Source,
			&event.GoogleEventID,
			&event.CreatedAt,
			&event.UpdatedAt,
		); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListEvents"), err)
			return nil, repository.ErrFailedToListEvents
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListEvents"), err)
		return nil, repository.ErrFailedToListEvents
	}

	return events, nil
}

func (r *implRepository) UpdateGoogleEventID(ctx context.Context, id, googleEventID string) error {
	query := `UPDATE events SET google_event_id = ?, updated_at = ? WHERE id = ?`

	if _, err := r.db.ExecContext(ctx, query, googleEventID, time.Now().UTC(), id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateGoogleEventID"), err)
		return repository.ErrFailedToUpdateEvent
	}

	return nil
}
