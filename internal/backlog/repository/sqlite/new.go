package sqlite

import (
	"database/sql"
	"fmt"

	"smart-day-planner/internal/backlog/repository"
	"smart-day-planner/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new SQLite-backed TaskRepository for the backlog domain.
func New(db *sql.DB, l log.Logger) repository.TaskRepository {
	if db == nil {
		panic("backlog/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("backlog/repository/sqlite.%s", method)
}
