package sqlite

import (
	"database/sql"
	"fmt"

	"smart-day-planner/internal/planner/repository"
	"smart-day-planner/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new SQLite-backed EventRepository for the planner domain.
func New(db *sql.DB, l log.Logger) repository.EventRepository {
	if db == nil {
		panic("planner/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("planner/repository/sqlite.%s", method)
}
