// scripts/seed-backlog/main.go
//
// Fills the local database with a small demo backlog so /plan has something
// to chew on during development.
//
// Usage:
//   go run scripts/seed-backlog/main.go
package main

import (
	"context"
	"fmt"
	"os"

	"smart-day-planner/config"
	"smart-day-planner/config/sqlite"
	"smart-day-planner/internal/backlog/repository"
	backlogSqlite "smart-day-planner/internal/backlog/repository/sqlite"
	"smart-day-planner/pkg/log"
)

// Demo backlog used for local development and screenshots.
var seedTasks = []repository.CreateTaskOptions{
	{Title: "Standup prep", DurationMinutes: 15, Priority: 1, TimePreference: "at 9am"},
	{Title: "Write quarterly report", DurationMinutes: 90, Priority: 1, TimePreference: "morning"},
	{Title: "Review pull requests", DurationMinutes: 45, Priority: 2},
	{Title: "Plan next sprint", DurationMinutes: 60, Priority: 2, TimePreference: "afternoon"},
	{Title: "Call the bank", DurationMinutes: 15, Priority: 3, TimePreference: "before 11am"},
	{Title: "Read design doc", DurationMinutes: 30, Priority: 5, TimePreference: "after lunch"},
	{Title: "Gym", DurationMinutes: 60, Priority: 4, TimePreference: "after 5pm", Location: "CityFit"},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:        "info",
		Mode:         "development",
		ColorEnabled: true,
	})

	ctx := context.Background()

	db, err := sqlite.Connect(ctx, cfg.SQLite)
	if err != nil {
		logger.Fatalf(ctx, "Failed to open SQLite database: %v", err)
	}
	defer sqlite.Disconnect(ctx, db)

	taskRepo := backlogSqlite.New(db, logger)

	logger.Infof(ctx, "Seeding %d demo tasks into %s...", len(seedTasks), cfg.SQLite.Path)

	successCount := 0
	for i, opt := range seedTasks {
		task, err := taskRepo.CreateTask(ctx, opt)
		if err != nil {
			logger.Errorf(ctx, "Failed to seed task %q: %v", opt.Title, err)
			continue
		}
		logger.Infof(ctx, "Seeded task %d/%d: %s (%s)", i+1, len(seedTasks), task.Title, task.ID)
		successCount++
	}

	logger.Infof(ctx, "Seed complete! %d/%d tasks inserted.", successCount, len(seedTasks))
}
