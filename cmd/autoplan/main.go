package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"smart-day-planner/config"
	"smart-day-planner/config/sqlite"
	backlogSqlite "smart-day-planner/internal/backlog/repository/sqlite"
	"smart-day-planner/internal/model"
	"smart-day-planner/internal/planner"
	plannerSqlite "smart-day-planner/internal/planner/repository/sqlite"
	plannerUC "smart-day-planner/internal/planner/usecase"
	"smart-day-planner/internal/scheduling"
	"smart-day-planner/internal/sync"
	"smart-day-planner/pkg/datemath"
	"smart-day-planner/pkg/gcalendar"
	"smart-day-planner/pkg/log"
)

// main is the entry point for the one-shot batch planner.
// It plans a single day from the command line without starting the HTTP
// server, which makes it handy for cron jobs and morning shell rituals.
//
// Pattern:
//  1. Initialize infra (same as cmd/api/main.go)
//  2. Create the planner UseCase
//  3. Run PlanDay once, print the timetable, exit
func main() {
	dateArg := flag.String("date", "today", `day to plan ("today", "tomorrow", "next monday" or YYYY-MM-DD)`)
	dryRun := flag.Bool("dry-run", false, "compute the plan without persisting or syncing it")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Infrastructure
	db, err := sqlite.Connect(ctx, cfg.SQLite)
	if err != nil {
		logger.Error(ctx, "Failed to open SQLite database: ", err)
		os.Exit(1)
	}
	defer sqlite.Disconnect(ctx, db)

	taskRepo := backlogSqlite.New(db, logger)
	eventRepo := plannerSqlite.New(db, logger)

	strategy := scheduling.ByName(cfg.Planner.Strategy)

	timezone := cfg.Planner.Timezone
	if timezone == "" {
		timezone = "UTC"
	}
	dateMathParser, dtErr := datemath.NewParser(timezone)
	if dtErr != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", timezone, dtErr)
		dateMathParser, _ = datemath.NewParser("UTC")
		timezone = "UTC"
	}

	// Google Calendar (optional)
	var (
		plannerCalendar plannerUC.CalendarClient
		eventPusher     plannerUC.EventPusher
		syncer          *sync.CalendarSyncer
	)
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, gcErr := gcalendar.NewClientFromFiles(ctx, cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.TokenPath)
		if gcErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", gcErr)
		} else {
			plannerCalendar = calendarClient
			syncer = sync.NewCalendarSyncer(calendarClient, eventRepo, logger, cfg.GoogleCalendar.CalendarID, timezone)
			eventPusher = syncer
		}
	}

	// Planner UseCase
	uc := plannerUC.New(
		logger,
		strategy,
		taskRepo,
		eventRepo,
		plannerCalendar,
		eventPusher,
		dateMathParser,
		timezone,
		cfg.GoogleCalendar.CalendarID,
	)

	sc := model.Scope{UserID: "cli"}
	output, err := uc.PlanDay(ctx, sc, planner.PlanDayInput{Date: *dateArg, DryRun: *dryRun})
	if err != nil {
		logger.Error(ctx, "PlanDay failed: ", err)
		os.Exit(1)
	}

	printPlan(output)

	// The calendar push runs in the background; hold the process open until it lands.
	if syncer != nil {
		syncer.Wait()
	}
}

// printPlan writes the timetable to stdout.
func printPlan(output planner.PlanDayOutput) {
	if output.DryRun {
		fmt.Printf("Plan for %s (dry run):\n", output.Date)
	} else {
		fmt.Printf("Plan for %s:\n", output.Date)
	}

	if len(output.Scheduled) == 0 {
		fmt.Println("  nothing scheduled")
	}
	for _, s := range output.Scheduled {
		line := fmt.Sprintf("  %s-%s  %s", s.Start, s.End, s.Task.Title)
		if s.Task.Location != "" {
			line += fmt.Sprintf(" (%s)", s.Task.Location)
		}
		fmt.Println(line)
	}

	if len(output.Unscheduled) > 0 {
		fmt.Printf("\n%d task(s) could not be placed:\n", len(output.Unscheduled))
		for _, t := range output.Unscheduled {
			fmt.Printf("  - %s (%dm)\n", t.Title, t.DurationMinutes)
		}
	}
}
