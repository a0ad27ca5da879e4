package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"smart-day-planner/config"
	"smart-day-planner/config/sqlite"
	_ "smart-day-planner/docs" // Swagger docs
	backlogSqlite "smart-day-planner/internal/backlog/repository/sqlite"
	backlogUC "smart-day-planner/internal/backlog/usecase"
	"smart-day-planner/internal/httpserver"
	tgDelivery "smart-day-planner/internal/planner/delivery/telegram"
	plannerSqlite "smart-day-planner/internal/planner/repository/sqlite"
	plannerUC "smart-day-planner/internal/planner/usecase"
	"smart-day-planner/internal/scheduling"
	"smart-day-planner/internal/sync"
	"smart-day-planner/pkg/datemath"
	"smart-day-planner/pkg/gcalendar"
	"smart-day-planner/pkg/log"
	"smart-day-planner/pkg/telegram"
)

// @title       Smart Day Planner API
// @description Task backlog and automatic day planning with Telegram and Google Calendar sync.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Smart Day Planner...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "SQLite path: %s", cfg.SQLite.Path)

	// 3. Storage
	db, err := sqlite.Connect(ctx, cfg.SQLite)
	if err != nil {
		logger.Error(ctx, "Failed to open SQLite database: ", err)
		return
	}
	defer sqlite.Disconnect(ctx, db)

	taskRepo := backlogSqlite.New(db, logger)
	eventRepo := plannerSqlite.New(db, logger)

	// 4. Planning engine
	strategy := scheduling.ByName(cfg.Planner.Strategy)
	logger.Infof(ctx, "Planning strategy: %s", strategy.Name())

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

	// 5. Google Calendar (optional)
	var (
		plannerCalendar plannerUC.CalendarClient
		eventPusher     plannerUC.EventPusher
	)
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, gcErr := gcalendar.NewClientFromFiles(ctx, cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.TokenPath)
		if gcErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", gcErr)
			logger.Warn(ctx, "→ Run `go run scripts/gcal-auth/main.go` to generate token.json")
		} else {
			plannerCalendar = calendarClient
			eventPusher = sync.NewCalendarSyncer(calendarClient, eventRepo, logger, cfg.GoogleCalendar.CalendarID, timezone)
			logger.Info(ctx, "✅ Google Calendar initialized")
		}
	}

	// 6. UseCases
	backlogUseCase := backlogUC.New(taskRepo, logger)
	plannerUseCase := plannerUC.New(
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

	// 7. Telegram webhook (optional)
	var telegramHandler tgDelivery.Handler
	if cfg.Telegram.BotToken != "" {
		telegramBot := telegram.NewBot(cfg.Telegram.BotToken)
		telegramHandler = tgDelivery.New(logger, backlogUseCase, plannerUseCase, telegramBot)

		// Register webhook: auto-detect ngrok or fall back to manual config
		webhookURL := cfg.Telegram.WebhookURL
		if webhookURL == "" {
			ngrokURL, ngrokErr := detectNgrokURL(ctx, "http://ngrok:4040")
			if ngrokErr != nil {
				logger.Warnf(ctx, "Could not detect ngrok URL: %v", ngrokErr)
			} else {
				webhookURL = ngrokURL + "/webhook/telegram"
				logger.Infof(ctx, "Auto-detected ngrok URL: %s", webhookURL)
			}
		}

		if webhookURL != "" {
			if whErr := telegramBot.SetWebhook(webhookURL); whErr != nil {
				logger.Warnf(ctx, "Failed to set Telegram webhook: %v", whErr)
			} else {
				logger.Infof(ctx, "✅ Telegram webhook registered at %s", webhookURL)
			}
		}
	} else {
		logger.Warn(ctx, "Telegram bot skipped: TELEGRAM_BOT_TOKEN is missing")
	}

	// 8. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		RateLimitPerMin: cfg.HTTPServer.RateLimitPerMin,
		DB:              db,
		BacklogUC:       backlogUseCase,
		PlannerUC:       plannerUseCase,
		TelegramHandler: telegramHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
