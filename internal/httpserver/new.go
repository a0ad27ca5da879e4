package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"smart-day-planner/internal/backlog"
	"smart-day-planner/internal/planner"
	tgDelivery "smart-day-planner/internal/planner/delivery/telegram"
	"smart-day-planner/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	rateLimitPerMin int
	db              *sql.DB

	// Domains
	backlogUC backlog.UseCase
	plannerUC planner.UseCase

	// Telegram webhook (optional)
	telegramHandler tgDelivery.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	RateLimitPerMin int
	DB              *sql.DB

	// Domains
	BacklogUC backlog.UseCase
	PlannerUC planner.UseCase

	// Telegram webhook (optional)
	TelegramHandler tgDelivery.Handler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		rateLimitPerMin: cfg.RateLimitPerMin,
		db:              cfg.DB,
		backlogUC:       cfg.BacklogUC,
		plannerUC:       cfg.PlannerUC,
		telegramHandler: cfg.TelegramHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.db == nil {
		return errors.New("sqlite handle is required")
	}
	if srv.backlogUC == nil {
		return errors.New("backlog usecase is required")
	}
	if srv.plannerUC == nil {
		return errors.New("planner usecase is required")
	}
	return nil
}
