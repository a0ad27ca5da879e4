package telegram

import (
	"github.com/gin-gonic/gin"

	"smart-day-planner/internal/backlog"
	"smart-day-planner/internal/planner"
	pkgLog "smart-day-planner/pkg/log"
	pkgTelegram "smart-day-planner/pkg/telegram"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

// New creates a new Telegram delivery handler.
func New(
	l pkgLog.Logger,
	backlogUC backlog.UseCase,
	plannerUC planner.UseCase,
	bot *pkgTelegram.Bot,
) Handler {
	return &handler{
		l:         l,
		backlogUC: backlogUC,
		plannerUC: plannerUC,
		bot:       bot,
	}
}
