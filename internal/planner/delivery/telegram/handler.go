package telegram

import (
	"context"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"smart-day-planner/internal/backlog"
	"smart-day-planner/internal/model"
	"smart-day-planner/internal/planner"
	pkgLog "smart-day-planner/pkg/log"
	pkgResponse "smart-day-planner/pkg/response"
	pkgTelegram "smart-day-planner/pkg/telegram"
)

type handler struct {
	l         pkgLog.Logger
	backlogUC backlog.UseCase
	plannerUC planner.UseCase
	bot       *pkgTelegram.Bot
}

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It responds with HTTP 200 immediately and processes the message in a background goroutine
// to avoid Telegram webhook timeout (Telegram expects a response within a few seconds,
// but /plan may wait on Google Calendar).
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Ignore non-message updates (polls, channel_post, etc.)
	if update.Message == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	// Snapshot the message before spawning goroutine to avoid data races on gin context
	msg := update.Message

	// Critical: process in goroutine, return 200 immediately to Telegram
	go func() {
		// Detach from HTTP request context (which gets cancelled after response)
		bgCtx := context.Background()
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: background processMessage failed: %v", err)
			// Best-effort error notification to user
			_ = h.bot.SendMessage(msg.Chat.ID, "Có lỗi xảy ra khi xử lý yêu cầu của bạn. Vui lòng thử lại.")
		}
	}()

	// Telegram acknowledged immediately
	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage handles a single Telegram message.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	if msg.Text == "" {
		return nil
	}

	// ---- Built-in commands ----
	switch msg.Text {
	case "/start":
		return h.bot.SendMessageWithMode(msg.Chat.ID,
			"👋 Chào mừng đến với *Smart Day Planner*!\n\nQuản lý backlog và xếp lịch trong ngày tự động:\n• 📝 /add thêm công việc vào backlog\n• 📋 /tasks xem các công việc đang chờ\n• 📅 /plan xếp lịch cho cả ngày\n\n_Ví dụ: `/add Viết báo cáo | 45 | p1 | at 2pm`_",
			"Markdown",
		)
	case "/help":
		return h.bot.SendMessageWithMode(msg.Chat.ID,
			"*Cách sử dụng:*\n\n`/add Tiêu đề | phút | p<ưu tiên> | khung giờ | địa điểm`\nChỉ cần tiêu đề, các phần còn lại là tùy chọn (mặc định 30 phút, p3).\nKhung giờ viết bằng tiếng Anh: `at 2pm`, `after lunch`, `morning`, `before 11am`.\n\n`/tasks` xem backlog đang chờ.\n`/plan` xếp lịch hôm nay, `/plan tomorrow` cho ngày mai.\n\n_Ví dụ: `/add Họp team | 60 | p0 | at 9am | office`_",
			"Markdown",
		)
	}

	// Build scope from Telegram user context
	sc := model.Scope{
		UserID:   fmt.Sprintf("telegram_%d", msg.From.ID),
		Username: msg.From.Username,
	}

	text := strings.TrimSpace(msg.Text)
	switch {
	case strings.HasPrefix(text, "/add"):
		return h.handleAdd(ctx, sc, msg.Chat.ID, strings.TrimSpace(strings.TrimPrefix(text, "/add")))
	case strings.HasPrefix(text, "/tasks"):
		return h.handleTasks(ctx, sc, msg.Chat.ID)
	case strings.HasPrefix(text, "/plan"):
		return h.handlePlan(ctx, sc, msg.Chat.ID, strings.TrimSpace(strings.TrimPrefix(text, "/plan")))
	}

	return h.bot.SendMessage(msg.Chat.ID, "Tôi chưa hiểu tin nhắn này. Dùng /help để xem cách sử dụng nhé.")
}
