package telegram

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"smart-day-planner/internal/backlog"
	"smart-day-planner/internal/model"
	"smart-day-planner/internal/planner"
)

const addUsage = "Cú pháp: `/add Tiêu đề | phút | p<ưu tiên> | khung giờ | địa điểm`"

// handleAdd parses "/add Tiêu đề | 45 | p2 | at 2pm | office" and creates a backlog task.
func (h *handler) handleAdd(ctx context.Context, sc model.Scope, chatID int64, args string) error {
	if args == "" {
		return h.bot.SendMessageWithMode(chatID, addUsage, "Markdown")
	}

	// Parse errors are already phrased for the user; only downstream errors
	// go through the errorMessage mapping.
	input, err := parseAddArgs(args)
	if err != nil {
		return h.bot.SendMessageWithMode(chatID, fmt.Sprintf("⚠️ %s\n%s", err.Error(), addUsage), "Markdown")
	}

	output, err := h.backlogUC.Create(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "telegram handler: Create failed: %v", err)
		return h.bot.SendMessage(chatID, fmt.Sprintf("Không thể thêm công việc: %s", errorMessage(err)))
	}

	t := output.Task
	reply := fmt.Sprintf("✅ Đã thêm *%s* (%d phút, p%d", t.Title, t.DurationMinutes, t.Priority)
	if t.TimePreference != "" {
		reply += fmt.Sprintf(", %s", t.TimePreference)
	}
	reply += ").\nDùng /plan để xếp lịch."
	return h.bot.SendMessageWithMode(chatID, reply, "Markdown")
}

// handleTasks lists the pending backlog.
func (h *handler) handleTasks(ctx context.Context, sc model.Scope, chatID int64) error {
	output, err := h.backlogUC.List(ctx, sc, backlog.ListInput{Status: model.TaskStatusPending, Limit: 20})
	if err != nil {
		h.l.Errorf(ctx, "telegram handler: List failed: %v", err)
		return h.bot.SendMessage(chatID, fmt.Sprintf("Không thể tải backlog: %s", errorMessage(err)))
	}

	if len(output.Tasks) == 0 {
		return h.bot.SendMessage(chatID, "🎉 Backlog trống! Dùng /add để thêm công việc.")
	}

	reply := fmt.Sprintf("📋 *%d công việc đang chờ:*\n\n", output.Total)
	for i, t := range output.Tasks {
		reply += fmt.Sprintf("%d. *%s* (%d phút, p%d", i+1, t.Title, t.DurationMinutes, t.Priority)
		if t.TimePreference != "" {
			reply += fmt.Sprintf(", %s", t.TimePreference)
		}
		reply += ")\n"
	}
	if output.Total > len(output.Tasks) {
		reply += fmt.Sprintf("\n… và %d công việc khác.", output.Total-len(output.Tasks))
	}
	return h.bot.SendMessageWithMode(chatID, reply, "Markdown")
}

// handlePlan runs the day planner and renders the resulting timetable.
func (h *handler) handlePlan(ctx context.Context, sc model.Scope, chatID int64, args string) error {
	// Notify user that planning has started (the Google Calendar pull can take a moment)
	if err := h.bot.SendMessage(chatID, "⏳ Đang xếp lịch..."); err != nil {
		h.l.Warnf(ctx, "telegram handler: failed to send ack message: %v", err)
	}

	output, err := h.plannerUC.PlanDay(ctx, sc, planner.PlanDayInput{Date: args})
	if err != nil {
		h.l.Errorf(ctx, "telegram handler: PlanDay failed: %v", err)
		return h.bot.SendMessage(chatID, fmt.Sprintf("Không thể xếp lịch: %s", errorMessage(err)))
	}

	if len(output.Scheduled) == 0 && len(output.Unscheduled) == 0 {
		return h.bot.SendMessage(chatID, "Backlog trống, không có gì để xếp. Dùng /add để thêm công việc.")
	}

	var reply string
	if len(output.Scheduled) == 0 {
		reply = fmt.Sprintf("📅 *Lịch ngày %s:* không còn chỗ trống cho công việc nào.\n", output.Date)
	} else {
		reply = fmt.Sprintf("📅 *Lịch ngày %s:*\n\n", output.Date)
		for _, s := range output.Scheduled {
			reply += fmt.Sprintf("`%s-%s`  *%s*", s.Start, s.End, s.Task.Title)
			if s.Task.Location != "" {
				reply += fmt.Sprintf(" (%s)", s.Task.Location)
			}
			reply += "\n"
		}
	}

	if len(output.Unscheduled) > 0 {
		reply += fmt.Sprintf("\n⚠️ *%d công việc chưa xếp được:*\n", len(output.Unscheduled))
		for i, t := range output.Unscheduled {
			reply += fmt.Sprintf("%d. %s (%d phút)\n", i+1, t.Title, t.DurationMinutes)
		}
	}

	return h.bot.SendMessageWithMode(chatID, reply, "Markdown")
}

// parseAddArgs splits the pipe-separated /add arguments into a CreateInput.
// Only the title is required; duration defaults to 30 minutes and priority to p3.
func parseAddArgs(args string) (backlog.CreateInput, error) {
	parts := strings.Split(args, "|")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	input := backlog.CreateInput{
		Title:           parts[0],
		DurationMinutes: 30,
		Priority:        3,
	}
	if input.Title == "" {
		return input, fmt.Errorf("thiếu tiêu đề công việc")
	}

	if len(parts) > 1 && parts[1] != "" {
		d, err := strconv.Atoi(strings.TrimSuffix(strings.ToLower(parts[1]), "m"))
		if err != nil || d <= 0 {
			return input, fmt.Errorf("thời lượng không hợp lệ: %q", parts[1])
		}
		input.DurationMinutes = d
	}

	if len(parts) > 2 && parts[2] != "" {
		p, err := strconv.Atoi(strings.TrimPrefix(strings.ToLower(parts[2]), "p"))
		if err != nil || p < 0 || p > 9 {
			return input, fmt.Errorf("ưu tiên không hợp lệ: %q (dùng p0 đến p9)", parts[2])
		}
		input.Priority = p
	}

	if len(parts) > 3 {
		input.TimePreference = parts[3]
	}
	if len(parts) > 4 {
		input.Location = parts[4]
	}

	return input, nil
}
