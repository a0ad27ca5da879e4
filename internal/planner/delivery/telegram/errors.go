package telegram

import (
	"errors"

	"smart-day-planner/internal/backlog"
	"smart-day-planner/internal/planner"
)

// errorMessage returns a user-facing string for the given error.
// Domain errors map to short Vietnamese phrases; anything else gets a
// generic message so storage and API internals never reach the chat.
func errorMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, backlog.ErrTitleRequired):
		return "thiếu tiêu đề"
	case errors.Is(err, backlog.ErrInvalidDuration):
		return "thời lượng phải là số phút dương"
	case errors.Is(err, backlog.ErrInvalidPriority):
		return "ưu tiên phải từ 0 đến 9"
	case errors.Is(err, planner.ErrInvalidDate):
		return "ngày không hợp lệ"
	case errors.Is(err, planner.ErrDayNotPlanned):
		return "ngày này chưa được xếp lịch"
	default:
		return "lỗi hệ thống, vui lòng thử lại"
	}
}
