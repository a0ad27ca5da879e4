package scheduling

import (
	"fmt"
	"time"
)

// Work-window and grid constants, in minutes from local midnight.
const (
	WorkdayStart = 8 * 60  // 08:00, default start of placement
	WorkdayEnd   = 22 * 60 // 22:00, hard end of placement
	SlotSize     = 15      // placement grid
	TaskBuffer   = 5       // breathing room after each flexible commit
)

// CeilSlot rounds a minute up to the next SlotSize boundary. Minutes already
// on the grid are returned unchanged.
func CeilSlot(minute int) int {
	if minute%SlotSize == 0 {
		return minute
	}
	return (minute/SlotSize + 1) * SlotSize
}

// Clock renders a minute offset as "HH:MM".
func Clock(minute int) string {
	return fmt.Sprintf("%02d:%02d", minute/60, minute%60)
}

// MinuteOf returns t's offset from its own local midnight.
func MinuteOf(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// SameDay reports whether t falls on the given YYYY-MM-DD civil day.
func SameDay(t time.Time, date string) bool {
	return t.Format(time.DateOnly) == date
}
