package timepref

import (
	"regexp"
	"strconv"
	"strings"
)

// Preference is a scheduling hint extracted from free text. Minute is an
// offset from local midnight. Exact pins the task to that minute; a non-exact
// preference only nudges where the slot search starts.
type Preference struct {
	Minute int
	Exact  bool
}

// Named-range anchors, minutes from midnight.
const (
	anchorMorning    = 8 * 60  // 08:00, also the start of the work window
	anchorNoon       = 12 * 60 // 12:00
	anchorAfterLunch = 13 * 60 // 13:00
	anchorAfternoon  = 14 * 60 // 14:00
	anchorEvening    = 17 * 60 // 17:00
)

var (
	atTimeRe     = regexp.MustCompile(`\bat\s+(\d{1,2})(?::(\d{2}))?\s*(am|pm)?\b`)
	bareTimeRe   = regexp.MustCompile(`^(\d{1,2})(?::(\d{2}))?\s*(am|pm)?$`)
	beforeTimeRe = regexp.MustCompile(`\bbefore\s+(\d{1,2})(?::(\d{2}))?\s*(am|pm)?\b`)
	afterTimeRe  = regexp.MustCompile(`\bafter\s+(\d{1,2})(?::(\d{2}))?\s*(am|pm)?\b`)
)

// namedRanges are checked in order. The order is load-bearing: "afternoon"
// contains "noon" and must be matched first.
var namedRanges = []struct {
	keyword string
	minute  int
}{
	{"morning", anchorMorning},
	{"first thing", anchorMorning},
	{"after lunch", anchorAfterLunch},
	{"afternoon", anchorAfternoon},
	{"evening", anchorEvening},
	{"noon", anchorNoon},
	{"midday", anchorNoon},
}

// Parse extracts a scheduling hint from free-form preference text.
// It is lenient by contract: anything unparseable yields ok == false,
// never an error, so a garbled preference can not fail a plan.
func Parse(text string) (Preference, bool) {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return Preference{}, false
	}

	// "at 2pm", "at 14:30" anywhere in the text pins the task exactly.
	if m := atTimeRe.FindStringSubmatch(text); m != nil {
		if minute, ok := clockMinute(m[1], m[2], m[3]); ok {
			return Preference{Minute: minute, Exact: true}, true
		}
	}

	// A bare "2pm" or "14:30" with no other words pins exactly too.
	if m := bareTimeRe.FindStringSubmatch(text); m != nil {
		if minute, ok := clockMinute(m[1], m[2], m[3]); ok {
			return Preference{Minute: minute, Exact: true}, true
		}
	}

	// "before 11am" nudges toward the earliest slot of the day. It is a
	// soft hint, not a deadline; placement past the hour can still happen.
	if m := beforeTimeRe.FindStringSubmatch(text); m != nil {
		if _, ok := clockMinute(m[1], m[2], m[3]); ok {
			return Preference{Minute: anchorMorning}, true
		}
	}

	// "after 3pm" floors the slot search at that time.
	if m := afterTimeRe.FindStringSubmatch(text); m != nil {
		if minute, ok := clockMinute(m[1], m[2], m[3]); ok {
			return Preference{Minute: minute}, true
		}
	}

	for _, r := range namedRanges {
		if strings.Contains(text, r.keyword) {
			return Preference{Minute: r.minute}, true
		}
	}

	return Preference{}, false
}

// clockMinute converts captured hour/minute/meridiem strings to a minute of
// day. ok is false when the clock value is out of range; the caller then
// falls through to the next grammar rule.
func clockMinute(hourStr, minStr, meridiem string) (int, bool) {
	hour, err := strconv.Atoi(hourStr)
	if err != nil || hour > 23 {
		return 0, false
	}

	minute := 0
	if minStr != "" {
		minute, err = strconv.Atoi(minStr)
		if err != nil || minute > 59 {
			return 0, false
		}
	}

	switch meridiem {
	case "pm":
		if hour < 12 {
			hour += 12
		}
	case "am":
		if hour == 12 {
			hour = 0
		}
	}

	return hour*60 + minute, true
}
