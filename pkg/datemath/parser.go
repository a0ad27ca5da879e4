package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Parser resolves plan date expressions ("today", "next monday", "2026-03-01")
// to midnight of the target civil day in a fixed timezone.
type Parser struct {
	location *time.Location
}

// NewParser creates a parser for the given IANA timezone string.
// e.g. "Asia/Ho_Chi_Minh"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

var absoluteDate = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// Parse resolves a date expression against baseTime (usually time.Now()).
// Supported forms: "today" (also the empty string), "tomorrow", "yesterday",
// absolute "YYYY-MM-DD", "in N days|weeks|months", a bare weekday name
// (nearest occurrence, today counts), and "next <weekday>" (always ahead of
// today). Anything else is an error.
func (p *Parser) Parse(expr string, baseTime time.Time) (time.Time, error) {
	expr = strings.ToLower(strings.TrimSpace(expr))

	switch expr {
	case "", "today":
		return p.startOfDay(baseTime), nil
	case "tomorrow":
		return p.startOfDay(baseTime.AddDate(0, 0, 1)), nil
	case "yesterday":
		return p.startOfDay(baseTime.AddDate(0, 0, -1)), nil
	}

	if absoluteDate.MatchString(expr) {
		day, err := time.ParseInLocation("2006-01-02", expr, p.location)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid date %q: %w", expr, err)
		}
		return day, nil
	}

	if target, ok := weekdays[expr]; ok {
		return p.startOfDay(baseTime.AddDate(0, 0, daysUntil(baseTime.Weekday(), target, true))), nil
	}

	if strings.HasPrefix(expr, "next ") {
		return p.parseNextWeekday(expr, baseTime)
	}

	if strings.HasPrefix(expr, "in ") {
		return p.parseInDuration(expr, baseTime)
	}

	return time.Time{}, fmt.Errorf("unrecognized date expression: %q", expr)
}

// parseInDuration handles patterns like "in 3 days", "in 2 weeks", "in 1 month".
func (p *Parser) parseInDuration(expr string, baseTime time.Time) (time.Time, error) {
	re := regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)
	matches := re.FindStringSubmatch(expr)
	if len(matches) != 3 {
		return time.Time{}, fmt.Errorf("invalid duration format: %q", expr)
	}

	amount, _ := strconv.Atoi(matches[1])
	unit := matches[2]

	switch {
	case strings.HasPrefix(unit, "day"):
		return p.startOfDay(baseTime.AddDate(0, 0, amount)), nil
	case strings.HasPrefix(unit, "week"):
		return p.startOfDay(baseTime.AddDate(0, 0, amount*7)), nil
	default:
		return p.startOfDay(baseTime.AddDate(0, amount, 0)), nil
	}
}

// parseNextWeekday handles patterns like "next monday", "next friday".
func (p *Parser) parseNextWeekday(expr string, baseTime time.Time) (time.Time, error) {
	dayName := strings.TrimPrefix(expr, "next ")
	target, ok := weekdays[dayName]
	if !ok {
		return time.Time{}, fmt.Errorf("unknown weekday: %q", dayName)
	}

	return p.startOfDay(baseTime.AddDate(0, 0, daysUntil(baseTime.Weekday(), target, false))), nil
}

// daysUntil counts forward days from current to target. With todayCounts a
// match on the current weekday resolves to 0, otherwise to a week out.
func daysUntil(current, target time.Weekday, todayCounts bool) int {
	days := int(target - current)
	if days < 0 || (days == 0 && !todayCounts) {
		days += 7
	}
	return days
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}
