// Package dateutil provides date parsing, day keys and month arithmetic.
package dateutil

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

// Validation errors.
var (
	ErrInvalidDateFormat = errors.New("date must be in YYYY-MM-DD format")
	ErrInvalidDayOffset  = errors.New("day must be today, tomorrow, yesterday, +N, -N, a weekday or YYYY-MM-DD")
	ErrInvalidWeekday    = errors.New("invalid weekday")
	ErrInvalidYearMonth  = errors.New("month must be in YYYY-MM format")
)

// weekdayMap maps weekday names to time.Weekday values.
var weekdayMap = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// ParseDate parses a date string in YYYY-MM-DD format.
// If the string is empty, returns today's date.
func ParseDate(s string) (time.Time, error) {
	if s == "" {
		return TruncateToDay(time.Now()), nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	return t, nil
}

// TruncateToDay returns t with time set to midnight.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ParseWeekday parses a weekday name such as "monday" (case-insensitive).
func ParseWeekday(s string) (time.Weekday, error) {
	if wd, ok := weekdayMap[strings.ToLower(strings.TrimSpace(s))]; ok {
		return wd, nil
	}
	return time.Sunday, ErrInvalidWeekday
}

// ParseDayOffset converts a day expression into a signed offset from today.
//   - Empty string or "today": 0
//   - "tomorrow" / "yesterday": +1 / -1
//   - Signed offsets: "+3", "-2"
//   - Weekday names: "monday" through "sunday" (next occurrence, always future)
//   - Absolute date: "2025-01-15" (YYYY-MM-DD), past dates allowed
//
// All inputs are case-insensitive.
func ParseDayOffset(s string, today time.Time) (int, error) {
	input := strings.ToLower(strings.TrimSpace(s))
	switch input {
	case "", "today":
		return 0, nil
	case "tomorrow":
		return 1, nil
	case "yesterday":
		return -1, nil
	}

	if input[0] == '+' || input[0] == '-' {
		n, err := strconv.Atoi(input)
		if err != nil {
			return 0, ErrInvalidDayOffset
		}
		return n, nil
	}

	if target, ok := weekdayMap[input]; ok {
		return daysUntil(today.Weekday(), target), nil
	}

	date, err := time.Parse("2006-01-02", input)
	if err != nil {
		return 0, ErrInvalidDayOffset
	}
	return DaysBetween(KeyFromTime(today), KeyFromTime(date)), nil
}

// daysUntil returns the days until the next occurrence of target.
// If today is the target weekday, returns a full week.
func daysUntil(current, target time.Weekday) int {
	n := int(target) - int(current)
	if n <= 0 {
		n += 7
	}
	return n
}
