package dateutil

import (
	"fmt"
	"time"
)

// YearMonth identifies a calendar month.
type YearMonth struct {
	Year  int
	Month time.Month
}

// CurrentYearMonth returns the month containing t.
func CurrentYearMonth(t time.Time) YearMonth {
	return YearMonth{Year: t.Year(), Month: t.Month()}
}

// ParseYearMonth parses a month in YYYY-MM format.
// An empty string returns the current month.
func ParseYearMonth(s string) (YearMonth, error) {
	if s == "" {
		return CurrentYearMonth(time.Now()), nil
	}
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return YearMonth{}, ErrInvalidYearMonth
	}
	return CurrentYearMonth(t), nil
}

// AddMonths moves n whole months forward (or backward for negative n).
func (ym YearMonth) AddMonths(n int) YearMonth {
	idx := ym.Year*12 + int(ym.Month) - 1 + n
	year := idx / 12
	month := idx % 12
	if month < 0 {
		month += 12
		year--
	}
	return YearMonth{Year: year, Month: time.Month(month + 1)}
}

// First returns the key of the first day of the month.
func (ym YearMonth) First() DateKey {
	return DateKey{Year: ym.Year, Month: ym.Month, Day: 1}
}

// Days returns the number of days in the month.
func (ym YearMonth) Days() int {
	return time.Date(ym.Year, ym.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Contains reports whether key falls in the month.
func (ym YearMonth) Contains(key DateKey) bool {
	return key.Year == ym.Year && key.Month == ym.Month
}

// String returns a short label such as "Oct 2026".
func (ym YearMonth) String() string {
	return fmt.Sprintf("%s %d", ym.Month.String()[:3], ym.Year)
}

// Long returns a label such as "October 2026".
func (ym YearMonth) Long() string {
	return fmt.Sprintf("%s %d", ym.Month, ym.Year)
}

// GridCell is one day slot of a month grid.
type GridCell struct {
	Key     DateKey
	InMonth bool
}

// MonthGrid lays out ym as whole weeks starting on weekStart. Days from the
// adjacent months fill the first and last rows and have InMonth unset.
func MonthGrid(ym YearMonth, weekStart time.Weekday) [][]GridCell {
	first := ym.First()
	lead := (int(first.Time(time.UTC).Weekday()) - int(weekStart) + 7) % 7
	total := lead + ym.Days()
	rows := (total + 6) / 7

	start := first.AddDays(-lead)
	grid := make([][]GridCell, rows)
	for r := range grid {
		week := make([]GridCell, 7)
		for c := range week {
			key := start.AddDays(r*7 + c)
			week[c] = GridCell{Key: key, InMonth: ym.Contains(key)}
		}
		grid[r] = week
	}
	return grid
}

// WeekdayHeaders returns short weekday names ordered from weekStart.
func WeekdayHeaders(weekStart time.Weekday) []string {
	headers := make([]string, 7)
	for i := range headers {
		headers[i] = time.Weekday((int(weekStart) + i) % 7).String()[:3]
	}
	return headers
}
