package dateutil

import (
	"fmt"
	"time"
)

// DateKey identifies a calendar day. It is comparable and can be used as a
// map key; two keys are equal iff year, month and day match.
type DateKey struct {
	Year  int
	Month time.Month
	Day   int
}

// KeyOf returns the calendar day that lies offset days away from today.
// Month and year rollover follow time.AddDate, so the result is always a
// valid day.
func KeyOf(today time.Time, offset int) DateKey {
	return KeyFromTime(TruncateToDay(today).AddDate(0, 0, offset))
}

// KeyFromTime returns the key of the day containing t.
func KeyFromTime(t time.Time) DateKey {
	return DateKey{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// Time returns midnight of the key's day in loc.
func (k DateKey) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return time.Date(k.Year, k.Month, k.Day, 0, 0, 0, 0, loc)
}

// AddDays returns the key n days after k.
func (k DateKey) AddDays(n int) DateKey {
	return KeyFromTime(k.Time(time.UTC).AddDate(0, 0, n))
}

// Before reports whether k is an earlier day than other.
func (k DateKey) Before(other DateKey) bool {
	if k.Year != other.Year {
		return k.Year < other.Year
	}
	if k.Month != other.Month {
		return k.Month < other.Month
	}
	return k.Day < other.Day
}

// Compare returns -1, 0 or 1 ordering k against other chronologically.
func (k DateKey) Compare(other DateKey) int {
	switch {
	case k.Before(other):
		return -1
	case other.Before(k):
		return 1
	default:
		return 0
	}
}

// YearMonth returns the month containing k.
func (k DateKey) YearMonth() YearMonth {
	return YearMonth{Year: k.Year, Month: k.Month}
}

// IsZero reports whether k is the zero key.
func (k DateKey) IsZero() bool {
	return k == DateKey{}
}

// String formats the key as YYYY-MM-DD.
func (k DateKey) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", k.Year, int(k.Month), k.Day)
}

// DaysBetween returns the signed number of days from a to b.
func DaysBetween(a, b DateKey) int {
	// UTC midnights avoid DST skew; every day is exactly 24h.
	d := b.Time(time.UTC).Sub(a.Time(time.UTC))
	return int(d.Hours() / 24)
}
