package aim

import (
	"slices"
	"time"

	"github.com/javiermolinar/todayaim/internal/dateutil"
)

// DayIndex maps calendar days to the aims that fall on them.
// Buckets keep the relative order of the source collection and are never empty.
type DayIndex struct {
	days map[dateutil.DateKey][]Aim
}

// BuildDayIndex groups the aims passing c by their day relative to today.
func BuildDayIndex(aims []Aim, today time.Time, c Criterion) DayIndex {
	days := make(map[dateutil.DateKey][]Aim)
	for _, a := range aims {
		if !c.Matches(a) {
			continue
		}
		key := a.Day(today)
		days[key] = append(days[key], a)
	}
	return DayIndex{days: days}
}

// Lookup returns a copy of the aims on key, or an empty slice.
func (idx DayIndex) Lookup(key dateutil.DateKey) []Aim {
	bucket := idx.days[key]
	result := make([]Aim, len(bucket))
	copy(result, bucket)
	return result
}

// Has reports whether any aim falls on key.
func (idx DayIndex) Has(key dateutil.DateKey) bool {
	return len(idx.days[key]) > 0
}

// Len returns the number of days holding at least one aim.
func (idx DayIndex) Len() int {
	return len(idx.days)
}

// Count returns the total number of aims in the index.
func (idx DayIndex) Count() int {
	n := 0
	for _, bucket := range idx.days {
		n += len(bucket)
	}
	return n
}

// Keys returns the indexed days in chronological order.
func (idx DayIndex) Keys() []dateutil.DateKey {
	keys := make([]dateutil.DateKey, 0, len(idx.days))
	for k := range idx.days {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, dateutil.DateKey.Compare)
	return keys
}

// InMonth returns the part of the index that falls in ym.
func (idx DayIndex) InMonth(ym dateutil.YearMonth) DayIndex {
	days := make(map[dateutil.DateKey][]Aim)
	for k, bucket := range idx.days {
		if ym.Contains(k) {
			days[k] = bucket
		}
	}
	return DayIndex{days: days}
}

// Equal reports whether both indexes hold the same buckets in the same order.
func (idx DayIndex) Equal(other DayIndex) bool {
	if len(idx.days) != len(other.days) {
		return false
	}
	for k, bucket := range idx.days {
		if !slices.Equal(bucket, other.days[k]) {
			return false
		}
	}
	return true
}
