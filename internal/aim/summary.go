package aim

import "github.com/javiermolinar/todayaim/internal/dateutil"

// Summary holds aggregate counts for a day index.
type Summary struct {
	Total        int
	Accomplished int
	Favorited    int
	Days         int
	BusiestDay   dateutil.DateKey
	BusiestCount int
}

// Summarize computes counts over idx. Ties for the busiest day go to the
// earliest day.
func Summarize(idx DayIndex) Summary {
	var s Summary
	for _, key := range idx.Keys() {
		bucket := idx.days[key]
		s.Days++
		s.Total += len(bucket)
		for _, a := range bucket {
			if a.Accomplished {
				s.Accomplished++
			}
			if a.Favorited {
				s.Favorited++
			}
		}
		if len(bucket) > s.BusiestCount {
			s.BusiestCount = len(bucket)
			s.BusiestDay = key
		}
	}
	return s
}

// AccomplishedPercent returns the share of accomplished aims.
func (s Summary) AccomplishedPercent() int {
	if s.Total == 0 {
		return 0
	}
	return (s.Accomplished * 100) / s.Total
}
