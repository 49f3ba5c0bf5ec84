package aim

import (
	"testing"

	"github.com/javiermolinar/todayaim/internal/dateutil"
)

func TestSummarize(t *testing.T) {
	aims := []Aim{
		{ID: 1, OffsetFromToday: 1},
		{ID: 2, OffsetFromToday: 1, Accomplished: true},
		{ID: 3, OffsetFromToday: 0, Accomplished: true, Favorited: true},
		{ID: 4, OffsetFromToday: 2},
		{ID: 5, OffsetFromToday: 2, Accomplished: true},
	}
	s := Summarize(BuildDayIndex(aims, testToday, CriterionAll))

	if s.Total != 5 {
		t.Errorf("expected total 5, got %d", s.Total)
	}
	if s.Accomplished != 3 {
		t.Errorf("expected 3 accomplished, got %d", s.Accomplished)
	}
	if s.Favorited != 1 {
		t.Errorf("expected 1 favorited, got %d", s.Favorited)
	}
	if s.Days != 3 {
		t.Errorf("expected 3 days, got %d", s.Days)
	}
	// Days +1 and +2 tie; the earlier one wins.
	if s.BusiestDay != dateutil.KeyOf(testToday, 1) || s.BusiestCount != 2 {
		t.Errorf("unexpected busiest day %v (%d)", s.BusiestDay, s.BusiestCount)
	}
	if s.AccomplishedPercent() != 60 {
		t.Errorf("expected 60%%, got %d%%", s.AccomplishedPercent())
	}
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(DayIndex{})
	if s.Total != 0 || s.AccomplishedPercent() != 0 || !s.BusiestDay.IsZero() {
		t.Errorf("unexpected summary %+v", s)
	}
}
