package aim

import (
	"testing"
	"time"

	"github.com/javiermolinar/todayaim/internal/dateutil"
)

var testToday = time.Date(2025, 1, 31, 14, 0, 0, 0, time.UTC)

func sampleAims() []Aim {
	return []Aim{
		{ID: 1, Description: "Stretch", OffsetFromToday: 0},
		{ID: 2, Description: "Ship release", OffsetFromToday: 0, Accomplished: true, Favorited: true},
		{ID: 3, Description: "Plan trip", OffsetFromToday: 1},
	}
}

func ids(aims []Aim) []int64 {
	out := make([]int64, len(aims))
	for i, a := range aims {
		out[i] = a.ID
	}
	return out
}

func equalIDs(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestBuildDayIndex_Scenario(t *testing.T) {
	aims := sampleAims()
	d := dateutil.KeyOf(testToday, 0)
	next := dateutil.KeyOf(testToday, 1)

	t.Run("all", func(t *testing.T) {
		idx := BuildDayIndex(aims, testToday, CriterionAll)
		if idx.Len() != 2 {
			t.Fatalf("expected 2 days, got %d", idx.Len())
		}
		if got := ids(idx.Lookup(d)); !equalIDs(got, []int64{1, 2}) {
			t.Errorf("day D: got %v", got)
		}
		if got := ids(idx.Lookup(next)); !equalIDs(got, []int64{3}) {
			t.Errorf("day D+1: got %v", got)
		}
		if next != (dateutil.DateKey{Year: 2025, Month: time.February, Day: 1}) {
			t.Errorf("expected month rollover for D+1, got %v", next)
		}
	})

	t.Run("accomplished", func(t *testing.T) {
		idx := BuildDayIndex(aims, testToday, CriterionAccomplished)
		if idx.Len() != 1 {
			t.Fatalf("expected 1 day, got %d", idx.Len())
		}
		if got := ids(idx.Lookup(d)); !equalIDs(got, []int64{2}) {
			t.Errorf("day D: got %v", got)
		}
		if idx.Has(next) {
			t.Error("expected D+1 bucket to be absent")
		}
	})

	t.Run("after deleting the accomplished aim", func(t *testing.T) {
		remaining := []Aim{aims[0], aims[2]}
		idx := BuildDayIndex(remaining, testToday, CriterionAccomplished)
		if idx.Len() != 0 || idx.Count() != 0 {
			t.Errorf("expected empty index, got %d days", idx.Len())
		}
	})
}

func TestBuildDayIndex_Partition(t *testing.T) {
	var aims []Aim
	for i := 0; i < 60; i++ {
		aims = append(aims, Aim{
			ID:              int64(i + 1),
			OffsetFromToday: (i*7)%23 - 11,
			Accomplished:    i%3 == 0,
			Favorited:       i%6 == 0,
		})
	}

	for _, c := range Criteria() {
		t.Run(c.String(), func(t *testing.T) {
			idx := BuildDayIndex(aims, testToday, c)

			seen := map[int64]int{}
			for _, key := range idx.Keys() {
				bucket := idx.Lookup(key)
				if len(bucket) == 0 {
					t.Fatalf("empty bucket materialized for %v", key)
				}
				for _, a := range bucket {
					seen[a.ID]++
					if a.Day(testToday) != key {
						t.Errorf("aim %d filed under %v, belongs to %v", a.ID, key, a.Day(testToday))
					}
				}
			}

			want := 0
			for _, a := range aims {
				if !c.Matches(a) {
					if seen[a.ID] != 0 {
						t.Errorf("aim %d should have been filtered out", a.ID)
					}
					continue
				}
				want++
				if seen[a.ID] != 1 {
					t.Errorf("aim %d appears %d times", a.ID, seen[a.ID])
				}
			}
			if idx.Count() != want {
				t.Errorf("expected %d aims, got %d", want, idx.Count())
			}
		})
	}
}

func TestBuildDayIndex_StableOrder(t *testing.T) {
	aims := []Aim{
		{ID: 5, OffsetFromToday: 3},
		{ID: 2, OffsetFromToday: 3},
		{ID: 9, OffsetFromToday: 0},
		{ID: 1, OffsetFromToday: 3},
	}
	idx := BuildDayIndex(aims, testToday, CriterionAll)
	got := ids(idx.Lookup(dateutil.KeyOf(testToday, 3)))
	if !equalIDs(got, []int64{5, 2, 1}) {
		t.Errorf("expected source order preserved, got %v", got)
	}
}

func TestBuildDayIndex_Idempotent(t *testing.T) {
	aims := sampleAims()
	a := BuildDayIndex(aims, testToday, CriterionAll)
	b := BuildDayIndex(aims, testToday, CriterionAll)
	if !a.Equal(b) {
		t.Error("expected identical indexes for identical inputs")
	}
	if a.Equal(BuildDayIndex(aims, testToday, CriterionFavorited)) {
		t.Error("expected different criteria to differ")
	}
}

func TestBuildDayIndex_Empty(t *testing.T) {
	idx := BuildDayIndex(nil, testToday, CriterionAll)
	if idx.Len() != 0 {
		t.Errorf("expected empty index, got %d", idx.Len())
	}
}

func TestDayIndex_LookupMissing(t *testing.T) {
	idx := BuildDayIndex(sampleAims(), testToday, CriterionAll)
	got := idx.Lookup(dateutil.DateKey{Year: 1999, Month: time.January, Day: 1})
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", got)
	}

	var zero DayIndex
	if len(zero.Lookup(dateutil.DateKey{})) != 0 {
		t.Error("expected zero index lookup to be empty")
	}
}

func TestDayIndex_LookupReturnsCopy(t *testing.T) {
	idx := BuildDayIndex(sampleAims(), testToday, CriterionAll)
	key := dateutil.KeyOf(testToday, 0)
	bucket := idx.Lookup(key)
	bucket[0].Description = "mutated"
	if idx.Lookup(key)[0].Description == "mutated" {
		t.Error("expected Lookup to return a copy")
	}
}

func TestDayIndex_InMonth(t *testing.T) {
	idx := BuildDayIndex(sampleAims(), testToday, CriterionAll)

	jan := idx.InMonth(dateutil.YearMonth{Year: 2025, Month: time.January})
	if jan.Len() != 1 || jan.Count() != 2 {
		t.Errorf("expected January to hold 1 day / 2 aims, got %d / %d", jan.Len(), jan.Count())
	}
	feb := idx.InMonth(dateutil.YearMonth{Year: 2025, Month: time.February})
	if feb.Len() != 1 || feb.Count() != 1 {
		t.Errorf("expected February to hold 1 day / 1 aim, got %d / %d", feb.Len(), feb.Count())
	}
}

func TestDayIndex_KeysSorted(t *testing.T) {
	aims := []Aim{{ID: 1, OffsetFromToday: 5}, {ID: 2, OffsetFromToday: -5}, {ID: 3, OffsetFromToday: 0}}
	keys := BuildDayIndex(aims, testToday, CriterionAll).Keys()
	for i := 1; i < len(keys); i++ {
		if !keys[i-1].Before(keys[i]) {
			t.Fatalf("keys not sorted: %v", keys)
		}
	}
}
