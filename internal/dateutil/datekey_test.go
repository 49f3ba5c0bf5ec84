package dateutil

import (
	"testing"
	"time"
)

func TestKeyOf(t *testing.T) {
	tests := []struct {
		name   string
		today  time.Time
		offset int
		want   DateKey
	}{
		{
			name:   "same day ignores time of day",
			today:  time.Date(2025, 1, 15, 23, 45, 0, 0, time.UTC),
			offset: 0,
			want:   DateKey{2025, time.January, 15},
		},
		{
			name:   "month rollover",
			today:  time.Date(2025, 1, 31, 8, 0, 0, 0, time.UTC),
			offset: 1,
			want:   DateKey{2025, time.February, 1},
		},
		{
			name:   "year rollover backwards",
			today:  time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC),
			offset: -1,
			want:   DateKey{2024, time.December, 31},
		},
		{
			name:   "leap day",
			today:  time.Date(2024, 2, 28, 0, 0, 0, 0, time.UTC),
			offset: 1,
			want:   DateKey{2024, time.February, 29},
		},
		{
			name:   "large offset",
			today:  time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			offset: 365,
			want:   DateKey{2026, time.January, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KeyOf(tt.today, tt.offset); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDateKey_MapKey(t *testing.T) {
	m := map[DateKey]int{}
	m[DateKey{2025, time.March, 1}]++
	m[KeyOf(time.Date(2025, 2, 28, 12, 0, 0, 0, time.UTC), 1)]++
	m[DateKey{2025, time.March, 2}]++

	if len(m) != 2 {
		t.Fatalf("expected 2 distinct keys, got %d", len(m))
	}
	if m[DateKey{2025, time.March, 1}] != 2 {
		t.Errorf("expected structurally equal keys to share a slot, got %d", m[DateKey{2025, time.March, 1}])
	}
}

func TestDateKey_Ordering(t *testing.T) {
	a := DateKey{2024, time.December, 31}
	b := DateKey{2025, time.January, 1}

	if !a.Before(b) || b.Before(a) {
		t.Error("expected a before b")
	}
	if a.Compare(b) != -1 || b.Compare(a) != 1 || a.Compare(a) != 0 {
		t.Error("unexpected Compare result")
	}
}

func TestDaysBetween(t *testing.T) {
	a := DateKey{2025, time.March, 1}
	b := DateKey{2025, time.April, 1}
	if got := DaysBetween(a, b); got != 31 {
		t.Errorf("got %d, want 31", got)
	}
	if got := DaysBetween(b, a); got != -31 {
		t.Errorf("got %d, want -31", got)
	}
	if got := DaysBetween(a, a.AddDays(400)); got != 400 {
		t.Errorf("got %d, want 400", got)
	}
}

func TestDateKey_String(t *testing.T) {
	if got := (DateKey{2025, time.March, 7}).String(); got != "2025-03-07" {
		t.Errorf("got %q", got)
	}
}
