// Package calendar holds the calendar's selection state: the focused day,
// the displayed month and the active filter.
package calendar

import (
	"fmt"
	"time"

	"github.com/javiermolinar/todayaim/internal/aim"
	"github.com/javiermolinar/todayaim/internal/dateutil"
)

// Direction is a whole-month navigation step.
type Direction int

const (
	Previous Direction = -1
	Next     Direction = 1
)

// Focus is the day opened in the detail strip. The date and its aims are
// set and cleared together.
type Focus struct {
	date *dateutil.DateKey
	aims []aim.Aim
}

// Active reports whether a day is focused.
func (f Focus) Active() bool {
	return f.date != nil
}

// Date returns the focused day.
func (f Focus) Date() (dateutil.DateKey, bool) {
	if f.date == nil {
		return dateutil.DateKey{}, false
	}
	return *f.date, true
}

// Is reports whether key is the focused day.
func (f Focus) Is(key dateutil.DateKey) bool {
	return f.date != nil && *f.date == key
}

// Aims returns a copy of the focused aims, or nil when unfocused.
func (f Focus) Aims() []aim.Aim {
	if f.date == nil {
		return nil
	}
	result := make([]aim.Aim, len(f.aims))
	copy(result, f.aims)
	return result
}

func focusOn(key dateutil.DateKey, idx aim.DayIndex) Focus {
	return Focus{date: &key, aims: idx.Lookup(key)}
}

// Cursor is the month currently displayed in the grid.
type Cursor struct {
	displayed dateutil.YearMonth
}

// NewCursor returns a cursor on the month containing t.
func NewCursor(t time.Time) Cursor {
	return Cursor{displayed: dateutil.CurrentYearMonth(t)}
}

// Displayed returns the displayed month.
func (c Cursor) Displayed() dateutil.YearMonth {
	return c.displayed
}

// Advance moves the cursor one month in dir. It panics on any other step.
func (c Cursor) Advance(dir Direction) Cursor {
	if dir != Previous && dir != Next {
		panic(fmt.Sprintf("calendar: invalid direction %d", int(dir)))
	}
	return Cursor{displayed: c.displayed.AddMonths(int(dir))}
}

// Reset returns a cursor on the month containing today.
func (c Cursor) Reset(today time.Time) Cursor {
	return NewCursor(today)
}

// State is the whole selection state of the calendar. Transitions return a
// new State and never mutate the receiver.
type State struct {
	Criterion aim.Criterion
	Cursor    Cursor
	Focus     Focus
}

// NewState returns an unfocused state displaying today's month.
func NewState(today time.Time, c aim.Criterion) State {
	return State{Criterion: c, Cursor: NewCursor(today)}
}

// SelectDay focuses key, or clears focus when key is already focused.
func (s State) SelectDay(key dateutil.DateKey, idx aim.DayIndex) State {
	if s.Focus.Is(key) {
		s.Focus = Focus{}
		return s
	}
	s.Focus = focusOn(key, idx)
	return s
}

// Dismiss clears focus.
func (s State) Dismiss() State {
	s.Focus = Focus{}
	return s
}

// WithCriterion switches the filter. A focused day keeps its focus and its
// aims are re-read from idx, which must be built with c.
func (s State) WithCriterion(c aim.Criterion, idx aim.DayIndex) State {
	s.Criterion = c
	return s.Resync(idx)
}

// Resync re-reads the focused aims from idx.
func (s State) Resync(idx aim.DayIndex) State {
	if key, ok := s.Focus.Date(); ok {
		s.Focus = focusOn(key, idx)
	}
	return s
}

// Advance moves the displayed month one step in dir.
func (s State) Advance(dir Direction) State {
	s.Cursor = s.Cursor.Advance(dir)
	return s
}
