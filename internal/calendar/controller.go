package calendar

import (
	"errors"
	"log/slog"
	"time"

	"github.com/javiermolinar/todayaim/internal/aim"
	"github.com/javiermolinar/todayaim/internal/dateutil"
)

// DefaultDeleteDelay matches the length of the detail strip's dismissal.
const DefaultDeleteDelay = 400 * time.Millisecond

// Controller errors.
var (
	ErrNotFocused      = errors.New("no day is focused")
	ErrNotInFocus      = errors.New("aim is not on the focused day")
	ErrNotAccomplished = errors.New("only accomplished aims can be favorited")
)

// Effect is a persistence command produced by a transition. Delay is how
// long the caller should wait before executing it.
type Effect struct {
	Command aim.Command
	Delay   time.Duration
}

// Controller owns the live aim collection and the calendar state.
// It is driven from a single event loop and is not safe for concurrent use.
type Controller struct {
	now         func() time.Time
	deleteDelay time.Duration
	log         *slog.Logger

	aims    []aim.Aim
	version uint64
	state   State

	cache      aim.DayIndex
	cacheKey   indexKey
	cacheValid bool
}

type indexKey struct {
	version   uint64
	criterion aim.Criterion
	today     dateutil.DateKey
}

// Option configures a Controller.
type Option func(*Controller)

// WithClock sets the function used to read "today".
func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		c.now = now
	}
}

// WithCriterion sets the initial filter.
func WithCriterion(criterion aim.Criterion) Option {
	return func(c *Controller) {
		c.state.Criterion = criterion
	}
}

// WithDeleteDelay sets how long a requested delete waits before committing.
func WithDeleteDelay(d time.Duration) Option {
	return func(c *Controller) {
		c.deleteDelay = d
	}
}

// WithLogger sets the logger for state transitions.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		c.log = l
	}
}

// NewController creates an unfocused controller displaying today's month.
func NewController(opts ...Option) *Controller {
	c := &Controller{
		now:         time.Now,
		deleteDelay: DefaultDeleteDelay,
		log:         slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	if !c.state.Criterion.Valid() {
		panic("calendar: invalid initial criterion")
	}
	c.state.Cursor = NewCursor(c.now())
	return c
}

// Today returns the key of the current day.
func (c *Controller) Today() dateutil.DateKey {
	return dateutil.KeyFromTime(c.now())
}

// State returns a copy of the current state, with the focused aims re-read
// if the day rolled over since the last call.
func (c *Controller) State() State {
	c.Index()
	return c.state
}

// Aims returns the live aim collection.
func (c *Controller) Aims() []aim.Aim {
	result := make([]aim.Aim, len(c.aims))
	copy(result, c.aims)
	return result
}

// Refresh replaces the live aim collection after a persistence change.
// A focused day keeps its focus with its aims re-read.
func (c *Controller) Refresh(aims []aim.Aim) {
	c.aims = make([]aim.Aim, len(aims))
	copy(c.aims, aims)
	c.version++
	idx := c.Index()
	c.state = c.state.Resync(idx)
}

// Index returns the day index for the live aims and active filter.
func (c *Controller) Index() aim.DayIndex {
	now := c.now()
	key := indexKey{
		version:   c.version,
		criterion: c.state.Criterion,
		today:     dateutil.KeyFromTime(now),
	}
	if c.cacheValid && c.cacheKey == key {
		return c.cache
	}
	rolledOver := c.cacheValid && c.cacheKey.today != key.today
	c.cache = aim.BuildDayIndex(c.aims, now, c.state.Criterion)
	c.cacheKey = key
	c.cacheValid = true
	if rolledOver {
		// Every aim moved one day; the focused list must follow.
		c.state = c.state.Resync(c.cache)
		c.log.Debug("DAY_ROLLOVER", "today", key.today.String())
	}
	return c.cache
}

// SelectDay toggles focus on key.
func (c *Controller) SelectDay(key dateutil.DateKey) {
	idx := c.Index()
	c.state = c.state.SelectDay(key, idx)
	c.log.Debug("FOCUS_CHANGE", "day", key.String(), "focused", c.state.Focus.Active())
}

// Dismiss clears focus.
func (c *Controller) Dismiss() {
	if !c.state.Focus.Active() {
		return
	}
	c.state = c.state.Dismiss()
	c.log.Debug("FOCUS_CHANGE", "focused", false, "reason", "dismiss")
}

// SetCriterion switches the active filter. Aims are not modified.
func (c *Controller) SetCriterion(criterion aim.Criterion) {
	if !criterion.Valid() {
		panic("calendar: invalid criterion")
	}
	c.state.Criterion = criterion
	idx := c.Index()
	c.state = c.state.WithCriterion(criterion, idx)
	c.log.Debug("FILTER_CHANGE", "criterion", criterion.String())
}

// AdvanceMonth moves the displayed month one step.
func (c *Controller) AdvanceMonth(dir Direction) {
	c.state = c.state.Advance(dir)
	c.log.Debug("MONTH_CHANGE", "month", c.state.Cursor.Displayed().String())
}

// JumpToToday displays the current month.
func (c *Controller) JumpToToday() {
	c.state.Cursor = c.state.Cursor.Reset(c.now())
	c.log.Debug("MONTH_CHANGE", "month", c.state.Cursor.Displayed().String(), "reason", "today")
}

// RequestDelete clears focus immediately and returns the deferred delete
// for a. The focus stays cleared whatever the outcome of the delete.
func (c *Controller) RequestDelete(a aim.Aim) (Effect, error) {
	if err := c.checkFocused(a); err != nil {
		return Effect{}, err
	}
	c.state = c.state.Dismiss()
	c.log.Debug("DELETE_REQUEST", "id", a.ID, "delay", c.deleteDelay.String())
	return Effect{Command: aim.DeleteCommand(a.ID), Delay: c.deleteDelay}, nil
}

// ToggleFavorite returns the command flipping a's favorite flag.
// Focus is unchanged; the new flag shows up after the next Refresh.
func (c *Controller) ToggleFavorite(a aim.Aim) (Effect, error) {
	if err := c.checkFocused(a); err != nil {
		return Effect{}, err
	}
	if !a.CanFavorite() {
		return Effect{}, ErrNotAccomplished
	}
	c.log.Debug("FAVORITE_TOGGLE", "id", a.ID, "favorited", !a.Favorited)
	return Effect{Command: aim.FavoriteCommand(a.ID, !a.Favorited)}, nil
}

// ToggleAccomplished returns the command flipping a's accomplished flag.
// Clearing it also clears the favorite flag in the store.
func (c *Controller) ToggleAccomplished(a aim.Aim) (Effect, error) {
	if err := c.checkFocused(a); err != nil {
		return Effect{}, err
	}
	c.log.Debug("ACCOMPLISH_TOGGLE", "id", a.ID, "accomplished", !a.Accomplished)
	return Effect{Command: aim.AccomplishCommand(a.ID, !a.Accomplished)}, nil
}

func (c *Controller) checkFocused(a aim.Aim) error {
	c.Index()
	if !c.state.Focus.Active() {
		return ErrNotFocused
	}
	for _, f := range c.state.Focus.aims {
		if f.ID == a.ID {
			return nil
		}
	}
	return ErrNotInFocus
}
