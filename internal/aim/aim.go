// Package aim defines the core domain types for todayaim.
package aim

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/javiermolinar/todayaim/internal/dateutil"
)

// MaxDescriptionLength is the longest description accepted, in runes.
const MaxDescriptionLength = 256

// Validation errors.
var (
	ErrEmptyDescription   = errors.New("description cannot be empty")
	ErrDescriptionTooLong = errors.New("description is too long")
	ErrInvalidCriterion   = errors.New("filter must be 'all', 'accomplished' or 'favorited'")
	ErrMissingID          = errors.New("command requires an aim ID")
	ErrUnknownOp          = errors.New("unknown command operation")
)

// Domain errors.
var (
	ErrAimNotFound = errors.New("aim not found")
)

// Aim is a date-stamped goal entry.
//
// The calendar day an aim belongs to is not stored: it is derived from
// OffsetFromToday relative to whatever "today" is when it is evaluated.
type Aim struct {
	ID              int64
	Description     string
	OffsetFromToday int
	Accomplished    bool
	Favorited       bool
	CreatedAt       time.Time
}

// New creates a new Aim with validation.
func New(description string, offset int) (*Aim, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, ErrEmptyDescription
	}
	if utf8.RuneCountInString(description) > MaxDescriptionLength {
		return nil, ErrDescriptionTooLong
	}

	return &Aim{
		Description:     description,
		OffsetFromToday: offset,
		CreatedAt:       time.Now(),
	}, nil
}

// Day returns the calendar day the aim falls on, evaluated against today.
func (a Aim) Day(today time.Time) dateutil.DateKey {
	return dateutil.KeyOf(today, a.OffsetFromToday)
}

// CanFavorite reports whether the favorite flag may be toggled.
// Only accomplished aims can be favorited.
func (a Aim) CanFavorite() bool {
	return a.Accomplished
}
