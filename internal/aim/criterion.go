package aim

import (
	"fmt"
	"strings"
)

// Criterion selects which aims populate the calendar.
type Criterion int

const (
	CriterionAll Criterion = iota
	CriterionAccomplished
	CriterionFavorited
)

// Criteria returns all criteria in menu order.
func Criteria() []Criterion {
	return []Criterion{CriterionAll, CriterionAccomplished, CriterionFavorited}
}

// ParseCriterion parses a criterion name (case-insensitive).
func ParseCriterion(s string) (Criterion, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "all":
		return CriterionAll, nil
	case "accomplished":
		return CriterionAccomplished, nil
	case "favorited":
		return CriterionFavorited, nil
	default:
		return CriterionAll, ErrInvalidCriterion
	}
}

// Valid returns true if the criterion is a known value.
func (c Criterion) Valid() bool {
	switch c {
	case CriterionAll, CriterionAccomplished, CriterionFavorited:
		return true
	default:
		return false
	}
}

// Matches reports whether a passes the criterion.
// It panics on an unknown criterion.
func (c Criterion) Matches(a Aim) bool {
	switch c {
	case CriterionAll:
		return true
	case CriterionAccomplished:
		return a.Accomplished
	case CriterionFavorited:
		return a.Favorited
	default:
		panic(fmt.Sprintf("aim: unknown criterion %d", int(c)))
	}
}

// Next returns the following criterion in menu order, wrapping around.
func (c Criterion) Next() Criterion {
	switch c {
	case CriterionAll:
		return CriterionAccomplished
	case CriterionAccomplished:
		return CriterionFavorited
	default:
		return CriterionAll
	}
}

// String returns the config/CLI name of the criterion.
func (c Criterion) String() string {
	switch c {
	case CriterionAll:
		return "all"
	case CriterionAccomplished:
		return "accomplished"
	case CriterionFavorited:
		return "favorited"
	default:
		return fmt.Sprintf("Criterion(%d)", int(c))
	}
}

// Label returns the display string of the criterion.
func (c Criterion) Label() string {
	switch c {
	case CriterionAll:
		return "All"
	case CriterionAccomplished:
		return "Accomplished"
	case CriterionFavorited:
		return "Favorited"
	default:
		return c.String()
	}
}
