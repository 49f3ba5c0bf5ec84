// Package theme loads the calendar color themes.
package theme

import (
	"embed"
	"fmt"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// DefaultName is used when no theme is configured or the name is unknown.
const DefaultName = "mocha"

//go:embed embedded/*.toml
var embeddedThemes embed.FS

var themeNames = []string{"mocha", "macchiato", "frappe", "latte", "light"}

// Theme is one embedded TOML color scheme.
type Theme struct {
	Name         string `toml:"name"`
	Bg           string `toml:"bg"`
	BgHighlight  string `toml:"bg_highlight"` // detail strip, today cell
	BgSelection  string `toml:"bg_selection"` // day cursor
	Fg           string `toml:"fg"`
	FgMuted      string `toml:"fg_muted"` // hints, days outside the month
	Accent       string `toml:"accent"`   // title, borders, focused day
	Accomplished string `toml:"accomplished"`
	Pending      string `toml:"pending"`
	Today        string `toml:"today"`
	Favorite     string `toml:"favorite"`

	// Optional modal overrides; empty values fall back to the base colors.
	BaseBg      string `toml:"base_bg"`
	ModalBorder string `toml:"modal_border"`
	TextPrimary string `toml:"text_primary"`
	TextMuted   string `toml:"text_muted"`
	Highlight   string `toml:"highlight"`
}

// Load returns the named theme. Unknown names load DefaultName.
func Load(name string) (*Theme, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if !IsAvailable(name) {
		name = DefaultName
	}

	data, err := embeddedThemes.ReadFile("embedded/" + name + ".toml")
	if err != nil {
		return nil, fmt.Errorf("loading theme %q: %w", name, err)
	}

	var t Theme
	if err := toml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing theme %q: %w", name, err)
	}
	t.applyDefaults()
	return &t, nil
}

// ModalPalette is the resolved set of modal colors.
type ModalPalette struct {
	BaseBg      string
	ModalBorder string
	TextPrimary string
	TextMuted   string
	Highlight   string
}

// Modal resolves the modal colors against the base theme.
func (t *Theme) Modal() ModalPalette {
	return ModalPalette{
		BaseBg:      coalesce(t.BaseBg, t.BgHighlight, t.Bg),
		ModalBorder: coalesce(t.ModalBorder, t.Accent),
		TextPrimary: coalesce(t.TextPrimary, t.Fg),
		TextMuted:   coalesce(t.TextMuted, t.FgMuted),
		Highlight:   coalesce(t.Highlight, t.BgSelection, t.Accent),
	}
}

// applyDefaults fills the modal overrides so loaded themes are complete.
func (t *Theme) applyDefaults() {
	m := t.Modal()
	t.BaseBg = m.BaseBg
	t.ModalBorder = m.ModalBorder
	t.TextPrimary = m.TextPrimary
	t.TextMuted = m.TextMuted
	t.Highlight = m.Highlight
}

func coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Available returns the embedded theme names.
func Available() []string {
	return slices.Clone(themeNames)
}

// IsAvailable reports whether name is an embedded theme (case-insensitive).
func IsAvailable(name string) bool {
	return slices.Contains(themeNames, strings.ToLower(name))
}
