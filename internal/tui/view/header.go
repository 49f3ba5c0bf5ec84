package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// HeaderViewState holds the title bar content.
type HeaderViewState struct {
	InnerW     int
	Title      string
	Meta       string
	TitleStyle lipgloss.Style
	MetaStyle  lipgloss.Style
	Bg         lipgloss.Color
}

// RenderHeader renders the title on the left and meta on the right.
// Meta is dropped when both do not fit.
func RenderHeader(state HeaderViewState) string {
	if state.InnerW <= 0 {
		return ""
	}
	title := state.TitleStyle.Render(state.Title)
	meta := state.MetaStyle.Render(state.Meta)

	gap := state.InnerW - lipgloss.Width(title) - lipgloss.Width(meta)
	line := title
	if state.Meta != "" && gap >= 1 {
		fill := lipgloss.NewStyle().Background(state.Bg).Render(strings.Repeat(" ", gap))
		line = title + fill + meta
	}
	return PlaceBox(state.InnerW, 1, lipgloss.Top, line, state.Bg)
}

// MonthTitle decorates a month label with navigation arrows.
func MonthTitle(month string) string {
	return "‹ " + month + " ›"
}
