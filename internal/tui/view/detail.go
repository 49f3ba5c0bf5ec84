package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// DetailItem is one row of the detail strip.
type DetailItem struct {
	Description  string
	Accomplished bool
	Favorited    bool
}

// DetailStyles groups the styles of the detail strip.
type DetailStyles struct {
	Title        lipgloss.Style
	Item         lipgloss.Style
	Selected     lipgloss.Style
	Accomplished lipgloss.Style
	Favorite     lipgloss.Style
	Empty        lipgloss.Style
}

// DetailState holds what the detail strip shows for the focused day.
type DetailState struct {
	InnerW   int
	Height   int
	Title    string
	Items    []DetailItem
	Selected int
	Empty    string
	Styles   DetailStyles
	Bg       lipgloss.Color
}

// RenderDetail renders the focused day's aims with a selection cursor.
// The list scrolls to keep the selected row visible.
func RenderDetail(state DetailState) string {
	if state.Height <= 0 || state.InnerW <= 0 {
		return ""
	}

	lines := []string{state.Styles.Title.Render(runewidth.Truncate(state.Title, state.InnerW, "…"))}
	rows := state.Height - 1

	if len(state.Items) == 0 {
		if rows > 0 {
			lines = append(lines, state.Styles.Empty.Render(state.Empty))
		}
		return PlaceBox(state.InnerW, state.Height, lipgloss.Top, strings.Join(lines, "\n"), state.Bg)
	}

	start, end := DetailWindow(len(state.Items), state.Selected, rows)
	for i := start; i < end; i++ {
		lines = append(lines, detailLine(state.Items[i], i == state.Selected, state.InnerW, state.Styles))
	}

	return PlaceBox(state.InnerW, state.Height, lipgloss.Top, strings.Join(lines, "\n"), state.Bg)
}

// DetailWindow returns the [start, end) range of items visible in rows
// lines with selected kept in view.
func DetailWindow(total, selected, rows int) (int, int) {
	if rows <= 0 || total == 0 {
		return 0, 0
	}
	if total <= rows {
		return 0, total
	}
	selected = max(0, min(selected, total-1))
	start := max(0, selected-rows+1)
	return start, start + rows
}

func detailLine(item DetailItem, selected bool, width int, styles DetailStyles) string {
	cursor := "  "
	style := styles.Item
	if selected {
		cursor = "› "
		style = styles.Selected
	}

	check := "[ ] "
	if item.Accomplished {
		check = "[x] "
	}
	star := "  "
	if item.Favorited {
		star = favoriteGlyph + " "
	}

	prefix := cursor + check + star
	desc := runewidth.Truncate(item.Description, max(0, width-runewidth.StringWidth(prefix)), "…")

	checkStyle := style
	if item.Accomplished {
		checkStyle = styles.Accomplished.Inherit(style)
	}
	starStyle := styles.Favorite.Inherit(style)

	return style.Render(cursor) + checkStyle.Render(check) + starStyle.Render(star) + style.Render(desc)
}
