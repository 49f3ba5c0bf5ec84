package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-runewidth"
)

// CellAim is one aim shown inside a day cell.
type CellAim struct {
	Label        string
	Accomplished bool
	Favorited    bool
}

// CellStyles colour the aims inside a day cell. They must carry the cell
// background so styled segments do not punch holes in it.
type CellStyles struct {
	Day          lipgloss.Style
	Accomplished lipgloss.Style
	Pending      lipgloss.Style
	Favorite     lipgloss.Style
	More         lipgloss.Style
}

const (
	markerGlyph   = "▪"
	pendingGlyph  = "•"
	favoriteGlyph = "★"
)

// DayCell renders a day cell of the given size: the day number on the first
// line, then one label per aim. In compact mode the aims collapse into a
// single row of markers.
func DayCell(day int, aims []CellAim, width, height int, compact bool, styles CellStyles) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	lines := make([]string, 0, height)
	lines = append(lines, styles.Day.Render(fmt.Sprintf("%2d", day)))

	switch {
	case len(aims) == 0 || height == 1:
	case compact:
		lines = append(lines, markerLine(aims, width, styles))
	default:
		lines = append(lines, labelLines(aims, width, height-1, styles)...)
	}

	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func markerLine(aims []CellAim, width int, styles CellStyles) string {
	n := min(len(aims), width)
	overflow := len(aims) > width
	if overflow {
		n = max(0, width-1)
	}
	var b strings.Builder
	for _, a := range aims[:n] {
		b.WriteString(aimStyle(a, styles).Render(markerGlyph))
	}
	if overflow {
		b.WriteString(styles.More.Render("+"))
	}
	return b.String()
}

func labelLines(aims []CellAim, width, maxLines int, styles CellStyles) []string {
	if maxLines <= 0 {
		return nil
	}
	shown := aims
	more := 0
	if len(aims) > maxLines {
		shown = aims[:maxLines-1]
		more = len(aims) - len(shown)
	}

	lines := make([]string, 0, maxLines)
	for _, a := range shown {
		glyph := pendingGlyph
		glyphStyle := aimStyle(a, styles)
		if a.Favorited {
			glyph = favoriteGlyph
			glyphStyle = styles.Favorite
		}
		label := runewidth.Truncate(a.Label, max(0, width-2), "…")
		lines = append(lines, glyphStyle.Render(glyph)+aimStyle(a, styles).Render(" "+label))
	}
	if more > 0 {
		lines = append(lines, styles.More.Render(runewidth.Truncate(fmt.Sprintf("+%d more", more), width, "")))
	}
	return lines
}

func aimStyle(a CellAim, styles CellStyles) lipgloss.Style {
	if a.Accomplished {
		return styles.Accomplished
	}
	return styles.Pending
}

// MonthTableState holds data needed to render the month grid.
type MonthTableState struct {
	InnerW      int
	GridH       int
	Headers     []string
	HeaderStyle lipgloss.Style
	Rows        [][]string
	CellStyles  [][]lipgloss.Style
	BorderStyle lipgloss.Style
	Bg          lipgloss.Color
}

// RenderMonth renders the month grid using a lipgloss table.
func RenderMonth(state MonthTableState) string {
	if state.GridH <= 0 || state.InnerW <= 0 {
		return ""
	}

	t := table.New().
		Headers(state.Headers...).
		Width(state.InnerW).
		Border(lipgloss.RoundedBorder()).
		BorderHeader(true).
		BorderColumn(true).
		BorderRow(true).
		BorderStyle(state.BorderStyle).
		Rows(state.Rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return state.HeaderStyle
			}
			if row < 0 || row >= len(state.CellStyles) || col < 0 || col >= len(state.CellStyles[row]) {
				return lipgloss.NewStyle()
			}
			return state.CellStyles[row][col]
		})

	return PlaceBox(state.InnerW, state.GridH, lipgloss.Top, t.Render(), state.Bg)
}

// ColumnWidth returns the content width of one day column for a grid
// innerW wide, accounting for the eight vertical borders.
func ColumnWidth(innerW int) int {
	return max(1, (innerW-8)/7)
}

// CellHeight returns the lines available per day cell when weeks rows share
// gridH lines with the header and the borders.
func CellHeight(gridH, weeks int) int {
	if weeks <= 0 {
		return 1
	}
	// Top border, header, header separator, bottom border, row separators.
	chrome := 4 + (weeks - 1)
	return max(1, (gridH-chrome)/weeks)
}
