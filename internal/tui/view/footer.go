package view

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// FooterViewState holds the strings needed to render the footer section.
type FooterViewState struct {
	InnerW      int
	FooterH     int
	StatsText   string
	StatusText  string
	HelpText    string
	StatsStyle  lipgloss.Style
	StatusStyle lipgloss.Style
	HelpStyle   lipgloss.Style
	Bg          lipgloss.Color
}

// RenderFooter renders stats, status, and help lines. When only two lines
// fit, the stats line is dropped.
func RenderFooter(state FooterViewState) string {
	if state.FooterH <= 0 {
		return ""
	}

	statusLine := footerLine(state.InnerW, state.StatusStyle, state.StatusText)
	helpLine := footerLine(state.InnerW, state.HelpStyle, state.HelpText)

	var s string
	switch {
	case state.FooterH >= 3:
		s = footerLine(state.InnerW, state.StatsStyle, state.StatsText) + "\n" + statusLine + "\n" + helpLine
	case state.FooterH == 2:
		s = statusLine + "\n" + helpLine
	default:
		s = helpLine
	}

	return PlaceBox(state.InnerW, state.FooterH, lipgloss.Bottom, s, state.Bg)
}

func footerLine(width int, style lipgloss.Style, content string) string {
	frameW, _ := style.GetFrameSize()
	contentWidth := max(0, width-frameW)
	style = style.Width(contentWidth)
	if contentWidth > 0 {
		content = ansi.Truncate(content, contentWidth, "")
	}
	return style.Render(content)
}
