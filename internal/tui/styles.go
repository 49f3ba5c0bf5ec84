// Package tui provides the terminal user interface for todayaim.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/todayaim/internal/tui/theme"
	"github.com/javiermolinar/todayaim/internal/tui/view"
)

// cellKind selects the background of a day cell.
type cellKind int

const (
	cellNormal  cellKind = iota
	cellOutside          // Day from an adjacent month
	cellToday
	cellCursor
	cellFocused
	cellKinds
)

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	colorBg          lipgloss.Color
	colorBgHighlight lipgloss.Color
	colorBgSelection lipgloss.Color
	colorFg          lipgloss.Color
	colorFgMuted     lipgloss.Color
	colorAccent      lipgloss.Color

	// Title bar
	TitleStyle lipgloss.Style
	MetaStyle  lipgloss.Style

	// Month grid
	DayHeaderStyle lipgloss.Style
	BorderStyle    lipgloss.Style
	cells          [cellKinds]lipgloss.Style
	cellAims       [cellKinds]view.CellStyles

	// Detail strip
	Detail view.DetailStyles

	// Footer
	StatsStyle  lipgloss.Style
	StatusStyle lipgloss.Style
	HelpStyle   lipgloss.Style

	// Modal styles
	ModalStyle            lipgloss.Style
	ModalBgColor          lipgloss.Color
	ModalHeaderStyle      lipgloss.Style
	ModalFooterStyle      lipgloss.Style
	ModalTitleStyle       lipgloss.Style
	ModalBodyStyle        lipgloss.Style
	ModalHintStyle        lipgloss.Style
	ModalInputTextStyle   lipgloss.Style
	ModalInputCursorStyle lipgloss.Style
	ModalPlaceholderStyle lipgloss.Style

	// Help (bubbles/help)
	Help      help.Styles
	ModalHelp help.Styles

	// App container
	AppStyle lipgloss.Style
}

// NewStyles creates a new Styles instance from a theme.
func NewStyles(t *theme.Theme) *Styles {
	s := &Styles{}
	palette := theme.NewPalette(t)

	s.colorBg = palette.Bg
	s.colorBgHighlight = palette.BgHighlight
	s.colorBgSelection = palette.BgSelection
	s.colorFg = palette.Fg
	s.colorFgMuted = palette.FgMuted
	s.colorAccent = palette.Accent

	s.TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.colorAccent).
		Background(s.colorBg)

	s.MetaStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBg)

	s.DayHeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Align(lipgloss.Center).
		Foreground(s.colorFg).
		Background(s.colorBg)

	s.BorderStyle = lipgloss.NewStyle().
		Foreground(s.colorAccent).
		Background(s.colorBg)

	// Day cells: one background per kind, and aim styles that carry it.
	cellBg := [cellKinds]lipgloss.Color{
		cellNormal:  s.colorBg,
		cellOutside: s.colorBg,
		cellToday:   s.colorBgHighlight,
		cellCursor:  s.colorBgSelection,
		cellFocused: palette.FocusedBg,
	}
	dayFg := [cellKinds]lipgloss.Color{
		cellNormal:  s.colorFg,
		cellOutside: palette.OutsideFg,
		cellToday:   palette.Today,
		cellCursor:  palette.TextOnSelection,
		cellFocused: s.colorAccent,
	}
	for kind := cellKind(0); kind < cellKinds; kind++ {
		bg := cellBg[kind]
		s.cells[kind] = lipgloss.NewStyle().
			Background(bg).
			Foreground(s.colorFg)

		day := lipgloss.NewStyle().Background(bg).Foreground(dayFg[kind])
		if kind == cellToday || kind == cellFocused {
			day = day.Bold(true)
		}
		accomplished := palette.Accomplished
		pending := palette.Pending
		if kind == cellOutside {
			accomplished = palette.OutsideFg
			pending = palette.OutsideFg
		}
		s.cellAims[kind] = view.CellStyles{
			Day:          day,
			Accomplished: lipgloss.NewStyle().Background(bg).Foreground(accomplished),
			Pending:      lipgloss.NewStyle().Background(bg).Foreground(pending),
			Favorite:     lipgloss.NewStyle().Background(bg).Foreground(palette.Favorite),
			More:         lipgloss.NewStyle().Background(bg).Foreground(s.colorFgMuted).Italic(true),
		}
	}

	s.Detail = view.DetailStyles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(s.colorAccent).
			Background(s.colorBg),
		Item: lipgloss.NewStyle().
			Foreground(s.colorFg).
			Background(s.colorBg),
		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(palette.TextOnSelection).
			Background(s.colorBgSelection),
		Accomplished: lipgloss.NewStyle().
			Foreground(palette.Accomplished),
		Favorite: lipgloss.NewStyle().
			Foreground(palette.Favorite),
		Empty: lipgloss.NewStyle().
			Italic(true).
			Foreground(s.colorFgMuted).
			Background(s.colorBg),
	}

	s.StatsStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(s.colorBg)

	s.StatusStyle = lipgloss.NewStyle().
		Foreground(palette.Today).
		Background(s.colorBg).
		Bold(true)

	s.HelpStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(s.colorBg)

	// Modal styles - use high-contrast theme colors
	modal := palette.Modal
	modalBg := modal.Bg
	s.ModalBgColor = modalBg

	s.ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(modal.Border).
		BorderBackground(modalBg).
		Background(modalBg).
		Foreground(modal.Text).
		Padding(1, 2).
		Align(lipgloss.Left)

	s.ModalHeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(modal.Text).
		Background(modalBg)

	s.ModalFooterStyle = lipgloss.NewStyle().
		Foreground(modal.Muted).
		Background(modalBg)

	s.ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(modal.Highlight).
		Background(modalBg)

	s.ModalBodyStyle = lipgloss.NewStyle().
		Foreground(modal.Text).
		Background(modalBg)

	s.ModalHintStyle = lipgloss.NewStyle().
		Foreground(modal.Muted).
		Background(modalBg)

	s.ModalInputTextStyle = lipgloss.NewStyle().
		Foreground(modal.Text).
		Background(modalBg)

	s.ModalInputCursorStyle = lipgloss.NewStyle().
		Foreground(modal.ReverseText).
		Background(modal.Highlight)

	s.ModalPlaceholderStyle = lipgloss.NewStyle().
		Foreground(modal.Muted).
		Background(modalBg)

	s.Help = helpStyles(s.colorAccent, s.colorFgMuted, s.colorBg)
	s.ModalHelp = helpStyles(modal.Highlight, modal.Text, modalBg)

	// App container - padding provides consistent indentation for all content
	s.AppStyle = lipgloss.NewStyle().
		Background(s.colorBg).
		PaddingTop(1).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingBottom(1)

	return s
}

func helpStyles(keyFg, descFg lipgloss.TerminalColor, bg lipgloss.Color) help.Styles {
	keyStyle := lipgloss.NewStyle().Foreground(keyFg).Background(bg).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(descFg).Background(bg)
	sepStyle := lipgloss.NewStyle().Foreground(descFg).Background(bg)
	return help.Styles{
		Ellipsis:       sepStyle,
		ShortKey:       keyStyle,
		ShortDesc:      descStyle,
		ShortSeparator: sepStyle,
		FullKey:        keyStyle,
		FullDesc:       descStyle,
		FullSeparator:  sepStyle,
	}
}

// CellStyle returns the table style for a cell of the given kind.
func (s *Styles) CellStyle(kind cellKind) lipgloss.Style {
	return s.cells[kind]
}

// CellAimStyles returns the aim styles for a cell of the given kind.
func (s *Styles) CellAimStyles(kind cellKind) view.CellStyles {
	return s.cellAims[kind]
}

// ModalFrameStyles returns the styles used by view.RenderModalFrame.
func (s *Styles) ModalFrameStyles() view.ModalStyles {
	return view.ModalStyles{
		ModalStyle:       s.ModalStyle,
		ModalHeaderStyle: s.ModalHeaderStyle,
		ModalTitleStyle:  s.ModalTitleStyle,
		ModalFooterStyle: s.ModalFooterStyle,
	}
}
