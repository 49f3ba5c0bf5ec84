package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/todayaim/internal/aim"
	"github.com/javiermolinar/todayaim/internal/dateutil"
	"github.com/javiermolinar/todayaim/internal/tui/view"
)

const (
	headerHeight  = 1
	minGridHeight = 8
	maxDetailRows = 6
	minInnerWidth = 7*3 + 8
)

// frameLayout holds the section sizes for one frame.
type frameLayout struct {
	InnerW  int
	InnerH  int
	GridH   int
	DetailH int
	FooterH int
}

// View renders the TUI using a boxed, parent-controlled layout.
func (m Model) View() string {
	return view.Render(m.viewState())
}

func (m Model) viewState() view.ViewState {
	modal := ""
	switch m.mode {
	case ModeHelp:
		modal = m.renderHelpModal()
	case ModePrompt:
		modal = m.renderPromptModal()
	}

	return view.ViewState{
		Width:            m.width,
		Height:           m.height,
		BaseContent:      m.renderAppContent(),
		ModalContent:     modal,
		ShowModal:        modal != "",
		ModalBg:          m.styles.ModalBgColor,
		EmptyPlaceholder: "Loading...",
	}
}

func (m Model) layout() frameLayout {
	frameW, frameH := m.styles.AppStyle.GetFrameSize()
	l := frameLayout{
		InnerW: m.width - frameW,
		InnerH: m.height - frameH,
	}

	switch {
	case l.InnerH >= headerHeight+minGridHeight+3:
		l.FooterH = 3
	case l.InnerH >= headerHeight+minGridHeight+2:
		l.FooterH = 2
	default:
		l.FooterH = 1
	}

	if m.ctrl.State().Focus.Active() {
		aims := m.focusedAims()
		want := min(len(aims), maxDetailRows) + 1
		if len(aims) == 0 {
			want = 2
		}
		room := l.InnerH - headerHeight - l.FooterH - minGridHeight
		l.DetailH = max(0, min(want, room))
	}

	l.GridH = l.InnerH - headerHeight - l.DetailH - l.FooterH
	return l
}

func (m Model) renderAppContent() string {
	l := m.layout()
	if l.InnerW < minInnerWidth || l.GridH < 3 {
		return "Terminal too small"
	}

	sections := []string{
		view.RenderHeader(m.headerViewState(l)),
		view.RenderMonth(m.monthViewState(l)),
	}
	if l.DetailH > 0 {
		sections = append(sections, view.RenderDetail(m.detailViewState(l)))
	}
	sections = append(sections, view.RenderFooter(m.footerViewState(l)))

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	app := m.styles.AppStyle.Render(content)
	return view.PadLinesWithBackground(app, m.width, m.height, m.styles.colorBg)
}

func (m Model) headerViewState(l frameLayout) view.HeaderViewState {
	state := m.ctrl.State()
	return view.HeaderViewState{
		InnerW:     l.InnerW,
		Title:      view.MonthTitle(state.Cursor.Displayed().Long()),
		Meta:       "Filter: " + state.Criterion.Label(),
		TitleStyle: m.styles.TitleStyle,
		MetaStyle:  m.styles.MetaStyle,
		Bg:         m.styles.colorBg,
	}
}

func (m Model) monthViewState(l frameLayout) view.MonthTableState {
	state := m.ctrl.State()
	grid := dateutil.MonthGrid(state.Cursor.Displayed(), m.weekStart)
	idx := m.ctrl.Index()
	today := m.ctrl.Today()
	compact := state.Focus.Active()

	colW := view.ColumnWidth(l.InnerW)
	cellH := view.CellHeight(l.GridH, len(grid))

	rows := make([][]string, len(grid))
	cellStyles := make([][]lipgloss.Style, len(grid))
	for r, week := range grid {
		rows[r] = make([]string, len(week))
		cellStyles[r] = make([]lipgloss.Style, len(week))
		for c, cell := range week {
			kind := m.kindOf(cell, today)
			rows[r][c] = view.DayCell(
				cell.Key.Day,
				cellAims(idx.Lookup(cell.Key)),
				colW,
				cellH,
				compact,
				m.styles.CellAimStyles(kind),
			)
			cellStyles[r][c] = m.styles.CellStyle(kind)
		}
	}

	headerStyle := m.styles.DayHeaderStyle
	return view.MonthTableState{
		InnerW:      l.InnerW,
		GridH:       l.GridH,
		Headers:     dateutil.WeekdayHeaders(m.weekStart),
		HeaderStyle: headerStyle,
		Rows:        rows,
		CellStyles:  cellStyles,
		BorderStyle: m.styles.BorderStyle,
		Bg:          m.styles.colorBg,
	}
}

func (m Model) kindOf(cell dateutil.GridCell, today dateutil.DateKey) cellKind {
	switch {
	case m.ctrl.State().Focus.Is(cell.Key):
		return cellFocused
	case cell.Key == m.cursor:
		return cellCursor
	case cell.Key == today:
		return cellToday
	case !cell.InMonth:
		return cellOutside
	default:
		return cellNormal
	}
}

func cellAims(aims []aim.Aim) []view.CellAim {
	result := make([]view.CellAim, len(aims))
	for i, a := range aims {
		result[i] = view.CellAim{
			Label:        a.Description,
			Accomplished: a.Accomplished,
			Favorited:    a.Favorited,
		}
	}
	return result
}

func (m Model) detailViewState(l frameLayout) view.DetailState {
	aims := m.focusedAims()
	items := make([]view.DetailItem, len(aims))
	for i, a := range aims {
		items[i] = view.DetailItem{
			Description:  a.Description,
			Accomplished: a.Accomplished,
			Favorited:    a.Favorited,
		}
	}

	title := ""
	if day, ok := m.ctrl.State().Focus.Date(); ok {
		title = dayTitle(day, len(aims))
	}

	return view.DetailState{
		InnerW:   l.InnerW,
		Height:   l.DetailH,
		Title:    title,
		Items:    items,
		Selected: m.detailIdx,
		Empty:    "No aims for this day. Press a to add one.",
		Styles:   m.styles.Detail,
		Bg:       m.styles.colorBg,
	}
}

func dayTitle(day dateutil.DateKey, n int) string {
	label := day.Time(time.Local).Format("Monday, Jan 2")
	if n == 0 {
		return label
	}
	return label + " · " + plural(n, "aim")
}

func (m Model) footerViewState(l frameLayout) view.FooterViewState {
	return view.FooterViewState{
		InnerW:      l.InnerW,
		FooterH:     l.FooterH,
		StatsText:   m.statsText(),
		StatusText:  m.statusMsg,
		HelpText:    m.help.View(m.keys),
		StatsStyle:  m.styles.StatsStyle,
		StatusStyle: m.styles.StatusStyle,
		HelpStyle:   m.styles.HelpStyle,
		Bg:          m.styles.colorBg,
	}
}

// statsText summarizes the displayed month under the active filter.
func (m Model) statsText() string {
	displayed := m.ctrl.State().Cursor.Displayed()
	s := aim.Summarize(m.ctrl.Index().InMonth(displayed))
	if s.Total == 0 {
		return "No aims this month"
	}

	parts := []string{
		fmt.Sprintf("%s on %s", plural(s.Total, "aim"), plural(s.Days, "day")),
		fmt.Sprintf("%d done (%d%%)", s.Accomplished, s.AccomplishedPercent()),
	}
	if s.Favorited > 0 {
		parts = append(parts, fmt.Sprintf("%d ★", s.Favorited))
	}
	if s.BusiestCount > 1 {
		parts = append(parts, fmt.Sprintf("busiest %s (%d)", s.BusiestDay.Time(time.Local).Format("Jan 2"), s.BusiestCount))
	}
	return strings.Join(parts, " · ")
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

func (m Model) renderHelpModal() string {
	h := m.help
	h.ShowAll = true
	h.Styles = m.styles.ModalHelp
	h.Width = 0
	return view.RenderModalFrame("Keys", h.View(m.keys), "? or esc to close", m.styles.ModalFrameStyles())
}

func (m Model) renderPromptModal() string {
	title := "Add aim · " + m.cursor.Time(time.Local).Format("Mon, Jan 2")
	body := m.styles.ModalBodyStyle.Render(m.prompt.View())
	footer := m.styles.ModalHintStyle.Render("enter save · esc cancel")
	return view.RenderModalFrame(title, body, footer, m.styles.ModalFrameStyles())
}
