package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/todayaim/internal/aim"
	"github.com/javiermolinar/todayaim/internal/calendar"
	"github.com/javiermolinar/todayaim/internal/dateutil"
	"github.com/javiermolinar/todayaim/internal/tui/commands"
)

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (Model, tea.Cmd) {
	LogKeyPress(msg)

	// Global keys (work in all modes)
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.mode {
	case ModePrompt:
		return m.handlePromptKeys(msg)
	case ModeHelp:
		return m.handleHelpKeys(msg)
	default:
		return m.handleNormalKeys(msg)
	}
}

// handleNormalKeys handles keys on the calendar.
func (m Model) handleNormalKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	focused := m.ctrl.State().Focus.Active()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.setMode(ModeHelp, "help")

	// Navigation
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Up):
		if focused {
			m.detailIdx--
		} else {
			m.moveCursor(-7)
		}
	case key.Matches(msg, m.keys.Down):
		if focused {
			m.detailIdx++
		} else {
			m.moveCursor(7)
		}
	case key.Matches(msg, m.keys.PrevMonth):
		m.shiftMonth(calendar.Previous)
	case key.Matches(msg, m.keys.NextMonth):
		m.shiftMonth(calendar.Next)
	case key.Matches(msg, m.keys.Today):
		m.ctrl.JumpToToday()
		m.cursor = m.ctrl.Today()
		LogCursorMove(m.cursor, "today")
		m.refocus()

	// Focus
	case key.Matches(msg, m.keys.Select):
		m.ctrl.SelectDay(m.cursor)
		m.detailIdx = 0
	case key.Matches(msg, m.keys.Dismiss):
		m.ctrl.Dismiss()

	case key.Matches(msg, m.keys.Filter):
		next := m.ctrl.State().Criterion.Next()
		m.ctrl.SetCriterion(next)
		return m, m.status("Filter: "+next.Label(), statusTTL)

	// Detail strip actions
	case key.Matches(msg, m.keys.Delete):
		return m.requestDelete()
	case key.Matches(msg, m.keys.Favorite):
		return m.toggleFavorite()
	case key.Matches(msg, m.keys.Accomplish):
		return m.toggleAccomplished()
	case key.Matches(msg, m.keys.Copy):
		return m.copyDay()

	case key.Matches(msg, m.keys.Add):
		m.setMode(ModePrompt, "add")
		m.prompt.Reset()
		return m, m.prompt.Focus()
	}

	return m, nil
}

// handleHelpKeys closes the help modal.
func (m Model) handleHelpKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "?", "esc", "q", "enter":
		m.setMode(ModeNormal, "help closed")
	}
	return m, nil
}

// handlePromptKeys handles the quick-add input.
func (m Model) handlePromptKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.prompt.Blur()
		m.prompt.Reset()
		m.setMode(ModeNormal, "add cancelled")
		return m, nil
	case "enter":
		return m.submitPrompt()
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

// submitPrompt creates an aim on the cursor day.
func (m Model) submitPrompt() (Model, tea.Cmd) {
	offset := dateutil.DaysBetween(m.ctrl.Today(), m.cursor)
	a, err := aim.New(m.prompt.Value(), offset)
	if err != nil {
		return m, m.status(fmt.Sprintf("Cannot add aim: %v", err), errorTTL)
	}

	m.prompt.Blur()
	m.prompt.Reset()
	m.setMode(ModeNormal, "add submitted")
	if m.repo == nil {
		return m, nil
	}
	return m, commands.CreateAim(m.repo, *a)
}

// moveCursor moves the day cursor, following it across months. A focused
// day follows the cursor.
func (m *Model) moveCursor(days int) {
	m.cursor = m.cursor.AddDays(days)
	m.followCursor()
	LogCursorMove(m.cursor, "move")
	m.refocus()
}

// refocus moves an active focus onto the cursor day.
func (m *Model) refocus() {
	if m.ctrl.State().Focus.Active() && !m.ctrl.State().Focus.Is(m.cursor) {
		m.ctrl.SelectDay(m.cursor)
		m.detailIdx = 0
	}
}

// followCursor advances the displayed month until it contains the cursor.
func (m *Model) followCursor() {
	for {
		displayed := m.ctrl.State().Cursor.Displayed()
		if displayed.Contains(m.cursor) {
			return
		}
		if m.cursor.Before(displayed.First()) {
			m.ctrl.AdvanceMonth(calendar.Previous)
		} else {
			m.ctrl.AdvanceMonth(calendar.Next)
		}
	}
}

// shiftMonth moves the displayed month and keeps the cursor on the same day
// of month, clamped to the month length. A focused day follows the cursor.
func (m *Model) shiftMonth(dir calendar.Direction) {
	m.ctrl.AdvanceMonth(dir)
	ym := m.ctrl.State().Cursor.Displayed()
	m.cursor = dateutil.DateKey{Year: ym.Year, Month: ym.Month, Day: min(m.cursor.Day, ym.Days())}
	LogCursorMove(m.cursor, "month")
	m.refocus()
}

func (m Model) requestDelete() (Model, tea.Cmd) {
	a, ok := m.selectedAim()
	if !ok {
		return m, nil
	}
	effect, err := m.ctrl.RequestDelete(a)
	if err != nil {
		return m, m.status(err.Error(), statusTTL)
	}
	m.detailIdx = 0
	return m, tea.Batch(
		m.status(fmt.Sprintf("Deleted %q", a.Description), statusTTL),
		m.runEffect(effect),
	)
}

func (m Model) toggleFavorite() (Model, tea.Cmd) {
	a, ok := m.selectedAim()
	if !ok {
		return m, nil
	}
	effect, err := m.ctrl.ToggleFavorite(a)
	if errors.Is(err, calendar.ErrNotAccomplished) {
		return m, m.status("Only accomplished aims can be starred", statusTTL)
	}
	if err != nil {
		return m, m.status(err.Error(), statusTTL)
	}
	return m, m.runEffect(effect)
}

func (m Model) toggleAccomplished() (Model, tea.Cmd) {
	a, ok := m.selectedAim()
	if !ok {
		return m, nil
	}
	effect, err := m.ctrl.ToggleAccomplished(a)
	if err != nil {
		return m, m.status(err.Error(), statusTTL)
	}
	return m, m.runEffect(effect)
}

// copyDay copies the focused day's aims as a plain checklist.
func (m Model) copyDay() (Model, tea.Cmd) {
	aims := m.focusedAims()
	if len(aims) == 0 {
		return m, m.status("Nothing to copy", statusTTL)
	}
	if err := m.copyFn(checklist(aims)); err != nil {
		LogError("clipboard", err)
		return m, m.status(fmt.Sprintf("Copy failed: %v", err), errorTTL)
	}
	return m, m.status(fmt.Sprintf("Copied %d aims", len(aims)), statusTTL)
}

func checklist(aims []aim.Aim) string {
	var b strings.Builder
	for _, a := range aims {
		if a.Accomplished {
			b.WriteString("- [x] ")
		} else {
			b.WriteString("- [ ] ")
		}
		b.WriteString(a.Description)
		b.WriteString("\n")
	}
	return b.String()
}

// runEffect hands a controller effect to the dispatcher.
func (m Model) runEffect(e calendar.Effect) tea.Cmd {
	if m.repo == nil {
		return nil
	}
	return commands.Dispatch(m.disp, e)
}
