package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/todayaim/internal/tui/commands"
)

const (
	statusTTL = 3 * time.Second
	errorTTL  = 5 * time.Second
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		updated, cmd := m.handleKeyMsg(msg)
		updated.clampDetail()
		updated.syncKeys()
		return updated, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = max(0, msg.Width-4)
		return m, nil

	case commands.AimsLoadedMsg:
		m.ctrl.Refresh(msg.Aims)
		m.loaded = true
		m.clampDetail()
		m.syncKeys()
		return m, nil

	case commands.AppliedMsg:
		// The dispatcher already logged any failure; the reload shows
		// whatever the store holds.
		if m.repo == nil {
			return m, nil
		}
		return m, commands.LoadAims(m.repo)

	case commands.AimCreatedMsg:
		day := msg.Aim.Day(m.now())
		cmds := []tea.Cmd{m.status(fmt.Sprintf("Added aim for %s", day), statusTTL)}
		if m.repo != nil {
			cmds = append(cmds, commands.LoadAims(m.repo))
		}
		return m, tea.Batch(cmds...)

	case commands.ErrMsg:
		m.err = msg.Err
		LogError("command", msg.Err)
		return m, m.status(fmt.Sprintf("Error: %v", msg.Err), errorTTL)

	case commands.StatusMsgCmd:
		return m, m.status(msg.Msg, statusTTL)

	case commands.ClearStatusMsg:
		if !time.Now().Before(m.statusTime) {
			m.statusMsg = ""
		}
		return m, nil
	}

	// Cursor blink and other component messages
	if m.mode == ModePrompt {
		var cmd tea.Cmd
		m.prompt, cmd = m.prompt.Update(msg)
		return m, cmd
	}

	return m, nil
}

// status sets a temporary message and schedules its removal.
func (m *Model) status(msg string, ttl time.Duration) tea.Cmd {
	m.setStatus(msg, ttl)
	return m.deferFn(ttl, commands.ClearStatusMsg{})
}
