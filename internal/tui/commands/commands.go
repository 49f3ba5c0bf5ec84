// Package commands provides TUI command constructors and message types.
package commands

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/todayaim/internal/aim"
	"github.com/javiermolinar/todayaim/internal/calendar"
)

// AimsLoadedMsg is sent when the aim collection is (re)loaded.
type AimsLoadedMsg struct {
	Aims []aim.Aim
}

// AppliedMsg is sent after a mutation command ran against the repository.
// Err is set when the command failed; the caller reloads either way.
type AppliedMsg struct {
	Command aim.Command
	Err     error
}

// AimCreatedMsg is sent when a new aim is stored.
type AimCreatedMsg struct {
	Aim aim.Aim
}

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// StatusMsgCmd is sent for temporary status messages.
type StatusMsgCmd struct {
	Msg string
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// Deferrer delivers msg after d. Tests swap it for an immediate or
// recording implementation.
type Deferrer func(d time.Duration, msg tea.Msg) tea.Cmd

// Defer delivers msg after d using tea.Tick.
func Defer(d time.Duration, msg tea.Msg) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return msg
	})
}

// LoadAims loads every stored aim.
func LoadAims(repo aim.Repository) tea.Cmd {
	return func() tea.Msg {
		aims, err := repo.ListAims(context.Background())
		if err != nil {
			return ErrMsg{Err: fmt.Errorf("loading aims: %w", err)}
		}
		return AimsLoadedMsg{Aims: aims}
	}
}

// Dispatch hands an effect to d. Completion arrives later as an AppliedMsg
// through the dispatcher's OnDone hook, see Applied.
func Dispatch(d *calendar.Dispatcher, e calendar.Effect) tea.Cmd {
	return func() tea.Msg {
		d.Dispatch(e)
		return nil
	}
}

// Applied adapts send into a dispatcher OnDone hook.
func Applied(send func(tea.Msg)) func(aim.Command, error) {
	return func(cmd aim.Command, err error) {
		send(AppliedMsg{Command: cmd, Err: err})
	}
}

// CreateAim stores a new aim.
func CreateAim(repo aim.Repository, a aim.Aim) tea.Cmd {
	return func() tea.Msg {
		if err := repo.CreateAim(context.Background(), &a); err != nil {
			return ErrMsg{Err: fmt.Errorf("creating aim: %w", err)}
		}
		return AimCreatedMsg{Aim: a}
	}
}

// Status shows a temporary status message.
func Status(msg string) tea.Cmd {
	return func() tea.Msg {
		return StatusMsgCmd{Msg: msg}
	}
}
