package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// keyMap holds the key bindings of the calendar. It implements help.KeyMap;
// bindings that do not apply to the current focus are disabled so the help
// views hide them.
type keyMap struct {
	Left       key.Binding
	Right      key.Binding
	Up         key.Binding
	Down       key.Binding
	PrevMonth  key.Binding
	NextMonth  key.Binding
	Today      key.Binding
	Select     key.Binding
	Dismiss    key.Binding
	Filter     key.Binding
	Delete     key.Binding
	Favorite   key.Binding
	Accomplish key.Binding
	Copy       key.Binding
	Add        key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func newKeyMap() keyMap {
	k := keyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev day"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next day"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "prev week"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next week"),
		),
		PrevMonth: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "prev month"),
		),
		NextMonth: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "next month"),
		),
		Today: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "today"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "open day"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close day"),
		),
		Filter: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "filter"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Favorite: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "star"),
		),
		Accomplish: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "done"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add aim"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
	k.setFocused(false)
	return k
}

// setFocused enables the bindings that apply with or without a focused day.
func (k *keyMap) setFocused(focused bool) {
	if focused {
		k.Up.SetHelp("↑/k", "prev aim")
		k.Down.SetHelp("↓/j", "next aim")
		k.Select.SetHelp("enter", "close day")
	} else {
		k.Up.SetHelp("↑/k", "prev week")
		k.Down.SetHelp("↓/j", "next week")
		k.Select.SetHelp("enter", "open day")
	}
	k.Filter.SetEnabled(!focused)
	k.Dismiss.SetEnabled(focused)
	k.Delete.SetEnabled(focused)
	k.Favorite.SetEnabled(focused)
	k.Accomplish.SetEnabled(focused)
	k.Copy.SetEnabled(focused)
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Select, k.Accomplish, k.Favorite, k.Delete,
		k.Add, k.Filter, k.Help, k.Quit,
	}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.PrevMonth, k.NextMonth, k.Today, k.Filter},
		{k.Select, k.Dismiss, k.Add, k.Copy},
		{k.Accomplish, k.Favorite, k.Delete},
		{k.Help, k.Quit},
	}
}
