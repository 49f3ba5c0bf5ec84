package tui

import (
	"fmt"
	"sync"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/todayaim/internal/aim"
	"github.com/javiermolinar/todayaim/internal/calendar"
	"github.com/javiermolinar/todayaim/internal/config"
	"github.com/javiermolinar/todayaim/internal/dateutil"
	"github.com/javiermolinar/todayaim/internal/tui/commands"
	"github.com/javiermolinar/todayaim/internal/tui/theme"
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModePrompt      // Quick-add input is focused
	ModeHelp        // Full help modal
)

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "Normal"
	case ModePrompt:
		return "Prompt"
	case ModeHelp:
		return "Help"
	default:
		return fmt.Sprintf("Unknown(%d)", int(m))
	}
}

// Model is the main TUI model.
type Model struct {
	// Dependencies
	repo   aim.Repository
	config *config.Config

	// Theme and styles
	theme  *theme.Theme
	styles *Styles

	// Calendar state lives in the controller; the model only adds the day
	// cursor and the detail selection on top of it.
	ctrl      *calendar.Controller
	cursor    dateutil.DateKey
	detailIdx int
	mode      Mode
	loaded    bool

	// Components
	keys   keyMap
	help   help.Model
	prompt textinput.Model

	// Terminal dimensions
	width  int
	height int

	// Messages
	statusMsg  string    // Temporary status/error message
	statusTime time.Time // When to clear message

	// Injectable collaborators
	now       func() time.Time
	weekStart time.Weekday
	deferFn   commands.Deferrer
	copyFn    func(string) error
	sched     calendar.Scheduler

	// Mutations run on disp; completions come back through outbox.
	disp   *calendar.Dispatcher
	outbox *outbox

	// Error state
	err error
}

// ModelOption configures optional model behavior.
type ModelOption func(*Model)

// WithClock sets the function used to read "today".
func WithClock(now func() time.Time) ModelOption {
	return func(m *Model) {
		m.now = now
	}
}

// WithDeferrer replaces tea.Tick for status expiry.
func WithDeferrer(d commands.Deferrer) ModelOption {
	return func(m *Model) {
		m.deferFn = d
	}
}

// WithClipboard replaces the system clipboard writer.
func WithClipboard(copyFn func(string) error) ModelOption {
	return func(m *Model) {
		m.copyFn = copyFn
	}
}

// WithScheduler sets the scheduler that delays deletes.
func WithScheduler(s calendar.Scheduler) ModelOption {
	return func(m *Model) {
		m.sched = s
	}
}

// WithSender routes dispatcher completions to send instead of a program.
func WithSender(send func(tea.Msg)) ModelOption {
	return func(m *Model) {
		m.outbox.attach(send)
	}
}

// outbox forwards messages produced off the update loop. Messages sent
// before a receiver is attached are dropped.
type outbox struct {
	mu   sync.Mutex
	send func(tea.Msg)
}

func (o *outbox) attach(send func(tea.Msg)) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.send = send
}

func (o *outbox) deliver(msg tea.Msg) {
	o.mu.Lock()
	send := o.send
	o.mu.Unlock()
	if send != nil {
		send(msg)
	}
}

// New creates a new TUI model.
func New(repo aim.Repository, cfg *config.Config, opts ...ModelOption) *Model {
	if cfg == nil {
		cfg = config.Default()
	}

	// Load theme from config
	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		// Fallback to mocha on error
		t, _ = theme.Load("mocha")
	}
	styles := NewStyles(t)

	prompt := textinput.New()
	prompt.Placeholder = "What do you aim for?"
	prompt.CharLimit = aim.MaxDescriptionLength
	prompt.Width = 48
	prompt.Prompt = "› "
	prompt.PlaceholderStyle = styles.ModalPlaceholderStyle
	prompt.TextStyle = styles.ModalInputTextStyle
	prompt.PromptStyle = styles.ModalInputTextStyle
	prompt.Cursor.Style = styles.ModalInputCursorStyle
	prompt.Cursor.TextStyle = styles.ModalInputTextStyle

	h := help.New()
	h.Styles = styles.Help
	h.ShortSeparator = " · "

	m := &Model{
		repo:      repo,
		config:    cfg,
		theme:     t,
		styles:    styles,
		mode:      ModeNormal,
		keys:      newKeyMap(),
		help:      h,
		prompt:    prompt,
		now:       time.Now,
		weekStart: cfg.WeekStart(),
		deferFn:   commands.Defer,
		copyFn:    clipboard.WriteAll,
		sched:     calendar.RealScheduler{},
		outbox:    &outbox{},
	}

	for _, opt := range opts {
		opt(m)
	}

	m.ctrl = calendar.NewController(
		calendar.WithClock(m.now),
		calendar.WithCriterion(cfg.DefaultFilter()),
		calendar.WithDeleteDelay(cfg.DeleteDelay()),
		calendar.WithLogger(DebugLogger()),
	)
	m.disp = calendar.NewDispatcher(repo,
		calendar.WithScheduler(m.sched),
		calendar.WithDispatchLogger(DebugLogger()),
		calendar.OnDone(commands.Applied(m.outbox.deliver)),
	)
	m.cursor = m.ctrl.Today()

	return m
}

// Close drops deletes still waiting for their delay.
func (m Model) Close() {
	m.disp.Close()
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	if m.repo == nil {
		return nil
	}
	return commands.LoadAims(m.repo)
}

// Run starts the TUI.
func Run(repo aim.Repository, cfg *config.Config) error {
	return RunWithDebug(repo, cfg, false)
}

// RunWithDebug starts the TUI with optional debug logging.
func RunWithDebug(repo aim.Repository, cfg *config.Config, debug bool) error {
	if err := InitDebugLogger(debug); err != nil {
		return err
	}
	defer CloseDebugLogger()

	model := New(repo, cfg)
	defer model.Close()
	p := tea.NewProgram(model, tea.WithAltScreen())
	model.outbox.attach(p.Send)
	_, err := p.Run()
	return err
}

// focusedAims returns the aims of the focused day, or nil when unfocused.
func (m Model) focusedAims() []aim.Aim {
	focus := m.ctrl.State().Focus
	if !focus.Active() {
		return nil
	}
	return focus.Aims()
}

// selectedAim returns the aim under the detail cursor.
func (m Model) selectedAim() (aim.Aim, bool) {
	aims := m.focusedAims()
	if len(aims) == 0 {
		return aim.Aim{}, false
	}
	idx := max(0, min(m.detailIdx, len(aims)-1))
	return aims[idx], true
}

// clampDetail keeps the detail cursor inside the focused list.
func (m *Model) clampDetail() {
	n := len(m.focusedAims())
	if n == 0 {
		m.detailIdx = 0
		return
	}
	m.detailIdx = max(0, min(m.detailIdx, n-1))
}

// syncKeys enables the bindings matching the current focus.
func (m *Model) syncKeys() {
	m.keys.setFocused(m.ctrl.State().Focus.Active())
}

func (m *Model) setMode(to Mode, reason string) {
	LogModeChange(m.mode, to, reason)
	m.mode = to
}

func (m *Model) setStatus(msg string, ttl time.Duration) {
	m.statusMsg = msg
	m.statusTime = time.Now().Add(ttl)
}
