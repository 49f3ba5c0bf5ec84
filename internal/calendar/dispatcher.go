package calendar

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/javiermolinar/todayaim/internal/aim"
)

// Scheduler runs f after d. The returned stop function cancels f if it has
// not started and reports whether it did so.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) (stop func() bool)
}

// RealScheduler schedules on the wall clock.
type RealScheduler struct{}

// AfterFunc implements Scheduler using time.AfterFunc.
func (RealScheduler) AfterFunc(d time.Duration, f func()) func() bool {
	return time.AfterFunc(d, f).Stop
}

// ManualScheduler runs callbacks only when Advance moves its clock past their
// deadline.
type ManualScheduler struct {
	mu      sync.Mutex
	now     time.Duration
	seq     int
	pending []*manualTask
}

type manualTask struct {
	at  time.Duration
	seq int
	f   func()
}

// AfterFunc implements Scheduler.
func (s *ManualScheduler) AfterFunc(d time.Duration, f func()) func() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	task := &manualTask{at: s.now + d, seq: s.seq, f: f}
	s.pending = append(s.pending, task)
	return func() bool {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, p := range s.pending {
			if p == task {
				s.pending = append(s.pending[:i], s.pending[i+1:]...)
				return true
			}
		}
		return false
	}
}

// Advance moves the clock forward by d and runs every callback now due, in
// deadline order.
func (s *ManualScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	s.now += d
	var due, rest []*manualTask
	for _, p := range s.pending {
		if p.at <= s.now {
			due = append(due, p)
		} else {
			rest = append(rest, p)
		}
	}
	s.pending = rest
	s.mu.Unlock()

	sort.Slice(due, func(i, j int) bool {
		if due[i].at != due[j].at {
			return due[i].at < due[j].at
		}
		return due[i].seq < due[j].seq
	})
	for _, p := range due {
		p.f()
	}
}

// Pending returns the number of callbacks not yet run.
func (s *ManualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Dispatcher executes effects against a repository. Commands are fire and
// forget: failures are logged and dropped, never retried.
type Dispatcher struct {
	repo  aim.Repository
	sched Scheduler
	log   *slog.Logger

	mu      sync.Mutex
	nextID  int
	pending map[int]func() bool
	done    func(aim.Command, error)
}

// DispatcherOption configures a Dispatcher.
type DispatcherOption func(*Dispatcher)

// WithScheduler sets the scheduler used for delayed effects.
func WithScheduler(s Scheduler) DispatcherOption {
	return func(d *Dispatcher) {
		d.sched = s
	}
}

// WithDispatchLogger sets the logger for command outcomes.
func WithDispatchLogger(l *slog.Logger) DispatcherOption {
	return func(d *Dispatcher) {
		d.log = l
	}
}

// OnDone registers a callback run after every executed command, for change
// notification.
func OnDone(f func(aim.Command, error)) DispatcherOption {
	return func(d *Dispatcher) {
		d.done = f
	}
}

// NewDispatcher creates a Dispatcher for repo.
func NewDispatcher(repo aim.Repository, opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		repo:    repo,
		sched:   RealScheduler{},
		log:     slog.New(slog.DiscardHandler),
		pending: make(map[int]func() bool),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Dispatch executes e, immediately or after its delay.
func (d *Dispatcher) Dispatch(e Effect) {
	if e.Delay <= 0 {
		d.execute(e.Command)
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.nextID++
	id := d.nextID
	d.pending[id] = d.sched.AfterFunc(e.Delay, func() {
		d.mu.Lock()
		delete(d.pending, id)
		d.mu.Unlock()
		d.execute(e.Command)
	})
}

func (d *Dispatcher) execute(cmd aim.Command) {
	err := d.repo.Apply(context.Background(), cmd)
	if err != nil {
		d.log.Error("ERROR", "context", "apply "+cmd.String(), "error", err.Error())
	} else if cmd.Op == aim.OpDelete {
		d.log.Debug("DELETE_COMMIT", "id", cmd.ID)
	}
	if d.done != nil {
		d.done(cmd, err)
	}
}

// Pending returns the number of delayed commands not yet executed.
func (d *Dispatcher) Pending() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.pending)
}

// Close drops every delayed command that has not run yet.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	for id, stop := range d.pending {
		stop()
		delete(d.pending, id)
	}
}
