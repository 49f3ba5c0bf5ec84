package db

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/javiermolinar/todayaim/internal/aim"
)

// Memory implements aim.Repository in process. It is safe for concurrent use.
type Memory struct {
	mu     sync.Mutex
	nextID int64
	aims   []aim.Aim
}

// NewMemory creates an empty in-memory repository.
func NewMemory() *Memory {
	return &Memory{}
}

// CreateAim adds a new aim and sets its ID.
func (m *Memory) CreateAim(_ context.Context, a *aim.Aim) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}
	m.nextID++
	a.ID = m.nextID
	m.aims = append(m.aims, *a)
	return nil
}

// GetAim retrieves an aim by ID.
func (m *Memory) GetAim(_ context.Context, id int64) (*aim.Aim, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if i := m.find(id); i >= 0 {
		a := m.aims[i]
		return &a, nil
	}
	return nil, nil
}

// ListAims returns every aim in creation order.
func (m *Memory) ListAims(_ context.Context) ([]aim.Aim, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	result := make([]aim.Aim, len(m.aims))
	copy(result, m.aims)
	return result, nil
}

// Apply executes a mutation command.
func (m *Memory) Apply(_ context.Context, cmd aim.Command) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.find(cmd.ID)
	if i < 0 {
		return fmt.Errorf("%w: %d", aim.ErrAimNotFound, cmd.ID)
	}
	if cmd.Op == aim.OpDelete {
		m.aims = append(m.aims[:i], m.aims[i+1:]...)
		return nil
	}
	return cmd.Apply(&m.aims[i])
}

// Close is a no-op.
func (m *Memory) Close() error {
	return nil
}

func (m *Memory) find(id int64) int {
	for i := range m.aims {
		if m.aims[i].ID == id {
			return i
		}
	}
	return -1
}
