// Package sessions keeps one filter selection per client, keyed by an opaque id.
package sessions

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/preston-bernstein/roster-filter-service/internal/filter"
	"github.com/preston-bernstein/roster-filter-service/internal/logging"
	"github.com/preston-bernstein/roster-filter-service/internal/metrics"
)

// DefaultTTL is how long an untouched session survives.
const DefaultTTL = 30 * time.Minute

// ErrNotFound is returned for unknown or expired session ids.
var ErrNotFound = errors.New("session not found")

// Session is a snapshot of one client's filter selection.
type Session struct {
	ID        string       `json:"id"`
	State     filter.State `json:"state"`
	CreatedAt time.Time    `json:"createdAt"`
	LastSeen  time.Time    `json:"lastSeen"`
}

// Manager owns every live session. All methods are safe for concurrent use.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
	defaults func() filter.State
	ttl      time.Duration
	now      func() time.Time
	newID    func() string
	metrics  *metrics.Recorder
	logger   *slog.Logger
}

// NewManager constructs a Manager. defaults builds the state of new and reset sessions.
func NewManager(defaults func() filter.State, ttl time.Duration, recorder *metrics.Recorder, logger *slog.Logger) *Manager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Manager{
		sessions: make(map[string]*Session),
		defaults: defaults,
		ttl:      ttl,
		now:      time.Now,
		newID:    uuid.NewString,
		metrics:  recorder,
		logger:   logger,
	}
}

// Create starts a session with the default selection.
func (m *Manager) Create() Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	s := &Session{
		ID:        m.newID(),
		State:     m.defaults(),
		CreatedAt: now,
		LastSeen:  now,
	}
	m.sessions[s.ID] = s
	m.metrics.SessionOpened()
	logging.Info(m.logger, "session created", logging.FieldSession, s.ID)
	return s.snapshot()
}

// Get returns the session and refreshes its idle timer.
func (m *Manager) Get(id string) (Session, error) {
	return m.update(id, func(*Session) {})
}

// Toggle flips membership of value in one set dimension.
func (m *Manager) Toggle(id string, dim filter.SetDimension, value string) (Session, error) {
	return m.update(id, func(s *Session) {
		s.State.Toggle(dim, value)
	})
}

// SetRange updates the given bounds of one range dimension; nil bounds are kept.
func (m *Manager) SetRange(id string, dim filter.RangeDimension, min, max *int) (Session, error) {
	return m.update(id, func(s *Session) {
		s.State.SetRange(dim, min, max)
	})
}

// Reset restores the default selection.
func (m *Manager) Reset(id string) (Session, error) {
	return m.update(id, func(s *Session) {
		s.State = m.defaults()
	})
}

// Delete ends a session.
func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[id]; !ok {
		return ErrNotFound
	}
	delete(m.sessions, id)
	m.metrics.SessionClosed()
	return nil
}

// Prune drops sessions idle for longer than the TTL and returns how many were removed.
func (m *Manager) Prune(now time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for id, s := range m.sessions {
		if now.Sub(s.LastSeen) > m.ttl {
			delete(m.sessions, id)
			m.metrics.SessionClosed()
			removed++
		}
	}
	if removed > 0 {
		logging.Info(m.logger, "sessions pruned", logging.FieldCount, removed)
	}
	return removed
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

func (m *Manager) update(id string, mutate func(*Session)) (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return Session{}, ErrNotFound
	}
	now := m.now()
	if now.Sub(s.LastSeen) > m.ttl {
		delete(m.sessions, id)
		m.metrics.SessionClosed()
		return Session{}, ErrNotFound
	}
	mutate(s)
	s.LastSeen = now
	return s.snapshot(), nil
}

func (s *Session) snapshot() Session {
	cp := *s
	cp.State = s.State.Clone()
	return cp
}
