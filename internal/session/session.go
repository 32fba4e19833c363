// Package session keeps live games in memory, keyed by opaque session IDs.
package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/monistowl/enoch/internal/game"
)

// ErrNotFound is returned when no session exists under the requested ID.
var ErrNotFound = errors.New("session not found")

// Session is one live game plus bookkeeping timestamps.
type Session struct {
	ID        string
	Game      *game.Game
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Manager is a concurrency-safe session registry.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewManager returns an empty registry.
func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*Session)}
}

// Create registers a game under a fresh ID.
func (m *Manager) Create(g *game.Game) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	s := &Session{
		ID:        uuid.NewString(),
		Game:      g,
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.sessions[s.ID] = s
	return s
}

// Get looks a session up by ID.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return s, nil
}

// Touch bumps the session's update timestamp after a move.
func (m *Manager) Touch(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return ErrNotFound
	}
	s.UpdatedAt = time.Now()
	return nil
}

// Remove drops the session. Removing an unknown ID is a no-op.
func (m *Manager) Remove(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}

// List returns the registered sessions in unspecified order.
func (m *Manager) List() []*Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		out = append(out, s)
	}
	return out
}
