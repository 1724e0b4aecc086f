package navstate

import (
	"context"
	"sync"
	"time"

	"github.com/oluyale/portfolio/internal/pages"
)

// State is the per-session navigation position.
type State struct {
	Page      pages.ID
	MenuOpen  bool
	UpdatedAt time.Time
}

// New returns the state of a freshly started session.
func New() State {
	return State{Page: pages.Default}
}

// Navigate moves the session to id and closes the hamburger menu.
// Unknown ids are replaced by the default page.
func Navigate(s State, id pages.ID) State {
	if !id.Valid() {
		id = pages.Default
	}
	s.Page = id
	s.MenuOpen = false
	return s
}

// ToggleMenu flips the hamburger menu.
func ToggleMenu(s State) State {
	s.MenuOpen = !s.MenuOpen
	return s
}

// Store persists navigation state keyed by session id. Load of an unknown
// session returns New() and no error.
type Store interface {
	Load(ctx context.Context, sessionID string) (State, error)
	Save(ctx context.Context, sessionID string, s State) error
	Delete(ctx context.Context, sessionID string) error
	Prune(ctx context.Context, olderThan time.Time) (int64, error)
}

// MemoryStore keeps state in process memory.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]State
	now      func() time.Time
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]State),
		now:      time.Now,
	}
}

func (m *MemoryStore) Load(_ context.Context, sessionID string) (State, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[sessionID]
	if !ok {
		return New(), nil
	}
	return s, nil
}

func (m *MemoryStore) Save(_ context.Context, sessionID string, s State) error {
	if !s.Page.Valid() {
		s.Page = pages.Default
	}
	s.UpdatedAt = m.now()
	m.mu.Lock()
	m.sessions[sessionID] = s
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, sessionID string) error {
	m.mu.Lock()
	delete(m.sessions, sessionID)
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Prune(_ context.Context, olderThan time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for id, s := range m.sessions {
		if s.UpdatedAt.Before(olderThan) {
			delete(m.sessions, id)
			n++
		}
	}
	return n, nil
}
