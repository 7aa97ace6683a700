package session

import (
	"sync"
)

// Store is the in-memory session map, keyed by user ID.
//
// Reads and writes for different users never block each other beyond
// the map lock itself. Callers that read-modify-write a session while
// talking to an external service must hold the per-user lock (see
// Lock) for the whole cycle, otherwise two concurrent events for the
// same user can drop each other's history updates.
type Store struct {
	cfg Config

	mu       sync.RWMutex
	sessions map[string]Session

	locksMu sync.Mutex
	locks   map[string]*sync.Mutex
}

// NewStore creates an empty store.
func NewStore(cfg Config) *Store {
	return &Store{
		cfg:      cfg,
		sessions: make(map[string]Session),
		locks:    make(map[string]*sync.Mutex),
	}
}

// Lock acquires the per-user lock and returns its unlock function.
// Usage: defer store.Lock(userID)()
func (s *Store) Lock(userID string) func() {
	s.locksMu.Lock()
	l, ok := s.locks[userID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[userID] = l
	}
	s.locksMu.Unlock()

	l.Lock()
	return l.Unlock
}

// Get returns the user's session, or the default session if the user
// has none. Reading never creates an entry.
func (s *Store) Get(userID string) Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[userID]
	if !ok {
		return New()
	}
	return sess.clone()
}

// Set upserts the user's session, clamping history buffers to their
// configured bounds first.
func (s *Store) Set(userID string, sess Session) {
	sess.Clamp(s.cfg)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[userID] = sess.clone()
}

// Reset replaces the user's session with the default one (normal
// mode, histories cleared).
func (s *Store) Reset(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[userID] = New()
}

// Len returns the number of tracked sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
