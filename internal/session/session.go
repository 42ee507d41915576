// Package session provides the login-session capability: opaque tokens mapped
// to user ids, with expiry. It is deliberately separate from entity storage —
// the HTTP layer is the only component that interprets its contents.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store is the session capability interface.
type Store interface {
	// Create opens a session for the user and returns its opaque token.
	Create(userID int64) string
	// Get resolves a token to a user id. ok is false for unknown or
	// expired tokens.
	Get(token string) (userID int64, ok bool)
	// Destroy removes a session. Unknown tokens are a no-op.
	Destroy(token string)
	// Close stops background maintenance.
	Close()
}

type entry struct {
	userID    int64
	expiresAt time.Time
}

// MemoryStore keeps sessions in process memory. Expired entries are swept by
// a background goroutine; Get also checks expiry so a stale entry is never
// served between sweeps.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]entry
	ttl      time.Duration
	done     chan struct{}
	once     sync.Once
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore builds a store whose sessions live for ttl. sweepEvery
// controls the prune interval; the service default is once per day.
func NewMemoryStore(ttl, sweepEvery time.Duration) *MemoryStore {
	s := &MemoryStore{
		sessions: make(map[string]entry),
		ttl:      ttl,
		done:     make(chan struct{}),
	}
	go s.sweep(sweepEvery)
	return s
}

// Create opens a session and returns its token.
func (s *MemoryStore) Create(userID int64) string {
	token := uuid.NewString()
	s.mu.Lock()
	s.sessions[token] = entry{userID: userID, expiresAt: time.Now().Add(s.ttl)}
	s.mu.Unlock()
	return token
}

// Get resolves a token, treating expired entries as absent.
func (s *MemoryStore) Get(token string) (int64, bool) {
	s.mu.RLock()
	e, ok := s.sessions[token]
	s.mu.RUnlock()
	if !ok || time.Now().After(e.expiresAt) {
		return 0, false
	}
	return e.userID, true
}

// Destroy removes a session.
func (s *MemoryStore) Destroy(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}

// Close stops the sweeper. Safe to call more than once.
func (s *MemoryStore) Close() {
	s.once.Do(func() { close(s.done) })
}

func (s *MemoryStore) sweep(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			now := time.Now()
			s.mu.Lock()
			for token, e := range s.sessions {
				if now.After(e.expiresAt) {
					delete(s.sessions, token)
				}
			}
			s.mu.Unlock()
		case <-s.done:
			return
		}
	}
}
