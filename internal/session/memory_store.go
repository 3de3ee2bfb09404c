package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type memoryEntry struct {
	userID    int
	expiresAt time.Time
}

// MemoryStore keeps sessions in a mutex-guarded map. Expired entries are
// dropped lazily on lookup and creation, so no sweeper goroutine is needed.
type MemoryStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]memoryEntry
	now      func() time.Time
}

// NewMemoryStore creates an in-memory session store with the given TTL.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:      ttl,
		sessions: make(map[string]memoryEntry),
		now:      time.Now,
	}
}

// Create issues a fresh token bound to the given user id.
func (s *MemoryStore) Create(ctx context.Context, userID int) (string, error) {
	token := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweepLocked()
	s.sessions[token] = memoryEntry{
		userID:    userID,
		expiresAt: s.now().Add(s.ttl),
	}
	return token, nil
}

// Get resolves a token to a user id, or ErrNotFound.
func (s *MemoryStore) Get(ctx context.Context, token string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.sessions[token]
	if !ok {
		return 0, ErrNotFound
	}
	if s.now().After(entry.expiresAt) {
		delete(s.sessions, token)
		return 0, ErrNotFound
	}
	return entry.userID, nil
}

// Delete invalidates a token.
func (s *MemoryStore) Delete(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, token)
	return nil
}

// Close implements Store. There is nothing to release.
func (s *MemoryStore) Close() error {
	return nil
}

// sweepLocked drops expired entries. Caller must hold the lock.
func (s *MemoryStore) sweepLocked() {
	now := s.now()
	for token, entry := range s.sessions {
		if now.After(entry.expiresAt) {
			delete(s.sessions, token)
		}
	}
}
