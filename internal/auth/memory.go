package auth

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nmehta/auth-sessions-api/internal/models"
)

// MemorySessionStore keeps sessions in a process-local map. Sessions do not
// survive a restart, so it is only suitable for development and tests; use
// the Redis store in production.
type MemorySessionStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]models.Session
}

func NewMemorySessionStore(ttl time.Duration) *MemorySessionStore {
	return &MemorySessionStore{
		ttl:      ttl,
		sessions: make(map[string]models.Session),
	}
}

func (s *MemorySessionStore) Create(_ context.Context, user models.User) (*models.Session, error) {
	now := time.Now()
	sess := models.Session{
		ID:        uuid.New().String(),
		User:      user,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	return &sess, nil
}

func (s *MemorySessionStore) Load(_ context.Context, sessionID string) (*models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, nil
	}
	if sess.Expired(time.Now()) {
		delete(s.sessions, sessionID)
		return nil, nil
	}
	return &sess, nil
}

func (s *MemorySessionStore) Destroy(_ context.Context, sessionID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[sessionID]; !ok {
		return false, nil
	}
	delete(s.sessions, sessionID)
	return true, nil
}
