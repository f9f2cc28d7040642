package auth

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps sessions in a process-local map. Restarting the process
// drops every session, which is acceptable for a single-admin deployment.
// All access goes through the mutex; net/http serves each request on its own
// goroutine.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
	now      func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]Session),
		now:      time.Now,
	}
}

func (s *MemoryStore) Create(_ context.Context, username string) (string, error) {
	token, err := newToken()
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	s.sessions[token] = Session{Username: username, CreatedAt: s.now()}
	s.mu.Unlock()
	return token, nil
}

func (s *MemoryStore) Has(_ context.Context, token string) bool {
	s.mu.RLock()
	_, ok := s.sessions[token]
	s.mu.RUnlock()
	return ok
}

func (s *MemoryStore) Get(_ context.Context, token string) (*Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[token]
	s.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	return &sess, nil
}

func (s *MemoryStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
	return nil
}

// Cleanup drops sessions whose age exceeds maxAge. The comparison is strict:
// a session created exactly maxAge ago survives.
func (s *MemoryStore) Cleanup(_ context.Context, maxAge time.Duration) error {
	cutoff := s.now().Add(-maxAge)
	s.mu.Lock()
	for token, sess := range s.sessions {
		if sess.CreatedAt.Before(cutoff) {
			delete(s.sessions, token)
		}
	}
	s.mu.Unlock()
	return nil
}

// Len reports the number of live sessions.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
