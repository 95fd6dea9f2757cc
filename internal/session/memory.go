package session

import (
	"context"
	"sync"

	"github.com/carelink/portal-gateway/internal/domain"
)

// MemoryStore keeps sessions in process memory. Used in tests and dev; state
// does not survive a restart.
type MemoryStore struct {
	mu   sync.RWMutex
	byID map[string]Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byID: make(map[string]Session),
	}
}

func (s *MemoryStore) Load(ctx context.Context, sid string) (Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.byID[sid]
	if !ok || !sess.Authenticated() {
		return Session{}, nil
	}
	return sess, nil
}

func (s *MemoryStore) Save(ctx context.Context, sid string, identity domain.Identity, token string) error {
	if sid == "" {
		return domain.ErrMissingField("sid")
	}
	if token == "" || identity.ID == "" {
		return domain.ErrInvalidField("session", "identity and token are both required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.byID[sid] = Session{Identity: identity, Token: token}
	return nil
}

func (s *MemoryStore) Clear(ctx context.Context, sid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.byID, sid)
	return nil
}
