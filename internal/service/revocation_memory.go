package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-forms-auth/internal/utils"
)

type memoryRevocationStore struct {
	mu      sync.Mutex
	revoked map[string]time.Time
	ttl     time.Duration
	clock   utils.Clock
}

// NewMemoryRevocationStore keeps revoked session ids in process memory for
// ttl. Expired ids are pruned on the next Revoke.
func NewMemoryRevocationStore(ttl time.Duration, clock utils.Clock) RevocationStore {
	return &memoryRevocationStore{
		revoked: make(map[string]time.Time),
		ttl:     ttl,
		clock:   clock,
	}
}

func (s *memoryRevocationStore) Revoke(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	for id, until := range s.revoked {
		if !now.Before(until) {
			delete(s.revoked, id)
		}
	}

	s.revoked[sessionID] = now.Add(s.ttl)
	return nil
}

func (s *memoryRevocationStore) IsRevoked(_ context.Context, sessionID string) (bool, error) {
	if sessionID == "" {
		return false, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	until, ok := s.revoked[sessionID]
	return ok && s.clock.Now().Before(until), nil
}
