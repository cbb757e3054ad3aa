package service

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const revokedSessionKeyPrefix = "forms-auth:revoked:"

type redisRevocationStore struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewRedisRevocationStore shares revoked session ids between server
// instances. Keys expire after ttl.
func NewRedisRevocationStore(client redis.Cmdable, ttl time.Duration) RevocationStore {
	return &redisRevocationStore{
		client: client,
		ttl:    ttl,
	}
}

func (s *redisRevocationStore) Revoke(ctx context.Context, sessionID string) error {
	if err := s.client.Set(ctx, revokedSessionKeyPrefix+sessionID, 1, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set revoked session: %w", err)
	}
	return nil
}

func (s *redisRevocationStore) IsRevoked(ctx context.Context, sessionID string) (bool, error) {
	if sessionID == "" {
		return false, nil
	}

	n, err := s.client.Exists(ctx, revokedSessionKeyPrefix+sessionID).Result()
	if err != nil {
		return false, fmt.Errorf("redis exists revoked session: %w", err)
	}

	return n > 0, nil
}
