package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/go-forms-auth/models"
)

const (
	claimCacheGenerationKey = "forms-auth:claims:generation"
	claimCacheKeyPrefix     = "forms-auth:claims:"
)

type redisClaimCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewRedisClaimCache returns a ClaimCache shared by every server instance
// using the same Redis. Entries are namespaced by a generation counter;
// Invalidate bumps it, so stale entries are never read and expire by ttl.
func NewRedisClaimCache(client redis.Cmdable, ttl time.Duration) ClaimCache {
	return &redisClaimCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *redisClaimCache) Get(ctx context.Context, principalID string) ([]models.Permission, bool, error) {
	key, err := c.key(ctx, principalID)
	if err != nil {
		return nil, false, err
	}

	raw, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get %s: %w", key, err)
	}

	var permissions []models.Permission
	if err = json.Unmarshal(raw, &permissions); err != nil {
		return nil, false, fmt.Errorf("decode cached permissions: %w", err)
	}

	return permissions, true, nil
}

func (c *redisClaimCache) Set(ctx context.Context, principalID string, permissions []models.Permission) error {
	if c.ttl <= 0 {
		return nil
	}

	key, err := c.key(ctx, principalID)
	if err != nil {
		return err
	}

	raw, err := json.Marshal(permissions)
	if err != nil {
		return fmt.Errorf("encode permissions: %w", err)
	}

	if err = c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}

	return nil
}

func (c *redisClaimCache) Invalidate(ctx context.Context) error {
	if err := c.client.Incr(ctx, claimCacheGenerationKey).Err(); err != nil {
		return fmt.Errorf("redis incr %s: %w", claimCacheGenerationKey, err)
	}
	return nil
}

func (c *redisClaimCache) key(ctx context.Context, principalID string) (string, error) {
	generation, err := c.client.Get(ctx, claimCacheGenerationKey).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return "", fmt.Errorf("redis get %s: %w", claimCacheGenerationKey, err)
	}

	return fmt.Sprintf("%s%d:%s", claimCacheKeyPrefix, generation, principalID), nil
}
