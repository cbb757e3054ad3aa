package service

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-forms-auth/internal/utils"
	"github.com/MKhiriev/go-forms-auth/models"
)

type memoryClaimCacheEntry struct {
	permissions []models.Permission
	expiresAt   time.Time
}

type memoryClaimCache struct {
	mu      sync.RWMutex
	entries map[string]memoryClaimCacheEntry
	ttl     time.Duration
	clock   utils.Clock
}

// NewMemoryClaimCache returns a process-local ClaimCache. Entries expire
// after ttl; a non-positive ttl disables caching.
func NewMemoryClaimCache(ttl time.Duration, clock utils.Clock) ClaimCache {
	return &memoryClaimCache{
		entries: make(map[string]memoryClaimCacheEntry),
		ttl:     ttl,
		clock:   clock,
	}
}

func (c *memoryClaimCache) Get(_ context.Context, principalID string) ([]models.Permission, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[principalID]
	if !ok || !c.clock.Now().Before(entry.expiresAt) {
		return nil, false, nil
	}

	return slices.Clone(entry.permissions), true, nil
}

func (c *memoryClaimCache) Set(_ context.Context, principalID string, permissions []models.Permission) error {
	if c.ttl <= 0 {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[principalID] = memoryClaimCacheEntry{
		permissions: slices.Clone(permissions),
		expiresAt:   c.clock.Now().Add(c.ttl),
	}

	return nil
}

func (c *memoryClaimCache) Invalidate(context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	clear(c.entries)
	return nil
}
