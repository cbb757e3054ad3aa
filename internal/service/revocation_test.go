package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-forms-auth/internal/utils"
)

func TestMemoryRevocationStore(t *testing.T) {
	clock := utils.NewFakeClock(testNow)
	revocations := NewMemoryRevocationStore(time.Hour, clock)
	ctx := context.Background()

	revoked, err := revocations.IsRevoked(ctx, "s-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, revocations.Revoke(ctx, "s-1"))
	revoked, err = revocations.IsRevoked(ctx, "s-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	clock.Advance(time.Hour)
	revoked, err = revocations.IsRevoked(ctx, "s-1")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestMemoryRevocationStore_PrunesExpired(t *testing.T) {
	clock := utils.NewFakeClock(testNow)
	revocations := NewMemoryRevocationStore(time.Minute, clock).(*memoryRevocationStore)
	ctx := context.Background()
	require.NoError(t, revocations.Revoke(ctx, "old"))

	clock.Advance(2 * time.Minute)
	require.NoError(t, revocations.Revoke(ctx, "new"))

	assert.Len(t, revocations.revoked, 1)
	assert.Contains(t, revocations.revoked, "new")
}

func TestMemoryRevocationStore_EmptySessionID(t *testing.T) {
	revocations := NewMemoryRevocationStore(time.Hour, utils.NewFakeClock(testNow))

	revoked, err := revocations.IsRevoked(context.Background(), "")

	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestRedisRevocationStore_Unreachable(t *testing.T) {
	revocations := NewRedisRevocationStore(unreachableRedis(t), time.Hour)
	ctx := context.Background()

	assert.Error(t, revocations.Revoke(ctx, "s-1"))

	revoked, err := revocations.IsRevoked(ctx, "s-1")
	assert.Error(t, err)
	assert.False(t, revoked)
}

func TestRedisRevocationStore_EmptySessionIDSkipsLookup(t *testing.T) {
	revocations := NewRedisRevocationStore(unreachableRedis(t), time.Hour)

	revoked, err := revocations.IsRevoked(context.Background(), "")

	require.NoError(t, err)
	assert.False(t, revoked)
}
