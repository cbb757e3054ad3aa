package service

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-forms-auth/internal/logger"
	"github.com/MKhiriev/go-forms-auth/internal/utils"
	"github.com/MKhiriev/go-forms-auth/models"
)

// ── memory ────────────────────────────────────────────────────────────────────

func TestMemoryClaimCache_SetGet(t *testing.T) {
	cache := NewMemoryClaimCache(time.Minute, utils.NewFakeClock(testNow))
	ctx := context.Background()
	permissions := []models.Permission{{Claim: models.UnlockUserClaim, IsAuthorized: true}}

	_, ok, err := cache.Get(ctx, "p-1")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, cache.Set(ctx, "p-1", permissions))
	got, ok, err := cache.Get(ctx, "p-1")

	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, permissions, got)
}

func TestMemoryClaimCache_Expires(t *testing.T) {
	clock := utils.NewFakeClock(testNow)
	cache := NewMemoryClaimCache(time.Minute, clock)
	ctx := context.Background()
	require.NoError(t, cache.Set(ctx, "p-1", nil))

	clock.Advance(time.Minute)
	_, ok, err := cache.Get(ctx, "p-1")

	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryClaimCache_Invalidate(t *testing.T) {
	cache := NewMemoryClaimCache(time.Minute, utils.NewFakeClock(testNow))
	ctx := context.Background()
	require.NoError(t, cache.Set(ctx, "p-1", nil))
	require.NoError(t, cache.Set(ctx, "p-2", nil))

	require.NoError(t, cache.Invalidate(ctx))

	for _, id := range []string{"p-1", "p-2"} {
		_, ok, err := cache.Get(ctx, id)
		require.NoError(t, err)
		assert.False(t, ok)
	}
}

func TestMemoryClaimCache_ZeroTTLDisablesCaching(t *testing.T) {
	cache := NewMemoryClaimCache(0, utils.NewFakeClock(testNow))
	ctx := context.Background()
	require.NoError(t, cache.Set(ctx, "p-1", nil))

	_, ok, err := cache.Get(ctx, "p-1")

	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryClaimCache_ReturnsCopy(t *testing.T) {
	cache := NewMemoryClaimCache(time.Minute, utils.NewFakeClock(testNow))
	ctx := context.Background()
	permissions := []models.Permission{{Claim: models.UnlockUserClaim, IsAuthorized: true}}
	require.NoError(t, cache.Set(ctx, "p-1", permissions))

	got, _, _ := cache.Get(ctx, "p-1")
	got[0].IsAuthorized = false

	again, _, _ := cache.Get(ctx, "p-1")
	assert.True(t, again[0].IsAuthorized)
}

// ── redis ─────────────────────────────────────────────────────────────────────

// unreachableRedis returns a client pointing at a closed port.
func unreachableRedis(t *testing.T) *redis.Client {
	t.Helper()

	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestRedisClaimCache_UnreachableReturnsErrors(t *testing.T) {
	cache := NewRedisClaimCache(unreachableRedis(t), time.Minute)
	ctx := context.Background()

	_, ok, err := cache.Get(ctx, "p-1")
	assert.Error(t, err)
	assert.False(t, ok)

	assert.Error(t, cache.Set(ctx, "p-1", nil))
	assert.Error(t, cache.Invalidate(ctx))
}

func TestRedisClaimCache_ZeroTTLSkipsWrite(t *testing.T) {
	cache := NewRedisClaimCache(unreachableRedis(t), 0)

	assert.NoError(t, cache.Set(context.Background(), "p-1", nil))
}

func TestClaimAuthorization_WithUnreachableRedisStillAnswers(t *testing.T) {
	permissions := &fakePermissions{permissions: []models.Permission{{Claim: models.UnlockUserClaim, IsAuthorized: true}}}
	authorization := NewClaimAuthorization(permissions, NewRedisClaimCache(unreachableRedis(t), time.Minute), logger.Nop())

	ok, err := authorization.IsAuthorized(context.Background(), testCaller, models.UnlockUserClaim)

	require.NoError(t, err)
	assert.True(t, ok)
}

type fakePermissions struct {
	permissions []models.Permission
}

func (f *fakePermissions) LoadPermissions(context.Context, string) ([]models.Permission, error) {
	return f.permissions, nil
}
