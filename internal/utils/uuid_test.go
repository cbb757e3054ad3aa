package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDGenerator_Version7(t *testing.T) {
	id, err := uuid.Parse(NewUUIDGenerator().Generate())

	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), id.Version())
}

func TestULIDGenerator_MonotonicAndUnique(t *testing.T) {
	g := NewULIDGenerator()
	seen := make(map[string]struct{}, 100)

	prev := ""
	for i := 0; i < 100; i++ {
		id := g.Generate()
		_, err := ulid.ParseStrict(id)
		require.NoError(t, err)

		_, dup := seen[id]
		assert.False(t, dup)
		seen[id] = struct{}{}

		assert.Greater(t, id, prev)
		prev = id
	}
}

func TestFakeClock_Advance(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewFakeClock(start)

	c.Advance(5 * time.Minute)

	assert.Equal(t, start.Add(5*time.Minute), c.Now())
}
