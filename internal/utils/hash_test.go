package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashString_MatchesHMAC(t *testing.T) {
	h := hmac.New(sha256.New, []byte("key"))
	h.Write([]byte("data"))
	expected := hex.EncodeToString(h.Sum(nil))

	assert.Equal(t, expected, HashString("data", "key"))
}

func TestHashString_DependsOnKeyAndData(t *testing.T) {
	base := HashString("data", "key")

	assert.NotEqual(t, base, HashString("data", "other-key"))
	assert.NotEqual(t, base, HashString("other-data", "key"))
}

func TestEqualHashes(t *testing.T) {
	a := HashString("data", "key")

	assert.True(t, EqualHashes(a, HashString("data", "key")))
	assert.False(t, EqualHashes(a, HashString("data2", "key")))
	assert.False(t, EqualHashes(a, ""))
}
