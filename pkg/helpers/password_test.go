package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordVerifies(t *testing.T) {
	hash, err := HashPassword("secret1", 10)
	require.NoError(t, err)

	assert.NotEqual(t, "secret1", hash)
	assert.True(t, CompareHashAndPassword(hash, "secret1"))
	assert.False(t, CompareHashAndPassword(hash, "secret2"))
}

func TestHashPasswordSalted(t *testing.T) {
	// same plaintext, different salts, different hashes
	a, err := HashPassword("secret1", 4)
	require.NoError(t, err)
	b, err := HashPassword("secret1", 4)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestHashPasswordInvalidCostFallsBack(t *testing.T) {
	hash, err := HashPassword("secret1", 99)
	require.NoError(t, err)
	assert.True(t, CompareHashAndPassword(hash, "secret1"))
}
