package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	m := NewJWTManager("super-secret", 120*time.Hour)

	tok, exp, err := m.GenerateToken("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	// expiry is now + 5 days
	assert.WithinDuration(t, time.Now().Add(120*time.Hour), exp, 5*time.Second)

	claims, err := m.ParseToken(tok)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.User.ID)
	assert.WithinDuration(t, exp, claims.ExpiresAt.Time, time.Second)
}

func TestParseTokenWrongSecret(t *testing.T) {
	m := NewJWTManager("right-secret", time.Hour)
	tok, _, err := m.GenerateToken("u1")
	require.NoError(t, err)

	other := NewJWTManager("wrong-secret", time.Hour)
	_, err = other.ParseToken(tok)
	assert.Error(t, err)
}

func TestParseTokenExpired(t *testing.T) {
	m := NewJWTManager("secret", -time.Minute)
	tok, _, err := m.GenerateToken("u1")
	require.NoError(t, err)

	_, err = m.ParseToken(tok)
	assert.Error(t, err)
}

func TestParseTokenMalformed(t *testing.T) {
	m := NewJWTManager("secret", time.Hour)
	_, err := m.ParseToken("not.a.jwt")
	assert.Error(t, err)
}
