package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndVerify(t *testing.T) {
	m := NewManager("test-secret-key-for-testing-only-32b!", 15)

	token, sid, err := m.GenerateSessionToken("u1", "a@example.com", "Alice")
	require.NoError(t, err)
	assert.NotEmpty(t, sid)

	claims, err := m.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "a@example.com", claims.Email)
	assert.Equal(t, "Alice", claims.Name)
	assert.Equal(t, sid, claims.SessionID)
}

func TestVerify_WrongSecret(t *testing.T) {
	token, _, err := NewManager("secret-a", 15).GenerateSessionToken("u1", "a@example.com", "A")
	require.NoError(t, err)

	_, err = NewManager("secret-b", 15).VerifyToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_Expired(t *testing.T) {
	m := &Manager{secretKey: []byte("secret"), expiresIn: -time.Minute}
	token, _, err := m.GenerateSessionToken("u1", "a@example.com", "A")
	require.NoError(t, err)

	_, err = m.VerifyToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestVerify_Garbage(t *testing.T) {
	_, err := NewManager("secret", 15).VerifyToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestNewManager_DefaultLifetime(t *testing.T) {
	assert.Equal(t, 24*time.Hour, NewManager("s", 0).ExpiresIn())
}
