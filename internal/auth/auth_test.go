package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("pw1", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotEqual(t, "pw1", hash)

	assert.True(t, VerifyPassword(hash, "pw1"))
	assert.False(t, VerifyPassword(hash, "pw2"))
	// Verification is repeatable: a wrong password fails every time.
	for i := 0; i < 3; i++ {
		assert.False(t, VerifyPassword(hash, "wrong"))
	}
}

func TestSessionTokenRoundTrip(t *testing.T) {
	const secret = "test-secret"
	sid, err := NewSessionID()
	require.NoError(t, err)
	require.Len(t, sid, 32)

	token, exp, err := NewSessionToken(secret, Session{Email: "a@x.com", Name: "Alice", SID: sid}, 60)
	require.NoError(t, err)
	assert.False(t, exp.IsZero())

	got, err := ParseSessionToken(secret, token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", got.Email)
	assert.Equal(t, "Alice", got.Name)
	assert.Equal(t, sid, got.SID)
}

func TestParseSessionTokenRejects(t *testing.T) {
	token, _, err := NewSessionToken("secret-a", Session{Email: "a@x.com", SID: "s"}, 60)
	require.NoError(t, err)

	tests := []struct {
		name   string
		secret string
		raw    string
	}{
		{name: "wrong secret", secret: "secret-b", raw: token},
		{name: "garbage token", secret: "secret-a", raw: "not-a-jwt"},
		{name: "empty token", secret: "secret-a", raw: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSessionToken(tt.secret, tt.raw)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	token, _, err := NewSessionToken("s", Session{Email: "a@x.com", SID: "x"}, -1)
	require.NoError(t, err)
	_, err = ParseSessionToken("s", token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
