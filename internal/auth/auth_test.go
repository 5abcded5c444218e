package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)

	token, err := m.Generate("alice", true)
	require.NoError(t, err)

	claims, err := m.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Subject)
	assert.True(t, claims.AdminSession)
}

func TestJWTRejectsForeignSecret(t *testing.T) {
	token, err := NewJWTManager("one", time.Hour).Generate("alice", false)
	require.NoError(t, err)

	_, err = NewJWTManager("two", time.Hour).Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTRejectsExpired(t *testing.T) {
	m := NewJWTManager("test-secret", -time.Minute)
	token, err := m.Generate("alice", false)
	require.NoError(t, err)

	_, err = m.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestGenerateRequiresIdentity(t *testing.T) {
	_, err := NewJWTManager("s", time.Hour).Generate("", false)
	assert.Error(t, err)
}

func TestPasscodeMatches(t *testing.T) {
	assert.True(t, PasscodeMatches("open-sesame", "open-sesame"))
	assert.False(t, PasscodeMatches("open-sesame", "open"))
	assert.False(t, PasscodeMatches("", ""))
}

func TestContextHelpers(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, Identity(ctx))
	assert.False(t, AdminSession(ctx))

	ctx = WithAdminSession(WithIdentity(ctx, "bob"), true)
	assert.Equal(t, "bob", Identity(ctx))
	assert.True(t, AdminSession(ctx))
}
