package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-platform/internal/auth"
	"blog-platform/internal/domain"
)

func newManager(t *testing.T) *auth.TokenManager {
	t.Helper()
	m, err := auth.NewTokenManager("unit-test-signing-secret")
	require.NoError(t, err)
	return m
}

func TestNewTokenManager(t *testing.T) {
	t.Run("rejects empty secret", func(t *testing.T) {
		_, err := auth.NewTokenManager("")
		assert.Error(t, err)
	})
}

func TestTokenManager_AdminRoundTrip(t *testing.T) {
	m := newManager(t)

	token, err := m.SignAdmin("admin@example.com")
	require.NoError(t, err)

	identity, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", identity.Email)
	assert.Equal(t, domain.RoleAdmin, identity.Role)
	assert.Empty(t, identity.UserID)
	assert.True(t, identity.IsAdmin())
}

func TestTokenManager_UserRoundTrip(t *testing.T) {
	m := newManager(t)

	token, err := m.SignUser(&domain.Identity{
		Email:       "user@example.com",
		DisplayName: "User",
		Role:        domain.RoleUser,
		UserID:      "user-1",
	}, auth.UserTokenTTL)
	require.NoError(t, err)

	identity, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", identity.Email)
	assert.Equal(t, "User", identity.DisplayName)
	assert.Equal(t, domain.RoleUser, identity.Role)
	assert.Equal(t, "user-1", identity.UserID)
	assert.False(t, identity.IsAdmin())
}

func TestTokenManager_Parse(t *testing.T) {
	m := newManager(t)

	t.Run("empty token is invalid", func(t *testing.T) {
		_, err := m.Parse("")
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("garbage token is invalid", func(t *testing.T) {
		_, err := m.Parse("not.a.token")
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("token signed with another secret is invalid", func(t *testing.T) {
		other, err := auth.NewTokenManager("a-different-secret")
		require.NoError(t, err)

		token, err := other.SignAdmin("admin@example.com")
		require.NoError(t, err)

		_, err = m.Parse(token)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("expired user token is invalid", func(t *testing.T) {
		token, err := m.SignUser(&domain.Identity{
			Email:  "user@example.com",
			Role:   domain.RoleUser,
			UserID: "user-1",
		}, -time.Minute)
		require.NoError(t, err)

		_, err = m.Parse(token)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})
}

func TestPasswordHashing(t *testing.T) {
	hash, err := auth.HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)

	t.Run("correct password matches", func(t *testing.T) {
		match, err := auth.VerifyPassword("correct horse battery staple", hash)
		require.NoError(t, err)
		assert.True(t, match)
	})

	t.Run("wrong password does not match", func(t *testing.T) {
		match, err := auth.VerifyPassword("wrong password", hash)
		require.NoError(t, err)
		assert.False(t, match)
	})

	t.Run("malformed hash is an error", func(t *testing.T) {
		_, err := auth.VerifyPassword("anything", "not-an-argon2id-hash")
		assert.Error(t, err)
	})

	t.Run("hashes are salted", func(t *testing.T) {
		again, err := auth.HashPassword("correct horse battery staple")
		require.NoError(t, err)
		assert.NotEqual(t, hash, again)
	})
}
