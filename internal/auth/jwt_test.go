package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenManager() *TokenManager {
	return NewTokenManager("test-secret", 60, 120)
}

func TestTokenManager_AccessTokenRoundTrip(t *testing.T) {
	tm := newTestTokenManager()

	token, err := tm.GenerateAccessToken(42, RoleModerator)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := tm.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "42", claims.Subject)
	assert.Equal(t, RoleModerator, claims.Role)
	assert.Empty(t, claims.TokenType)
}

func TestTokenManager_RefreshTokenRoundTrip(t *testing.T) {
	tm := newTestTokenManager()

	token, err := tm.GenerateRefreshToken(7, RoleOrganization)
	require.NoError(t, err)

	claims, err := tm.ParseRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, "7", claims.Subject)
	assert.Equal(t, RoleOrganization, claims.Role)
	assert.Equal(t, "refresh", claims.TokenType)
}

func TestTokenManager_RefreshRejectedByAccessPath(t *testing.T) {
	tm := newTestTokenManager()

	refresh, err := tm.GenerateRefreshToken(1, RoleAdmin)
	require.NoError(t, err)

	_, err = tm.ParseToken(refresh)
	assert.Error(t, err)
}

func TestTokenManager_AccessRejectedByRefreshPath(t *testing.T) {
	tm := newTestTokenManager()

	access, err := tm.GenerateAccessToken(1, RoleAdmin)
	require.NoError(t, err)

	_, err = tm.ParseRefreshToken(access)
	assert.Error(t, err)
}

func TestTokenManager_WrongSecret(t *testing.T) {
	tm := newTestTokenManager()
	other := NewTokenManager("another-secret", 60, 120)

	token, err := tm.GenerateAccessToken(1, RoleAdmin)
	require.NoError(t, err)

	_, err = other.ParseToken(token)
	assert.Error(t, err)
}

func TestTokenManager_ExpiredToken(t *testing.T) {
	tm := &TokenManager{
		Secret:     "test-secret",
		AccessTTL:  -time.Minute, // уже истек
		RefreshTTL: time.Hour,
	}

	token, err := tm.GenerateAccessToken(1, RoleAdmin)
	require.NoError(t, err)

	_, err = tm.ParseToken(token)
	assert.Error(t, err)
}

func TestTokenManager_Garbage(t *testing.T) {
	tm := newTestTokenManager()

	_, err := tm.ParseToken("not.a.token")
	assert.Error(t, err)

	_, err = tm.ParseToken("")
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("admin123")
	require.NoError(t, err)
	assert.NotEqual(t, "admin123", hash)

	assert.True(t, CheckPasswordHash("admin123", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
	assert.False(t, CheckPasswordHash("admin123", "not-a-hash"))
}
