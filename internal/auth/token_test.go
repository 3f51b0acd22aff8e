package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testManager() *Manager {
	return NewManager("test-secret", time.Hour, 24*time.Hour)
}

func TestGenerateAndParseTokens(t *testing.T) {
	m := testManager()
	access, refresh, err := m.GenerateTokens(7, []uint{2, 3})
	require.NoError(t, err)

	claims, err := m.ParseAccess(access)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, []uint{2, 3}, claims.Roles)

	refreshClaims, err := m.ParseRefresh(refresh)
	require.NoError(t, err)
	assert.Equal(t, uint(7), refreshClaims.UserID)
}

func TestTokenTypeEnforced(t *testing.T) {
	m := testManager()
	access, refresh, err := m.GenerateTokens(1, []uint{2})
	require.NoError(t, err)

	// an access token is not accepted where a refresh token is required
	_, err = m.ParseRefresh(access)
	assert.ErrorIs(t, err, ErrNotRefreshToken)

	// and a refresh token cannot authenticate a request
	_, err = m.ParseAccess(refresh)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	access, _, err := testManager().GenerateTokens(1, []uint{2})
	require.NoError(t, err)

	other := NewManager("other-secret", time.Hour, 24*time.Hour)
	_, err = other.ParseAccess(access)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsExpired(t *testing.T) {
	m := NewManager("test-secret", -time.Minute, 24*time.Hour)
	access, err := m.GenerateAccessToken(1, []uint{2})
	require.NoError(t, err)

	_, err = m.ParseAccess(access)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestClaimsRoles(t *testing.T) {
	claims := &Claims{UserID: 5, Roles: []uint{2, 4}}
	assert.True(t, claims.HasRole(4))
	assert.False(t, claims.HasRole(3))
	assert.False(t, claims.IsAdmin())

	admin := &Claims{UserID: 1, Roles: []uint{AdminRoleID}}
	assert.True(t, admin.IsAdmin())
}
