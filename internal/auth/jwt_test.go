package auth

import (
	"testing"
	"time"

	"jobbridge_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager() *TokenManager {
	return NewTokenManager(
		"access_secret_for_tests_only_1234",
		"refresh_secret_for_tests_only_56",
		15*time.Minute,
		168*time.Hour,
	)
}

func TestAccessToken_RoundTrip(t *testing.T) {
	tm := newTestManager()

	token, err := tm.GenerateAccessToken("user-123", models.UserRoleStudent)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := tm.ParseAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, models.UserRoleStudent, claims.Role)
}

func TestRefreshToken_RoundTrip(t *testing.T) {
	tm := newTestManager()

	token, err := tm.GenerateRefreshToken("user-456", models.UserRoleEmployer)
	require.NoError(t, err)

	claims, err := tm.ParseRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-456", claims.UserID)
	assert.Equal(t, models.UserRoleEmployer, claims.Role)
}

// Секреты access и refresh независимы: токен одного типа не должен
// проходить проверку как токен другого типа.
func TestTokens_SecretsAreIndependent(t *testing.T) {
	tm := newTestManager()

	accessToken, err := tm.GenerateAccessToken("user-123", models.UserRoleStudent)
	require.NoError(t, err)
	refreshToken, err := tm.GenerateRefreshToken("user-123", models.UserRoleStudent)
	require.NoError(t, err)

	_, err = tm.ParseRefreshToken(accessToken)
	assert.ErrorIs(t, err, ErrTokenInvalid)

	_, err = tm.ParseAccessToken(refreshToken)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestParseToken_WrongSecret(t *testing.T) {
	tm := newTestManager()
	other := NewTokenManager("totally_different_access_secret!", "totally_different_refresh_secret", time.Minute, time.Hour)

	token, err := tm.GenerateAccessToken("user-123", models.UserRoleAdmin)
	require.NoError(t, err)

	_, err = other.ParseAccessToken(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestParseToken_Expired(t *testing.T) {
	tm := NewTokenManager("access_secret_for_tests_only_1234", "refresh_secret_for_tests_only_56", -time.Minute, -time.Minute)

	token, err := tm.GenerateAccessToken("user-123", models.UserRoleStudent)
	require.NoError(t, err)

	_, err = tm.ParseAccessToken(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestParseToken_Malformed(t *testing.T) {
	tm := newTestManager()

	for _, bad := range []string{"", "not-a-jwt", "a.b"} {
		_, err := tm.ParseAccessToken(bad)
		assert.ErrorIs(t, err, ErrTokenMalformed, "input: %q", bad)
	}
}

func TestParseToken_Tampered(t *testing.T) {
	tm := newTestManager()

	token, err := tm.GenerateAccessToken("user-123", models.UserRoleStudent)
	require.NoError(t, err)

	// Портим последний символ подписи
	last := "A"
	if token[len(token)-1] == 'A' {
		last = "B"
	}
	tampered := token[:len(token)-1] + last
	_, err = tm.ParseAccessToken(tampered)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
