package tokenize

import (
	"net/http"
	"testing"
	"time"

	"catatanku/pkg/apperror"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testAccessKey  = "access-secret"
	testRefreshKey = "refresh-secret"
)

// signWithIssuedAt builds a token outside the manager so tests can control
// the issued-at timestamp.
func signWithIssuedAt(t *testing.T, userID string, key string, issuedAt time.Time) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		ID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(issuedAt),
		},
	})
	signed, err := token.SignedString([]byte(key))
	require.NoError(t, err)
	return signed
}

func TestAccessTokenRoundTrip(t *testing.T) {
	manager := NewTokenManager(testAccessKey, testRefreshKey, time.Hour)

	token, err := manager.GenerateAccessToken("user-abc")
	require.NoError(t, err)

	userID, err := manager.VerifyAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-abc", userID)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	manager := NewTokenManager(testAccessKey, testRefreshKey, time.Hour)

	token, err := manager.GenerateRefreshToken("user-abc")
	require.NoError(t, err)

	userID, err := manager.VerifyRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-abc", userID)
}

func TestVerifyAccessToken_WrongKey(t *testing.T) {
	manager := NewTokenManager(testAccessKey, testRefreshKey, time.Hour)
	other := NewTokenManager("some-other-key", testRefreshKey, time.Hour)

	token, err := manager.GenerateAccessToken("user-abc")
	require.NoError(t, err)

	_, err = other.VerifyAccessToken(token)
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, apperror.StatusCode(err))
}

func TestVerifyAccessToken_MaxAgeExceeded(t *testing.T) {
	manager := NewTokenManager(testAccessKey, testRefreshKey, 30*time.Minute)

	stale := signWithIssuedAt(t, "user-abc", testAccessKey, time.Now().Add(-time.Hour))
	_, err := manager.VerifyAccessToken(stale)
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, apperror.StatusCode(err))
}

func TestVerifyRefreshToken_IgnoresAge(t *testing.T) {
	manager := NewTokenManager(testAccessKey, testRefreshKey, time.Second)

	old := signWithIssuedAt(t, "user-abc", testRefreshKey, time.Now().Add(-24*time.Hour))
	userID, err := manager.VerifyRefreshToken(old)
	require.NoError(t, err)
	assert.Equal(t, "user-abc", userID)
}

func TestVerifyRefreshToken_Malformed(t *testing.T) {
	manager := NewTokenManager(testAccessKey, testRefreshKey, time.Hour)

	_, err := manager.VerifyRefreshToken("not.a.jwt")
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperror.StatusCode(err))
	assert.EqualError(t, err, "Refresh token tidak valid")
}

func TestKeysAreNotInterchangeable(t *testing.T) {
	manager := NewTokenManager(testAccessKey, testRefreshKey, time.Hour)

	accessToken, err := manager.GenerateAccessToken("user-abc")
	require.NoError(t, err)
	refreshToken, err := manager.GenerateRefreshToken("user-abc")
	require.NoError(t, err)

	_, err = manager.VerifyRefreshToken(accessToken)
	assert.Error(t, err)

	_, err = manager.VerifyAccessToken(refreshToken)
	assert.Error(t, err)
}
