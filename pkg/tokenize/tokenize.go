// Package tokenize issues and verifies the signed access and refresh tokens.
// Access tokens carry no expiry claim; their maximum age is enforced against
// the issued-at timestamp when they are verified. Refresh tokens are only
// checked for a valid signature, revocation is handled by the server-side
// ledger.
package tokenize

import (
	"time"

	"catatanku/pkg/apperror"

	"github.com/golang-jwt/jwt/v5"
)

type tokenClaims struct {
	ID string `json:"id"`
	jwt.RegisteredClaims
}

type TokenManager struct {
	accessKey      []byte
	refreshKey     []byte
	accessTokenAge time.Duration
}

func NewTokenManager(accessKey, refreshKey string, accessTokenAge time.Duration) *TokenManager {
	return &TokenManager{
		accessKey:      []byte(accessKey),
		refreshKey:     []byte(refreshKey),
		accessTokenAge: accessTokenAge,
	}
}

func (m *TokenManager) GenerateAccessToken(userID string) (string, error) {
	return m.generate(userID, m.accessKey)
}

func (m *TokenManager) GenerateRefreshToken(userID string) (string, error) {
	return m.generate(userID, m.refreshKey)
}

func (m *TokenManager) generate(userID string, key []byte) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		ID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	})
	return token.SignedString(key)
}

// VerifyAccessToken checks the signature and the token's age. Audience,
// issuer and subject claims are intentionally not checked.
func (m *TokenManager) VerifyAccessToken(tokenString string) (string, error) {
	claims, err := m.parse(tokenString, m.accessKey)
	if err != nil {
		return "", apperror.NewAuthenticationError("Token tidak valid")
	}
	if claims.IssuedAt == nil || time.Since(claims.IssuedAt.Time) > m.accessTokenAge {
		return "", apperror.NewAuthenticationError("Token sudah kedaluwarsa")
	}
	return claims.ID, nil
}

// VerifyRefreshToken checks the signature only. Age is not enforced; the
// authentications ledger is the authority for revocation.
func (m *TokenManager) VerifyRefreshToken(tokenString string) (string, error) {
	claims, err := m.parse(tokenString, m.refreshKey)
	if err != nil {
		return "", apperror.NewInvariantError("Refresh token tidak valid")
	}
	return claims.ID, nil
}

func (m *TokenManager) parse(tokenString string, key []byte) (*tokenClaims, error) {
	claims := &tokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}
	return claims, nil
}
