package service

import (
	"catatanku/internal/authentication/model"
	"catatanku/pkg/tokenize"
)

// Ledger persists issued refresh tokens; presence means the token has not
// been revoked.
type Ledger interface {
	Add(token string) error
	Verify(token string) error
	Delete(token string) error
}

// CredentialVerifier checks a username/password pair and returns the user id.
type CredentialVerifier interface {
	VerifyUserCredential(username, password string) (string, error)
}

type AuthenticationService struct {
	ledger Ledger
	users  CredentialVerifier
	tokens *tokenize.TokenManager
}

func NewAuthenticationService(ledger Ledger, users CredentialVerifier, tokens *tokenize.TokenManager) *AuthenticationService {
	return &AuthenticationService{ledger: ledger, users: users, tokens: tokens}
}

// Login verifies the credential, issues an access and a refresh token, and
// records the refresh token in the ledger.
func (s *AuthenticationService) Login(username, password string) (*model.TokenPair, error) {
	userID, err := s.users.VerifyUserCredential(username, password)
	if err != nil {
		return nil, err
	}

	accessToken, err := s.tokens.GenerateAccessToken(userID)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.tokens.GenerateRefreshToken(userID)
	if err != nil {
		return nil, err
	}

	if err := s.ledger.Add(refreshToken); err != nil {
		return nil, err
	}
	return &model.TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// RefreshAccessToken issues a new access token for a refresh token that is
// both present in the ledger and carries a valid signature.
func (s *AuthenticationService) RefreshAccessToken(refreshToken string) (string, error) {
	if err := s.ledger.Verify(refreshToken); err != nil {
		return "", err
	}
	userID, err := s.tokens.VerifyRefreshToken(refreshToken)
	if err != nil {
		return "", err
	}
	return s.tokens.GenerateAccessToken(userID)
}

// Logout revokes a refresh token. The token must still be in the ledger.
func (s *AuthenticationService) Logout(refreshToken string) error {
	if err := s.ledger.Verify(refreshToken); err != nil {
		return err
	}
	return s.ledger.Delete(refreshToken)
}
