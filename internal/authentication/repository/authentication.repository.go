package repository

import (
	"database/sql"
	"errors"

	"catatanku/pkg/apperror"
	"catatanku/pkg/logger"
)

// AuthenticationRepository is the refresh token ledger. A token present in
// the authentications table is valid until it is deleted, regardless of its
// signature lifetime.
type AuthenticationRepository struct {
	DB *sql.DB
}

func NewAuthenticationRepository(db *sql.DB) *AuthenticationRepository {
	return &AuthenticationRepository{DB: db}
}

func (r *AuthenticationRepository) Add(token string) error {
	_, err := r.DB.Exec(`INSERT INTO authentications (token) VALUES ($1)`, token)
	if err != nil {
		logger.Sugar.Errorf("Failed to store refresh token: %v", err)
	}
	return err
}

// Verify is a membership check, independent of signature verification.
func (r *AuthenticationRepository) Verify(token string) error {
	var stored string
	err := r.DB.QueryRow(`SELECT token FROM authentications WHERE token = $1`, token).Scan(&stored)
	if errors.Is(err, sql.ErrNoRows) {
		return apperror.NewInvariantError("Refresh token tidak valid")
	}
	if err != nil {
		logger.Sugar.Errorf("Failed to verify refresh token: %v", err)
	}
	return err
}

// Delete is unconditional; deleting an absent token is not an error.
func (r *AuthenticationRepository) Delete(token string) error {
	_, err := r.DB.Exec(`DELETE FROM authentications WHERE token = $1`, token)
	if err != nil {
		logger.Sugar.Errorf("Failed to delete refresh token: %v", err)
	}
	return err
}
