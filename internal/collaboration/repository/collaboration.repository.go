package repository

import (
	"database/sql"
	"errors"

	"catatanku/pkg/apperror"
	"catatanku/pkg/logger"
)

type CollaborationRepository struct {
	DB *sql.DB
}

func NewCollaborationRepository(db *sql.DB) *CollaborationRepository {
	return &CollaborationRepository{DB: db}
}

func (r *CollaborationRepository) Add(id, noteID, userID string) error {
	result, err := r.DB.Exec(`INSERT INTO collaborations (id, note_id, user_id) VALUES ($1, $2, $3)`,
		id, noteID, userID)
	if err != nil {
		logger.Sugar.Errorf("Failed to add collaborator %s to note %s: %v", userID, noteID, err)
		return apperror.NewInvariantError("Kolaborasi gagal ditambahkan")
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return apperror.NewInvariantError("Kolaborasi gagal ditambahkan")
	}
	return nil
}

func (r *CollaborationRepository) Delete(noteID, userID string) error {
	result, err := r.DB.Exec(`DELETE FROM collaborations WHERE note_id = $1 AND user_id = $2`,
		noteID, userID)
	if err != nil {
		logger.Sugar.Errorf("Failed to remove collaborator %s from note %s: %v", userID, noteID, err)
		return err
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return apperror.NewInvariantError("Kolaborasi gagal dihapus")
	}
	return nil
}

func (r *CollaborationRepository) VerifyCollaborator(noteID, userID string) error {
	var id string
	err := r.DB.QueryRow(`SELECT id FROM collaborations WHERE note_id = $1 AND user_id = $2`,
		noteID, userID).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return apperror.NewInvariantError("Kolaborasi gagal diverifikasi")
	}
	if err != nil {
		logger.Sugar.Errorf("Failed to verify collaborator %s on note %s: %v", userID, noteID, err)
	}
	return err
}
