package repository

import (
	"database/sql"
	"errors"
	"time"

	"catatanku/internal/note/model"
	"catatanku/pkg/apperror"
	"catatanku/pkg/logger"

	"github.com/lib/pq"
)

type NoteRepository struct {
	DB *sql.DB
}

func NewNoteRepository(db *sql.DB) *NoteRepository {
	return &NoteRepository{DB: db}
}

func (r *NoteRepository) Add(id, title, body string, tags []string, owner string, createdAt time.Time) error {
	result, err := r.DB.Exec(`INSERT INTO notes (id, title, body, tags, created_at, updated_at, owner) VALUES ($1, $2, $3, $4, $5, $5, $6)`,
		id, title, body, pq.Array(tags), createdAt, owner)
	if err != nil {
		logger.Sugar.Errorf("Failed to insert note %s: %v", id, err)
		return apperror.NewInvariantError("Catatan gagal ditambahkan")
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return apperror.NewInvariantError("Catatan gagal ditambahkan")
	}
	return nil
}

// GetAllByUser returns the union of notes owned by the user and notes shared
// with them, one row per note regardless of collaborator count.
func (r *NoteRepository) GetAllByUser(userID string) ([]model.Note, error) {
	rows, err := r.DB.Query(`
		SELECT notes.id, notes.title, notes.body, notes.tags, notes.created_at, notes.updated_at
		FROM notes
		LEFT JOIN collaborations ON collaborations.note_id = notes.id
		WHERE notes.owner = $1 OR collaborations.user_id = $1
		GROUP BY notes.id`, userID)
	if err != nil {
		logger.Sugar.Errorf("Failed to get notes for user %s: %v", userID, err)
		return nil, err
	}
	defer rows.Close()

	notes := []model.Note{}
	for rows.Next() {
		var note model.Note
		if err := rows.Scan(&note.ID, &note.Title, &note.Body, pq.Array(&note.Tags), &note.CreatedAt, &note.UpdatedAt); err != nil {
			return nil, err
		}
		notes = append(notes, note)
	}
	return notes, rows.Err()
}

func (r *NoteRepository) GetByID(id string) (*model.Note, error) {
	var note model.Note
	err := r.DB.QueryRow(`
		SELECT notes.id, notes.title, notes.body, notes.tags, notes.created_at, notes.updated_at, users.username
		FROM notes
		LEFT JOIN users ON users.id = notes.owner
		WHERE notes.id = $1`, id).
		Scan(&note.ID, &note.Title, &note.Body, pq.Array(&note.Tags), &note.CreatedAt, &note.UpdatedAt, &note.Username)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.NewNotFoundError("Catatan tidak ditemukan")
	}
	if err != nil {
		logger.Sugar.Errorf("Failed to get note %s: %v", id, err)
		return nil, err
	}
	return &note, nil
}

func (r *NoteRepository) GetOwner(id string) (string, error) {
	var owner string
	err := r.DB.QueryRow(`SELECT owner FROM notes WHERE id = $1`, id).Scan(&owner)
	if errors.Is(err, sql.ErrNoRows) {
		return "", apperror.NewNotFoundError("Resource yang Anda minta tidak ditemukan")
	}
	if err != nil {
		logger.Sugar.Errorf("Failed to get owner for note %s: %v", id, err)
		return "", err
	}
	return owner, nil
}

func (r *NoteRepository) Update(id, title, body string, tags []string, updatedAt time.Time) error {
	result, err := r.DB.Exec(`UPDATE notes SET title = $1, body = $2, tags = $3, updated_at = $4 WHERE id = $5`,
		title, body, pq.Array(tags), updatedAt, id)
	if err != nil {
		logger.Sugar.Errorf("Failed to update note %s: %v", id, err)
		return err
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return apperror.NewNotFoundError("Gagal memperbarui catatan. Id tidak ditemukan")
	}
	return nil
}

func (r *NoteRepository) Delete(id string) error {
	result, err := r.DB.Exec(`DELETE FROM notes WHERE id = $1`, id)
	if err != nil {
		logger.Sugar.Errorf("Failed to delete note %s: %v", id, err)
		return err
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return apperror.NewNotFoundError("Catatan gagal dihapus. Id tidak ditemukan")
	}
	return nil
}
