package repository

import (
	"regexp"
	"testing"
	"time"

	"catatanku/pkg/apperror"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepository(t *testing.T) (*NoteRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewNoteRepository(db), mock
}

func TestAdd(t *testing.T) {
	repo, mock := newMockRepository(t)
	createdAt := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO notes (id, title, body, tags, created_at, updated_at, owner) VALUES ($1, $2, $3, $4, $5, $5, $6)`)).
		WithArgs("note-1", "Catatan A", "Isi catatan", pq.Array([]string{"penting"}), createdAt, "user-alice").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Add("note-1", "Catatan A", "Isi catatan", []string{"penting"}, "user-alice", createdAt)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAllByUser(t *testing.T) {
	repo, mock := newMockRepository(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT notes.id, notes.title, notes.body, notes.tags, notes.created_at, notes.updated_at FROM notes LEFT JOIN collaborations ON collaborations.note_id = notes.id WHERE notes.owner = $1 OR collaborations.user_id = $1 GROUP BY notes.id`)).
		WithArgs("user-alice").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "body", "tags", "created_at", "updated_at"}).
			AddRow("note-1", "Catatan A", "Isi", []byte("{penting,kerja}"), now, now))

	notes, err := repo.GetAllByUser("user-alice")
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "note-1", notes[0].ID)
	assert.Equal(t, []string{"penting", "kerja"}, notes[0].Tags)
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT notes.id, notes.title, notes.body, notes.tags, notes.created_at, notes.updated_at, users.username FROM notes LEFT JOIN users ON users.id = notes.owner WHERE notes.id = $1`)).
		WithArgs("note-missing").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "body", "tags", "created_at", "updated_at", "username"}))

	_, err := repo.GetByID("note-missing")
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
	assert.EqualError(t, err, "Catatan tidak ditemukan")
}

func TestGetOwner(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT owner FROM notes WHERE id = $1`)).
		WithArgs("note-1").
		WillReturnRows(sqlmock.NewRows([]string{"owner"}).AddRow("user-alice"))

	owner, err := repo.GetOwner("note-1")
	require.NoError(t, err)
	assert.Equal(t, "user-alice", owner)
}

func TestGetOwner_NotFound(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT owner FROM notes WHERE id = $1`)).
		WithArgs("note-missing").
		WillReturnRows(sqlmock.NewRows([]string{"owner"}))

	_, err := repo.GetOwner("note-missing")
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
	assert.EqualError(t, err, "Resource yang Anda minta tidak ditemukan")
}

func TestUpdate_NotFound(t *testing.T) {
	repo, mock := newMockRepository(t)
	updatedAt := time.Date(2024, 5, 2, 8, 0, 0, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE notes SET title = $1, body = $2, tags = $3, updated_at = $4 WHERE id = $5`)).
		WithArgs("Baru", "Isi", pq.Array([]string{}), updatedAt, "note-missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update("note-missing", "Baru", "Isi", []string{}, updatedAt)
	require.Error(t, err)
	assert.EqualError(t, err, "Gagal memperbarui catatan. Id tidak ditemukan")
}

func TestDelete(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM notes WHERE id = $1`)).
		WithArgs("note-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete("note-1"))
}

func TestDelete_NotFound(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM notes WHERE id = $1`)).
		WithArgs("note-missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete("note-missing")
	require.Error(t, err)
	assert.EqualError(t, err, "Catatan gagal dihapus. Id tidak ditemukan")
}
