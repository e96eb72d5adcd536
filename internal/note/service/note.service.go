package service

import (
	"time"

	"catatanku/internal/note/model"
	"catatanku/pkg/apperror"
	"catatanku/pkg/id"
)

// Repository is the persistence contract for notes. Absent rows are reported
// as not-found client errors.
type Repository interface {
	Add(id, title, body string, tags []string, owner string, createdAt time.Time) error
	GetAllByUser(userID string) ([]model.Note, error)
	GetByID(id string) (*model.Note, error)
	GetOwner(id string) (string, error)
	Update(id, title, body string, tags []string, updatedAt time.Time) error
	Delete(id string) error
}

// CollaboratorVerifier reports whether a user has a sharing grant on a note.
type CollaboratorVerifier interface {
	VerifyCollaborator(noteID, userID string) error
}

type NoteService struct {
	repo          Repository
	collaborators CollaboratorVerifier
}

func NewNoteService(repo Repository, collaborators CollaboratorVerifier) *NoteService {
	return &NoteService{repo: repo, collaborators: collaborators}
}

func (s *NoteService) AddNote(owner string, payload model.NotePayload) (string, error) {
	noteID := id.New(16)
	if err := s.repo.Add(noteID, payload.Title, payload.Body, payload.Tags, owner, time.Now()); err != nil {
		return "", err
	}
	return noteID, nil
}

func (s *NoteService) GetNotes(userID string) ([]model.Note, error) {
	return s.repo.GetAllByUser(userID)
}

func (s *NoteService) GetNoteByID(noteID, userID string) (*model.Note, error) {
	if err := s.VerifyNoteAccess(noteID, userID); err != nil {
		return nil, err
	}
	return s.repo.GetByID(noteID)
}

// EditNote is owner-only; collaborators cannot write.
func (s *NoteService) EditNote(noteID, userID string, payload model.NotePayload) error {
	if err := s.VerifyNoteOwner(noteID, userID); err != nil {
		return err
	}
	return s.repo.Update(noteID, payload.Title, payload.Body, payload.Tags, time.Now())
}

// DeleteNote is owner-only; collaborators cannot delete.
func (s *NoteService) DeleteNote(noteID, userID string) error {
	if err := s.VerifyNoteOwner(noteID, userID); err != nil {
		return err
	}
	return s.repo.Delete(noteID)
}

// VerifyNoteOwner gates write and delete operations. A missing note is
// not-found; a note owned by someone else is an authorization failure.
func (s *NoteService) VerifyNoteOwner(noteID, userID string) error {
	owner, err := s.repo.GetOwner(noteID)
	if err != nil {
		return err
	}
	if owner != userID {
		return apperror.NewAuthorizationError("Anda tidak berhak mengakses resource ini")
	}
	return nil
}

// VerifyNoteAccess gates read operations: the owner or any collaborator may
// read. When the caller is neither, the ownership error is returned rather
// than the collaboration-check error, so every denied caller sees the same
// failure.
func (s *NoteService) VerifyNoteAccess(noteID, userID string) error {
	ownerErr := s.VerifyNoteOwner(noteID, userID)
	if ownerErr == nil {
		return nil
	}
	if apperror.IsNotFound(ownerErr) || !apperror.IsAuthorization(ownerErr) {
		return ownerErr
	}
	if err := s.collaborators.VerifyCollaborator(noteID, userID); err != nil {
		return ownerErr
	}
	return nil
}
