package service

import "catatanku/pkg/id"

// Repository is the persistence contract for sharing grants.
type Repository interface {
	Add(id, noteID, userID string) error
	Delete(noteID, userID string) error
	VerifyCollaborator(noteID, userID string) error
}

// OwnerVerifier gates grant management: only a note's owner may share or
// unshare it.
type OwnerVerifier interface {
	VerifyNoteOwner(noteID, userID string) error
}

type CollaborationService struct {
	repo  Repository
	notes OwnerVerifier
}

func NewCollaborationService(repo Repository, notes OwnerVerifier) *CollaborationService {
	return &CollaborationService{repo: repo, notes: notes}
}

func (s *CollaborationService) AddCollaboration(callerID, noteID, userID string) (string, error) {
	if err := s.notes.VerifyNoteOwner(noteID, callerID); err != nil {
		return "", err
	}
	collaborationID := "collab-" + id.New(16)
	if err := s.repo.Add(collaborationID, noteID, userID); err != nil {
		return "", err
	}
	return collaborationID, nil
}

func (s *CollaborationService) DeleteCollaboration(callerID, noteID, userID string) error {
	if err := s.notes.VerifyNoteOwner(noteID, callerID); err != nil {
		return err
	}
	return s.repo.Delete(noteID, userID)
}
