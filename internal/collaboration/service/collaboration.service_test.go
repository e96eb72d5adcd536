package service

import (
	"strings"
	"testing"

	"catatanku/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCollaborationRepository struct {
	grants map[string]string
}

func newFakeCollaborationRepository() *fakeCollaborationRepository {
	return &fakeCollaborationRepository{grants: map[string]string{}}
}

func (f *fakeCollaborationRepository) Add(id, noteID, userID string) error {
	f.grants[noteID+"/"+userID] = id
	return nil
}

func (f *fakeCollaborationRepository) Delete(noteID, userID string) error {
	if _, ok := f.grants[noteID+"/"+userID]; !ok {
		return apperror.NewInvariantError("Kolaborasi gagal dihapus")
	}
	delete(f.grants, noteID+"/"+userID)
	return nil
}

func (f *fakeCollaborationRepository) VerifyCollaborator(noteID, userID string) error {
	if _, ok := f.grants[noteID+"/"+userID]; !ok {
		return apperror.NewInvariantError("Kolaborasi gagal diverifikasi")
	}
	return nil
}

type fakeOwnerVerifier struct {
	owners map[string]string
}

func (f *fakeOwnerVerifier) VerifyNoteOwner(noteID, userID string) error {
	owner, ok := f.owners[noteID]
	if !ok {
		return apperror.NewNotFoundError("Resource yang Anda minta tidak ditemukan")
	}
	if owner != userID {
		return apperror.NewAuthorizationError("Anda tidak berhak mengakses resource ini")
	}
	return nil
}

func newService() (*CollaborationService, *fakeCollaborationRepository) {
	repo := newFakeCollaborationRepository()
	notes := &fakeOwnerVerifier{owners: map[string]string{"note-1": "user-alice"}}
	return NewCollaborationService(repo, notes), repo
}

func TestAddCollaboration(t *testing.T) {
	svc, repo := newService()

	collabID, err := svc.AddCollaboration("user-alice", "note-1", "user-bob")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(collabID, "collab-"))
	assert.Len(t, collabID, len("collab-")+16)
	assert.NoError(t, repo.VerifyCollaborator("note-1", "user-bob"))
}

func TestAddCollaboration_NotOwner(t *testing.T) {
	svc, repo := newService()

	_, err := svc.AddCollaboration("user-bob", "note-1", "user-carol")
	require.Error(t, err)
	assert.Equal(t, 403, apperror.StatusCode(err))
	assert.Error(t, repo.VerifyCollaborator("note-1", "user-carol"))
}

// A collaborator cannot grant access onward; sharing stays owner-only.
func TestAddCollaboration_CollaboratorCannotShare(t *testing.T) {
	svc, repo := newService()

	_, err := svc.AddCollaboration("user-alice", "note-1", "user-bob")
	require.NoError(t, err)

	_, err = svc.AddCollaboration("user-bob", "note-1", "user-carol")
	require.Error(t, err)
	assert.Equal(t, 403, apperror.StatusCode(err))
	assert.Error(t, repo.VerifyCollaborator("note-1", "user-carol"))
}

func TestAddCollaboration_NoteMissing(t *testing.T) {
	svc, _ := newService()

	_, err := svc.AddCollaboration("user-alice", "note-missing", "user-bob")
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestDeleteCollaboration(t *testing.T) {
	svc, repo := newService()

	_, err := svc.AddCollaboration("user-alice", "note-1", "user-bob")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteCollaboration("user-alice", "note-1", "user-bob"))
	assert.Error(t, repo.VerifyCollaborator("note-1", "user-bob"))
}

func TestDeleteCollaboration_NotOwner(t *testing.T) {
	svc, _ := newService()

	_, err := svc.AddCollaboration("user-alice", "note-1", "user-bob")
	require.NoError(t, err)

	err = svc.DeleteCollaboration("user-bob", "note-1", "user-bob")
	require.Error(t, err)
	assert.Equal(t, 403, apperror.StatusCode(err))
}
