package model

type CollaborationPayload struct {
	NoteID string `json:"noteId"`
	UserID string `json:"userId"`
}
