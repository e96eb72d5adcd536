package handler

import (
	"encoding/json"
	"net/http"

	"catatanku/internal/collaboration/model"
	"catatanku/internal/collaboration/service"
	"catatanku/middleware"
	"catatanku/pkg/apperror"
	"catatanku/pkg/web"
)

type CollaborationHandler struct {
	Service *service.CollaborationService
}

func NewCollaborationHandler(service *service.CollaborationService) *CollaborationHandler {
	return &CollaborationHandler{Service: service}
}

func (h *CollaborationHandler) PostCollaboration(w http.ResponseWriter, r *http.Request) {
	payload, err := decodeCollaborationPayload(r)
	if err != nil {
		web.WriteError(w, err)
		return
	}

	collaborationID, err := h.Service.AddCollaboration(middleware.UserID(r), payload.NoteID, payload.UserID)
	if err != nil {
		web.WriteError(w, err)
		return
	}

	web.WriteSuccess(w, http.StatusCreated, "Kolaborasi berhasil ditambahkan", map[string]any{
		"collaborationId": collaborationID,
	})
}

func (h *CollaborationHandler) DeleteCollaboration(w http.ResponseWriter, r *http.Request) {
	payload, err := decodeCollaborationPayload(r)
	if err != nil {
		web.WriteError(w, err)
		return
	}

	if err := h.Service.DeleteCollaboration(middleware.UserID(r), payload.NoteID, payload.UserID); err != nil {
		web.WriteError(w, err)
		return
	}

	web.WriteSuccess(w, http.StatusOK, "Kolaborasi berhasil dihapus", nil)
}

func decodeCollaborationPayload(r *http.Request) (*model.CollaborationPayload, error) {
	var payload model.CollaborationPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		return nil, apperror.NewInvariantError("Payload tidak valid")
	}
	if payload.NoteID == "" {
		return nil, apperror.NewInvariantError("\"noteId\" is required")
	}
	if payload.UserID == "" {
		return nil, apperror.NewInvariantError("\"userId\" is required")
	}
	return &payload, nil
}
