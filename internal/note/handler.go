package handler

import (
	"encoding/json"
	"net/http"

	"catatanku/internal/note/model"
	"catatanku/internal/note/service"
	"catatanku/middleware"
	"catatanku/pkg/apperror"
	"catatanku/pkg/web"

	"github.com/go-chi/chi/v5"
)

type NoteHandler struct {
	Service *service.NoteService
}

func NewNoteHandler(service *service.NoteService) *NoteHandler {
	return &NoteHandler{Service: service}
}

func (h *NoteHandler) PostNote(w http.ResponseWriter, r *http.Request) {
	payload, err := decodeNotePayload(r)
	if err != nil {
		web.WriteError(w, err)
		return
	}

	noteID, err := h.Service.AddNote(middleware.UserID(r), *payload)
	if err != nil {
		web.WriteError(w, err)
		return
	}

	web.WriteSuccess(w, http.StatusCreated, "Catatan berhasil ditambahkan", map[string]any{
		"noteId": noteID,
	})
}

func (h *NoteHandler) GetNotes(w http.ResponseWriter, r *http.Request) {
	notes, err := h.Service.GetNotes(middleware.UserID(r))
	if err != nil {
		web.WriteError(w, err)
		return
	}

	web.WriteSuccess(w, http.StatusOK, "", map[string]any{
		"notes": notes,
	})
}

func (h *NoteHandler) GetNoteByID(w http.ResponseWriter, r *http.Request) {
	note, err := h.Service.GetNoteByID(chi.URLParam(r, "id"), middleware.UserID(r))
	if err != nil {
		web.WriteError(w, err)
		return
	}

	web.WriteSuccess(w, http.StatusOK, "", map[string]any{
		"note": note,
	})
}

func (h *NoteHandler) PutNoteByID(w http.ResponseWriter, r *http.Request) {
	payload, err := decodeNotePayload(r)
	if err != nil {
		web.WriteError(w, err)
		return
	}

	if err := h.Service.EditNote(chi.URLParam(r, "id"), middleware.UserID(r), *payload); err != nil {
		web.WriteError(w, err)
		return
	}

	web.WriteSuccess(w, http.StatusOK, "Catatan berhasil diperbarui", nil)
}

func (h *NoteHandler) DeleteNoteByID(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.DeleteNote(chi.URLParam(r, "id"), middleware.UserID(r)); err != nil {
		web.WriteError(w, err)
		return
	}

	web.WriteSuccess(w, http.StatusOK, "Catatan berhasil dihapus", nil)
}

func decodeNotePayload(r *http.Request) (*model.NotePayload, error) {
	var payload model.NotePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		return nil, apperror.NewInvariantError("Payload tidak valid")
	}
	if payload.Title == "" {
		return nil, apperror.NewInvariantError("\"title\" is required")
	}
	if payload.Body == "" {
		return nil, apperror.NewInvariantError("\"body\" is required")
	}
	if payload.Tags == nil {
		return nil, apperror.NewInvariantError("\"tags\" is required")
	}
	return &payload, nil
}
