package handler

import (
	"encoding/json"
	"net/http"

	"catatanku/internal/user/model"
	"catatanku/internal/user/service"
	"catatanku/pkg/apperror"
	"catatanku/pkg/web"

	"github.com/go-chi/chi/v5"
)

type UserHandler struct {
	Service *service.UserService
}

func NewUserHandler(service *service.UserService) *UserHandler {
	return &UserHandler{Service: service}
}

func (h *UserHandler) PostUser(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.WriteError(w, apperror.NewInvariantError("Payload tidak valid"))
		return
	}
	if err := validateRegisterPayload(req); err != nil {
		web.WriteError(w, err)
		return
	}

	userID, err := h.Service.AddUser(req.Username, req.Password, req.Fullname)
	if err != nil {
		web.WriteError(w, err)
		return
	}

	web.WriteSuccess(w, http.StatusCreated, "User berhasil ditambahkan", map[string]any{
		"userId": userID,
	})
}

func (h *UserHandler) GetUserByID(w http.ResponseWriter, r *http.Request) {
	user, err := h.Service.GetUserByID(chi.URLParam(r, "id"))
	if err != nil {
		web.WriteError(w, err)
		return
	}

	web.WriteSuccess(w, http.StatusOK, "", map[string]any{
		"user": user,
	})
}

func (h *UserHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Service.GetUsersByUsername(r.URL.Query().Get("username"))
	if err != nil {
		web.WriteError(w, err)
		return
	}

	web.WriteSuccess(w, http.StatusOK, "", map[string]any{
		"users": users,
	})
}

func validateRegisterPayload(req model.RegisterRequest) error {
	if req.Username == "" {
		return apperror.NewInvariantError("\"username\" is required")
	}
	if req.Password == "" {
		return apperror.NewInvariantError("\"password\" is required")
	}
	if req.Fullname == "" {
		return apperror.NewInvariantError("\"fullname\" is required")
	}
	return nil
}
