package handler

import (
	"encoding/json"
	"net/http"

	"catatanku/internal/authentication/model"
	"catatanku/internal/authentication/service"
	"catatanku/pkg/apperror"
	"catatanku/pkg/web"
)

type AuthenticationHandler struct {
	Service *service.AuthenticationService
}

func NewAuthenticationHandler(service *service.AuthenticationService) *AuthenticationHandler {
	return &AuthenticationHandler{Service: service}
}

func (h *AuthenticationHandler) PostAuthentication(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.WriteError(w, apperror.NewInvariantError("Payload tidak valid"))
		return
	}
	if req.Username == "" {
		web.WriteError(w, apperror.NewInvariantError("\"username\" is required"))
		return
	}
	if req.Password == "" {
		web.WriteError(w, apperror.NewInvariantError("\"password\" is required"))
		return
	}

	tokens, err := h.Service.Login(req.Username, req.Password)
	if err != nil {
		web.WriteError(w, err)
		return
	}

	web.WriteSuccess(w, http.StatusCreated, "Authentication berhasil ditambahkan", tokens)
}

func (h *AuthenticationHandler) PutAuthentication(w http.ResponseWriter, r *http.Request) {
	refreshToken, err := decodeRefreshTokenPayload(r)
	if err != nil {
		web.WriteError(w, err)
		return
	}

	accessToken, err := h.Service.RefreshAccessToken(refreshToken)
	if err != nil {
		web.WriteError(w, err)
		return
	}

	web.WriteSuccess(w, http.StatusOK, "Access Token berhasil diperbarui", map[string]any{
		"accessToken": accessToken,
	})
}

func (h *AuthenticationHandler) DeleteAuthentication(w http.ResponseWriter, r *http.Request) {
	refreshToken, err := decodeRefreshTokenPayload(r)
	if err != nil {
		web.WriteError(w, err)
		return
	}

	if err := h.Service.Logout(refreshToken); err != nil {
		web.WriteError(w, err)
		return
	}

	web.WriteSuccess(w, http.StatusOK, "Refresh token berhasil dihapus", nil)
}

func decodeRefreshTokenPayload(r *http.Request) (string, error) {
	var req model.RefreshTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return "", apperror.NewInvariantError("Payload tidak valid")
	}
	if req.RefreshToken == "" {
		return "", apperror.NewInvariantError("\"refreshToken\" is required")
	}
	return req.RefreshToken, nil
}
