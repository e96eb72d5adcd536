// Package web shapes every HTTP response into the common envelope
// {status, message, data}.
package web

import (
	"encoding/json"
	"net/http"

	"catatanku/pkg/apperror"
	"catatanku/pkg/logger"
)

type Envelope struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func writeJSON(w http.ResponseWriter, code int, body Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Sugar.Errorf("Failed to write response: %v", err)
	}
}

func WriteSuccess(w http.ResponseWriter, code int, message string, data any) {
	writeJSON(w, code, Envelope{Status: "success", Message: message, Data: data})
}

func WriteFail(w http.ResponseWriter, code int, message string) {
	writeJSON(w, code, Envelope{Status: "fail", Message: message})
}

// WriteError maps a client error to its status with status "fail". Anything
// outside the taxonomy becomes a 500 with a generic message; the real error
// is only logged server-side.
func WriteError(w http.ResponseWriter, err error) {
	if ce, ok := apperror.FromError(err); ok {
		WriteFail(w, ce.StatusCode, ce.Message)
		return
	}
	logger.Sugar.Errorf("Unhandled server error: %v", err)
	writeJSON(w, http.StatusInternalServerError, Envelope{
		Status:  "error",
		Message: "Maaf, terjadi kegagalan pada server kami.",
	})
}
