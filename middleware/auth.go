package middleware

import (
	"context"
	"net/http"
	"strings"

	"catatanku/pkg/apperror"
	"catatanku/pkg/tokenize"
	"catatanku/pkg/web"
)

type contextKey string

const UserIDKey contextKey = "userID"

// Authenticate verifies the bearer access token and puts the caller's user
// id into the request context.
func Authenticate(tokens *tokenize.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == "" || tokenString == authHeader {
				web.WriteFail(w, http.StatusUnauthorized, "Missing authentication")
				return
			}

			userID, err := tokens.VerifyAccessToken(tokenString)
			if err != nil {
				web.WriteFail(w, apperror.StatusCode(err), err.Error())
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserID returns the authenticated caller's id from the request context.
func UserID(r *http.Request) string {
	userID, _ := r.Context().Value(UserIDKey).(string)
	return userID
}
