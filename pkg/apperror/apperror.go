// Package apperror defines the client-facing error taxonomy. Every error a
// request can trigger carries an HTTP status code and a message; anything
// else is treated as a server error by the boundary.
package apperror

import (
	"errors"
	"net/http"
)

type ClientError struct {
	StatusCode int
	Message    string
}

func (e *ClientError) Error() string {
	return e.Message
}

// NewInvariantError reports a business-rule violation (duplicate username,
// failed insert, invalid token).
func NewInvariantError(message string) *ClientError {
	return &ClientError{StatusCode: http.StatusBadRequest, Message: message}
}

func NewAuthenticationError(message string) *ClientError {
	return &ClientError{StatusCode: http.StatusUnauthorized, Message: message}
}

func NewAuthorizationError(message string) *ClientError {
	return &ClientError{StatusCode: http.StatusForbidden, Message: message}
}

func NewNotFoundError(message string) *ClientError {
	return &ClientError{StatusCode: http.StatusNotFound, Message: message}
}

// FromError unwraps err into a *ClientError if it is one.
func FromError(err error) (*ClientError, bool) {
	var ce *ClientError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}

// StatusCode maps err to its HTTP status. Errors outside the taxonomy map
// to 500.
func StatusCode(err error) int {
	if ce, ok := FromError(err); ok {
		return ce.StatusCode
	}
	return http.StatusInternalServerError
}

func IsNotFound(err error) bool {
	ce, ok := FromError(err)
	return ok && ce.StatusCode == http.StatusNotFound
}

func IsAuthorization(err error) bool {
	ce, ok := FromError(err)
	return ok && ce.StatusCode == http.StatusForbidden
}
