package sessions

import (
	"errors"
	"net/http"
)

// Domain errors for session operations.
var (
	ErrNotFound    = errors.New("session not found")
	ErrInvalidRole = errors.New("invalid message role")
)

// MapHTTPStatus maps domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrInvalidRole) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
