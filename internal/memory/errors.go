package memory

import (
	"errors"
	"net/http"
)

// Domain errors for memory operations.
var (
	ErrUserNotFound = errors.New("user not found")
)

// MapHTTPStatus maps domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrUserNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
