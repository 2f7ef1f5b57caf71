package auth

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/tutormesh/tutormesh/internal/users"
	"github.com/tutormesh/tutormesh/pkg/handlers"
)

// ErrUnauthorized indicates a request without a valid bearer token.
var ErrUnauthorized = errors.New("unauthorized")

// Guard authenticates requests by resolving the bearer token to an active
// user.
type Guard struct {
	issuer *Issuer
	users  users.System
	logger *slog.Logger
}

// NewGuard creates a request guard.
func NewGuard(issuer *Issuer, users users.System, logger *slog.Logger) *Guard {
	return &Guard{
		issuer: issuer,
		users:  users,
		logger: logger.With("system", "auth"),
	}
}

// Wrap returns a handler that requires a valid bearer token and stores the
// authenticated user in the request context before calling next.
func (g *Guard) Wrap(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := g.authenticate(r)
		if err != nil {
			w.Header().Set("WWW-Authenticate", "Bearer")
			handlers.RespondError(w, g.logger, http.StatusUnauthorized, err)
			return
		}

		next(w, r.WithContext(users.NewContext(r.Context(), user)))
	}
}

func (g *Guard) authenticate(r *http.Request) (*users.User, error) {
	header := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		return nil, ErrUnauthorized
	}

	userID, err := g.issuer.Verify(token)
	if err != nil {
		return nil, ErrUnauthorized
	}

	user, err := g.users.Find(r.Context(), userID)
	if err != nil {
		return nil, ErrUnauthorized
	}
	if !user.IsActive {
		return nil, ErrUnauthorized
	}
	return user, nil
}
