package users

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/tutormesh/tutormesh/internal/routes"
	"github.com/tutormesh/tutormesh/pkg/handlers"
)

// GuardFunc wraps a handler with request authentication. It is satisfied by
// the auth guard without this package depending on it.
type GuardFunc func(http.HandlerFunc) http.HandlerFunc

// Handler provides HTTP handlers for the authenticated user's profile.
type Handler struct {
	sys    System
	guard  GuardFunc
	logger *slog.Logger
}

// NewHandler creates a new profile HTTP handler.
func NewHandler(sys System, guard GuardFunc, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		guard:  guard,
		logger: logger,
	}
}

// Routes returns the route group configuration for profile endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/api/profile",
		Description: "Authenticated user profile and preferences",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.guard(h.Get)},
			{Method: "PUT", Pattern: "", Handler: h.guard(h.UpdatePreferences)},
		},
	}
}

// Get handles GET /api/profile to return the authenticated user.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	user, ok := FromContext(r.Context())
	if !ok {
		handlers.RespondError(w, h.logger, http.StatusUnauthorized, errors.New("unauthorized"))
		return
	}

	handlers.RespondJSON(w, http.StatusOK, user)
}

// UpdatePreferences handles PUT /api/profile to merge preference keys into
// the stored preferences.
func (h *Handler) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	user, ok := FromContext(r.Context())
	if !ok {
		handlers.RespondError(w, h.logger, http.StatusUnauthorized, errors.New("unauthorized"))
		return
	}

	var prefs map[string]any
	if err := json.NewDecoder(r.Body).Decode(&prefs); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	updated, err := h.sys.UpdatePreferences(r.Context(), user.ID, prefs)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, updated)
}
