package memory

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/tutormesh/tutormesh/internal/routes"
	"github.com/tutormesh/tutormesh/pkg/handlers"
)

// Handler provides HTTP handlers for memory profile retrieval.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a new memory HTTP handler.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger,
	}
}

// Routes returns the route group configuration for memory endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/api/memory",
		Description: "Long-term memory profiles",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/{user_id}", Handler: h.Get},
		},
	}
}

// Get handles GET /api/memory/{user_id} to retrieve a user's profile.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(r.PathValue("user_id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	profile, err := h.sys.Profile(r.Context(), userID)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, profile)
}
