package sessions

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/tutormesh/tutormesh/internal/routes"
	"github.com/tutormesh/tutormesh/internal/users"
	"github.com/tutormesh/tutormesh/pkg/handlers"
	"github.com/tutormesh/tutormesh/pkg/pagination"
)

const defaultHistoryLimit = 50

// Handler provides HTTP handlers for listing sessions and reading message
// history.
type Handler struct {
	sys    System
	guard  users.GuardFunc
	pages  pagination.Config
	logger *slog.Logger
}

// NewHandler creates a new sessions HTTP handler.
func NewHandler(sys System, guard users.GuardFunc, pages pagination.Config, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		guard:  guard,
		pages:  pages,
		logger: logger,
	}
}

// Routes returns the route group configuration for session endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/api/sessions",
		Description: "Chat sessions and message history",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.guard(h.List)},
			{Method: "GET", Pattern: "/{session_id}/messages", Handler: h.guard(h.Messages)},
		},
	}
}

// List handles GET /api/sessions to return the authenticated user's sessions.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	user, ok := users.FromContext(r.Context())
	if !ok {
		handlers.RespondError(w, h.logger, http.StatusUnauthorized, errors.New("unauthorized"))
		return
	}

	page := pagination.PageRequestFromQuery(r.URL.Query(), h.pages)

	result, err := h.sys.List(r.Context(), user.ID, page)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Messages handles GET /api/sessions/{session_id}/messages to return recent
// messages in chronological order.
func (h *Handler) Messages(w http.ResponseWriter, r *http.Request) {
	user, ok := users.FromContext(r.Context())
	if !ok {
		handlers.RespondError(w, h.logger, http.StatusUnauthorized, errors.New("unauthorized"))
		return
	}

	sessionID, err := uuid.Parse(r.PathValue("session_id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	// Ownership check before reading history.
	if _, err := h.sys.Find(r.Context(), sessionID, user.ID); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	limit := defaultHistoryLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 {
			handlers.RespondError(w, h.logger, http.StatusBadRequest, errors.New("limit must be a positive integer"))
			return
		}
		limit = parsed
	}

	messages, err := h.sys.History(r.Context(), sessionID, limit)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}
	if messages == nil {
		messages = []Message{}
	}

	handlers.RespondJSON(w, http.StatusOK, messages)
}
