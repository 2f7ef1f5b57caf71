package models

import (
	"log/slog"
	"net/http"

	"github.com/tutormesh/tutormesh/internal/routes"
	"github.com/tutormesh/tutormesh/pkg/handlers"
)

// Handler provides HTTP handlers for the model catalog.
type Handler struct {
	defaultModel string
	logger       *slog.Logger
}

// NewHandler creates a new model catalog HTTP handler.
func NewHandler(defaultModel string, logger *slog.Logger) *Handler {
	return &Handler{
		defaultModel: defaultModel,
		logger:       logger,
	}
}

// Routes returns the route group configuration for model endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/api/models",
		Description: "Available generation models",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List},
			{Method: "GET", Pattern: "/current", Handler: h.Current},
		},
	}
}

// List handles GET /api/models to return the model catalog.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, Catalog())
}

// Current handles GET /api/models/current to return the configured default
// model.
func (h *Handler) Current(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, map[string]string{"current_model": h.defaultModel})
}
