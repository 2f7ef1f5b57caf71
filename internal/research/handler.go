package research

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/tutormesh/tutormesh/internal/routes"
	"github.com/tutormesh/tutormesh/pkg/handlers"
)

// Comparison summarizes observed model quality and latency for research mode.
type Comparison struct {
	Model        string  `json:"model"`
	QualityScore float64 `json:"quality_score"`
	AvgLatencyMS int     `json:"avg_latency_ms"`
}

// comparisons is a static baseline until enough events accumulate to compute
// live figures.
var comparisons = []Comparison{
	{Model: "gemini-pro", QualityScore: 0.85, AvgLatencyMS: 1200},
	{Model: "gpt-4", QualityScore: 0.92, AvgLatencyMS: 2500},
	{Model: "local-research", QualityScore: 0.60, AvgLatencyMS: 400},
}

type enableRequest struct {
	Enabled bool `json:"enabled"`
}

// Handler provides HTTP handlers for research mode control and inspection.
type Handler struct {
	log    *Log
	logger *slog.Logger
}

// NewHandler creates a new research HTTP handler.
func NewHandler(log *Log, logger *slog.Logger) *Handler {
	return &Handler{
		log:    log,
		logger: logger,
	}
}

// Routes returns the route group configuration for research endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/api/research",
		Description: "Research mode toggles, logs, and model comparison",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "/enable", Handler: h.Enable},
			{Method: "GET", Pattern: "/logs", Handler: h.Logs},
			{Method: "GET", Pattern: "/compare", Handler: h.Compare},
		},
	}
}

// Enable handles POST /api/research/enable to toggle event recording.
func (h *Handler) Enable(w http.ResponseWriter, r *http.Request) {
	var req enableRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	h.log.SetEnabled(req.Enabled)
	h.logger.Info("research mode toggled", "enabled", req.Enabled)

	handlers.RespondJSON(w, http.StatusOK, map[string]bool{"enabled": req.Enabled})
}

// Logs handles GET /api/research/logs to return recorded events.
func (h *Handler) Logs(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, map[string]any{
		"enabled": h.log.Enabled(),
		"logs":    h.log.Events(),
	})
}

// Compare handles GET /api/research/compare to return model comparison
// figures.
func (h *Handler) Compare(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, comparisons)
}
