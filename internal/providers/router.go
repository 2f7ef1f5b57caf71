// Package providers abstracts interchangeable text-generation backends behind
// a single call signature. Model identifiers resolve to backends by prefix;
// backends degrade to deterministic placeholders when unconfigured so the
// full pipeline can run without live credentials.
package providers

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/tutormesh/tutormesh/internal/config"
	"github.com/tutormesh/tutormesh/internal/models"
	"github.com/tutormesh/tutormesh/internal/research"
)

// Router resolves model identifiers to concrete backends and executes
// generation calls against them.
type Router interface {
	// AvailableModels returns the static model catalog without invoking any
	// backend.
	AvailableModels() []models.ModelMetadata

	// Generate produces text for the given model id. Backend failures and
	// missing credentials surface as degraded Results; the only error
	// returned is ErrUnknownModel for an unresolvable id.
	Generate(ctx context.Context, modelID, systemPrompt, userMessage string, temperature float64) (Result, error)
}

type backend interface {
	generate(ctx context.Context, modelID, systemPrompt, userMessage string, temperature float64) Result
}

type router struct {
	gemini backend
	openai backend
	local  backend
	logger *slog.Logger
	rlog   *research.Log
}

// New creates a Router from the provider configuration. Backends whose
// credentials are absent are still constructed; they respond with placeholder
// results instead of failing.
func New(cfg *config.ProvidersConfig, logger *slog.Logger, rlog *research.Log) Router {
	logger = logger.With("system", "providers")

	return &router{
		gemini: newGeminiBackend(cfg.GeminiAPIKey, logger),
		openai: newOpenAIBackend(cfg.OpenAIAPIKey),
		local:  newLocalBackend(),
		logger: logger,
		rlog:   rlog,
	}
}

func (r *router) AvailableModels() []models.ModelMetadata {
	return models.Catalog()
}

func (r *router) Generate(ctx context.Context, modelID, systemPrompt, userMessage string, temperature float64) (Result, error) {
	var result Result

	switch {
	case strings.HasPrefix(modelID, "gemini"):
		result = r.gemini.generate(ctx, modelID, systemPrompt, userMessage, temperature)
	case strings.HasPrefix(modelID, "gpt"):
		result = r.openai.generate(ctx, modelID, systemPrompt, userMessage, temperature)
	case modelID == models.LocalResearchID:
		result = r.local.generate(ctx, modelID, systemPrompt, userMessage, temperature)
	default:
		return Result{}, fmt.Errorf("%w: %s", ErrUnknownModel, modelID)
	}

	if result.Degraded {
		r.logger.Warn("generation degraded", "model", modelID, "reason", result.Reason)
	}

	r.rlog.Record("generation", map[string]any{
		"model":    modelID,
		"degraded": result.Degraded,
	})

	return result, nil
}
