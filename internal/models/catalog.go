// Package models provides the static catalog of supported generation models.
// The catalog is queryable without invoking any provider.
package models

// Provider identifies the backend family serving a model.
type Provider string

// Supported provider families.
const (
	ProviderGoogle Provider = "google"
	ProviderOpenAI Provider = "openai"
	ProviderLocal  Provider = "local"
)

// LocalResearchID is the identifier of the deterministic local mock model.
const LocalResearchID = "local-research"

// ModelMetadata describes a single generation model.
type ModelMetadata struct {
	ID            string   `json:"id"`
	Provider      Provider `json:"provider"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	ContextWindow int      `json:"context_window"`
}

var catalog = []ModelMetadata{
	{
		ID:            "gemini-pro",
		Provider:      ProviderGoogle,
		Name:          "Gemini Pro",
		Description:   "Google's capable generative model",
		ContextWindow: 32000,
	},
	{
		ID:            "gpt-4",
		Provider:      ProviderOpenAI,
		Name:          "GPT-4",
		Description:   "OpenAI's most capable model",
		ContextWindow: 8192,
	},
	{
		ID:            LocalResearchID,
		Provider:      ProviderLocal,
		Name:          "Local Research Model",
		Description:   "Deterministic local model for experimentation",
		ContextWindow: 4096,
	},
}

// Catalog returns the immutable list of supported models. Callers receive a
// copy so the catalog cannot be mutated after construction.
func Catalog() []ModelMetadata {
	result := make([]ModelMetadata, len(catalog))
	copy(result, catalog)
	return result
}
