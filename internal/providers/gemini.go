package providers

import (
	"context"
	"fmt"
	"log/slog"

	"google.golang.org/genai"
)

type geminiBackend struct {
	client *genai.Client
}

func newGeminiBackend(apiKey string, logger *slog.Logger) *geminiBackend {
	if apiKey == "" {
		return &geminiBackend{}
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		// A broken client degrades to the placeholder path instead of
		// failing startup.
		logger.Warn("gemini client init failed", "error", err)
		return &geminiBackend{}
	}

	return &geminiBackend{client: client}
}

func (b *geminiBackend) generate(ctx context.Context, modelID, systemPrompt, userMessage string, temperature float64) Result {
	if b.client == nil {
		return degraded(ReasonMissingCredential, placeholder("Gemini", modelID, userMessage))
	}

	resp, err := b.client.Models.GenerateContent(ctx, modelID, genai.Text(userMessage), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
		Temperature:       genai.Ptr(float32(temperature)),
	})
	if err != nil {
		return degraded(ReasonProviderError, fmt.Sprintf("Gemini error: %s", err))
	}

	return ok(resp.Text())
}

// placeholder builds the deterministic no-credential response. It embeds the
// model id and the original user message so callers can exercise the full
// pipeline without live credentials.
func placeholder(provider, modelID, userMessage string) string {
	return fmt.Sprintf("[mock] %s credential not configured. Selected %s. Response to: %s", provider, modelID, userMessage)
}
