package providers

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
)

type openaiBackend struct {
	client     openai.Client
	configured bool
}

func newOpenAIBackend(apiKey string) *openaiBackend {
	if apiKey == "" {
		return &openaiBackend{}
	}

	return &openaiBackend{
		client:     openai.NewClient(option.WithAPIKey(apiKey)),
		configured: true,
	}
}

func (b *openaiBackend) generate(ctx context.Context, modelID, systemPrompt, userMessage string, temperature float64) Result {
	if !b.configured {
		return degraded(ReasonMissingCredential, placeholder("OpenAI", modelID, userMessage))
	}

	completion, err := b.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: shared.ChatModel(modelID),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userMessage),
		},
		Temperature: openai.Float(temperature),
	})
	if err != nil {
		return degraded(ReasonProviderError, fmt.Sprintf("OpenAI error: %s", err))
	}

	if len(completion.Choices) == 0 {
		return degraded(ReasonProviderError, fmt.Sprintf("OpenAI error: empty completion for %s", modelID))
	}

	return ok(completion.Choices[0].Message.Content)
}
