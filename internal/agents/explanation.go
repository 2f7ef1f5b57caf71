package agents

import (
	"context"
	"fmt"

	"github.com/tutormesh/tutormesh/internal/providers"
)

// DefaultUserLevel is assumed when the context does not carry a level.
const DefaultUserLevel = "Beginner"

// Explanation explains concepts tailored to the user's level.
type Explanation struct {
	caller
}

// NewExplanation creates the explanation agent.
func NewExplanation(router providers.Router, defaults Defaults) *Explanation {
	return &Explanation{caller{router: router, defaults: defaults}}
}

// Kind returns the agent kind.
func (a *Explanation) Kind() Kind {
	return KindExplanation
}

// Process explains the requested concept at the user's level and proposes an
// understanding check as the follow-up action.
func (a *Explanation) Process(ctx context.Context, input Input) (Output, error) {
	userLevel := input.Context.UserLevel
	if userLevel == "" {
		userLevel = DefaultUserLevel
	}

	systemPrompt := fmt.Sprintf(
		"You are a Concept Explanation Agent. The user is at the '%s' level. "+
			"Provide a clear, accurate, and engaging explanation of the concept requested. "+
			"Use analogies suitable for their level. "+
			"Avoid jargon unless explained.",
		userLevel,
	)

	result := a.callProvider(ctx, systemPrompt, input.Message, input.SelectedModel)

	return Output{
		Response:   result.Text,
		AgentName:  string(KindExplanation),
		Metadata:   annotate(map[string]any{"user_level": userLevel}, result),
		NextAction: ActionCheckUnderstanding,
	}, nil
}
