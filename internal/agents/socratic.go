package agents

import (
	"context"

	"github.com/tutormesh/tutormesh/internal/providers"
)

const socraticPrompt = "You are a Socratic Questioning Agent. Your goal is NOT to give the answer, " +
	"but to ask a guiding question that helps the user discover the answer themselves. " +
	"Based on the user's last message, formulate a single, thought-provoking question."

// Socratic asks guiding questions instead of giving answers.
type Socratic struct {
	caller
}

// NewSocratic creates the socratic agent.
func NewSocratic(router providers.Router, defaults Defaults) *Socratic {
	return &Socratic{caller{router: router, defaults: defaults}}
}

// Kind returns the agent kind.
func (a *Socratic) Kind() Kind {
	return KindSocratic
}

// Process produces exactly one guiding question and waits for the user.
func (a *Socratic) Process(ctx context.Context, input Input) (Output, error) {
	result := a.callProvider(ctx, socraticPrompt, input.Message, input.SelectedModel)

	return Output{
		Response:   result.Text,
		AgentName:  string(KindSocratic),
		Metadata:   annotate(nil, result),
		NextAction: ActionWaitForUser,
	}, nil
}
