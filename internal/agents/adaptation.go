package agents

import (
	"context"
	"fmt"

	"github.com/tutormesh/tutormesh/internal/providers"
)

// Adaptation adjusts the learning strategy based on recorded progress.
type Adaptation struct {
	caller
}

// NewAdaptation creates the adaptation agent.
func NewAdaptation(router providers.Router, defaults Defaults) *Adaptation {
	return &Adaptation{caller{router: router, defaults: defaults}}
}

// Kind returns the agent kind.
func (a *Adaptation) Kind() Kind {
	return KindAdaptation
}

// Process chooses a strategy adjustment from a fixed set and proposes
// notifying the user as the follow-up action.
func (a *Adaptation) Process(ctx context.Context, input Input) (Output, error) {
	progress := input.Context.Progress
	if progress == nil {
		progress = map[string]any{}
	}

	systemPrompt := fmt.Sprintf(
		"You are an Adaptation Strategy Agent. Analyze the user's progress: %v. "+
			"Suggest a learning strategy adjustment. "+
			"Options: 'Increase Difficulty', 'Decrease Difficulty', 'Switch to Visuals', 'Maintain Pace'.",
		progress,
	)

	result := a.callProvider(ctx, systemPrompt, "Analyze my progress and adapt.", input.SelectedModel)

	return Output{
		Response:   result.Text,
		AgentName:  string(KindAdaptation),
		Metadata:   annotate(nil, result),
		NextAction: ActionNotifyUser,
	}, nil
}
