package agents

import (
	"context"

	"github.com/tutormesh/tutormesh/internal/providers"
)

const diagnosisPrompt = "You are a Learning Diagnosis Agent. Your goal is to assess the user's " +
	"understanding of the current topic. Analyze their input and categorize " +
	"their knowledge level as: Beginner, Intermediate, or Advanced. " +
	"Also provide a brief reasoning.\n\n" +
	"Output format:\n" +
	"Level: [Level]\n" +
	"Reasoning: [Reasoning]"

// Diagnosis assesses the user's knowledge level on the current topic.
type Diagnosis struct {
	caller
}

// NewDiagnosis creates the diagnosis agent.
func NewDiagnosis(router providers.Router, defaults Defaults) *Diagnosis {
	return &Diagnosis{caller{router: router, defaults: defaults}}
}

// Kind returns the agent kind.
func (a *Diagnosis) Kind() Kind {
	return KindDiagnosis
}

// Process classifies the user's knowledge level and proposes a memory update
// as the follow-up action.
func (a *Diagnosis) Process(ctx context.Context, input Input) (Output, error) {
	result := a.callProvider(ctx, diagnosisPrompt, input.Message, input.SelectedModel)

	return Output{
		Response:   result.Text,
		AgentName:  string(KindDiagnosis),
		Metadata:   annotate(map[string]any{"type": "diagnosis"}, result),
		NextAction: ActionUpdateMemory,
	}, nil
}
