package agents

import (
	"context"
	"fmt"

	"github.com/tutormesh/tutormesh/internal/providers"
)

// Kind identifies a registered agent. The set is closed; routing validates
// incoming names against it.
type Kind string

// Registered agent kinds.
const (
	KindDiagnosis   Kind = "diagnosis"
	KindExplanation Kind = "explanation"
	KindSocratic    Kind = "socratic"
	KindMemory      Kind = "memory"
	KindAdaptation  Kind = "adaptation"
)

// Kinds returns all registered agent kinds.
func Kinds() []Kind {
	return []Kind{KindDiagnosis, KindExplanation, KindSocratic, KindMemory, KindAdaptation}
}

// ParseKind validates a raw agent name against the closed kind set.
func ParseKind(name string) (Kind, bool) {
	switch Kind(name) {
	case KindDiagnosis, KindExplanation, KindSocratic, KindMemory, KindAdaptation:
		return Kind(name), true
	default:
		return "", false
	}
}

// Agent is the contract every handler implements: build a role-specific
// prompt from the envelope and produce an output envelope. Process returns an
// error only for resource failures outside the dispatch core (persistence);
// provider and routing conditions surface as ordinary outputs.
type Agent interface {
	Kind() Kind
	Process(ctx context.Context, input Input) (Output, error)
}

// Defaults carries the process-wide generation defaults shared by all agents.
type Defaults struct {
	Model       string
	Temperature float64
}

// caller is the shared provider-invocation helper embedded by agents that
// generate text.
type caller struct {
	router   providers.Router
	defaults Defaults
}

// callProvider resolves an unset model id to the configured default and
// forwards to the provider router. An unresolvable model id is absorbed into
// a degraded result so it stays contained within the generation call.
func (c *caller) callProvider(ctx context.Context, systemPrompt, userMessage, modelID string) providers.Result {
	if modelID == "" {
		modelID = c.defaults.Model
	}

	result, err := c.router.Generate(ctx, modelID, systemPrompt, userMessage, c.defaults.Temperature)
	if err != nil {
		return providers.Result{
			Text:     fmt.Sprintf("Cannot generate a response: %s.", err),
			Degraded: true,
			Reason:   providers.ReasonUnknownModel,
		}
	}
	return result
}

// annotate records the degradation reason in output metadata so callers can
// distinguish live text from fallback text.
func annotate(metadata map[string]any, result providers.Result) map[string]any {
	if !result.Degraded {
		return metadata
	}
	if metadata == nil {
		metadata = make(map[string]any)
	}
	metadata["degraded"] = string(result.Reason)
	return metadata
}
