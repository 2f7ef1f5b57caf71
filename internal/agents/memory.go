package agents

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/tutormesh/tutormesh/internal/memory"
)

// Memory agent actions.
const (
	MemoryActionRetrieve = "retrieve"
	MemoryActionStore    = "store"
)

// Memory reads and writes the durable per-user learning profile. It is the
// only agent holding a persistence collaborator and makes no provider calls.
type Memory struct {
	store memory.System
}

// NewMemory creates the memory agent.
func NewMemory(store memory.System) *Memory {
	return &Memory{store: store}
}

// Kind returns the agent kind.
func (a *Memory) Kind() Kind {
	return KindMemory
}

// Process executes the context action: retrieve returns the stored profile,
// store merges context data into it. Unrecognized actions produce an
// informational output with no side effect so malformed context cannot break
// orchestration.
func (a *Memory) Process(ctx context.Context, input Input) (Output, error) {
	action := input.Context.Action
	if action == "" {
		action = MemoryActionRetrieve
	}

	switch action {
	case MemoryActionRetrieve:
		return a.retrieve(ctx, input)
	case MemoryActionStore:
		return a.storeUpdate(ctx, input)
	default:
		return Output{
			Response:  fmt.Sprintf("Unknown memory action %q.", action),
			AgentName: string(KindMemory),
			Metadata:  map[string]any{"status": "unknown_action"},
		}, nil
	}
}

func (a *Memory) retrieve(ctx context.Context, input Input) (Output, error) {
	userID, err := uuid.Parse(input.UserID)
	if err != nil {
		return Output{}, fmt.Errorf("invalid user id %q: %w", input.UserID, err)
	}

	profile, err := a.store.Profile(ctx, userID)
	if err != nil {
		return Output{}, err
	}

	return Output{
		Response:  "Memory retrieved successfully.",
		AgentName: string(KindMemory),
		Metadata:  map[string]any{"memory": profile},
	}, nil
}

func (a *Memory) storeUpdate(ctx context.Context, input Input) (Output, error) {
	userID, err := uuid.Parse(input.UserID)
	if err != nil {
		return Output{}, fmt.Errorf("invalid user id %q: %w", input.UserID, err)
	}

	update := input.Context.Data
	if update == nil {
		update = map[string]any{}
	}

	if _, err := a.store.UpdateProfile(ctx, userID, update); err != nil {
		return Output{}, err
	}

	return Output{
		Response:  "Memory updated successfully.",
		AgentName: string(KindMemory),
	}, nil
}
