// Package orchestrator dispatches request envelopes to registered agents.
// The registry is built once at startup and never mutated, so concurrent
// dispatch requires no synchronization.
package orchestrator

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/tutormesh/tutormesh/internal/agents"
)

// FallbackName identifies outputs produced by the orchestrator itself when no
// agent matches the requested target.
const FallbackName = "orchestrator"

// System dispatches envelopes to the agent named in the request context.
type System interface {
	// Route delegates to the agent named by context.target_agent. A missing
	// or unregistered target yields the deterministic fallback output, never
	// an error.
	Route(ctx context.Context, input agents.Input) (agents.Output, error)

	// RegisteredAgents returns the sorted names of all registered agents.
	RegisteredAgents() []string
}

type orchestrator struct {
	registry map[agents.Kind]agents.Agent
	names    []string
	logger   *slog.Logger
}

// New builds the dispatch registry from the provided agents.
func New(logger *slog.Logger, registered ...agents.Agent) System {
	registry := make(map[agents.Kind]agents.Agent, len(registered))
	names := make([]string, 0, len(registered))

	for _, agent := range registered {
		registry[agent.Kind()] = agent
		names = append(names, string(agent.Kind()))
	}
	sort.Strings(names)

	return &orchestrator{
		registry: registry,
		names:    names,
		logger:   logger.With("system", "orchestrator"),
	}
}

func (o *orchestrator) Route(ctx context.Context, input agents.Input) (agents.Output, error) {
	target := input.Context.TargetAgent

	if kind, ok := agents.ParseKind(target); ok {
		if agent, exists := o.registry[kind]; exists {
			o.logger.Debug("dispatching", "agent", target, "user_id", input.UserID)
			return agent.Process(ctx, input)
		}
	}

	o.logger.Debug("fallback", "target", target)
	return o.fallback(target), nil
}

func (o *orchestrator) RegisteredAgents() []string {
	names := make([]string, len(o.names))
	copy(names, o.names)
	return names
}

// fallback is a diagnostic contract: the response enumerates every registered
// agent name so clients can discover valid targets.
func (o *orchestrator) fallback(target string) agents.Output {
	return agents.Output{
		Response: fmt.Sprintf(
			"Orchestrator: no agent registered for %q. Available: [%s]",
			target, strings.Join(o.names, ", "),
		),
		AgentName: FallbackName,
		Metadata:  map[string]any{"status": "fallback"},
	}
}
