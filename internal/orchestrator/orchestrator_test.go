package orchestrator_test

import (
	"context"
	"io"
	"log/slog"
	"slices"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/tutormesh/tutormesh/internal/agents"
	"github.com/tutormesh/tutormesh/internal/config"
	"github.com/tutormesh/tutormesh/internal/memory"
	"github.com/tutormesh/tutormesh/internal/orchestrator"
	"github.com/tutormesh/tutormesh/internal/providers"
	"github.com/tutormesh/tutormesh/internal/research"
)

type fakeMemoryStore struct {
	profiles map[uuid.UUID]memory.Profile
}

func newFakeMemoryStore() *fakeMemoryStore {
	return &fakeMemoryStore{profiles: make(map[uuid.UUID]memory.Profile)}
}

func (s *fakeMemoryStore) Profile(_ context.Context, userID uuid.UUID) (memory.Profile, error) {
	profile, ok := s.profiles[userID]
	if !ok {
		return memory.NewProfile(), nil
	}
	return profile, nil
}

func (s *fakeMemoryStore) UpdateProfile(_ context.Context, userID uuid.UUID, update map[string]any) (memory.Profile, error) {
	current, _ := s.Profile(context.Background(), userID)
	merged := memory.Merge(current, update)
	s.profiles[userID] = merged
	return merged, nil
}

func newTestOrchestrator(t *testing.T) orchestrator.System {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.ProvidersConfig{DefaultModel: "gemini-pro", Temperature: 0.7}
	router := providers.New(cfg, logger, research.NewLog())
	defaults := agents.Defaults{Model: cfg.DefaultModel, Temperature: cfg.Temperature}

	return orchestrator.New(logger,
		agents.NewDiagnosis(router, defaults),
		agents.NewExplanation(router, defaults),
		agents.NewSocratic(router, defaults),
		agents.NewAdaptation(router, defaults),
		agents.NewMemory(newFakeMemoryStore()),
	)
}

func TestRegisteredAgentsSorted(t *testing.T) {
	orch := newTestOrchestrator(t)

	got := orch.RegisteredAgents()
	want := []string{"adaptation", "diagnosis", "explanation", "memory", "socratic"}
	if !slices.Equal(got, want) {
		t.Errorf("RegisteredAgents() = %v, want %v", got, want)
	}
}

func TestRouteFallbackUnregisteredTarget(t *testing.T) {
	orch := newTestOrchestrator(t)

	tests := []struct {
		name   string
		target string
	}{
		{"unknown name", "general"},
		{"empty target", ""},
		{"suffixed name", "diagnosis_agent"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := agents.Input{
				UserID:  uuid.NewString(),
				Message: "hello",
				Context: agents.Context{TargetAgent: tt.target},
			}

			output, err := orch.Route(context.Background(), input)
			if err != nil {
				t.Fatalf("Route() error = %v", err)
			}

			if got, want := output.AgentName, orchestrator.FallbackName; got != want {
				t.Errorf("agent_name = %q, want %q", got, want)
			}
			if got, want := output.Metadata["status"], "fallback"; got != want {
				t.Errorf("metadata status = %v, want %v", got, want)
			}
			for _, name := range []string{"adaptation", "diagnosis", "explanation", "memory", "socratic"} {
				if !strings.Contains(output.Response, name) {
					t.Errorf("fallback response %q should list %q", output.Response, name)
				}
			}
		})
	}
}

func TestRouteDiagnosis(t *testing.T) {
	orch := newTestOrchestrator(t)

	input := agents.Input{
		UserID:  uuid.NewString(),
		Message: "I want to learn about Quantum Physics.",
		Context: agents.Context{TargetAgent: "diagnosis"},
	}

	output, err := orch.Route(context.Background(), input)
	if err != nil {
		t.Fatalf("Route() error = %v", err)
	}

	if got, want := output.AgentName, "diagnosis"; got != want {
		t.Errorf("agent_name = %q, want %q", got, want)
	}
	if got, want := output.NextAction, agents.ActionUpdateMemory; got != want {
		t.Errorf("next_action = %q, want %q", got, want)
	}
	if got, want := output.Metadata["type"], "diagnosis"; got != want {
		t.Errorf("metadata type = %v, want %v", got, want)
	}
	if output.Response == "" {
		t.Error("response should not be empty")
	}
}

func TestRouteMemoryStoreThenRetrieve(t *testing.T) {
	orch := newTestOrchestrator(t)
	userID := uuid.NewString()

	store := agents.Input{
		UserID: userID,
		Context: agents.Context{
			TargetAgent: "memory",
			Action:      agents.MemoryActionStore,
			Data: map[string]any{
				memory.KeyTopicsLearned: []any{"quantum physics"},
			},
		},
	}

	if _, err := orch.Route(context.Background(), store); err != nil {
		t.Fatalf("Route(store) error = %v", err)
	}

	retrieve := agents.Input{
		UserID:  userID,
		Context: agents.Context{TargetAgent: "memory", Action: agents.MemoryActionRetrieve},
	}

	output, err := orch.Route(context.Background(), retrieve)
	if err != nil {
		t.Fatalf("Route(retrieve) error = %v", err)
	}

	profile, ok := output.Metadata["memory"].(memory.Profile)
	if !ok {
		t.Fatalf("metadata memory = %T, want memory.Profile", output.Metadata["memory"])
	}
	if got, want := profile.TopicsLearned(), []string{"quantum physics"}; !slices.Equal(got, want) {
		t.Errorf("topics_learned = %v, want %v", got, want)
	}
}

func TestRouteMemoryInvalidUser(t *testing.T) {
	orch := newTestOrchestrator(t)

	input := agents.Input{
		UserID:  "not-a-uuid",
		Context: agents.Context{TargetAgent: "memory"},
	}

	if _, err := orch.Route(context.Background(), input); err == nil {
		t.Fatal("Route() should fail for an invalid user id")
	}
}
