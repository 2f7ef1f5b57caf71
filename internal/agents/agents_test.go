package agents_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/tutormesh/tutormesh/internal/agents"
	"github.com/tutormesh/tutormesh/internal/memory"
	"github.com/tutormesh/tutormesh/internal/models"
	"github.com/tutormesh/tutormesh/internal/providers"
)

// stubRouter captures generation calls and returns a canned result.
type stubRouter struct {
	lastModel  string
	lastSystem string
	lastUser   string
	result     providers.Result
	err        error
}

func (s *stubRouter) AvailableModels() []models.ModelMetadata {
	return models.Catalog()
}

func (s *stubRouter) Generate(_ context.Context, modelID, systemPrompt, userMessage string, _ float64) (providers.Result, error) {
	s.lastModel = modelID
	s.lastSystem = systemPrompt
	s.lastUser = userMessage
	if s.err != nil {
		return providers.Result{}, s.err
	}
	return s.result, nil
}

var testDefaults = agents.Defaults{Model: "gemini-pro", Temperature: 0.7}

func TestDiagnosisOutput(t *testing.T) {
	router := &stubRouter{result: providers.Result{Text: "Level: Beginner\nReasoning: new topic"}}
	agent := agents.NewDiagnosis(router, testDefaults)

	output, err := agent.Process(context.Background(), agents.Input{Message: "what is a qubit?"})
	if err != nil {
		t.Fatalf("Process() error = %v", err)
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
	if got, want := router.lastUser, "what is a qubit?"; got != want {
		t.Errorf("user message = %q, want %q", got, want)
	}
	if !strings.Contains(router.lastSystem, "Learning Diagnosis Agent") {
		t.Errorf("system prompt %q should describe the diagnosis role", router.lastSystem)
	}
}

func TestDiagnosisDefaultModel(t *testing.T) {
	router := &stubRouter{result: providers.Result{Text: "ok"}}
	agent := agents.NewDiagnosis(router, testDefaults)

	if _, err := agent.Process(context.Background(), agents.Input{Message: "hi"}); err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if got, want := router.lastModel, "gemini-pro"; got != want {
		t.Errorf("model = %q, want %q", got, want)
	}

	input := agents.Input{Message: "hi", SelectedModel: "gpt-4"}
	if _, err := agent.Process(context.Background(), input); err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if got, want := router.lastModel, "gpt-4"; got != want {
		t.Errorf("model = %q, want %q", got, want)
	}
}

func TestDiagnosisAbsorbsUnknownModel(t *testing.T) {
	router := &stubRouter{err: fmt.Errorf("%w: claude-3", providers.ErrUnknownModel)}
	agent := agents.NewDiagnosis(router, testDefaults)

	output, err := agent.Process(context.Background(), agents.Input{
		Message:       "hi",
		SelectedModel: "claude-3",
	})
	if err != nil {
		t.Fatalf("Process() error = %v, want contained output", err)
	}

	if !strings.Contains(output.Response, "Cannot generate a response") {
		t.Errorf("response %q should explain the failure", output.Response)
	}
	if got, want := output.Metadata["degraded"], string(providers.ReasonUnknownModel); got != want {
		t.Errorf("metadata degraded = %v, want %v", got, want)
	}
}

func TestExplanationUserLevel(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		wantLevel string
	}{
		{"default level", "", "Beginner"},
		{"explicit level", "Advanced", "Advanced"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := &stubRouter{result: providers.Result{Text: "here you go"}}
			agent := agents.NewExplanation(router, testDefaults)

			output, err := agent.Process(context.Background(), agents.Input{
				Message: "explain entropy",
				Context: agents.Context{UserLevel: tt.level},
			})
			if err != nil {
				t.Fatalf("Process() error = %v", err)
			}

			if !strings.Contains(router.lastSystem, fmt.Sprintf("'%s'", tt.wantLevel)) {
				t.Errorf("system prompt %q should carry level %q", router.lastSystem, tt.wantLevel)
			}
			if got, want := output.Metadata["user_level"], tt.wantLevel; got != want {
				t.Errorf("metadata user_level = %v, want %v", got, want)
			}
			if got, want := output.NextAction, agents.ActionCheckUnderstanding; got != want {
				t.Errorf("next_action = %q, want %q", got, want)
			}
		})
	}
}

func TestSocraticOutput(t *testing.T) {
	router := &stubRouter{result: providers.Result{Text: "What do you think happens when...?"}}
	agent := agents.NewSocratic(router, testDefaults)

	output, err := agent.Process(context.Background(), agents.Input{Message: "tell me the answer"})
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	if got, want := output.AgentName, "socratic"; got != want {
		t.Errorf("agent_name = %q, want %q", got, want)
	}
	if got, want := output.NextAction, agents.ActionWaitForUser; got != want {
		t.Errorf("next_action = %q, want %q", got, want)
	}
	if !strings.Contains(router.lastSystem, "NOT to give the answer") {
		t.Errorf("system prompt %q should describe the socratic role", router.lastSystem)
	}
}

func TestAdaptationProgress(t *testing.T) {
	router := &stubRouter{result: providers.Result{Text: "Maintain Pace"}}
	agent := agents.NewAdaptation(router, testDefaults)

	output, err := agent.Process(context.Background(), agents.Input{
		Context: agents.Context{Progress: map[string]any{"algebra": 0.9}},
	})
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	if !strings.Contains(router.lastSystem, "algebra:0.9") {
		t.Errorf("system prompt %q should embed the progress map", router.lastSystem)
	}
	if got, want := router.lastUser, "Analyze my progress and adapt."; got != want {
		t.Errorf("user message = %q, want %q", got, want)
	}
	if got, want := output.NextAction, agents.ActionNotifyUser; got != want {
		t.Errorf("next_action = %q, want %q", got, want)
	}
}

func TestAdaptationDefaultProgress(t *testing.T) {
	router := &stubRouter{result: providers.Result{Text: "Maintain Pace"}}
	agent := agents.NewAdaptation(router, testDefaults)

	if _, err := agent.Process(context.Background(), agents.Input{}); err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	if !strings.Contains(router.lastSystem, "map[]") {
		t.Errorf("system prompt %q should embed an empty progress map", router.lastSystem)
	}
}

type fakeStore struct {
	profiles map[uuid.UUID]memory.Profile
	updates  int
}

func (s *fakeStore) Profile(_ context.Context, userID uuid.UUID) (memory.Profile, error) {
	if profile, ok := s.profiles[userID]; ok {
		return profile, nil
	}
	return memory.NewProfile(), nil
}

func (s *fakeStore) UpdateProfile(_ context.Context, userID uuid.UUID, update map[string]any) (memory.Profile, error) {
	s.updates++
	merged := memory.Merge(memory.NewProfile(), update)
	s.profiles[userID] = merged
	return merged, nil
}

func TestMemoryAgentActions(t *testing.T) {
	userID := uuid.New()

	t.Run("default action retrieves", func(t *testing.T) {
		store := &fakeStore{profiles: map[uuid.UUID]memory.Profile{}}
		agent := agents.NewMemory(store)

		output, err := agent.Process(context.Background(), agents.Input{UserID: userID.String()})
		if err != nil {
			t.Fatalf("Process() error = %v", err)
		}

		if got, want := output.Response, "Memory retrieved successfully."; got != want {
			t.Errorf("response = %q, want %q", got, want)
		}
		if _, ok := output.Metadata["memory"].(memory.Profile); !ok {
			t.Errorf("metadata memory = %T, want memory.Profile", output.Metadata["memory"])
		}
		if store.updates != 0 {
			t.Errorf("updates = %d, retrieve must not write", store.updates)
		}
	})

	t.Run("store merges data", func(t *testing.T) {
		store := &fakeStore{profiles: map[uuid.UUID]memory.Profile{}}
		agent := agents.NewMemory(store)

		input := agents.Input{
			UserID: userID.String(),
			Context: agents.Context{
				Action: agents.MemoryActionStore,
				Data:   map[string]any{"topics_learned": []any{"entropy"}},
			},
		}

		output, err := agent.Process(context.Background(), input)
		if err != nil {
			t.Fatalf("Process() error = %v", err)
		}

		if got, want := output.Response, "Memory updated successfully."; got != want {
			t.Errorf("response = %q, want %q", got, want)
		}
		if store.updates != 1 {
			t.Errorf("updates = %d, want 1", store.updates)
		}
	})

	t.Run("unknown action has no side effect", func(t *testing.T) {
		store := &fakeStore{profiles: map[uuid.UUID]memory.Profile{}}
		agent := agents.NewMemory(store)

		input := agents.Input{
			UserID:  userID.String(),
			Context: agents.Context{Action: "purge"},
		}

		output, err := agent.Process(context.Background(), input)
		if err != nil {
			t.Fatalf("Process() error = %v", err)
		}

		if !strings.Contains(output.Response, `"purge"`) {
			t.Errorf("response %q should name the unknown action", output.Response)
		}
		if got, want := output.Metadata["status"], "unknown_action"; got != want {
			t.Errorf("metadata status = %v, want %v", got, want)
		}
		if store.updates != 0 {
			t.Errorf("updates = %d, want 0", store.updates)
		}
	})
}
