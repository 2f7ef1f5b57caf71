package agents_test

import (
	"encoding/json"
	"testing"

	"github.com/tutormesh/tutormesh/internal/agents"
)

func TestContextUnmarshalEnumeratedKeys(t *testing.T) {
	raw := `{
		"target_agent": "explanation",
		"action": "store",
		"user_level": "Advanced",
		"research_mode": true,
		"data": {"topics_learned": ["entropy"]},
		"progress": {"algebra": 0.5},
		"chat_history": [{"role": "user", "content": "hi"}]
	}`

	var ctx agents.Context
	if err := json.Unmarshal([]byte(raw), &ctx); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if got, want := ctx.TargetAgent, "explanation"; got != want {
		t.Errorf("target_agent = %q, want %q", got, want)
	}
	if got, want := ctx.Action, "store"; got != want {
		t.Errorf("action = %q, want %q", got, want)
	}
	if got, want := ctx.UserLevel, "Advanced"; got != want {
		t.Errorf("user_level = %q, want %q", got, want)
	}
	if !ctx.ResearchMode {
		t.Error("research_mode should be true")
	}
	if len(ctx.ChatHistory) != 1 || ctx.ChatHistory[0].Content != "hi" {
		t.Errorf("chat_history = %v, want one turn", ctx.ChatHistory)
	}
	if got, want := ctx.Progress["algebra"], 0.5; got != want {
		t.Errorf("progress[algebra] = %v, want %v", got, want)
	}
}

func TestContextRoundTripsUnknownKeys(t *testing.T) {
	raw := `{"target_agent": "socratic", "topic": "entropy", "attempt": 3}`

	var ctx agents.Context
	if err := json.Unmarshal([]byte(raw), &ctx); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if got, want := ctx.Extra["topic"], "entropy"; got != want {
		t.Errorf("extra topic = %v, want %v", got, want)
	}

	encoded, err := json.Marshal(ctx)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(encoded, &decoded); err != nil {
		t.Fatalf("Unmarshal(encoded) error = %v", err)
	}

	if got, want := decoded["target_agent"], "socratic"; got != want {
		t.Errorf("target_agent = %v, want %v", got, want)
	}
	if got, want := decoded["topic"], "entropy"; got != want {
		t.Errorf("topic = %v, want %v", got, want)
	}
	if got, want := decoded["attempt"], 3.0; got != want {
		t.Errorf("attempt = %v, want %v", got, want)
	}
}

func TestContextMarshalOmitsZeroValues(t *testing.T) {
	encoded, err := json.Marshal(agents.Context{TargetAgent: "memory"})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(encoded, &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if len(decoded) != 1 {
		t.Errorf("decoded = %v, want only target_agent", decoded)
	}
}
