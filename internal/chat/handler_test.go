package chat_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/tutormesh/tutormesh/internal/agents"
	"github.com/tutormesh/tutormesh/internal/chat"
	"github.com/tutormesh/tutormesh/internal/sessions"
	"github.com/tutormesh/tutormesh/internal/users"
	"github.com/tutormesh/tutormesh/pkg/pagination"
)

type fakeOrchestrator struct {
	lastInput agents.Input
	output    agents.Output
}

func (f *fakeOrchestrator) Route(_ context.Context, input agents.Input) (agents.Output, error) {
	f.lastInput = input
	return f.output, nil
}

func (f *fakeOrchestrator) RegisteredAgents() []string {
	return []string{"diagnosis"}
}

type fakeSessions struct {
	sessions map[uuid.UUID]*sessions.Session
	messages map[uuid.UUID][]sessions.Message
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{
		sessions: make(map[uuid.UUID]*sessions.Session),
		messages: make(map[uuid.UUID][]sessions.Message),
	}
}

func (f *fakeSessions) Create(_ context.Context, userID uuid.UUID, title string) (*sessions.Session, error) {
	session := &sessions.Session{ID: uuid.New(), UserID: userID, Title: title, CreatedAt: time.Now()}
	f.sessions[session.ID] = session
	return session, nil
}

func (f *fakeSessions) Find(_ context.Context, id, userID uuid.UUID) (*sessions.Session, error) {
	session, ok := f.sessions[id]
	if !ok || session.UserID != userID {
		return nil, sessions.ErrNotFound
	}
	return session, nil
}

func (f *fakeSessions) List(_ context.Context, _ uuid.UUID, _ pagination.PageRequest) (*pagination.PageResult[sessions.Session], error) {
	result := pagination.NewPageResult([]sessions.Session{}, 0, 1, 20)
	return &result, nil
}

func (f *fakeSessions) AppendMessage(_ context.Context, sessionID uuid.UUID, role, content string, metadata map[string]any) (*sessions.Message, error) {
	message := sessions.Message{
		ID:        uuid.New(),
		SessionID: sessionID,
		Role:      role,
		Content:   content,
		Metadata:  metadata,
		CreatedAt: time.Now(),
	}
	f.messages[sessionID] = append(f.messages[sessionID], message)
	return &message, nil
}

func (f *fakeSessions) History(_ context.Context, sessionID uuid.UUID, limit int) ([]sessions.Message, error) {
	history := f.messages[sessionID]
	if len(history) > limit {
		history = history[len(history)-limit:]
	}
	return history, nil
}

func passthroughGuard(user *users.User) users.GuardFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			next(w, r.WithContext(users.NewContext(r.Context(), user)))
		}
	}
}

func postChat(t *testing.T, handler *chat.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()

	group := handler.Routes()
	var chatHandler http.HandlerFunc
	for _, route := range group.Routes {
		if route.Method == "POST" {
			chatHandler = route.Handler
		}
	}
	if chatHandler == nil {
		t.Fatal("no POST route registered")
	}

	req := httptest.NewRequest("POST", "/api/chat", strings.NewReader(body))
	rec := httptest.NewRecorder()
	chatHandler(rec, req)
	return rec
}

func TestChatCreatesSessionAndPersistsTurns(t *testing.T) {
	user := &users.User{ID: uuid.New(), IsActive: true, Preferences: map[string]any{}}
	store := newFakeSessions()
	orch := &fakeOrchestrator{output: agents.Output{
		Response:   "Level: Beginner",
		AgentName:  "diagnosis",
		Metadata:   map[string]any{"type": "diagnosis"},
		NextAction: agents.ActionUpdateMemory,
	}}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := chat.NewHandler(orch, store, passthroughGuard(user), logger)

	body := `{"message": "I want to learn about Quantum Physics.", "context": {"target_agent": "diagnosis"}}`
	rec := postChat(t, handler, body)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var output agents.Output
	if err := json.NewDecoder(rec.Body).Decode(&output); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got, want := output.AgentName, "diagnosis"; got != want {
		t.Errorf("agent_name = %q, want %q", got, want)
	}

	if len(store.sessions) != 1 {
		t.Fatalf("len(sessions) = %d, want 1", len(store.sessions))
	}
	for _, session := range store.sessions {
		if got, want := session.Title, "I want to learn about Quantum"; got != want {
			t.Errorf("title = %q, want %q", got, want)
		}

		history := store.messages[session.ID]
		if len(history) != 2 {
			t.Fatalf("len(history) = %d, want 2", len(history))
		}
		if history[0].Role != sessions.RoleUser || history[1].Role != sessions.RoleAssistant {
			t.Errorf("roles = %q, %q, want user then assistant", history[0].Role, history[1].Role)
		}
		if got, want := history[1].Metadata["agent_name"], "diagnosis"; got != want {
			t.Errorf("assistant metadata agent_name = %v, want %v", got, want)
		}
	}

	if got, want := orch.lastInput.UserID, user.ID.String(); got != want {
		t.Errorf("dispatched user_id = %q, want %q", got, want)
	}
}

func TestChatReusesExistingSessionAndInjectsHistory(t *testing.T) {
	user := &users.User{ID: uuid.New(), IsActive: true, Preferences: map[string]any{}}
	store := newFakeSessions()
	session, _ := store.Create(context.Background(), user.ID, "Entropy")
	store.AppendMessage(context.Background(), session.ID, sessions.RoleUser, "what is entropy?", nil)
	store.AppendMessage(context.Background(), session.ID, sessions.RoleAssistant, "A measure of disorder.", nil)

	orch := &fakeOrchestrator{output: agents.Output{Response: "ok", AgentName: "socratic"}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := chat.NewHandler(orch, store, passthroughGuard(user), logger)

	body := `{"session_id": "` + session.ID.String() + `", "message": "and in thermodynamics?", "context": {"target_agent": "socratic"}}`
	rec := postChat(t, handler, body)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	if len(store.sessions) != 1 {
		t.Errorf("len(sessions) = %d, want 1 (no new session)", len(store.sessions))
	}
	if got := len(orch.lastInput.Context.ChatHistory); got != 2 {
		t.Errorf("injected history length = %d, want 2", got)
	}
	if got, want := orch.lastInput.SessionID, session.ID.String(); got != want {
		t.Errorf("session_id = %q, want %q", got, want)
	}
}

func TestChatResearchModeFromPreferences(t *testing.T) {
	user := &users.User{
		ID:          uuid.New(),
		IsActive:    true,
		Preferences: map[string]any{"research_mode": true},
	}
	store := newFakeSessions()
	orch := &fakeOrchestrator{output: agents.Output{Response: "ok", AgentName: "diagnosis"}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := chat.NewHandler(orch, store, passthroughGuard(user), logger)

	rec := postChat(t, handler, `{"message": "hi", "context": {"target_agent": "diagnosis"}}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if !orch.lastInput.Context.ResearchMode {
		t.Error("research_mode should be set from user preferences")
	}
}

func TestChatRejectsInvalidBody(t *testing.T) {
	user := &users.User{ID: uuid.New(), IsActive: true}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := chat.NewHandler(&fakeOrchestrator{}, newFakeSessions(), passthroughGuard(user), logger)

	rec := postChat(t, handler, "{not json")

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}
