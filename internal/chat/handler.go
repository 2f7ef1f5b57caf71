// Package chat exposes the conversational endpoint that resolves sessions,
// assembles request context, and dispatches to the orchestrator.
package chat

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/tutormesh/tutormesh/internal/agents"
	"github.com/tutormesh/tutormesh/internal/orchestrator"
	"github.com/tutormesh/tutormesh/internal/routes"
	"github.com/tutormesh/tutormesh/internal/sessions"
	"github.com/tutormesh/tutormesh/internal/users"
	"github.com/tutormesh/tutormesh/pkg/handlers"
)

// historyTurns is how many recent messages are injected as chat history.
const historyTurns = 5

// Handler provides the HTTP handler for agent dispatch.
type Handler struct {
	orch     orchestrator.System
	sessions sessions.System
	guard    users.GuardFunc
	logger   *slog.Logger
}

// NewHandler creates a new chat HTTP handler.
func NewHandler(orch orchestrator.System, sessions sessions.System, guard users.GuardFunc, logger *slog.Logger) *Handler {
	return &Handler{
		orch:     orch,
		sessions: sessions,
		guard:    guard,
		logger:   logger,
	}
}

// Routes returns the route group configuration for the chat endpoint.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/api/chat",
		Description: "Agent dispatch",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "", Handler: h.guard(h.Chat)},
		},
	}
}

// Chat handles POST /api/chat. It resolves or creates the session, injects
// recent history and user preferences into the request context, dispatches to
// the orchestrator, and persists both conversation turns.
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	user, ok := users.FromContext(r.Context())
	if !ok {
		handlers.RespondError(w, h.logger, http.StatusUnauthorized, errors.New("unauthorized"))
		return
	}

	var input agents.Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	session, err := h.resolveSession(r.Context(), user.ID, input)
	if err != nil {
		handlers.RespondError(w, h.logger, sessions.MapHTTPStatus(err), err)
		return
	}

	// The authenticated identity wins over whatever the client sent.
	input.UserID = user.ID.String()
	input.SessionID = session.ID.String()

	if err := h.injectHistory(r.Context(), session.ID, &input); err != nil {
		handlers.RespondError(w, h.logger, sessions.MapHTTPStatus(err), err)
		return
	}

	if enabled, ok := user.Preferences["research_mode"].(bool); ok && enabled {
		input.Context.ResearchMode = true
	}

	if _, err := h.sessions.AppendMessage(r.Context(), session.ID, sessions.RoleUser, input.Message, nil); err != nil {
		handlers.RespondError(w, h.logger, sessions.MapHTTPStatus(err), err)
		return
	}

	output, err := h.orch.Route(r.Context(), input)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	metadata := map[string]any{"agent_name": output.AgentName}
	if output.Metadata != nil {
		metadata["agent_metadata"] = output.Metadata
	}
	if output.NextAction != "" {
		metadata["next_action"] = output.NextAction
	}

	if _, err := h.sessions.AppendMessage(r.Context(), session.ID, sessions.RoleAssistant, output.Response, metadata); err != nil {
		handlers.RespondError(w, h.logger, sessions.MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, output)
}

// resolveSession finds the referenced session or creates a new one titled
// after the opening message.
func (h *Handler) resolveSession(ctx context.Context, userID uuid.UUID, input agents.Input) (*sessions.Session, error) {
	if sessionID, err := uuid.Parse(input.SessionID); err == nil {
		session, err := h.sessions.Find(ctx, sessionID, userID)
		if err == nil {
			return session, nil
		}
		if !errors.Is(err, sessions.ErrNotFound) {
			return nil, err
		}
	}

	return h.sessions.Create(ctx, userID, sessions.TitleFromMessage(input.Message))
}

// injectHistory loads recent turns into the request context unless the client
// already supplied history.
func (h *Handler) injectHistory(ctx context.Context, sessionID uuid.UUID, input *agents.Input) error {
	if input.Context.ChatHistory != nil {
		return nil
	}

	messages, err := h.sessions.History(ctx, sessionID, historyTurns)
	if err != nil {
		return err
	}

	turns := make([]agents.Turn, 0, len(messages))
	for _, message := range messages {
		turns = append(turns, agents.Turn{Role: message.Role, Content: message.Content})
	}
	if len(turns) > 0 {
		input.Context.ChatHistory = turns
	}
	return nil
}
