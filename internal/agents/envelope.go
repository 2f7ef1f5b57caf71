// Package agents defines the request/response envelope, the agent contract,
// and the five pedagogical agent handlers.
package agents

// Input is the request envelope every agent consumes. Callers may mutate it
// freely before submission; agents treat it as immutable.
type Input struct {
	UserID        string  `json:"user_id"`
	SessionID     string  `json:"session_id"`
	Message       string  `json:"message"`
	Context       Context `json:"context"`
	SelectedModel string  `json:"selected_model,omitempty"`
}

// Output is the response envelope every agent produces. NextAction is an
// advisory hint for the surrounding flow; nothing enforces it.
type Output struct {
	Response   string         `json:"response"`
	AgentName  string         `json:"agent_name"`
	Metadata   map[string]any `json:"metadata,omitempty"`
	NextAction string         `json:"next_action,omitempty"`
}

// Advisory next-action hints proposed by agents.
const (
	ActionUpdateMemory       = "update_memory"
	ActionCheckUnderstanding = "check_understanding"
	ActionWaitForUser        = "wait_for_user"
	ActionNotifyUser         = "notify_user"
)
