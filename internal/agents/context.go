package agents

import "encoding/json"

// Turn is a single role/content pair of conversation history.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Context carries the routing hints, history, and action parameters of a
// request. The enumerated fields are the only keys the core interprets;
// unrecognized keys round-trip through Extra for forward compatibility.
type Context struct {
	TargetAgent  string
	Action       string
	Data         map[string]any
	Progress     map[string]any
	UserLevel    string
	ChatHistory  []Turn
	ResearchMode bool
	Extra        map[string]any
}

// UnmarshalJSON decodes the enumerated context keys and captures any other
// key into Extra.
func (c *Context) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	for key, value := range raw {
		var err error
		switch key {
		case "target_agent":
			err = json.Unmarshal(value, &c.TargetAgent)
		case "action":
			err = json.Unmarshal(value, &c.Action)
		case "data":
			err = json.Unmarshal(value, &c.Data)
		case "progress":
			err = json.Unmarshal(value, &c.Progress)
		case "user_level":
			err = json.Unmarshal(value, &c.UserLevel)
		case "chat_history":
			err = json.Unmarshal(value, &c.ChatHistory)
		case "research_mode":
			err = json.Unmarshal(value, &c.ResearchMode)
		default:
			var v any
			if err = json.Unmarshal(value, &v); err == nil {
				if c.Extra == nil {
					c.Extra = make(map[string]any)
				}
				c.Extra[key] = v
			}
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// MarshalJSON encodes the enumerated keys (omitting zero values) merged with
// the Extra map. Enumerated keys win over Extra on collision.
func (c Context) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(c.Extra)+7)
	for key, value := range c.Extra {
		out[key] = value
	}

	if c.TargetAgent != "" {
		out["target_agent"] = c.TargetAgent
	}
	if c.Action != "" {
		out["action"] = c.Action
	}
	if c.Data != nil {
		out["data"] = c.Data
	}
	if c.Progress != nil {
		out["progress"] = c.Progress
	}
	if c.UserLevel != "" {
		out["user_level"] = c.UserLevel
	}
	if c.ChatHistory != nil {
		out["chat_history"] = c.ChatHistory
	}
	if c.ResearchMode {
		out["research_mode"] = true
	}

	return json.Marshal(out)
}
