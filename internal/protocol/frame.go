// ABOUTME: Wire frame types for the agent WebSocket protocol
// ABOUTME: Implements inbound frame decoding with lenient field handling

package protocol

import (
	"encoding/json"
	"fmt"
	"time"
)

// Inbound frame types emitted by the agent server.
const (
	TypeSessionsList    = "sessions_list"
	TypeSessionMessages = "session_messages"
	TypeUser            = "user"
	TypeTool            = "tool"
	TypeAssistant       = "assistant"
	TypeResponse        = "response"
	TypeComplete        = "complete"
	TypeError           = "error"
	TypeAuthSuccess     = "auth_success"
	TypeAuthError       = "auth_error"
	TypeShellOutput     = "shell_output"
	TypeShellError      = "shell_error"
)

// Tool status values carried by "tool" frames.
const (
	ToolStatusPending   = "pending"
	ToolStatusExecuting = "executing"
	ToolStatusCompleted = "completed"
	ToolStatusError     = "error"
)

// Frame is one inbound wire message. The server only populates the
// fields relevant to the frame's type; everything else is zero.
type Frame struct {
	Type             string           `json:"type"`
	ID               string           `json:"id,omitempty"`
	Timestamp        string           `json:"timestamp,omitempty"`
	Content          string           `json:"content,omitempty"`
	SessionID        string           `json:"session_id,omitempty"`
	CurrentSessionID string           `json:"current_session_id,omitempty"`
	Sessions         []SessionInfo    `json:"sessions,omitempty"`
	Messages         []HistoryMessage `json:"messages,omitempty"`

	// Tool lifecycle fields.
	ToolName      string          `json:"tool_name,omitempty"`
	Status        string          `json:"status,omitempty"`
	IsLongRunning bool            `json:"is_long_running,omitempty"`
	Result        string          `json:"result,omitempty"`
	Args          json.RawMessage `json:"args,omitempty"`
	InputParams   json.RawMessage `json:"input_params,omitempty"`
	ToolInput     json.RawMessage `json:"tool_input,omitempty"`
	FunctionCall  *FunctionCall   `json:"function_call,omitempty"`

	// Opaque accounting metadata on assistant frames.
	Usage json.RawMessage `json:"usage,omitempty"`

	// Shell channel fields.
	Output   string `json:"output,omitempty"`
	ShellErr string `json:"error,omitempty"`
}

// FunctionCall is the nested call shape some agent runtimes use to
// carry tool arguments.
type FunctionCall struct {
	Name string          `json:"name,omitempty"`
	Args json.RawMessage `json:"args,omitempty"`
}

// SessionInfo is one catalog entry in a sessions_list frame.
type SessionInfo struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	CreatedAt     string `json:"created_at"`
	LastMessageAt string `json:"last_message_at"`
	MessageCount  int    `json:"message_count"`
}

// HistoryMessage is one transcript entry in a session_messages frame.
type HistoryMessage struct {
	ID         string `json:"id"`
	Role       string `json:"role"`
	Content    string `json:"content"`
	Timestamp  string `json:"timestamp"`
	ToolName   string `json:"tool_name,omitempty"`
	ToolStatus string `json:"tool_status,omitempty"`
}

// Decode parses a raw text frame. A frame without a type discriminant
// is malformed: the caller drops it without touching any state.
func Decode(raw []byte) (*Frame, error) {
	var f Frame
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("decode frame: %w", err)
	}
	if f.Type == "" {
		return nil, fmt.Errorf("decode frame: missing type")
	}
	return &f, nil
}

// isoLayouts covers the timestamp shapes the server emits. Python's
// isoformat() omits the timezone, so RFC3339 alone is not enough.
var isoLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
}

// ParseTime parses a frame timestamp, falling back to the receipt time
// when the field is absent or unparseable.
func ParseTime(s string, fallback time.Time) time.Time {
	if s == "" {
		return fallback
	}
	for _, layout := range isoLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t
		}
	}
	return fallback
}
