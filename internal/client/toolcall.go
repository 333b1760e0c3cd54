// ABOUTME: Tool-call lifecycle tracking, parameter normalization and status captions
// ABOUTME: Tolerates backends that reuse one id per invocation or emit one id per phase

package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/marvcks/adk-ui-starter/internal/protocol"
)

// NormalizeInputParams collapses the parameter field variants different
// agent runtimes emit into one value. Priority order: args,
// input_params, tool_input, then the nested function-call args.
// Returns "" when no variant is present.
func NormalizeInputParams(f *protocol.Frame) string {
	candidates := []json.RawMessage{f.Args, f.InputParams, f.ToolInput}
	if f.FunctionCall != nil {
		candidates = append(candidates, f.FunctionCall.Args)
	}
	for _, raw := range candidates {
		if rendered := renderParams(raw); rendered != "" {
			return rendered
		}
	}
	return ""
}

// renderParams pretty-prints JSON parameters; JSON strings are
// unquoted, anything unparseable passes through verbatim.
func renderParams(raw json.RawMessage) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) ||
		bytes.Equal(trimmed, []byte("{}")) || bytes.Equal(trimmed, []byte("[]")) {
		return ""
	}
	if trimmed[0] == '"' {
		if s, err := strconv.Unquote(string(trimmed)); err == nil {
			return s
		}
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, trimmed, "", "  "); err != nil {
		return string(trimmed)
	}
	return buf.String()
}

// StatusCaption derives the human-readable caption for a tool entry.
func StatusCaption(status string, isLongRunning bool, result string) string {
	switch status {
	case protocol.ToolStatusExecuting:
		if isLongRunning {
			return "⏳ Long-running tool in progress (runs in background)"
		}
		return "⚙️ Executing..."
	case protocol.ToolStatusCompleted:
		if result != "" {
			return fmt.Sprintf("✅ Completed\n```\n%s\n```", result)
		}
		return "✅ Completed"
	default:
		return fmt.Sprintf("Status update: %s", status)
	}
}

// ToolTracker turns tool frames into transcript entries. Correlation
// is keyed by the frame id when the backend supplies one (lifecycle
// phases sharing an id merge into a single entry); frames without an
// id get a generated one and stand alone on the timeline.
type ToolTracker struct {
	store *Store
}

func NewToolTracker(store *Store) *ToolTracker {
	return &ToolTracker{store: store}
}

// Apply upserts the transcript entry for a tool frame.
func (t *ToolTracker) Apply(f *protocol.Frame, msg *Message) {
	status := f.Status
	if status == "" {
		status = protocol.ToolStatusPending
	}

	msg.Role = RoleTool
	msg.ToolName = f.ToolName
	msg.ToolStatus = status
	msg.IsLongRunning = f.IsLongRunning
	msg.InputParams = NormalizeInputParams(f)
	msg.Result = f.Result
	msg.Content = StatusCaption(status, f.IsLongRunning, f.Result)
	if msg.ID == "" {
		msg.ID = uuid.New().String()
	}

	t.store.UpsertTool(msg)
}
