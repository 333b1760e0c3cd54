// ABOUTME: Transcript entry and session catalog types for the conversation store
// ABOUTME: Role enum with display helpers mirrors the server's role field

package client

import (
	"encoding/json"
	"time"
)

type Role int

const (
	RoleUser Role = iota
	RoleAssistant
	RoleTool
	RoleSystem
)

func (r Role) String() string {
	switch r {
	case RoleUser:
		return "user"
	case RoleAssistant:
		return "assistant"
	case RoleTool:
		return "tool"
	case RoleSystem:
		return "system"
	default:
		return "unknown"
	}
}

func (r Role) Icon() string {
	switch r {
	case RoleUser:
		return "👤"
	case RoleAssistant:
		return "🤖"
	case RoleTool:
		return "🔧"
	case RoleSystem:
		return "ℹ️"
	default:
		return "❓"
	}
}

// RoleFromString maps the server's role strings onto the enum.
// Unrecognized roles render as system entries rather than being lost.
func RoleFromString(s string) Role {
	switch s {
	case "user":
		return RoleUser
	case "assistant":
		return RoleAssistant
	case "tool":
		return RoleTool
	default:
		return RoleSystem
	}
}

// Message is one transcript entry. Tool-role entries carry the
// lifecycle fields; assistant entries may carry opaque usage metadata.
type Message struct {
	ID        string
	Role      Role
	Content   string
	Timestamp time.Time

	ToolName      string
	ToolStatus    string
	IsLongRunning bool
	InputParams   string
	Result        string

	Usage json.RawMessage
}

// Session is one catalog entry. The catalog is replaced wholesale on
// every sessions_list frame; there is no incremental merge.
type Session struct {
	ID            string
	Title         string
	CreatedAt     time.Time
	LastMessageAt time.Time
	MessageCount  int
}
