// ABOUTME: Outbound command frame constructors for the agent WebSocket protocol
// ABOUTME: Serializes user intents into the JSON shapes the server dispatches on

package protocol

import "encoding/json"

// Outbound command types dispatched by the agent server.
const (
	CmdMessage       = "message"
	CmdCreateSession = "create_session"
	CmdSwitchSession = "switch_session"
	CmdDeleteSession = "delete_session"
	CmdGetSessions   = "get_sessions"
	CmdAuthenticate  = "authenticate"
	CmdShellCommand  = "shell_command"
)

type messageCommand struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

type sessionCommand struct {
	Type      string `json:"type"`
	SessionID string `json:"session_id,omitempty"`
}

type authenticateCommand struct {
	Type         string `json:"type"`
	AppAccessKey string `json:"appAccessKey"`
	ClientName   string `json:"clientName"`
}

type shellCommand struct {
	Type    string `json:"type"`
	Command string `json:"command"`
}

// MessageCommand builds a chat message frame.
func MessageCommand(content string) ([]byte, error) {
	return json.Marshal(messageCommand{Type: CmdMessage, Content: content})
}

// CreateSessionCommand builds a create_session frame.
func CreateSessionCommand() ([]byte, error) {
	return json.Marshal(sessionCommand{Type: CmdCreateSession})
}

// SwitchSessionCommand builds a switch_session frame.
func SwitchSessionCommand(sessionID string) ([]byte, error) {
	return json.Marshal(sessionCommand{Type: CmdSwitchSession, SessionID: sessionID})
}

// DeleteSessionCommand builds a delete_session frame.
func DeleteSessionCommand(sessionID string) ([]byte, error) {
	return json.Marshal(sessionCommand{Type: CmdDeleteSession, SessionID: sessionID})
}

// GetSessionsCommand builds a catalog refresh request.
func GetSessionsCommand() ([]byte, error) {
	return json.Marshal(sessionCommand{Type: CmdGetSessions})
}

// AuthenticateCommand builds the late-credential fallback frame used
// when credentials were not available at dial time.
func AuthenticateCommand(appAccessKey, clientName string) ([]byte, error) {
	return json.Marshal(authenticateCommand{
		Type:         CmdAuthenticate,
		AppAccessKey: appAccessKey,
		ClientName:   clientName,
	})
}

// ShellCommandFrame builds a shell_command frame.
func ShellCommandFrame(command string) ([]byte, error) {
	return json.Marshal(shellCommand{Type: CmdShellCommand, Command: command})
}
