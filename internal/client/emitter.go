// ABOUTME: Outbound command emitter guarding every send on connection liveness
// ABOUTME: Applies optimistic local mutations (user echo, creating-session valve)

package client

import (
	"time"

	"github.com/google/uuid"
	"github.com/marvcks/adk-ui-starter/internal/protocol"
)

// Emitter serializes user intents into frames on the active
// connection. Commands issued while disconnected are rejected with
// ErrNotConnected, never queued or retried.
type Emitter struct {
	conn  *ConnectionManager
	store *Store
}

func NewEmitter(conn *ConnectionManager, store *Store) *Emitter {
	return &Emitter{conn: conn, store: store}
}

// SendMessage appends the optimistic user entry and sends the frame.
// The local copy is why inbound user-typed echoes are ignored by the
// router. Nothing is appended when the connection is down.
func (e *Emitter) SendMessage(content string) error {
	if e.conn.State() != StateConnected {
		return ErrNotConnected
	}

	payload, err := protocol.MessageCommand(content)
	if err != nil {
		return err
	}

	e.store.Append(&Message{
		ID:        uuid.New().String(),
		Role:      RoleUser,
		Content:   content,
		Timestamp: time.Now(),
	})
	e.store.SetAwaitingReply(true)

	return e.conn.Send(payload)
}

// CreateSession requests a new session and arms the creating-session
// safety valve so the UI never hangs on a lost acknowledgement.
func (e *Emitter) CreateSession() error {
	if e.conn.State() != StateConnected {
		return ErrNotConnected
	}

	payload, err := protocol.CreateSessionCommand()
	if err != nil {
		return err
	}

	e.store.BeginCreatingSession()
	return e.conn.Send(payload)
}

// SwitchSession asks the server for another session's history. The
// transcript is only replaced when session_messages arrives.
func (e *Emitter) SwitchSession(sessionID string) error {
	if e.conn.State() != StateConnected {
		return ErrNotConnected
	}

	payload, err := protocol.SwitchSessionCommand(sessionID)
	if err != nil {
		return err
	}
	return e.conn.Send(payload)
}

func (e *Emitter) DeleteSession(sessionID string) error {
	if e.conn.State() != StateConnected {
		return ErrNotConnected
	}

	payload, err := protocol.DeleteSessionCommand(sessionID)
	if err != nil {
		return err
	}
	return e.conn.Send(payload)
}

// RequestSessions asks for a catalog refresh.
func (e *Emitter) RequestSessions() error {
	if e.conn.State() != StateConnected {
		return ErrNotConnected
	}

	payload, err := protocol.GetSessionsCommand()
	if err != nil {
		return err
	}
	return e.conn.Send(payload)
}

// RunShellCommand forwards a shell command to the server's sandboxed
// shell channel. Output comes back as shell_output/shell_error frames.
func (e *Emitter) RunShellCommand(command string) error {
	if e.conn.State() != StateConnected {
		return ErrNotConnected
	}

	payload, err := protocol.ShellCommandFrame(command)
	if err != nil {
		return err
	}
	return e.conn.Send(payload)
}
