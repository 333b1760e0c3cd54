// ABOUTME: Inbound frame router classifying frames by type and applying store mutations
// ABOUTME: Malformed or unrecognized frames are dropped without touching any state

package client

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/marvcks/adk-ui-starter/internal/logger"
	"github.com/marvcks/adk-ui-starter/internal/protocol"
)

type Router struct {
	store *Store
	dedup *Dedup
	tools *ToolTracker
}

func NewRouter(store *Store) *Router {
	return &Router{
		store: store,
		dedup: NewDedup(),
		tools: NewToolTracker(store),
	}
}

// Route decodes and dispatches one raw inbound frame. It never panics
// past the receive handler: decode failures and unknown types are
// logged and dropped.
func (r *Router) Route(raw []byte) {
	frame, err := protocol.Decode(raw)
	if err != nil {
		logger.Debug("dropping malformed frame: %v", err)
		return
	}
	if !r.dedup.ShouldApply(frame) {
		logger.Debug("dropping duplicate frame id=%s type=%s", frame.ID, frame.Type)
		return
	}

	received := time.Now()

	switch frame.Type {
	case protocol.TypeAuthSuccess:
		logger.Info("authentication accepted")

	case protocol.TypeAuthError:
		// Not fatal: unauthenticated read-only use stays valid.
		logger.Warn("authentication rejected: %s", frame.Content)

	case protocol.TypeSessionsList:
		r.handleSessionsList(frame, received)

	case protocol.TypeSessionMessages:
		r.handleSessionMessages(frame, received)

	case protocol.TypeUser:
		// The optimistic local copy was rendered at send time; echoes
		// would double-render.

	case protocol.TypeTool:
		msg := &Message{ID: frame.ID, Timestamp: protocol.ParseTime(frame.Timestamp, received)}
		r.tools.Apply(frame, msg)

	case protocol.TypeAssistant, protocol.TypeResponse:
		r.handleAssistant(frame, received)

	case protocol.TypeComplete:
		r.store.SetAwaitingReply(false)

	case protocol.TypeError:
		r.handleError(frame, received)

	case protocol.TypeShellOutput:
		r.appendShell(frame.ID, frame.Output, received)

	case protocol.TypeShellError:
		r.appendShell(frame.ID, frame.ShellErr, received)

	default:
		logger.Debug("ignoring unrecognized frame type %q", frame.Type)
	}
}

func (r *Router) handleSessionsList(frame *protocol.Frame, received time.Time) {
	sessions := make([]*Session, 0, len(frame.Sessions))
	for _, info := range frame.Sessions {
		sessions = append(sessions, &Session{
			ID:            info.ID,
			Title:         info.Title,
			CreatedAt:     protocol.ParseTime(info.CreatedAt, received),
			LastMessageAt: protocol.ParseTime(info.LastMessageAt, received),
			MessageCount:  info.MessageCount,
		})
	}
	r.store.ReplaceSessions(sessions, frame.CurrentSessionID)
	logger.Debug("session catalog replaced: %d sessions, active=%s",
		len(sessions), frame.CurrentSessionID)
}

func (r *Router) handleSessionMessages(frame *protocol.Frame, received time.Time) {
	msgs := make([]*Message, 0, len(frame.Messages))
	ids := make([]string, 0, len(frame.Messages))
	for _, h := range frame.Messages {
		role := RoleFromString(h.Role)
		content := h.Content
		if role == RoleTool && content == "" {
			content = StatusCaption(h.ToolStatus, false, "")
		}
		msgs = append(msgs, &Message{
			ID:         h.ID,
			Role:       role,
			Content:    content,
			Timestamp:  protocol.ParseTime(h.Timestamp, received),
			ToolName:   h.ToolName,
			ToolStatus: h.ToolStatus,
		})
		ids = append(ids, h.ID)
	}
	r.store.ReplaceTranscript(frame.SessionID, msgs)
	r.dedup.Reset(ids)
	logger.Debug("transcript replaced: session=%s messages=%d", frame.SessionID, len(msgs))
}

func (r *Router) handleAssistant(frame *protocol.Frame, received time.Time) {
	id := frame.ID
	if id == "" {
		id = uuid.New().String()
	}
	r.store.UpsertAssistant(&Message{
		ID:        id,
		Role:      RoleAssistant,
		Content:   frame.Content,
		Timestamp: protocol.ParseTime(frame.Timestamp, received),
		Usage:     frame.Usage,
	})
}

func (r *Router) handleError(frame *protocol.Frame, received time.Time) {
	id := frame.ID
	if id == "" {
		id = uuid.New().String()
	}
	r.store.Append(&Message{
		ID:        id,
		Role:      RoleAssistant,
		Content:   fmt.Sprintf("⚠️ Error: %s", frame.Content),
		Timestamp: protocol.ParseTime(frame.Timestamp, received),
	})
	r.store.SetAwaitingReply(false)
}

func (r *Router) appendShell(id, content string, received time.Time) {
	if content == "" {
		return
	}
	if id == "" {
		id = uuid.New().String()
	}
	r.store.Append(&Message{
		ID:        id,
		Role:      RoleSystem,
		Content:   content,
		Timestamp: received,
	})
}
