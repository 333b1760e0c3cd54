// ABOUTME: Conversation store holding the transcript, session catalog and UI flags
// ABOUTME: Single source of truth the presentation layer reads; mutations behind a RWMutex

package client

import (
	"sync"
	"time"
)

// DefaultCreateSessionTimeout force-clears the creating-session flag
// when the server never acknowledges a create_session command, so the
// UI cannot hang on a lost acknowledgement.
const DefaultCreateSessionTimeout = 3 * time.Second

type Store struct {
	mu sync.RWMutex

	transcript []*Message
	index      map[string]int // message id -> transcript position

	sessions        []*Session
	activeSessionID string

	awaitingReply   bool
	creatingSession bool
	createTimer     *time.Timer
	createTimeout   time.Duration
}

func NewStore() *Store {
	return &Store{
		index:         make(map[string]int),
		createTimeout: DefaultCreateSessionTimeout,
	}
}

// SetCreateSessionTimeout overrides the creating-session safety valve.
// Used by tests; production code keeps the default.
func (s *Store) SetCreateSessionTimeout(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.createTimeout = d
}

// Transcript returns a copy of the ordered transcript.
func (s *Store) Transcript() []*Message {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Message, len(s.transcript))
	copy(out, s.transcript)
	return out
}

// Sessions returns a copy of the session catalog.
func (s *Store) Sessions() []*Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Session, len(s.sessions))
	copy(out, s.sessions)
	return out
}

func (s *Store) ActiveSessionID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeSessionID
}

func (s *Store) AwaitingReply() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.awaitingReply
}

func (s *Store) CreatingSession() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.creatingSession
}

// Append adds a message to the end of the transcript.
func (s *Store) Append(msg *Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.appendLocked(msg)
}

func (s *Store) appendLocked(msg *Message) {
	if msg.ID != "" {
		s.index[msg.ID] = len(s.transcript)
	}
	s.transcript = append(s.transcript, msg)
}

// UpsertAssistant appends an assistant entry, or replaces the content
// of an existing entry with the same id. Streaming output re-delivers
// the full content each time, so replacement is the update semantics.
func (s *Store) UpsertAssistant(msg *Message) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if pos, ok := s.lookupLocked(msg.ID); ok {
		existing := s.transcript[pos]
		existing.Content = msg.Content
		if msg.Usage != nil {
			existing.Usage = msg.Usage
		}
		return
	}
	s.appendLocked(msg)
}

// UpsertTool appends a tool entry, or merges lifecycle fields into an
// existing entry with the same id. Fields absent from a later phase
// frame (tool name, input parameters) survive from the earlier one.
func (s *Store) UpsertTool(msg *Message) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pos, ok := s.lookupLocked(msg.ID)
	if !ok || s.transcript[pos].Role != RoleTool {
		s.appendLocked(msg)
		return
	}

	existing := s.transcript[pos]
	existing.ToolStatus = msg.ToolStatus
	existing.Content = msg.Content
	if msg.ToolName != "" {
		existing.ToolName = msg.ToolName
	}
	if msg.InputParams != "" {
		existing.InputParams = msg.InputParams
	}
	if msg.Result != "" {
		existing.Result = msg.Result
	}
	if msg.IsLongRunning {
		existing.IsLongRunning = true
	}
}

func (s *Store) lookupLocked(id string) (int, bool) {
	if id == "" {
		return 0, false
	}
	pos, ok := s.index[id]
	if !ok || pos >= len(s.transcript) {
		return 0, false
	}
	return pos, true
}

// ReplaceTranscript swaps the transcript wholesale for a session
// history load and makes that session active. Any in-flight partial
// output from the previous session is discarded with it.
func (s *Store) ReplaceTranscript(sessionID string, msgs []*Message) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.transcript = make([]*Message, 0, len(msgs))
	s.index = make(map[string]int, len(msgs))
	for _, msg := range msgs {
		s.appendLocked(msg)
	}
	if sessionID != "" {
		s.activeSessionID = sessionID
	}
	s.clearCreatingLocked()
}

// ReplaceSessions swaps the session catalog wholesale.
func (s *Store) ReplaceSessions(sessions []*Session, activeID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions = sessions
	if activeID != "" {
		s.activeSessionID = activeID
	}
	s.clearCreatingLocked()
}

func (s *Store) SetAwaitingReply(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.awaitingReply = v
}

// BeginCreatingSession sets the creating-session flag and arms the
// timeout valve that clears it even if the server never answers.
func (s *Store) BeginCreatingSession() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.createTimer != nil {
		s.createTimer.Stop()
	}
	s.creatingSession = true
	s.createTimer = time.AfterFunc(s.createTimeout, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.creatingSession = false
	})
}

// ClearCreatingSession clears the flag and cancels the valve.
func (s *Store) ClearCreatingSession() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearCreatingLocked()
}

func (s *Store) clearCreatingLocked() {
	s.creatingSession = false
	if s.createTimer != nil {
		s.createTimer.Stop()
		s.createTimer = nil
	}
}
