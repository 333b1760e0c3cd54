// ABOUTME: Update logic for the TUI (handles all messages and state transitions)
// ABOUTME: Implements the Elm architecture Update function

package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/marvcks/adk-ui-starter/internal/client"
)

// Messages bridging the connection manager's channels into the Elm loop.
type frameMsg []byte

type connErrMsg struct{ err error }

type connectDoneMsg struct{}

type tickMsg time.Time

func (m Model) connectCmd() tea.Cmd {
	return func() tea.Msg {
		// Failures schedule their own reconnects; the UI just reflects
		// the state on the next tick.
		_ = m.conn.Connect()
		return connectDoneMsg{}
	}
}

func (m Model) waitForFrame() tea.Cmd {
	return func() tea.Msg {
		return frameMsg(<-m.conn.Incoming())
	}
}

func (m Model) waitForError() tea.Cmd {
	return func() tea.Msg {
		return connErrMsg{err: <-m.conn.Errors()}
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateComponentSizes()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.conn.Teardown()
			return m, tea.Quit

		case "ctrl+b":
			m.sidebarVisible = !m.sidebarVisible
			m.updateComponentSizes()
			return m, nil

		case "tab":
			m.cycleFocus()
			return m, nil
		}
		return m.handleFocusedInput(msg)

	case connectDoneMsg:
		m = m.refresh()
		return m, nil

	case frameMsg:
		m.router.Route(msg)
		m = m.refresh()
		return m, m.waitForFrame()

	case connErrMsg:
		m = m.refresh()
		return m, m.waitForError()

	case tickMsg:
		m = m.refresh()
		return m, tickCmd()
	}

	// Viewport scrolling and cursor blink need the raw message stream.
	if m.focusedArea == FocusChatView {
		_, cmd = m.chatView.Update(msg)
		return m, cmd
	}
	if m.focusedArea == FocusInputArea {
		_, cmd = m.inputArea.Update(msg)
		return m, cmd
	}
	return m, nil
}

// updateComponentSizes recalculates component sizes from the window dimensions.
func (m *Model) updateComponentSizes() {
	if m.width == 0 || m.height == 0 {
		return
	}

	statusBarHeight := 1
	availableHeight := m.height - statusBarHeight

	sidebarWidth := 0
	if m.sidebarVisible {
		sidebarWidth = m.width / 4
		if sidebarWidth < 25 {
			sidebarWidth = 25
		}
		if sidebarWidth > 40 {
			sidebarWidth = 40
		}
	}

	mainWidth := m.width - sidebarWidth
	inputAreaHeight := 5
	if inputAreaHeight > availableHeight/3 {
		inputAreaHeight = availableHeight / 3
	}
	chatViewHeight := availableHeight - inputAreaHeight

	if m.sidebarVisible {
		m.sidebar.SetSize(sidebarWidth, availableHeight)
	}
	m.chatView.SetSize(mainWidth, chatViewHeight)
	m.inputArea.SetSize(mainWidth, inputAreaHeight)
	m.statusBar.SetSize(m.width)
}

// cycleFocus moves focus to the next component
func (m *Model) cycleFocus() {
	if m.focusedArea == FocusInputArea {
		m.inputArea.Blur()
	}

	m.focusedArea = (m.focusedArea + 1) % 3

	if m.focusedArea == FocusSidebar && !m.sidebarVisible {
		m.focusedArea = FocusChatView
	}

	if m.focusedArea == FocusInputArea {
		m.inputArea.Focus()
	}
}

// handleFocusedInput routes key messages to the currently focused component
func (m Model) handleFocusedInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.focusedArea {
	case FocusSidebar:
		switch msg.String() {
		case "up", "k":
			m.sidebar.CursorUp()
		case "down", "j":
			m.sidebar.CursorDown()
		case "enter":
			m = m.onSwitchSession()
		case "ctrl+n":
			m = m.onCreateSession()
		case "ctrl+d":
			m = m.onDeleteSession()
		}

	case FocusChatView:
		_, cmd = m.chatView.Update(msg)

	case FocusInputArea:
		switch msg.String() {
		case "enter":
			m = m.onSendMessage()
		case "ctrl+n":
			m = m.onCreateSession()
		default:
			_, cmd = m.inputArea.Update(msg)
		}
	}

	return m, cmd
}

// onSendMessage sends the input area content as a chat message, or a
// shell command when prefixed with "!".
func (m Model) onSendMessage() Model {
	content := strings.TrimSpace(m.inputArea.Value())
	if content == "" {
		return m
	}

	var err error
	if shellCmd, ok := strings.CutPrefix(content, "!"); ok {
		err = m.emitter.RunShellCommand(strings.TrimSpace(shellCmd))
	} else {
		err = m.emitter.SendMessage(content)
	}

	if err != nil {
		m.noticeNotConnected(err)
		return m.refresh()
	}

	m.inputArea.Clear()
	m = m.refresh()
	m.chatView.ScrollToBottom()
	return m
}

func (m Model) onCreateSession() Model {
	if err := m.emitter.CreateSession(); err != nil {
		m.noticeNotConnected(err)
	}
	return m.refresh()
}

func (m Model) onSwitchSession() Model {
	sess := m.sidebar.SelectedSession()
	if sess == nil {
		return m
	}
	if err := m.emitter.SwitchSession(sess.ID); err != nil {
		m.noticeNotConnected(err)
	}
	return m.refresh()
}

func (m Model) onDeleteSession() Model {
	sess := m.sidebar.SelectedSession()
	if sess == nil {
		return m
	}
	if err := m.emitter.DeleteSession(sess.ID); err != nil {
		m.noticeNotConnected(err)
	}
	return m.refresh()
}

// noticeNotConnected surfaces a rejected command as a visible
// transcript notice. Rejected commands are never queued or retried.
func (m Model) noticeNotConnected(err error) {
	m.store.Append(&client.Message{
		ID:        uuid.New().String(),
		Role:      client.RoleSystem,
		Content:   "⚠️ " + err.Error() + " — command not sent",
		Timestamp: time.Now(),
	})
}

// refresh re-reads the store and connection state into the components.
func (m Model) refresh() Model {
	m.chatView.SetMessages(m.store.Transcript())
	m.sidebar.SetSessions(m.store.Sessions(), m.store.ActiveSessionID())
	m.statusBar.SetConnState(m.conn.State())
	m.statusBar.SetActivity(m.store.AwaitingReply(), m.store.CreatingSession())
	return m
}
