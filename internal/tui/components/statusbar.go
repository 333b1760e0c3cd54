// ABOUTME: StatusBar component showing connection state and pending-activity flags
// ABOUTME: Reflects the conversation store; never owns any protocol state

package components

import (
	"fmt"
	"strings"

	"github.com/marvcks/adk-ui-starter/internal/client"
	"github.com/marvcks/adk-ui-starter/internal/tui/theme"
)

type StatusBar struct {
	width           int
	theme           theme.Theme
	connState       client.ConnState
	agentName       string
	awaitingReply   bool
	creatingSession bool
}

func NewStatusBar(width int, t theme.Theme) *StatusBar {
	return &StatusBar{
		width: width,
		theme: t,
	}
}

func (s *StatusBar) SetConnState(state client.ConnState) {
	s.connState = state
}

func (s *StatusBar) SetAgentName(name string) {
	s.agentName = name
}

func (s *StatusBar) SetActivity(awaitingReply, creatingSession bool) {
	s.awaitingReply = awaitingReply
	s.creatingSession = creatingSession
}

func (s *StatusBar) SetSize(width int) {
	s.width = width
}

func (s *StatusBar) View() string {
	var statusIcon string
	switch s.connState {
	case client.StateConnected:
		statusIcon = "🟢"
	case client.StateConnecting:
		statusIcon = "🟡"
	default:
		statusIcon = "🔴"
	}

	statusPart := fmt.Sprintf("[%s %s]", statusIcon, s.connState)

	agentPart := s.agentName
	if agentPart == "" {
		agentPart = "Agent"
	}

	var activity string
	switch {
	case s.creatingSession:
		activity = " · creating session..."
	case s.awaitingReply:
		activity = " · thinking..."
	}

	shortcuts := "Tab: Focus, ctrl+n: New session, ctrl+c: Quit"

	leftContent := fmt.Sprintf("%s %s%s", statusPart, agentPart, activity)

	padding := s.width - len(stripAnsiForWidth(leftContent)) - len(shortcuts) - 7
	if padding < 1 {
		padding = 1
	}

	fullContent := fmt.Sprintf("%s%s| %s", leftContent, strings.Repeat(" ", padding), shortcuts)

	return s.theme.StatusBarStyle().
		Width(s.width - 2).
		Render(fullContent)
}

// stripAnsiForWidth removes ANSI codes to calculate actual display width.
func stripAnsiForWidth(s string) string {
	result := strings.Builder{}
	inEscape := false

	for _, r := range s {
		if r == '\x1b' {
			inEscape = true
			continue
		}
		if inEscape {
			if r == 'm' {
				inEscape = false
			}
			continue
		}
		result.WriteRune(r)
	}

	return result.String()
}
