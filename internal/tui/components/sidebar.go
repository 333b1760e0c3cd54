// ABOUTME: Sidebar component displaying the session catalog
// ABOUTME: Handles navigation, selection and the active-session marker

package components

import (
	"fmt"
	"strings"

	"github.com/marvcks/adk-ui-starter/internal/client"
	"github.com/marvcks/adk-ui-starter/internal/tui/theme"
)

type Sidebar struct {
	width           int
	height          int
	theme           theme.Theme
	sessions        []*client.Session
	activeSessionID string
	cursor          int
}

func NewSidebar(width, height int, t theme.Theme) *Sidebar {
	return &Sidebar{
		width:  width,
		height: height,
		theme:  t,
	}
}

// SetSessions replaces the catalog view; the cursor is clamped and
// snapped to the active session when it moved elsewhere.
func (s *Sidebar) SetSessions(sessions []*client.Session, activeID string) {
	s.sessions = sessions
	s.activeSessionID = activeID

	if s.cursor >= len(sessions) {
		s.cursor = len(sessions) - 1
	}
	if s.cursor < 0 {
		s.cursor = 0
	}
	for i, sess := range sessions {
		if sess.ID == activeID {
			s.cursor = i
			break
		}
	}
}

func (s *Sidebar) CursorDown() {
	if len(s.sessions) == 0 {
		return
	}
	s.cursor++
	if s.cursor >= len(s.sessions) {
		s.cursor = 0 // Wrap to top
	}
}

func (s *Sidebar) CursorUp() {
	if len(s.sessions) == 0 {
		return
	}
	s.cursor--
	if s.cursor < 0 {
		s.cursor = len(s.sessions) - 1 // Wrap to bottom
	}
}

func (s *Sidebar) SelectedSession() *client.Session {
	if len(s.sessions) == 0 || s.cursor < 0 || s.cursor >= len(s.sessions) {
		return nil
	}
	return s.sessions[s.cursor]
}

func (s *Sidebar) View() string {
	if len(s.sessions) == 0 {
		emptyMsg := s.theme.DimStyle().Render("No sessions\n\nPress ctrl+n to create one")
		return s.theme.SidebarStyle().
			Width(s.width - 2).
			Height(s.height - 2).
			Render(emptyMsg)
	}

	var items []string

	title := s.theme.ActiveSessionStyle().
		Width(s.width - 4).
		Render("SESSIONS")
	items = append(items, title, "")

	for i, sess := range s.sessions {
		marker := " "
		if sess.ID == s.activeSessionID {
			marker = "●"
		}

		name := sess.Title
		maxLen := s.width - 10
		if len(name) > maxLen && maxLen > 3 {
			name = name[:maxLen-3] + "..."
		}

		line := fmt.Sprintf("%s %s (%d)", marker, name, sess.MessageCount)

		if i == s.cursor {
			line = s.theme.ActiveSessionStyle().
				Width(s.width - 4).
				Render(line)
		} else {
			line = s.theme.InactiveSessionStyle().
				Width(s.width - 4).
				Render(line)
		}

		items = append(items, line)
	}

	help := s.theme.DimStyle().Render("\n↑↓: Navigate\nenter: Switch\nctrl+n: New\nctrl+d: Delete")
	items = append(items, "", help)

	return s.theme.SidebarStyle().
		Width(s.width - 2).
		Height(s.height - 2).
		Render(strings.Join(items, "\n"))
}

func (s *Sidebar) SetSize(width, height int) {
	s.width = width
	s.height = height
}
