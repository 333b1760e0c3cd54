// ABOUTME: ChatView component rendering the transcript with scrolling
// ABOUTME: Uses bubbles viewport and formats entries per role with tool captions

package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/marvcks/adk-ui-starter/internal/client"
	"github.com/marvcks/adk-ui-starter/internal/tui/theme"
)

type ChatView struct {
	width    int
	height   int
	theme    theme.Theme
	viewport viewport.Model
	messages []*client.Message
	welcome  string
}

func NewChatView(width, height int, t theme.Theme) *ChatView {
	vp := viewport.New(width, height)
	vp.Style = t.ChatViewStyle()

	return &ChatView{
		width:    width,
		height:   height,
		theme:    t,
		viewport: vp,
	}
}

// SetWelcome sets the text shown while the transcript is empty.
func (cv *ChatView) SetWelcome(text string) {
	cv.welcome = text
	if len(cv.messages) == 0 {
		cv.updateViewport()
	}
}

func (cv *ChatView) SetMessages(messages []*client.Message) {
	atBottom := cv.viewport.AtBottom()
	cv.messages = messages
	cv.updateViewport()
	if atBottom {
		cv.viewport.GotoBottom()
	}
}

func (cv *ChatView) formatMessage(msg *client.Message) string {
	var sb strings.Builder

	timestamp := cv.theme.DimStyle().Render(msg.Timestamp.Format("15:04"))
	header := fmt.Sprintf("%s %s", msg.Role.Icon(), timestamp)
	if msg.Role == client.RoleTool && msg.ToolName != "" {
		header = fmt.Sprintf("%s %s %s", msg.Role.Icon(),
			cv.theme.WarningStyle().Render(msg.ToolName), timestamp)
	}
	sb.WriteString(header)
	sb.WriteString("\n")

	contentStyle := cv.theme.ChatViewStyle()
	switch msg.Role {
	case client.RoleUser:
		contentStyle = contentStyle.Foreground(cv.theme.UserMsg)
	case client.RoleAssistant:
		contentStyle = contentStyle.Foreground(cv.theme.AgentMsg)
	case client.RoleTool:
		contentStyle = contentStyle.Foreground(cv.theme.ToolMsg)
	case client.RoleSystem:
		contentStyle = cv.theme.DimStyle()
	}

	sb.WriteString(contentStyle.Render(msg.Content))
	sb.WriteString("\n")

	if msg.Role == client.RoleTool && msg.InputParams != "" {
		params := cv.theme.DimStyle().Render("input: " + msg.InputParams)
		sb.WriteString(params)
		sb.WriteString("\n")
	}

	return sb.String()
}

func (cv *ChatView) updateViewport() {
	if len(cv.messages) == 0 {
		text := cv.welcome
		if text == "" {
			text = "No messages yet"
		}
		cv.viewport.SetContent(cv.theme.DimStyle().Render(text))
		return
	}

	var sb strings.Builder
	for i, msg := range cv.messages {
		sb.WriteString(cv.formatMessage(msg))
		if i < len(cv.messages)-1 {
			sb.WriteString("\n")
		}
	}

	cv.viewport.SetContent(sb.String())
}

func (cv *ChatView) ScrollToBottom() {
	cv.viewport.GotoBottom()
}

func (cv *ChatView) View() string {
	return cv.viewport.View()
}

func (cv *ChatView) SetSize(width, height int) {
	cv.width = width
	cv.height = height
	cv.viewport.Width = width
	cv.viewport.Height = height
	cv.updateViewport()
}

func (cv *ChatView) Init() tea.Cmd {
	return nil
}

func (cv *ChatView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	cv.viewport, cmd = cv.viewport.Update(msg)
	return cv, cmd
}
