// ABOUTME: Core Bubbletea model wiring the protocol engine to the UI components
// ABOUTME: Presentation only reads the conversation store and connection state

package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/marvcks/adk-ui-starter/internal/appconfig"
	"github.com/marvcks/adk-ui-starter/internal/client"
	"github.com/marvcks/adk-ui-starter/internal/config"
	"github.com/marvcks/adk-ui-starter/internal/tui/components"
	"github.com/marvcks/adk-ui-starter/internal/tui/theme"
)

// FocusArea represents which component currently has focus
type FocusArea int

const (
	FocusSidebar FocusArea = iota
	FocusChatView
	FocusInputArea
)

type Model struct {
	cfg    *config.Config
	app    *appconfig.AppConfig
	theme  theme.Theme
	width  int
	height int

	// Components
	sidebar   *components.Sidebar
	chatView  *components.ChatView
	inputArea *components.InputArea
	statusBar *components.StatusBar

	// Protocol engine
	conn    *client.ConnectionManager
	store   *client.Store
	router  *client.Router
	emitter *client.Emitter

	// UI state
	focusedArea    FocusArea
	sidebarVisible bool
}

func NewModel(cfg *config.Config, app *appconfig.AppConfig) Model {
	th := theme.GetTheme(cfg.UI.Theme)

	conn := client.NewConnectionManager(cfg.Server.URL, client.Credentials{
		AppAccessKey: cfg.Auth.AppAccessKey,
		ClientName:   cfg.Auth.ClientName,
	})
	if cfg.Server.ReconnectSeconds > 0 {
		conn.SetReconnectDelay(time.Duration(cfg.Server.ReconnectSeconds) * time.Second)
	}

	store := client.NewStore()

	// Sizes are placeholders until the first WindowSizeMsg.
	chatView := components.NewChatView(80, 20, th)
	chatView.SetWelcome(app.WelcomeText)
	statusBar := components.NewStatusBar(80, th)
	statusBar.SetAgentName(app.AgentName)
	inputArea := components.NewInputArea(80, 4, th)
	inputArea.Focus()

	return Model{
		cfg:            cfg,
		app:            app,
		theme:          th,
		sidebar:        components.NewSidebar(30, 24, th),
		chatView:       chatView,
		inputArea:      inputArea,
		statusBar:      statusBar,
		conn:           conn,
		store:          store,
		router:         client.NewRouter(store),
		emitter:        client.NewEmitter(conn, store),
		focusedArea:    FocusInputArea,
		sidebarVisible: cfg.UI.SidebarVisible,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.inputArea.Init(),
		m.connectCmd(),
		m.waitForFrame(),
		m.waitForError(),
		tickCmd(),
	)
}
