// ABOUTME: Entry point for the agent terminal client
// ABOUTME: Loads env credentials and configuration, then starts the Bubbletea program

package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/marvcks/adk-ui-starter/internal/appconfig"
	"github.com/marvcks/adk-ui-starter/internal/config"
	"github.com/marvcks/adk-ui-starter/internal/logger"
	"github.com/marvcks/adk-ui-starter/internal/tui"
)

var (
	configPath string
	serverURL  string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "adk-ui",
	Short: "Terminal client for an agent WebSocket backend",
	Long: `adk-ui connects to an agent WebSocket server, renders the
conversation turn by turn and manages chat sessions.`,
	RunE: run,
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "config file path")
	rootCmd.Flags().StringVarP(&serverURL, "server", "s", "", "server base URL (overrides config)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func run(cmd *cobra.Command, args []string) error {
	// .env is the cookie-equivalent credential store (APP_ACCESS_KEY,
	// CLIENT_NAME); absence is fine.
	_ = godotenv.Load()

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if serverURL != "" {
		cfg.Server.URL = serverURL
	}

	logger.SetVerbose(verbose || cfg.Logging.Verbose)
	if cfg.Logging.File != "" {
		if err := logger.SetFile(cfg.Logging.File); err != nil {
			// Fall back to stderr; the alt screen hides it anyway.
			logger.Warn("log file unavailable: %v", err)
		}
		defer logger.Close()
	}

	app := appconfig.Fetch(context.Background(), cfg.Server.URL)

	p := tea.NewProgram(tui.NewModel(cfg, app), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
