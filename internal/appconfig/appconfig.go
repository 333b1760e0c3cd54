// ABOUTME: Client for the server's /api/config display-configuration endpoint
// ABOUTME: Read once at startup; defaults are used on any failure

package appconfig

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/marvcks/adk-ui-starter/internal/logger"
)

// AppConfig carries the display configuration the server exposes for
// its clients. Only presentation reads it.
type AppConfig struct {
	AgentName   string
	Description string
	WelcomeText string
}

func defaults() *AppConfig {
	return &AppConfig{
		AgentName:   "Agent",
		WelcomeText: "Start a conversation by typing a message.",
	}
}

type wireConfig struct {
	Agent struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	} `json:"agent"`
	UI struct {
		WelcomeText string `json:"welcome_text"`
		Title       string `json:"title"`
	} `json:"ui"`
}

// Fetch retrieves /api/config from the server base URL. Any failure
// (network, status, parse) logs and returns defaults; startup never
// blocks on this endpoint beyond the timeout.
func Fetch(ctx context.Context, serverURL string) *AppConfig {
	cfg := defaults()

	reqCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, serverURL+"/api/config", nil)
	if err != nil {
		logger.Debug("app config request: %v", err)
		return cfg
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		logger.Debug("app config fetch: %v", err)
		return cfg
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		logger.Debug("app config fetch: %v", fmt.Errorf("status %d", resp.StatusCode))
		return cfg
	}

	var wire wireConfig
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		logger.Debug("app config parse: %v", err)
		return cfg
	}

	if wire.Agent.Name != "" {
		cfg.AgentName = wire.Agent.Name
	}
	cfg.Description = wire.Agent.Description
	if wire.UI.WelcomeText != "" {
		cfg.WelcomeText = wire.UI.WelcomeText
	} else if wire.UI.Title != "" {
		cfg.WelcomeText = wire.UI.Title
	}
	return cfg
}
