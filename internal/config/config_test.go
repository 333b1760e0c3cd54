// ABOUTME: Unit tests for configuration loading
// ABOUTME: Covers defaults, YAML overrides, env overlays and validation clamps

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileCreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8000", cfg.Server.URL)
	assert.Equal(t, 3, cfg.Server.ReconnectSeconds)
	assert.Equal(t, "TerminalClient", cfg.Auth.ClientName)
	assert.True(t, cfg.UI.SidebarVisible)

	// The file was written so the user has something to edit.
	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestLoad_YAMLOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  url: https://agent.example.com
  reconnect_seconds: 10
ui:
  theme: dark
  sidebar_visible: false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://agent.example.com", cfg.Server.URL)
	assert.Equal(t, 10, cfg.Server.ReconnectSeconds)
	assert.Equal(t, "dark", cfg.UI.Theme)
	assert.False(t, cfg.UI.SidebarVisible)
	// Untouched sections keep their defaults.
	assert.Equal(t, "TerminalClient", cfg.Auth.ClientName)
}

func TestLoad_BrokenFileErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [not: valid"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_EnvOverlays(t *testing.T) {
	t.Setenv("APP_ACCESS_KEY", "env-key")
	t.Setenv("CLIENT_NAME", "EnvClient")
	t.Setenv("ADK_UI_SERVER_URL", "http://envhost:9000")

	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "env-key", cfg.Auth.AppAccessKey)
	assert.Equal(t, "EnvClient", cfg.Auth.ClientName)
	assert.Equal(t, "http://envhost:9000", cfg.Server.URL)
}

func TestValidate_Clamps(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Server.ReconnectSeconds = 0
	cfg.UI.ChatHistoryLimit = 5

	cfg.Validate()

	assert.Equal(t, 1, cfg.Server.ReconnectSeconds)
	assert.Equal(t, 100, cfg.UI.ChatHistoryLimit)

	cfg.UI.ChatHistoryLimit = 50000
	cfg.Validate()
	assert.Equal(t, 10000, cfg.UI.ChatHistoryLimit)
}
