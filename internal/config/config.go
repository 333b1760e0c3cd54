// ABOUTME: Client configuration loading with YAML files and environment overrides
// ABOUTME: Credentials come from the environment (cookie-equivalent store), never the file

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/marvcks/adk-ui-starter/internal/xdg"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server  ServerConfig  `mapstructure:"server" yaml:"server"`
	Auth    AuthConfig    `mapstructure:"auth" yaml:"auth"`
	UI      UIConfig      `mapstructure:"ui" yaml:"ui"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

type ServerConfig struct {
	// URL is the http(s) base; the /ws endpoint is derived from it.
	URL              string `mapstructure:"url" yaml:"url"`
	ReconnectSeconds int    `mapstructure:"reconnect_seconds" yaml:"reconnect_seconds"`
}

type AuthConfig struct {
	AppAccessKey string `mapstructure:"app_access_key" yaml:"-"`
	ClientName   string `mapstructure:"client_name" yaml:"client_name"`
}

type UIConfig struct {
	Theme            string `mapstructure:"theme" yaml:"theme"`
	SidebarVisible   bool   `mapstructure:"sidebar_visible" yaml:"sidebar_visible"`
	ChatHistoryLimit int    `mapstructure:"chat_history_limit" yaml:"chat_history_limit"`
}

type LoggingConfig struct {
	Verbose bool   `mapstructure:"verbose" yaml:"verbose"`
	File    string `mapstructure:"file" yaml:"file"`
}

func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			URL:              "http://localhost:8000",
			ReconnectSeconds: 3,
		},
		Auth: AuthConfig{
			ClientName: "TerminalClient",
		},
		UI: UIConfig{
			Theme:            "default",
			SidebarVisible:   true,
			ChatHistoryLimit: 1000,
		},
		Logging: LoggingConfig{
			Verbose: false,
			File:    "$XDG_DATA_HOME/adk-ui/client.log",
		},
	}
}

// Load reads configuration from the given path (default:
// $XDG_CONFIG_HOME/adk-ui/config.yaml), then applies ADK_UI_* and
// credential environment overrides. A missing file is created with
// defaults; a broken file is an error.
func Load(configPath string) (*Config, error) {
	defaults := DefaultConfig()

	if configPath == "" {
		configPath = filepath.Join(xdg.ConfigHome(), "config.yaml")
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		// Write defaults so the user has something to edit; failure to
		// write is not fatal.
		_ = saveDefault(defaults, configPath)
		applyEnv(defaults)
		defaults.Validate()
		return defaults, nil
	}

	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	v.SetDefault("server.url", defaults.Server.URL)
	v.SetDefault("server.reconnect_seconds", defaults.Server.ReconnectSeconds)
	v.SetDefault("auth.client_name", defaults.Auth.ClientName)
	v.SetDefault("ui.theme", defaults.UI.Theme)
	v.SetDefault("ui.sidebar_visible", defaults.UI.SidebarVisible)
	v.SetDefault("ui.chat_history_limit", defaults.UI.ChatHistoryLimit)
	v.SetDefault("logging.verbose", defaults.Logging.Verbose)
	v.SetDefault("logging.file", defaults.Logging.File)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	applyEnv(&cfg)
	cfg.Validate()
	return &cfg, nil
}

// applyEnv overlays the credential environment variables. These are the
// cookie-equivalent store read at connect time.
func applyEnv(cfg *Config) {
	if key := os.Getenv("APP_ACCESS_KEY"); key != "" {
		cfg.Auth.AppAccessKey = key
	}
	if name := os.Getenv("CLIENT_NAME"); name != "" {
		cfg.Auth.ClientName = name
	}
	if serverURL := os.Getenv("ADK_UI_SERVER_URL"); serverURL != "" {
		cfg.Server.URL = serverURL
	}
}

func (c *Config) Validate() {
	if c.Server.ReconnectSeconds < 1 {
		c.Server.ReconnectSeconds = 1
	}
	if c.UI.ChatHistoryLimit < 100 {
		c.UI.ChatHistoryLimit = 100
	}
	if c.UI.ChatHistoryLimit > 10000 {
		c.UI.ChatHistoryLimit = 10000
	}
	c.Logging.File = xdg.ExpandPath(c.Logging.File)
}

func saveDefault(cfg *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
