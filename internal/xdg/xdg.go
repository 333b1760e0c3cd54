// ABOUTME: XDG Base Directory Specification support for Linux/Unix standards
// ABOUTME: Handles config and data directories with HOME fallback

package xdg

import (
	"os"
	"path/filepath"
	"strings"
)

const appDir = "adk-ui"

// ConfigHome returns ~/.config/adk-ui or respects XDG_CONFIG_HOME.
func ConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, appDir)
	}
	return filepath.Join(getHome(), ".config", appDir)
}

// DataHome returns ~/.local/share/adk-ui or respects XDG_DATA_HOME.
func DataHome() string {
	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		return filepath.Join(xdgData, appDir)
	}
	return filepath.Join(getHome(), ".local", "share", appDir)
}

// ExpandPath expands $XDG_* variables and ~ in config paths.
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(getHome(), path[2:])
	}

	if strings.HasPrefix(path, "$XDG_DATA_HOME") {
		xdgData := os.Getenv("XDG_DATA_HOME")
		if xdgData == "" {
			xdgData = filepath.Join(getHome(), ".local", "share")
		}
		return strings.Replace(path, "$XDG_DATA_HOME", xdgData, 1)
	}
	if strings.HasPrefix(path, "$XDG_CONFIG_HOME") {
		xdgConfig := os.Getenv("XDG_CONFIG_HOME")
		if xdgConfig == "" {
			xdgConfig = filepath.Join(getHome(), ".config")
		}
		return strings.Replace(path, "$XDG_CONFIG_HOME", xdgConfig, 1)
	}

	// Non-XDG paths pass through unchanged
	return path
}

// getHome returns HOME with a fallback chain.
func getHome() string {
	if home := os.Getenv("HOME"); home != "" {
		return home
	}
	if cwd, err := os.Getwd(); err == nil {
		return cwd
	}
	return "."
}
