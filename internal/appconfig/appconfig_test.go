// ABOUTME: Unit tests for the /api/config display-configuration client
// ABOUTME: Every failure path must degrade to defaults, never an error

package appconfig

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetch_ParsesServerConfig(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/config", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"agent": {"name": "Research Agent", "description": "Digs through papers"},
			"ui": {"welcome_text": "Ask me about papers."}
		}`))
	}))
	defer server.Close()

	cfg := Fetch(context.Background(), server.URL)
	require.NotNil(t, cfg)
	assert.Equal(t, "Research Agent", cfg.AgentName)
	assert.Equal(t, "Digs through papers", cfg.Description)
	assert.Equal(t, "Ask me about papers.", cfg.WelcomeText)
}

func TestFetch_TitleFallsBackForWelcome(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"ui": {"title": "Agent Console"}}`))
	}))
	defer server.Close()

	cfg := Fetch(context.Background(), server.URL)
	assert.Equal(t, "Agent Console", cfg.WelcomeText)
	assert.Equal(t, "Agent", cfg.AgentName, "missing agent name keeps the default")
}

func TestFetch_DefaultsOnServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	cfg := Fetch(context.Background(), server.URL)
	assert.Equal(t, "Agent", cfg.AgentName)
	assert.NotEmpty(t, cfg.WelcomeText)
}

func TestFetch_DefaultsOnUnreachableServer(t *testing.T) {
	cfg := Fetch(context.Background(), "http://127.0.0.1:1")
	assert.Equal(t, "Agent", cfg.AgentName)
}

func TestFetch_DefaultsOnBadJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html>not json</html>`))
	}))
	defer server.Close()

	cfg := Fetch(context.Background(), server.URL)
	assert.Equal(t, "Agent", cfg.AgentName)
}
