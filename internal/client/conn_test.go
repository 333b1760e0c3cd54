// ABOUTME: Unit tests for the WebSocket connection manager
// ABOUTME: Uses httptest mock servers for lifecycle, auth and reconnect coverage

package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// newAgentServer runs handler for every accepted connection.
func newAgentServer(t *testing.T, handler func(conn *websocket.Conn, r *http.Request)) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		handler(conn, r)
	}))
}

func echoHandler(conn *websocket.Conn, _ *http.Request) {
	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			return
		}
		if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			return
		}
	}
}

func TestConnectionManager_Connect(t *testing.T) {
	server := newAgentServer(t, echoHandler)
	defer server.Close()

	cm := NewConnectionManager(server.URL, Credentials{})
	defer cm.Teardown()

	assert.Equal(t, StateDisconnected, cm.State())
	require.NoError(t, cm.Connect())
	assert.Equal(t, StateConnected, cm.State())
}

func TestConnectionManager_DialsWSPath(t *testing.T) {
	var mu sync.Mutex
	var gotPath string

	server := newAgentServer(t, func(conn *websocket.Conn, r *http.Request) {
		mu.Lock()
		gotPath = r.URL.Path
		mu.Unlock()
		echoHandler(conn, r)
	})
	defer server.Close()

	cm := NewConnectionManager(server.URL, Credentials{})
	defer cm.Teardown()
	require.NoError(t, cm.Connect())

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, "/ws", gotPath)
}

func TestConnectionManager_CredentialsAsQueryParams(t *testing.T) {
	var mu sync.Mutex
	var gotKey, gotName string

	server := newAgentServer(t, func(conn *websocket.Conn, r *http.Request) {
		mu.Lock()
		gotKey = r.URL.Query().Get("appAccessKey")
		gotName = r.URL.Query().Get("clientName")
		mu.Unlock()
		echoHandler(conn, r)
	})
	defer server.Close()

	cm := NewConnectionManager(server.URL, Credentials{AppAccessKey: "key123", ClientName: "TestClient"})
	defer cm.Teardown()
	require.NoError(t, cm.Connect())

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, "key123", gotKey)
	assert.Equal(t, "TestClient", gotName)
}

func TestConnectionManager_SendReceive(t *testing.T) {
	server := newAgentServer(t, echoHandler)
	defer server.Close()

	cm := NewConnectionManager(server.URL, Credentials{})
	defer cm.Teardown()
	require.NoError(t, cm.Connect())

	payload := []byte(`{"type":"message","content":"hi"}`)
	require.NoError(t, cm.Send(payload))

	select {
	case msg := <-cm.Incoming():
		assert.Equal(t, payload, msg)
	case <-time.After(1 * time.Second):
		t.Fatal("timeout waiting for message")
	}
}

func TestConnectionManager_SendWhileDisconnected(t *testing.T) {
	cm := NewConnectionManager("http://localhost:0", Credentials{})
	defer cm.Teardown()

	err := cm.Send([]byte(`{"type":"message","content":"hi"}`))
	assert.ErrorIs(t, err, ErrNotConnected)
}

func TestConnectionManager_ReconnectsAfterDrop(t *testing.T) {
	var mu sync.Mutex
	connects := 0

	server := newAgentServer(t, func(conn *websocket.Conn, r *http.Request) {
		mu.Lock()
		connects++
		first := connects == 1
		mu.Unlock()
		if first {
			// Drop the first connection immediately.
			return
		}
		echoHandler(conn, r)
	})
	defer server.Close()

	cm := NewConnectionManager(server.URL, Credentials{})
	cm.SetReconnectDelay(50 * time.Millisecond)
	defer cm.Teardown()
	require.NoError(t, cm.Connect())

	// The drop flips the state to disconnected, then the reconnect
	// loop re-establishes on its own.
	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return connects >= 2 && cm.State() == StateConnected
	}, 3*time.Second, 20*time.Millisecond)
}

func TestConnectionManager_TeardownCancelsReconnect(t *testing.T) {
	var mu sync.Mutex
	connects := 0

	server := newAgentServer(t, func(conn *websocket.Conn, r *http.Request) {
		mu.Lock()
		connects++
		mu.Unlock()
		// Drop every connection.
	})
	defer server.Close()

	cm := NewConnectionManager(server.URL, Credentials{})
	cm.SetReconnectDelay(30 * time.Millisecond)
	require.NoError(t, cm.Connect())

	// Let the first drop register, then tear down.
	time.Sleep(20 * time.Millisecond)
	cm.Teardown()
	assert.Equal(t, StateDisconnected, cm.State())

	mu.Lock()
	seen := connects
	mu.Unlock()

	time.Sleep(150 * time.Millisecond)
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, seen, connects, "no reconnects after teardown")
}

func TestConnectionManager_LateCredentialsSendAuthenticate(t *testing.T) {
	frames := make(chan []byte, 10)

	server := newAgentServer(t, func(conn *websocket.Conn, r *http.Request) {
		for {
			_, msg, err := conn.ReadMessage()
			if err != nil {
				return
			}
			frames <- msg
		}
	})
	defer server.Close()

	cm := NewConnectionManager(server.URL, Credentials{})
	defer cm.Teardown()
	require.NoError(t, cm.Connect())

	cm.SetCredentials(Credentials{AppAccessKey: "late-key", ClientName: "LateClient"})

	select {
	case raw := <-frames:
		var got map[string]string
		require.NoError(t, json.Unmarshal(raw, &got))
		assert.Equal(t, "authenticate", got["type"])
		assert.Equal(t, "late-key", got["appAccessKey"])
		assert.Equal(t, "LateClient", got["clientName"])
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for authenticate frame")
	}

	// One-shot: setting credentials again must not re-send.
	cm.SetCredentials(Credentials{AppAccessKey: "late-key", ClientName: "LateClient"})
	select {
	case <-frames:
		t.Fatal("authenticate fallback sent twice")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWSEndpoint(t *testing.T) {
	tests := []struct {
		name  string
		base  string
		creds Credentials
		want  string
	}{
		{"http upgrades to ws", "http://example.com:8000", Credentials{}, "ws://example.com:8000/ws"},
		{"https upgrades to wss", "https://example.com", Credentials{}, "wss://example.com/ws"},
		{
			"credentials become query params",
			"http://example.com",
			Credentials{AppAccessKey: "k", ClientName: "c"},
			"ws://example.com/ws?appAccessKey=k&clientName=c",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := wsEndpoint(tt.base, tt.creds)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := wsEndpoint("ftp://example.com", Credentials{})
	assert.Error(t, err)
}
