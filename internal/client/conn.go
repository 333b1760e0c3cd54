// ABOUTME: WebSocket connection manager for the agent server
// ABOUTME: Owns the single physical connection, auth bootstrapping and the reconnect loop

package client

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/marvcks/adk-ui-starter/internal/logger"
	"github.com/marvcks/adk-ui-starter/internal/protocol"
)

type ConnState int

const (
	StateDisconnected ConnState = iota
	StateConnecting
	StateConnected
)

func (s ConnState) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	default:
		return "unknown"
	}
}

const (
	// DefaultReconnectDelay is the fixed pause before a reconnect attempt.
	DefaultReconnectDelay = 3 * time.Second

	// authSettleDelay keeps the late-credential authenticate frame from
	// racing the open handshake.
	authSettleDelay = 100 * time.Millisecond

	dialTimeout = 30 * time.Second
)

var ErrNotConnected = errors.New("not connected")

// Credentials is the cookie-equivalent credential pair read from the
// environment at startup.
type Credentials struct {
	AppAccessKey string
	ClientName   string
}

// ConnectionManager owns one physical connection at a time. Transport
// failures are never fatal: they flip the state to disconnected and the
// reconnect loop runs until Teardown.
type ConnectionManager struct {
	mu      sync.Mutex
	writeMu sync.Mutex

	serverURL string
	creds     Credentials

	conn  *websocket.Conn
	state ConnState
	gen   int // bumped per connection attempt; stale read loops are ignored

	incoming chan []byte
	errs     chan error
	done     chan struct{}

	reconnectDelay time.Duration
	reconnectTimer *time.Timer
	tornDown       bool
	authSent       bool
}

// NewConnectionManager builds a manager for the given http(s) server
// base URL. No connection is opened until Connect.
func NewConnectionManager(serverURL string, creds Credentials) *ConnectionManager {
	return &ConnectionManager{
		serverURL:      serverURL,
		creds:          creds,
		state:          StateDisconnected,
		incoming:       make(chan []byte, 100),
		errs:           make(chan error, 10),
		done:           make(chan struct{}),
		reconnectDelay: DefaultReconnectDelay,
	}
}

// SetReconnectDelay overrides the reconnect pause. Used by tests.
func (c *ConnectionManager) SetReconnectDelay(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reconnectDelay = d
}

func (c *ConnectionManager) State() ConnState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Incoming delivers raw inbound frames in transport order.
func (c *ConnectionManager) Incoming() <-chan []byte {
	return c.incoming
}

// Errors surfaces transport failures for display; they carry no
// recovery obligation, the reconnect loop handles that.
func (c *ConnectionManager) Errors() <-chan error {
	return c.errs
}

// Connect establishes the connection, closing any previous one first so
// at most one is ever live. Failures schedule a reconnect attempt.
func (c *ConnectionManager) Connect() error {
	c.mu.Lock()
	if c.tornDown {
		c.mu.Unlock()
		return fmt.Errorf("connection manager torn down")
	}
	if c.conn != nil {
		_ = c.conn.Close()
		c.conn = nil
	}
	if c.reconnectTimer != nil {
		c.reconnectTimer.Stop()
		c.reconnectTimer = nil
	}
	c.gen++
	gen := c.gen
	c.state = StateConnecting
	target, err := wsEndpoint(c.serverURL, c.creds)
	credsOnDial := c.creds.AppAccessKey != ""
	c.mu.Unlock()

	if err != nil {
		c.failConnect(gen, err)
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), dialTimeout)
	defer cancel()

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, target, nil) //nolint:bodyclose // websocket connection, not HTTP response
	if err != nil {
		c.failConnect(gen, fmt.Errorf("dial: %w", err))
		return fmt.Errorf("dial: %w", err)
	}

	c.mu.Lock()
	if c.tornDown || gen != c.gen {
		c.mu.Unlock()
		_ = conn.Close()
		return fmt.Errorf("connection superseded")
	}
	c.conn = conn
	c.state = StateConnected
	// Credentials passed as query parameters count as the handshake;
	// the authenticate fallback stays available otherwise.
	c.authSent = credsOnDial
	c.mu.Unlock()

	logger.Info("connected to %s", target)
	go c.readLoop(conn, gen)
	return nil
}

func (c *ConnectionManager) failConnect(gen int, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.tornDown || gen != c.gen {
		return
	}
	c.state = StateDisconnected
	c.scheduleReconnectLocked()
	logger.Warn("connect failed: %v", err)
}

// Send writes one frame on the live connection. Every caller goes
// through here; liveness is re-checked at write time.
func (c *ConnectionManager) Send(payload []byte) error {
	c.mu.Lock()
	if c.state != StateConnected || c.conn == nil {
		c.mu.Unlock()
		return ErrNotConnected
	}
	conn := c.conn
	c.mu.Unlock()

	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

// SetCredentials installs credentials discovered after dial time. If a
// connection is already open and never authenticated, a one-shot
// authenticate frame is sent after a short settle delay.
func (c *ConnectionManager) SetCredentials(creds Credentials) {
	c.mu.Lock()
	c.creds = creds
	sendFallback := c.state == StateConnected && !c.authSent && creds.AppAccessKey != ""
	if sendFallback {
		c.authSent = true
	}
	c.mu.Unlock()

	if !sendFallback {
		return
	}
	time.AfterFunc(authSettleDelay, func() {
		payload, err := protocol.AuthenticateCommand(creds.AppAccessKey, creds.ClientName)
		if err != nil {
			return
		}
		if err := c.Send(payload); err != nil {
			logger.Warn("authenticate fallback failed: %v", err)
		}
	})
}

// Teardown cancels any pending reconnect and closes the connection.
// No state transitions occur afterwards.
func (c *ConnectionManager) Teardown() {
	c.mu.Lock()
	if c.tornDown {
		c.mu.Unlock()
		return
	}
	c.tornDown = true
	c.gen++
	if c.reconnectTimer != nil {
		c.reconnectTimer.Stop()
		c.reconnectTimer = nil
	}
	if c.conn != nil {
		_ = c.conn.Close()
		c.conn = nil
	}
	c.state = StateDisconnected
	c.mu.Unlock()

	close(c.done)
}

func (c *ConnectionManager) readLoop(conn *websocket.Conn, gen int) {
	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			c.handleReadError(gen, err)
			return
		}
		select {
		case c.incoming <- msg:
		case <-c.done:
			return
		}
	}
}

func (c *ConnectionManager) handleReadError(gen int, err error) {
	c.mu.Lock()
	if c.tornDown || gen != c.gen {
		c.mu.Unlock()
		return
	}
	if c.conn != nil {
		_ = c.conn.Close()
		c.conn = nil
	}
	c.state = StateDisconnected
	c.scheduleReconnectLocked()
	c.mu.Unlock()

	logger.Warn("connection lost: %v", err)
	select {
	case c.errs <- fmt.Errorf("read: %w", err):
	default:
	}
}

// scheduleReconnectLocked arms the cancellable reconnect timer. Caller
// holds c.mu.
func (c *ConnectionManager) scheduleReconnectLocked() {
	if c.tornDown {
		return
	}
	if c.reconnectTimer != nil {
		c.reconnectTimer.Stop()
	}
	c.reconnectTimer = time.AfterFunc(c.reconnectDelay, func() {
		if err := c.Connect(); err != nil {
			logger.Debug("reconnect attempt failed: %v", err)
		}
	})
}

// wsEndpoint derives the /ws endpoint from the server base URL,
// upgrading the scheme (http→ws, https→wss) and appending credential
// query parameters when available.
func wsEndpoint(serverURL string, creds Credentials) (string, error) {
	u, err := url.Parse(serverURL)
	if err != nil {
		return "", fmt.Errorf("parse server url: %w", err)
	}
	switch u.Scheme {
	case "http", "ws":
		u.Scheme = "ws"
	case "https", "wss":
		u.Scheme = "wss"
	default:
		return "", fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	u.Path = "/ws"

	if creds.AppAccessKey != "" {
		q := u.Query()
		q.Set("appAccessKey", creds.AppAccessKey)
		if creds.ClientName != "" {
			q.Set("clientName", creds.ClientName)
		}
		u.RawQuery = q.Encode()
	}
	return u.String(), nil
}
