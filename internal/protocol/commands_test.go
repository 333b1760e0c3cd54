// ABOUTME: Unit tests for outbound command frame constructors
// ABOUTME: Verifies the JSON shapes the server dispatches on

package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageCommand(t *testing.T) {
	payload, err := MessageCommand("hello agent")
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"message","content":"hello agent"}`, string(payload))
}

func TestSessionCommands(t *testing.T) {
	payload, err := CreateSessionCommand()
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"create_session"}`, string(payload))

	payload, err = SwitchSessionCommand("s1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"switch_session","session_id":"s1"}`, string(payload))

	payload, err = DeleteSessionCommand("s1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"delete_session","session_id":"s1"}`, string(payload))
}

func TestAuthenticateCommand(t *testing.T) {
	payload, err := AuthenticateCommand("key123", "TerminalClient")
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"authenticate","appAccessKey":"key123","clientName":"TerminalClient"}`, string(payload))
}
