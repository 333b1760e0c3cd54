// ABOUTME: Unit tests for the frame deduplicator
// ABOUTME: Covers repeat-id discard, update-path passthrough and set reset

package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/marvcks/adk-ui-starter/internal/protocol"
)

func TestDedup_FirstSightApplies(t *testing.T) {
	d := NewDedup()

	assert.True(t, d.ShouldApply(&protocol.Frame{Type: protocol.TypeError, ID: "e1"}))
	assert.False(t, d.ShouldApply(&protocol.Frame{Type: protocol.TypeError, ID: "e1"}))
}

func TestDedup_NoIDAlwaysApplies(t *testing.T) {
	d := NewDedup()

	assert.True(t, d.ShouldApply(&protocol.Frame{Type: protocol.TypeComplete}))
	assert.True(t, d.ShouldApply(&protocol.Frame{Type: protocol.TypeComplete}))
}

func TestDedup_UpdatePathTypesPassOnRepeat(t *testing.T) {
	d := NewDedup()

	// A tool invocation reuses one id across lifecycle phases.
	assert.True(t, d.ShouldApply(&protocol.Frame{Type: protocol.TypeTool, ID: "t1", Status: "executing"}))
	assert.True(t, d.ShouldApply(&protocol.Frame{Type: protocol.TypeTool, ID: "t1", Status: "completed"}))

	// Streaming assistant output re-delivers under a stable id.
	assert.True(t, d.ShouldApply(&protocol.Frame{Type: protocol.TypeAssistant, ID: "a1"}))
	assert.True(t, d.ShouldApply(&protocol.Frame{Type: protocol.TypeAssistant, ID: "a1"}))
}

func TestDedup_Reset(t *testing.T) {
	d := NewDedup()

	assert.True(t, d.ShouldApply(&protocol.Frame{Type: protocol.TypeError, ID: "e1"}))
	d.Reset([]string{"m1", "m2"})

	// e1 was dropped by the reset; history ids are pre-seen.
	assert.True(t, d.ShouldApply(&protocol.Frame{Type: protocol.TypeError, ID: "e1"}))
	assert.False(t, d.ShouldApply(&protocol.Frame{Type: protocol.TypeError, ID: "m1"}))
	assert.False(t, d.ShouldApply(&protocol.Frame{Type: protocol.TypeError, ID: "m2"}))
}
