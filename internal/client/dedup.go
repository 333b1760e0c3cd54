// ABOUTME: Frame deduplicator keyed by the opaque frame id
// ABOUTME: Guarantees idempotent application of re-delivered frames after reconnects

package client

import (
	"sync"

	"github.com/marvcks/adk-ui-starter/internal/protocol"
)

// Dedup tracks applied frame ids for the active session. The set is
// reset to exactly the ids of each full history load, so session-local
// id reuse cannot leak stale entries and the set never grows unbounded.
type Dedup struct {
	mu   sync.Mutex
	seen map[string]struct{}
}

func NewDedup() *Dedup {
	return &Dedup{seen: make(map[string]struct{})}
}

// ShouldApply reports whether a frame should be dispatched, recording
// its id on first sight. Tool and assistant frames pass through even
// when the id is already seen: their routing path is an in-place
// update keyed by that same id (a tool invocation reuses one id across
// lifecycle phases), and re-applying the identical frame converges on
// the same transcript. Append-only frame types are discarded on a
// repeat id to keep re-delivery a no-op.
func (d *Dedup) ShouldApply(f *protocol.Frame) bool {
	if f.ID == "" {
		return true
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.seen[f.ID]; ok {
		return updatesInPlace(f.Type)
	}
	d.seen[f.ID] = struct{}{}
	return true
}

// Reset replaces the seen set with exactly the given ids.
func (d *Dedup) Reset(ids []string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.seen = make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if id != "" {
			d.seen[id] = struct{}{}
		}
	}
}

func updatesInPlace(frameType string) bool {
	switch frameType {
	case protocol.TypeTool, protocol.TypeAssistant, protocol.TypeResponse:
		return true
	default:
		return false
	}
}
