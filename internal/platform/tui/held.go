package tui

import (
	"time"

	"github.com/vovakirdan/rainstorm/internal/core"
)

// DefaultHoldWindow is used when no hold window is configured.
const DefaultHoldWindow = 150 * time.Millisecond

// heldKeys emulates key-up events. Terminals report presses and
// auto-repeats only, so an action stays held until window has passed
// since its last report.
type heldKeys struct {
	window time.Duration
	last   map[core.Action]time.Time
}

func newHeldKeys(window time.Duration) *heldKeys {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &heldKeys{window: window, last: make(map[core.Action]time.Time)}
}

func (h *heldKeys) press(a core.Action, now time.Time) {
	h.last[a] = now
}

// fill marks every live action as held in frame and forgets expired ones.
func (h *heldKeys) fill(frame *core.InputFrame, now time.Time) {
	for a, t := range h.last {
		if now.Sub(t) > h.window {
			delete(h.last, a)
			continue
		}
		frame.Hold(a)
	}
}

func (h *heldKeys) reset() {
	clear(h.last)
}
