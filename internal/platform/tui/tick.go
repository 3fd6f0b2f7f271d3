// Package tui runs registered games in the terminal with Bubble Tea.
// It owns the frame loop, key bindings, held-key emulation and output.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// maxStep caps the simulated time per tick so a stalled terminal does not
// teleport actors.
const maxStep = 0.1

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// stepSeconds returns the wall time between two ticks, clamped to
// (0, maxStep]. The first tick falls back to the nominal rate.
func stepSeconds(prev, now time.Time, fallback float64) float64 {
	if prev.IsZero() || !now.After(prev) {
		return fallback
	}
	return min(now.Sub(prev).Seconds(), maxStep)
}
