package rainstorm

import "github.com/vovakirdan/rainstorm/internal/core"

// Clip describes one animation strip: how many frames it has and how long
// each frame stays on screen.
type Clip struct {
	Frames  int
	Cadence float64 // Seconds per frame
}

// frameCadence is shared by every clip in the game.
const frameCadence = 0.1

// clock tracks the current frame of a clip and the time accumulated since
// the frame last advanced.
type clock struct {
	frame int
	timer float64
}

// tick accumulates dt and advances one frame once more than cadence has
// passed. The accumulator restarts from zero, dropping any overshoot.
func (c *clock) tick(dt, cadence float64) bool {
	c.timer += dt
	if c.timer > cadence {
		c.frame++
		c.timer = 0
		return true
	}
	return false
}

func (c *clock) reset() {
	c.frame = 0
	c.timer = 0
}

// Animated is the capability set shared by the player and the zombies.
// Each implementation keeps its own state enum and clip table.
type Animated interface {
	// AdvanceFrame feeds dt into the current clip and reports whether
	// the frame index moved.
	AdvanceFrame(dt float64) bool
	Frame() int
	StateName() string
	Position() core.Vec2
	FacingLeft() bool
}

// groundBand returns the vertical range actors are confined to for a
// play area of height h.
func groundBand(top, bottom, h float64) (float64, float64) {
	return h * top, h * bottom
}
