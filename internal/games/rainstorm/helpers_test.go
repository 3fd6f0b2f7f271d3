package rainstorm

import (
	"github.com/vovakirdan/rainstorm/internal/config"
	"github.com/vovakirdan/rainstorm/internal/core"
)

// frameDt is slightly longer than the shared cadence so every tick advances
// exactly one animation frame.
const frameDt = 0.11

var testBounds = core.FixedBounds{W: 800, H: 600}

func testConfig() config.RainstormConfig {
	cfg := config.DefaultRainstormConfig()
	cfg.Weather.Enabled = false
	return cfg
}

func held(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Hold(a)
	}
	return in
}

func pressed(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Press(a)
	}
	return in
}

// stubTarget stands in for the player in enemy and manager tests.
type stubTarget struct {
	pos        core.Vec2
	facingLeft bool
	hits       int
}

func (t *stubTarget) Hit()                { t.hits++ }
func (t *stubTarget) Position() core.Vec2 { return t.pos }
func (t *stubTarget) FacingLeft() bool    { return t.facingLeft }
