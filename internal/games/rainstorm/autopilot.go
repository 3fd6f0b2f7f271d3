package rainstorm

import (
	"math"

	"github.com/vovakirdan/rainstorm/internal/core"
)

// Autopilot returns the input a simple bot would give this tick. It lines
// up with the closest zombie, turns toward it and fires, and reloads when
// the magazine is empty. Used for headless runs.
func Autopilot(w *World) core.InputFrame {
	in := core.NewInputFrame()
	p := w.Player()
	if p.IsDead() || p.IsRecharging() {
		return in
	}
	if p.Ammo() == 0 {
		in.Press(core.ActionReload)
		return in
	}

	pos := p.Position()
	var (
		target core.Vec2
		found  bool
		best   = math.Inf(1)
	)
	for _, e := range w.Enemies().enemies {
		if e.state != EnemyAlive && e.state != EnemyAttacking {
			continue
		}
		if d := math.Abs(e.pos.X - pos.X); d < best {
			best, target, found = d, e.pos, true
		}
	}
	if !found {
		return in
	}

	combat := w.cfg.Combat
	dx, dy := target.X-pos.X, target.Y-pos.Y
	wantLeft := dx < 0

	switch {
	case wantLeft != p.FacingLeft():
		if wantLeft {
			in.Hold(core.ActionLeft)
		} else {
			in.Hold(core.ActionRight)
		}
	case math.Abs(dy) >= combat.ShotBandY/2:
		if dy < 0 {
			in.Hold(core.ActionUp)
		} else {
			in.Hold(core.ActionDown)
		}
	case math.Abs(dx) <= combat.ShotRangeX:
		in.Hold(core.ActionFire)
	}
	return in
}
