// Package weather simulates the decorative storm behind the rainstorm game:
// falling rain, splashes where drops hit the ground, and lightning bursts.
// Nothing here affects gameplay.
package weather

import (
	"math/rand"

	"github.com/vovakirdan/rainstorm/internal/audio"
	"github.com/vovakirdan/rainstorm/internal/core"
)

// Drop is a single falling raindrop.
type Drop struct {
	Pos    core.Vec2
	Speed  float64
	Length float64
}

// Splash is a short-lived ripple where a drop hit the ground.
type Splash struct {
	Pos    core.Vec2
	Radius float64
	Life   float64
}

// Bolt is one lightning strike drawn as a polyline from the sky.
type Bolt struct {
	Points []core.Vec2
	Life   float64
}

const (
	splashLife     = 0.5
	splashGrowth   = 20.0 // Radius gained per second
	splashChance   = 0.1  // Chance per tick that a grounded drop splashes
	boltLife       = 0.15
	firstStrikeMin = 13.0
	firstStrikeMax = 20.0
	nextStrikeMin  = 4.0
	nextStrikeMax  = 8.0
)

// Storm owns every weather particle.
type Storm struct {
	drops    []Drop
	splashes []Splash
	bolts    []Bolt

	lightning  bool
	timer      float64
	cooldown   float64
	flashes    int
	flashTimer float64

	ground float64 // Ground line as a fraction of height
	rng    *rand.Rand
	sound  audio.Sink
}

// NewStorm creates a storm with n raindrops scattered above the play area.
func NewStorm(n int, lightning bool, ground float64, bounds core.Bounds, rng *rand.Rand, sound audio.Sink) *Storm {
	if sound == nil {
		sound = audio.Nop{}
	}
	s := &Storm{
		drops:     make([]Drop, n),
		lightning: lightning,
		ground:    ground,
		rng:       rng,
		sound:     sound,
	}
	s.cooldown = s.between(firstStrikeMin, firstStrikeMax)

	w, _ := bounds.Size()
	for i := range s.drops {
		s.drops[i] = s.newDrop(w)
	}
	return s
}

func (s *Storm) between(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

func (s *Storm) newDrop(w float64) Drop {
	return Drop{
		Pos:    core.Vec2{X: s.rng.Float64() * w, Y: s.between(-500, 0)},
		Speed:  s.between(300, 600),
		Length: s.between(10, 20),
	}
}

// Update advances rain, splashes and lightning by dt seconds.
func (s *Storm) Update(dt float64, bounds core.Bounds) {
	w, h := bounds.Size()
	groundY := h * s.ground

	for i := range s.drops {
		d := &s.drops[i]
		d.Pos.Y += d.Speed * dt
		bottom := d.Pos.Y + d.Length
		if bottom >= groundY && s.rng.Float64() < splashChance {
			s.splashes = append(s.splashes, Splash{Pos: core.Vec2{X: d.Pos.X, Y: bottom}, Radius: 2, Life: splashLife})
			*d = s.newDrop(w)
		} else if d.Pos.Y > h {
			*d = s.newDrop(w)
		}
	}

	kept := s.splashes[:0]
	for _, sp := range s.splashes {
		sp.Radius += splashGrowth * dt
		sp.Life -= dt
		if sp.Life > 0 {
			kept = append(kept, sp)
		}
	}
	s.splashes = kept

	if s.lightning {
		s.updateLightning(dt, w, h)
	}
}

// updateLightning fires a burst of 2-3 bolts once the cooldown elapses,
// spacing the follow-up flashes 50-150ms apart.
func (s *Storm) updateLightning(dt, w, h float64) {
	s.timer += dt

	if s.timer > s.cooldown && s.flashes == 0 {
		s.bolts = append(s.bolts, s.newBolt(w, h))
		s.sound.Play(audio.EffectThunder)
		s.flashes = 2 + s.rng.Intn(2)
		s.flashTimer = 0.1
		s.timer = 0
	}

	if s.flashes > 0 {
		s.flashTimer -= dt
		if s.flashTimer <= 0 {
			s.flashes--
			if s.flashes > 0 {
				s.bolts = append(s.bolts, s.newBolt(w, h))
				s.flashTimer = s.between(0.05, 0.15)
			} else {
				s.cooldown = s.between(nextStrikeMin, nextStrikeMax)
			}
		}
	}

	kept := s.bolts[:0]
	for _, b := range s.bolts {
		b.Life -= dt
		if b.Life > 0 {
			kept = append(kept, b)
		}
	}
	s.bolts = kept
}

// newBolt zigzags from the top of the sky to 70% of the height: wide
// horizontal jumps in the upper 40%, mostly vertical below.
func (s *Storm) newBolt(w, h float64) Bolt {
	x := s.between(w*0.2, w*0.8)
	y := 0.0
	points := []core.Vec2{{X: x, Y: y}}

	for y < h*0.7 {
		var dx, dy float64
		if y < h*0.4 {
			dx, dy = s.between(-50, 50), s.between(5, 15)
		} else {
			dx, dy = s.between(-15, 15), s.between(20, 40)
		}
		x = core.ClampF(x+dx, 0, w)
		y += dy
		points = append(points, core.Vec2{X: x, Y: y})
	}
	return Bolt{Points: points, Life: boltLife}
}

// Flashing reports whether a bolt is currently lighting the sky.
func (s *Storm) Flashing() bool { return len(s.bolts) > 0 }

// Drops returns the raindrops. The slice must not be modified.
func (s *Storm) Drops() []Drop { return s.drops }

// Splashes returns the live splashes. The slice must not be modified.
func (s *Storm) Splashes() []Splash { return s.splashes }

// Bolts returns the live lightning bolts. The slice must not be modified.
func (s *Storm) Bolts() []Bolt { return s.bolts }
