package rainstorm

import (
	"github.com/vovakirdan/rainstorm/internal/audio"
	"github.com/vovakirdan/rainstorm/internal/core"
)

// EnemyState is a zombie's current behavior. Dead is terminal.
type EnemyState int

const (
	EnemyAlive EnemyState = iota // pursuing the player
	EnemyAttacking
	EnemyDying
	EnemyDead
)

// String returns a human-readable name for the state.
func (s EnemyState) String() string {
	switch s {
	case EnemyAlive:
		return "alive"
	case EnemyAttacking:
		return "attacking"
	case EnemyDying:
		return "dying"
	case EnemyDead:
		return "dead"
	default:
		return "unknown"
	}
}

var enemyClips = map[EnemyState]Clip{
	EnemyAlive:     {Frames: 10, Cadence: frameCadence},
	EnemyAttacking: {Frames: 5, Cadence: frameCadence},
	EnemyDying:     {Frames: 9, Cadence: frameCadence},
	EnemyDead:      {Frames: 1, Cadence: frameCadence},
}

// attackHitFrame is the frame of the attack clip on which the bite lands.
const attackHitFrame = 2

// Hittable is the only capability an enemy has over the player.
type Hittable interface {
	Hit()
}

// Enemy is a single zombie.
type Enemy struct {
	pos             core.Vec2
	facingLeft      bool
	state           EnemyState
	anim            clock
	speed           float64 // Sampled once at spawn
	meleeRange      float64
	attackDelivered bool

	sound audio.Sink
}

func newEnemy(pos core.Vec2, facingLeft bool, speed, meleeRange float64, sound audio.Sink) *Enemy {
	if sound == nil {
		sound = audio.Nop{}
	}
	return &Enemy{
		pos:        pos,
		facingLeft: facingLeft,
		state:      EnemyAlive,
		speed:      speed,
		meleeRange: meleeRange,
		sound:      sound,
	}
}

// Update advances the zombie by dt seconds, chasing target and biting victim.
func (e *Enemy) Update(dt float64, target core.Vec2, victim Hittable) {
	switch e.state {
	case EnemyAlive:
		e.pursue(dt, target)
	case EnemyAttacking:
		e.attack(dt, victim)
	case EnemyDying:
		if e.AdvanceFrame(dt) && e.anim.frame >= enemyClips[EnemyDying].Frames {
			e.state = EnemyDead
			e.anim.frame = 0
		}
	case EnemyDead:
	}
}

func (e *Enemy) pursue(dt float64, target core.Vec2) {
	d := target.Sub(e.pos)
	dist := d.Len()
	e.facingLeft = d.X < 0

	if dist < e.meleeRange {
		e.state = EnemyAttacking
		e.anim.reset()
		e.attackDelivered = false
		return
	}

	e.pos = e.pos.Add(d.Scale(e.speed * dt / dist))

	if e.AdvanceFrame(dt) {
		e.anim.frame %= enemyClips[EnemyAlive].Frames
	}
}

func (e *Enemy) attack(dt float64, victim Hittable) {
	if !e.AdvanceFrame(dt) {
		return
	}

	if e.anim.frame == attackHitFrame && !e.attackDelivered {
		e.sound.Play(audio.EffectAttack)
		victim.Hit()
		e.attackDelivered = true
	}

	if e.anim.frame >= enemyClips[EnemyAttacking].Frames {
		e.state = EnemyAlive
		e.anim.reset()
		e.attackDelivered = false
	}
}

// kill starts the death animation. Only pursuing or attacking zombies can
// be killed; it reports whether the state changed.
func (e *Enemy) kill() bool {
	if e.state != EnemyAlive && e.state != EnemyAttacking {
		return false
	}
	e.state = EnemyDying
	e.anim.reset()
	return true
}

// OffScreen reports whether the zombie is further than margin outside the
// horizontal extent of a play area of width w.
func (e *Enemy) OffScreen(w, margin float64) bool {
	return e.pos.X < -margin || e.pos.X > w+margin
}

// AdvanceFrame implements Animated.
func (e *Enemy) AdvanceFrame(dt float64) bool {
	return e.anim.tick(dt, enemyClips[e.state].Cadence)
}

// Frame implements Animated.
func (e *Enemy) Frame() int { return e.anim.frame }

// StateName implements Animated.
func (e *Enemy) StateName() string { return e.state.String() }

// Position implements Animated.
func (e *Enemy) Position() core.Vec2 { return e.pos }

// FacingLeft implements Animated.
func (e *Enemy) FacingLeft() bool { return e.facingLeft }

// State returns the current behavior state.
func (e *Enemy) State() EnemyState { return e.state }

// Speed returns the movement speed in world units per second.
func (e *Enemy) Speed() float64 { return e.speed }
