package rainstorm

import (
	"github.com/vovakirdan/rainstorm/internal/audio"
	"github.com/vovakirdan/rainstorm/internal/config"
	"github.com/vovakirdan/rainstorm/internal/core"
)

// PlayerState is the player's current behavior. Exactly one is active.
type PlayerState int

const (
	PlayerIdle PlayerState = iota
	PlayerWalking
	PlayerRunning
	PlayerShooting
	PlayerRecharging
	PlayerDying
)

// String returns a human-readable name for the state.
func (s PlayerState) String() string {
	switch s {
	case PlayerIdle:
		return "idle"
	case PlayerWalking:
		return "walking"
	case PlayerRunning:
		return "running"
	case PlayerShooting:
		return "shooting"
	case PlayerRecharging:
		return "recharging"
	case PlayerDying:
		return "dying"
	default:
		return "unknown"
	}
}

var playerClips = map[PlayerState]Clip{
	PlayerIdle:       {Frames: 7, Cadence: frameCadence},
	PlayerWalking:    {Frames: 7, Cadence: frameCadence},
	PlayerRunning:    {Frames: 8, Cadence: frameCadence},
	PlayerShooting:   {Frames: 4, Cadence: frameCadence},
	PlayerRecharging: {Frames: 13, Cadence: frameCadence},
	PlayerDying:      {Frames: 4, Cadence: frameCadence},
}

// shotEffectFrame is the frame of the shot clip on which the round leaves the barrel.
const shotEffectFrame = 2

// PlayerEvents carries the one-shot events a player update produced.
// It is returned by value and never stored, so a shot can be observed by
// at most one enemy manager update.
type PlayerEvents struct {
	Fired bool
}

// Player is the survivor controlled by the user.
type Player struct {
	pos        core.Vec2
	facingLeft bool
	state      PlayerState
	anim       clock

	ammo       int
	shooting   bool
	recharging bool

	health   int
	hit      bool
	hitTimer float64

	dead        bool
	deathPrompt bool
	score       int

	cfg   config.PlayerConfig
	world config.WorldConfig
	sound audio.Sink
}

// NewPlayer creates a player standing in the middle of the ground band.
func NewPlayer(cfg config.PlayerConfig, world config.WorldConfig, bounds core.Bounds, sound audio.Sink) *Player {
	if sound == nil {
		sound = audio.Nop{}
	}
	w, h := bounds.Size()
	top, bottom := groundBand(world.GroundTop, world.GroundBottom, h)

	return &Player{
		pos:    core.Vec2{X: w / 2, Y: (top + bottom) / 2},
		state:  PlayerIdle,
		ammo:   cfg.Magazine,
		health: cfg.Health,
		cfg:    cfg,
		world:  world,
		sound:  sound,
	}
}

// Update advances the player by dt seconds. Branches run in priority order
// (dying, shooting, recharging, movement); the first one that applies
// claims the tick.
func (p *Player) Update(dt float64, in core.InputFrame, bounds core.Bounds) PlayerEvents {
	if p.dead {
		p.updateDying(dt)
		return PlayerEvents{}
	}

	p.updateHitFlash(dt)

	if in.IsHeld(core.ActionFire) && p.ammo > 0 && !p.recharging && !p.shooting {
		p.setState(PlayerShooting)
		p.anim.reset()
		p.shooting = true
	}
	if p.shooting {
		return p.updateShooting(dt, in)
	}

	wantsReload := in.WasPressed(core.ActionReload) || (in.IsHeld(core.ActionFire) && p.ammo == 0)
	if wantsReload && !p.recharging {
		p.recharging = true
		p.sound.Play(audio.EffectReload)
		p.setState(PlayerRecharging)
		p.anim.reset()
	}
	if p.recharging {
		p.updateRecharging(dt)
		return PlayerEvents{}
	}

	p.updateMovement(dt, in, bounds)
	return PlayerEvents{}
}

func (p *Player) updateDying(dt float64) {
	frames := playerClips[PlayerDying].Frames
	if p.AdvanceFrame(dt) && p.anim.frame >= frames {
		p.anim.frame = frames - 1
		p.deathPrompt = true
	}
}

func (p *Player) updateHitFlash(dt float64) {
	if !p.hit {
		return
	}
	p.hitTimer += dt
	if p.hitTimer > p.cfg.HitFlash {
		p.hit = false
		p.hitTimer = 0
	}
}

func (p *Player) updateShooting(dt float64, in core.InputFrame) PlayerEvents {
	var ev PlayerEvents
	if !p.AdvanceFrame(dt) {
		return ev
	}

	if p.anim.frame == shotEffectFrame {
		ev.Fired = true
		p.score += p.cfg.ScorePerShot
		p.sound.Play(audio.EffectShoot)
	}

	if p.anim.frame >= playerClips[PlayerShooting].Frames {
		p.ammo--
		if p.ammo > 0 && in.IsHeld(core.ActionFire) {
			p.anim.reset() // chained fire
		} else {
			p.shooting = false
			p.setState(PlayerIdle)
			p.anim.reset()
		}
	}
	return ev
}

func (p *Player) updateRecharging(dt float64) {
	if p.AdvanceFrame(dt) && p.anim.frame >= playerClips[PlayerRecharging].Frames {
		p.recharging = false
		p.ammo = p.cfg.Magazine
		p.setState(PlayerIdle)
		p.anim.reset()
	}
}

func (p *Player) updateMovement(dt float64, in core.InputFrame, bounds core.Bounds) {
	var dir core.Vec2
	moving := false

	if in.IsHeld(core.ActionLeft) {
		dir.X--
		moving = true
		p.facingLeft = true
	}
	if in.IsHeld(core.ActionRight) {
		dir.X++
		moving = true
		p.facingLeft = false
	}
	if in.IsHeld(core.ActionUp) {
		dir.Y--
		moving = true
	}
	if in.IsHeld(core.ActionDown) {
		dir.Y++
		moving = true
	}

	sprinting := in.IsHeld(core.ActionSprint)
	speed := p.cfg.Speed
	if sprinting {
		speed = p.cfg.SprintSpeed
	}
	p.pos = p.pos.Add(dir.Scale(speed * dt))

	switch {
	case moving && sprinting:
		p.setState(PlayerRunning)
	case moving:
		p.setState(PlayerWalking)
	default:
		p.setState(PlayerIdle)
	}

	p.clamp(bounds)

	if p.AdvanceFrame(dt) {
		p.anim.frame %= playerClips[p.state].Frames
	}
}

// clamp keeps the player on screen and inside the ground band for the
// current play-area size.
func (p *Player) clamp(bounds core.Bounds) {
	w, h := bounds.Size()
	top, bottom := groundBand(p.world.GroundTop, p.world.GroundBottom, h)
	p.pos.X = core.ClampF(p.pos.X, 0, w)
	p.pos.Y = core.ClampF(p.pos.Y, top, bottom)
}

// setState switches the behavior state, keeping the frame index inside
// the new clip.
func (p *Player) setState(s PlayerState) {
	p.state = s
	if n := playerClips[s].Frames; p.anim.frame >= n {
		p.anim.frame %= n
	}
}

// Hit applies one enemy hit. It is a no-op while the hit flash is active or
// once the player is dead. The animation state is left untouched.
func (p *Player) Hit() {
	if p.hit || p.dead {
		return
	}

	p.hit = true
	p.hitTimer = 0
	p.health -= p.cfg.Damage

	if p.health <= 0 {
		p.health = 0
		p.sound.Play(audio.EffectDeath)
		p.die()
		return
	}
	p.sound.Play(audio.EffectHurt)
}

func (p *Player) die() {
	if p.dead {
		return
	}
	p.dead = true
	p.shooting = false
	p.recharging = false
	p.state = PlayerDying
	p.anim.reset()
	p.deathPrompt = false
}

// AdvanceFrame implements Animated.
func (p *Player) AdvanceFrame(dt float64) bool {
	return p.anim.tick(dt, playerClips[p.state].Cadence)
}

// Frame implements Animated.
func (p *Player) Frame() int { return p.anim.frame }

// StateName implements Animated.
func (p *Player) StateName() string { return p.state.String() }

// Position implements Animated.
func (p *Player) Position() core.Vec2 { return p.pos }

// FacingLeft implements Animated.
func (p *Player) FacingLeft() bool { return p.facingLeft }

// State returns the current behavior state.
func (p *Player) State() PlayerState { return p.state }

// Health returns the remaining health, never below zero.
func (p *Player) Health() int { return p.health }

// MaxHealth returns the starting health.
func (p *Player) MaxHealth() int { return p.cfg.Health }

// Ammo returns the rounds left in the magazine.
func (p *Player) Ammo() int { return p.ammo }

// Magazine returns the magazine capacity.
func (p *Player) Magazine() int { return p.cfg.Magazine }

// Score returns the points earned so far.
func (p *Player) Score() int { return p.score }

// IsHit reports whether the hit flash is active.
func (p *Player) IsHit() bool { return p.hit }

// IsRecharging reports whether a reload is in progress.
func (p *Player) IsRecharging() bool { return p.recharging }

// IsDead reports whether the player has died.
func (p *Player) IsDead() bool { return p.dead }

// DeathPrompt reports whether the death animation has finished and the
// restart prompt should be shown.
func (p *Player) DeathPrompt() bool { return p.deathPrompt }
