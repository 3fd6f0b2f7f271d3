package rainstorm

import (
	"io"
	"math"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/rainstorm/internal/audio"
	"github.com/vovakirdan/rainstorm/internal/config"
	"github.com/vovakirdan/rainstorm/internal/core"
)

// Target is what the enemy manager needs from the player: where it is,
// which way it faces, and a way to hurt it.
type Target interface {
	Hittable
	Position() core.Vec2
	FacingLeft() bool
}

// TickReport summarizes what one EnemyManager.Update did.
type TickReport struct {
	Spawned bool // A zombie was spawned
	LevelUp bool // Difficulty level increased
	Killed  int  // Zombies shot (0 or 1)
	Removed int  // Zombies swept from the collection
}

// EnemySnapshot is a read-only copy of one zombie for rendering.
type EnemySnapshot struct {
	Pos        core.Vec2
	FacingLeft bool
	State      EnemyState
	Frame      int
}

// EnemyManager owns every live zombie. It schedules spawns, escalates
// difficulty, resolves shots and sweeps out the dead.
type EnemyManager struct {
	enemies []*Enemy

	spawnTimer      float64
	spawnInterval   float64
	difficultyTimer float64
	level           int

	schedule config.Schedule
	enemy    config.EnemyConfig
	combat   config.CombatConfig
	world    config.WorldConfig

	rng    *rand.Rand
	sound  audio.Sink
	logger *log.Logger
}

// NewEnemyManager creates an empty manager. rng drives spawn side, height
// and speed; pass a seeded source for reproducible runs.
func NewEnemyManager(cfg config.RainstormConfig, rng *rand.Rand, sound audio.Sink, logger *log.Logger) *EnemyManager {
	if sound == nil {
		sound = audio.Nop{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	m := &EnemyManager{
		enemies:  make([]*Enemy, 0, 16),
		schedule: config.FixedSchedule(),
		enemy:    cfg.Enemy,
		combat:   cfg.Combat,
		world:    cfg.World,
		rng:      rng,
		sound:    sound,
		logger:   logger,
	}
	m.Reset()
	return m
}

// Reset clears all zombies and restarts the difficulty schedule.
func (m *EnemyManager) Reset() {
	clear(m.enemies)
	m.enemies = m.enemies[:0]
	m.spawnTimer = 0
	m.spawnInterval = m.schedule.InitialInterval
	m.difficultyTimer = 0
	m.level = m.schedule.InitialLevel
}

// Update runs one tick in a fixed order: difficulty and spawn timers, every
// zombie's state machine, shot resolution (when fired), then the sweep.
func (m *EnemyManager) Update(dt float64, target Target, fired bool, bounds core.Bounds) TickReport {
	var report TickReport
	w, h := bounds.Size()

	m.difficultyTimer += dt
	if m.difficultyTimer >= m.schedule.Period {
		m.difficultyTimer = 0
		m.level++
		m.spawnInterval = m.schedule.NextInterval(m.spawnInterval)
		report.LevelUp = true
		m.logger.Info("difficulty increased", "level", m.level, "spawn_interval", m.spawnInterval)
	}

	m.spawnTimer += dt
	if m.spawnTimer >= m.spawnInterval {
		m.spawn(w, h)
		m.spawnTimer = 0
		report.Spawned = true
	}

	pos := target.Position()
	for _, e := range m.enemies {
		e.Update(dt, pos, target)
	}

	if fired {
		if m.resolveShot(target) {
			report.Killed = 1
		}
	}

	report.Removed = m.sweep(w)
	return report
}

// spawn places one zombie just outside a random horizontal edge, facing
// the screen interior, at a random height inside the ground band.
func (m *EnemyManager) spawn(w, h float64) {
	fromLeft := m.rng.Float64() < 0.5
	x, facingLeft := -m.enemy.SpawnMargin, false
	if !fromLeft {
		x, facingLeft = w+m.enemy.SpawnMargin, true
	}

	top, bottom := groundBand(m.world.GroundTop, m.world.GroundBottom, h)
	y := top + m.rng.Float64()*math.Max(bottom-top, 0)

	speed := m.enemy.MinSpeed + m.rng.Float64()*(m.enemy.MaxSpeed-m.enemy.MinSpeed)
	speed *= m.schedule.SpeedMultiplier(m.level)

	m.enemies = append(m.enemies, newEnemy(core.Vec2{X: x, Y: y}, facingLeft, speed, m.enemy.MeleeRange, m.sound))
	m.logger.Debug("zombie spawned", "x", x, "y", y, "speed", speed, "level", m.level)
}

// resolveShot kills the first zombie in collection order that is in range,
// inside the vertical band, and on the side the shooter faces.
func (m *EnemyManager) resolveShot(shooter Target) bool {
	p := shooter.Position()
	facingLeft := shooter.FacingLeft()

	for _, e := range m.enemies {
		if e.state != EnemyAlive && e.state != EnemyAttacking {
			continue
		}
		inRangeX := math.Abs(p.X-e.pos.X) <= m.combat.ShotRangeX
		inRangeY := math.Abs(p.Y-e.pos.Y) < m.combat.ShotBandY
		facing := facingLeft == (e.pos.X < p.X)

		if inRangeX && inRangeY && facing && e.kill() {
			m.sound.Play(audio.EffectEnemyDown)
			m.logger.Debug("zombie shot", "x", e.pos.X, "y", e.pos.Y)
			return true
		}
	}
	return false
}

// sweep drops dead and off-screen zombies, keeping the order of the rest.
func (m *EnemyManager) sweep(w float64) int {
	kept := m.enemies[:0]
	for _, e := range m.enemies {
		if e.state == EnemyDead || e.OffScreen(w, m.enemy.OffscreenMargin) {
			continue
		}
		kept = append(kept, e)
	}
	removed := len(m.enemies) - len(kept)
	clear(m.enemies[len(kept):])
	m.enemies = kept
	return removed
}

// Snapshot returns copies of every live zombie in collection order.
func (m *EnemyManager) Snapshot() []EnemySnapshot {
	out := make([]EnemySnapshot, len(m.enemies))
	for i, e := range m.enemies {
		out[i] = EnemySnapshot{
			Pos:        e.pos,
			FacingLeft: e.facingLeft,
			State:      e.state,
			Frame:      e.anim.frame,
		}
	}
	return out
}

// Count returns the number of zombies in the collection.
func (m *EnemyManager) Count() int { return len(m.enemies) }

// Level returns the current difficulty level.
func (m *EnemyManager) Level() int { return m.level }

// SpawnInterval returns the current time between spawns in seconds.
func (m *EnemyManager) SpawnInterval() float64 { return m.spawnInterval }

// SpawnTimer returns the time accumulated toward the next spawn.
func (m *EnemyManager) SpawnTimer() float64 { return m.spawnTimer }
