package rainstorm

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/rainstorm/internal/audio"
	"github.com/vovakirdan/rainstorm/internal/config"
	"github.com/vovakirdan/rainstorm/internal/core"
	"github.com/vovakirdan/rainstorm/internal/games/rainstorm/weather"
)

// World ties the player, the zombies and the storm together and advances
// them one frame at a time.
type World struct {
	cfg    config.RainstormConfig
	bounds core.Bounds

	player  *Player
	enemies *EnemyManager
	storm   *weather.Storm // nil when weather is disabled

	sound  audio.Sink
	logger *log.Logger

	tick       uint64
	elapsed    float64 // Seconds survived in the current run
	kills      int
	deathSeen  bool
	quit       bool
	lastReport TickReport
}

// NewWorld builds a fresh world. The storm draws from its own source seeded
// from rng so that toggling weather does not change zombie spawns.
func NewWorld(cfg config.RainstormConfig, bounds core.Bounds, rng *rand.Rand, sound audio.Sink, logger *log.Logger) *World {
	if sound == nil {
		sound = audio.Nop{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	weatherSeed := rng.Int63()

	w := &World{
		cfg:     cfg,
		bounds:  bounds,
		player:  NewPlayer(cfg.Player, cfg.World, bounds, sound),
		enemies: NewEnemyManager(cfg, rng, sound, logger),
		sound:   sound,
		logger:  logger,
	}
	if cfg.Weather.Enabled {
		w.storm = weather.NewStorm(cfg.Weather.Drops, cfg.Weather.Lightning, cfg.World.GroundTop,
			bounds, rand.New(rand.NewSource(weatherSeed)), sound)
	}
	return w
}

// Step advances the world by dt seconds: weather, then the player, then
// (while the player lives) the zombies. Restart and exit are honored only
// after the player has died.
func (w *World) Step(in core.InputFrame, dt float64) {
	w.tick++

	if w.storm != nil {
		w.storm.Update(dt, w.bounds)
	}

	ev := w.player.Update(dt, in, w.bounds)

	if !w.player.IsDead() {
		w.elapsed += dt
		w.lastReport = w.enemies.Update(dt, w.player, ev.Fired, w.bounds)
		w.kills += w.lastReport.Killed
	} else {
		w.lastReport = TickReport{}
	}

	if !w.player.IsDead() {
		return
	}

	if !w.deathSeen {
		w.deathSeen = true
		w.logger.Info("player died",
			"score", w.player.Score(),
			"kills", w.kills,
			"level", w.enemies.Level(),
			"survived", w.elapsed)
	}

	switch {
	case in.WasPressed(core.ActionRestart):
		w.Restart()
	case in.WasPressed(core.ActionQuit):
		w.quit = true
	}
}

// Restart replaces the player and clears the zombies. The storm keeps going.
func (w *World) Restart() {
	w.player = NewPlayer(w.cfg.Player, w.cfg.World, w.bounds, w.sound)
	w.enemies.Reset()
	w.elapsed = 0
	w.kills = 0
	w.deathSeen = false
	w.lastReport = TickReport{}
	w.logger.Info("run restarted")
}

// SetBounds replaces the play-area size source.
func (w *World) SetBounds(b core.Bounds) { w.bounds = b }

// Bounds returns the current play-area size source.
func (w *World) Bounds() core.Bounds { return w.bounds }

// Player returns the current player. It changes on restart.
func (w *World) Player() *Player { return w.player }

// Enemies returns the zombie manager.
func (w *World) Enemies() *EnemyManager { return w.enemies }

// Storm returns the weather, or nil when disabled.
func (w *World) Storm() *weather.Storm { return w.storm }

// Kills returns the zombies shot in the current run.
func (w *World) Kills() int { return w.kills }

// Elapsed returns the seconds survived in the current run.
func (w *World) Elapsed() float64 { return w.elapsed }

// QuitRequested reports whether the player asked to exit from the death screen.
func (w *World) QuitRequested() bool { return w.quit }

// LastReport returns what the zombie manager did on the last step.
func (w *World) LastReport() TickReport { return w.lastReport }
