// Package rainstorm implements a side-on zombie shooter played in the rain.
// The survivor walks a ground band, shoots left or right and reloads while
// zombies spawn from both edges at an accelerating rate.
package rainstorm

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/rainstorm/internal/audio"
	"github.com/vovakirdan/rainstorm/internal/config"
	"github.com/vovakirdan/rainstorm/internal/core"
	"github.com/vovakirdan/rainstorm/internal/registry"
)

// Platform wiring set by the CLI before the game is created.
var (
	configPath string
	soundSink  audio.Sink  = audio.Nop{}
	logger     *log.Logger = log.New(io.Discard)
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetSound sets the sink every new game plays effects through.
func SetSound(s audio.Sink) {
	if s == nil {
		s = audio.Nop{}
	}
	soundSink = s
}

// SetLogger sets the logger for new games.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game adapts World to the platform's registry.Game interface.
type Game struct {
	world   *World
	bounds  *core.CellBounds
	cfg     config.RainstormConfig
	runtime core.RuntimeConfig
	paused  bool
}

// New creates a new Rainstorm game instance. Call Reset before stepping.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "rainstorm"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Rainstorm"
}

// Reset loads the configuration and starts a new run.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadRainstorm(configPath)
	if err != nil {
		logger.Warn("using default config", "error", err)
		cfg = config.DefaultRainstormConfig()
	}
	g.cfg = cfg

	g.bounds = &core.CellBounds{
		Cols:        runtime.ScreenW,
		Rows:        runtime.ScreenH,
		UnitsPerCol: cfg.World.UnitsPerCol,
		UnitsPerRow: cfg.World.UnitsPerRow,
	}
	rng := rand.New(rand.NewSource(runtime.Seed))
	g.world = NewWorld(cfg, g.bounds, rng, soundSink, logger)
	g.paused = false

	logger.Debug("game reset", "cols", runtime.ScreenW, "rows", runtime.ScreenH, "seed", runtime.Seed)
}

// Step advances the game by dt seconds.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	if g.world == nil {
		return core.StepResult{}
	}

	if in.WasPressed(core.ActionPause) && !g.world.Player().IsDead() {
		g.paused = !g.paused
	}
	if !g.paused {
		g.world.Step(in, dt)
	}

	return core.StepResult{State: g.State()}
}

// Resize follows a terminal resize without restarting the run. Actors are
// clamped into the new area on their next update.
func (g *Game) Resize(w, h int) {
	if g.bounds == nil {
		return
	}
	g.bounds.Cols = w
	g.bounds.Rows = h
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{}
	}
	p := g.world.Player()
	return core.GameState{
		Score:    p.Score(),
		GameOver: p.IsDead(),
		Paused:   g.paused,
		Quit:     g.world.QuitRequested(),
	}
}

// World returns the underlying simulation.
func (g *Game) World() *World {
	return g.world
}

func init() {
	registry.Register("rainstorm", func() registry.Game {
		return New()
	})
}
