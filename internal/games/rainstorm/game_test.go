package rainstorm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/rainstorm/internal/core"
	"github.com/vovakirdan/rainstorm/internal/registry"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42})
	require.NotNil(t, g.World())
	return g
}

func TestGameRegistered(t *testing.T) {
	require.True(t, registry.Exists("rainstorm"))

	g, err := registry.Create("rainstorm")
	require.NoError(t, err)
	assert.Equal(t, "rainstorm", g.ID())
	assert.Equal(t, "Rainstorm", g.Title())
}

func TestGameStepBeforeReset(t *testing.T) {
	g := New()
	assert.Equal(t, core.StepResult{}, g.Step(core.NewInputFrame(), frameDt))
	assert.Equal(t, core.GameState{}, g.State())
}

func TestGamePauseToggle(t *testing.T) {
	g := newTestGame(t)

	res := g.Step(pressed(core.ActionPause), frameDt)
	assert.True(t, res.State.Paused)
	tick := g.World().Snapshot().Tick

	for i := 0; i < 10; i++ {
		g.Step(held(core.ActionRight), frameDt)
	}
	assert.Equal(t, tick, g.World().Snapshot().Tick, "no simulation while paused")

	res = g.Step(pressed(core.ActionPause), frameDt)
	assert.False(t, res.State.Paused)
	assert.Equal(t, tick+1, g.World().Snapshot().Tick)
}

func TestGameStateTracksWorld(t *testing.T) {
	g := newTestGame(t)
	killPlayer(t, g.World())

	state := g.Step(core.NewInputFrame(), frameDt).State
	assert.True(t, state.GameOver)
	assert.False(t, state.Quit)

	state = g.Step(pressed(core.ActionQuit), frameDt).State
	assert.True(t, state.Quit)
}

func TestGameResizeKeepsRun(t *testing.T) {
	g := newTestGame(t)
	for i := 0; i < 5; i++ {
		g.Step(held(core.ActionRight), 0.5)
	}
	world := g.World()

	g.Resize(40, 12)
	g.Step(core.NewInputFrame(), frameDt)

	assert.Same(t, world, g.World())
	w, h := world.Bounds().Size()
	assert.InDelta(t, 400.0, w, 1e-9)
	assert.LessOrEqual(t, world.Player().Position().X, w)
	assert.LessOrEqual(t, world.Player().Position().Y, h)
}

func TestGameRenderHUD(t *testing.T) {
	g := newTestGame(t)
	screen := core.NewScreen(80, 24)

	g.Render(screen)

	hud := screen.Row(0)
	assert.Contains(t, hud, "HP")
	assert.Contains(t, hud, "Ammo 12/12")
	assert.Contains(t, hud, "Lvl 1")

	// Player stands at world (400, ~405): column 40, feet on row 16.
	assert.Equal(t, 'o', screen.Get(40, 14))
	assert.Equal(t, '|', screen.Get(40, 15))
}

func TestGameRenderReloading(t *testing.T) {
	g := newTestGame(t)
	g.Step(pressed(core.ActionReload), frameDt)
	screen := core.NewScreen(80, 24)

	g.Render(screen)

	assert.Contains(t, screen.Row(0), "RELOADING")
}

func TestGameRenderDeathPrompt(t *testing.T) {
	g := newTestGame(t)
	killPlayer(t, g.World())
	for i := 0; i < 5; i++ {
		g.Step(core.NewInputFrame(), frameDt)
	}
	screen := core.NewScreen(80, 24)

	g.Render(screen)

	out := screen.String()
	assert.Contains(t, out, "You Died!")
	assert.Contains(t, out, "Press R to Restart")
	assert.Contains(t, out, "Press Q to Exit")
}

func TestGameRenderPaused(t *testing.T) {
	g := newTestGame(t)
	g.Step(pressed(core.ActionPause), frameDt)
	screen := core.NewScreen(80, 24)

	g.Render(screen)

	assert.Contains(t, screen.String(), "PAUSED")
}

func TestGameRenderZombie(t *testing.T) {
	g := newTestGame(t)
	place(g.World().Enemies(), 200, 405)
	screen := core.NewScreen(80, 24)

	g.Render(screen)

	assert.Equal(t, '@', screen.Get(20, 14))
	assert.Equal(t, core.ColorGreen, screen.GetCell(20, 14).Color)
}

func TestSpriteMirror(t *testing.T) {
	s := sprite{" o ", "/|=", "/ >"}

	got := s.mirror()

	assert.Equal(t, sprite{" o ", "=|\\", "< \\"}, got)
	assert.Equal(t, s, got.mirror())
}

func TestSpritesAreThreeWide(t *testing.T) {
	for state := PlayerIdle; state <= PlayerDying; state++ {
		for frame := 0; frame < playerClips[state].Frames; frame++ {
			for _, row := range playerSprite(state, frame) {
				assert.Len(t, []rune(row), 3, "player %s frame %d", state, frame)
			}
		}
	}
	for state := EnemyAlive; state <= EnemyDead; state++ {
		for frame := 0; frame < enemyClips[state].Frames; frame++ {
			for _, row := range enemySprite(state, frame) {
				assert.Equal(t, 3, len([]rune(row)), "enemy %s frame %d", state, frame)
				assert.False(t, strings.ContainsRune(row, '\t'))
			}
		}
	}
}
