package rainstorm

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/rainstorm/internal/config"
	"github.com/vovakirdan/rainstorm/internal/core"
)

func newTestWorld(t *testing.T, cfg config.RainstormConfig, seed int64) *World {
	t.Helper()
	return NewWorld(cfg, testBounds, rand.New(rand.NewSource(seed)), nil, nil)
}

// killPlayer drops the player to one hit from death and lands it.
func killPlayer(t *testing.T, w *World) {
	t.Helper()
	w.Player().health = w.cfg.Player.Damage
	w.Player().Hit()
	require.True(t, w.Player().IsDead())
}

func scriptedInput(i int) core.InputFrame {
	in := core.NewInputFrame()
	switch {
	case i%240 < 40:
		in.Hold(core.ActionFire)
	case i%240 < 100:
		in.Hold(core.ActionLeft)
	case i%240 < 140:
		in.Hold(core.ActionRight)
		in.Hold(core.ActionSprint)
	case i%240 == 200:
		in.Press(core.ActionReload)
	}
	if i%90 < 20 {
		in.Hold(core.ActionUp)
	}
	return in
}

func TestWorldDeterminism(t *testing.T) {
	for _, weather := range []bool{false, true} {
		cfg := testConfig()
		cfg.Weather.Enabled = weather

		w1 := newTestWorld(t, cfg, 12345)
		w2 := newTestWorld(t, cfg, 12345)

		for i := 0; i < 1800; i++ {
			in := scriptedInput(i)
			w1.Step(in, 1.0/60)
			w2.Step(in, 1.0/60)
		}

		assert.Equal(t, w1.Snapshot(), w2.Snapshot(), "weather=%v", weather)
	}
}

func TestWorldWeatherDoesNotChangeSpawns(t *testing.T) {
	dry := testConfig()
	wet := testConfig()
	wet.Weather.Enabled = true

	w1 := newTestWorld(t, dry, 99)
	w2 := newTestWorld(t, wet, 99)
	for i := 0; i < 600; i++ {
		w1.Step(core.NewInputFrame(), 1.0/60)
		w2.Step(core.NewInputFrame(), 1.0/60)
	}

	assert.Equal(t, w1.Snapshot().Enemies, w2.Snapshot().Enemies)
	assert.Nil(t, w1.Storm())
	assert.NotNil(t, w2.Storm())
}

func TestWorldShotReachesManager(t *testing.T) {
	w := newTestWorld(t, testConfig(), 1)
	e := place(w.Enemies(), 600, 405)
	fire := held(core.ActionFire)

	w.Step(fire, frameDt)
	require.Equal(t, EnemyAlive, e.State())

	w.Step(fire, frameDt)
	assert.Equal(t, EnemyDying, e.State())
	assert.Equal(t, 1, w.Kills())
	assert.Equal(t, 1, w.LastReport().Killed)
	assert.Equal(t, 10, w.Player().Score())

	// The event is not carried into the next tick.
	other := place(w.Enemies(), 650, 405)
	w.Step(fire, frameDt)
	assert.Equal(t, EnemyAlive, other.State())
}

func TestWorldRestartOnlyWhenDead(t *testing.T) {
	w := newTestWorld(t, testConfig(), 1)
	before := w.Player()

	w.Step(pressed(core.ActionRestart), frameDt)
	assert.Same(t, before, w.Player())

	place(w.Enemies(), 100, 405)
	place(w.Enemies(), 700, 405)
	killPlayer(t, w)

	w.Step(pressed(core.ActionRestart), frameDt)

	assert.NotSame(t, before, w.Player())
	assert.False(t, w.Player().IsDead())
	assert.Equal(t, 100, w.Player().Health())
	assert.Equal(t, 12, w.Player().Ammo())
	assert.Zero(t, w.Enemies().Count())
	assert.Equal(t, 1, w.Enemies().Level())
	assert.Zero(t, w.Kills())
	assert.Zero(t, w.Elapsed())
}

func TestWorldQuitOnlyWhenDead(t *testing.T) {
	w := newTestWorld(t, testConfig(), 1)

	w.Step(pressed(core.ActionQuit), frameDt)
	assert.False(t, w.QuitRequested())

	killPlayer(t, w)
	w.Step(pressed(core.ActionQuit), frameDt)
	assert.True(t, w.QuitRequested())
}

func TestWorldEnemiesFrozenWhileDead(t *testing.T) {
	w := newTestWorld(t, testConfig(), 1)
	place(w.Enemies(), 100, 405)
	killPlayer(t, w)

	before := w.Enemies().Snapshot()
	timer := w.Enemies().SpawnTimer()
	elapsed := w.Elapsed()

	for i := 0; i < 100; i++ {
		w.Step(core.NewInputFrame(), 0.1)
	}

	assert.Equal(t, before, w.Enemies().Snapshot())
	assert.Equal(t, timer, w.Enemies().SpawnTimer())
	assert.Equal(t, elapsed, w.Elapsed())
	assert.True(t, w.Player().DeathPrompt())
}

func TestWorldZombiesEventuallyKillIdlePlayer(t *testing.T) {
	w := newTestWorld(t, testConfig(), 5)

	for i := 0; i < 60*120 && !w.Player().IsDead(); i++ {
		w.Step(core.NewInputFrame(), 1.0/60)
	}

	require.True(t, w.Player().IsDead())
	assert.Zero(t, w.Player().Health())
	assert.Equal(t, PlayerDying, w.Player().State())
}

func TestWorldSnapshot(t *testing.T) {
	w := newTestWorld(t, testConfig(), 1)
	w.Step(held(core.ActionRight), 0.1)

	snap := w.Snapshot()

	assert.Equal(t, uint64(1), snap.Tick)
	assert.InDelta(t, 0.1, snap.Elapsed, 1e-9)
	assert.Equal(t, PlayerWalking, snap.PlayerState)
	assert.InDelta(t, 430.0, snap.PlayerPos.X, 1e-9)
	assert.Equal(t, 100, snap.Health)
	assert.Equal(t, 12, snap.Ammo)
	assert.False(t, snap.Dead)
	assert.Equal(t, 1, snap.Level)
	assert.Empty(t, snap.Enemies)
}
