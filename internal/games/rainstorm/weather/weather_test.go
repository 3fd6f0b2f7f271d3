package weather

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/rainstorm/internal/audio"
	"github.com/vovakirdan/rainstorm/internal/core"
)

var bounds = core.FixedBounds{W: 800, H: 600}

const dt = 1.0 / 60

func newTestStorm(seed int64, lightning bool) (*Storm, *audio.Recorder) {
	rec := &audio.Recorder{}
	return NewStorm(100, lightning, 0.55, bounds, rand.New(rand.NewSource(seed)), rec), rec
}

func TestNewStormScattersDrops(t *testing.T) {
	s, _ := newTestStorm(1, false)

	require.Len(t, s.Drops(), 100)
	for _, d := range s.Drops() {
		assert.GreaterOrEqual(t, d.Pos.X, 0.0)
		assert.LessOrEqual(t, d.Pos.X, 800.0)
		assert.GreaterOrEqual(t, d.Pos.Y, -500.0)
		assert.LessOrEqual(t, d.Pos.Y, 0.0)
		assert.GreaterOrEqual(t, d.Speed, 300.0)
		assert.Less(t, d.Speed, 600.0)
	}
	assert.Empty(t, s.Splashes())
	assert.False(t, s.Flashing())
}

func TestRainKeepsFalling(t *testing.T) {
	s, _ := newTestStorm(2, false)
	sawSplash := false

	for i := 0; i < 600; i++ {
		s.Update(dt, bounds)
		assert.Len(t, s.Drops(), 100)
		for _, d := range s.Drops() {
			assert.LessOrEqual(t, d.Pos.Y, 600.0+600*dt)
		}
		for _, sp := range s.Splashes() {
			assert.Positive(t, sp.Life)
			assert.LessOrEqual(t, sp.Life, splashLife)
		}
		sawSplash = sawSplash || len(s.Splashes()) > 0
	}

	assert.True(t, sawSplash)
}

func TestSplashesFade(t *testing.T) {
	s, _ := newTestStorm(3, false)
	s.drops = nil
	s.splashes = []Splash{{Pos: core.Vec2{X: 10, Y: 400}, Radius: 2, Life: splashLife}}

	s.Update(0.25, bounds)
	require.Len(t, s.Splashes(), 1)
	assert.InDelta(t, 7.0, s.Splashes()[0].Radius, 1e-9)

	s.Update(0.3, bounds)
	assert.Empty(t, s.Splashes())
}

func TestLightningBurst(t *testing.T) {
	s, rec := newTestStorm(4, true)

	flashed := false
	for i := 0; i < int(21 / dt); i++ {
		s.Update(dt, bounds)
		for _, b := range s.Bolts() {
			require.NotEmpty(t, b.Points)
			assert.Zero(t, b.Points[0].Y)
			assert.GreaterOrEqual(t, b.Points[len(b.Points)-1].Y, 600*0.7)
			for _, p := range b.Points {
				assert.GreaterOrEqual(t, p.X, 0.0)
				assert.LessOrEqual(t, p.X, 800.0)
			}
		}
		flashed = flashed || s.Flashing()
	}

	assert.True(t, flashed)
	assert.GreaterOrEqual(t, rec.Count(audio.EffectThunder), 1)
}

func TestLightningCooldownShortensAfterFirstStrike(t *testing.T) {
	s, _ := newTestStorm(5, true)
	assert.GreaterOrEqual(t, s.cooldown, firstStrikeMin)
	assert.LessOrEqual(t, s.cooldown, firstStrikeMax)

	for i := 0; i < int(25 / dt); i++ {
		s.Update(dt, bounds)
	}

	assert.GreaterOrEqual(t, s.cooldown, nextStrikeMin)
	assert.LessOrEqual(t, s.cooldown, nextStrikeMax)
}

func TestNoLightningWhenDisabled(t *testing.T) {
	s, rec := newTestStorm(6, false)

	for i := 0; i < int(60 / dt); i++ {
		s.Update(dt, bounds)
		require.False(t, s.Flashing())
	}
	assert.Zero(t, rec.Count(audio.EffectThunder))
}

func TestStormDeterminism(t *testing.T) {
	a, _ := newTestStorm(7, true)
	b, _ := newTestStorm(7, true)

	for i := 0; i < 1200; i++ {
		a.Update(dt, bounds)
		b.Update(dt, bounds)
	}

	assert.Equal(t, a.Drops(), b.Drops())
	assert.Equal(t, a.Splashes(), b.Splashes())
	assert.Equal(t, a.Bolts(), b.Bolts())
}
