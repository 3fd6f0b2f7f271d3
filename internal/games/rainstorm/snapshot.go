package rainstorm

import "github.com/vovakirdan/rainstorm/internal/core"

// Snapshot captures the simulation state for determinism testing and the
// headless summary.
type Snapshot struct {
	Tick          uint64
	Elapsed       float64
	PlayerPos     core.Vec2
	PlayerState   PlayerState
	PlayerFrame   int
	Health        int
	Ammo          int
	Score         int
	Dead          bool
	Level         int
	SpawnInterval float64
	Kills         int
	Enemies       []EnemySnapshot
}

// Snapshot returns the current world snapshot.
func (w *World) Snapshot() Snapshot {
	p := w.player
	return Snapshot{
		Tick:          w.tick,
		Elapsed:       w.elapsed,
		PlayerPos:     p.pos,
		PlayerState:   p.state,
		PlayerFrame:   p.anim.frame,
		Health:        p.health,
		Ammo:          p.ammo,
		Score:         p.score,
		Dead:          p.dead,
		Level:         w.enemies.Level(),
		SpawnInterval: w.enemies.SpawnInterval(),
		Kills:         w.kills,
		Enemies:       w.enemies.Snapshot(),
	}
}
