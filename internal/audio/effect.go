// Package audio plays the game's sound effects. The simulation only sees the
// Sink interface; playback is fire-and-forget and never reports failure.
package audio

// Effect identifies a sound effect.
type Effect int

const (
	EffectShoot     Effect = iota // Player weapon discharge
	EffectReload                  // Magazine reload started
	EffectDeath                   // Player died
	EffectHurt                    // Player took non-lethal damage
	EffectAttack                  // Zombie bite
	EffectEnemyDown               // Zombie shot
	EffectThunder                 // Lightning strike
	effectCount
)

// String returns a human-readable name for the effect.
func (e Effect) String() string {
	switch e {
	case EffectShoot:
		return "shoot"
	case EffectReload:
		return "reload"
	case EffectDeath:
		return "death"
	case EffectHurt:
		return "hurt"
	case EffectAttack:
		return "attack"
	case EffectEnemyDown:
		return "enemy_down"
	case EffectThunder:
		return "thunder"
	default:
		return "unknown"
	}
}

// Effects returns every defined effect.
func Effects() []Effect {
	out := make([]Effect, 0, effectCount)
	for e := Effect(0); e < effectCount; e++ {
		out = append(out, e)
	}
	return out
}

// Sink accepts sound effect triggers.
type Sink interface {
	Play(e Effect)
}

// Nop is a Sink that discards every effect.
type Nop struct{}

// Play implements Sink.
func (Nop) Play(Effect) {}

// Recorder is a Sink that remembers every effect it was asked to play.
type Recorder struct {
	Played []Effect
}

// Play implements Sink.
func (r *Recorder) Play(e Effect) {
	r.Played = append(r.Played, e)
}

// Count returns how many times e was played.
func (r *Recorder) Count(e Effect) int {
	n := 0
	for _, p := range r.Played {
		if p == e {
			n++
		}
	}
	return n
}

// Reset forgets all recorded effects.
func (r *Recorder) Reset() {
	r.Played = r.Played[:0]
}
