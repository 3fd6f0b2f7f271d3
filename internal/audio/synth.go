package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a raw wave, optionally sweeping its frequency
type oscillator struct {
	freq     float64
	sweep    float64 // Hz added per second
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq, sweep float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		sweep:    sweep,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		t := float64(o.position) / float64(o.rate)
		freq := math.Max(o.freq+o.sweep*t, 0)
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope wraps s with attack/release shaping over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}

		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if remaining := e.total - e.position; e.release > 0 && remaining < e.release {
			vol = math.Min(vol, float64(remaining)/float64(e.release))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// math.Log2(0) is -Inf, so zero volume maps to a silent stream
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

type tone struct {
	freq, sweep     float64
	wave            WaveType
	duration        time.Duration
	attack, release time.Duration
	gain            float64
}

func (t tone) streamer(rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(t.freq, t.sweep, t.duration, t.wave, rate)
	return newVolume(NewEnvelope(osc, t.duration, t.attack, t.release, rate), t.gain)
}

// effectTones lists the tones mixed together for each effect
var effectTones = map[Effect][]tone{
	EffectShoot: {
		{wave: WaveNoise, duration: 90 * time.Millisecond, attack: 2 * time.Millisecond, release: 70 * time.Millisecond, gain: 0.8},
		{freq: 180, sweep: -900, wave: WaveSquare, duration: 90 * time.Millisecond, release: 60 * time.Millisecond, gain: 0.4},
	},
	EffectReload: {
		{freq: 1200, wave: WaveSquare, duration: 30 * time.Millisecond, release: 20 * time.Millisecond, gain: 0.3},
		{freq: 700, wave: WaveSquare, duration: 140 * time.Millisecond, attack: 100 * time.Millisecond, release: 20 * time.Millisecond, gain: 0.3},
	},
	EffectDeath: {
		{freq: 330, sweep: -200, wave: WaveSaw, duration: 900 * time.Millisecond, attack: 20 * time.Millisecond, release: 500 * time.Millisecond, gain: 0.6},
	},
	EffectHurt: {
		{freq: 220, sweep: -300, wave: WaveSquare, duration: 120 * time.Millisecond, release: 60 * time.Millisecond, gain: 0.4},
	},
	EffectAttack: {
		{freq: 90, sweep: 60, wave: WaveSaw, duration: 250 * time.Millisecond, attack: 30 * time.Millisecond, release: 120 * time.Millisecond, gain: 0.6},
		{wave: WaveNoise, duration: 250 * time.Millisecond, attack: 60 * time.Millisecond, release: 150 * time.Millisecond, gain: 0.2},
	},
	EffectEnemyDown: {
		{freq: 140, sweep: -120, wave: WaveSaw, duration: 350 * time.Millisecond, attack: 10 * time.Millisecond, release: 250 * time.Millisecond, gain: 0.5},
	},
	EffectThunder: {
		{wave: WaveNoise, duration: 1600 * time.Millisecond, attack: 40 * time.Millisecond, release: 1300 * time.Millisecond, gain: 0.9},
		{freq: 45, wave: WaveSine, duration: 1600 * time.Millisecond, attack: 80 * time.Millisecond, release: 1200 * time.Millisecond, gain: 0.6},
	},
}

// EffectStreamer builds a one-shot streamer for e at the given volume.
// Returns nil for unknown effects.
func EffectStreamer(e Effect, volume float64, rate beep.SampleRate) beep.Streamer {
	tones, ok := effectTones[e]
	if !ok {
		return nil
	}
	parts := make([]beep.Streamer, 0, len(tones))
	for _, t := range tones {
		parts = append(parts, t.streamer(rate))
	}
	return newVolume(beep.Mix(parts...), volume)
}
