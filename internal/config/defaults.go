package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/rainstorm.yaml
var defaultRainstormYAML []byte

// DefaultRainstormConfig returns the default Rainstorm configuration.
func DefaultRainstormConfig() RainstormConfig {
	return RainstormConfig{
		Player: PlayerConfig{
			Health:       100,
			Damage:       10,
			Magazine:     12,
			Speed:        300,
			SprintSpeed:  500,
			HitFlash:     0.5,
			ScorePerShot: 10,
		},
		Enemy: EnemyConfig{
			MinSpeed:        80,
			MaxSpeed:        150,
			MeleeRange:      25,
			SpawnMargin:     64,
			OffscreenMargin: 100,
		},
		Combat: CombatConfig{
			ShotRangeX: 400,
			ShotBandY:  40,
		},
		World: WorldConfig{
			GroundTop:    0.55,
			GroundBottom: 0.8,
			UnitsPerCol:  10,
			UnitsPerRow:  25,
		},
		Weather: WeatherConfig{
			Enabled:   true,
			Drops:     120,
			Lightning: true,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.6,
		},
		Input: InputConfig{
			HoldWindow: 150 * time.Millisecond,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "rainstorm":
		return defaultRainstormYAML
	default:
		return nil
	}
}
