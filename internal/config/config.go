// Package config provides YAML-based game configuration loading and the
// difficulty schedule for the rainstorm game.
package config

import "time"

// RainstormConfig contains all configuration for the Rainstorm game.
type RainstormConfig struct {
	Player  PlayerConfig  `yaml:"player"`
	Enemy   EnemyConfig   `yaml:"enemy"`
	Combat  CombatConfig  `yaml:"combat"`
	World   WorldConfig   `yaml:"world"`
	Weather WeatherConfig `yaml:"weather"`
	Audio   AudioConfig   `yaml:"audio"`
	Input   InputConfig   `yaml:"input"`
}

// PlayerConfig defines player parameters.
type PlayerConfig struct {
	Health       int     `yaml:"health"`
	Damage       int     `yaml:"damage"`   // Health lost per enemy hit
	Magazine     int     `yaml:"magazine"` // Rounds after a full reload
	Speed        float64 `yaml:"speed"`    // World units per second
	SprintSpeed  float64 `yaml:"sprint_speed"`
	HitFlash     float64 `yaml:"hit_flash"` // Seconds of invulnerability after a hit
	ScorePerShot int     `yaml:"score_per_shot"`
}

// EnemyConfig defines enemy parameters.
type EnemyConfig struct {
	MinSpeed        float64 `yaml:"min_speed"`
	MaxSpeed        float64 `yaml:"max_speed"`
	MeleeRange      float64 `yaml:"melee_range"`      // Distance at which pursuit turns into an attack
	SpawnMargin     float64 `yaml:"spawn_margin"`     // Spawn distance outside the screen edge
	OffscreenMargin float64 `yaml:"offscreen_margin"` // Removal distance outside the screen edge
}

// CombatConfig defines shot resolution parameters.
type CombatConfig struct {
	ShotRangeX float64 `yaml:"shot_range_x"` // Max horizontal distance (inclusive)
	ShotBandY  float64 `yaml:"shot_band_y"`  // Max vertical distance (exclusive)
}

// WorldConfig defines the play area layout.
type WorldConfig struct {
	GroundTop    float64 `yaml:"ground_top"`    // Top of the ground band, fraction of height
	GroundBottom float64 `yaml:"ground_bottom"` // Bottom of the ground band, fraction of height
	UnitsPerCol  float64 `yaml:"units_per_col"` // World units per terminal column
	UnitsPerRow  float64 `yaml:"units_per_row"` // World units per terminal row
}

// WeatherConfig defines the decorative rain and lightning.
type WeatherConfig struct {
	Enabled   bool `yaml:"enabled"`
	Drops     int  `yaml:"drops"`
	Lightning bool `yaml:"lightning"`
}

// AudioConfig defines sound effect playback.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0.0 - 1.0
}

// InputConfig defines terminal input handling.
type InputConfig struct {
	// HoldWindow is how long a key counts as held after its last press.
	// Terminals only report presses and auto-repeats, never releases.
	HoldWindow time.Duration `yaml:"hold_window"`
}
