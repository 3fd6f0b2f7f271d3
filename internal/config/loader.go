package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadRainstorm loads Rainstorm configuration.
// Search order: customPath -> ~/.rainstorm/configs/rainstorm.yaml -> ./configs/rainstorm.yaml -> embedded default
//
// Files are decoded on top of the defaults, so a partial file only overrides
// the keys it names. The result is validated before it is returned.
func LoadRainstorm(customPath string) (RainstormConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return RainstormConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return RainstormConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath("rainstorm.yaml"), filepath.Join("configs", "rainstorm.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultRainstormYAML)
	if err != nil {
		return DefaultRainstormConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over the default configuration and validates the result.
func Parse(data []byte) (RainstormConfig, error) {
	cfg := DefaultRainstormConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate reports every out-of-range value in the configuration.
func (c RainstormConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Player.Health > 0, "player.health must be positive, got %d", c.Player.Health)
	check(c.Player.Damage > 0, "player.damage must be positive, got %d", c.Player.Damage)
	check(c.Player.Magazine > 0, "player.magazine must be positive, got %d", c.Player.Magazine)
	check(c.Player.Speed > 0, "player.speed must be positive, got %v", c.Player.Speed)
	check(c.Player.SprintSpeed >= c.Player.Speed, "player.sprint_speed (%v) must be at least player.speed (%v)", c.Player.SprintSpeed, c.Player.Speed)
	check(c.Player.HitFlash >= 0, "player.hit_flash must not be negative, got %v", c.Player.HitFlash)
	check(c.Player.ScorePerShot >= 0, "player.score_per_shot must not be negative, got %d", c.Player.ScorePerShot)

	check(c.Enemy.MinSpeed > 0, "enemy.min_speed must be positive, got %v", c.Enemy.MinSpeed)
	check(c.Enemy.MaxSpeed >= c.Enemy.MinSpeed, "enemy.max_speed (%v) must be at least enemy.min_speed (%v)", c.Enemy.MaxSpeed, c.Enemy.MinSpeed)
	check(c.Enemy.MeleeRange > 0, "enemy.melee_range must be positive, got %v", c.Enemy.MeleeRange)
	check(c.Enemy.SpawnMargin >= 0, "enemy.spawn_margin must not be negative, got %v", c.Enemy.SpawnMargin)
	check(c.Enemy.OffscreenMargin > c.Enemy.SpawnMargin, "enemy.offscreen_margin (%v) must exceed enemy.spawn_margin (%v)", c.Enemy.OffscreenMargin, c.Enemy.SpawnMargin)

	check(c.Combat.ShotRangeX > 0, "combat.shot_range_x must be positive, got %v", c.Combat.ShotRangeX)
	check(c.Combat.ShotBandY > 0, "combat.shot_band_y must be positive, got %v", c.Combat.ShotBandY)

	check(c.World.GroundTop >= 0 && c.World.GroundTop <= 1, "world.ground_top must be within [0, 1], got %v", c.World.GroundTop)
	check(c.World.GroundBottom >= c.World.GroundTop && c.World.GroundBottom <= 1, "world.ground_bottom must be within [ground_top, 1], got %v", c.World.GroundBottom)
	check(c.World.UnitsPerCol > 0, "world.units_per_col must be positive, got %v", c.World.UnitsPerCol)
	check(c.World.UnitsPerRow > 0, "world.units_per_row must be positive, got %v", c.World.UnitsPerRow)

	check(c.Weather.Drops >= 0, "weather.drops must not be negative, got %d", c.Weather.Drops)
	check(c.Audio.Volume >= 0 && c.Audio.Volume <= 1, "audio.volume must be within [0, 1], got %v", c.Audio.Volume)
	check(c.Input.HoldWindow >= 0, "input.hold_window must not be negative, got %v", c.Input.HoldWindow)

	return errors.Join(errs...)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".rainstorm", "configs", filename)
}
