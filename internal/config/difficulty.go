package config

import "math"

// Schedule is the fixed difficulty progression: every Period seconds the
// level rises by one and the spawn interval shrinks by Factor, never below
// MinInterval. Enemies spawned at level L move SpeedStep*L faster.
type Schedule struct {
	InitialLevel    int
	InitialInterval float64
	Period          float64
	Factor          float64
	MinInterval     float64
	SpeedStep       float64
}

// FixedSchedule returns the one difficulty schedule the game ships with.
// It is not exposed through RainstormConfig.
func FixedSchedule() Schedule {
	return Schedule{
		InitialLevel:    1,
		InitialInterval: 3.0,
		Period:          15.0,
		Factor:          0.9,
		MinInterval:     0.5,
		SpeedStep:       0.1,
	}
}

// NextInterval returns the spawn interval after one level-up.
func (s Schedule) NextInterval(current float64) float64 {
	return math.Max(current*s.Factor, s.MinInterval)
}

// SpeedMultiplier returns the spawn speed multiplier for a level.
func (s Schedule) SpeedMultiplier(level int) float64 {
	return 1.0 + s.SpeedStep*float64(level)
}
