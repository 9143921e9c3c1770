package config

import "math"

// DifficultyManager drives the fall speed ramp.
// It counts updates and reports the speed to use after each one.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Increment > 0 && d.cfg.Every > 0
}

// Next returns the fall speed after the given update.
// updates is the 1-based count of updates since the session started; the
// speed grows by one increment whenever it is a multiple of Every.
func (d *DifficultyManager) Next(speed float64, updates int) float64 {
	if !d.IsEnabled() || updates <= 0 {
		return speed
	}
	if updates%d.cfg.Every != 0 {
		return speed
	}
	return speed + d.cfg.Increment
}

// Level returns how many increments separate speed from the initial speed.
// Used for the HUD.
func (d *DifficultyManager) Level(initial, speed float64) int {
	if d.cfg.Increment <= 0 || speed <= initial {
		return 0
	}
	return int(math.Round((speed - initial) / d.cfg.Increment))
}
