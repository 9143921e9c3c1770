// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is returned when a configuration fails validation.
var ErrInvalid = errors.New("config: invalid configuration")

// Time models understood by the falling game.
const (
	TimeModelTick  = "tick"  // One fixed step per tick, speeds are per tick
	TimeModelDelta = "delta" // Real elapsed time, speeds are per second
)

// FallingConfig contains all configuration for one Falling Blocks variant.
type FallingConfig struct {
	Title      string           `yaml:"title"`
	TimeModel  string           `yaml:"time_model"` // "tick" or "delta"
	TickRate   int              `yaml:"tick_rate"`  // Preferred ticks per second
	Player     FallingPlayer    `yaml:"player"`
	Obstacles  FallingObstacles `yaml:"obstacles"`
	Physics    FallingPhysics   `yaml:"physics"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Display    FallingDisplay   `yaml:"display"`
	Audio      AudioConfig      `yaml:"audio"`
}

// FallingPlayer defines the paddle. Positions are in playfield units ([-1, 1]).
type FallingPlayer struct {
	Y         float64 `yaml:"y"`          // Fixed vertical position
	Size      float64 `yaml:"size"`       // Half extent
	Step      float64 `yaml:"step"`       // Horizontal move per key press
	MoveLimit float64 `yaml:"move_limit"` // Moves are accepted only while |x| < move_limit
	Lives     int     `yaml:"lives"`
}

// FallingObstacles defines spawning and the shape set.
type FallingObstacles struct {
	Size         float64  `yaml:"size"`          // Half extent
	SpawnY       float64  `yaml:"spawn_y"`       // Vertical spawn position
	SpawnRange   float64  `yaml:"spawn_range"`   // Spawn x is uniform in [-range, range]
	SpawnEvery   int      `yaml:"spawn_every"`   // Ticks between spawns (tick model)
	SpawnSeconds float64  `yaml:"spawn_seconds"` // Seconds between spawns (delta model)
	Shapes       []string `yaml:"shapes"`
	Colors       []string `yaml:"colors"` // One per shape, same order
}

// FallingPhysics defines fall speed and the collision/floor thresholds.
type FallingPhysics struct {
	InitialFallSpeed float64 `yaml:"initial_fall_speed"` // Per tick or per second, by time model
	HitThreshold     float64 `yaml:"hit_threshold"`      // 0 = player size + obstacle size
	FloorY           float64 `yaml:"floor_y"`            // Obstacles below this are scored
}

// FallingDisplay defines cosmetic settings.
type FallingDisplay struct {
	Background      string `yaml:"background"`       // Background color name, empty for none
	PlayerColor     string `yaml:"player_color"`
	BackgroundGlyph string `yaml:"background_glyph"` // Terminal fill rune for the background
}

// AudioConfig defines the optional background track.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Track   string  `yaml:"track"`  // Path to an mp3 or wav file, ~ is expanded
	Volume  float64 `yaml:"volume"` // Relative volume in beep's exponential scale, 0 = unchanged
}

// HitThresholdOrDefault returns the collision half-sum for both axes.
func (c FallingConfig) HitThresholdOrDefault() float64 {
	if c.Physics.HitThreshold > 0 {
		return c.Physics.HitThreshold
	}
	return c.Player.Size + c.Obstacles.Size
}

// Validate checks that the configuration describes a playable game.
func (c FallingConfig) Validate() error {
	switch c.TimeModel {
	case TimeModelTick:
		if c.Obstacles.SpawnEvery <= 0 {
			return fmt.Errorf("%w: obstacles.spawn_every must be positive for tick model", ErrInvalid)
		}
	case TimeModelDelta:
		if c.Obstacles.SpawnSeconds <= 0 {
			return fmt.Errorf("%w: obstacles.spawn_seconds must be positive for delta model", ErrInvalid)
		}
	default:
		return fmt.Errorf("%w: unknown time_model %q", ErrInvalid, c.TimeModel)
	}
	if c.TickRate <= 0 {
		return fmt.Errorf("%w: tick_rate must be positive", ErrInvalid)
	}
	if c.Player.Lives <= 0 {
		return fmt.Errorf("%w: player.lives must be positive", ErrInvalid)
	}
	if c.Player.Size <= 0 || c.Obstacles.Size <= 0 {
		return fmt.Errorf("%w: player and obstacle sizes must be positive", ErrInvalid)
	}
	if c.Obstacles.SpawnRange < 0 || c.Obstacles.SpawnRange > 1 {
		return fmt.Errorf("%w: obstacles.spawn_range must be within [0, 1]", ErrInvalid)
	}
	if c.Physics.InitialFallSpeed <= 0 {
		return fmt.Errorf("%w: physics.initial_fall_speed must be positive", ErrInvalid)
	}
	if len(c.Obstacles.Shapes) == 0 {
		return fmt.Errorf("%w: obstacles.shapes must not be empty", ErrInvalid)
	}
	if len(c.Obstacles.Colors) != len(c.Obstacles.Shapes) {
		return fmt.Errorf("%w: obstacles.colors must have one entry per shape (%d shapes, %d colors)",
			ErrInvalid, len(c.Obstacles.Shapes), len(c.Obstacles.Colors))
	}
	if c.Difficulty.Enabled && c.Difficulty.Every <= 0 {
		return fmt.Errorf("%w: difficulty.every must be positive", ErrInvalid)
	}
	return nil
}

// DifficultyConfig defines the fall speed ramp.
type DifficultyConfig struct {
	Enabled   bool    `yaml:"enabled"`
	Increment float64 `yaml:"increment"` // Added to fall speed at each step of the ramp
	Every     int     `yaml:"every"`     // Updates between increments (1 = every update)
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string into a preset.
// The empty string means "use the config as is".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// SpeedScaleForPreset returns the initial fall speed multiplier for a preset.
func SpeedScaleForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.8
	case DifficultyHard:
		return 1.25
	default:
		return 1.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
