package config

import (
	_ "embed"
)

// Variant IDs with embedded defaults.
const (
	BlocksID = "blocks"
	ShapesID = "shapes"
)

//go:embed defaults/blocks.yaml
var defaultBlocksYAML []byte

//go:embed defaults/shapes.yaml
var defaultShapesYAML []byte

// DefaultBlocksConfig returns the basic variant configuration.
func DefaultBlocksConfig() FallingConfig {
	return FallingConfig{
		Title:     "Falling Blocks",
		TimeModel: TimeModelTick,
		TickRate:  30,
		Player: FallingPlayer{
			Y:         -0.8,
			Size:      0.03,
			Step:      0.1,
			MoveLimit: 0.9,
			Lives:     3,
		},
		Obstacles: FallingObstacles{
			Size:       0.06,
			SpawnY:     1.0,
			SpawnRange: 0.9,
			SpawnEvery: 30,
			Shapes:     []string{"square"},
			Colors:     []string{"red"},
		},
		Physics: FallingPhysics{
			InitialFallSpeed: 0.07,
			HitThreshold:     0.1,
			FloorY:           -1.0,
		},
		Difficulty: DifficultyConfig{
			Enabled:   true,
			Increment: 0.005,
			Every:     600, // 20 seconds at 30 ticks/s
		},
		Display: FallingDisplay{
			PlayerColor: "green",
		},
	}
}

// DefaultShapesConfig returns the enhanced variant configuration.
func DefaultShapesConfig() FallingConfig {
	return FallingConfig{
		Title:     "Falling Shapes",
		TimeModel: TimeModelDelta,
		TickRate:  60,
		Player: FallingPlayer{
			Y:         -0.8,
			Size:      0.03,
			Step:      0.1,
			MoveLimit: 0.9,
			Lives:     3,
		},
		Obstacles: FallingObstacles{
			Size:         0.06,
			SpawnY:       1.0,
			SpawnRange:   0.9,
			SpawnSeconds: 1.0,
			Shapes:       []string{"square", "triangle", "circle", "hexagon", "diamond", "star"},
			Colors:       []string{"red", "blue", "yellow", "magenta", "cyan", "orange"},
		},
		Physics: FallingPhysics{
			InitialFallSpeed: 0.4,
			FloorY:           -1.0,
		},
		Difficulty: DifficultyConfig{
			Enabled:   true,
			Increment: 0.0005,
			Every:     1,
		},
		Display: FallingDisplay{
			Background:      "grass",
			BackgroundGlyph: "░",
			PlayerColor:     "bright_green",
		},
		Audio: AudioConfig{
			Enabled: true,
			Track:   "~/.arcade/audio/falling.mp3",
		},
	}
}

// DefaultFor returns the hard-coded default for a variant ID.
func DefaultFor(id string) (FallingConfig, bool) {
	switch id {
	case BlocksID:
		return DefaultBlocksConfig(), true
	case ShapesID:
		return DefaultShapesConfig(), true
	default:
		return FallingConfig{}, false
	}
}

// GetDefaultYAML returns the embedded default YAML for a variant.
func GetDefaultYAML(id string) []byte {
	switch id {
	case BlocksID:
		return defaultBlocksYAML
	case ShapesID:
		return defaultShapesYAML
	default:
		return nil
	}
}
