package falling

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/falling-blocks/internal/config"
	"github.com/vovakirdan/falling-blocks/internal/core"
)

// TimeModel selects how simulation time advances.
type TimeModel int

const (
	// FixedTick advances by one tick per update; speeds are per tick.
	FixedTick TimeModel = iota
	// DeltaTime advances by real elapsed seconds; speeds are per second.
	DeltaTime
)

func (m TimeModel) String() string {
	if m == DeltaTime {
		return config.TimeModelDelta
	}
	return config.TimeModelTick
}

// Variant is the behavior policy shared by the basic and enhanced games:
// shape set, color mapping, time model and difficulty curve.
type Variant struct {
	ID        string
	Title     string
	TimeModel TimeModel
	TickRate  int

	PlayerY    float64
	PlayerSize float64
	PlayerStep float64
	MoveLimit  float64
	Lives      int

	ObstacleSize  float64
	SpawnY        float64
	SpawnRange    float64
	SpawnEvery    int     // ticks, FixedTick only
	SpawnInterval float64 // seconds, DeltaTime only
	Shapes        []Shape
	Colors        []core.Color // Colors[i] belongs to Shapes[i]

	InitialFallSpeed float64
	HitThreshold     float64
	FloorY           float64
	Difficulty       config.DifficultyConfig

	Background      core.Color
	BackgroundGlyph rune
	PlayerColor     core.Color

	Audio config.AudioConfig
}

// NewVariant builds a Variant from a validated configuration.
func NewVariant(id string, cfg config.FallingConfig) (Variant, error) {
	if err := cfg.Validate(); err != nil {
		return Variant{}, err
	}

	v := Variant{
		ID:               id,
		Title:            cfg.Title,
		TickRate:         cfg.TickRate,
		PlayerY:          cfg.Player.Y,
		PlayerSize:       cfg.Player.Size,
		PlayerStep:       cfg.Player.Step,
		MoveLimit:        cfg.Player.MoveLimit,
		Lives:            cfg.Player.Lives,
		ObstacleSize:     cfg.Obstacles.Size,
		SpawnY:           cfg.Obstacles.SpawnY,
		SpawnRange:       cfg.Obstacles.SpawnRange,
		SpawnEvery:       cfg.Obstacles.SpawnEvery,
		SpawnInterval:    cfg.Obstacles.SpawnSeconds,
		InitialFallSpeed: cfg.Physics.InitialFallSpeed,
		HitThreshold:     cfg.HitThresholdOrDefault(),
		FloorY:           cfg.Physics.FloorY,
		Difficulty:       cfg.Difficulty,
		BackgroundGlyph:  ' ',
		PlayerColor:      core.ColorGreen,
		Audio:            cfg.Audio,
	}
	if v.Title == "" {
		v.Title = "Falling Blocks"
	}
	if cfg.TimeModel == config.TimeModelDelta {
		v.TimeModel = DeltaTime
	}

	for i, name := range cfg.Obstacles.Shapes {
		shape, err := ParseShape(name)
		if err != nil {
			return Variant{}, err
		}
		color, ok := core.ParseColor(cfg.Obstacles.Colors[i])
		if !ok {
			return Variant{}, fmt.Errorf("falling: unknown color %q for shape %s", cfg.Obstacles.Colors[i], name)
		}
		v.Shapes = append(v.Shapes, shape)
		v.Colors = append(v.Colors, color)
	}

	if cfg.Display.Background != "" {
		bg, ok := core.ParseColor(cfg.Display.Background)
		if !ok {
			return Variant{}, fmt.Errorf("falling: unknown background color %q", cfg.Display.Background)
		}
		v.Background = bg
	}
	if cfg.Display.PlayerColor != "" {
		pc, ok := core.ParseColor(cfg.Display.PlayerColor)
		if !ok {
			return Variant{}, fmt.Errorf("falling: unknown player color %q", cfg.Display.PlayerColor)
		}
		v.PlayerColor = pc
	}
	if cfg.Display.BackgroundGlyph != "" {
		v.BackgroundGlyph, _ = utf8.DecodeRuneInString(cfg.Display.BackgroundGlyph)
	}

	return v, nil
}

// MustVariant builds the variant from the hard-coded defaults for id.
// Panics on unknown IDs; only used with the built-in variants.
func MustVariant(id string) Variant {
	cfg, ok := config.DefaultFor(id)
	if !ok {
		panic(fmt.Sprintf("falling: no default config for %q", id))
	}
	v, err := NewVariant(id, cfg)
	if err != nil {
		panic(err)
	}
	return v
}
