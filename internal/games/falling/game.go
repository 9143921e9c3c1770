// Package falling implements a falling-obstacles arcade game.
// The player moves a paddle along the bottom of the playfield and dodges
// shapes falling from the top. Two variants share one implementation:
// "blocks" (fixed tick, red squares) and "shapes" (delta time, six shapes).
package falling

import (
	"time"

	"github.com/vovakirdan/falling-blocks/internal/config"
	"github.com/vovakirdan/falling-blocks/internal/core"
	"github.com/vovakirdan/falling-blocks/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
// Unknown names fall back to the config's own settings.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// Game implements registry.Game for one variant.
type Game struct {
	id      string
	variant Variant
	state   *State
	loop    *Loop
	runtime core.RuntimeConfig
	loadErr error // Last config error; the game fell back to defaults
}

// New creates a game for the given variant ID ("blocks" or "shapes").
func New(id string) *Game {
	return &Game{id: id, variant: MustVariant(id)}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.variant.Title
}

// TickRate returns the variant's preferred ticks per second.
func (g *Game) TickRate() int {
	return g.variant.TickRate
}

// Variant returns the active behavior policy.
func (g *Game) Variant() Variant {
	return g.variant
}

// LoadErr returns the error from the last config load, if the game had to
// fall back to the built-in defaults.
func (g *Game) LoadErr() error {
	return g.loadErr
}

// Reset loads the variant config and returns to the start screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.loadErr = nil

	cfg, err := config.LoadFalling(g.id, configPath)
	if err != nil {
		g.loadErr = err
		cfg, _ = config.DefaultFor(g.id)
	}

	if difficultyPreset != "" {
		config.ApplyFallingPreset(&cfg, difficultyPreset)
	}

	v, err := NewVariant(g.id, cfg)
	if err != nil {
		g.loadErr = err
		v = MustVariant(g.id)
	}
	g.variant = v

	g.state = NewState(v, runtime.Seed)
	g.loop = NewLoop(g.state)
}

// Step advances the game by one frame.
func (g *Game) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	if g.loop == nil {
		g.Reset(g.runtime)
	}
	events := g.loop.Advance(in, dt.Seconds())
	return core.StepResult{State: g.State(), Events: events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.state == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.state.Score(),
		Lives:    g.state.Lives(),
		GameOver: g.loop.Phase() == PhaseGameOver,
		Paused:   g.loop.Phase() == PhasePaused,
		Quit:     g.loop.Phase() == PhaseTerminated,
	}
}

// Register both variants with the registry
func init() {
	for _, id := range []string{config.BlocksID, config.ShapesID} {
		registry.Register(id, func() registry.Game {
			return New(id)
		})
	}
}
