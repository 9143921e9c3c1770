package falling

import "github.com/vovakirdan/falling-blocks/internal/core"

// Snapshot captures the drawable game state for renderers and tests.
type Snapshot struct {
	Phase        Phase
	Tick         int
	Title        string
	Player       core.Vec2
	PlayerSize   float64
	PlayerColor  core.Color
	ObstacleSize float64
	Obstacles    []Obstacle // Copy, safe to keep
	Score        int
	Lives        int
	FallSpeed    float64
	Level        int
	Background   core.Color
}

// Snapshot returns a copy of the current drawable state.
func (g *Game) Snapshot() Snapshot {
	if g.state == nil {
		g.Reset(g.runtime)
	}

	obstacles := make([]Obstacle, len(g.state.Obstacles()))
	copy(obstacles, g.state.Obstacles())

	return Snapshot{
		Phase:        g.loop.Phase(),
		Tick:         g.loop.Ticks(),
		Title:        g.variant.Title,
		Player:       g.state.PlayerPos(),
		PlayerSize:   g.variant.PlayerSize,
		PlayerColor:  g.variant.PlayerColor,
		ObstacleSize: g.variant.ObstacleSize,
		Obstacles:    obstacles,
		Score:        g.state.Score(),
		Lives:        g.state.Lives(),
		FallSpeed:    g.state.FallSpeed(),
		Level:        g.state.Level(),
		Background:   g.variant.Background,
	}
}
