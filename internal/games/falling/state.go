package falling

import (
	"math/rand"

	"github.com/vovakirdan/falling-blocks/internal/config"
	"github.com/vovakirdan/falling-blocks/internal/core"
)

// UpdateReport summarizes what one Update did.
type UpdateReport struct {
	Hits   int // Obstacles that hit the player
	Scored int // Obstacles that passed the floor
}

// State holds everything one play session mutates.
// It is owned by the loop driver and never shared.
type State struct {
	variant    Variant
	rng        *rand.Rand
	difficulty *config.DifficultyManager

	playerX   float64
	obstacles []Obstacle
	score     int
	lives     int
	fallSpeed float64
	paused    bool
	gameOver  bool
	updates   int // IncreaseDifficulty calls since the last reset
}

// NewState creates a session state for the variant, seeded for reproducibility.
func NewState(v Variant, seed int64) *State {
	s := &State{
		variant:    v,
		rng:        rand.New(rand.NewSource(seed)),
		difficulty: config.NewDifficultyManager(v.Difficulty),
		obstacles:  make([]Obstacle, 0, 16),
	}
	s.Reset()
	return s
}

// Reset restores every field to its initial value in place.
func (s *State) Reset() {
	s.playerX = 0
	s.obstacles = s.obstacles[:0]
	s.score = 0
	s.lives = s.variant.Lives
	s.fallSpeed = s.variant.InitialFallSpeed
	s.paused = false
	s.gameOver = false
	s.updates = 0
}

// SpawnObstacle appends one obstacle at a random x within the spawn range,
// with a shape drawn uniformly from the variant's set.
func (s *State) SpawnObstacle() Obstacle {
	r := s.variant.SpawnRange
	x := -r + s.rng.Float64()*2*r

	i := 0
	if n := len(s.variant.Shapes); n > 1 {
		i = s.rng.Intn(n)
	}
	o := Obstacle{
		X:     x,
		Y:     s.variant.SpawnY,
		Shape: s.variant.Shapes[i],
		Color: s.variant.Colors[i],
	}
	s.obstacles = append(s.obstacles, o)
	return o
}

// Update moves every obstacle down by fallSpeed*dt and resolves it in a
// single pass: a hit costs a life and removes the obstacle without score,
// otherwise passing the floor scores one point and removes it. The
// collision test runs first, so an obstacle that hits and crosses the
// floor in the same update is never scored.
func (s *State) Update(dt float64) UpdateReport {
	var report UpdateReport
	if s.gameOver {
		return report
	}

	player := s.PlayerPos()
	kept := s.obstacles[:0]
	for _, o := range s.obstacles {
		o.Y -= s.fallSpeed * dt

		if Collides(player, o.Pos(), s.variant.HitThreshold) {
			report.Hits++
			if s.lives > 0 {
				s.lives--
			}
			if s.lives == 0 {
				s.gameOver = true
			}
			continue
		}

		if o.Y < s.variant.FloorY {
			s.score++
			report.Scored++
			continue
		}

		kept = append(kept, o)
	}
	s.obstacles = kept

	return report
}

// IncreaseDifficulty advances the fall speed ramp by one update.
func (s *State) IncreaseDifficulty() {
	s.updates++
	s.fallSpeed = s.difficulty.Next(s.fallSpeed, s.updates)
}

// MovePlayer shifts the paddle one step left (dir < 0) or right (dir > 0).
// A move is accepted only while the paddle is inside the move limit on that
// side, and the result never leaves the playfield.
func (s *State) MovePlayer(dir int) {
	step := s.variant.PlayerStep
	limit := s.variant.MoveLimit
	switch {
	case dir < 0 && s.playerX > -limit:
		s.playerX -= step
	case dir > 0 && s.playerX < limit:
		s.playerX += step
	default:
		return
	}
	s.playerX = core.ClampF(s.playerX, -1, 1)
}

// SetPaused sets the paused flag.
func (s *State) SetPaused(paused bool) {
	s.paused = paused
}

// PlayerPos returns the paddle center.
func (s *State) PlayerPos() core.Vec2 {
	return core.Vec2{X: s.playerX, Y: s.variant.PlayerY}
}

// Obstacles returns the live obstacles. The slice is only valid until the next update.
func (s *State) Obstacles() []Obstacle {
	return s.obstacles
}

// Score returns the number of obstacles that passed the floor.
func (s *State) Score() int { return s.score }

// Lives returns the remaining lives.
func (s *State) Lives() int { return s.lives }

// FallSpeed returns the current fall speed.
func (s *State) FallSpeed() float64 { return s.fallSpeed }

// Paused reports whether simulation is suspended.
func (s *State) Paused() bool { return s.paused }

// GameOver reports whether lives are exhausted.
func (s *State) GameOver() bool { return s.gameOver }

// Level returns the number of speed increments applied so far.
func (s *State) Level() int {
	return s.difficulty.Level(s.variant.InitialFallSpeed, s.fallSpeed)
}
