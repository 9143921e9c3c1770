package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (0 = game's preferred rate)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Lives    int  // Remaining lives
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
	Quit     bool // Whether the game reached its terminal state and the platform should exit
}

// Event is a discrete side effect produced by a simulation step.
// The platform reacts to events (audio, logging) without reaching into game state.
type Event int

const (
	EventMusicStart Event = iota + 1 // Background track should start looping
	EventMusicStop                   // Background track should stop
	EventHit                         // Player collided with an obstacle
	EventScored                      // An obstacle left through the floor
	EventGameOver                    // Lives exhausted
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventMusicStart:
		return "MusicStart"
	case EventMusicStop:
		return "MusicStop"
	case EventHit:
		return "Hit"
	case EventScored:
		return "Scored"
	case EventGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether the step produced the given event.
func (r StepResult) Has(e Event) bool {
	for _, ev := range r.Events {
		if ev == e {
			return true
		}
	}
	return false
}
