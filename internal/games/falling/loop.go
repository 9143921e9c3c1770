package falling

import "github.com/vovakirdan/falling-blocks/internal/core"

// Phase is a screen of the game.
type Phase int

const (
	PhaseStart      Phase = iota // Title screen, waits for any key
	PhasePlaying                 // Simulation running
	PhasePaused                  // Simulation suspended, overlay shown
	PhaseGameOver                // Lives exhausted, waits for restart or quit
	PhaseTerminated              // Quit requested, terminal
)

func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	case PhaseTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Loop is the screen state machine around a State.
// Transitions happen only on input polled once per frame:
//
//	Start -> Playing            any key
//	Playing <-> Paused          pause
//	Playing -> GameOver         lives exhausted
//	GameOver -> Playing         restart (state is reset)
//	any -> Terminated           quit
type Loop struct {
	state      *State
	phase      Phase
	ticks      int     // Simulated ticks since the session (re)started
	spawnClock float64 // Seconds since the last spawn, DeltaTime only
}

// NewLoop creates a loop at the start screen.
func NewLoop(state *State) *Loop {
	return &Loop{state: state, phase: PhaseStart}
}

// Phase returns the current screen.
func (l *Loop) Phase() Phase {
	return l.phase
}

// Ticks returns the number of simulated frames since the session started.
func (l *Loop) Ticks() int {
	return l.ticks
}

// Advance runs one frame: applies the frame's intents, then simulates if
// playing. dt is the real elapsed time in seconds and is ignored by the
// FixedTick time model.
func (l *Loop) Advance(in core.InputFrame, dt float64) []core.Event {
	if l.phase == PhaseTerminated {
		return nil
	}
	if in.Has(core.ActionQuit) {
		l.phase = PhaseTerminated
		return []core.Event{core.EventMusicStop}
	}

	switch l.phase {
	case PhaseStart:
		if in.Any() {
			l.begin()
			return []core.Event{core.EventMusicStart}
		}
		return nil

	case PhaseGameOver:
		if in.Has(core.ActionRestart) {
			l.state.Reset()
			l.begin()
			return []core.Event{core.EventMusicStart}
		}
		return nil
	}

	// Playing or Paused: intents first, movement is accepted even while paused
	for i := in.Count(core.ActionLeft); i > 0; i-- {
		l.state.MovePlayer(-1)
	}
	for i := in.Count(core.ActionRight); i > 0; i-- {
		l.state.MovePlayer(1)
	}
	if in.Has(core.ActionPause) {
		l.togglePause()
	}
	if l.phase == PhasePaused {
		return nil
	}

	return l.simulate(dt)
}

// begin enters Playing with fresh frame counters.
func (l *Loop) begin() {
	l.phase = PhasePlaying
	l.ticks = 0
	l.spawnClock = 0
	l.state.SetPaused(false)
}

func (l *Loop) togglePause() {
	if l.phase == PhasePaused {
		l.phase = PhasePlaying
		l.state.SetPaused(false)
		return
	}
	l.phase = PhasePaused
	l.state.SetPaused(true)
}

// simulate spawns on the variant's interval, updates, then ramps difficulty.
func (l *Loop) simulate(dt float64) []core.Event {
	v := l.state.variant
	l.ticks++

	step := dt
	switch v.TimeModel {
	case FixedTick:
		step = 1
		if l.ticks%v.SpawnEvery == 0 {
			l.state.SpawnObstacle()
		}
	case DeltaTime:
		l.spawnClock += dt
		if l.spawnClock >= v.SpawnInterval {
			l.state.SpawnObstacle()
			l.spawnClock = 0
		}
	}

	report := l.state.Update(step)
	l.state.IncreaseDifficulty()

	var events []core.Event
	if report.Hits > 0 {
		events = append(events, core.EventHit)
	}
	if report.Scored > 0 {
		events = append(events, core.EventScored)
	}
	if l.state.GameOver() {
		l.phase = PhaseGameOver
		events = append(events, core.EventGameOver, core.EventMusicStop)
	}
	return events
}
