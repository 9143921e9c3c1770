// Package tui provides the Bubble Tea integration for the arcade.
// It handles the terminal UI loop, input mapping and frame timing.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/falling-blocks/internal/registry"
)

// MaxFrameDelta caps the elapsed time fed to a single step, so a stalled
// terminal does not teleport obstacles through the player.
const MaxFrameDelta = 250 * time.Millisecond

// DefaultTickRate is used when neither the flag nor the game sets a rate.
const DefaultTickRate = 60

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// ResolveTickRate returns the rate to drive a game at: the forced rate if
// positive, otherwise the game's preferred rate.
func ResolveTickRate(game registry.Game, forced int) int {
	if forced > 0 {
		return forced
	}
	if tr, ok := game.(registry.TickRater); ok && tr.TickRate() > 0 {
		return tr.TickRate()
	}
	return DefaultTickRate
}

// frameDelta returns the time since the previous tick, clamped to
// MaxFrameDelta. The first tick of a run uses one nominal interval.
func frameDelta(prev, now time.Time, tickRate int) time.Duration {
	if prev.IsZero() {
		return time.Second / time.Duration(tickRate)
	}
	dt := now.Sub(prev)
	if dt < 0 {
		return 0
	}
	if dt > MaxFrameDelta {
		return MaxFrameDelta
	}
	return dt
}
