package falling

import (
	"fmt"
	"math"

	"github.com/vovakirdan/falling-blocks/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar = '█'
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	if g.state == nil {
		g.Reset(g.runtime)
	}

	if g.variant.Background != core.ColorDefault {
		dst.FillColored(g.variant.BackgroundGlyph, g.variant.Background)
	} else {
		dst.Clear()
	}

	switch g.loop.Phase() {
	case PhaseStart:
		g.drawCenteredMessage(dst, g.variant.Title, "Press Any Key to Start")
		return
	case PhaseGameOver:
		g.drawCenteredMessage(dst, fmt.Sprintf("Game Over! Score: %d", g.state.Score()),
			"Press R to Restart or Q to Quit")
		return
	case PhaseTerminated:
		return
	}

	// Paused frames keep the background and overlay only
	if g.loop.Phase() != PhasePaused {
		for _, o := range g.state.Obstacles() {
			g.drawBlock(dst, o.Pos(), g.variant.ObstacleSize, o.Shape.Glyph(), o.Color)
		}
		g.drawBlock(dst, g.state.PlayerPos(), g.variant.PlayerSize, PlayerChar, g.variant.PlayerColor)
	}

	g.drawOverlay(dst)
}

// drawOverlay draws score, lives and the pause label.
func (g *Game) drawOverlay(dst *core.Screen) {
	dst.DrawTextColored(1, 0, fmt.Sprintf(" Score: %d ", g.state.Score()), core.ColorBrightWhite)
	dst.DrawTextColored(1, 1, fmt.Sprintf(" Lives: %d ", g.state.Lives()), core.ColorBrightWhite)

	if lvl := g.state.Level(); lvl > 0 {
		levelText := fmt.Sprintf(" Spd: %.3f ", g.state.FallSpeed())
		dst.DrawTextColored(dst.Width()-len(levelText)-1, 0, levelText, core.ColorGray)
	}

	if g.loop.Phase() == PhasePaused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// drawBlock fills the cells covered by a square of half size around center.
// Every object covers at least one cell.
func (g *Game) drawBlock(dst *core.Screen, center core.Vec2, half float64, r rune, c core.Color) {
	cx, cy := toCell(dst, center)
	hw := int(math.Round(half / 2 * float64(dst.Width()-1)))
	hh := int(math.Round(half / 2 * float64(dst.Height()-1)))
	for y := cy - hh; y <= cy+hh; y++ {
		for x := cx - hw; x <= cx+hw; x++ {
			dst.SetColored(x, y, r, c)
		}
	}
}

// toCell maps a playfield point to a screen cell. +Y is up in the playfield
// and down on screen.
func toCell(dst *core.Screen, p core.Vec2) (int, int) {
	x := (p.X + 1) / 2 * float64(dst.Width()-1)
	y := (1 - p.Y) / 2 * float64(dst.Height()-1)
	return int(math.Round(x)), int(math.Round(y))
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
