package falling

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/falling-blocks/internal/config"
	"github.com/vovakirdan/falling-blocks/internal/core"
	"github.com/vovakirdan/falling-blocks/internal/registry"
)

const frameDt = time.Second / 60

func newTestGame(t *testing.T, id string) *Game {
	t.Helper()
	g := New(id)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 99})
	if err := g.LoadErr(); err != nil {
		t.Fatalf("unexpected config error: %v", err)
	}
	return g
}

func screenText(s *core.Screen) string {
	return s.String()
}

func TestGameRegistered(t *testing.T) {
	for _, id := range []string{config.BlocksID, config.ShapesID} {
		if !registry.Exists(id) {
			t.Errorf("%s not registered", id)
		}
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%s): %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("ID() = %s, expected %s", g.ID(), id)
		}
		if _, ok := g.(registry.TickRater); !ok {
			t.Errorf("%s should report its tick rate", id)
		}
	}
}

func TestGameMetadata(t *testing.T) {
	tests := []struct {
		id       string
		title    string
		tickRate int
	}{
		{config.BlocksID, "Falling Blocks", 30},
		{config.ShapesID, "Falling Shapes", 60},
	}
	for _, tc := range tests {
		t.Run(tc.id, func(t *testing.T) {
			g := newTestGame(t, tc.id)
			if g.Title() != tc.title {
				t.Errorf("Title() = %q, expected %q", g.Title(), tc.title)
			}
			if g.TickRate() != tc.tickRate {
				t.Errorf("TickRate() = %d, expected %d", g.TickRate(), tc.tickRate)
			}
		})
	}
}

func TestGameStepLifecycle(t *testing.T) {
	g := newTestGame(t, config.ShapesID)

	st := g.State()
	if st.Score != 0 || st.Lives != 3 || st.GameOver || st.Paused || st.Quit {
		t.Fatalf("unexpected initial state %+v", st)
	}

	res := g.Step(frame(core.ActionConfirm), frameDt)
	if !res.Has(core.EventMusicStart) {
		t.Errorf("expected MusicStart, got %v", res.Events)
	}

	res = g.Step(frame(core.ActionPause), frameDt)
	if !res.State.Paused {
		t.Error("expected paused state")
	}
	res = g.Step(frame(core.ActionPause), frameDt)
	if res.State.Paused {
		t.Error("expected resumed state")
	}

	res = g.Step(frame(core.ActionQuit), frameDt)
	if !res.State.Quit || !res.Has(core.EventMusicStop) {
		t.Errorf("quit should terminate with MusicStop, got %+v", res)
	}
}

func TestGameStepUsesDuration(t *testing.T) {
	g := newTestGame(t, config.ShapesID)
	g.Step(frame(core.ActionAnyKey), 0)
	g.state.obstacles = append(g.state.obstacles, Obstacle{X: 0.5, Y: 0.5})

	g.Step(frame(), 250*time.Millisecond)

	// 0.4 per second for a quarter second
	if y := g.Snapshot().Obstacles[0].Y; math.Abs(y-0.4) > 1e-12 {
		t.Errorf("y = %v, expected 0.4", y)
	}
}

func TestGameRenderScreens(t *testing.T) {
	g := newTestGame(t, config.BlocksID)
	scr := core.NewScreen(80, 24)

	g.Render(scr)
	if text := screenText(scr); !strings.Contains(text, "Press Any Key to Start") {
		t.Errorf("start screen missing prompt:\n%s", text)
	}

	g.Step(frame(core.ActionAnyKey), frameDt)
	g.state.obstacles = append(g.state.obstacles, Obstacle{X: 0.5, Y: 0.5, Shape: ShapeSquare, Color: core.ColorRed})
	g.Render(scr)

	text := screenText(scr)
	if !strings.Contains(text, "Score: 0") || !strings.Contains(text, "Lives: 3") {
		t.Errorf("overlay missing:\n%s", text)
	}
	px, py := toCell(scr, g.state.PlayerPos())
	if c := scr.GetCell(px, py); c.Rune != PlayerChar {
		t.Errorf("player cell = %q, expected %q", c.Rune, PlayerChar)
	}
	ox, oy := toCell(scr, core.Vec2{X: 0.5, Y: 0.5})
	if c := scr.GetCell(ox, oy); c.Rune != ShapeSquare.Glyph() || c.Color != core.ColorRed {
		t.Errorf("obstacle cell = %+v", c)
	}

	g.Step(frame(core.ActionPause), frameDt)
	g.Render(scr)
	text = screenText(scr)
	if !strings.Contains(text, "PAUSED") {
		t.Errorf("pause overlay missing:\n%s", text)
	}
	if c := scr.GetCell(ox, oy); c.Rune == ShapeSquare.Glyph() {
		t.Error("paused frame should not draw obstacles")
	}
}

func TestGameRenderGameOver(t *testing.T) {
	g := newTestGame(t, config.BlocksID)
	g.Step(frame(core.ActionAnyKey), frameDt)
	g.state.lives = 1
	g.state.score = 4
	g.state.obstacles = append(g.state.obstacles, Obstacle{X: 0, Y: -0.8})
	res := g.Step(frame(), frameDt)
	if !res.State.GameOver || !res.Has(core.EventGameOver) {
		t.Fatalf("expected game over, got %+v", res)
	}

	scr := core.NewScreen(80, 24)
	g.Render(scr)
	text := screenText(scr)
	if !strings.Contains(text, "Game Over! Score: 4") {
		t.Errorf("game over screen missing score:\n%s", text)
	}
	if !strings.Contains(text, "Press R to Restart or Q to Quit") {
		t.Errorf("game over screen missing prompt:\n%s", text)
	}
}

func TestGameRenderBackground(t *testing.T) {
	g := newTestGame(t, config.ShapesID)
	g.Step(frame(core.ActionAnyKey), frameDt)
	scr := core.NewScreen(40, 20)
	g.Render(scr)

	c := scr.GetCell(39, 10)
	if c.Color != core.ColorGrass || c.Rune != '░' {
		t.Errorf("background cell = %+v, expected grass", c)
	}
}

func TestGameCustomConfigAndPreset(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "blocks.yaml")
	if err := os.WriteFile(path, []byte("player:\n  lives: 7\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	SetConfigPath(path)
	t.Cleanup(func() { SetConfigPath("") })

	g := newTestGame(t, config.BlocksID)
	if g.State().Lives != 7 {
		t.Errorf("lives = %d, expected 7 from custom config", g.State().Lives)
	}

	SetDifficultyPreset("hard")
	t.Cleanup(func() { SetDifficultyPreset("") })
	g.Reset(core.DefaultConfig())
	if g.State().Lives != 2 {
		t.Errorf("lives = %d, expected 2 with hard preset", g.State().Lives)
	}
	if speed := g.Variant().InitialFallSpeed; speed <= 0.07 {
		t.Errorf("hard preset should raise the initial speed, got %f", speed)
	}
}

func TestGameFallsBackOnBadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("player:\n  lives: -1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	SetConfigPath(path)
	t.Cleanup(func() { SetConfigPath("") })

	g := New(config.BlocksID)
	g.Reset(core.DefaultConfig())
	if g.LoadErr() == nil {
		t.Fatal("expected a load error")
	}
	if g.State().Lives != 3 {
		t.Errorf("lives = %d, expected defaults", g.State().Lives)
	}
}
