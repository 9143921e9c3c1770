// Package gui runs the falling game in a desktop window with Ebitengine.
package gui

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/falling-blocks/internal/core"
	"github.com/vovakirdan/falling-blocks/internal/games/falling"
)

// Window size in pixels.
const (
	ScreenWidth  = 850
	ScreenHeight = 600
)

const titleFontSize = 24

// Music is the background track driven by game events.
type Music interface {
	Play()
	Stop()
}

type noMusic struct{}

func (noMusic) Play() {}
func (noMusic) Stop() {}

// Options configures a window run.
type Options struct {
	TickRate int         // 0 uses the game's own rate
	Music    Music       // Nil disables audio
	Logger   *log.Logger // Nil discards logs
}

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// Window implements ebiten.Game around a falling game.
type Window struct {
	game   *falling.Game
	music  Music
	logger *log.Logger
	dt     time.Duration

	titleFace text.Face
	hudFace   text.Face

	keys     []ebiten.Key
	vertices []ebiten.Vertex
	indices  []uint16
}

// New creates a window for the game. The game is reset with cfg.
func New(game *falling.Game, cfg core.RuntimeConfig, opts Options) (*Window, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(fonts.PressStart2P_ttf))
	if err != nil {
		return nil, fmt.Errorf("gui: load font: %w", err)
	}

	tps := opts.TickRate
	if tps <= 0 {
		tps = game.TickRate()
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	cfg.ScreenW, cfg.ScreenH, cfg.TickRate = ScreenWidth, ScreenHeight, tps
	game.Reset(cfg)

	w := &Window{
		game:      game,
		music:     opts.Music,
		logger:    opts.Logger,
		dt:        time.Second / time.Duration(tps),
		titleFace: &text.GoTextFace{Source: source, Size: titleFontSize},
		hudFace:   text.NewGoXFace(basicfont.Face7x13),
	}
	if w.music == nil {
		w.music = noMusic{}
	}
	if w.logger == nil {
		w.logger = log.New(io.Discard)
	}
	return w, nil
}

// Run opens the window and blocks until the game terminates or the window closes.
func Run(game *falling.Game, cfg core.RuntimeConfig, opts Options) error {
	w, err := New(game, cfg, opts)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(int(time.Second / w.dt))

	w.logger.Info("window opened", "game", game.ID(), "tps", ebiten.TPS())
	if err := ebiten.RunGame(w); err != nil {
		return fmt.Errorf("gui: %w", err)
	}
	return nil
}

// Update polls edge-triggered keys once and advances the game by one frame.
func (w *Window) Update() error {
	w.keys = inpututil.AppendJustPressedKeys(w.keys[:0])
	in := frameFromKeys(w.keys)
	if ebiten.IsWindowBeingClosed() {
		in.Set(core.ActionQuit)
	}

	result := w.game.Step(in, w.dt)
	for _, e := range result.Events {
		switch e {
		case core.EventMusicStart:
			w.music.Play()
		case core.EventMusicStop:
			w.music.Stop()
		case core.EventGameOver:
			w.logger.Info("game over", "game", w.game.ID(), "score", result.State.Score)
		}
	}

	if result.State.Quit {
		return ebiten.Termination
	}
	return nil
}

// frameFromKeys maps the keys pressed this frame to actions.
func frameFromKeys(keys []ebiten.Key) core.InputFrame {
	in := core.NewInputFrame()
	for _, k := range keys {
		switch k {
		case ebiten.KeyArrowLeft, ebiten.KeyA:
			in.Set(core.ActionLeft)
		case ebiten.KeyArrowRight, ebiten.KeyD:
			in.Set(core.ActionRight)
		case ebiten.KeyP, ebiten.KeyEscape:
			in.Set(core.ActionPause)
		case ebiten.KeyR:
			in.Set(core.ActionRestart)
		case ebiten.KeyEnter, ebiten.KeySpace:
			in.Set(core.ActionConfirm)
		case ebiten.KeyQ:
			in.Set(core.ActionQuit)
		default:
			in.Set(core.ActionAnyKey)
		}
	}
	return in
}

// Layout keeps a fixed logical resolution.
func (w *Window) Layout(_, _ int) (int, int) {
	return ScreenWidth, ScreenHeight
}

// Draw renders the current snapshot.
func (w *Window) Draw(screen *ebiten.Image) {
	snap := w.game.Snapshot()

	screen.Fill(toRGBA(snap.Background))

	switch snap.Phase {
	case falling.PhaseStart:
		w.drawCentered(screen, snap.Title, 0.1, w.titleFace)
		w.drawCentered(screen, "Press Any Key to Start", -0.1, w.hudFace)
		return
	case falling.PhaseGameOver:
		w.drawCentered(screen, fmt.Sprintf("Game Over! Score: %d", snap.Score), 0.1, w.titleFace)
		w.drawCentered(screen, "Press R to Restart or Q to Quit", -0.1, w.hudFace)
		return
	case falling.PhaseTerminated:
		return
	}

	if snap.Phase == falling.PhasePaused {
		w.drawCentered(screen, "Paused", 0, w.titleFace)
	} else {
		for _, o := range snap.Obstacles {
			w.drawShape(screen, o.Shape, o.Pos(), snap.ObstacleSize, o.Color)
		}
		w.drawShape(screen, falling.ShapeSquare, snap.Player, snap.PlayerSize, snap.PlayerColor)
	}

	w.drawHUD(screen, fmt.Sprintf("Score: %d", snap.Score), core.Vec2{X: -0.95, Y: 0.95})
	w.drawHUD(screen, fmt.Sprintf("Lives: %d", snap.Lives), core.Vec2{X: -0.95, Y: 0.88})
	if snap.Level > 0 {
		w.drawHUD(screen, fmt.Sprintf("Speed: %.3f", snap.FallSpeed), core.Vec2{X: 0.65, Y: 0.95})
	}
}

// drawShape fills the shape outline as a triangle fan from its center.
func (w *Window) drawShape(screen *ebiten.Image, s falling.Shape, center core.Vec2, size float64, c core.Color) {
	if s == falling.ShapeSquare {
		x0, y0 := toPixel(core.Vec2{X: center.X - size, Y: center.Y + size})
		x1, y1 := toPixel(core.Vec2{X: center.X + size, Y: center.Y - size})
		vector.DrawFilledRect(screen, x0, y0, x1-x0, y1-y0, toRGBA(c), false)
		return
	}

	r, g, b := c.RGB()
	vertex := func(p core.Vec2) ebiten.Vertex {
		x, y := toPixel(p)
		return ebiten.Vertex{
			DstX: x, DstY: y,
			SrcX: 1, SrcY: 1,
			ColorR: r, ColorG: g, ColorB: b, ColorA: 1,
		}
	}

	outline := s.Outline(center, size)
	w.vertices = append(w.vertices[:0], vertex(center))
	w.indices = w.indices[:0]
	for i, p := range outline {
		w.vertices = append(w.vertices, vertex(p))
		next := (i+1)%len(outline) + 1
		w.indices = append(w.indices, 0, uint16(i+1), uint16(next))
	}
	screen.DrawTriangles(w.vertices, w.indices, whiteSubImage, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func (w *Window) drawHUD(screen *ebiten.Image, msg string, at core.Vec2) {
	x, y := toPixel(at)
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, msg, w.hudFace, op)
}

func (w *Window) drawCentered(screen *ebiten.Image, msg string, y float64, face text.Face) {
	px, py := toPixel(core.Vec2{X: 0, Y: y})
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(px), float64(py))
	op.ColorScale.ScaleWithColor(color.White)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, msg, face, op)
}

// toPixel maps playfield coordinates ([-1, 1], +Y up) to window pixels.
func toPixel(p core.Vec2) (float32, float32) {
	x := (p.X + 1) / 2 * ScreenWidth
	y := (1 - p.Y) / 2 * ScreenHeight
	return float32(x), float32(y)
}

func toRGBA(c core.Color) color.RGBA {
	if c == core.ColorDefault {
		return color.RGBA{A: 0xff}
	}
	r, g, b := c.RGB()
	return color.RGBA{R: uint8(r * 255), G: uint8(g * 255), B: uint8(b * 255), A: 0xff}
}
