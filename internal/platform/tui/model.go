package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/falling-blocks/internal/core"
	"github.com/vovakirdan/falling-blocks/internal/registry"
)

// Music is the background track the model drives from game events.
type Music interface {
	Play()
	Stop()
}

type noMusic struct{}

func (noMusic) Play() {}
func (noMusic) Stop() {}

// Options configures a game model.
type Options struct {
	Music  Music       // Nil disables audio
	Logger *log.Logger // Nil discards logs
	// AllowBack enables the "back to menu" key on pause and game over.
	AllowBack bool
}

// Model is the Bubble Tea model for running one game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	music      Music
	logger     *log.Logger
	inputFrame core.InputFrame
	gameState  core.GameState
	lastTick   time.Time
	quitting   bool
	backToMenu bool
	standalone bool // Owns the program; leaving the game ends it
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	cfg.TickRate = ResolveTickRate(game, cfg.TickRate)

	music := opts.Music
	if music == nil {
		music = noMusic{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	keys := DefaultKeyMap()
	keys.Back.SetEnabled(opts.AllowBack)

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, playfieldHeight(cfg.ScreenH)),
		config:     cfg,
		keys:       keys,
		help:       help.New(),
		music:      music,
		logger:     logger,
		inputFrame: core.NewInputFrame(),
	}
}

// playfieldHeight leaves one row for the help line.
func playfieldHeight(h int) int {
	if h > 2 {
		return h - 1
	}
	return h
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("game started", "game", m.game.ID(), "tick_rate", m.config.TickRate, "seed", m.config.Seed)

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Back) && (m.gameState.GameOver || m.gameState.Paused):
		m.music.Stop()
		m.backToMenu = true
		if m.standalone {
			return m, tea.Quit
		}
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		// Step once so the game sees the quit and emits its final events
		frame := core.NewInputFrame()
		frame.Set(core.ActionQuit)
		m.applyEvents(m.game.Step(frame, 0))
		m.quitting = true
		return m, tea.Quit
	}

	m.inputFrame.Set(action)
	return m, nil
}

// handleResize processes window resize events.
// The playfield is normalized, so only the buffer changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playfieldHeight(msg.Height))
	m.help.Width = msg.Width

	return m, nil
}

// handleTick runs one simulation step with the real elapsed time.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	dt := frameDelta(m.lastTick, now, m.config.TickRate)
	m.lastTick = now

	result := m.game.Step(m.inputFrame, dt)
	m.applyEvents(result)
	m.inputFrame.Clear()

	if result.State.Quit {
		m.quitting = true
		return m, tea.Quit
	}

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// applyEvents reacts to a step's side effects.
func (m *Model) applyEvents(result core.StepResult) {
	prev := m.gameState
	m.gameState = result.State

	for _, e := range result.Events {
		switch e {
		case core.EventMusicStart:
			m.music.Play()
		case core.EventMusicStop:
			m.music.Stop()
		case core.EventHit:
			m.logger.Debug("hit", "lives", result.State.Lives)
		case core.EventGameOver:
			m.logger.Info("game over", "game", m.game.ID(), "score", result.State.Score)
		}
	}

	if prev.Paused != result.State.Paused {
		m.logger.Debug("pause toggled", "paused", result.State.Paused)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// State returns the game state after the last step.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if the player quit the game.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the player asked to return to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// RunResult reports how a game run ended.
type RunResult struct {
	State      core.GameState // State after the last step
	BackToMenu bool           // Player asked for the menu rather than quitting
}

// Run starts the Bubble Tea program for one game and blocks until it exits.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (RunResult, error) {
	model := NewModel(game, cfg, opts)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return RunResult{}, fmt.Errorf("tui: run %s: %w", game.ID(), err)
	}

	m, ok := final.(Model)
	if !ok {
		return RunResult{}, nil
	}
	return RunResult{State: m.State(), BackToMenu: m.BackToMenu()}, nil
}
