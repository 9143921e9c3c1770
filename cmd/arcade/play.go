package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/falling-blocks/internal/audio"
	"github.com/vovakirdan/falling-blocks/internal/config"
	"github.com/vovakirdan/falling-blocks/internal/core"
	"github.com/vovakirdan/falling-blocks/internal/games/falling"
	"github.com/vovakirdan/falling-blocks/internal/platform/gui"
	"github.com/vovakirdan/falling-blocks/internal/platform/tui"
	"github.com/vovakirdan/falling-blocks/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
	flagMusic      string
	flagWindow     bool
)

var playCmd = &cobra.Command{
	Use:   "play <variant>",
	Short: "Play a variant",
	Long: `Start playing the specified variant.

Controls:
  Left/A/H    - Move left
  Right/D/L   - Move right
  P/Esc       - Pause
  R           - Restart (after game over)
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Slower start, 5 lives
  normal - Config's own speed
  hard   - Faster start, 2 lives
  fixed  - Fall speed never increases

Examples:
  arcade play blocks
  arcade play shapes --difficulty hard
  arcade play shapes --music ./theme.mp3
  arcade play shapes --window
  arcade play blocks --config ./my-blocks.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom variant config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagMusic, "music", "", "Background track (mp3 or wav), overrides the config")
	playCmd.Flags().BoolVar(&flagWindow, "window", false, "Play in a desktop window instead of the terminal")
}

// prepareGames applies the config flags shared by play and menu.
func prepareGames() error {
	if flagDifficulty != "" {
		if _, err := config.ParsePreset(flagDifficulty); err != nil {
			return err
		}
	}
	falling.SetConfigPath(flagConfig)
	falling.SetDifficultyPreset(flagDifficulty)
	return nil
}

// runtimeConfig sizes the playfield to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openMusic loads the variant's background track, or a disabled one.
// The game must have been reset so its config is loaded.
func openMusic(game registry.Game, logger *log.Logger) *audio.Track {
	fg, ok := game.(*falling.Game)
	if !ok {
		return audio.Disabled()
	}
	cfg := fg.Variant().Audio

	path := cfg.Track
	if flagMusic != "" {
		path = flagMusic
	} else if !cfg.Enabled {
		return audio.Disabled()
	}
	if path == "" {
		return audio.Disabled()
	}
	return audio.Open(config.ExpandHome(path), cfg.Volume, logger)
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]
	stderr := newLogger(os.Stderr)

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available variants.")
		os.Exit(1)
	}
	if err := prepareGames(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	cfg := runtimeConfig()
	game.Reset(cfg)
	if fg, ok := game.(*falling.Game); ok && fg.LoadErr() != nil {
		stderr.Warn("using built-in config", "variant", gameID, "error", fg.LoadErr())
	}

	if flagWindow {
		runWindow(game, cfg, stderr)
		return
	}

	logger, closeLog, err := gameLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	music := openMusic(game, logger)
	_, runErr := tui.Run(game, cfg, tui.Options{Music: music, Logger: logger})

	music.Close()
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// runWindow plays in an Ebitengine window; logs stay on stderr.
func runWindow(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) {
	fg, ok := game.(*falling.Game)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: %s has no window frontend\n", game.ID())
		os.Exit(1)
	}

	music := openMusic(game, logger)
	err := gui.Run(fg, cfg, gui.Options{
		TickRate: flagFPS,
		Music:    music,
		Logger:   logger,
	})
	music.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
