package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/falling-blocks/internal/platform/tui"
	"github.com/vovakirdan/falling-blocks/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a variant picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a variant.
After a game ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select variant
  B            - Back to menu (paused or game over)
  Q            - Quit

Examples:
  arcade menu
  arcade menu --difficulty easy
  arcade menu --fps 30`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom variant config YAML")
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	menuCmd.Flags().StringVar(&flagMusic, "music", "", "Background track (mp3 or wav), overrides the config")
}

func runMenu(_ *cobra.Command, _ []string) {
	if err := prepareGames(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := gameLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	cfg := runtimeConfig()
	seed := cfg.Seed

	for {
		menuResult, err := tui.RunMenu(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Keep any size changes
		cfg = menuResult.Config
		if menuResult.Quit {
			break
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		// A fixed --seed replays the same game each time
		cfg.Seed = seed
		if cfg.Seed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		game.Reset(cfg)
		music := openMusic(game, logger)
		_, runErr := tui.Run(game, cfg, tui.Options{Music: music, Logger: logger, AllowBack: true})
		music.Close()
		if runErr != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		}
	}
}
