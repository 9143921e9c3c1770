// arcade is a falling-obstacles arcade game for the terminal and the desktop.
//
// Usage:
//
//	arcade list              - List available variants
//	arcade play <variant>    - Play a variant (blocks or shapes)
//	arcade menu              - Pick a variant interactively
//	arcade serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>       - Force a tick rate (default: the variant's own)
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--log-file <path>  - Write logs to a file while the game owns the terminal
//	--debug            - Enable debug logging
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/falling-blocks/internal/games/falling"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Falling Blocks - dodge what falls from the sky",
	Long: `Falling Blocks is an arcade game: move the paddle left and right and
dodge the obstacles falling from the top of the screen. Every obstacle that
reaches the floor scores a point; every hit costs a life.

Variants:
  blocks  - red squares, fixed 30 ticks per second
  shapes  - six colored shapes, smooth 60 fps, background music

Available commands:
  list     - Show all variants
  play     - Play a variant directly
  menu     - Interactive variant picker
  serve    - Start SSH server for remote play

Examples:
  arcade list
  arcade play blocks
  arcade play shapes --window
  arcade menu
  arcade serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = variant's own rate)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file used while the game owns the terminal")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
}

// newLogger builds the command logger writing to w.
func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "arcade",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// gameLogger returns a logger that does not draw over the alternate
// screen: the --log-file if set, otherwise nothing. The returned closer
// must be called when the game ends.
func gameLogger() (*log.Logger, func(), error) {
	if flagLogFile == "" {
		return newLogger(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return newLogger(f), func() { f.Close() }, nil
}
