// flappy is a side-scrolling reflex game for the terminal.
//
// Usage:
//
//	flappy play       - Play in the current terminal
//	flappy serve      - Start SSH server for remote play
//	flappy levels     - Show the difficulty table
//	flappy simulate   - Run a headless simulation
//
// Global flags:
//
//	--config <path> - Custom config YAML
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--verbose       - Debug logging
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-tui/internal/config"
)

var (
	// Global flags
	flagConfig  string
	flagSeed    int64
	flagVerbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy - dodge pipes in your terminal",
	Long: `Flappy is a side-scrolling reflex game: keep the bird in the air and
fly through the gaps between pipes. Every 5 pipes the level goes up, pipes
come faster and the gaps shrink, up to level 10.

Available commands:
  play      - Play in the current terminal
  serve     - Start SSH server for remote play
  levels    - Show the difficulty table
  simulate  - Run a headless simulation

Examples:
  flappy play
  flappy play --config ./my-flappy.yaml --seed 42
  flappy serve --ssh :2222
  flappy simulate --autopilot --duration 2m`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(simulateCmd)
}

// newLogger creates the application logger writing to w.
func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "flappy",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// loadConfig loads the game config and logs what was loaded.
func loadConfig(logger *log.Logger) (config.FlappyConfig, error) {
	cfg, err := config.LoadFlappy(flagConfig)
	if err != nil {
		return config.FlappyConfig{}, err
	}
	logger.Debug("config loaded", "path", flagConfig, "levels", cfg.MaxLevel())
	return cfg, nil
}
