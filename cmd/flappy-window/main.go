//go:build ebiten

// flappy-window runs the game in a desktop window, or in a browser canvas
// when built for GOOS=js GOARCH=wasm.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-tui/internal/config"
	"github.com/vovakirdan/flappy-tui/internal/platform/window"
)

var (
	flagConfig string
	flagSeed   int64
	flagScale  float64
)

var rootCmd = &cobra.Command{
	Use:          "flappy-window",
	Short:        "Play flappy in a window",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window scale factor")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(_ *cobra.Command, _ []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "flappy",
	})

	cfg, err := config.LoadFlappy(flagConfig)
	if err != nil {
		return err
	}

	game, err := window.New(cfg, flagSeed, logger)
	if err != nil {
		return err
	}

	w, h := game.Size()
	ebiten.SetWindowTitle("Flappy")
	ebiten.SetWindowSize(int(float64(w)*flagScale), int(float64(h)*flagScale))

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
