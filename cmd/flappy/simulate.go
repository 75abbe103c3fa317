package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-tui/internal/games/flappy"
	"github.com/vovakirdan/flappy-tui/internal/sched"
)

var (
	flagDuration  time.Duration
	flagAutopilot bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless simulation",
	Long: `Run the simulation without a screen on a virtual clock, tick by tick,
and print the result. Without --autopilot nobody flaps and the run ends
when the bird hits the ground.

Examples:
  flappy simulate --autopilot
  flappy simulate --autopilot --duration 5m --seed 7 -v`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().DurationVar(&flagDuration, "duration", time.Minute, "Virtual time to simulate")
	simulateCmd.Flags().BoolVar(&flagAutopilot, "autopilot", false, "Let the autopilot flap")
}

func runSimulate(_ *cobra.Command, _ []string) {
	logger := newLogger(os.Stderr)

	cfg, err := loadConfig(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	loop := sched.NewLoop()
	ctrl, err := flappy.New(cfg, flappy.Host{
		Surface: flappy.NopSurface{},
		Input:   flappy.NewInputHub(),
		Clock:   loop,
		Logger:  logger,
		Seed:    seed,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer ctrl.Dispose()

	var pilot *flappy.Autopilot
	if flagAutopilot {
		pilot = flappy.NewAutopilot(cfg)
	}

	step := cfg.Timing.TickInterval
	ctrl.Start()
	for loop.Now() < flagDuration {
		if pilot != nil && pilot.Decide(ctrl.Snapshot(), ctrl.Obstacles()) {
			ctrl.HandleInput()
		}
		loop.Advance(step)
		if ctrl.Snapshot().Phase == flappy.PhaseOver {
			break
		}
	}
	ctrl.Stop()

	s := ctrl.Snapshot()
	fmt.Printf("seed:       %d\n", seed)
	fmt.Printf("outcome:    %s\n", s.Phase)
	fmt.Printf("time:       %v (%d ticks)\n", loop.Now(), s.Ticks)
	fmt.Printf("score:      %d\n", s.Score)
	fmt.Printf("level:      %d (%s)\n", s.Level, s.Difficulty)
	fmt.Printf("callbacks:  %d\n", loop.Fired())
}
