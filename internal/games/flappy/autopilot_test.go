package flappy

import (
	"testing"

	"github.com/vovakirdan/flappy-tui/internal/config"
)

func TestAutopilotDecide(t *testing.T) {
	ap := NewAutopilot(config.DefaultFlappyConfig())

	tests := []struct {
		name      string
		snap      Snapshot
		obstacles []ObstacleInfo
		want      bool
	}{
		{"not running", Snapshot{Phase: PhaseIdle, Level: 1, ActorY: 500}, nil, false},
		{"low without obstacles", Snapshot{Phase: PhaseRunning, Level: 1, ActorY: 300}, nil, true},
		{"high without obstacles", Snapshot{Phase: PhaseRunning, Level: 1, ActorY: 200}, nil, false},
		{"above low gate", Snapshot{Phase: PhaseRunning, Level: 1, ActorY: 300},
			[]ObstacleInfo{{X: 200, GateTop: 250, GateBottom: 500}}, false},
		{"sinking toward gate bottom", Snapshot{Phase: PhaseRunning, Level: 1, ActorY: 455, ActorVelocity: 5},
			[]ObstacleInfo{{X: 200, GateTop: 250, GateBottom: 500}}, true},
		{"passed obstacle ignored", Snapshot{Phase: PhaseRunning, Level: 1, ActorY: 200},
			[]ObstacleInfo{{X: -10, GateTop: 0, GateBottom: 150}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ap.Decide(tt.snap, tt.obstacles); got != tt.want {
				t.Errorf("Decide = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAutopilotPassesFirstObstacle(t *testing.T) {
	r := newRig(t, 3)
	r.c.Start()
	r.run(NewAutopilot(r.c.Config()), 500)

	if s := r.c.Snapshot(); s.Score < 1 {
		t.Errorf("autopilot scored %d after 500 ticks (%v), want at least 1", s.Score, s.Phase)
	}
}
