package flappy

import "github.com/vovakirdan/flappy-tui/internal/config"

// Autopilot flaps whenever the actor is about to sink below the gate it
// has to pass next. With no obstacle ahead it holds the arena middle.
type Autopilot struct {
	cfg   config.FlappyConfig
	Slack float64 // Distance kept above the gate bottom, on top of the hitbox margin
}

// NewAutopilot creates an autopilot for the given configuration.
func NewAutopilot(cfg config.FlappyConfig) *Autopilot {
	return &Autopilot{cfg: cfg, Slack: 8}
}

// Decide reports whether to flap before the next tick.
func (a *Autopilot) Decide(s Snapshot, obstacles []ObstacleInfo) bool {
	if !s.Running() {
		return false
	}
	actor := a.cfg.Actor

	target := a.cfg.Arena.Height/2 + actor.Size
	left := actor.X + actor.HitboxInset
	for _, o := range obstacles {
		if o.X+a.cfg.Obstacles.PipeWidth >= left {
			target = o.GateBottom
			break
		}
	}

	gravity := a.cfg.Profile(s.Level).Gravity
	nextBottom := s.ActorY + actor.Size + s.ActorVelocity + gravity
	return nextBottom > target-actor.CollisionMargin-a.Slack
}
