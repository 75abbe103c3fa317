package flappy

import "github.com/vovakirdan/flappy-tui/internal/core"

// Obstacle is a pipe pair with a passable gate between GateTop and GateBottom.
type Obstacle struct {
	ID         int
	X          float64 // Left edge
	GateTop    float64
	GateBottom float64
	scored     bool
}

// ObstacleInfo is a read-only view of an obstacle for hosts and debugging.
type ObstacleInfo struct {
	ID         int
	X          float64
	GateTop    float64
	GateBottom float64
	Scored     bool
}

func newObstacle(id int, x, gateTop, gap float64) *Obstacle {
	return &Obstacle{
		ID:         id,
		X:          x,
		GateTop:    gateTop,
		GateBottom: gateTop + gap,
	}
}

// Advance moves the obstacle left by speed.
func (o *Obstacle) Advance(speed float64) {
	o.X -= speed
}

// IsOffScreen reports whether the trailing edge has left the arena.
func (o *Obstacle) IsOffScreen(pipeWidth float64) bool {
	return o.X+pipeWidth < 0
}

// HasBeenPassed reports whether the trailing edge is left of actorX and the
// obstacle has not been scored yet.
func (o *Obstacle) HasBeenPassed(actorX, pipeWidth float64) bool {
	return !o.scored && o.X+pipeWidth < actorX
}

// MarkScored records the pass. Repeated calls have no effect.
func (o *Obstacle) MarkScored() {
	o.scored = true
}

// Scored reports whether the pass has been recorded.
func (o *Obstacle) Scored() bool {
	return o.scored
}

// Intersects reports whether the hitbox overlaps the pipe horizontally and
// pokes out of the gate vertically.
func (o *Obstacle) Intersects(b core.Bounds, pipeWidth float64) bool {
	if !b.OverlapsX(o.X, o.X+pipeWidth) {
		return false
	}
	return b.Top < o.GateTop || b.Bottom > o.GateBottom
}

// Info returns a snapshot of the obstacle.
func (o *Obstacle) Info() ObstacleInfo {
	return ObstacleInfo{
		ID:         o.ID,
		X:          o.X,
		GateTop:    o.GateTop,
		GateBottom: o.GateBottom,
		Scored:     o.scored,
	}
}
