package flappy

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-tui/internal/config"
	"github.com/vovakirdan/flappy-tui/internal/core"
	"github.com/vovakirdan/flappy-tui/internal/sched"
)

// ScoreEvent is emitted by Field.Tick when the actor passes an obstacle.
type ScoreEvent struct {
	ObstacleID int
}

// Field owns the active obstacles and the spawn schedule.
type Field struct {
	obstacles []*Obstacle
	nextID    int
	rng       *rand.Rand

	arena   config.ArenaConfig
	pipes   config.ObstacleConfig
	timing  config.TimingConfig
	actorX  float64
	clock   sched.Scheduler
	visuals ObstacleVisuals
	logger  *log.Logger

	spawnTimer sched.Timer // Periodic spawn
	firstSpawn sched.Timer // Pending one-shot spawn after Start
}

// NewField creates an empty field. The seed drives gate placement.
func NewField(cfg config.FlappyConfig, clock sched.Scheduler, visuals ObstacleVisuals, logger *log.Logger, seed int64) *Field {
	return &Field{
		obstacles: make([]*Obstacle, 0, 8),
		rng:       rand.New(rand.NewSource(seed)),
		arena:     cfg.Arena,
		pipes:     cfg.Obstacles,
		timing:    cfg.Timing,
		actorX:    cfg.Actor.X,
		clock:     clock,
		visuals:   visuals,
		logger:    logger,
	}
}

// Start cancels any active spawn schedule, then spawns every
// SpawnInterval and once more after the first-spawn delay.
// Existing obstacles are kept.
func (f *Field) Start(d config.DifficultyProfile) {
	f.Stop()
	f.spawnTimer = f.clock.Every(d.SpawnInterval, func() {
		f.SpawnOne(d)
	})
	f.firstSpawn = f.clock.After(f.timing.FirstSpawnDelay, func() {
		f.firstSpawn = nil
		f.SpawnOne(d)
	})
	f.logger.Debug("spawner started", "level", d.Name, "interval", d.SpawnInterval)
}

// Restart re-arms the spawn schedule with a new difficulty.
func (f *Field) Restart(d config.DifficultyProfile) {
	f.Start(d)
}

// Stop cancels the periodic spawn and the pending first spawn.
// Calling it when nothing is scheduled is a no-op.
func (f *Field) Stop() {
	sched.StopTimer(f.spawnTimer)
	sched.StopTimer(f.firstSpawn)
	f.spawnTimer = nil
	f.firstSpawn = nil
}

// Spawning reports whether a spawn schedule is active.
func (f *Field) Spawning() bool {
	return f.spawnTimer != nil
}

// SpawnOne adds one obstacle at the right edge of the arena with a random
// gate, drawn uniformly so the gate keeps SpawnMargin from both edges.
func (f *Field) SpawnOne(d config.DifficultyProfile) {
	room := f.arena.Height - 2*f.pipes.SpawnMargin - d.Gap
	if room < 0 {
		room = 0
	}
	gateTop := f.pipes.SpawnMargin + f.rng.Float64()*room

	f.nextID++
	o := newObstacle(f.nextID, f.arena.Width, gateTop, d.Gap)
	f.obstacles = append(f.obstacles, o)

	f.visuals.CreateObstacleVisual(o.ID, o.X, o.GateTop, f.arena.Height-o.GateBottom, f.pipes.PipeWidth)
}

// Tick moves every obstacle by the difficulty speed, emits one event per
// newly passed obstacle and evicts obstacles that left the arena.
func (f *Field) Tick(d config.DifficultyProfile) []ScoreEvent {
	var events []ScoreEvent
	width := f.pipes.PipeWidth

	for _, o := range f.obstacles {
		o.Advance(d.Speed)
		f.visuals.UpdateObstacleVisual(o.ID, o.X)

		if o.HasBeenPassed(f.actorX, width) {
			o.MarkScored()
			events = append(events, ScoreEvent{ObstacleID: o.ID})
		}
	}

	kept := f.obstacles[:0]
	for _, o := range f.obstacles {
		if o.IsOffScreen(width) {
			f.visuals.DestroyObstacleVisual(o.ID)
			continue
		}
		kept = append(kept, o)
	}
	for i := len(kept); i < len(f.obstacles); i++ {
		f.obstacles[i] = nil
	}
	f.obstacles = kept

	return events
}

// CheckCollision reports whether the hitbox intersects any obstacle.
func (f *Field) CheckCollision(hitbox core.Bounds) bool {
	for _, o := range f.obstacles {
		if o.Intersects(hitbox, f.pipes.PipeWidth) {
			return true
		}
	}
	return false
}

// Clear destroys every obstacle visual and empties the field.
func (f *Field) Clear() {
	for i, o := range f.obstacles {
		f.visuals.DestroyObstacleVisual(o.ID)
		f.obstacles[i] = nil
	}
	f.obstacles = f.obstacles[:0]
}

// Len returns the number of active obstacles.
func (f *Field) Len() int {
	return len(f.obstacles)
}

// Obstacles returns a snapshot of the active obstacles, oldest first.
func (f *Field) Obstacles() []ObstacleInfo {
	out := make([]ObstacleInfo, len(f.obstacles))
	for i, o := range f.obstacles {
		out[i] = o.Info()
	}
	return out
}
