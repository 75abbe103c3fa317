// Package flappy implements a Flappy Bird-style simulation.
// An actor falls under gravity and must pass through the gates of pipes
// scrolling in from the right. All timing goes through a sched.Scheduler,
// and all presentation through a RenderSurface supplied by the host.
package flappy

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-tui/internal/config"
	"github.com/vovakirdan/flappy-tui/internal/sched"
)

// Collaborator errors returned by New.
var (
	ErrNoSurface   = errors.New("no render surface")
	ErrNoInput     = errors.New("no input source")
	ErrNoScheduler = errors.New("no scheduler")
)

// Phase is the run state of a Controller.
type Phase int

const (
	PhaseIdle    Phase = iota // Start screen, nothing scheduled
	PhaseRunning              // Ticking and spawning
	PhasePaused               // Frozen, resumable
	PhaseOver                 // Terminal condition reached
	PhaseStopped              // Stopped by the host
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseOver:
		return "over"
	case PhaseStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Host bundles the collaborators a Controller needs.
type Host struct {
	Surface RenderSurface
	Input   InputSource
	Clock   sched.Scheduler
	Logger  *log.Logger // Optional; nil discards logs
	Seed    int64       // Gate placement seed
}

// Snapshot is a read-only view of the run state.
type Snapshot struct {
	Phase         Phase
	Score         int
	Level         int
	Difficulty    string
	Obstacles     int
	ActorY        float64
	ActorVelocity float64
	Ticks         uint64
}

// Running reports whether the run is in progress.
func (s Snapshot) Running() bool { return s.Phase == PhaseRunning }

// Controller drives one run: it owns the actor, the obstacle field, score
// and level, and the tick schedule.
type Controller struct {
	cfg     config.FlappyConfig
	surface RenderSurface
	clock   sched.Scheduler
	logger  *log.Logger

	actor *Actor
	field *Field

	phase      Phase
	score      int
	level      int
	difficulty config.DifficultyProfile
	ticks      uint64

	tickTimer  sched.Timer
	tiltTimer  sched.Timer
	unregister func()
	disposed   bool
}

// New validates the configuration and collaborators, registers the input
// handler and shows the start screen. Nothing is scheduled until Start.
func New(cfg config.FlappyConfig, host Host) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("flappy: %w", err)
	}
	if host.Surface == nil {
		return nil, fmt.Errorf("flappy: new controller: %w", ErrNoSurface)
	}
	if host.Input == nil {
		return nil, fmt.Errorf("flappy: new controller: %w", ErrNoInput)
	}
	if host.Clock == nil {
		return nil, fmt.Errorf("flappy: new controller: %w", ErrNoScheduler)
	}
	logger := host.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	c := &Controller{
		cfg:        cfg,
		surface:    host.Surface,
		clock:      host.Clock,
		logger:     logger,
		actor:      NewActor(cfg.Actor),
		field:      NewField(cfg, host.Clock, host.Surface, logger, host.Seed),
		phase:      PhaseIdle,
		level:      1,
		difficulty: cfg.Profile(1),
	}
	c.unregister = host.Input.OnActivate(c.HandleInput)

	c.surface.SetActorTransform(c.actor.Y, 0)
	c.surface.ShowStartScreen()
	return c, nil
}

// Start begins a fresh run. Any previous schedule is cancelled first, so at
// most one tick schedule exists afterwards.
func (c *Controller) Start() {
	if c.disposed {
		return
	}
	c.cancelSchedules()
	c.surface.HideScreens()

	c.score = 0
	c.level = 1
	c.difficulty = c.cfg.Profile(1)
	c.ticks = 0

	c.actor.Reset()
	c.surface.SetActorTransform(c.actor.Y, 0)
	c.field.Clear()

	c.phase = PhaseRunning
	c.resume()
	c.pushHUD()

	c.logger.Info("run started", "level", c.level, "difficulty", c.difficulty.Name)
}

// Restart clears the field and starts a new run.
func (c *Controller) Restart() {
	c.field.Clear()
	c.Start()
}

// Stop cancels every pending callback. A running or paused run moves to
// PhaseStopped; other phases are kept. Repeated calls are no-ops.
func (c *Controller) Stop() {
	c.cancelSchedules()
	if c.phase == PhaseRunning || c.phase == PhasePaused {
		c.phase = PhaseStopped
		c.logger.Debug("run stopped", "score", c.score)
	}
}

// Dispose stops the controller, clears the field and unregisters the input
// handler. The controller cannot be started again.
func (c *Controller) Dispose() {
	c.Stop()
	c.field.Clear()
	if c.unregister != nil {
		c.unregister()
		c.unregister = nil
	}
	c.disposed = true
}

// HandleInput applies a flap while running. Input in any other phase is
// ignored.
func (c *Controller) HandleInput() {
	if c.phase != PhaseRunning {
		return
	}
	c.actor.TriggerImpulse(c.cfg.Actor.JumpForce)
	c.surface.SetActorTransform(c.actor.Y, c.cfg.Actor.Tilt.Flap)

	sched.StopTimer(c.tiltTimer)
	c.tiltTimer = c.clock.After(c.cfg.Actor.Tilt.FlapReset, func() {
		c.tiltTimer = nil
		if c.phase == PhaseRunning {
			c.surface.SetActorTransform(c.actor.Y, 0)
		}
	})
}

// TogglePause freezes a running run or resumes a paused one.
// Other phases are left untouched.
func (c *Controller) TogglePause() {
	switch c.phase {
	case PhaseRunning:
		c.cancelSchedules()
		c.phase = PhasePaused
		c.logger.Debug("paused", "score", c.score)
	case PhasePaused:
		c.phase = PhaseRunning
		c.resume()
		c.logger.Debug("resumed", "score", c.score)
	}
}

// Snapshot returns the current run state.
func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		Phase:         c.phase,
		Score:         c.score,
		Level:         c.level,
		Difficulty:    c.difficulty.Name,
		Obstacles:     c.field.Len(),
		ActorY:        c.actor.Y,
		ActorVelocity: c.actor.Velocity,
		Ticks:         c.ticks,
	}
}

// Obstacles returns the active obstacles, oldest first.
func (c *Controller) Obstacles() []ObstacleInfo {
	return c.field.Obstacles()
}

// Config returns the configuration the controller was built with.
func (c *Controller) Config() config.FlappyConfig {
	return c.cfg
}

// tick advances the simulation by one step.
func (c *Controller) tick() {
	if c.phase != PhaseRunning {
		return
	}
	c.ticks++

	c.actor.ApplyTick(c.difficulty.Gravity)
	c.surface.SetActorTransform(c.actor.Y, c.actor.Rotation(c.cfg.Actor.Tilt))

	if c.actor.IsOutOfBounds(c.cfg.Arena.Height) {
		c.gameOver("out of bounds")
		return
	}

	for range c.field.Tick(c.difficulty) {
		c.addPoint()
	}

	if c.field.CheckCollision(c.actor.CollisionRect(c.cfg.Actor.CollisionMargin)) {
		c.gameOver("collision")
	}
}

// addPoint scores one point and re-evaluates the level.
func (c *Controller) addPoint() {
	c.score++
	if level := c.cfg.LevelForScore(c.score); level != c.level {
		c.applyLevel(level)
	}
	c.pushHUD()
}

// applyLevel switches difficulty. While running, spawning restarts at the
// new cadence; obstacles in flight keep their gates.
func (c *Controller) applyLevel(level int) {
	c.level = level
	c.difficulty = c.cfg.Profile(level)
	if c.phase == PhaseRunning {
		c.field.Restart(c.difficulty)
	}
	c.surface.FlashLevelUp(level)
	c.logger.Debug("level changed", "level", level, "difficulty", c.difficulty.Name)
}

func (c *Controller) gameOver(reason string) {
	c.phase = PhaseOver
	c.cancelSchedules()

	c.surface.SetActorTransform(c.actor.Y, c.cfg.Actor.Tilt.Death)
	c.surface.ShowGameOver(c.score, c.level, c.difficulty.Name)

	c.logger.Info("run over",
		"reason", reason,
		"score", c.score,
		"level", c.level,
		"difficulty", c.difficulty.Name,
		"ticks", c.ticks,
	)
}

// resume schedules the tick and starts spawning at the current difficulty.
func (c *Controller) resume() {
	c.tickTimer = c.clock.Every(c.cfg.Timing.TickInterval, c.tick)
	c.field.Start(c.difficulty)
}

func (c *Controller) cancelSchedules() {
	sched.StopTimer(c.tickTimer)
	sched.StopTimer(c.tiltTimer)
	c.tickTimer = nil
	c.tiltTimer = nil
	c.field.Stop()
}

func (c *Controller) pushHUD() {
	c.surface.UpdateHUD(c.score, c.level, c.difficulty.Name)
}
