package flappy

import (
	"github.com/vovakirdan/flappy-tui/internal/config"
	"github.com/vovakirdan/flappy-tui/internal/core"
)

// Actor is the falling entity. It only moves vertically; obstacles scroll
// past its fixed horizontal position.
type Actor struct {
	Y        float64 // Distance of the sprite top from the arena top
	Velocity float64 // Positive = downward

	cfg config.ActorConfig
}

// NewActor creates an actor at its start height.
func NewActor(cfg config.ActorConfig) *Actor {
	a := &Actor{cfg: cfg}
	a.Reset()
	return a
}

// Reset puts the actor back at the start height with no velocity.
func (a *Actor) Reset() {
	a.Y = a.cfg.StartY
	a.Velocity = 0
}

// ApplyTick integrates one step: velocity first, then position.
// Bounds are not clamped here.
func (a *Actor) ApplyTick(gravity float64) {
	a.Velocity += gravity
	a.Y += a.Velocity
}

// TriggerImpulse overrides the accumulated velocity with jumpForce.
func (a *Actor) TriggerImpulse(jumpForce float64) {
	a.Velocity = jumpForce
}

// IsOutOfBounds reports whether the sprite left the arena vertically.
func (a *Actor) IsOutOfBounds(playHeight float64) bool {
	return a.Y < 0 || a.Y > playHeight-a.cfg.Size
}

// CollisionRect returns the hitbox, shrunk by margin vertically and by the
// configured inset horizontally so grazing a pipe does not count.
func (a *Actor) CollisionRect(margin float64) core.Bounds {
	return core.Bounds{
		Left:   a.cfg.X + a.cfg.HitboxInset,
		Right:  a.cfg.X + a.cfg.Size - a.cfg.HitboxInset,
		Top:    a.Y + margin,
		Bottom: a.Y + a.cfg.Size - margin,
	}
}

// Rotation returns the velocity-driven tilt in degrees.
func (a *Actor) Rotation(tilt config.TiltConfig) float64 {
	return core.ClampF(a.Velocity*tilt.Multiplier, tilt.MaxUp, tilt.MaxDown)
}
