package flappy

import (
	"testing"

	"github.com/vovakirdan/flappy-tui/internal/config"
	"github.com/vovakirdan/flappy-tui/internal/core"
)

func newTestActor() *Actor {
	return NewActor(config.DefaultFlappyConfig().Actor)
}

func TestActorReset(t *testing.T) {
	a := newTestActor()
	a.Y, a.Velocity = 12, 7
	a.Reset()
	if a.Y != 250 || a.Velocity != 0 {
		t.Errorf("after Reset y=%v v=%v, want 250 and 0", a.Y, a.Velocity)
	}
}

func TestActorApplyTick(t *testing.T) {
	a := newTestActor()

	a.ApplyTick(0.5)
	if a.Velocity != 0.5 || a.Y != 250.5 {
		t.Fatalf("tick 1: y=%v v=%v, want 250.5 and 0.5", a.Y, a.Velocity)
	}

	// Velocity is updated before position
	a.ApplyTick(0.5)
	if a.Velocity != 1 || a.Y != 251.5 {
		t.Errorf("tick 2: y=%v v=%v, want 251.5 and 1", a.Y, a.Velocity)
	}
}

func TestActorTriggerImpulseOverridesVelocity(t *testing.T) {
	a := newTestActor()
	a.Velocity = 9
	a.TriggerImpulse(-8)
	if a.Velocity != -8 {
		t.Errorf("velocity = %v, want -8", a.Velocity)
	}
}

func TestActorIsOutOfBounds(t *testing.T) {
	tests := []struct {
		y    float64
		want bool
	}{
		{-1, true},
		{-0.01, true},
		{0, false},
		{300, false},
		{570, false},
		{570.5, true},
	}

	a := newTestActor()
	for _, tt := range tests {
		a.Y = tt.y
		if got := a.IsOutOfBounds(600); got != tt.want {
			t.Errorf("IsOutOfBounds(y=%v) = %v, want %v", tt.y, got, tt.want)
		}
	}
}

func TestActorCollisionRect(t *testing.T) {
	a := newTestActor()
	a.Y = 100

	want := core.Bounds{Left: 55, Right: 75, Top: 103, Bottom: 127}
	if got := a.CollisionRect(3); got != want {
		t.Errorf("CollisionRect = %+v, want %+v", got, want)
	}
}

func TestActorRotation(t *testing.T) {
	tilt := config.DefaultFlappyConfig().Actor.Tilt

	tests := []struct {
		velocity float64
		want     float64
	}{
		{0, 0},
		{2, 6},
		{-8, -24},
		{-20, -30},
		{15, 45},
		{30, 60},
	}

	a := newTestActor()
	for _, tt := range tests {
		a.Velocity = tt.velocity
		if got := a.Rotation(tilt); got != tt.want {
			t.Errorf("Rotation(v=%v) = %v, want %v", tt.velocity, got, tt.want)
		}
	}
}
