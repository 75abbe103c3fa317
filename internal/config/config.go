// Package config provides YAML-based game configuration loading and the
// per-level difficulty table.
package config

import "time"

// FlappyConfig contains all tunables of the simulation. Distances are in
// arena pixels, velocities in pixels per tick.
type FlappyConfig struct {
	Arena     ArenaConfig         `yaml:"arena"`
	Actor     ActorConfig         `yaml:"actor"`
	Obstacles ObstacleConfig      `yaml:"obstacles"`
	Timing    TimingConfig        `yaml:"timing"`
	Scoring   ScoringConfig       `yaml:"scoring"`
	Levels    []DifficultyProfile `yaml:"levels"`
}

// ArenaConfig defines the play area.
type ArenaConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ActorConfig defines the falling entity.
type ActorConfig struct {
	X               float64    `yaml:"x"`                // Fixed horizontal position (left edge)
	Size            float64    `yaml:"size"`             // Sprite box side
	StartY          float64    `yaml:"start_y"`          // Height on reset
	JumpForce       float64    `yaml:"jump_force"`       // Velocity set on flap (negative = up)
	CollisionMargin float64    `yaml:"collision_margin"` // Vertical hitbox shrink
	HitboxInset     float64    `yaml:"hitbox_inset"`     // Horizontal hitbox shrink
	Tilt            TiltConfig `yaml:"tilt"`
}

// TiltConfig defines the rotation cues pushed to the render surface, in degrees.
type TiltConfig struct {
	Multiplier float64       `yaml:"multiplier"` // Rotation per unit of velocity
	MaxUp      float64       `yaml:"max_up"`
	MaxDown    float64       `yaml:"max_down"`
	Flap       float64       `yaml:"flap"`
	FlapReset  time.Duration `yaml:"flap_reset"` // Delay before the flap tilt is cleared
	Death      float64       `yaml:"death"`
}

// ObstacleConfig defines obstacle geometry.
type ObstacleConfig struct {
	PipeWidth   float64 `yaml:"pipe_width"`
	SpawnMargin float64 `yaml:"spawn_margin"` // Minimum distance of a gate from the top and bottom
}

// TimingConfig defines scheduler cadences.
type TimingConfig struct {
	TickInterval    time.Duration `yaml:"tick_interval"`
	FirstSpawnDelay time.Duration `yaml:"first_spawn_delay"`
}

// ScoringConfig defines level progression.
type ScoringConfig struct {
	PointsPerLevel int `yaml:"points_per_level"`
}
