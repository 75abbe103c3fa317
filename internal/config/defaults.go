package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the hard-coded default configuration.
// It mirrors defaults/flappy.yaml and is used when the embedded YAML
// cannot be parsed.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Arena: ArenaConfig{
			Width:  400,
			Height: 600,
		},
		Actor: ActorConfig{
			X:               50,
			Size:            30,
			StartY:          250,
			JumpForce:       -8,
			CollisionMargin: 3,
			HitboxInset:     5,
			Tilt: TiltConfig{
				Multiplier: 3,
				MaxUp:      -30,
				MaxDown:    60,
				Flap:       -20,
				FlapReset:  100 * time.Millisecond,
				Death:      90,
			},
		},
		Obstacles: ObstacleConfig{
			PipeWidth:   60,
			SpawnMargin: 100,
		},
		Timing: TimingConfig{
			TickInterval:    16 * time.Millisecond,
			FirstSpawnDelay: time.Second,
		},
		Scoring: ScoringConfig{
			PointsPerLevel: 5,
		},
		Levels: []DifficultyProfile{
			{Name: "Iniciante", Gap: 250, Speed: 1.5, SpawnInterval: 2000 * time.Millisecond, Gravity: 0.35},
			{Name: "Fácil", Gap: 230, Speed: 2, SpawnInterval: 1800 * time.Millisecond, Gravity: 0.4},
			{Name: "Normal", Gap: 210, Speed: 2.5, SpawnInterval: 1600 * time.Millisecond, Gravity: 0.45},
			{Name: "Intermediário", Gap: 190, Speed: 3, SpawnInterval: 1400 * time.Millisecond, Gravity: 0.5},
			{Name: "Difícil", Gap: 170, Speed: 3.5, SpawnInterval: 1200 * time.Millisecond, Gravity: 0.55},
			{Name: "Expert", Gap: 150, Speed: 4, SpawnInterval: 1000 * time.Millisecond, Gravity: 0.6},
			{Name: "Mestre", Gap: 140, Speed: 4.5, SpawnInterval: 900 * time.Millisecond, Gravity: 0.65},
			{Name: "Lenda", Gap: 130, Speed: 5, SpawnInterval: 800 * time.Millisecond, Gravity: 0.7},
			{Name: "Impossível", Gap: 120, Speed: 5.5, SpawnInterval: 700 * time.Millisecond, Gravity: 0.75},
			{Name: "INSANO!", Gap: 110, Speed: 6, SpawnInterval: 600 * time.Millisecond, Gravity: 0.8},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
