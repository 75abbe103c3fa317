package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadFlappy loads the simulation configuration.
// Search order: customPath -> ~/.flappy/configs/flappy.yaml -> ./configs/flappy.yaml -> embedded default
//
// A custom path must exist, parse strictly and validate; the other locations
// are skipped silently when unreadable or invalid.
func LoadFlappy(customPath string) (FlappyConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return FlappyConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return FlappyConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("flappy.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "flappy.yaml")); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultFlappyYAML)
	if err != nil {
		return DefaultFlappyConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the hard-coded defaults and validates the
// result. Unknown keys are rejected. A levels list in the document replaces
// the default table as a whole.
func Parse(data []byte) (FlappyConfig, error) {
	cfg := DefaultFlappyConfig()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return FlappyConfig{}, err
	}

	if err := cfg.Validate(); err != nil {
		return FlappyConfig{}, err
	}
	return cfg, nil
}

// Validate checks that the configuration describes a playable arena.
func (c FlappyConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Arena.Width > 0, "arena.width must be positive, got %v", c.Arena.Width)
	check(c.Arena.Height > 0, "arena.height must be positive, got %v", c.Arena.Height)

	check(c.Actor.Size > 0, "actor.size must be positive, got %v", c.Actor.Size)
	check(c.Actor.Size < c.Arena.Height, "actor.size %v must be smaller than arena.height %v", c.Actor.Size, c.Arena.Height)
	check(c.Actor.StartY >= 0 && c.Actor.StartY <= c.Arena.Height-c.Actor.Size,
		"actor.start_y %v must lie within [0, %v]", c.Actor.StartY, c.Arena.Height-c.Actor.Size)
	check(2*c.Actor.CollisionMargin < c.Actor.Size, "actor.collision_margin %v too large for size %v", c.Actor.CollisionMargin, c.Actor.Size)
	check(2*c.Actor.HitboxInset < c.Actor.Size, "actor.hitbox_inset %v too large for size %v", c.Actor.HitboxInset, c.Actor.Size)
	check(c.Actor.JumpForce < 0, "actor.jump_force must be negative (upward), got %v", c.Actor.JumpForce)
	check(c.Actor.Tilt.FlapReset >= 0, "actor.tilt.flap_reset must not be negative")

	check(c.Obstacles.PipeWidth > 0, "obstacles.pipe_width must be positive, got %v", c.Obstacles.PipeWidth)
	check(c.Obstacles.SpawnMargin >= 0, "obstacles.spawn_margin must not be negative, got %v", c.Obstacles.SpawnMargin)

	check(c.Timing.TickInterval > 0, "timing.tick_interval must be positive, got %v", c.Timing.TickInterval)
	check(c.Timing.FirstSpawnDelay >= 0, "timing.first_spawn_delay must not be negative, got %v", c.Timing.FirstSpawnDelay)

	check(c.Scoring.PointsPerLevel > 0, "scoring.points_per_level must be positive, got %d", c.Scoring.PointsPerLevel)

	check(len(c.Levels) > 0, "levels must contain at least one profile")
	room := c.Arena.Height - 2*c.Obstacles.SpawnMargin
	for i, l := range c.Levels {
		n := i + 1
		check(l.Name != "", "levels[%d].name must not be empty", n)
		check(l.Gap > 0 && l.Gap < room, "levels[%d].gap %v must lie within (0, %v)", n, l.Gap, room)
		check(l.Speed > 0, "levels[%d].speed must be positive, got %v", n, l.Speed)
		check(l.SpawnInterval > 0, "levels[%d].spawn_interval must be positive, got %v", n, l.SpawnInterval)
		check(l.Gravity >= 0, "levels[%d].gravity must not be negative, got %v", n, l.Gravity)
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".flappy", "configs", filename)
}
