package config

import "time"

// DifficultyProfile is the immutable tuning of one level.
type DifficultyProfile struct {
	Name          string        `yaml:"name"`
	Gap           float64       `yaml:"gap"`            // Height of the passable gate
	Speed         float64       `yaml:"speed"`          // Obstacle movement per tick
	SpawnInterval time.Duration `yaml:"spawn_interval"` // Periodic spawn cadence
	Gravity       float64       `yaml:"gravity"`        // Velocity added per tick
}

// MaxLevel returns the highest reachable level.
func (c FlappyConfig) MaxLevel() int {
	return len(c.Levels)
}

// LevelForScore returns min(MaxLevel, score/PointsPerLevel + 1).
func (c FlappyConfig) LevelForScore(score int) int {
	per := c.Scoring.PointsPerLevel
	if per <= 0 {
		per = 1
	}
	level := score/per + 1
	if level > c.MaxLevel() {
		level = c.MaxLevel()
	}
	return level
}

// Profile returns the difficulty profile for a 1-based level.
// Out-of-range levels are clamped to the table.
func (c FlappyConfig) Profile(level int) DifficultyProfile {
	if len(c.Levels) == 0 {
		return DifficultyProfile{}
	}
	if level < 1 {
		level = 1
	}
	if level > len(c.Levels) {
		level = len(c.Levels)
	}
	return c.Levels[level-1]
}
