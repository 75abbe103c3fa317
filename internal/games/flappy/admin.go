package flappy

import (
	"errors"
	"fmt"
)

// ErrInvalidState is wrapped by admin calls that would break the
// score/level relation.
var ErrInvalidState = errors.New("invalid state")

// ForceState sets score and level directly. The level must be the one the
// score maps to; difficulty follows the level.
func (c *Controller) ForceState(score, level int) error {
	if score < 0 {
		return fmt.Errorf("flappy: force state: score %d: %w", score, ErrInvalidState)
	}
	if level < 1 || level > c.cfg.MaxLevel() {
		return fmt.Errorf("flappy: force state: level %d out of [1, %d]: %w", level, c.cfg.MaxLevel(), ErrInvalidState)
	}
	if want := c.cfg.LevelForScore(score); level != want {
		return fmt.Errorf("flappy: force state: score %d maps to level %d, not %d: %w", score, want, level, ErrInvalidState)
	}

	c.score = score
	if level != c.level {
		c.applyLevel(level)
	}
	c.pushHUD()
	c.logger.Warn("state forced", "score", score, "level", level)
	return nil
}

// SetLevel jumps to a level with the lowest score that reaches it.
func (c *Controller) SetLevel(level int) error {
	return c.ForceState((level-1)*c.cfg.Scoring.PointsPerLevel, level)
}

// AddScore scores points one at a time through the normal scoring path.
func (c *Controller) AddScore(points int) error {
	if points < 0 {
		return fmt.Errorf("flappy: add score: %d points: %w", points, ErrInvalidState)
	}
	for i := 0; i < points; i++ {
		c.addPoint()
	}
	return nil
}

// ForceGameOver ends a running or paused run.
func (c *Controller) ForceGameOver() {
	if c.phase != PhaseRunning && c.phase != PhasePaused {
		return
	}
	c.gameOver("forced")
}
