// Package window hosts the flappy simulation in a desktop window or a
// browser canvas. The ebiten game loop is only compiled with the ebiten
// build tag; the Scene it draws is plain state and builds everywhere.
package window

import (
	"github.com/vovakirdan/flappy-tui/internal/config"
	"github.com/vovakirdan/flappy-tui/internal/games/flappy"
)

// Screen identifies the overlay drawn on top of the arena.
type Screen int

const (
	ScreenNone Screen = iota
	ScreenStart
	ScreenGameOver
)

// Pipe is the drawable state of one obstacle, in arena pixels.
type Pipe struct {
	ID           int
	X            float64
	TopHeight    float64
	BottomHeight float64
	Width        float64
}

// Scene is a flappy.RenderSurface that records what to draw each frame.
type Scene struct {
	ActorY   float64
	Rotation float64
	Pipes    []Pipe // Creation order
	Screen   Screen

	Score int
	Level int
	Label string

	// Result shown on the game over screen
	FinalScore int
	FinalLevel int
	FinalLabel string

	FlashLevel  int
	FlashFrames int
}

var _ flappy.RenderSurface = (*Scene)(nil)

// levelFlashFrames is how many frames the level-up banner stays visible.
const levelFlashFrames = 90

// NewScene creates a scene with the actor at its start height.
func NewScene(cfg config.FlappyConfig) *Scene {
	return &Scene{ActorY: cfg.Actor.StartY, Level: 1}
}

func (s *Scene) SetActorTransform(y, rotation float64) {
	s.ActorY, s.Rotation = y, rotation
}

func (s *Scene) CreateObstacleVisual(id int, x, topHeight, bottomHeight, width float64) {
	s.Pipes = append(s.Pipes, Pipe{ID: id, X: x, TopHeight: topHeight, BottomHeight: bottomHeight, Width: width})
}

func (s *Scene) UpdateObstacleVisual(id int, x float64) {
	for i := range s.Pipes {
		if s.Pipes[i].ID == id {
			s.Pipes[i].X = x
			return
		}
	}
}

func (s *Scene) DestroyObstacleVisual(id int) {
	kept := s.Pipes[:0]
	for _, p := range s.Pipes {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	s.Pipes = kept
}

func (s *Scene) ShowStartScreen() { s.Screen = ScreenStart }

func (s *Scene) HideScreens() { s.Screen = ScreenNone }

func (s *Scene) ShowGameOver(score, level int, label string) {
	s.Screen = ScreenGameOver
	s.FinalScore, s.FinalLevel, s.FinalLabel = score, level, label
}

func (s *Scene) UpdateHUD(score, level int, label string) {
	s.Score, s.Level, s.Label = score, level, label
}

func (s *Scene) FlashLevelUp(level int) {
	s.FlashLevel = level
	s.FlashFrames = levelFlashFrames
}

// TakeFlash reports whether the level-up banner is visible this frame and
// counts the frame down.
func (s *Scene) TakeFlash() bool {
	if s.FlashFrames <= 0 {
		return false
	}
	s.FlashFrames--
	return true
}
