package tui

import (
	"fmt"
	"math"

	"github.com/vovakirdan/flappy-tui/internal/config"
	"github.com/vovakirdan/flappy-tui/internal/core"
	"github.com/vovakirdan/flappy-tui/internal/games/flappy"
)

// Visual characters for rendering
const (
	ActorBody     = '█'
	PipeChar      = '█'
	PipeCapTop    = '▀'
	PipeCapBottom = '▄'
	GroundChar    = '═'
)

// levelFlashFrames is how many frames the level-up banner stays visible.
const levelFlashFrames = 90

type overlay int

const (
	overlayNone overlay = iota
	overlayStart
	overlayGameOver
)

type pipeVisual struct {
	x, top, bottom, width float64
}

type finalScore struct {
	score, level int
	label        string
}

// Surface is a flappy.RenderSurface that keeps the latest visual state and
// draws it into a terminal cell buffer scaled from arena pixels.
type Surface struct {
	arena     config.ArenaConfig
	actorX    float64
	actorSize float64

	actorY   float64
	rotation float64
	pipes    map[int]pipeVisual
	order    []int // Creation order, oldest first

	overlay overlay
	final   finalScore

	score int
	level int
	label string

	flashLevel  int
	flashFrames int
}

var _ flappy.RenderSurface = (*Surface)(nil)

// NewSurface creates a surface for the given configuration.
func NewSurface(cfg config.FlappyConfig) *Surface {
	return &Surface{
		arena:     cfg.Arena,
		actorX:    cfg.Actor.X,
		actorSize: cfg.Actor.Size,
		actorY:    cfg.Actor.StartY,
		pipes:     make(map[int]pipeVisual),
		level:     1,
	}
}

// SetActorTransform implements flappy.RenderSurface.
func (s *Surface) SetActorTransform(y, rotation float64) {
	s.actorY = y
	s.rotation = rotation
}

// CreateObstacleVisual implements flappy.RenderSurface.
func (s *Surface) CreateObstacleVisual(id int, x, topHeight, bottomHeight, width float64) {
	if _, ok := s.pipes[id]; !ok {
		s.order = append(s.order, id)
	}
	s.pipes[id] = pipeVisual{x: x, top: topHeight, bottom: bottomHeight, width: width}
}

// UpdateObstacleVisual implements flappy.RenderSurface.
func (s *Surface) UpdateObstacleVisual(id int, x float64) {
	if p, ok := s.pipes[id]; ok {
		p.x = x
		s.pipes[id] = p
	}
}

// DestroyObstacleVisual implements flappy.RenderSurface.
func (s *Surface) DestroyObstacleVisual(id int) {
	if _, ok := s.pipes[id]; !ok {
		return
	}
	delete(s.pipes, id)
	kept := s.order[:0]
	for _, other := range s.order {
		if other != id {
			kept = append(kept, other)
		}
	}
	s.order = kept
}

// ShowStartScreen implements flappy.RenderSurface.
func (s *Surface) ShowStartScreen() { s.overlay = overlayStart }

// HideScreens implements flappy.RenderSurface.
func (s *Surface) HideScreens() { s.overlay = overlayNone }

// ShowGameOver implements flappy.RenderSurface.
func (s *Surface) ShowGameOver(score, level int, label string) {
	s.overlay = overlayGameOver
	s.final = finalScore{score: score, level: level, label: label}
}

// UpdateHUD implements flappy.RenderSurface.
func (s *Surface) UpdateHUD(score, level int, label string) {
	s.score, s.level, s.label = score, level, label
}

// FlashLevelUp implements flappy.RenderSurface.
func (s *Surface) FlashLevelUp(level int) {
	s.flashLevel = level
	s.flashFrames = levelFlashFrames
}

// Draw renders the current state into scr. Row 0 holds the HUD and the
// last row the ground; the arena is scaled into the rows between.
func (s *Surface) Draw(scr *core.Screen) {
	scr.Clear()
	w, h := scr.Width(), scr.Height()
	if w < 20 || h < 8 {
		scr.DrawTextColored(0, 0, "terminal too small", core.ColorRed)
		return
	}

	rows := h - 2
	sx := float64(w) / s.arena.Width
	sy := float64(rows) / s.arena.Height
	toRow := func(y float64) int { return 1 + int(y*sy) }

	for _, id := range s.order {
		p := s.pipes[id]
		col := int(math.Floor(p.x * sx))
		cw := core.Max(1, int(math.Round(p.width*sx)))

		topRows := int(math.Round(p.top * sy))
		if topRows > 0 {
			scr.DrawRect(core.NewRect(col, 1, cw, topRows), PipeChar, core.ColorGreen)
			scr.DrawHLine(col, topRows, cw, PipeCapTop, core.ColorBrightGreen)
		}

		start := toRow(s.arena.Height - p.bottom)
		if start <= rows {
			scr.DrawRect(core.NewRect(col, start, cw, rows+1-start), PipeChar, core.ColorGreen)
			scr.DrawHLine(col, start, cw, PipeCapBottom, core.ColorBrightGreen)
		}
	}

	scr.DrawHLine(0, h-1, w, GroundChar, core.ColorOrange)
	s.drawActor(scr, sx, sy, toRow)

	hud := fmt.Sprintf(" Score: %d  Level: %d  %s", s.score, s.level, s.label)
	scr.DrawTextColored(0, 0, hud, core.ColorWhite)

	if s.flashFrames > 0 {
		s.flashFrames--
		scr.DrawTextCentered(h/3, fmt.Sprintf(" LEVEL %d! ", s.flashLevel), core.ColorBrightYellow)
	}

	switch s.overlay {
	case overlayStart:
		drawPanel(scr, core.ColorCyan,
			"F L A P P Y",
			"",
			"enter  start",
			"space  flap",
		)
	case overlayGameOver:
		drawPanel(scr, core.ColorBrightRed,
			"GAME OVER",
			"",
			fmt.Sprintf("Score: %d", s.final.score),
			fmt.Sprintf("Level: %d (%s)", s.final.level, s.final.label),
			"",
			"enter  play again",
		)
	}
}

func (s *Surface) drawActor(scr *core.Screen, sx, sy float64, toRow func(float64) int) {
	col := int(s.actorX * sx)
	row := toRow(s.actorY)
	aw := core.Max(1, int(math.Round(s.actorSize*sx)))
	ah := core.Max(1, int(math.Round(s.actorSize*sy)))

	scr.DrawRect(core.NewRect(col, row, aw, ah), ActorBody, core.ColorYellow)
	scr.SetColored(col+aw-1, row, actorHead(s.rotation), core.ColorBrightYellow)
}

// actorHead picks a glyph for the actor's nose from its rotation.
func actorHead(rotation float64) rune {
	switch {
	case rotation >= 90:
		return 'x'
	case rotation > 20:
		return '↘'
	case rotation < -10:
		return '↗'
	default:
		return '▶'
	}
}

// drawPanel draws a boxed block of centered lines in the middle of scr.
func drawPanel(scr *core.Screen, c core.Color, lines ...string) {
	width := 0
	for _, l := range lines {
		width = core.Max(width, len([]rune(l)))
	}
	width += 4
	height := len(lines) + 2

	x := (scr.Width() - width) / 2
	y := (scr.Height() - height) / 2
	box := core.NewRect(x, y, width, height)

	scr.DrawRect(box, ' ', core.ColorDefault)
	scr.DrawBox(box, c)
	for i, l := range lines {
		scr.DrawTextCentered(y+1+i, l, c)
	}
}
