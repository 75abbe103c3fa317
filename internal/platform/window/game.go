//go:build ebiten

package window

import (
	"fmt"
	"image/color"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/flappy-tui/internal/config"
	"github.com/vovakirdan/flappy-tui/internal/games/flappy"
	"github.com/vovakirdan/flappy-tui/internal/sched"
)

var (
	skyColor    = color.RGBA{112, 197, 206, 255}
	pipeColor   = color.RGBA{83, 160, 52, 255}
	capColor    = color.RGBA{115, 191, 46, 255}
	groundColor = color.RGBA{222, 216, 149, 255}
	actorColor  = color.RGBA{247, 206, 70, 255}
	beakColor   = color.RGBA{232, 97, 44, 255}
	panelColor  = color.RGBA{0, 0, 0, 160}
)

// groundHeight is drawn below the arena and does not collide.
const groundHeight = 20

// Game is an ebiten.Game driving one controller from the window's frames.
type Game struct {
	cfg    config.FlappyConfig
	ctrl   *flappy.Controller
	loop   *sched.Loop
	hub    *flappy.InputHub
	scene  *Scene
	logger *log.Logger

	touches []ebiten.TouchID
}

// New creates a game with its own loop and controller.
func New(cfg config.FlappyConfig, seed int64, logger *log.Logger) (*Game, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := &Game{
		cfg:    cfg,
		loop:   sched.NewLoop(),
		hub:    flappy.NewInputHub(),
		scene:  NewScene(cfg),
		logger: logger,
	}

	ctrl, err := flappy.New(cfg, flappy.Host{
		Surface: g.scene,
		Input:   g.hub,
		Clock:   g.loop,
		Logger:  logger,
		Seed:    seed,
	})
	if err != nil {
		return nil, fmt.Errorf("window: %w", err)
	}
	g.ctrl = ctrl
	return g, nil
}

// Size returns the window size in pixels.
func (g *Game) Size() (int, int) {
	return int(g.cfg.Arena.Width), int(g.cfg.Arena.Height) + groundHeight
}

// Update handles input and advances the simulation clock by one frame.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		g.ctrl.Dispose()
		return ebiten.Termination
	}

	g.touches = inpututil.AppendJustPressedTouchIDs(g.touches[:0])
	pressed := inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
		len(g.touches) > 0

	switch g.ctrl.Snapshot().Phase {
	case flappy.PhaseIdle, flappy.PhaseOver, flappy.PhaseStopped:
		// Browsers on touch devices have no Enter key, so a tap starts too
		if pressed || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			g.ctrl.Restart()
		}
	default:
		if pressed {
			g.hub.Activate()
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyP) {
			g.ctrl.TogglePause()
		}
	}

	g.loop.Advance(time.Second / time.Duration(ebiten.TPS()))
	return nil
}

// Draw renders the scene.
func (g *Game) Draw(screen *ebiten.Image) {
	w, h := g.Size()
	arenaH := float32(g.cfg.Arena.Height)
	screen.Fill(skyColor)

	for _, p := range g.scene.Pipes {
		x, pw := float32(p.X), float32(p.Width)
		top, bottom := float32(p.TopHeight), float32(p.BottomHeight)
		vector.DrawFilledRect(screen, x, 0, pw, top, pipeColor, false)
		vector.DrawFilledRect(screen, x-3, top-12, pw+6, 12, capColor, false)
		vector.DrawFilledRect(screen, x, arenaH-bottom, pw, bottom, pipeColor, false)
		vector.DrawFilledRect(screen, x-3, arenaH-bottom, pw+6, 12, capColor, false)
	}
	vector.DrawFilledRect(screen, 0, arenaH, float32(w), groundHeight, groundColor, false)

	g.drawActor(screen)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d  Level: %d  %s", g.scene.Score, g.scene.Level, g.scene.Label), 8, 6)
	if g.scene.TakeFlash() {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("LEVEL %d!", g.scene.FlashLevel), w/2-28, h/3)
	}

	switch {
	case g.scene.Screen == ScreenStart:
		g.drawPanel(screen, "F L A P P Y", "", "space / click / tap  flap", "enter or tap  start")
	case g.scene.Screen == ScreenGameOver:
		g.drawPanel(screen,
			"GAME OVER",
			"",
			fmt.Sprintf("Score: %d", g.scene.FinalScore),
			fmt.Sprintf("Level: %d (%s)", g.scene.FinalLevel, g.scene.FinalLabel),
			"",
			"tap or enter to play again",
		)
	case g.ctrl.Snapshot().Phase == flappy.PhasePaused:
		g.drawPanel(screen, "PAUSED", "", "p  resume")
	}
}

// drawActor draws the body and a beak that tilts with the rotation.
func (g *Game) drawActor(screen *ebiten.Image) {
	x := float32(g.cfg.Actor.X)
	y := float32(g.scene.ActorY)
	size := float32(g.cfg.Actor.Size)

	vector.DrawFilledRect(screen, x, y, size, size, actorColor, false)

	tilt := float32(g.scene.Rotation / 90)
	beakY := y + size/2 - 4 + tilt*size/2
	vector.DrawFilledRect(screen, x+size-2, beakY, 10, 8, beakColor, false)
}

// drawPanel draws lines of text on a translucent box in the middle.
func (g *Game) drawPanel(screen *ebiten.Image, lines ...string) {
	w, h := g.Size()
	const lineHeight = 16

	width := 0
	for _, l := range lines {
		// The debug font is 6 pixels wide
		if lw := len(l) * 6; lw > width {
			width = lw
		}
	}
	width += 32
	height := len(lines)*lineHeight + 24

	x := (w - width) / 2
	y := (h - height) / 2
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(width), float32(height), panelColor, false)
	for i, l := range lines {
		ebitenutil.DebugPrintAt(screen, l, (w-len(l)*6)/2, y+12+i*lineHeight)
	}
}

// Layout keeps the arena's logical size; ebiten scales it to the window.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.Size()
}
