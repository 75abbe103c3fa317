package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-tui/internal/config"
	"github.com/vovakirdan/flappy-tui/internal/core"
	"github.com/vovakirdan/flappy-tui/internal/games/flappy"
	"github.com/vovakirdan/flappy-tui/internal/sched"
)

// Model is the Bubble Tea model for one flappy session.
// The simulation state lives behind pointers, so value copies made by
// Bubble Tea share it.
type Model struct {
	ctrl    *flappy.Controller
	loop    *sched.Loop
	hub     *flappy.InputHub
	surface *Surface
	screen  *core.Screen
	keys    KeyMap
	help    help.Model
	config  core.RuntimeConfig
	logger  *log.Logger

	last     time.Time
	quitting bool
}

// NewModel creates a model with its own loop and controller.
func NewModel(game config.FlappyConfig, cfg core.RuntimeConfig, logger *log.Logger) (Model, error) {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.FrameRate <= 0 {
		cfg.FrameRate = core.DefaultConfig().FrameRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	loop := sched.NewLoop()
	hub := flappy.NewInputHub()
	surface := NewSurface(game)

	ctrl, err := flappy.New(game, flappy.Host{
		Surface: surface,
		Input:   hub,
		Clock:   loop,
		Logger:  logger,
		Seed:    cfg.Seed,
	})
	if err != nil {
		return Model{}, err
	}

	h := help.New()
	h.ShowAll = false

	return Model{
		ctrl:    ctrl,
		loop:    loop,
		hub:     hub,
		surface: surface,
		screen:  core.NewScreen(cfg.ScreenW, core.Max(1, cfg.ScreenH-1)),
		keys:    DefaultKeyMap(),
		help:    h,
		config:  cfg,
		logger:  logger,
	}, nil
}

// Init starts the frame loop. The run itself starts on the start key.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.FrameRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.apply(m.keys.MapKey(msg))

	case tea.MouseMsg:
		return m.apply(MapMouse(msg))

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// apply performs a host action against the controller.
func (m Model) apply(action core.Action) (tea.Model, tea.Cmd) {
	switch action {
	case core.ActionQuit:
		s := m.ctrl.Snapshot()
		m.logger.Debug("quit", "phase", s.Phase, "score", s.Score)
		m.ctrl.Dispose()
		m.quitting = true
		return m, tea.Quit
	case core.ActionFlap:
		m.hub.Activate()
	case core.ActionConfirm:
		switch m.ctrl.Snapshot().Phase {
		case flappy.PhaseIdle, flappy.PhaseOver, flappy.PhaseStopped:
			m.ctrl.Restart()
		}
	case core.ActionPause:
		m.ctrl.TogglePause()
	}
	return m, nil
}

// handleResize processes window resize events. The last row is the help
// footer.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, core.Max(1, msg.Height-1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the simulation clock by the wall time since the
// previous frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}
	m.loop.Advance(frameStep(m.last, now))
	m.last = now
	return m, tickCmd(m.config.FrameRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.surface.Draw(m.screen)
	if m.ctrl.Snapshot().Phase == flappy.PhasePaused {
		drawPanel(m.screen, core.ColorYellow, "PAUSED", "", "p  resume")
	}

	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Snapshot exposes the controller state, mainly for tests.
func (m Model) Snapshot() flappy.Snapshot {
	return m.ctrl.Snapshot()
}

// Run starts the Bubble Tea program for a local terminal session.
func Run(game config.FlappyConfig, cfg core.RuntimeConfig, logger *log.Logger) error {
	model, err := NewModel(game, cfg, logger)
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Left click flaps
	)

	_, err = p.Run()
	return err
}
