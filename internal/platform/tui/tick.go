// Package tui provides the Bubble Tea host for the flappy simulation.
// It maps keys to actions, advances the simulation clock from frame ticks
// and draws the render surface into a terminal cell buffer.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a redraw and advance the simulation clock.
type TickMsg time.Time

// maxFrameStep caps how much virtual time a single frame may advance, so a
// stalled terminal does not fast-forward the run.
const maxFrameStep = 250 * time.Millisecond

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(frameRate int) tea.Cmd {
	interval := time.Second / time.Duration(frameRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameStep returns the virtual time to advance between two frame ticks.
func frameStep(last, now time.Time) time.Duration {
	if last.IsZero() || now.Before(last) {
		return 0
	}
	d := now.Sub(last)
	if d > maxFrameStep {
		d = maxFrameStep
	}
	return d
}
