// Package tui provides the Bubble Tea host for the game.
// It handles the terminal UI loop, input mapping, frame timing and score keeping.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-frogger/internal/core"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// maxFrameSeconds caps the elapsed time fed to one simulation step.
const maxFrameSeconds = 0.1

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameSeconds returns the elapsed time between two ticks, clamped to
// (0, maxFrameSeconds]. The first tick and clock hiccups fall back to the
// nominal frame duration.
func frameSeconds(prev, now time.Time, nominal float64) float64 {
	if prev.IsZero() {
		return nominal
	}
	dt := now.Sub(prev).Seconds()
	if dt <= 0 {
		return nominal
	}
	return core.ClampF(dt, 0, maxFrameSeconds)
}
