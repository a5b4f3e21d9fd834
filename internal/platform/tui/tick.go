// Package tui provides the Bubble Tea integration for the game.
// It handles the terminal UI loop, input mapping, timing, and rendering;
// the simulation underneath stays pure.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. Its timestamp
// yields the elapsed seconds fed into the step.
type TickMsg time.Time

// maxFrameSeconds caps the dt of a single step, so a suspended or
// stalled terminal cannot produce a tunneling super-step when ticks
// resume.
const maxFrameSeconds = 0.25

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
