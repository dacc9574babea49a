// Package tui runs a registered game inside Bubble Tea: it drives the frame
// clock, maps keys to actions, renders the screen buffer and forwards
// simulation events to the sound sink.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(max(tickRate, 1))
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// holdTicks converts the key hold window into frames at the given rate.
// Terminals only report presses, so a press keeps its direction active for
// this many frames; auto-repeat refreshes it while the key stays down.
func holdTicks(tickRate int, window time.Duration) int {
	n := int(window * time.Duration(tickRate) / time.Second)
	return max(n, 1)
}
