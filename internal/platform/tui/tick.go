// Package tui runs the shooter in a terminal through Bubble Tea, locally or
// over SSH. It owns timing, key handling, colored output and score saving;
// the game itself stays free of terminal concerns.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg asks the model to advance one frame. It carries the wall-clock
// time the tick fired, which is used to measure the frame's elapsed time.
type TickMsg time.Time

// tickCmd schedules the next frame at the given rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	return tea.Tick(time.Second/time.Duration(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
