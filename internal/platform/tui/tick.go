// Package tui hosts the snake game in a terminal with Bubble Tea.
// It supplies the frame callbacks, maps keys to key codes and draws the
// HUD, overlays and session scoreboard around the board.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is one frame callback. Gen identifies the game instance that
// requested it so frames from a finished game are dropped after restart.
type FrameMsg struct {
	Gen  int
	Time time.Time
}

// frameCmd returns a Bubble Tea command that delivers the next frame at
// the given rate.
func frameCmd(gen, frameRate int) tea.Cmd {
	if frameRate <= 0 {
		frameRate = 60
	}
	interval := time.Second / time.Duration(frameRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg{Gen: gen, Time: t}
	})
}

// timestamp converts a frame time to milliseconds since start.
func timestamp(start, t time.Time) float64 {
	return float64(t.Sub(start).Microseconds()) / 1000
}
