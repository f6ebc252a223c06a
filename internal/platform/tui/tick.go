// Package tui provides the Bubble Tea integration for the Puyo Puyo
// platform: the tick loop, key mapping, the menu, the scoreboard and the
// SSH server.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. Loop identifies the
// game model that scheduled it, so a stale tick from a finished game does
// not start a second loop.
type TickMsg struct {
	Time time.Time
	Loop uint64
}

var loopCounter atomic.Uint64

// nextLoopID returns a fresh tick loop identifier.
func nextLoopID() uint64 {
	return loopCounter.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int, loop uint64) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Loop: loop}
	})
}
