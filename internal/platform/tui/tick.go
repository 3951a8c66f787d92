// Package tui hosts the game in a terminal using Bubble Tea. The window
// area is drawn as a grid of coloured cells, two columns by one row per
// snake cell.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/snake-game/internal/loop"
)

// TickMsg is sent to trigger one logical update.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick message after one
// update interval at the given rate.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(loop.Interval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
