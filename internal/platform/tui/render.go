package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/snake-game/internal/core"
)

// styleCache maps colours to lipgloss background styles.
type styleCache map[core.Color]lipgloss.Style

func (c styleCache) style(col core.Color) lipgloss.Style {
	if s, ok := c[col]; ok {
		return s
	}
	s := lipgloss.NewStyle().Background(lipgloss.Color(col.Hex()))
	c[col] = s
	return s
}

// renderScreen converts a Screen buffer to a styled string for display.
// Each cell is a blank with its colour as background. Adjacent cells with
// the same colour are grouped to minimize ANSI escape sequences.
func renderScreen(s *core.Screen, styles styleCache) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.Get(x, y)
			n := 0
			for x < s.Width() && s.Get(x, y) == start {
				n++
				x++
			}
			sb.WriteString(styles.style(start).Render(strings.Repeat(" ", n)))
		}
	}
	return sb.String()
}
