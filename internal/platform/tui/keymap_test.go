package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/snake-game/internal/core"
)

func TestTranslateKey(t *testing.T) {
	km := newKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Key
	}{
		{"k", runes("k"), core.KeyK},
		{"K", runes("K"), core.KeyK},
		{"j", runes("j"), core.KeyJ},
		{"h", runes("h"), core.KeyH},
		{"l", runes("l"), core.KeyL},
		{"other letter", runes("w"), core.Key('w')},
		{"digit", runes("1"), core.KeyUnknown},
		{"arrow", tea.KeyMsg{Type: tea.KeyUp}, core.KeyUnknown},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.KeyEscape},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := km.translateKey(tc.msg); got != tc.expected {
				t.Errorf("translateKey(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
			}
		})
	}
}
