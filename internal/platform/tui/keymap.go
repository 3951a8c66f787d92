package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/snake-game/internal/core"
)

// keyMap holds the bindings shown in the help footer.
type keyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Quit  key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:    key.NewBinding(key.WithKeys("k", "K"), key.WithHelp("k", "up")),
		Down:  key.NewBinding(key.WithKeys("j", "J"), key.WithHelp("j", "down")),
		Left:  key.NewBinding(key.WithKeys("h", "H"), key.WithHelp("h", "left")),
		Right: key.NewBinding(key.WithKeys("l", "L"), key.WithHelp("l", "right")),
		Quit:  key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// translateKey turns a terminal key message into a core key.
// Terminals report only presses, never releases.
func (k keyMap) translateKey(msg tea.KeyMsg) core.Key {
	switch {
	case key.Matches(msg, k.Up):
		return core.KeyK
	case key.Matches(msg, k.Down):
		return core.KeyJ
	case key.Matches(msg, k.Left):
		return core.KeyH
	case key.Matches(msg, k.Right):
		return core.KeyL
	case msg.Type == tea.KeyEsc:
		return core.KeyEscape
	}
	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
		return core.KeyFromRune(msg.Runes[0])
	}
	return core.KeyUnknown
}
