package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snake-game/internal/core"
	"github.com/vovakirdan/snake-game/internal/game"
)

// Model is the Bubble Tea model that hosts the game.
type Model struct {
	game     *game.Game
	screen   *core.Screen
	viewport core.Viewport
	styles   styleCache
	keys     keyMap
	help     help.Model
	config   core.RuntimeConfig
	logger   *log.Logger
	quitting bool
}

// screenSize returns the terminal raster size for a play area: two columns
// and one row per grid cell, since terminal cells are about twice as tall
// as they are wide.
func screenSize(cfg core.RuntimeConfig) (cols, rows int) {
	return cfg.Width / core.CellSize * 2, cfg.Height / core.CellSize
}

// NewModel creates a model with a fresh game.
func NewModel(cfg core.RuntimeConfig, logger *log.Logger) Model {
	cols, rows := screenSize(cfg)
	screen := core.NewScreen(cols, rows)

	return Model{
		game:     game.New(screen, cfg),
		screen:   screen,
		viewport: core.FitViewport(cfg.Width, cfg.Height, cols, rows),
		styles:   make(styleCache),
		keys:     newKeyMap(),
		help:     help.New(),
		config:   cfg,
		logger:   logger,
	}
}

// Init starts the update tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.UpdatesPerSecond)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		m.game.Handle(core.UpdateEvent())
		return m, tickCmd(m.config.UpdatesPerSecond)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}

	k := m.keys.translateKey(msg)
	m.logger.Debug("key", "key", msg.String(), "mapped", k)
	m.game.Handle(core.ButtonEvent(k, core.Press))
	return m, nil
}

// View issues a render request and returns the drawn raster and help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Handle(core.RenderEvent(m.viewport))
	return renderScreen(m.screen, m.styles) + "\n" + m.help.View(m.keys)
}

// Game returns the hosted game.
func (m Model) Game() *game.Game {
	return m.game
}
