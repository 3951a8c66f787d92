package tui

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/vovakirdan/snake-game/internal/registry"
)

// ID is the registry identifier of the terminal platform.
const ID = "term"

func init() {
	registry.Register(ID, func() registry.Platform {
		return &Platform{}
	})
}

// Platform runs the game inside the current terminal.
type Platform struct{}

// ID returns the platform identifier.
func (p *Platform) ID() string {
	return ID
}

// Title returns the display name.
func (p *Platform) Title() string {
	return "Terminal (Bubble Tea)"
}

// Run takes over the terminal and blocks until the user quits or ctx is
// cancelled.
func (p *Platform) Run(ctx context.Context, opts registry.RunOptions) error {
	cfg := opts.Config
	logger := opts.Log()

	model := NewModel(cfg, logger)

	// Rows: the raster plus one help line.
	needW, needH := model.screen.Width(), model.screen.Height()+1
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil && (w < needW || h < needH) {
		logger.Warn("terminal smaller than play area",
			"have", fmt.Sprintf("%dx%d", w, h),
			"need", fmt.Sprintf("%dx%d", needW, needH),
		)
	}

	logger.Info("starting terminal game",
		"title", cfg.Title,
		"cols", model.screen.Width(),
		"rows", model.screen.Height(),
		"ups", cfg.UpdatesPerSecond,
	)

	program := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	_, err := program.Run()
	if err != nil && ctx.Err() == nil {
		return fmt.Errorf("tui: %w", err)
	}

	logger.Info("terminal game ended")
	return nil
}
