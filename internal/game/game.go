// Package game ties one snake to one drawing surface and routes platform
// events to it.
package game

import (
	"github.com/vovakirdan/snake-game/internal/core"
	"github.com/vovakirdan/snake-game/internal/snake"
)

// Game owns the snake and the surface it is drawn on.
// It is driven from a single goroutine and must not be copied.
type Game struct {
	snake      *snake.Snake
	surface    core.Surface
	background core.Color
}

// New creates a game with a fresh snake drawing onto surface.
func New(surface core.Surface, cfg core.RuntimeConfig) *Game {
	return &Game{
		snake:      snake.New(cfg.SnakeColor),
		surface:    surface,
		background: cfg.Background,
	}
}

// Render clears the viewport to the background colour and draws the snake.
func (g *Game) Render(args core.RenderArgs) {
	g.surface.Clear(g.background, args.Viewport.Rect)
	g.snake.Render(g.surface, args.Viewport)
}

// Update advances the snake by one fixed step.
func (g *Game) Update() {
	g.snake.Update()
}

// Button forwards key presses to the snake. Releases are ignored.
func (g *Game) Button(args core.ButtonArgs) {
	if args.State != core.Press {
		return
	}
	g.snake.Pressed(args.Key)
}

// Handle dispatches every part of e, in render, update, button order.
func (g *Game) Handle(e core.Event) {
	if e.Render != nil {
		g.Render(*e.Render)
	}
	if e.Update {
		g.Update()
	}
	if e.Button != nil {
		g.Button(*e.Button)
	}
}

// Snake returns the game's snake.
func (g *Game) Snake() *snake.Snake {
	return g.snake
}
