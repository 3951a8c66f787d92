package game

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/snake-game/internal/core"
	"github.com/vovakirdan/snake-game/internal/snake"
)

func newTestGame() (*Game, *core.Screen) {
	screen := core.NewScreen(core.WindowWidth, core.WindowHeight)
	return New(screen, core.DefaultConfig()), screen
}

func TestRenderClearsThenDrawsSnake(t *testing.T) {
	g, screen := newTestGame()
	screen.Clear(core.ColorBlack, screen.Bounds())

	g.Render(core.RenderArgs{Viewport: core.NewViewport(core.WindowWidth, core.WindowHeight)})

	red := screen.Count(core.ColorRed)
	green := screen.Count(core.ColorGreen)
	if red != 2*core.CellSize*core.CellSize {
		t.Errorf("red pixels = %d, expected two cells", red)
	}
	if red+green != core.WindowWidth*core.WindowHeight {
		t.Errorf("red+green = %d, expected the whole window", red+green)
	}
	if screen.Get(5, 25) != core.ColorRed {
		t.Error("segment (0,1) should be drawn at (0,20)-(20,40)")
	}
}

func TestRenderClearsOnlyViewport(t *testing.T) {
	g, screen := newTestGame()
	vp := core.Viewport{Rect: core.NewRect(0, 0, 200, 100), ScaleX: 1, ScaleY: 1}

	g.Render(core.RenderArgs{Viewport: vp})

	if n := screen.Count(core.ColorGreen) + screen.Count(core.ColorRed); n != 200*100 {
		t.Errorf("drawn pixels = %d, expected the 200x100 viewport", n)
	}
	if screen.Get(250, 50) != (core.Color{}) || screen.Get(50, 150) != (core.Color{}) {
		t.Error("Render should not clear outside the viewport")
	}
}

func TestHandleUpdate(t *testing.T) {
	g, _ := newTestGame()

	g.Handle(core.UpdateEvent())

	want := []snake.Segment{{X: 1, Y: 0}, {X: 0, Y: 0}}
	if got := g.Snake().Body(); !reflect.DeepEqual(got, want) {
		t.Errorf("Body() = %v, expected %v", got, want)
	}
}

func TestHandleButtonPressOnly(t *testing.T) {
	g, _ := newTestGame()

	g.Handle(core.ButtonEvent(core.KeyJ, core.Release))
	if g.Snake().Direction() != snake.DirRight {
		t.Errorf("release changed heading to %v", g.Snake().Direction())
	}

	g.Handle(core.ButtonEvent(core.KeyJ, core.Press))
	if g.Snake().Direction() != snake.DirDown {
		t.Errorf("Direction() = %v after J press, expected down", g.Snake().Direction())
	}
}

func TestHandleEmptyEvent(t *testing.T) {
	g, screen := newTestGame()
	body := g.Snake().Body()

	g.Handle(core.Event{})

	if got := g.Snake().Body(); !reflect.DeepEqual(got, body) {
		t.Errorf("empty event moved the snake: %v", got)
	}
	if screen.Count(core.Color{}) != core.WindowWidth*core.WindowHeight {
		t.Error("empty event should not draw")
	}
}

func TestHandleCombinedEventOrder(t *testing.T) {
	g, screen := newTestGame()
	vp := core.NewViewport(core.WindowWidth, core.WindowHeight)

	// Render sees the pre-update body; the press only affects the next update.
	g.Handle(core.Event{
		Render: &core.RenderArgs{Viewport: vp},
		Update: true,
		Button: &core.ButtonArgs{Key: core.KeyJ, State: core.Press},
	})

	if screen.Get(5, 25) != core.ColorRed {
		t.Error("render should run before the update")
	}
	if g.Snake().Head() != (snake.Segment{X: 1, Y: 0}) {
		t.Errorf("Head() = %v, expected {1 0}", g.Snake().Head())
	}

	g.Handle(core.UpdateEvent())
	if g.Snake().Head() != (snake.Segment{X: 1, Y: 1}) {
		t.Errorf("Head() = %v, expected {1 1}", g.Snake().Head())
	}
}

func TestCustomColours(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.Background = core.ColorBlack
	cfg.SnakeColor = core.Color{B: 0xff, A: 0xff}
	screen := core.NewScreen(40, 20)
	g := New(screen, cfg)

	g.Render(core.RenderArgs{Viewport: core.FitViewport(core.WindowWidth, core.WindowHeight, 40, 20)})

	if n := screen.Count(cfg.SnakeColor); n != 4 {
		t.Errorf("snake cells = %d, expected 4", n)
	}
	if n := screen.Count(core.ColorBlack); n != 40*20-4 {
		t.Errorf("background cells = %d, expected %d", n, 40*20-4)
	}
}
