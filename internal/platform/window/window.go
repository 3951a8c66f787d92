// Package window hosts the game in a desktop window using Ebitengine.
package window

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/snake-game/internal/core"
	"github.com/vovakirdan/snake-game/internal/game"
	"github.com/vovakirdan/snake-game/internal/loop"
	"github.com/vovakirdan/snake-game/internal/registry"
)

// ID is the registry identifier of the window platform.
const ID = "window"

func init() {
	registry.Register(ID, func() registry.Platform {
		return &Platform{}
	})
}

// Platform opens a fixed-size window and drives the game from Ebitengine's
// update and draw callbacks.
type Platform struct{}

// ID returns the platform identifier.
func (p *Platform) ID() string {
	return ID
}

// Title returns the display name.
func (p *Platform) Title() string {
	return "Desktop window (Ebitengine)"
}

// Run opens the window and blocks until it is closed, Escape is pressed,
// or ctx is cancelled.
func (p *Platform) Run(ctx context.Context, opts registry.RunOptions) error {
	cfg := opts.Config
	logger := opts.Log()

	h := newHost(ctx, cfg, logger)

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)

	logger.Info("opening window",
		"title", cfg.Title,
		"width", cfg.Width,
		"height", cfg.Height,
		"ups", cfg.UpdatesPerSecond,
	)

	if err := ebiten.RunGame(h); err != nil {
		return fmt.Errorf("window: %w", err)
	}

	logger.Info("window closed")
	return nil
}

// host adapts the game to ebiten.Game. Ebitengine calls Update at its own
// tick rate; a FixedStep turns those ticks into the game's update rate, so
// key presses are sampled far more often than the snake moves.
type host struct {
	ctx     context.Context
	cfg     core.RuntimeConfig
	logger  *log.Logger
	game    *game.Game
	surface *imageSurface
	step    *loop.FixedStep
	keys    []ebiten.Key
}

func newHost(ctx context.Context, cfg core.RuntimeConfig, logger *log.Logger) *host {
	surface := &imageSurface{}
	return &host{
		ctx:     ctx,
		cfg:     cfg,
		logger:  logger,
		game:    game.New(surface, cfg),
		surface: surface,
		step:    loop.NewFixedStep(cfg.UpdatesPerSecond),
		keys:    make([]ebiten.Key, 0, 8),
	}
}

// Update delivers key events, then any logical updates that are due.
func (h *host) Update() error {
	select {
	case <-h.ctx.Done():
		return ebiten.Termination
	default:
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	h.keys = inpututil.AppendJustPressedKeys(h.keys[:0])
	for _, k := range h.keys {
		h.dispatchKey(k, core.Press)
	}
	h.keys = inpututil.AppendJustReleasedKeys(h.keys[:0])
	for _, k := range h.keys {
		h.dispatchKey(k, core.Release)
	}

	for range h.step.Advance(hostTick()) {
		h.game.Handle(core.UpdateEvent())
	}
	return nil
}

func (h *host) dispatchKey(k ebiten.Key, state core.ButtonState) {
	key := translateKey(k)
	h.logger.Debug("key", "key", k.String(), "mapped", key, "state", state)
	h.game.Handle(core.ButtonEvent(key, state))
}

// Draw issues a render request targeting the whole screen image.
func (h *host) Draw(screen *ebiten.Image) {
	h.surface.img = screen
	b := screen.Bounds()
	h.game.Handle(core.RenderEvent(core.NewViewport(b.Dx(), b.Dy())))
}

// Layout keeps the logical screen at the configured size; Ebitengine scales
// it if the window is resized.
func (h *host) Layout(_, _ int) (int, int) {
	return h.cfg.Width, h.cfg.Height
}

// hostTick returns the duration of one Ebitengine tick.
func hostTick() time.Duration {
	tps := ebiten.TPS()
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	return time.Second / time.Duration(tps)
}

// translateKey maps an Ebitengine key to a core key. Letter keys report
// their name as a single upper-case letter.
func translateKey(k ebiten.Key) core.Key {
	if k == ebiten.KeyEscape {
		return core.KeyEscape
	}
	if name := k.String(); len(name) == 1 {
		return core.KeyFromRune(rune(name[0]))
	}
	return core.KeyUnknown
}
