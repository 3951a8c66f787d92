// Package registry provides a global registry of platforms. A platform is
// the event source that hosts the game: it owns the window or terminal,
// delivers update ticks, render requests and key events, and decides when
// the process exits. Platforms register themselves in init() functions.
package registry

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snake-game/internal/core"
)

// Platform is implemented by every host the game can run under.
type Platform interface {
	// ID returns a unique identifier used on the command line (e.g. "window").
	ID() string

	// Title returns a human-readable description.
	Title() string

	// Run builds a fresh game and drives it until the user quits or ctx is
	// cancelled. It blocks for the lifetime of the game.
	Run(ctx context.Context, opts RunOptions) error
}

// RunOptions is passed to Platform.Run.
type RunOptions struct {
	Config core.RuntimeConfig
	Logger *log.Logger
}

// Log returns the configured logger, or one that discards everything.
func (o RunOptions) Log() *log.Logger {
	if o.Logger == nil {
		return log.New(io.Discard)
	}
	return o.Logger
}

// PlatformInfo contains metadata about a registered platform.
type PlatformInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a platform.
type Factory func() Platform

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a platform factory to the registry.
// Panics if a platform with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: platform %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered platforms, sorted by ID.
func List() []PlatformInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]PlatformInfo, 0, len(factories))
	for id := range factories {
		result = append(result, PlatformInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a platform by its ID.
func Create(id string) (Platform, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown platform %q", id)
	}

	return f(), nil
}

// Exists checks if a platform with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
