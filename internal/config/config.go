// Package config provides YAML-based settings loading for the snake game.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/snake-game/internal/core"
)

// MaxUpdatesPerSecond bounds the update rate a settings file may ask for.
const MaxUpdatesPerSecond = 1000

// Settings contains everything that can be tuned without recompiling.
// Window and grid size are deliberately absent.
type Settings struct {
	Title            string         `yaml:"title"`
	UpdatesPerSecond int            `yaml:"updates_per_second"`
	Colors           ColorSettings  `yaml:"colors"`
	Log              LoggerSettings `yaml:"log"`
}

// ColorSettings holds hex colours ("#rrggbb" or "#rrggbbaa").
type ColorSettings struct {
	Background string `yaml:"background"`
	Snake      string `yaml:"snake"`
}

// LoggerSettings configures the process logger.
type LoggerSettings struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		Title:            "Snake Game",
		UpdatesPerSecond: 8,
		Colors: ColorSettings{
			Background: "#00cc00ff",
			Snake:      "#ff0000ff",
		},
		Log: LoggerSettings{
			Level: "info",
		},
	}
}

// Validate reports every problem with s at once.
func (s Settings) Validate() error {
	var errs []error
	if s.Title == "" {
		errs = append(errs, errors.New("title must not be empty"))
	}
	if s.UpdatesPerSecond <= 0 || s.UpdatesPerSecond > MaxUpdatesPerSecond {
		errs = append(errs, fmt.Errorf("updates_per_second must be in 1..%d, got %d", MaxUpdatesPerSecond, s.UpdatesPerSecond))
	}
	if _, err := core.ParseHexColor(s.Colors.Background); err != nil {
		errs = append(errs, fmt.Errorf("colors.background: %w", err))
	}
	if _, err := core.ParseHexColor(s.Colors.Snake); err != nil {
		errs = append(errs, fmt.Errorf("colors.snake: %w", err))
	}
	return errors.Join(errs...)
}

// Runtime converts validated settings into the config handed to platforms.
func (s Settings) Runtime() (core.RuntimeConfig, error) {
	if err := s.Validate(); err != nil {
		return core.RuntimeConfig{}, fmt.Errorf("config: invalid settings: %w", err)
	}

	cfg := core.DefaultConfig()
	cfg.Title = s.Title
	cfg.UpdatesPerSecond = s.UpdatesPerSecond
	cfg.Background, _ = core.ParseHexColor(s.Colors.Background)
	cfg.SnakeColor, _ = core.ParseHexColor(s.Colors.Snake)
	return cfg, nil
}
