// snake is a minimal real-time Snake game.
//
// Usage:
//
//	snake                    - Open the game window
//	snake --platform term    - Play in the terminal instead
//	snake list               - List available platforms
//
// Controls: K up, J down, H left, L right, Esc quits.
//
// Global flags:
//
//	--platform <id>    - Platform to run on (default: window)
//	--config <path>    - Settings YAML overriding the built-in defaults
//	--log-level <lvl>  - debug, info, warn or error (default: from settings)
//	--log-file <path>  - Write logs to a file instead of stderr
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import platforms to register them
	_ "github.com/vovakirdan/snake-game/internal/platform/tui"
	_ "github.com/vovakirdan/snake-game/internal/platform/window"
)

var (
	// Global flags
	flagPlatform string
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - steer a snake around a 400x400 grid",
	Long: `Snake opens a 400x400 window and moves a two-segment snake across a
green field eight times a second.

Controls:
  K  - Up
  J  - Down
  H  - Left
  L  - Right
  Esc - Quit

Examples:
  snake
  snake --platform term
  snake --config ./settings.yaml --log-level debug`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGame,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagPlatform, "platform", "window", "Platform to run on (see 'snake list')")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a settings YAML file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(listCmd)
}
