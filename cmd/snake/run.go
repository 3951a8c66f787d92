package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-game/internal/config"
	"github.com/vovakirdan/snake-game/internal/logging"
	"github.com/vovakirdan/snake-game/internal/platform/tui"
	"github.com/vovakirdan/snake-game/internal/registry"
)

func runGame(cmd *cobra.Command, args []string) error {
	if !registry.Exists(flagPlatform) {
		return fmt.Errorf("unknown platform %q, run 'snake list' to see available platforms", flagPlatform)
	}

	settings, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	level := settings.Log.Level
	if flagLogLevel != "" {
		level = flagLogLevel
	}

	// The terminal platform draws on stdout; logging to stderr would tear
	// the picture, so it only logs when given a file.
	quiet := flagPlatform == tui.ID && flagLogFile == ""
	logger, closeLog, err := logging.New(level, flagLogFile, quiet)
	if err != nil {
		return err
	}
	defer closeLog()

	runtimeCfg, err := settings.Runtime()
	if err != nil {
		return err
	}

	platform, err := registry.Create(flagPlatform)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Debug("starting", "platform", platform.ID(), "config", flagConfig)

	if err := platform.Run(ctx, registry.RunOptions{Config: runtimeCfg, Logger: logger}); err != nil {
		logger.Error("game stopped with error", "platform", platform.ID(), "error", err)
		return err
	}
	return nil
}
