package main

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

// loadConfig resolves the config file and applies the command line overrides.
func loadConfig() (config.SnakeConfig, error) {
	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		return config.SnakeConfig{}, err
	}

	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return cfg, err
	}
	return applyFlags(cfg)
}

// applyFlags layers --difficulty and --fps over cfg and validates the result.
// Startup and every watched reload go through it.
func applyFlags(cfg config.SnakeConfig) (config.SnakeConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, preset)
	if flagFPS > 0 {
		cfg.Timing.TickRate = flagFPS
	}
	return cfg, cfg.Validate()
}

// newLogger returns a file logger, or a discarding one when no file is set.
// The terminal belongs to the game, so logs never go to stdout or stderr.
func newLogger() (*log.Logger, io.Closer, error) {
	if flagLogFile == "" {
		return log.New(io.Discard), io.NopCloser(nil), nil
	}

	f, err := os.OpenFile(config.ExpandHome(flagLogFile), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, f, nil
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	game, err := snake.NewGame(cfg)
	if err != nil {
		return err
	}

	logger, closer, err := newLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runID := uuid.NewString()
	logger.Info("starting", "run", runID,
		"grid", fmt.Sprintf("%dx%d", cfg.Grid.Width, cfg.Grid.Height),
		"fps", cfg.Timing.TickRate)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	p := tui.NewProgram(game, tui.Options{
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: cfg.Timing.TickRate,
			Seed:     flagSeed,
		},
		Snapshot: cfg.Snapshot,
		Logger:   logger,
		RunID:    runID,
	}, tea.WithContext(ctx))

	if flagWatch {
		if err := watchConfig(ctx, p, logger); err != nil {
			return err
		}
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// watchConfig forwards config file changes to the running program.
func watchConfig(ctx context.Context, p *tea.Program, logger *log.Logger) error {
	path := config.ResolvePath(flagConfig)
	if path == "" {
		logger.Warn("--watch ignored: using the built-in config")
		return nil
	}

	w, err := config.NewWatcher(path, logger)
	if err != nil {
		return err
	}
	go w.Run(ctx, reloadHandler(logger, p.Send))
	logger.Info("watching config", "path", path)
	return nil
}

// reloadHandler re-applies the command line overrides to a reloaded config
// before handing it to send.
func reloadHandler(logger *log.Logger, send func(tea.Msg)) func(config.SnakeConfig) {
	return func(cfg config.SnakeConfig) {
		cfg, err := applyFlags(cfg)
		if err != nil {
			logger.Warn("ignoring config change", "error", err)
			return
		}
		send(tui.ConfigReloadedMsg{Config: cfg})
	}
}
