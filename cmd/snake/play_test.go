package main

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

func resetFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		flagConfig, flagDifficulty, flagFPS = "", "", 0
	})
}

func TestLoadConfigOverrides(t *testing.T) {
	resetFlags(t)

	path := filepath.Join(t.TempDir(), "snake.yaml")
	if err := os.WriteFile(path, []byte("grid:\n  width: 12\n  height: 8\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	flagConfig = path
	flagDifficulty = "fixed"
	flagFPS = 30

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Grid.Width != 12 || cfg.Grid.Height != 8 {
		t.Errorf("grid = %dx%d, want 12x8", cfg.Grid.Width, cfg.Grid.Height)
	}
	if cfg.Difficulty.Enabled {
		t.Error("fixed difficulty should disable speed-up")
	}
	if cfg.Timing.TickRate != 30 {
		t.Errorf("tick rate = %d, want 30", cfg.Timing.TickRate)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()
	degenerate := filepath.Join(dir, "tiny.yaml")
	if err := os.WriteFile(degenerate, []byte("grid:\n  width: 1\n  height: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name       string
		config     string
		difficulty string
	}{
		{"unknown difficulty", "", "insane"},
		{"missing file", filepath.Join(dir, "nope.yaml"), ""},
		{"degenerate grid", degenerate, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags(t)
			flagConfig = tt.config
			flagDifficulty = tt.difficulty

			if _, err := loadConfig(); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestNewLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.log")
	flagLogFile, flagDebug = path, true
	t.Cleanup(func() { flagLogFile, flagDebug = "", false })

	logger, closer, err := newLogger()
	if err != nil {
		t.Fatalf("newLogger: %v", err)
	}
	logger.Debug("hello", "n", 1)
	closer.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) == 0 {
		t.Error("log file is empty")
	}
}

func TestWatchedReloadKeepsFlagOverrides(t *testing.T) {
	resetFlags(t)

	path := filepath.Join(t.TempDir(), "snake.yaml")
	initial := "difficulty:\n  enabled: true\ntiming:\n  tick_rate: 60\n"
	if err := os.WriteFile(path, []byte(initial), 0o600); err != nil {
		t.Fatal(err)
	}
	flagConfig = path
	flagDifficulty = "fixed"
	flagFPS = 30

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Difficulty.Enabled || cfg.Timing.TickRate != 30 {
		t.Fatalf("startup config ignored flags: enabled=%v tick_rate=%d",
			cfg.Difficulty.Enabled, cfg.Timing.TickRate)
	}

	logger := log.New(io.Discard)
	w, err := config.NewWatcher(path, logger)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	got := make(chan tea.Msg, 16)
	go w.Run(ctx, reloadHandler(logger, func(msg tea.Msg) {
		select {
		case got <- msg:
		default:
		}
	}))

	changed := "grid:\n  width: 12\n  height: 9\ndifficulty:\n  enabled: true\ntiming:\n  tick_rate: 60\n"
	if err := os.WriteFile(path, []byte(changed), 0o600); err != nil {
		t.Fatal(err)
	}

	deadline := time.After(3 * time.Second)
	for {
		select {
		case msg := <-got:
			reload, ok := msg.(tui.ConfigReloadedMsg)
			if !ok {
				t.Fatalf("sent %T", msg)
			}
			if reload.Config.Grid.Width != 12 || reload.Config.Grid.Height != 9 {
				continue
			}
			if reload.Config.Difficulty.Enabled {
				t.Error("reload lost --difficulty fixed")
			}
			if reload.Config.Timing.TickRate != 30 {
				t.Errorf("reload tick rate = %d, expected --fps 30", reload.Config.Timing.TickRate)
			}
			return
		case <-deadline:
			t.Fatal("no reload with the new grid seen")
		}
	}
}

func TestReloadHandlerDropsInvalidOverride(t *testing.T) {
	resetFlags(t)
	flagFPS = 1000 // Above the allowed frame rate

	sent := false
	handle := reloadHandler(log.New(io.Discard), func(tea.Msg) { sent = true })
	handle(config.DefaultSnakeConfig())

	if sent {
		t.Error("config failing validation after overrides should not be sent")
	}
}
