package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Game is what the platform needs from a game.
// Games contain pure logic; the platform handles input, timing and display.
type Game interface {
	// ID returns a short identifier used in file names.
	ID() string

	// Title returns a human-readable name.
	Title() string

	// Reset starts a new run with the given screen size and seed.
	Reset(cfg core.RuntimeConfig)

	// Resize adapts to a new screen size without restarting.
	Resize(w, h int)

	// Step advances the simulation by one frame.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into dst.
	Render(dst *core.Screen)

	// State returns score, game over and pause flags.
	State() core.GameState

	// Configure schedules a new configuration for the next run.
	Configure(cfg config.SnakeConfig) error

	// SavePNG writes an image of the board.
	SavePNG(path string, cellPx, scale int) error
}

// helpHeight is the number of rows reserved below the game for key help.
const helpHeight = 1

// Options configures a Model.
type Options struct {
	Runtime  core.RuntimeConfig
	Snapshot config.SnapshotConfig
	Logger   *log.Logger
	RunID    string
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game       Game
	screen     *core.Screen
	config     core.RuntimeConfig
	snapshot   config.SnapshotConfig
	keys       *KeyMapper
	help       help.Model
	logger     *log.Logger
	runID      string
	inputFrame core.InputFrame
	gameState  core.GameState
	started    bool
	quitting   bool

	pending *config.SnakeConfig // Reloaded config, applied on restart
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game Game, opts Options) Model {
	cfg := opts.Runtime
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	cfg.ScreenH = max(cfg.ScreenH-helpHeight, 0)

	logger := opts.Logger
	if logger == nil {
		logger = log.New(os.Stderr)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		snapshot:   opts.Snapshot,
		keys:       NewKeyMapper(),
		help:       help.New(),
		logger:     logger,
		runID:      opts.RunID,
		inputFrame: core.NewInputFrame(),
	}
}

// Init starts the frame loop.
// The game is reset on the first tick since Init has a value receiver.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()

	case ConfigReloadedMsg:
		return m.handleReload(msg)
	}

	return m, nil
}

// handleKey records the key for the next frame. Direction keys are
// last-wins so the latest key state at tick time is what the game sees.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch action := m.keys.MapKey(msg); action {
	case core.ActionQuit:
		m.quitting = true
		m.logger.Info("quit", "run", m.runID, "score", m.gameState.Score)
		return m, tea.Quit
	case core.ActionSnapshot:
		m.saveSnapshot()
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleResize keeps the current run and only relayouts it.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = max(msg.Height-helpHeight, 0)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.help.Width = msg.Width
	if m.started {
		m.game.Resize(m.config.ScreenW, m.config.ScreenH)
	}
	return m, nil
}

func (m Model) handleReload(msg ConfigReloadedMsg) (tea.Model, tea.Cmd) {
	if err := m.game.Configure(msg.Config); err != nil {
		m.logger.Warn("reloaded config rejected", "error", err)
		return m, nil
	}
	cfg := msg.Config
	m.pending = &cfg
	m.logger.Info("config staged for next run")
	return m, nil
}

// handleTick runs one frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if !m.started {
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.started = true
		m.logger.Info("run started", "run", m.runID, "seed", m.config.Seed)
	}

	restarting := m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	switch {
	case restarting:
		if m.pending != nil {
			m.config.TickRate = m.pending.Timing.TickRate
			m.snapshot = m.pending.Snapshot
			m.pending = nil
		}
		m.logger.Info("run restarted", "run", m.runID)
	case result.Died:
		m.logger.Info("run ended", "run", m.runID, "score", m.gameState.Score, "reason", "collision")
	case result.Ate && m.gameState.GameOver:
		m.logger.Info("run ended", "run", m.runID, "score", m.gameState.Score, "reason", "board full")
	case result.Ate:
		m.logger.Debug("food eaten", "score", m.gameState.Score)
	}

	return m, tickCmd(m.config.TickRate)
}

// saveSnapshot writes the board as PNG and the screen as text.
// Failures are logged; the game continues regardless.
func (m *Model) saveSnapshot() {
	if !m.started {
		return
	}
	dir := config.ExpandHome(m.snapshot.Dir)
	if dir == "" {
		dir = "."
	}

	short := m.runID
	if len(short) > 8 {
		short = short[:8]
	}
	base := strings.Join([]string{m.game.ID(), short, time.Now().Format("20060102_150405")}, "_")
	pngPath := filepath.Join(dir, base+".png")

	if err := m.game.SavePNG(pngPath, m.snapshot.CellPx, m.snapshot.Scale); err != nil {
		m.logger.Error("snapshot failed", "error", err)
		return
	}

	m.game.Render(m.screen)
	txtPath := filepath.Join(dir, base+".txt")
	if err := os.WriteFile(txtPath, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Error("snapshot failed", "error", fmt.Errorf("writing %s: %w", txtPath, err))
		return
	}
	m.logger.Info("snapshot saved", "png", pngPath, "txt", txtPath)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || !m.started {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// NewProgram wraps the model in a Bubble Tea program.
// The caller may Send ConfigReloadedMsg to it while it runs.
func NewProgram(game Game, opts Options, progOpts ...tea.ProgramOption) *tea.Program {
	progOpts = append([]tea.ProgramOption{tea.WithAltScreen()}, progOpts...)
	return tea.NewProgram(NewModel(game, opts), progOpts...)
}
