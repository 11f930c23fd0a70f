// Package tui provides the Bubble Tea integration for the snake game.
// It drives the frame loop, maps keys to actions and renders the screen.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/config"
)

// TickMsg is sent to trigger a game frame.
type TickMsg time.Time

// ConfigReloadedMsg carries a configuration changed on disk.
// It takes effect at the next restart.
type ConfigReloadedMsg struct {
	Config config.SnakeConfig
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(max(tickRate, 1))
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
