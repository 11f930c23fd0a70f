// Package config provides YAML-based configuration loading, validation and
// difficulty management for the snake game.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// Grid size limits. Anything outside is a startup-fatal configuration.
const (
	MinGridSize = 2
	MaxGridSize = 512
)

// SnakeConfig contains all configuration for the game.
type SnakeConfig struct {
	Grid       GridConfig       `yaml:"grid"`
	Snake      StartConfig      `yaml:"snake"`
	Timing     TimingConfig     `yaml:"timing"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Snapshot   SnapshotConfig   `yaml:"snapshot"`
}

// GridConfig defines the playfield size in cells.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// StartConfig defines how the snake is spawned.
type StartConfig struct {
	Start     *StartCell `yaml:"start,omitempty"` // nil means grid center
	Length    int        `yaml:"length"`
	Direction string     `yaml:"direction"` // up, down, left or right
}

// StartCell is the head's starting cell, (0,0) being the top-left corner.
type StartCell struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// TimingConfig defines the frame rate and how many frames make a game tick.
type TimingConfig struct {
	TickRate       int `yaml:"tick_rate"`
	MoveEveryTicks int `yaml:"move_every_ticks"`
}

// SnapshotConfig defines where and how board images are written.
type SnapshotConfig struct {
	Dir    string `yaml:"dir"`
	CellPx int    `yaml:"cell_px"`
	Scale  int    `yaml:"scale"`
}

// DifficultyConfig defines the speed ramp.
type DifficultyConfig struct {
	Enabled           bool              `yaml:"enabled"`
	InitialLevel      float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	MinMoveEveryTicks int               `yaml:"min_move_every_ticks"`
	Progression       ProgressionConfig `yaml:"progression"`
}

// ProgressionConfig defines what drives the difficulty level.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string is accepted and
// means "leave the config alone".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(s)); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *SnakeConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}

var validDirections = map[string]bool{"up": true, "down": true, "left": true, "right": true}

var validProgressions = map[string]bool{"score": true, "time": true, "none": true}

// Validate checks the config for values the game cannot run with.
// All problems are reported together.
func (c SnakeConfig) Validate() error {
	var errs []error

	if c.Grid.Width < MinGridSize || c.Grid.Width > MaxGridSize ||
		c.Grid.Height < MinGridSize || c.Grid.Height > MaxGridSize {
		errs = append(errs, fmt.Errorf("grid %dx%d out of range [%d, %d]",
			c.Grid.Width, c.Grid.Height, MinGridSize, MaxGridSize))
	}
	if c.Snake.Length < 1 {
		errs = append(errs, fmt.Errorf("snake length %d must be at least 1", c.Snake.Length))
	}
	if !validDirections[strings.ToLower(c.Snake.Direction)] {
		errs = append(errs, fmt.Errorf("unknown snake direction %q", c.Snake.Direction))
	}
	if c.Timing.TickRate < 1 || c.Timing.TickRate > 240 {
		errs = append(errs, fmt.Errorf("tick_rate %d out of range [1, 240]", c.Timing.TickRate))
	}
	if c.Timing.MoveEveryTicks < 1 {
		errs = append(errs, fmt.Errorf("move_every_ticks %d must be at least 1", c.Timing.MoveEveryTicks))
	}
	if c.Difficulty.Enabled {
		if c.Difficulty.MinMoveEveryTicks < 1 || c.Difficulty.MinMoveEveryTicks > c.Timing.MoveEveryTicks {
			errs = append(errs, fmt.Errorf("min_move_every_ticks %d out of range [1, %d]",
				c.Difficulty.MinMoveEveryTicks, c.Timing.MoveEveryTicks))
		}
		if !validProgressions[c.Difficulty.Progression.Type] {
			errs = append(errs, fmt.Errorf("unknown progression type %q", c.Difficulty.Progression.Type))
		}
		if c.Difficulty.InitialLevel < 0 || c.Difficulty.InitialLevel > 1 {
			errs = append(errs, fmt.Errorf("initial_level %.2f out of range [0, 1]", c.Difficulty.InitialLevel))
		}
	}
	if c.Snapshot.CellPx < 1 || c.Snapshot.Scale < 1 {
		errs = append(errs, fmt.Errorf("snapshot cell_px and scale must be at least 1"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}
