package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the built-in configuration.
// It mirrors defaults/snake.yaml and backs partial user files.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: GridConfig{
			Width:  30,
			Height: 15,
		},
		Snake: StartConfig{
			Length:    3,
			Direction: "right",
		},
		Timing: TimingConfig{
			TickRate:       60,
			MoveEveryTicks: 6,
		},
		Difficulty: DifficultyConfig{
			Enabled:           true,
			InitialLevel:      0.0,
			MinMoveEveryTicks: 2,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 40,
			},
		},
		Snapshot: SnapshotConfig{
			Dir:    "~/.snake/snapshots",
			CellPx: 8,
			Scale:  2,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
