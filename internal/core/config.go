package core

// RuntimeConfig is handed to the game on every Reset.
// It carries the terminal size and the seed used for deterministic runs.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second delivered by the platform
	Seed     int64 // RNG seed, 0 means the platform picks one
}

// DefaultConfig returns a RuntimeConfig for a classic 80x24 terminal.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is the coarse status the platform needs after each frame.
type GameState struct {
	Score    int
	GameOver bool
	Paused   bool
}

// StepResult is returned by every Step call.
type StepResult struct {
	State GameState
	Ate   bool // Food was eaten during this frame
	Died  bool // The run ended during this frame
}
