package snake

// Phase is the coarse state of a run.
type Phase string

const (
	PhasePlaying     Phase = "playing"
	PhasePaused      Phase = "paused"
	PhaseGameOver    Phase = "game_over"
	PhaseWon         Phase = "won"
	PhasePausedSmall Phase = "paused_small_window"
)

// Snapshot captures the game state for determinism testing and debugging.
type Snapshot struct {
	Frame     uint64
	Tick      uint64
	Score     int
	SnakeLen  int
	Head      Position
	Dir       Direction
	Food      Position
	HasFood   bool
	MoveEvery int
	State     Phase
}

// Phase returns the current phase of the run.
func (g *Game) Phase() Phase {
	switch {
	case g.won:
		return PhaseWon
	case g.gameOver:
		return PhaseGameOver
	case g.tooSmall:
		return PhasePausedSmall
	case g.paused:
		return PhasePaused
	default:
		return PhasePlaying
	}
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	food, hasFood := g.food.Food()
	return Snapshot{
		Frame:     g.frame,
		Tick:      g.ticks,
		Score:     g.score,
		SnakeLen:  g.snake.Len(),
		Head:      g.snake.Head(),
		Dir:       g.snake.Direction(),
		Food:      food,
		HasFood:   hasFood,
		MoveEvery: g.moveEvery,
		State:     g.Phase(),
	}
}
