// Package snake implements the Snake game: a snake moving on a fixed grid,
// growing when it eats food and dying on walls or its own body.
package snake

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// hudHeight is the number of screen rows above the board.
const hudHeight = 2

// Outcome describes what a single game tick did.
type Outcome int

const (
	OutcomeNone  Outcome = iota // Run already over, nothing happened
	OutcomeMoved                // Plain move, tail dropped
	OutcomeAte                  // Ate food and grew
	OutcomeDied                 // Hit a wall or the body
	OutcomeWon                  // Ate the last free cell
)

// Game implements the Snake game.
type Game struct {
	cfg     config.SnakeConfig
	pending *config.SnakeConfig // Applied on the next Reset

	grid       Grid
	start      Position
	startDir   Direction
	rng        *rand.Rand
	snake      *Snake
	food       *FoodSpawner
	difficulty *config.DifficultyManager

	frame      uint64
	ticks      uint64
	score      int
	moveEvery  int
	moveTicker int
	nextDir    Direction // Buffered direction for next move

	// Screen layout
	screenW int
	screenH int
	origin  Position // Screen position of cell (0,0)

	gameOver bool
	won      bool
	paused   bool
	tooSmall bool
}

// NewGame validates cfg and creates a game. The game is ready after Reset.
func NewGame(cfg config.SnakeConfig) (*Game, error) {
	g := &Game{}
	if err := g.apply(cfg); err != nil {
		return nil, err
	}
	return g, nil
}

// apply validates cfg and makes it the active configuration.
func (g *Game) apply(cfg config.SnakeConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	grid, err := NewGrid(cfg.Grid.Width, cfg.Grid.Height)
	if err != nil {
		return err
	}
	dir, err := ParseDirection(cfg.Snake.Direction)
	if err != nil {
		return err
	}

	start := grid.Center()
	if s := cfg.Snake.Start; s != nil {
		start = Position{X: s.X, Y: s.Y}
	}

	// The whole initial body must fit
	for _, seg := range NewSnake(start, cfg.Snake.Length, dir).Segments() {
		if !grid.Contains(seg.Pos) {
			return fmt.Errorf("snake: initial snake of length %d at %v facing %s leaves the %dx%d grid",
				cfg.Snake.Length, start, dir, grid.Width, grid.Height)
		}
	}
	if cfg.Snake.Length >= grid.Area() {
		return fmt.Errorf("snake: initial length %d leaves no room for food", cfg.Snake.Length)
	}

	g.cfg = cfg
	g.grid = grid
	g.start = start
	g.startDir = dir
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	return nil
}

// Configure validates cfg and schedules it for the next Reset.
func (g *Game) Configure(cfg config.SnakeConfig) error {
	scratch := &Game{}
	if err := scratch.apply(cfg); err != nil {
		return err
	}
	g.pending = &cfg
	return nil
}

// Config returns the active configuration.
func (g *Game) Config() config.SnakeConfig {
	return g.cfg
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Reset starts a new run.
func (g *Game) Reset(rc core.RuntimeConfig) {
	if g.pending != nil {
		// Configure ran the same checks, so this cannot fail
		if err := g.apply(*g.pending); err != nil {
			panic(fmt.Sprintf("snake: staged config rejected on reset: %v", err))
		}
		g.pending = nil
	}

	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.frame = 0
	g.ticks = 0
	g.score = 0
	g.moveTicker = 0
	g.gameOver = false
	g.won = false
	g.paused = false

	g.snake = NewSnake(g.start, g.cfg.Snake.Length, g.startDir)
	g.nextDir = g.startDir
	g.moveEvery = g.difficulty.MoveInterval(g.cfg.Timing.MoveEveryTicks, 0, 0)

	g.food = NewFoodSpawner(g.rng)
	g.food.Relocate(g.grid, g.snake)

	g.Resize(rc.ScreenW, rc.ScreenH)
}

// Resize adapts the layout to a new terminal size without touching the run.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h

	// Board plus its border, below the HUD
	requiredW := g.grid.Width + 2
	requiredH := g.grid.Height + 2 + hudHeight
	g.tooSmall = w < requiredW || h < requiredH

	g.origin = Position{
		X: core.Clamp((w-g.grid.Width)/2, 1, w),
		Y: hudHeight + 1 + core.Clamp((h-requiredH)/2, 0, h),
	}
}

// Step advances the game by one frame. Direction input is buffered every
// frame, the snake moves once every moveEvery frames.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.frame++

	if input.Has(core.ActionRestart) && (g.gameOver || g.won) {
		g.Reset(core.RuntimeConfig{
			Seed:    g.rng.Int63(),
			ScreenW: g.screenW,
			ScreenH: g.screenH,
		})
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) && !g.gameOver && !g.won {
		g.paused = !g.paused
	}

	if g.gameOver || g.won || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if d, ok := directionFor(input.Direction); ok {
		g.Steer(d)
	}

	var res core.StepResult
	g.moveTicker++
	if g.moveTicker >= g.moveEvery {
		g.moveTicker = 0
		switch g.Tick() {
		case OutcomeAte, OutcomeWon:
			res.Ate = true
		case OutcomeDied:
			res.Died = true
		}
	}
	res.State = g.State()
	return res
}

// directionFor maps a direction action to a Direction.
func directionFor(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionUp:
		return DirUp, true
	case core.ActionDown:
		return DirDown, true
	case core.ActionLeft:
		return DirLeft, true
	case core.ActionRight:
		return DirRight, true
	}
	return 0, false
}

// Steer buffers d for the next tick. The latest accepted input wins;
// the opposite of the current heading is ignored.
func (g *Game) Steer(d Direction) bool {
	if d.IsOpposite(g.snake.Direction()) {
		return false
	}
	g.nextDir = d
	return true
}

// Tick performs one game tick: turn, move, collide, eat.
func (g *Game) Tick() Outcome {
	if g.gameOver || g.won {
		return OutcomeNone
	}
	g.ticks++

	g.snake.Turn(g.nextDir)
	newHead := g.snake.NextHead()

	if !g.grid.Contains(newHead) || g.snake.HitsBody(newHead) {
		g.gameOver = true
		return OutcomeDied
	}

	food, hasFood := g.food.Food()
	ate := hasFood && newHead == food
	if ate {
		g.snake.Grow()
	}
	g.snake.Advance(newHead)

	if !ate {
		g.updateSpeed()
		return OutcomeMoved
	}

	g.score++
	g.updateSpeed()
	if !g.food.Relocate(g.grid, g.snake) {
		g.won = true
		return OutcomeWon
	}
	return OutcomeAte
}

func (g *Game) updateSpeed() {
	g.moveEvery = g.difficulty.MoveInterval(g.cfg.Timing.MoveEveryTicks, g.score, int(g.ticks))
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver || g.won,
		Paused:   g.paused,
	}
}

// Grid returns the playfield.
func (g *Game) Grid() Grid {
	return g.grid
}

// Snake returns the live snake state.
func (g *Game) Snake() *Snake {
	return g.snake
}

// Food returns the food cell and whether one is on the board.
func (g *Game) Food() (Position, bool) {
	return g.food.Food()
}
