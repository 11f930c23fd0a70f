package snake

import "math/rand"

// Occupancy is the set of cells food must avoid.
type Occupancy interface {
	Occupies(p Position) bool
	Len() int
}

// denseRatio is the free-cell fraction below which spawning switches from
// random retries to picking among the enumerated free cells.
const denseRatio = 8

// FoodSpawner owns the single food item and relocates it when eaten.
type FoodSpawner struct {
	rng    *rand.Rand
	pos    Position
	placed bool
}

// NewFoodSpawner creates a spawner drawing from rng.
func NewFoodSpawner(rng *rand.Rand) *FoodSpawner {
	return &FoodSpawner{rng: rng}
}

// Food returns the current food cell and whether one is on the board.
func (f *FoodSpawner) Food() (Position, bool) {
	return f.pos, f.placed
}

// Place puts the food on p.
func (f *FoodSpawner) Place(p Position) {
	f.pos = p
	f.placed = true
}

// Relocate moves the food to a uniformly random cell not in occ.
// It returns false and removes the food when every cell is occupied.
func (f *FoodSpawner) Relocate(grid Grid, occ Occupancy) bool {
	free := grid.Area() - occ.Len()
	if free <= 0 {
		f.placed = false
		return false
	}

	if free*denseRatio >= grid.Area() {
		for {
			p := Position{X: f.rng.Intn(grid.Width), Y: f.rng.Intn(grid.Height)}
			if !occ.Occupies(p) {
				f.Place(p)
				return true
			}
		}
	}

	// Nearly full board: retries would mostly miss, so choose among the free cells.
	cells := make([]Position, 0, free)
	for i := range grid.Area() {
		if p := grid.At(i); !occ.Occupies(p) {
			cells = append(cells, p)
		}
	}
	if len(cells) == 0 {
		f.placed = false
		return false
	}
	f.Place(cells[f.rng.Intn(len(cells))])
	return true
}
