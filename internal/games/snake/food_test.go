package snake

import (
	"math/rand"
	"testing"
)

func TestRelocateAvoidsOccupiedCells(t *testing.T) {
	grid := Grid{Width: 10, Height: 10}
	s := NewSnake(Position{5, 5}, 6, DirRight)

	for seed := range int64(200) {
		f := NewFoodSpawner(rand.New(rand.NewSource(seed)))
		if !f.Relocate(grid, s) {
			t.Fatalf("seed %d: relocate failed on a mostly empty board", seed)
		}
		p, ok := f.Food()
		if !ok {
			t.Fatalf("seed %d: food not placed", seed)
		}
		if s.Occupies(p) {
			t.Errorf("seed %d: food on snake at %v", seed, p)
		}
		if !grid.Contains(p) {
			t.Errorf("seed %d: food out of bounds at %v", seed, p)
		}
	}
}

func TestRelocateNearlyFullBoard(t *testing.T) {
	grid := Grid{Width: 3, Height: 3}
	// Snake covers everything except (2,2)
	body := []Position{{0, 0}, {1, 0}, {2, 0}, {2, 1}, {1, 1}, {0, 1}, {0, 2}, {1, 2}}
	s := newSnakeFrom(body, DirRight)

	f := NewFoodSpawner(rand.New(rand.NewSource(7)))
	if !f.Relocate(grid, s) {
		t.Fatal("one free cell left, relocate should succeed")
	}
	if p, _ := f.Food(); p != (Position{2, 2}) {
		t.Errorf("food = %v, expected the only free cell (2,2)", p)
	}
}

func TestRelocateFullBoard(t *testing.T) {
	grid := Grid{Width: 2, Height: 2}
	s := newSnakeFrom([]Position{{0, 0}, {1, 0}, {1, 1}, {0, 1}}, DirLeft)

	f := NewFoodSpawner(rand.New(rand.NewSource(1)))
	f.Place(Position{0, 0})
	if f.Relocate(grid, s) {
		t.Error("relocate should fail when every cell is occupied")
	}
	if _, ok := f.Food(); ok {
		t.Error("food should be removed from a full board")
	}
}

func TestRelocateReachesEveryFreeCell(t *testing.T) {
	grid := Grid{Width: 4, Height: 4}
	s := NewSnake(Position{2, 1}, 3, DirRight)
	f := NewFoodSpawner(rand.New(rand.NewSource(99)))

	seen := make(map[Position]bool)
	for range 2000 {
		f.Relocate(grid, s)
		p, _ := f.Food()
		seen[p] = true
	}
	if want := grid.Area() - s.Len(); len(seen) != want {
		t.Errorf("food visited %d cells, expected all %d free cells", len(seen), want)
	}
}
