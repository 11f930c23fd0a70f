package snake

import (
	"fmt"
	"image"

	"github.com/vovakirdan/tui-snake/internal/config"
)

// Position is a cell coordinate on the grid.
type Position struct {
	X, Y int
}

// Add returns p offset by v.
func (p Position) Add(v Position) Position {
	return Position{X: p.X + v.X, Y: p.Y + v.Y}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Grid is the fixed-size playfield. Cell (0,0) is the top-left corner.
type Grid struct {
	Width  int
	Height int
}

// NewGrid returns a grid of the given size, rejecting degenerate dimensions.
func NewGrid(width, height int) (Grid, error) {
	if width < config.MinGridSize || height < config.MinGridSize ||
		width > config.MaxGridSize || height > config.MaxGridSize {
		return Grid{}, fmt.Errorf("snake: grid %dx%d out of range [%d, %d]",
			width, height, config.MinGridSize, config.MaxGridSize)
	}
	return Grid{Width: width, Height: height}, nil
}

// Contains reports whether p is inside the grid.
func (g Grid) Contains(p Position) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Area returns the number of cells.
func (g Grid) Area() int {
	return g.Width * g.Height
}

// Index returns the row-major index of p.
func (g Grid) Index(p Position) int {
	return p.Y*g.Width + p.X
}

// At is the inverse of Index.
func (g Grid) At(i int) Position {
	return Position{X: i % g.Width, Y: i / g.Width}
}

// Center returns the middle cell, rounding toward the top-left.
func (g Grid) Center() Position {
	return Position{X: g.Width / 2, Y: g.Height / 2}
}

// ScreenCell maps p to a terminal column and row, given where cell (0,0) is drawn.
func (g Grid) ScreenCell(p, origin Position) (x, y int) {
	return origin.X + p.X, origin.Y + p.Y
}

// PixelRect maps p to its square in an image with cellPx pixels per cell.
func (g Grid) PixelRect(p Position, cellPx int) image.Rectangle {
	x0, y0 := p.X*cellPx, p.Y*cellPx
	return image.Rect(x0, y0, x0+cellPx, y0+cellPx)
}

// PixelSize returns the image size needed for the whole grid.
func (g Grid) PixelSize(cellPx int) (w, h int) {
	return g.Width * cellPx, g.Height * cellPx
}
