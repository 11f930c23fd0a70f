package snake

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
)

var (
	imgBackground = color.RGBA{R: 0x1c, G: 0x1c, B: 0x1c, A: 0xff}
	imgGridLine   = color.RGBA{R: 0x30, G: 0x30, B: 0x30, A: 0xff}
	imgBody       = color.RGBA{R: 0x2e, G: 0x9e, B: 0x4f, A: 0xff}
	imgHead       = color.RGBA{R: 0x7c, G: 0xf0, B: 0x8a, A: 0xff}
	imgFood       = color.RGBA{R: 0xe8, G: 0x45, B: 0x45, A: 0xff}
)

// RenderImage draws the board with cellPx pixels per cell.
func (g *Game) RenderImage(cellPx int) image.Image {
	cellPx = max(cellPx, 1)
	w, h := g.grid.PixelSize(cellPx)

	dc := gg.NewContext(w, h)
	dc.SetColor(imgBackground)
	dc.Clear()

	if cellPx >= 4 {
		dc.SetColor(imgGridLine)
		dc.SetLineWidth(1)
		for x := 0; x <= w; x += cellPx {
			dc.DrawLine(float64(x), 0, float64(x), float64(h))
			dc.Stroke()
		}
		for y := 0; y <= h; y += cellPx {
			dc.DrawLine(0, float64(y), float64(w), float64(y))
			dc.Stroke()
		}
	}

	if food, ok := g.food.Food(); ok {
		r := g.grid.PixelRect(food, cellPx)
		dc.SetColor(imgFood)
		dc.DrawCircle(float64(r.Min.X)+float64(cellPx)/2, float64(r.Min.Y)+float64(cellPx)/2, float64(cellPx)/2)
		dc.Fill()
	}

	for _, seg := range g.snake.Segments() {
		r := g.grid.PixelRect(seg.Pos, cellPx)
		if seg.Index == 0 {
			dc.SetColor(imgHead)
		} else {
			dc.SetColor(imgBody)
		}
		dc.DrawRectangle(float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()))
		dc.Fill()
	}

	return dc.Image()
}

// SavePNG renders the board and writes it to path, upscaled by scale with
// nearest-neighbor sampling so cells stay crisp.
func (g *Game) SavePNG(path string, cellPx, scale int) error {
	img := g.RenderImage(cellPx)
	if scale > 1 {
		img = imaging.Resize(img, img.Bounds().Dx()*scale, 0, imaging.NearestNeighbor)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("snake: cannot create snapshot directory: %w", err)
	}
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("snake: cannot save snapshot %s: %w", path, err)
	}
	return nil
}
