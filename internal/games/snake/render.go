package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small",
			fmt.Sprintf("Need %dx%d", g.grid.Width+2, g.grid.Height+2+hudHeight))
		return
	}

	border := core.NewRect(g.origin.X-1, g.origin.Y-1, g.grid.Width+2, g.grid.Height+2)
	dst.DrawBox(border, core.ColorGray)

	if food, ok := g.food.Food(); ok {
		x, y := g.grid.ScreenCell(food, g.origin)
		dst.SetColor(x, y, '*', core.ColorBrightRed)
	}

	// Body first so the head wins if anything overlaps
	segs := g.snake.Segments()
	for i := len(segs) - 1; i >= 0; i-- {
		x, y := g.grid.ScreenCell(segs[i].Pos, g.origin)
		if segs[i].Index == 0 {
			dst.SetColor(x, y, '@', core.ColorBrightGreen)
		} else {
			dst.SetColor(x, y, 'o', core.ColorGreen)
		}
	}

	switch {
	case g.won:
		g.renderOverlay(dst, "You Win!", fmt.Sprintf("Final Score: %d  R to restart", g.score))
	case g.gameOver:
		g.renderOverlay(dst, "Game Over", fmt.Sprintf("Score: %d  R to restart", g.score))
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Snake — Score: %d  Length: %d  Speed: %d",
		g.score, g.snake.Len(), g.cfg.Timing.MoveEveryTicks-g.moveEvery+1)
	dst.DrawTextColor(0, 0, hud, core.ColorBrightWhite)
	dst.DrawHLine(0, 1, dst.Width(), '─', core.ColorGray)
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := max(len([]rune(line1)), len([]rune(line2))) + 4
	h := 5
	box := core.NewRect((dst.Width()-w)/2, (dst.Height()-h)/2, w, h)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorYellow)
	dst.DrawTextCentered(box.Y+1, line1, core.ColorYellow)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorDefault)
}
