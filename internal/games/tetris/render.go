package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Layout of the playfield and info panel on screen.
const (
	boardOriginX = 2
	boardOriginY = 2
	cellWidth    = 2 // Every block is drawn as "[]"
	panelGap     = 2
	panelWidth   = 20
	previewY     = 10
	controlsY    = 13
)

// palette holds the colors of one theme.
type palette struct {
	text   core.Color
	block  core.Color
	border core.Color
}

var palettes = map[Theme]palette{
	ThemeGreen: {text: core.ColorGreen, block: core.ColorBrightGreen, border: core.ColorWhite},
	ThemeAmber: {text: core.ColorYellow, block: core.ColorAmber, border: core.ColorBrightYellow},
}

// Render draws the board, the falling piece and the info panel.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	pal := palettes[g.theme]

	if g.tooSmall(dst) {
		g.renderTooSmall(dst)
		return
	}

	g.renderBoard(dst, pal)
	g.renderPanel(dst, pal, g.panelX())
}

func (g *Game) panelX() int {
	return boardOriginX + (g.board.Width()+2)*cellWidth + panelGap
}

// tooSmall reports whether the screen cannot hold the board and panel.
func (g *Game) tooSmall(dst *core.Screen) bool {
	minW := g.panelX() + panelWidth
	minH := boardOriginY + g.board.Height() + 2
	return dst.Width() < minW || dst.Height() < minH
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	const hint = "Please resize terminal"
	boxW, boxH := len(hint)+4, 4

	y := dst.Height()/2 - 1
	if dst.Width() >= boxW && dst.Height() >= boxH {
		y = core.Clamp(y, 0, dst.Height()-boxH)
		dst.DrawBox(core.NewRect((dst.Width()-boxW)/2, y, boxW, boxH))
	}
	dst.DrawTextCentered(y+1, "Window too small")
	dst.DrawTextCentered(y+2, hint)
}

// block draws one two-column cell at board coordinates (bx, by), where the
// border occupies column and row -1.
func block(dst *core.Screen, bx, by int, text string, c core.Color) {
	sx := boardOriginX + (bx+1)*cellWidth
	sy := boardOriginY + by + 1
	dst.DrawTextColored(sx, sy, text, c)
}

func (g *Game) renderBoard(dst *core.Screen, pal palette) {
	w, h := g.board.Width(), g.board.Height()

	for y := -1; y <= h; y++ {
		for x := -1; x <= w; x++ {
			if y == -1 || y == h || x == -1 || x == w {
				block(dst, x, y, "[]", pal.border)
			}
		}
	}

	for y := range h {
		for x := range w {
			if g.board.Cell(x, y) != KindNone {
				block(dst, x, y, "[]", pal.block)
			}
		}
	}

	if g.current == nil {
		return
	}
	for _, pt := range g.current.Cells() {
		if pt.Y < 0 {
			continue
		}
		block(dst, pt.X, pt.Y, "[]", pal.block)
	}
}

func (g *Game) renderPanel(dst *core.Screen, pal palette, x int) {
	switch {
	case g.gameOver:
		dst.DrawTextColored(x, 1, "GAME OVER", pal.text)
	case g.paused:
		dst.DrawTextColored(x, 1, "PAUSED", pal.text)
	}

	dst.DrawTextColored(x, 2, "TETRIS", pal.text)
	dst.DrawTextColored(x, 4, fmt.Sprintf("Score: %d", g.score), pal.text)
	dst.DrawTextColored(x, 5, fmt.Sprintf("Level: %d", g.level), pal.text)
	dst.DrawTextColored(x, 6, fmt.Sprintf("Lines: %d", g.lines), pal.text)

	dst.DrawTextColored(x, 8, "Next:", pal.text)
	if g.next != nil {
		shape := g.next.Shape()
		for _, off := range shape.Offsets() {
			dst.DrawTextColored(x+off.X*cellWidth, previewY+off.Y, "[]", pal.block)
		}
	}

	controls := []string{
		"Controls:",
		"Arrow keys: Move",
		"Up: Rotate",
		"Space: Hard drop",
		"P: Pause",
		"R: Restart",
		"T: Toggle theme",
		"Q: Quit",
	}
	for i, line := range controls {
		dst.DrawTextColored(x, controlsY+i, line, pal.text)
	}

	dst.DrawTextColored(x, controlsY+len(controls)+1, "Theme: "+g.themeTitle(), pal.text)
}

func (g *Game) themeTitle() string {
	if g.theme == ThemeAmber {
		return "Amber"
	}
	return "Green"
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "←/→: Move | ↑: Rotate | ↓: Soft drop | Space: Hard drop | P: Pause | R: Restart | T: Theme | Q: Quit"
}
