package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// Default playfield dimensions.
const (
	DefaultWidth  = 10
	DefaultHeight = 20
)

// Board is the playfield: a fixed grid of locked blocks. Row 0 is the top.
// Dimensions never change after construction.
type Board struct {
	width  int
	height int
	grid   [][]Kind
}

// NewBoard creates an empty board of the given size.
func NewBoard(width, height int) *Board {
	b := &Board{width: width, height: height}
	b.grid = make([][]Kind, height)
	for y := range b.grid {
		b.grid[y] = make([]Kind, width)
	}
	return b
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.width
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.height
}

// Cell returns the kind locked at (x, y), or KindNone outside the grid.
func (b *Board) Cell(x, y int) Kind {
	if !b.inside(x, y) {
		return KindNone
	}
	return b.grid[y][x]
}

// Row returns a copy of row y.
func (b *Board) Row(y int) []Kind {
	row := make([]Kind, b.width)
	if y >= 0 && y < b.height {
		copy(row, b.grid[y])
	}
	return row
}

func (b *Board) inside(x, y int) bool {
	return core.NewRect(0, 0, b.width, b.height).Contains(x, y)
}

// Valid reports whether p, shifted by (dx, dy), fits on the board.
// Cells above the top edge are allowed as long as their column is in range;
// they are never checked against the grid.
func (b *Board) Valid(p Piece, dx, dy int) bool {
	shape := p.Shape()
	for row := range shape.Size() {
		for col := range shape.Size() {
			if !shape.Occupied(col, row) {
				continue
			}
			x := p.X + col + dx
			y := p.Y + row + dy

			if x < 0 || x >= b.width || y >= b.height {
				return false
			}
			if y >= 0 && b.grid[y][x] != KindNone {
				return false
			}
		}
	}
	return true
}

// Place writes the piece's blocks into the grid without validating them.
// Cells above the top edge are dropped.
func (b *Board) Place(p Piece) {
	shape := p.Shape()
	for row := range shape.Size() {
		for col := range shape.Size() {
			k := shape.At(col, row)
			if k == KindNone {
				continue
			}
			x, y := p.X+col, p.Y+row
			if b.inside(x, y) {
				b.grid[y][x] = k
			}
		}
	}
}

// ClearLines removes every full row, shifts the rest down keeping their
// order, refills the top with empty rows and returns how many were removed.
func (b *Board) ClearLines() int {
	kept := make([][]Kind, 0, b.height)
	for _, row := range b.grid {
		if !rowFull(row) {
			kept = append(kept, row)
		}
	}

	cleared := b.height - len(kept)
	if cleared == 0 {
		return 0
	}

	grid := make([][]Kind, 0, b.height)
	for range cleared {
		grid = append(grid, make([]Kind, b.width))
	}
	b.grid = append(grid, kept...)
	return cleared
}

func rowFull(row []Kind) bool {
	for _, k := range row {
		if k == KindNone {
			return false
		}
	}
	return true
}

// TopRowOccupied reports whether anything is locked in row 0. It is advisory
// only: the game ends when a spawn fails, not when this returns true.
func (b *Board) TopRowOccupied() bool {
	if b.height == 0 {
		return false
	}
	for _, k := range b.grid[0] {
		if k != KindNone {
			return true
		}
	}
	return false
}
