// Package tetris implements the falling-block puzzle game: the piece catalog,
// the playfield with collision and line clearing, and the game state machine
// that drives them.
package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Kind identifies one of the seven piece shapes. KindNone marks an empty cell.
type Kind uint8

const (
	KindNone Kind = iota
	KindI
	KindO
	KindT
	KindS
	KindZ
	KindJ
	KindL
)

// AllKinds lists every drawable kind in catalog order.
var AllKinds = [...]Kind{KindI, KindO, KindT, KindS, KindZ, KindJ, KindL}

// String returns the single-letter tag of the kind.
func (k Kind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindO:
		return "O"
	case KindT:
		return "T"
	case KindS:
		return "S"
	case KindZ:
		return "Z"
	case KindJ:
		return "J"
	case KindL:
		return "L"
	default:
		return "."
	}
}

// ParseKind converts a single-letter tag back into a Kind.
func ParseKind(s string) (Kind, error) {
	for _, k := range AllKinds {
		if k.String() == s {
			return k, nil
		}
	}
	return KindNone, fmt.Errorf("tetris: unknown piece kind %q", s)
}

// Shape is one rotation frame: a square grid whose occupied cells carry the
// piece kind. Frames come from the shared catalog and are read-only.
type Shape struct {
	size  int
	cells []Kind // row-major, size*size
}

// Size returns the edge length of the frame's bounding box.
func (s Shape) Size() int {
	return s.size
}

// At returns the kind stored at (col, row), or KindNone outside the frame.
func (s Shape) At(col, row int) Kind {
	if col < 0 || row < 0 || col >= s.size || row >= s.size {
		return KindNone
	}
	return s.cells[row*s.size+col]
}

// Occupied reports whether (col, row) holds a block.
func (s Shape) Occupied(col, row int) bool {
	return s.At(col, row) != KindNone
}

// Offsets returns the frame-relative positions of every occupied cell,
// scanning rows top to bottom.
func (s Shape) Offsets() []core.Point {
	pts := make([]core.Point, 0, 4)
	for row := range s.size {
		for col := range s.size {
			if s.Occupied(col, row) {
				pts = append(pts, core.Point{X: col, Y: row})
			}
		}
	}
	return pts
}

// parseShape builds a frame from rows of '.' (empty) and any other byte (block).
func parseShape(kind Kind, rows ...string) Shape {
	s := Shape{size: len(rows), cells: make([]Kind, len(rows)*len(rows))}
	for y, row := range rows {
		if len(row) != len(rows) {
			panic(fmt.Sprintf("tetris: frame for %s is not square", kind))
		}
		for x := range len(row) {
			if row[x] != '.' {
				s.cells[y*s.size+x] = kind
			}
		}
	}
	return s
}

// catalog holds the rotation frames for every kind, clockwise order.
// Index 0 (KindNone) is a single empty frame so lookups never divide by zero.
var catalog = [...][]Shape{
	KindNone: {{size: 0}},
	KindI: {
		parseShape(KindI, "....", "IIII", "....", "...."),
		parseShape(KindI, "..I.", "..I.", "..I.", "..I."),
		parseShape(KindI, "....", "....", "IIII", "...."),
		parseShape(KindI, ".I..", ".I..", ".I..", ".I.."),
	},
	KindO: {
		parseShape(KindO, "OO", "OO"),
	},
	KindT: {
		parseShape(KindT, ".T.", "TTT", "..."),
		parseShape(KindT, ".T.", ".TT", ".T."),
		parseShape(KindT, "...", "TTT", ".T."),
		parseShape(KindT, ".T.", "TT.", ".T."),
	},
	KindS: {
		parseShape(KindS, ".SS", "SS.", "..."),
		parseShape(KindS, ".S.", ".SS", "..S"),
	},
	KindZ: {
		parseShape(KindZ, "ZZ.", ".ZZ", "..."),
		parseShape(KindZ, "..Z", ".ZZ", ".Z."),
	},
	KindJ: {
		parseShape(KindJ, "J..", "JJJ", "..."),
		parseShape(KindJ, ".JJ", ".J.", ".J."),
		parseShape(KindJ, "...", "JJJ", "..J"),
		parseShape(KindJ, ".J.", ".J.", "JJ."),
	},
	KindL: {
		parseShape(KindL, "..L", "LLL", "..."),
		parseShape(KindL, ".L.", ".L.", ".LL"),
		parseShape(KindL, "...", "LLL", "L.."),
		parseShape(KindL, "LL.", ".L.", ".L."),
	},
}

// Frames returns the rotation frames of a kind. Unknown kinds get the empty frame.
func Frames(k Kind) []Shape {
	if int(k) >= len(catalog) {
		return catalog[KindNone]
	}
	return catalog[k]
}

// Piece is a kind in a given orientation, positioned by the top-left corner
// of its bounding box in board coordinates. It is a plain value: copying it
// never aliases state.
type Piece struct {
	Kind     Kind
	Rotation uint
	X        int
	Y        int
}

// NewPiece returns a piece of the given kind at the spawn point.
func NewPiece(k Kind) Piece {
	return Piece{Kind: k, X: SpawnX, Y: SpawnY}
}

// Shape returns the active frame. The rotation index is reduced modulo the
// frame count, so any value is safe.
func (p Piece) Shape() Shape {
	frames := Frames(p.Kind)
	return frames[p.Rotation%uint(len(frames))]
}

// Rotated returns a copy turned one step clockwise. Legality is not checked.
func (p Piece) Rotated() Piece {
	p.Rotation = (p.Rotation + 1) % uint(len(Frames(p.Kind)))
	return p
}

// Cells returns the absolute board positions of the occupied cells.
func (p Piece) Cells() []core.Point {
	offsets := p.Shape().Offsets()
	origin := core.Point{X: p.X, Y: p.Y}
	for i := range offsets {
		offsets[i] = offsets[i].Add(origin)
	}
	return offsets
}
