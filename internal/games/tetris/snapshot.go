package tetris

import "time"

// GameStateType represents the current game state.
type GameStateType string

const (
	StateActive   GameStateType = "active"
	StatePaused   GameStateType = "paused"
	StateGameOver GameStateType = "game_over"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick         uint64
	Score        int
	Level        int
	Lines        int
	Current      Piece
	Next         Piece
	Theme        Theme
	DropInterval time.Duration
	Grid         [][]Kind
	State        GameStateType
}

// Snapshot returns a deep copy of the observable game state.
func (g *Game) Snapshot() Snapshot {
	state := StateActive
	switch {
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	grid := make([][]Kind, g.board.Height())
	for y := range grid {
		grid[y] = g.board.Row(y)
	}

	cur, _ := g.Current()
	next, _ := g.Next()

	return Snapshot{
		Tick:         g.tick,
		Score:        g.score,
		Level:        g.level,
		Lines:        g.lines,
		Current:      cur,
		Next:         next,
		Theme:        g.theme,
		DropInterval: g.dropInterval,
		Grid:         grid,
		State:        state,
	}
}
