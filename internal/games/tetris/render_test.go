package tetris

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

func renderGame(g *Game, w, h int) *core.Screen {
	s := core.NewScreen(w, h)
	g.Render(s)
	return s
}

func TestRenderLayout(t *testing.T) {
	g, _ := newTestGame(1)
	s := renderGame(g, 80, 24)

	// Panel starts after the bordered board: 2 + 12*2 + 2.
	const panelX = 28
	tests := []struct {
		y    int
		want string
	}{
		{2, "TETRIS"},
		{4, "Score: 0"},
		{5, "Level: 1"},
		{6, "Lines: 0"},
		{8, "Next:"},
		{controlsY, "Controls:"},
		{22, "Theme: Green"},
	}
	for _, tt := range tests {
		row := s.Row(tt.y)
		if got := string([]rune(row)[panelX : panelX+len(tt.want)]); got != tt.want {
			t.Errorf("row %d at x=%d: got %q, want %q (row %q)", tt.y, panelX, got, tt.want, row)
		}
	}
}

func TestRenderBoard(t *testing.T) {
	g, _ := newTestGame(1)
	s := renderGame(g, 80, 24)

	if c := s.GetCell(2, 2); c.Rune != '[' || c.Color != core.ColorWhite {
		t.Errorf("top-left border = %+v, want white '['", c)
	}
	if c := s.GetCell(3, 23); c.Rune != ']' {
		t.Errorf("bottom-left border = %+v, want ']'", c)
	}

	// The O at spawn column 4 lands at screen x = 2 + 5*2.
	if c := s.GetCell(12, 3); c.Rune != '[' || c.Color != core.ColorBrightGreen {
		t.Errorf("current piece cell = %+v", c)
	}
	if c := s.GetCell(12, 5); c.Rune != ' ' {
		t.Errorf("empty playfield cell = %+v", c)
	}

	// Next preview is an O at the panel origin.
	if c := s.GetCell(28, previewY); c.Rune != '[' {
		t.Errorf("preview cell = %+v", c)
	}
}

func TestRenderLockedCells(t *testing.T) {
	g, _ := newTestGame(1)
	g.board.grid[19][0] = KindZ
	s := renderGame(g, 80, 24)

	if c := s.GetCell(4, 22); c.Rune != '[' || c.Color != core.ColorBrightGreen {
		t.Errorf("locked cell = %+v", c)
	}
}

func TestRenderAmberTheme(t *testing.T) {
	g, _ := newTestGame(1)
	g.ToggleTheme()
	s := renderGame(g, 80, 24)

	if c := s.GetCell(2, 2); c.Color != core.ColorBrightYellow {
		t.Errorf("amber border color = %v", c.Color)
	}
	if c := s.GetCell(12, 3); c.Color != core.ColorAmber {
		t.Errorf("amber block color = %v", c.Color)
	}
	if c := s.GetCell(28, 2); c.Color != core.ColorYellow {
		t.Errorf("amber text color = %v", c.Color)
	}
	if !strings.Contains(s.Row(22), "Theme: Amber") {
		t.Errorf("theme line = %q", s.Row(22))
	}
}

func TestRenderStatusLine(t *testing.T) {
	g, _ := newTestGame(1)

	if row := renderGame(g, 80, 24).Row(1); strings.TrimSpace(row) != "" {
		t.Errorf("active game should have no status, got %q", row)
	}

	g.TogglePause()
	if row := renderGame(g, 80, 24).Row(1); !strings.Contains(row, "PAUSED") {
		t.Errorf("status row = %q, want PAUSED", row)
	}

	g.gameOver = true
	if row := renderGame(g, 80, 24).Row(1); !strings.Contains(row, "GAME OVER") {
		t.Errorf("status row = %q, want GAME OVER", row)
	}
}

func TestRenderSkipsCellsAboveTop(t *testing.T) {
	g, _ := newTestGame(1)
	g.current.Y = -1
	s := renderGame(g, 80, 24)

	// Row -1 of the piece would overwrite the top border.
	if c := s.GetCell(12, 2); c.Color != core.ColorWhite {
		t.Errorf("border overwritten: %+v", c)
	}
	if c := s.GetCell(12, 3); c.Rune != '[' {
		t.Errorf("visible half of the piece missing: %+v", c)
	}
}

func TestRenderTooSmall(t *testing.T) {
	g, _ := newTestGame(1)

	for _, size := range [][2]int{{40, 24}, {80, 10}} {
		s := renderGame(g, size[0], size[1])
		out := s.String()
		if !strings.Contains(out, "Window too small") || !strings.Contains(out, "Please resize terminal") {
			t.Errorf("%dx%d: expected resize message, got:\n%s", size[0], size[1], out)
		}
		if strings.Contains(out, "TETRIS") {
			t.Errorf("%dx%d: board should not be drawn", size[0], size[1])
		}
	}
}

func TestRenderMinimumSize(t *testing.T) {
	g, _ := newTestGame(1)
	s := renderGame(g, 48, 24)

	if strings.Contains(s.String(), "Window too small") {
		t.Error("48x24 should fit a 10x20 board")
	}
}
