package tui

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// stubGame records the frames it is stepped with.
type stubGame struct {
	resets int
	frames []core.InputFrame
	state  core.GameState
	level  int
	lines  int
}

func (g *stubGame) ID() string { return "stub" }
func (g *stubGame) Title() string { return "Stub" }

func (g *stubGame) Reset(core.RuntimeConfig) { g.resets++ }

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in.Clone())
	if in.Has(core.ActionPause) {
		g.state.Paused = !g.state.Paused
	}
	return core.StepResult{State: g.state}
}

func (g *stubGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "STUB")
}

func (g *stubGame) State() core.GameState { return g.state }
func (g *stubGame) Level() int { return g.level }
func (g *stubGame) Lines() int { return g.lines }

func newTestModel(g *stubGame) (Model, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	cfg := core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 20, Seed: 1}
	return NewModel(g, cfg, logger), &buf
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	mm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return mm, cmd
}

func TestNewModelDefaults(t *testing.T) {
	m := NewModel(&stubGame{}, core.RuntimeConfig{ScreenW: 10, ScreenH: 5}, nil)

	if m.config.Seed == 0 {
		t.Error("zero seed should be replaced")
	}
	if m.config.TickRate != core.DefaultTickRate {
		t.Errorf("TickRate = %d, want %d", m.config.TickRate, core.DefaultTickRate)
	}
	if m.logger == nil {
		t.Error("nil logger should be replaced")
	}
}

func TestInitResetsGame(t *testing.T) {
	g := &stubGame{}
	m, buf := newTestModel(g)

	if cmd := m.Init(); cmd == nil {
		t.Error("Init should start the tick loop")
	}
	if g.resets != 1 {
		t.Errorf("resets = %d, want 1", g.resets)
	}
	if !strings.Contains(buf.String(), "session started") {
		t.Errorf("missing session log: %q", buf.String())
	}
}

func TestKeysAreAppliedOnTick(t *testing.T) {
	g := &stubGame{}
	m, _ := newTestModel(g)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if len(g.frames) != 0 {
		t.Fatal("game stepped before a tick")
	}

	m, cmd := update(t, m, TickMsg{})
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if len(g.frames) != 1 {
		t.Fatalf("frames = %d, want 1", len(g.frames))
	}
	got := g.frames[0].Ordered()
	if len(got) != 2 || got[0] != core.ActionLeft || got[1] != core.ActionRotate {
		t.Errorf("frame = %v, want [left rotate]", got)
	}

	update(t, m, TickMsg{})
	if n := len(g.frames[1].Ordered()); n != 0 {
		t.Errorf("input not cleared between ticks: %d actions", n)
	}
}

func TestQuit(t *testing.T) {
	g := &stubGame{}
	m, buf := newTestModel(g)

	m, cmd := update(t, m, runeKey('q'))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
	if !strings.Contains(buf.String(), "quit") {
		t.Errorf("missing quit log: %q", buf.String())
	}
}

func TestResizeKeepsGame(t *testing.T) {
	g := &stubGame{}
	m, _ := newTestModel(g)
	m.Init()

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	if g.resets != 1 {
		t.Errorf("resize reset the game (%d resets)", g.resets)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("screen = %dx%d, want 100x30", m.screen.Width(), m.screen.Height())
	}
}

func TestGameOverLoggedOnce(t *testing.T) {
	g := &stubGame{level: 3, lines: 25}
	m, buf := newTestModel(g)

	g.state = core.GameState{Score: 1200, GameOver: true}
	m, _ = update(t, m, TickMsg{})
	update(t, m, TickMsg{})

	out := buf.String()
	if n := strings.Count(out, "game over"); n != 1 {
		t.Errorf("game over logged %d times:\n%s", n, out)
	}
	for _, want := range []string{"score=1200", "level=3", "lines=25"} {
		if !strings.Contains(out, want) {
			t.Errorf("game over log missing %q: %s", want, out)
		}
	}
}

func TestHelpPausesGame(t *testing.T) {
	g := &stubGame{}
	m, _ := newTestModel(g)

	m, _ = update(t, m, runeKey('?'))
	m, _ = update(t, m, TickMsg{})
	if !g.state.Paused {
		t.Fatal("opening help should pause the game")
	}
	if strings.Contains(m.View(), "STUB") {
		t.Error("help view should replace the game")
	}

	m, _ = update(t, m, runeKey('?'))
	m, _ = update(t, m, TickMsg{})
	if g.state.Paused {
		t.Error("closing help should resume the game")
	}
	if !strings.Contains(m.View(), "STUB") {
		t.Error("game should be drawn once help is closed")
	}
}

func TestHelpKeepsManualPause(t *testing.T) {
	g := &stubGame{}
	m, _ := newTestModel(g)

	m, _ = update(t, m, runeKey('p'))
	m, _ = update(t, m, TickMsg{})
	m, _ = update(t, m, runeKey('?'))
	m, _ = update(t, m, runeKey('?'))
	update(t, m, TickMsg{})

	if !g.state.Paused {
		t.Error("closing help must not resume a game paused by the player")
	}
}

func TestScreenshot(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	g := &stubGame{}
	m, _ := newTestModel(g)

	update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	files, err := filepath.Glob(filepath.Join(home, ".tetris", "screenshots", "stub_*.txt"))
	if err != nil || len(files) != 1 {
		t.Fatalf("screenshots = %v, %v", files, err)
	}
	data, err := os.ReadFile(files[0])
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "STUB") {
		t.Errorf("screenshot content = %q", data)
	}
}

func TestTickInterval(t *testing.T) {
	if got := TickInterval(20); got.Milliseconds() != 50 {
		t.Errorf("TickInterval(20) = %v, want 50ms", got)
	}
	if TickInterval(0) != TickInterval(core.DefaultTickRate) {
		t.Error("non-positive rate should use the default")
	}
}
