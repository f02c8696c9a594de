package tetris

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// Spawn point of every new piece (top-left of its bounding box).
const (
	SpawnX = 4
	SpawnY = 0
)

// GameID is the registry identifier of the game.
const GameID = "tetris"

// Theme selects the color palette used by the renderer.
type Theme int

const (
	ThemeGreen Theme = iota
	ThemeAmber
)

// String returns the config name of the theme.
func (t Theme) String() string {
	if t == ThemeAmber {
		return config.ThemeAmber
	}
	return config.ThemeGreen
}

// ParseTheme converts a config name into a Theme.
func ParseTheme(s string) (Theme, error) {
	switch s {
	case config.ThemeGreen, "":
		return ThemeGreen, nil
	case config.ThemeAmber:
		return ThemeAmber, nil
	default:
		return ThemeGreen, fmt.Errorf("tetris: unknown theme %q", s)
	}
}

// Random is the source of piece draws. *rand.Rand satisfies it.
type Random interface {
	Intn(n int) int
}

// Clock supplies the current time to the gravity timer.
type Clock interface {
	Now() time.Time
}

type wallClock struct{}

func (wallClock) Now() time.Time { return time.Now() }

// Game is the game state machine. It owns the board, the falling piece and
// the preview piece, the counters and the gravity timer.
//
// A Game is not safe for concurrent use; exactly one loop should drive it.
type Game struct {
	width  int
	height int

	rng       Random
	fixedRand bool // rng was injected and survives Reset
	clock     Clock

	board   *Board
	current *Piece
	next    *Piece

	score    int
	level    int
	lines    int
	paused   bool
	gameOver bool
	theme    Theme

	lastDrop     time.Time
	dropInterval time.Duration

	tick    uint64
	screenW int
	screenH int
}

// Option configures a Game at construction.
type Option func(*Game)

// WithBoardSize sets the playfield dimensions.
func WithBoardSize(width, height int) Option {
	return func(g *Game) {
		g.width = width
		g.height = height
	}
}

// WithRandom injects the random source used for piece draws.
func WithRandom(r Random) Option {
	return func(g *Game) {
		g.rng = r
		g.fixedRand = true
	}
}

// WithClock injects the time source used by Step.
func WithClock(c Clock) Option {
	return func(g *Game) {
		g.clock = c
	}
}

// WithTheme sets the initial color theme.
func WithTheme(t Theme) Option {
	return func(g *Game) {
		g.theme = t
	}
}

// FromConfig applies board size and theme from a loaded config.
func FromConfig(cfg config.TetrisConfig) Option {
	return func(g *Game) {
		g.width = cfg.Board.Width
		g.height = cfg.Board.Height
		if t, err := ParseTheme(cfg.Display.Theme); err == nil {
			g.theme = t
		}
	}
}

// New creates a game with an empty board and two pieces already drawn.
func New(opts ...Option) *Game {
	g := &Game{
		width:  DefaultWidth,
		height: DefaultHeight,
		clock:  wallClock{},
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	g.Restart()
	return g
}

// activeConfig is applied to games created through the registry.
var activeConfig = config.DefaultTetrisConfig()

// SetConfig sets the config used by registry-created games.
func SetConfig(cfg config.TetrisConfig) {
	activeConfig = cfg
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New(FromConfig(activeConfig))
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetris"
}

// Reset reseeds the piece generator from cfg and restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	if !g.fixedRand {
		g.rng = rand.New(rand.NewSource(cfg.Seed))
	}
	g.tick = 0
	g.Restart()
}

// Restart discards the board and counters and starts a fresh game.
// The theme is kept.
func (g *Game) Restart() {
	g.board = NewBoard(g.width, g.height)
	g.current = nil
	g.next = nil
	g.score = 0
	g.level = 1
	g.lines = 0
	g.paused = false
	g.gameOver = false
	g.lastDrop = g.clock.Now()
	g.dropInterval = BaseDropInterval

	g.SpawnNext()
	g.SpawnNext()
}

func (g *Game) draw() *Piece {
	p := NewPiece(AllKinds[g.rng.Intn(len(AllKinds))])
	return &p
}

// SpawnNext promotes the preview piece to the spawn point and draws a new
// preview. If the promoted piece does not fit, the game is over and the
// piece stays where it is.
func (g *Game) SpawnNext() {
	if g.next == nil {
		g.next = g.draw()
	}

	g.current = g.next
	g.current.X = SpawnX
	g.current.Y = SpawnY
	g.current.Rotation = 0

	g.next = g.draw()

	if !g.board.Valid(*g.current, 0, 0) {
		g.gameOver = true
	}
}

// Move shifts the current piece by (dx, dy) if the target is free.
func (g *Game) Move(dx, dy int) bool {
	if g.current == nil {
		return false
	}
	if !g.board.Valid(*g.current, dx, dy) {
		return false
	}
	g.current.X += dx
	g.current.Y += dy
	return true
}

// SoftDrop moves the current piece down one row, scoring SoftDropPoints on success.
func (g *Game) SoftDrop() bool {
	if !g.Move(0, 1) {
		return false
	}
	g.score += SoftDropPoints
	return true
}

// Rotate turns the current piece clockwise in place. There are no wall
// kicks: a blocked rotation leaves the piece untouched.
func (g *Game) Rotate() bool {
	if g.current == nil {
		return false
	}
	rotated := g.current.Rotated()
	if !g.board.Valid(rotated, 0, 0) {
		return false
	}
	*g.current = rotated
	return true
}

// HardDrop drops the current piece as far as it goes, scoring
// HardDropPoints per row, then locks it.
func (g *Game) HardDrop() {
	if g.current == nil {
		return
	}
	for g.Move(0, 1) {
		g.score += HardDropPoints
	}
	g.Lock()
}

// Lock commits the current piece, clears full rows, updates score, lines,
// level and gravity, and spawns the next piece.
func (g *Game) Lock() {
	if g.current == nil {
		return
	}
	g.board.Place(*g.current)

	if n := g.board.ClearLines(); n > 0 {
		g.lines += n
		g.score += ClearScore(n, g.level)
		g.level = LevelForLines(g.lines)
		g.dropInterval = DropIntervalForLevel(g.level)
	}

	g.SpawnNext()
}

// Update runs gravity. When at least one drop interval has passed since the
// last automatic drop the piece falls a row, or locks if it cannot.
// Does nothing while paused or after game over.
func (g *Game) Update(now time.Time) {
	if g.paused || g.gameOver {
		return
	}
	if now.Sub(g.lastDrop) < g.dropInterval {
		return
	}
	if !g.Move(0, 1) {
		g.Lock()
	}
	g.lastDrop = now
}

// TogglePause flips the paused flag.
func (g *Game) TogglePause() {
	g.paused = !g.paused
}

// ToggleTheme switches between the green and amber palettes.
func (g *Game) ToggleTheme() {
	if g.theme == ThemeGreen {
		g.theme = ThemeAmber
	} else {
		g.theme = ThemeGreen
	}
}

// Step applies one frame of input and then runs gravity against the clock.
// Movement is ignored while paused or after game over; pause, restart and
// theme always apply.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	for _, a := range in.Ordered() {
		g.apply(a)
	}
	g.Update(g.clock.Now())

	return core.StepResult{State: g.State()}
}

func (g *Game) apply(a core.Action) {
	switch a {
	case core.ActionPause:
		g.TogglePause()
		return
	case core.ActionRestart:
		g.Restart()
		return
	case core.ActionTheme:
		g.ToggleTheme()
		return
	}

	if g.paused || g.gameOver {
		return
	}

	switch a {
	case core.ActionLeft:
		g.Move(-1, 0)
	case core.ActionRight:
		g.Move(1, 0)
	case core.ActionDown:
		g.SoftDrop()
	case core.ActionRotate:
		g.Rotate()
	case core.ActionHardDrop:
		g.HardDrop()
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Board returns the playfield. Callers must treat it as read-only.
func (g *Game) Board() *Board { return g.board }

// Current returns the falling piece, if any.
func (g *Game) Current() (Piece, bool) {
	if g.current == nil {
		return Piece{}, false
	}
	return *g.current, true
}

// Next returns the preview piece, if any.
func (g *Game) Next() (Piece, bool) {
	if g.next == nil {
		return Piece{}, false
	}
	return *g.next, true
}

// Score returns the accumulated score.
func (g *Game) Score() int { return g.score }

// Level returns the current level, 1 through MaxLevel.
func (g *Game) Level() int { return g.level }

// Lines returns the total number of cleared lines.
func (g *Game) Lines() int { return g.lines }

// Paused reports whether gravity is suspended.
func (g *Game) Paused() bool { return g.paused }

// GameOver reports whether a spawn has failed.
func (g *Game) GameOver() bool { return g.gameOver }

// Theme returns the active color theme.
func (g *Game) Theme() Theme { return g.theme }

// DropInterval returns the current gravity interval.
func (g *Game) DropInterval() time.Duration { return g.dropInterval }
