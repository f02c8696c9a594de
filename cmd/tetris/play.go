package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a game of Tetris.

Controls:
  Left/Right - Move
  Down       - Soft drop (+1 per row)
  Up         - Rotate
  Space      - Hard drop (+2 per row)
  P          - Pause
  R          - Restart
  T          - Toggle green/amber theme
  Ctrl+S     - Save a screenshot
  ?          - Help
  Q/Ctrl+C   - Quit

Examples:
  tetris play
  tetris play --seed 42
  tetris play --config ./my-tetris.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(flagLogFile, flagDebug)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Nothing useful to do on close failure

	gameCfg, err := config.LoadTetris(flagConfig)
	if err != nil {
		return err
	}
	tetris.SetConfig(gameCfg)
	logger.Debug("config loaded",
		"board", fmt.Sprintf("%dx%d", gameCfg.Board.Width, gameCfg.Board.Height),
		"theme", gameCfg.Display.Theme,
		"tick_rate", gameCfg.Display.TickRate,
	)

	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = tickRate(cmd, gameCfg)
	cfg.Seed = flagSeed

	logger.Debug("registered games", "games", registry.List())

	game, err := registry.Create(tetris.GameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	if err := tui.Run(game, cfg, logger); err != nil {
		logger.Error("game loop failed", "error", err)
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// tickRate prefers an explicit --fps over the config value.
func tickRate(cmd *cobra.Command, cfg config.TetrisConfig) int {
	if cmd.Flags().Changed("fps") && flagFPS > 0 {
		return flagFPS
	}
	return cfg.Display.TickRate
}
