// Package config provides YAML-based game configuration loading for the
// tetris platform.
package config

import "fmt"

// Theme names accepted by the display section.
const (
	ThemeGreen = "green"
	ThemeAmber = "amber"
)

// MinBoardWidth is the narrowest board on which a piece can spawn at column 4.
const MinBoardWidth = 8

// TetrisConfig contains all configuration for the game.
type TetrisConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Display DisplayConfig `yaml:"display"`
}

// BoardConfig defines the playfield dimensions.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// DisplayConfig defines presentation settings.
type DisplayConfig struct {
	Theme    string `yaml:"theme"`     // "green" or "amber"
	TickRate int    `yaml:"tick_rate"` // Input/gravity polls per second
}

// Validate checks that the config describes a playable game.
func (c TetrisConfig) Validate() error {
	if c.Board.Width < MinBoardWidth {
		return fmt.Errorf("config: board width %d is below minimum %d", c.Board.Width, MinBoardWidth)
	}
	if c.Board.Height < 4 {
		return fmt.Errorf("config: board height %d is below minimum 4", c.Board.Height)
	}
	switch c.Display.Theme {
	case ThemeGreen, ThemeAmber:
	default:
		return fmt.Errorf("config: unknown theme %q", c.Display.Theme)
	}
	if c.Display.TickRate <= 0 {
		return fmt.Errorf("config: tick rate must be positive, got %d", c.Display.TickRate)
	}
	return nil
}
