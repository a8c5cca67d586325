// Package config provides YAML-based configuration loading and validation
// for the snake board, timing and palette.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// SnakeConfig contains all configuration for a snake session.
type SnakeConfig struct {
	Board     BoardConfig    `yaml:"board"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
	Timing    TimingConfig   `yaml:"timing"`
	Palette   PaletteConfig  `yaml:"palette"`
}

// BoardConfig defines the grid size.
type BoardConfig struct {
	Width    int `yaml:"width"`     // Cells
	Height   int `yaml:"height"`    // Cells
	CellSize int `yaml:"cell_size"` // Pixels per cell in window mode
}

// ObstacleConfig defines the stone set.
type ObstacleConfig struct {
	Count int `yaml:"count"`
}

// TimingConfig defines frame pacing.
type TimingConfig struct {
	TickRate     int `yaml:"tick_rate"`      // Ticks per second
	ResetPauseMS int `yaml:"reset_pause_ms"` // Freeze after a reset
}

// PaletteConfig holds #RRGGBB colours for every drawable role.
type PaletteConfig struct {
	Background string `yaml:"background"`
	Border     string `yaml:"border"`
	Food       string `yaml:"food"`
	Snake      string `yaml:"snake"`
	Obstacle   string `yaml:"obstacle"`
	Text       string `yaml:"text"`
}

// TickInterval returns the duration of one simulation tick.
func (c SnakeConfig) TickInterval() time.Duration {
	return time.Second / time.Duration(c.Timing.TickRate)
}

// ResetPause returns how long frontends hold the board after a reset.
func (c SnakeConfig) ResetPause() time.Duration {
	return time.Duration(c.Timing.ResetPauseMS) * time.Millisecond
}

// WindowSize returns the pixel size of the board in window mode.
func (c SnakeConfig) WindowSize() (int, int) {
	return c.Board.Width * c.Board.CellSize, c.Board.Height * c.Board.CellSize
}

// Validate checks ranges and the placement capacity precondition: the board
// must hold every obstacle plus the snake spawn cell, the cell ahead of it
// and one food cell, or rejection sampling could never terminate.
func (c SnakeConfig) Validate() error {
	if c.Board.Width < 2 || c.Board.Height < 2 {
		return fmt.Errorf("%w: board must be at least 2x2, got %dx%d", ErrInvalid, c.Board.Width, c.Board.Height)
	}
	if c.Board.CellSize < 1 {
		return fmt.Errorf("%w: cell_size must be positive, got %d", ErrInvalid, c.Board.CellSize)
	}
	if c.Obstacles.Count < 0 {
		return fmt.Errorf("%w: obstacle count must not be negative, got %d", ErrInvalid, c.Obstacles.Count)
	}
	if need, have := c.Obstacles.Count+3, c.Board.Width*c.Board.Height; need > have {
		return fmt.Errorf("%w: %d obstacles do not fit a %d cell board", ErrInvalid, c.Obstacles.Count, have)
	}
	if c.Timing.TickRate < 1 || c.Timing.TickRate > 240 {
		return fmt.Errorf("%w: tick_rate must be in [1, 240], got %d", ErrInvalid, c.Timing.TickRate)
	}
	if c.Timing.ResetPauseMS < 0 {
		return fmt.Errorf("%w: reset_pause_ms must not be negative, got %d", ErrInvalid, c.Timing.ResetPauseMS)
	}
	for name, hex := range c.Palette.roles() {
		if _, err := colorful.Hex(hex); err != nil {
			return fmt.Errorf("%w: palette.%s %q: %v", ErrInvalid, name, hex, err)
		}
	}
	return nil
}

func (p PaletteConfig) roles() map[string]string {
	return map[string]string{
		"background": p.Background,
		"border":     p.Border,
		"food":       p.Food,
		"snake":      p.Snake,
		"obstacle":   p.Obstacle,
		"text":       p.Text,
	}
}

// RGBA parses a validated #RRGGBB palette entry. Invalid input yields opaque
// magenta so a bad colour is visible rather than fatal.
func RGBA(hex string) color.RGBA {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{R: 0xff, B: 0xff, A: 0xff}
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}
