package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the built-in configuration: a 32x24 board of
// 20px cells, 20 stones, 15 ticks per second.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: BoardConfig{
			Width:    32,
			Height:   24,
			CellSize: 20,
		},
		Obstacles: ObstacleConfig{
			Count: 20,
		},
		Timing: TimingConfig{
			TickRate:     15,
			ResetPauseMS: 500,
		},
		Palette: PaletteConfig{
			Background: "#000000",
			Border:     "#5DD8E4",
			Food:       "#FFD700",
			Snake:      "#B2DF8A",
			Obstacle:   "#8B4513",
			Text:       "#FFFFFF",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
