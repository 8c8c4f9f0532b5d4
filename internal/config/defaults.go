package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// Default returns the built-in configuration: a 400x400 board with a
// five-segment snake heading right from (200,200), 10 points per food,
// a win at 1000 and one logical update every 0.1s.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Width:  400,
			Height: 400,
		},
		Snake: SnakeConfig{
			StartX:    200,
			StartY:    200,
			Length:    5,
			Direction: "right",
		},
		Rules: RulesConfig{
			ScoreStep: 10,
			WinScore:  1000,
			ExactWin:  false,
		},
		Timing: TimingConfig{
			StepSeconds: 0.1,
			FrameRate:   60,
		},
		Food: FoodConfig{
			MaxAttempts: 64,
		},
		Theme: ThemeConfig{
			Background:     "white",
			Border:         "black",
			SnakeFill:      "lightblue",
			SnakeStroke:    "darkblue",
			FoodFill:       "lightgreen",
			FoodStroke:     "darkgreen",
			ColumnsPerCell: 2,
		},
	}
}

// DefaultYAML returns the embedded default config file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
