// Package config provides YAML-based configuration for the snake game:
// board size, starting body, scoring rules, timing and colors.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/canvas-snake/internal/core"
	"github.com/vovakirdan/canvas-snake/internal/grid"
)

// MinLength is the minimum starting body length.
const MinLength = 5

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config contains all configuration for a game instance.
type Config struct {
	Board  BoardConfig  `yaml:"board"`
	Snake  SnakeConfig  `yaml:"snake"`
	Rules  RulesConfig  `yaml:"rules"`
	Timing TimingConfig `yaml:"timing"`
	Food   FoodConfig   `yaml:"food"`
	Theme  ThemeConfig  `yaml:"theme"`
}

// BoardConfig is the canvas size in board units.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SnakeConfig describes the starting body: head position, length and
// heading. The rest of the body trails behind the head.
type SnakeConfig struct {
	StartX    int    `yaml:"start_x"`
	StartY    int    `yaml:"start_y"`
	Length    int    `yaml:"length"`
	Direction string `yaml:"direction"`
}

// RulesConfig defines scoring and the win condition.
type RulesConfig struct {
	ScoreStep int  `yaml:"score_step"` // Points per food eaten
	WinScore  int  `yaml:"win_score"`  // Score that ends the game as a win
	ExactWin  bool `yaml:"exact_win"`  // Win only on score == win_score
}

// TimingConfig defines the logical update cadence and the frame source rate.
type TimingConfig struct {
	StepSeconds float64 `yaml:"step_seconds"` // Accumulated time that triggers one update
	FrameRate   int     `yaml:"frame_rate"`   // Frame callbacks per second
}

// FoodConfig tunes food placement.
type FoodConfig struct {
	MaxAttempts int `yaml:"max_attempts"` // Random samples before falling back to free-cell draw
}

// ThemeConfig names the colors used by the renderer.
type ThemeConfig struct {
	Background     string `yaml:"background"`
	Border         string `yaml:"border"`
	SnakeFill      string `yaml:"snake_fill"`
	SnakeStroke    string `yaml:"snake_stroke"`
	FoodFill       string `yaml:"food_fill"`
	FoodStroke     string `yaml:"food_stroke"`
	ColumnsPerCell int    `yaml:"columns_per_cell"` // Terminal columns per board cell
}

// Palette is a ThemeConfig with its color names resolved.
type Palette struct {
	Background  core.Color
	Border      core.Color
	SnakeFill   core.Color
	SnakeStroke core.Color
	FoodFill    core.Color
	FoodStroke  core.Color
}

// Bounds returns the board rectangle.
func (c Config) Bounds() grid.Bounds {
	return grid.Bounds{Width: c.Board.Width, Height: c.Board.Height}
}

// StartDirection returns the configured heading.
func (c Config) StartDirection() (grid.Direction, error) {
	return grid.ParseDirection(c.Snake.Direction)
}

// StartBody builds the initial body, head first, trailing away from the
// heading one cell per segment.
func (c Config) StartBody() ([]grid.Cell, error) {
	dir, err := c.StartDirection()
	if err != nil {
		return nil, err
	}
	back := dir.Opposite()
	body := make([]grid.Cell, c.Snake.Length)
	body[0] = grid.Cell{X: c.Snake.StartX, Y: c.Snake.StartY}
	for i := 1; i < len(body); i++ {
		body[i] = body[i-1].Add(back)
	}
	return body, nil
}

// Palette resolves the theme color names.
func (t ThemeConfig) Palette() (Palette, error) {
	var p Palette
	fields := []struct {
		name string
		dst  *core.Color
	}{
		{t.Background, &p.Background},
		{t.Border, &p.Border},
		{t.SnakeFill, &p.SnakeFill},
		{t.SnakeStroke, &p.SnakeStroke},
		{t.FoodFill, &p.FoodFill},
		{t.FoodStroke, &p.FoodStroke},
	}
	for _, f := range fields {
		c, err := core.ParseColor(f.name)
		if err != nil {
			return Palette{}, err
		}
		*f.dst = c
	}
	return p, nil
}

// Validate checks that the configuration describes a playable game.
func (c Config) Validate() error {
	if err := c.Bounds().Validate(); err != nil {
		return fmt.Errorf("%w: board: %w", ErrInvalid, err)
	}

	if c.Snake.Length < MinLength {
		return fmt.Errorf("%w: snake length %d is below the minimum of %d", ErrInvalid, c.Snake.Length, MinLength)
	}
	bounds := c.Bounds()
	if c.Snake.Length >= bounds.Area() {
		return fmt.Errorf("%w: snake of length %d fills the whole board", ErrInvalid, c.Snake.Length)
	}
	body, err := c.StartBody()
	if err != nil {
		return fmt.Errorf("%w: snake: %w", ErrInvalid, err)
	}
	for i, seg := range body {
		if !seg.Aligned() {
			return fmt.Errorf("%w: snake start %v is not aligned to the %d-unit grid", ErrInvalid, seg, grid.CellSize)
		}
		if !bounds.Contains(seg) {
			return fmt.Errorf("%w: snake segment %d at %v is off the board", ErrInvalid, i, seg)
		}
	}

	if c.Rules.ScoreStep <= 0 {
		return fmt.Errorf("%w: score_step must be positive", ErrInvalid)
	}
	if c.Rules.WinScore <= 0 {
		return fmt.Errorf("%w: win_score must be positive", ErrInvalid)
	}
	if c.Rules.ExactWin && c.Rules.WinScore%c.Rules.ScoreStep != 0 {
		return fmt.Errorf("%w: exact win score %d is unreachable in steps of %d", ErrInvalid, c.Rules.WinScore, c.Rules.ScoreStep)
	}

	if c.Timing.StepSeconds <= 0 || c.Timing.StepSeconds > 1 {
		return fmt.Errorf("%w: step_seconds must be in (0, 1], got %v", ErrInvalid, c.Timing.StepSeconds)
	}
	if c.Timing.FrameRate <= 0 || c.Timing.FrameRate > 1000 {
		return fmt.Errorf("%w: frame_rate must be in [1, 1000], got %d", ErrInvalid, c.Timing.FrameRate)
	}

	if c.Food.MaxAttempts < 0 {
		return fmt.Errorf("%w: food max_attempts cannot be negative", ErrInvalid)
	}

	if _, err := c.Theme.Palette(); err != nil {
		return fmt.Errorf("%w: theme: %w", ErrInvalid, err)
	}
	if c.Theme.ColumnsPerCell < 1 || c.Theme.ColumnsPerCell > 4 {
		return fmt.Errorf("%w: columns_per_cell must be in [1, 4], got %d", ErrInvalid, c.Theme.ColumnsPerCell)
	}

	return nil
}
