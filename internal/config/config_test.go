package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/canvas-snake/internal/core"
	"github.com/vovakirdan/canvas-snake/internal/grid"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
}

func TestEmbeddedDefaultMatchesDefault(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded YAML differs from Default():\n got %+v\nwant %+v", cfg, Default())
	}
}

func TestStartBody(t *testing.T) {
	body, err := Default().StartBody()
	if err != nil {
		t.Fatalf("StartBody() failed: %v", err)
	}

	expected := []grid.Cell{{X: 200, Y: 200}, {X: 190, Y: 200}, {X: 180, Y: 200}, {X: 170, Y: 200}, {X: 160, Y: 200}}
	if len(body) != len(expected) {
		t.Fatalf("len(body) = %d, expected %d", len(body), len(expected))
	}
	for i := range expected {
		if body[i] != expected[i] {
			t.Errorf("body[%d] = %v, expected %v", i, body[i], expected[i])
		}
	}

	cfg := Default()
	cfg.Snake.Direction = "up"
	body, _ = cfg.StartBody()
	if body[1] != (grid.Cell{X: 200, Y: 210}) {
		t.Errorf("heading up, body[1] = %v, expected (200,210)", body[1])
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unaligned board", func(c *Config) { c.Board.Width = 405 }},
		{"short snake", func(c *Config) { c.Snake.Length = 4 }},
		{"huge snake", func(c *Config) { c.Snake.Length = 1 << 50 }},
		{"unknown direction", func(c *Config) { c.Snake.Direction = "north" }},
		{"off-board start", func(c *Config) { c.Snake.StartX = 20 }},
		{"unaligned start", func(c *Config) { c.Snake.StartY = 205 }},
		{"zero score step", func(c *Config) { c.Rules.ScoreStep = 0 }},
		{"zero win score", func(c *Config) { c.Rules.WinScore = 0 }},
		{"unreachable exact win", func(c *Config) { c.Rules.ExactWin = true; c.Rules.ScoreStep = 30 }},
		{"zero step", func(c *Config) { c.Timing.StepSeconds = 0 }},
		{"slow step", func(c *Config) { c.Timing.StepSeconds = 2 }},
		{"zero frame rate", func(c *Config) { c.Timing.FrameRate = 0 }},
		{"negative attempts", func(c *Config) { c.Food.MaxAttempts = -1 }},
		{"unknown color", func(c *Config) { c.Theme.FoodFill = "chartreuse" }},
		{"wide cells", func(c *Config) { c.Theme.ColumnsPerCell = 9 }},
		{"board too small for snake", func(c *Config) {
			c.Board.Width, c.Board.Height = 50, 10
			c.Snake.StartX, c.Snake.StartY = 40, 0
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestExactWinReachable(t *testing.T) {
	cfg := Default()
	cfg.Rules.ExactWin = true
	if err := cfg.Validate(); err != nil {
		t.Errorf("exact win at 1000 in steps of 10 should be valid: %v", err)
	}
}

func TestPalette(t *testing.T) {
	p, err := Default().Theme.Palette()
	if err != nil {
		t.Fatalf("Palette() failed: %v", err)
	}
	if p.Background != core.ColorWhite || p.Border != core.ColorBlack {
		t.Errorf("board colors = %v/%v", p.Background, p.Border)
	}
	if p.SnakeFill != core.ColorLightBlue || p.SnakeStroke != core.ColorDarkBlue {
		t.Errorf("snake colors = %v/%v", p.SnakeFill, p.SnakeStroke)
	}
	if p.FoodFill != core.ColorLightGreen || p.FoodStroke != core.ColorDarkGreen {
		t.Errorf("food colors = %v/%v", p.FoodFill, p.FoodStroke)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "snake.yaml")
	data := []byte("board:\n  width: 300\n  height: 300\nrules:\n  win_score: 50\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Board.Width != 300 || cfg.Rules.WinScore != 50 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	// Unspecified keys keep their defaults
	if cfg.Rules.ScoreStep != 10 || cfg.Snake.Length != 5 {
		t.Errorf("defaults not preserved: %+v", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() of a missing custom path should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("board: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Load() of malformed YAML should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("snake:\n  length: 2\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(invalid); !errors.Is(err, ErrInvalid) {
		t.Errorf("Load() of invalid config = %v, expected ErrInvalid", err)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(Default())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("round trip changed config: %+v", cfg)
	}
}
