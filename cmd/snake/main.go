// snake is a grid snake game for the terminal.
//
// Usage:
//
//	snake play               - Play in this terminal
//	snake serve              - Start SSH server for remote play
//	snake sim                - Run a headless, deterministic game
//	snake config             - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>      - Frame callbacks per second (default: 60)
//	--seed <value>    - Set RNG seed for reproducible gameplay
//	--config <path>   - Game config YAML
//	--width <units>   - Board width, multiple of 10
//	--height <units>  - Board height, multiple of 10
//	--debug           - Verbose logging
//	--log-file <path> - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/canvas-snake/internal/config"
	"github.com/vovakirdan/canvas-snake/internal/grid"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfigPath string
	flagWidth      int
	flagHeight     int
	flagDebug      bool
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - eat, grow, don't hit anything",
	Long: `Snake is a grid snake game for the terminal.

The snake moves one cell every tenth of a second. Steer it with the
arrow keys to eat food; every meal adds a segment and 10 points.
Hitting a wall or your own body ends the game, reaching 1000 points
wins it.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  sim      - Run a headless game with scripted input
  config   - Print the effective configuration

Examples:
  snake play
  snake play --width 200 --height 150
  snake serve --ssh :2222
  snake sim --seed 42 --frames 600 --keys 30:down,60:left
  snake config > ~/.snake/config.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frame rate (0 = config value, default 60)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time; sim uses it as is)")
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().IntVar(&flagWidth, "width", 0, "Board width in units (multiple of 10)")
	rootCmd.PersistentFlags().IntVar(&flagHeight, "height", 0, "Board height in units (multiple of 10)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the game config and applies flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfigPath)
	if err != nil {
		return cfg, err
	}

	resized := false
	if flagWidth > 0 {
		cfg.Board.Width = flagWidth
		resized = true
	}
	if flagHeight > 0 {
		cfg.Board.Height = flagHeight
		resized = true
	}
	if resized {
		// Keep the snake in the middle of the new board
		cfg.Snake.StartX = cfg.Board.Width / 2 / grid.CellSize * grid.CellSize
		cfg.Snake.StartY = cfg.Board.Height / 2 / grid.CellSize * grid.CellSize
	}
	if flagFPS > 0 {
		cfg.Timing.FrameRate = flagFPS
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// newLogger builds a logger writing to w, or to --log-file when set.
// The returned closer releases the log file.
func newLogger(w io.Writer, prefix string) (*log.Logger, func(), error) {
	closeFn := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, closeFn, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}
