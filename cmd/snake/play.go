package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/canvas-snake/internal/core"
	"github.com/vovakirdan/canvas-snake/internal/games/snake"
	"github.com/vovakirdan/canvas-snake/internal/platform/tui"
	"github.com/vovakirdan/canvas-snake/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play snake in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Arrows / WASD / HJKL  - Steer
  R                     - Restart (after game over)
  Tab                   - Session scores (after game over)
  A / C                 - Scoreboard: all sessions / clear this session
  Ctrl+S                - Save a screenshot to ~/.snake/screenshots
  Q/Ctrl+C              - Quit

Runs are kept for this session only and summarized on exit.

Examples:
  snake play
  snake play --seed 42
  snake play --config ./my-snake.yaml --log-file snake.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The terminal belongs to Bubble Tea; logs go to --log-file or nowhere
	logger, closeLog, err := newLogger(io.Discard, "snake")
	if err != nil {
		return err
	}
	defer closeLog()

	rt := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}
	rt.FrameRate = cfg.Timing.FrameRate
	rt.Seed = flagSeed

	store, err := storage.OpenMemory()
	if err != nil {
		logger.Warn("could not open run log", "error", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	final, err := tui.Run(cfg, tui.Options{
		Runtime: rt,
		Store:   store,
		Logger:  logger,
	})
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	if store != nil {
		printSummary(os.Stdout, store, final.Session())
	}
	return nil
}

// printSummary writes the session's results after the program exits.
func printSummary(w io.Writer, store *storage.Store, session string) {
	stats, err := store.SessionStats(session, snake.OutcomeWin.String())
	if err != nil || stats.Runs == 0 {
		return
	}
	fmt.Fprintf(w, "Session: %d run(s), %d win(s), best score %d, average %.0f\n",
		stats.Runs, stats.Wins, stats.BestScore, stats.AvgScore)

	runs, err := store.SessionRuns(session, 5)
	if err != nil {
		return
	}
	fmt.Fprintln(w, "Best runs:")
	for i, r := range runs {
		fmt.Fprintf(w, "  %d. %5d  %-15s length %d\n", i+1, r.Score, r.Outcome, r.Length)
	}

	if stats.Runs <= len(runs) {
		return
	}
	recent, err := store.RecentRuns(session, 3)
	if err != nil {
		return
	}
	fmt.Fprintln(w, "Last runs:")
	for _, r := range recent {
		fmt.Fprintf(w, "  %5d  %-15s %.1fs\n", r.Score, r.Outcome, r.Duration.Seconds())
	}
}
