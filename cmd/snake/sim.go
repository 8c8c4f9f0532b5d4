package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/canvas-snake/internal/core"
	"github.com/vovakirdan/canvas-snake/internal/games/snake"
	"github.com/vovakirdan/canvas-snake/internal/loop"
	"github.com/vovakirdan/canvas-snake/internal/render"
)

var (
	flagSimFrames int
	flagSimKeys   string
	flagSimScreen bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless game with scripted input",
	Long: `Run the game without a terminal UI. Frames are generated at the
configured frame rate with synthetic timestamps, so a given seed and key
script always produce the same result.

Keys are given as frame:direction pairs. A key is pressed just before
the frame with that index is processed.

Examples:
  snake sim --seed 1
  snake sim --seed 42 --frames 600 --keys 30:down,60:left,90:up
  snake sim --seed 7 --keys 10:up --screen`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimFrames, "frames", 600, "Number of frames to run")
	simCmd.Flags().StringVar(&flagSimKeys, "keys", "", "Key script: frame:dir pairs, comma separated")
	simCmd.Flags().BoolVar(&flagSimScreen, "screen", false, "Print the final board")
}

// keyScript maps a frame index to the keys pressed before it.
type keyScript map[int][]core.KeyCode

// parseKeyScript parses "frame:dir,frame:dir". Directions are
// left, up, right or down.
func parseKeyScript(s string) (keyScript, error) {
	script := keyScript{}
	if strings.TrimSpace(s) == "" {
		return script, nil
	}
	for _, part := range strings.Split(s, ",") {
		frameStr, dir, ok := strings.Cut(strings.TrimSpace(part), ":")
		if !ok {
			return nil, fmt.Errorf("key script: %q is not frame:dir", part)
		}
		frame, err := strconv.Atoi(frameStr)
		if err != nil || frame < 0 {
			return nil, fmt.Errorf("key script: bad frame %q", frameStr)
		}
		code := core.ParseKeyCode(dir)
		if code == core.KeyNone {
			return nil, fmt.Errorf("key script: unknown direction %q", dir)
		}
		script[frame] = append(script[frame], code)
	}
	return script, nil
}

// frames returns the scripted frame indexes in order.
func (s keyScript) frames() []int {
	out := make([]int, 0, len(s))
	for f := range s {
		out = append(out, f)
	}
	sort.Ints(out)
	return out
}

// simResult is the state after a headless run.
type simResult struct {
	Frames   uint64
	Ticks    uint64
	FPS      int
	Step     float64
	Snapshot snake.Snapshot
	Screen   *core.Screen
}

// simulate runs a game for n frames at frameRate with scripted keys.
func simulate(ctx context.Context, g *snake.Game, cols, frameRate int, step float64, n int, script keyScript) (simResult, error) {
	screen := core.NewScreen(render.CanvasSize(g.Bounds(), cols))
	board := render.New(render.NewCanvas(screen, 0, 0, cols), g, render.DefaultStyle())

	press := func(frame int) {
		for _, code := range script[frame] {
			g.OnKey(code)
		}
	}

	// Keys for the next frame are pressed after the current one renders,
	// on the scheduler's goroutine.
	next := 0
	renderer := loop.RendererFunc(func() {
		board.Render()
		next++
		press(next)
	})
	sched := loop.NewScheduler(g, renderer, nil, step)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	timestamps := make(chan float64)
	go func() {
		defer close(timestamps)
		for i := range n {
			ts := float64(i) * 1000 / float64(frameRate)
			select {
			case timestamps <- ts:
			case <-ctx.Done():
				return
			}
		}
	}()

	press(0)
	if err := sched.Drive(ctx, timestamps); err != nil {
		return simResult{}, err
	}

	return simResult{
		Frames:   sched.Frames(),
		Ticks:    sched.Ticks(),
		FPS:      sched.FPS(),
		Step:     sched.Step(),
		Snapshot: g.Snapshot(),
		Screen:   screen,
	}, nil
}

func runSim(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	script, err := parseKeyScript(flagSimKeys)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(os.Stderr, "snake-sim")
	if err != nil {
		return err
	}
	defer closeLog()

	g, err := snake.New(cfg, flagSeed)
	if err != nil {
		return err
	}
	logger.Debug("simulation starting",
		"seed", flagSeed,
		"frames", flagSimFrames,
		"script", script.frames(),
	)

	res, err := simulate(cmd.Context(), g, cfg.Theme.ColumnsPerCell, cfg.Timing.FrameRate, cfg.Timing.StepSeconds, flagSimFrames, script)
	if err != nil {
		return err
	}

	snap := res.Snapshot
	logger.Info("simulation finished", "ticks", res.Ticks, "outcome", snap.Outcome)
	logger.Debug("final state\n" + g.DebugState())

	rules := g.Rules()
	target := fmt.Sprintf(">= %d", rules.WinScore)
	if rules.ExactWin {
		target = fmt.Sprintf("= %d", rules.WinScore)
	}

	fmt.Printf("frames   %d\n", res.Frames)
	fmt.Printf("ticks    %d (every %gs)\n", res.Ticks, res.Step)
	fmt.Printf("fps      %d\n", res.FPS)
	fmt.Printf("score    %d (win %s, +%d per food)\n", snap.Score, target, rules.ScoreStep)
	fmt.Printf("length   %d\n", snap.Length)
	fmt.Printf("head     (%d,%d) %s\n", snap.HeadX, snap.HeadY, snap.Dir)
	if snap.HasFood {
		fmt.Printf("food     (%d,%d)\n", snap.FoodX, snap.FoodY)
	} else {
		fmt.Println("food     none")
	}
	fmt.Printf("outcome  %s\n", snap.Outcome)

	if flagSimScreen {
		fmt.Println(res.Screen.String())
	}
	return nil
}
