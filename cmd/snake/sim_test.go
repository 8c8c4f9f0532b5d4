package main

import (
	"context"
	"testing"

	"github.com/vovakirdan/canvas-snake/internal/config"
	"github.com/vovakirdan/canvas-snake/internal/core"
	"github.com/vovakirdan/canvas-snake/internal/games/snake"
)

func TestParseKeyScript(t *testing.T) {
	script, err := parseKeyScript("10:up, 25:left,25:down")
	if err != nil {
		t.Fatalf("parseKeyScript() failed: %v", err)
	}
	if len(script[10]) != 1 || script[10][0] != core.KeyUp {
		t.Errorf("frame 10 = %v", script[10])
	}
	if len(script[25]) != 2 || script[25][0] != core.KeyLeft || script[25][1] != core.KeyDown {
		t.Errorf("frame 25 = %v", script[25])
	}
	if frames := script.frames(); len(frames) != 2 || frames[0] != 10 || frames[1] != 25 {
		t.Errorf("frames() = %v", frames)
	}

	empty, err := parseKeyScript("")
	if err != nil || len(empty) != 0 {
		t.Errorf("empty script = %v, %v", empty, err)
	}
}

func TestParseKeyScriptErrors(t *testing.T) {
	for _, s := range []string{"10", "x:up", "-1:up", "5:sideways", "5:r"} {
		if _, err := parseKeyScript(s); err == nil {
			t.Errorf("parseKeyScript(%q) should fail", s)
		}
	}
}

func simGame(t *testing.T, seed int64) *snake.Game {
	t.Helper()
	g, err := snake.New(config.Default(), seed)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestSimulateDeterministic(t *testing.T) {
	script, _ := parseKeyScript("20:down,50:left,80:up")

	a, err := simulate(context.Background(), simGame(t, 42), 2, 60, 0.1, 300, script)
	if err != nil {
		t.Fatal(err)
	}
	b, err := simulate(context.Background(), simGame(t, 42), 2, 60, 0.1, 300, script)
	if err != nil {
		t.Fatal(err)
	}

	if a.Snapshot != b.Snapshot {
		t.Errorf("snapshots differ:\n%+v\n%+v", a.Snapshot, b.Snapshot)
	}
	if a.Screen.String() != b.Screen.String() {
		t.Error("final screens differ")
	}
}

func TestSimulateHitsWall(t *testing.T) {
	// Heading right from x=200 on a 400-wide board, eating or not, the
	// head leaves the board on the 20th tick.
	res, err := simulate(context.Background(), simGame(t, 1), 2, 60, 0.1, 10000, nil)
	if err != nil {
		t.Fatal(err)
	}
	if res.Snapshot.Outcome != snake.OutcomeWallCollision {
		t.Errorf("Outcome = %v, expected wall collision", res.Snapshot.Outcome)
	}
	if res.Step != 0.1 {
		t.Errorf("Step = %v, expected 0.1", res.Step)
	}
	if res.Ticks != 20 {
		t.Errorf("Ticks = %d, expected 20", res.Ticks)
	}
	if res.Frames >= 10000 {
		t.Error("simulation should stop when the game ends")
	}
}

func TestSimulateSteering(t *testing.T) {
	script, _ := parseKeyScript("0:up")
	res, err := simulate(context.Background(), simGame(t, 3), 2, 60, 0.1, 8, script)
	if err != nil {
		t.Fatal(err)
	}
	if res.Ticks != 1 {
		t.Fatalf("Ticks = %d, expected 1", res.Ticks)
	}
	if res.Snapshot.HeadX != 200 || res.Snapshot.HeadY != 190 {
		t.Errorf("head = (%d,%d), expected (200,190)", res.Snapshot.HeadX, res.Snapshot.HeadY)
	}
}
