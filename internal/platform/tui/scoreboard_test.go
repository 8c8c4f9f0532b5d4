package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/canvas-snake/internal/storage"
)

func seededStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	for _, r := range []storage.RunEntry{
		{Session: "me", Score: 30, Outcome: "wall_collision", Length: 8},
		{Session: "me", Score: 10, Outcome: "self_collision", Length: 6},
		{Session: "other", Score: 90, Outcome: "wall_collision", Length: 14},
	} {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}
	return store
}

func TestScoreboardSessionAndAll(t *testing.T) {
	sb := NewScoreboard(seededStore(t), "me", 80, 24)

	runs := sb.Runs()
	if len(runs) != 2 || runs[0].Score != 30 || runs[1].Score != 10 {
		t.Fatalf("session runs = %+v", runs)
	}
	if !strings.Contains(sb.View(), "SESSION SCORES") {
		t.Error("session view missing title")
	}

	sb, _ = sb.Update(runeKey('a'))
	if !sb.ShowingAll() {
		t.Fatal("a should switch to all sessions")
	}
	runs = sb.Runs()
	if len(runs) != 3 || runs[0].Session != "other" {
		t.Errorf("top runs = %+v", runs)
	}
	if !strings.Contains(sb.View(), "TOP SCORES") {
		t.Error("all view missing title")
	}

	sb, _ = sb.Update(runeKey('a'))
	if sb.ShowingAll() || len(sb.Runs()) != 2 {
		t.Error("a should switch back to the session")
	}
}

func TestScoreboardClear(t *testing.T) {
	store := seededStore(t)
	sb := NewScoreboard(store, "me", 80, 24)

	// Clearing is disabled while listing every session
	sb, _ = sb.Update(runeKey('a'))
	sb, _ = sb.Update(runeKey('c'))
	if len(sb.Runs()) != 3 {
		t.Fatalf("clear in all view removed runs: %+v", sb.Runs())
	}

	sb, _ = sb.Update(runeKey('a'))
	sb, _ = sb.Update(runeKey('c'))
	if len(sb.Runs()) != 0 {
		t.Errorf("session runs after clear = %+v", sb.Runs())
	}
	if !strings.Contains(sb.View(), "No runs recorded yet.") {
		t.Error("empty session should say so")
	}

	others, err := store.SessionRuns("other", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(others) != 1 {
		t.Errorf("other session has %d runs, expected 1", len(others))
	}
}
