package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vovakirdan/canvas-snake/internal/storage"
)

func TestPrintSummary(t *testing.T) {
	store, err := storage.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() failed: %v", err)
	}
	defer store.Close()

	var buf bytes.Buffer
	printSummary(&buf, store, "me")
	if buf.Len() != 0 {
		t.Errorf("empty session printed %q", buf.String())
	}

	for i := 1; i <= 6; i++ {
		store.SaveRun(storage.RunEntry{Session: "me", Score: i * 10, Outcome: "wall_collision"})
	}
	store.SaveRun(storage.RunEntry{Session: "me", Score: 100, Outcome: "win"})

	buf.Reset()
	printSummary(&buf, store, "me")
	out := buf.String()

	for _, want := range []string{"7 run(s), 1 win(s), best score 100", "Best runs:", "Last runs:"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
	// Newest first after the heading
	last := out[strings.Index(out, "Last runs:"):]
	if !strings.Contains(strings.Split(last, "\n")[1], "win") {
		t.Errorf("latest run should lead the last runs:\n%s", last)
	}
}
