package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/canvas-snake/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapperArrows(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.KeyCode
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.KeyLeft},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.KeyUp},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.KeyRight},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.KeyDown},
		{"a", runeKey('a'), core.KeyLeft},
		{"w", runeKey('w'), core.KeyUp},
		{"d", runeKey('d'), core.KeyRight},
		{"s", runeKey('s'), core.KeyDown},
		{"h", runeKey('h'), core.KeyLeft},
		{"k", runeKey('k'), core.KeyUp},
		{"l", runeKey('l'), core.KeyRight},
		{"j", runeKey('j'), core.KeyDown},
		{"x", runeKey('x'), core.KeyNone},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.KeyNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := km.MapKey(tc.msg); got != tc.expected {
				t.Errorf("MapKey(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
			}
		})
	}
}

func TestKeyMapperCommands(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected Command
	}{
		{"q", runeKey('q'), CommandQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, CommandQuit},
		{"r", runeKey('r'), CommandRestart},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, CommandScores},
		{"ctrl+s", tea.KeyMsg{Type: tea.KeyCtrlS}, CommandScreenshot},
		{"arrow", tea.KeyMsg{Type: tea.KeyLeft}, CommandNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := km.MapCommand(tc.msg); got != tc.expected {
				t.Errorf("MapCommand(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
			}
		})
	}
}

func TestLabel(t *testing.T) {
	l := NewLabel("Score", "0")
	var sink core.TextSink = l
	sink.SetText("30")

	if l.Text() != "30" {
		t.Errorf("Text() = %q, expected 30", l.Text())
	}
	if l.String() != "Score 30" {
		t.Errorf("String() = %q, expected \"Score 30\"", l.String())
	}
}
