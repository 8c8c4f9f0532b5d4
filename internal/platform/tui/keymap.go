package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/canvas-snake/internal/core"
)

// GameKeyMap defines the key bindings while playing.
type GameKeyMap struct {
	Left       key.Binding
	Up         key.Binding
	Right      key.Binding
	Down       key.Binding
	Restart    key.Binding
	Scores     key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Up, k.Right, k.Down, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Up, k.Right, k.Down},
		{k.Restart, k.Scores, k.Screenshot, k.Quit},
	}
}

// DefaultGameKeyMap returns arrows plus WASD and vim-style bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a/h", "left"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w/k", "up"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d/l", "right"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s/j", "down"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Scores: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "scores"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Command is a non-steering request derived from input.
type Command int

const (
	CommandNone Command = iota
	CommandQuit
	CommandRestart
	CommandScores
	CommandScreenshot
)

// KeyMapper translates Bubble Tea key messages to key codes and commands.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys GameKeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultGameKeyMap()}
}

// Keys returns the bindings, for help rendering.
func (km *KeyMapper) Keys() GameKeyMap {
	return km.keys
}

// MapKey translates a key message to an arrow key code.
// Returns core.KeyNone for anything that does not steer.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.KeyCode {
	switch {
	case key.Matches(msg, km.keys.Left):
		return core.KeyLeft
	case key.Matches(msg, km.keys.Up):
		return core.KeyUp
	case key.Matches(msg, km.keys.Right):
		return core.KeyRight
	case key.Matches(msg, km.keys.Down):
		return core.KeyDown
	}
	return core.KeyNone
}

// MapCommand translates a key message to a command.
func (km *KeyMapper) MapCommand(msg tea.KeyMsg) Command {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return CommandQuit
	case key.Matches(msg, km.keys.Restart):
		return CommandRestart
	case key.Matches(msg, km.keys.Scores):
		return CommandScores
	case key.Matches(msg, km.keys.Screenshot):
		return CommandScreenshot
	}
	return CommandNone
}
