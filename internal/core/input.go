package core

// KeyCode is a keyboard key code as delivered by key-down events.
// Only the arrow keys are meaningful to the game; everything else is ignored.
type KeyCode int

// Arrow key codes.
const (
	KeyNone  KeyCode = 0
	KeyLeft  KeyCode = 37
	KeyUp    KeyCode = 38
	KeyRight KeyCode = 39
	KeyDown  KeyCode = 40
)

// IsArrow reports whether the code is one of the four arrow keys.
func (k KeyCode) IsArrow() bool {
	return k >= KeyLeft && k <= KeyDown
}

// String returns a human-readable name for the key code.
func (k KeyCode) String() string {
	switch k {
	case KeyLeft:
		return "Left"
	case KeyUp:
		return "Up"
	case KeyRight:
		return "Right"
	case KeyDown:
		return "Down"
	case KeyNone:
		return "None"
	default:
		return "Unknown"
	}
}

// ParseKeyCode resolves a direction name ("left", "up", "right", "down")
// to its arrow key code. Unknown names yield KeyNone.
func ParseKeyCode(name string) KeyCode {
	switch name {
	case "left", "Left":
		return KeyLeft
	case "up", "Up":
		return KeyUp
	case "right", "Right":
		return KeyRight
	case "down", "Down":
		return KeyDown
	}
	return KeyNone
}

// TextSink receives plain text for a display element such as the score or
// fps label. Implementations must not block.
type TextSink interface {
	SetText(text string)
}

// TextSinkFunc adapts a function to the TextSink interface.
type TextSinkFunc func(text string)

// SetText calls f(text).
func (f TextSinkFunc) SetText(text string) {
	f(text)
}

// DiscardText is a TextSink that drops everything written to it.
var DiscardText TextSink = TextSinkFunc(func(string) {})
