package tui

// Label is a text element of the HUD. It implements core.TextSink.
type Label struct {
	caption string
	text    string
}

// NewLabel creates a label shown as "caption text".
func NewLabel(caption, initial string) *Label {
	return &Label{caption: caption, text: initial}
}

// SetText replaces the label's value.
func (l *Label) SetText(s string) {
	l.text = s
}

// Text returns the current value.
func (l *Label) Text() string {
	return l.text
}

func (l *Label) String() string {
	return l.caption + " " + l.text
}
