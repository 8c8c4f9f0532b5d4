package core

import "testing"

func TestKeyCodes(t *testing.T) {
	tests := []struct {
		code  KeyCode
		name  string
		arrow bool
	}{
		{KeyLeft, "Left", true},
		{KeyUp, "Up", true},
		{KeyRight, "Right", true},
		{KeyDown, "Down", true},
		{KeyCode(32), "Unknown", false},
		{KeyNone, "None", false},
	}

	for _, tc := range tests {
		if tc.code.String() != tc.name {
			t.Errorf("KeyCode(%d).String() = %q, expected %q", int(tc.code), tc.code.String(), tc.name)
		}
		if tc.code.IsArrow() != tc.arrow {
			t.Errorf("KeyCode(%d).IsArrow() = %v, expected %v", int(tc.code), tc.code.IsArrow(), tc.arrow)
		}
	}

	if KeyLeft != 37 || KeyUp != 38 || KeyRight != 39 || KeyDown != 40 {
		t.Error("arrow key codes must be 37..40")
	}
}

func TestParseKeyCode(t *testing.T) {
	tests := []struct {
		name string
		want KeyCode
	}{
		{"left", KeyLeft},
		{"Up", KeyUp},
		{"right", KeyRight},
		{"down", KeyDown},
		{"d", KeyNone},
		{"r", KeyNone},
		{"l", KeyNone},
		{"u", KeyNone},
		{"jump", KeyNone},
	}

	for _, tc := range tests {
		if got := ParseKeyCode(tc.name); got != tc.want {
			t.Errorf("ParseKeyCode(%q) = %v, expected %v", tc.name, got, tc.want)
		}
	}
}

func TestTextSinkFunc(t *testing.T) {
	var got string
	sink := TextSinkFunc(func(s string) { got = s })
	sink.SetText("42")
	if got != "42" {
		t.Errorf("SetText did not reach the func, got %q", got)
	}
	DiscardText.SetText("ignored")
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
		ok   bool
	}{
		{"white", ColorWhite, true},
		{"LightBlue", ColorLightBlue, true},
		{"dark-green", ColorDarkGreen, true},
		{"light_green", ColorLightGreen, true},
		{"chartreuse", ColorDefault, false},
	}

	for _, tc := range tests {
		got, err := ParseColor(tc.in)
		if (err == nil) != tc.ok {
			t.Errorf("ParseColor(%q) error = %v, expected ok=%v", tc.in, err, tc.ok)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseColor(%q) = %v, expected %v", tc.in, got, tc.want)
		}
	}

	if ColorDarkBlue.String() != "darkblue" {
		t.Errorf("String() = %q", ColorDarkBlue.String())
	}
	if len(ColorNames()) == 0 {
		t.Error("ColorNames() should not be empty")
	}
}
