package core

import (
	"fmt"
	"sort"
	"strings"
)

// Color represents a screen cell color.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorLightBlue
	ColorDarkBlue
	ColorLightGreen
	ColorDarkGreen
)

var colorNames = map[string]Color{
	"default":     ColorDefault,
	"black":       ColorBlack,
	"red":         ColorRed,
	"green":       ColorGreen,
	"yellow":      ColorYellow,
	"blue":        ColorBlue,
	"magenta":     ColorMagenta,
	"cyan":        ColorCyan,
	"white":       ColorWhite,
	"brightwhite": ColorBrightWhite,
	"orange":      ColorOrange,
	"gray":        ColorGray,
	"lightblue":   ColorLightBlue,
	"darkblue":    ColorDarkBlue,
	"lightgreen":  ColorLightGreen,
	"darkgreen":   ColorDarkGreen,
}

// ParseColor resolves a color name as used in config files.
// Names are case-insensitive; "light-blue" and "light_blue" match "lightblue".
func ParseColor(name string) (Color, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.NewReplacer("-", "", "_", "", " ", "").Replace(key)
	if c, ok := colorNames[key]; ok {
		return c, nil
	}
	return ColorDefault, fmt.Errorf("core: unknown color %q", name)
}

// String returns the canonical name of the color.
func (c Color) String() string {
	for name, v := range colorNames {
		if v == c {
			return name
		}
	}
	return "unknown"
}

// ColorNames returns all known color names, sorted.
func ColorNames() []string {
	names := make([]string, 0, len(colorNames))
	for name := range colorNames {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
