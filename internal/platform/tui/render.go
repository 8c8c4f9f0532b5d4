package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/canvas-snake/internal/core"
)

// ansiColors maps core.Color to 256-color palette codes.
var ansiColors = map[core.Color]lipgloss.Color{
	core.ColorBlack:       lipgloss.Color("16"),
	core.ColorRed:         lipgloss.Color("1"),
	core.ColorGreen:       lipgloss.Color("2"),
	core.ColorYellow:      lipgloss.Color("3"),
	core.ColorBlue:        lipgloss.Color("4"),
	core.ColorMagenta:     lipgloss.Color("5"),
	core.ColorCyan:        lipgloss.Color("6"),
	core.ColorWhite:       lipgloss.Color("231"),
	core.ColorBrightWhite: lipgloss.Color("15"),
	core.ColorOrange:      lipgloss.Color("208"),
	core.ColorGray:        lipgloss.Color("245"),
	core.ColorLightBlue:   lipgloss.Color("117"),
	core.ColorDarkBlue:    lipgloss.Color("19"),
	core.ColorLightGreen:  lipgloss.Color("120"),
	core.ColorDarkGreen:   lipgloss.Color("22"),
}

const numColors = int(core.ColorDarkGreen) + 1

// cellStyles holds a style per (fg, bg) pair. It is built once and only
// read afterwards, so SSH sessions can share it.
var cellStyles = buildCellStyles()

func buildCellStyles() [numColors][numColors]lipgloss.Style {
	var styles [numColors][numColors]lipgloss.Style
	for fg := range numColors {
		for bg := range numColors {
			s := lipgloss.NewStyle()
			if c, ok := ansiColors[core.Color(fg)]; ok {
				s = s.Foreground(c)
			}
			if c, ok := ansiColors[core.Color(bg)]; ok {
				s = s.Background(c)
			}
			styles[fg][bg] = s
		}
	}
	return styles
}

func styleFor(c core.Cell) lipgloss.Style {
	if int(c.Fg) >= numColors || int(c.Bg) >= numColors {
		return cellStyles[0][0]
	}
	return cellStyles[c.Fg][c.Bg]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Fg != start.Fg || cell.Bg != start.Bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(start).Render(run.String()))
		}
	}
	return sb.String()
}
