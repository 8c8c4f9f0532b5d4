package snake

import (
	"github.com/vovakirdan/canvas-snake/internal/core"
	"github.com/vovakirdan/canvas-snake/internal/grid"
)

var keyDirections = map[core.KeyCode]grid.Direction{
	core.KeyLeft:  grid.Left,
	core.KeyUp:    grid.Up,
	core.KeyRight: grid.Right,
	core.KeyDown:  grid.Down,
}

// OnKey applies an arrow key to the heading and reports whether it was
// accepted. At most one change is accepted per logical tick, and the
// exact reverse of the current heading is always rejected. Other key
// codes are ignored.
func (g *Game) OnKey(code core.KeyCode) bool {
	if g.changing {
		return false
	}
	d, ok := keyDirections[code]
	if !ok || d.IsReverseOf(g.dir) {
		return false
	}
	g.dir = d
	g.changing = true
	return true
}

// EndTick clears the pending direction change. The scheduler calls it
// once after every logical update.
func (g *Game) EndTick() {
	g.changing = false
}

// Pending reports whether a direction change was accepted this tick.
func (g *Game) Pending() bool {
	return g.changing
}
