package render

import (
	"github.com/vovakirdan/canvas-snake/internal/core"
	"github.com/vovakirdan/canvas-snake/internal/grid"
)

// Canvas is a Surface backed by a character screen. Each board cell
// becomes one row and cols columns; the board sits inside a one-character
// frame whose top-left corner is at (x, y).
type Canvas struct {
	screen *core.Screen
	x, y   int
	cols   int
	area   core.Rect // Board interior in screen coordinates, set by Clear
}

// NewCanvas creates a canvas drawing onto screen at (x, y).
func NewCanvas(screen *core.Screen, x, y, cols int) *Canvas {
	return &Canvas{screen: screen, x: x, y: y, cols: core.Max(cols, 1)}
}

// CanvasSize returns the screen size, frame included, needed for a board.
func CanvasSize(b grid.Bounds, cols int) (w, h int) {
	return b.Columns()*core.Max(cols, 1) + 2, b.Rows() + 2
}

// rect maps a board-unit rectangle to screen characters.
func (c *Canvas) rect(x, y, w, h int) core.Rect {
	col0 := floorDiv(x, grid.CellSize)
	row0 := floorDiv(y, grid.CellSize)
	col1 := ceilDiv(x+w, grid.CellSize)
	row1 := ceilDiv(y+h, grid.CellSize)
	return core.NewRect(
		c.x+1+col0*c.cols,
		c.y+1+row0,
		(col1-col0)*c.cols,
		row1-row0,
	)
}

// Clear paints the board interior and draws its frame.
func (c *Canvas) Clear(fill, stroke core.Color, w, h int) {
	c.area = c.rect(0, 0, w, h)
	c.screen.Paint(c.area, fill)
	c.screen.DrawBox(core.NewRect(c.area.X-1, c.area.Y-1, c.area.W+2, c.area.H+2), stroke)
}

// FillRect paints the rectangle's background. Anything outside the
// board is clipped.
func (c *Canvas) FillRect(x, y, w, h int, col core.Color) {
	r := c.rect(x, y, w, h).Intersect(c.area)
	c.screen.Paint(r, col)
}

// StrokeRect outlines a rectangle. A single cell is bracketed as "[]";
// larger rectangles get a box frame around the filled area.
func (c *Canvas) StrokeRect(x, y, w, h int, col core.Color) {
	r := c.rect(x, y, w, h)
	if r.H == 1 && r.W == c.cols {
		if r.Intersect(c.area).Empty() {
			return
		}
		if c.cols == 1 {
			c.screen.Stamp(r.X, r.Y, '■', col)
			return
		}
		c.screen.Stamp(r.X, r.Y, '[', col)
		c.screen.Stamp(r.Right()-1, r.Y, ']', col)
		return
	}
	c.screen.DrawBox(core.NewRect(r.X-1, r.Y-1, r.W+2, r.H+2), col)
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

func ceilDiv(a, b int) int {
	return -floorDiv(-a, b)
}
