// Package grid defines the discrete coordinate space the snake moves over.
// Positions are in board units; every legal position is a multiple of
// CellSize and lies inside Bounds. Nothing here prevents an entity from
// leaving the board: that is the wall-collision condition, detected by
// the game, not by the grid.
package grid

import (
	"errors"
	"fmt"
	"math"
)

// CellSize is the side length of one grid cell in board units.
const CellSize = 10

// ErrBadBounds is returned when board dimensions cannot form a grid.
var ErrBadBounds = errors.New("grid: invalid bounds")

// Cell is a grid-aligned position.
type Cell struct {
	X, Y int
}

// Add returns the cell moved by the direction vector.
func (c Cell) Add(d Direction) Cell {
	return Cell{X: c.X + d.DX, Y: c.Y + d.DY}
}

// Aligned reports whether both coordinates are multiples of CellSize.
func (c Cell) Aligned() bool {
	return c.X%CellSize == 0 && c.Y%CellSize == 0
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Bounds is the board rectangle, sized like the host canvas.
type Bounds struct {
	Width  int
	Height int
}

// MaxX is the largest legal x coordinate.
func (b Bounds) MaxX() int {
	return b.Width - CellSize
}

// MaxY is the largest legal y coordinate.
func (b Bounds) MaxY() int {
	return b.Height - CellSize
}

// Contains reports whether a cell lies on the board:
// 0 <= x <= W-10 and 0 <= y <= H-10.
func (b Bounds) Contains(c Cell) bool {
	return c.X >= 0 && c.X <= b.MaxX() && c.Y >= 0 && c.Y <= b.MaxY()
}

// Columns returns the number of cells per row.
func (b Bounds) Columns() int {
	return b.Width / CellSize
}

// Rows returns the number of cell rows.
func (b Bounds) Rows() int {
	return b.Height / CellSize
}

// Area returns the number of cells on the board.
func (b Bounds) Area() int {
	return b.Columns() * b.Rows()
}

// Cells enumerates every legal cell in row-major order.
func (b Bounds) Cells() []Cell {
	cells := make([]Cell, 0, b.Area())
	for y := 0; y <= b.MaxY(); y += CellSize {
		for x := 0; x <= b.MaxX(); x += CellSize {
			cells = append(cells, Cell{X: x, Y: y})
		}
	}
	return cells
}

// Validate checks that the board is at least one cell in each direction
// and that both sides are whole multiples of CellSize.
func (b Bounds) Validate() error {
	if b.Width < CellSize || b.Height < CellSize {
		return fmt.Errorf("%w: %dx%d is smaller than one cell", ErrBadBounds, b.Width, b.Height)
	}
	if b.Width%CellSize != 0 || b.Height%CellSize != 0 {
		return fmt.Errorf("%w: %dx%d is not a multiple of %d", ErrBadBounds, b.Width, b.Height, CellSize)
	}
	return nil
}

// Snap rounds a coordinate to the nearest multiple of CellSize.
// Halves round away from zero.
func Snap(v float64) int {
	return int(math.Round(v/CellSize)) * CellSize
}
