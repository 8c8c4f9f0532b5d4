package grid

import (
	"fmt"
	"strings"
)

// Direction is a movement vector restricted to the four axis directions,
// each one cell long.
type Direction struct {
	DX, DY int
}

// The four legal directions.
var (
	Up    = Direction{DX: 0, DY: -CellSize}
	Down  = Direction{DX: 0, DY: CellSize}
	Left  = Direction{DX: -CellSize, DY: 0}
	Right = Direction{DX: CellSize, DY: 0}
)

// Valid reports whether d is one of Up, Down, Left or Right.
func (d Direction) Valid() bool {
	switch d {
	case Up, Down, Left, Right:
		return true
	}
	return false
}

// Opposite returns the reversed vector.
func (d Direction) Opposite() Direction {
	return Direction{DX: -d.DX, DY: -d.DY}
}

// IsReverseOf reports whether d points exactly back along other.
func (d Direction) IsReverseOf(other Direction) bool {
	return d == other.Opposite()
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("(%d,%d)", d.DX, d.DY)
	}
}

// ParseDirection resolves "up", "down", "left" or "right".
func ParseDirection(name string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	}
	return Direction{}, fmt.Errorf("grid: unknown direction %q", name)
}
