package snake

import (
	"errors"

	"github.com/vovakirdan/canvas-snake/internal/grid"
)

// ErrBoardFull is returned when the snake covers every cell and no food
// can be placed.
var ErrBoardFull = errors.New("snake: no free cell for food")

// PlaceFood moves the food to a random cell not covered by the snake.
//
// Each axis is sampled independently over [0, max] and snapped to the
// grid. A sample that lands on the snake is redrawn, at most maxAttempts
// times; after that the food is drawn uniformly from the free cells, so
// placement terminates however long the snake gets.
func (g *Game) PlaceFood() (grid.Cell, error) {
	for range g.maxAttempts {
		c := grid.Cell{
			X: g.sampleAxis(g.bounds.MaxX()),
			Y: g.sampleAxis(g.bounds.MaxY()),
		}
		if !g.occupies(c) {
			g.food, g.hasFood = c, true
			return c, nil
		}
	}

	free := g.freeCells()
	if len(free) == 0 {
		g.hasFood = false
		return grid.Cell{}, ErrBoardFull
	}
	c := free[g.rng.Intn(len(free))]
	g.food, g.hasFood = c, true
	return c, nil
}

// sampleAxis draws a grid-aligned coordinate in [0, max].
func (g *Game) sampleAxis(max int) int {
	return grid.Snap(g.rng.Float64() * float64(max))
}

// freeCells lists every on-board cell the snake does not cover.
func (g *Game) freeCells() []grid.Cell {
	taken := make(map[grid.Cell]struct{}, len(g.body))
	for _, seg := range g.body {
		taken[seg] = struct{}{}
	}

	all := g.bounds.Cells()
	free := all[:0]
	for _, c := range all {
		if _, ok := taken[c]; !ok {
			free = append(free, c)
		}
	}
	return free
}
