// Package render paints the board, the food and the snake onto a
// drawing surface in board units.
package render

import (
	"github.com/vovakirdan/canvas-snake/internal/config"
	"github.com/vovakirdan/canvas-snake/internal/core"
	"github.com/vovakirdan/canvas-snake/internal/grid"
)

// Surface is a drawing target addressed in board units.
type Surface interface {
	// Clear fills the w×h board and strokes its outline.
	Clear(fill, stroke core.Color, w, h int)
	FillRect(x, y, w, h int, c core.Color)
	StrokeRect(x, y, w, h int, c core.Color)
}

// Board is the read-only game state the renderer needs.
type Board interface {
	Body() []grid.Cell
	Food() (grid.Cell, bool)
	Bounds() grid.Bounds
}

// Style holds the fill and stroke colors for each drawn element.
type Style struct {
	BoardFill   core.Color
	BoardStroke core.Color
	SnakeFill   core.Color
	SnakeStroke core.Color
	FoodFill    core.Color
	FoodStroke  core.Color
}

// StyleFromPalette builds a Style from a resolved config theme.
func StyleFromPalette(p config.Palette) Style {
	return Style{
		BoardFill:   p.Background,
		BoardStroke: p.Border,
		SnakeFill:   p.SnakeFill,
		SnakeStroke: p.SnakeStroke,
		FoodFill:    p.FoodFill,
		FoodStroke:  p.FoodStroke,
	}
}

// DefaultStyle is white board, black border, blue snake, green food.
func DefaultStyle() Style {
	return Style{
		BoardFill:   core.ColorWhite,
		BoardStroke: core.ColorBlack,
		SnakeFill:   core.ColorLightBlue,
		SnakeStroke: core.ColorDarkBlue,
		FoodFill:    core.ColorLightGreen,
		FoodStroke:  core.ColorDarkGreen,
	}
}

// Renderer draws a Board onto a Surface.
type Renderer struct {
	surface Surface
	board   Board
	style   Style
}

// New creates a renderer.
func New(surface Surface, board Board, style Style) *Renderer {
	return &Renderer{surface: surface, board: board, style: style}
}

// Render clears the board, then draws the food, then every snake segment.
// Later draws cover earlier ones.
func (r *Renderer) Render() {
	b := r.board.Bounds()
	r.surface.Clear(r.style.BoardFill, r.style.BoardStroke, b.Width, b.Height)

	if food, ok := r.board.Food(); ok {
		r.cell(food, r.style.FoodFill, r.style.FoodStroke)
	}
	for _, seg := range r.board.Body() {
		r.cell(seg, r.style.SnakeFill, r.style.SnakeStroke)
	}
}

func (r *Renderer) cell(c grid.Cell, fill, stroke core.Color) {
	r.surface.FillRect(c.X, c.Y, grid.CellSize, grid.CellSize, fill)
	r.surface.StrokeRect(c.X, c.Y, grid.CellSize, grid.CellSize, stroke)
}
