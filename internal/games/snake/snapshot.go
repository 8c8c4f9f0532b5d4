package snake

import "github.com/vovakirdan/canvas-snake/internal/grid"

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick    uint64
	Score   int
	Eaten   int
	Length  int
	HeadX   int
	HeadY   int
	Dir     grid.Direction
	FoodX   int
	FoodY   int
	HasFood bool
	Pending bool
	Outcome Outcome
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	head := g.body[0]
	return Snapshot{
		Tick:    g.tick,
		Score:   g.score,
		Eaten:   g.eaten,
		Length:  len(g.body),
		HeadX:   head.X,
		HeadY:   head.Y,
		Dir:     g.dir,
		FoodX:   g.food.X,
		FoodY:   g.food.Y,
		HasFood: g.hasFood,
		Pending: g.changing,
		Outcome: g.Outcome(),
	}
}
