// Package snake implements the grid snake game state: the body, its
// heading, food, score and the rules that end a game. All state of one
// game lives in a Game value; nothing is shared between instances.
package snake

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/vovakirdan/canvas-snake/internal/config"
	"github.com/vovakirdan/canvas-snake/internal/core"
	"github.com/vovakirdan/canvas-snake/internal/grid"
)

// MinLength is the starting body length; the body never gets shorter.
const MinLength = config.MinLength

// Rules holds the scoring parameters of a game.
type Rules struct {
	ScoreStep int  // Points per food eaten
	WinScore  int  // Score threshold for a win
	ExactWin  bool // Win only on exact equality with WinScore
}

// Won reports whether the score satisfies the win condition.
func (r Rules) Won(score int) bool {
	if r.ExactWin {
		return score == r.WinScore
	}
	return score >= r.WinScore
}

// Game holds the state of a single snake game.
type Game struct {
	bounds      grid.Bounds
	rules       Rules
	maxAttempts int
	rng         *rand.Rand
	tick        uint64

	// Snake state
	body     []grid.Cell // Head at index 0
	dir      grid.Direction
	changing bool // A direction change was accepted this tick

	food    grid.Cell
	hasFood bool
	score   int
	eaten   int

	scoreSink core.TextSink
}

// AdvanceResult reports what happened during one Advance.
type AdvanceResult struct {
	Ate bool
}

// New creates a game from a validated configuration and places the
// first food. The seed drives food placement.
func New(cfg config.Config, seed int64) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	body, err := cfg.StartBody()
	if err != nil {
		return nil, err
	}
	dir, err := cfg.StartDirection()
	if err != nil {
		return nil, err
	}

	g := &Game{
		bounds: cfg.Bounds(),
		rules: Rules{
			ScoreStep: cfg.Rules.ScoreStep,
			WinScore:  cfg.Rules.WinScore,
			ExactWin:  cfg.Rules.ExactWin,
		},
		maxAttempts: cfg.Food.MaxAttempts,
		rng:         rand.New(rand.NewSource(seed)),
		body:        body,
		dir:         dir,
		scoreSink:   core.DiscardText,
	}

	// The board is validated to have room beyond the starting body.
	if _, err := g.PlaceFood(); err != nil {
		return nil, fmt.Errorf("snake: cannot place initial food: %w", err)
	}
	return g, nil
}

// SetScoreSink routes score updates to a text display and publishes the
// current score immediately.
func (g *Game) SetScoreSink(sink core.TextSink) {
	if sink == nil {
		sink = core.DiscardText
	}
	g.scoreSink = sink
	g.publishScore()
}

func (g *Game) publishScore() {
	g.scoreSink.SetText(strconv.Itoa(g.score))
}

// Advance performs one logical move: the new head is prepended, and the
// tail is dropped unless the head landed on food, in which case the
// score grows and the food moves.
func (g *Game) Advance() AdvanceResult {
	g.tick++
	head := g.body[0].Add(g.dir)

	g.body = append(g.body, grid.Cell{})
	copy(g.body[1:], g.body[:len(g.body)-1])
	g.body[0] = head

	if g.hasFood && head == g.food {
		g.score += g.rules.ScoreStep
		g.eaten++
		g.publishScore()
		//nolint:errcheck // A full board leaves the game without food
		g.PlaceFood()
		return AdvanceResult{Ate: true}
	}

	g.body = g.body[:len(g.body)-1]
	return AdvanceResult{}
}

// Update advances the game by one logical tick.
func (g *Game) Update() {
	g.Advance()
}

// Outcome evaluates the termination conditions for the current state.
func (g *Game) Outcome() Outcome {
	return Check(g.body, g.score, g.bounds, g.rules)
}

// Over reports whether the game has ended.
func (g *Game) Over() bool {
	return g.Outcome() != OutcomeNone
}

// Body returns the snake segments, head first. The slice must not be modified.
func (g *Game) Body() []grid.Cell {
	return g.body
}

// Head returns the head segment.
func (g *Game) Head() grid.Cell {
	return g.body[0]
}

// Direction returns the current heading.
func (g *Game) Direction() grid.Direction {
	return g.dir
}

// Food returns the food cell and whether food is on the board.
func (g *Game) Food() (grid.Cell, bool) {
	return g.food, g.hasFood
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// Bounds returns the board rectangle.
func (g *Game) Bounds() grid.Bounds {
	return g.bounds
}

// Rules returns the scoring rules.
func (g *Game) Rules() Rules {
	return g.rules
}

// Tick returns the number of logical updates performed.
func (g *Game) Tick() uint64 {
	return g.tick
}

// occupies checks if the snake covers the given cell.
func (g *Game) occupies(c grid.Cell) bool {
	for _, seg := range g.body {
		if seg == c {
			return true
		}
	}
	return false
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Tick: %d, Score: %d, Eaten: %d\n", g.tick, g.score, g.eaten)
	fmt.Fprintf(&b, "Snake len: %d, Direction: %s, Pending: %v\n", len(g.body), g.dir, g.changing)
	fmt.Fprintf(&b, "Head: %v, Food: %v (present: %v)\n", g.body[0], g.food, g.hasFood)
	fmt.Fprintf(&b, "Outcome: %s\n", g.Outcome())
	return b.String()
}
