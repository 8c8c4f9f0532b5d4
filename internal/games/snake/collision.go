package snake

import "github.com/vovakirdan/canvas-snake/internal/grid"

// NeckLength is the number of leading segments skipped by the
// self-collision check. A head can never reach its first four segments
// in one move, so only index NeckLength and beyond can collide.
const NeckLength = MinLength - 1

// Outcome is the condition that ended a game.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeSelfCollision
	OutcomeWallCollision
	OutcomeWin
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "playing"
	case OutcomeSelfCollision:
		return "self_collision"
	case OutcomeWallCollision:
		return "wall_collision"
	case OutcomeWin:
		return "win"
	default:
		return "unknown"
	}
}

// IsWin reports whether the game ended by reaching the win score.
func (o Outcome) IsWin() bool {
	return o == OutcomeWin
}

// IsLoss reports whether the game ended in a collision.
func (o Outcome) IsLoss() bool {
	return o == OutcomeSelfCollision || o == OutcomeWallCollision
}

// Check evaluates the termination conditions in order: self-collision,
// win, wall collision. The first one satisfied is returned.
func Check(body []grid.Cell, score int, bounds grid.Bounds, rules Rules) Outcome {
	if len(body) == 0 {
		return OutcomeNone
	}
	head := body[0]

	for i := NeckLength; i < len(body); i++ {
		if body[i] == head {
			return OutcomeSelfCollision
		}
	}

	if rules.Won(score) {
		return OutcomeWin
	}

	if !bounds.Contains(head) {
		return OutcomeWallCollision
	}

	return OutcomeNone
}

// IsGameOver reports whether any termination condition holds.
func IsGameOver(body []grid.Cell, score int, bounds grid.Bounds, rules Rules) bool {
	return Check(body, score, bounds, rules) != OutcomeNone
}
