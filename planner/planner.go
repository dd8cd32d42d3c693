package planner

import (
	"snake-agent/game"
	"snake-agent/perception"
)

// Turn and trap weights. Heuristic distance and turn cost combine by
// plain sum: the heuristic changes by at least 1 per move, so a unit
// turn cost breaks ties between equidistant moves without ever buying a
// detour. TrapWeight dwarfs both so a boxed-in move ranks behind any
// open one while still staying selectable when nothing better exists.
const (
	TurnWeight = 1
	TrapWeight = 500
)

// ActionCandidate is the scored projection of one direction for the
// current tick. Produced fresh by Plan, consumed immediately by a policy.
type ActionCandidate struct {
	Dir       game.Direction
	Pos       game.Point
	Heuristic int
	TurnCost  int
	TrapCost  int
	Unsafe    bool
}

// Cost is the total ranking cost; lower is better. Meaningless when
// Unsafe is set.
func (c ActionCandidate) Cost() int {
	return c.Heuristic + c.TurnCost + c.TrapCost
}

// Plan scores all four directions for the given state. The result always
// has exactly four entries in direction declaration order, unsafe ones
// included, so downstream selection is reproducible.
func Plan(head, food game.Point, body []game.Point, current game.Direction, size int) []ActionCandidate {
	candidates := make([]ActionCandidate, 0, len(game.Directions))

	for _, dir := range game.Directions {
		off := dir.Offset()
		pos := game.Point{X: head.X + off.X, Y: head.Y + off.Y}

		cand := ActionCandidate{
			Dir:       dir,
			Pos:       pos,
			Heuristic: game.Manhattan(pos, food),
			Unsafe:    IsUnsafe(pos, size, body),
		}
		if dir != current {
			cand.TurnCost = TurnWeight
		}
		if !cand.Unsafe {
			cand.TrapCost = trapCost(pos, food, body, size)
		}

		candidates = append(candidates, cand)
	}

	return candidates
}

// PlanWorld is the Plan convenience form over a live world.
func PlanWorld(w *game.World) []ActionCandidate {
	return Plan(w.Head(), w.Food(), w.Body(), w.CurrentDirection(), w.Size())
}

// trapCost simulates the move and charges TrapWeight when the new head
// can reach neither the food nor its own tail and the remaining free
// region is small. Reaching the tail means the snake can always buy time
// by chasing it, so such moves are not traps.
func trapCost(pos, food game.Point, body []game.Point, size int) int {
	next := make([]game.Point, 0, len(body)+1)
	next = append(next, pos)
	next = append(next, body...)
	if pos != food {
		next = next[:len(next)-1]
	}
	tail := next[len(next)-1]

	if perception.HasPath(pos, food, size, next) {
		return 0
	}
	if perception.HasPath(pos, tail, size, next) {
		return 0
	}
	if perception.ReachableCells(pos, size, next) < len(next)*2 {
		return TrapWeight
	}
	return 0
}
