// Package policy holds the decision-making contract and its concrete
// strategies. A policy sees only the planner's candidate list, never the
// world itself, so alternative implementations can be swapped in without
// touching the environment or the planner.
package policy

import (
	"errors"

	"snake-agent/game"
	"snake-agent/planner"
)

// ErrNoSafeMove signals that every candidate this tick is unsafe: the
// snake is boxed in and the episode ends. It is an expected terminal
// condition, not a fault.
var ErrNoSafeMove = errors.New("no safe move available")

// Policy selects one direction from the scored candidates of a tick.
type Policy interface {
	Act(candidates []planner.ActionCandidate) (game.Direction, error)
}
