package policy

import (
	"snake-agent/game"
	"snake-agent/planner"
)

// Greedy picks the safe candidate with the minimal total cost. Ties go to
// the candidate appearing first in the planner's fixed order, so repeated
// runs over the same state always choose the same move. Stateless and
// safe for concurrent use.
type Greedy struct{}

// Act filters out unsafe candidates and returns the cheapest survivor.
func (Greedy) Act(candidates []planner.ActionCandidate) (game.Direction, error) {
	best := -1
	for i, c := range candidates {
		if c.Unsafe {
			continue
		}
		if best < 0 || c.Cost() < candidates[best].Cost() {
			best = i
		}
	}
	if best < 0 {
		return 0, ErrNoSafeMove
	}
	return candidates[best].Dir, nil
}
