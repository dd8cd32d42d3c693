// Package planner prunes and scores the action space for one tick.
// Safety is a hard constraint checked before any cost is computed; the
// cost terms only rank the surviving moves.
package planner

import "snake-agent/game"

// IsUnsafe reports whether moving the head to pos ends the episode:
// outside the grid, or onto a body segment. The final segment is exempt
// because the tail vacates its cell on the same tick the head would
// arrive; a head landing on the food cell is never on the body, so the
// exemption cannot mask a real collision on an eating step.
func IsUnsafe(pos game.Point, size int, body []game.Point) bool {
	if !game.InBounds(pos, size) {
		return true
	}
	if len(body) == 0 {
		return false
	}
	for _, part := range body[:len(body)-1] {
		if pos == part {
			return true
		}
	}
	return false
}
