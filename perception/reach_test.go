package perception

import (
	"testing"

	"snake-agent/game"
)

// wall is a full column at x=1 on a 5×5 grid, splitting it into a 1-wide
// and a 3-wide region.
var wall = []game.Point{{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: 2}, {X: 1, Y: 3}, {X: 1, Y: 4}}

func TestReachableCellsOpenBoard(t *testing.T) {
	got := ReachableCells(game.Point{X: 2, Y: 2}, 5, []game.Point{{X: 2, Y: 2}})
	if got != 25 {
		t.Errorf("ReachableCells = %d, want 25 (start cell is free)", got)
	}
}

func TestReachableCellsSplitBoard(t *testing.T) {
	left := ReachableCells(game.Point{X: 0, Y: 0}, 5, wall)
	if left != 5 {
		t.Errorf("left region = %d cells, want 5", left)
	}
	right := ReachableCells(game.Point{X: 3, Y: 0}, 5, wall)
	if right != 15 {
		t.Errorf("right region = %d cells, want 15", right)
	}
}

func TestReachableCellsOffGridStart(t *testing.T) {
	if got := ReachableCells(game.Point{X: -1, Y: 0}, 5, nil); got != 0 {
		t.Errorf("ReachableCells from off-grid start = %d, want 0", got)
	}
}

func TestHasPathBlockedByBody(t *testing.T) {
	if HasPath(game.Point{X: 0, Y: 0}, game.Point{X: 2, Y: 0}, 5, wall) {
		t.Error("path should be blocked by the body wall")
	}
}

func TestHasPathOpen(t *testing.T) {
	if !HasPath(game.Point{X: 0, Y: 0}, game.Point{X: 4, Y: 4}, 5, []game.Point{{X: 2, Y: 2}}) {
		t.Error("open board should have a path corner to corner")
	}
}

func TestHasPathTargetCellTreatedFree(t *testing.T) {
	// The wall's own cell is a legal target even though it blocks
	// transit: the tail case.
	if !HasPath(game.Point{X: 0, Y: 4}, game.Point{X: 1, Y: 4}, 5, wall) {
		t.Error("a body cell used as target should be reachable")
	}
	if HasPath(game.Point{X: 0, Y: 0}, game.Point{X: 1, Y: 4}, 5, append(wall, game.Point{X: 0, Y: 3})) {
		t.Error("target exemption must not open transit through other body cells")
	}
}
