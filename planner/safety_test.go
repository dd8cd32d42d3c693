package planner

import (
	"testing"

	"snake-agent/game"
)

func TestIsUnsafeBounds(t *testing.T) {
	body := []game.Point{{X: 5, Y: 5}, {X: 5, Y: 6}, {X: 5, Y: 7}}
	tests := []game.Point{{X: -1, Y: 5}, {X: 10, Y: 5}, {X: 5, Y: -1}, {X: 5, Y: 10}}
	for _, pos := range tests {
		if !IsUnsafe(pos, 10, body) {
			t.Errorf("IsUnsafe(%v) = false, want true (out of bounds)", pos)
		}
	}
}

func TestIsUnsafeBody(t *testing.T) {
	body := []game.Point{{X: 5, Y: 5}, {X: 5, Y: 6}, {X: 5, Y: 7}}

	if !IsUnsafe(game.Point{X: 5, Y: 6}, 10, body) {
		t.Error("mid-body cell should be unsafe")
	}
	if !IsUnsafe(game.Point{X: 5, Y: 5}, 10, body) {
		t.Error("head cell should be unsafe")
	}
	// The tail vacates this tick, so its cell is a legal destination.
	if IsUnsafe(game.Point{X: 5, Y: 7}, 10, body) {
		t.Error("current tail cell should be safe on a non-eating step")
	}
	if IsUnsafe(game.Point{X: 4, Y: 5}, 10, body) {
		t.Error("free cell should be safe")
	}
}

func TestIsUnsafeEmptyBody(t *testing.T) {
	if IsUnsafe(game.Point{X: 0, Y: 0}, 5, nil) {
		t.Error("in-bounds cell with no body should be safe")
	}
}
