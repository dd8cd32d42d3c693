// Package perception converts raw world state into the fixed-shape
// representations a decision policy consumes: an occupancy matrix and
// connectivity queries over the free cells.
package perception

import "snake-agent/game"

// Cell values in an encoded board.
const (
	CellEmpty = 0
	CellSnake = 1
	CellFood  = 2
)

// EncodeBoard builds a size×size matrix from the snake body and food
// position, indexed board[y][x]. Empty cells are 0, body cells 1, and the
// food cell 2. The food marker is written after the body loop; overlapping
// body segments are last-write-wins. Off-grid segments are skipped.
func EncodeBoard(size int, body []game.Point, food game.Point) [][]int {
	board := make([][]int, size)
	for y := range board {
		board[y] = make([]int, size)
	}

	for _, p := range body {
		if game.InBounds(p, size) {
			board[p.Y][p.X] = CellSnake
		}
	}
	if game.InBounds(food, size) {
		board[food.Y][food.X] = CellFood
	}

	return board
}
