package perception

import "snake-agent/game"

// ReachableCells counts the free cells reachable from start by flood
// fill, treating every body segment except start itself as an obstacle.
// A low count relative to the snake length signals a pocket the snake
// could starve in.
func ReachableCells(start game.Point, size int, body []game.Point) int {
	if !game.InBounds(start, size) {
		return 0
	}

	obstacles := make(map[game.Point]bool, len(body))
	for _, p := range body {
		obstacles[p] = true
	}
	delete(obstacles, start)

	visited := map[game.Point]bool{start: true}
	queue := []game.Point{start}
	count := 0

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		count++

		for _, d := range game.Directions {
			off := d.Offset()
			next := game.Point{X: curr.X + off.X, Y: curr.Y + off.Y}
			if !game.InBounds(next, size) || visited[next] || obstacles[next] {
				continue
			}
			visited[next] = true
			queue = append(queue, next)
		}
	}

	return count
}

// HasPath reports whether target is reachable from start by BFS. Body
// segments block, except the target cell itself: pathing onto the tail is
// legal because the tail vacates as the head arrives.
func HasPath(start, target game.Point, size int, body []game.Point) bool {
	if !game.InBounds(start, size) || !game.InBounds(target, size) {
		return false
	}

	obstacles := make(map[game.Point]bool, len(body))
	for _, p := range body {
		obstacles[p] = true
	}
	delete(obstacles, target)
	delete(obstacles, start)

	visited := map[game.Point]bool{start: true}
	queue := []game.Point{start}

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		if curr == target {
			return true
		}

		for _, d := range game.Directions {
			off := d.Offset()
			next := game.Point{X: curr.X + off.X, Y: curr.Y + off.Y}
			if !game.InBounds(next, size) || visited[next] || obstacles[next] {
				continue
			}
			visited[next] = true
			queue = append(queue, next)
		}
	}

	return false
}
