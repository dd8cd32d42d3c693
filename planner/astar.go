package planner

import (
	"container/heap"

	"snake-agent/game"
)

// searchNode is an entry in the A* open list.
type searchNode struct {
	pos    game.Point
	parent *searchNode
	g, f   int
	index  int // for heap.Interface
}

type nodeHeap []*searchNode

func (h nodeHeap) Len() int           { return len(h) }
func (h nodeHeap) Less(i, j int) bool { return h[i].f < h[j].f }
func (h nodeHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *nodeHeap) Push(x any) {
	item := x.(*searchNode)
	item.index = len(*h)
	*h = append(*h, item)
}

func (h *nodeHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*h = old[:n-1]
	return item
}

// FindPath runs A* from start to goal with the Manhattan heuristic and
// unit step cost. Body segments are obstacles, except the goal cell
// (pathing to the tail, which vacates) and start itself. Returns the
// path including both endpoints, or nil when goal is unreachable.
func FindPath(start, goal game.Point, size int, body []game.Point) []game.Point {
	if !game.InBounds(start, size) || !game.InBounds(goal, size) {
		return nil
	}

	obstacles := make(map[game.Point]bool, len(body))
	for _, p := range body {
		obstacles[p] = true
	}
	delete(obstacles, goal)
	delete(obstacles, start)

	open := &nodeHeap{}
	heap.Init(open)
	heap.Push(open, &searchNode{pos: start, g: 0, f: game.Manhattan(start, goal)})

	gScore := map[game.Point]int{start: 0}

	for open.Len() > 0 {
		curr := heap.Pop(open).(*searchNode)

		if curr.pos == goal {
			var path []game.Point
			for n := curr; n != nil; n = n.parent {
				path = append([]game.Point{n.pos}, path...)
			}
			return path
		}

		for _, d := range game.Directions {
			off := d.Offset()
			next := game.Point{X: curr.pos.X + off.X, Y: curr.pos.Y + off.Y}
			if !game.InBounds(next, size) || obstacles[next] {
				continue
			}

			g := curr.g + 1
			if prev, seen := gScore[next]; seen && g >= prev {
				continue
			}
			gScore[next] = g
			heap.Push(open, &searchNode{
				pos:    next,
				parent: curr,
				g:      g,
				f:      g + game.Manhattan(next, goal),
			})
		}
	}

	return nil
}
