package game

import (
	"errors"

	"golang.org/x/exp/rand"
)

// Point è una coordinata intera sulla griglia.
type Point struct {
	X, Y int
}

// Outcome represents the result of a single step.
type Outcome int

const (
	Continue Outcome = iota
	Ate
	Collided
	Won
)

func (o Outcome) String() string {
	switch o {
	case Continue:
		return "continue"
	case Ate:
		return "ate"
	case Collided:
		return "collided"
	case Won:
		return "won"
	default:
		return "unknown"
	}
}

var (
	// ErrInvalidAction is returned when a step is requested with a
	// direction outside the four-value action space.
	ErrInvalidAction = errors.New("invalid action")
	// ErrGameOver is returned when stepping a finished episode.
	ErrGameOver = errors.New("game is over")
)

// World owns the full game state: grid size, snake body (head first),
// current heading and food position. All mutation goes through Step.
type World struct {
	size  int
	body  []Point
	dir   Direction
	food  Point
	score int
	steps int
	done  bool
	rng   *rand.Rand
}

// NewWorld creates a world with the initial two-segment snake placed at
// the center, heading up. The rng drives food placement; callers seed it
// explicitly so runs are reproducible.
func NewWorld(size int, rng *rand.Rand) *World {
	w := &World{
		size: size,
		rng:  rng,
	}
	w.reset()
	return w
}

func (w *World) reset() {
	c := w.size / 2
	w.body = []Point{{X: c, Y: c}, {X: c, Y: c + 1}}
	w.dir = Up
	w.score = 0
	w.steps = 0
	w.done = false
	w.food = w.spawnFood()
}

// Reset riporta il mondo allo stato iniziale, con nuovo cibo.
func (w *World) Reset() {
	w.reset()
}

// spawnFood draws a free cell by rejection sampling. Callers must ensure
// at least one free cell exists.
func (w *World) spawnFood() Point {
	for {
		food := Point{
			X: w.rng.Intn(w.size),
			Y: w.rng.Intn(w.size),
		}
		valid := true
		for _, part := range w.body {
			if food == part {
				valid = false
				break
			}
		}
		if valid {
			return food
		}
	}
}

// Step advances the world by one tick in the given direction.
//
// The head moves one cell; eating grows the snake and relocates the food,
// otherwise the tail cell is vacated. Moving out of bounds or into the
// body (the vacating tail cell excepted) ends the episode with Collided.
// Filling the whole grid ends it with Won.
func (w *World) Step(dir Direction) (Outcome, error) {
	if !dir.Valid() {
		return Collided, ErrInvalidAction
	}
	if w.done {
		return Collided, ErrGameOver
	}

	w.dir = dir
	off := dir.Offset()
	newHead := Point{X: w.body[0].X + off.X, Y: w.body[0].Y + off.Y}

	if w.isCollision(newHead) {
		w.done = true
		return Collided, nil
	}

	w.steps++

	if newHead == w.food {
		// Grow: keep the tail.
		w.body = append([]Point{newHead}, w.body...)
		w.score++
		if len(w.body) == w.size*w.size {
			w.done = true
			return Won, nil
		}
		w.food = w.spawnFood()
		return Ate, nil
	}

	w.body = append([]Point{newHead}, w.body[:len(w.body)-1]...)
	return Continue, nil
}

// isCollision checks walls and the body. The last segment is excluded:
// on a non-eating step that cell is vacated in the same tick, and a head
// landing on the food is never on the body at all.
func (w *World) isCollision(pos Point) bool {
	if pos.X < 0 || pos.X >= w.size || pos.Y < 0 || pos.Y >= w.size {
		return true
	}
	for _, part := range w.body[:len(w.body)-1] {
		if pos == part {
			return true
		}
	}
	return false
}

// Head returns the current head position.
func (w *World) Head() Point {
	return w.body[0]
}

// Tail returns the current tail position.
func (w *World) Tail() Point {
	return w.body[len(w.body)-1]
}

// Body returns a copy of the snake body, head first.
func (w *World) Body() []Point {
	body := make([]Point, len(w.body))
	copy(body, w.body)
	return body
}

// Food returns the current food position.
func (w *World) Food() Point {
	return w.food
}

// CurrentDirection returns the heading of the last applied step.
func (w *World) CurrentDirection() Direction {
	return w.dir
}

// Score returns the number of food items eaten this episode.
func (w *World) Score() int {
	return w.score
}

// Steps returns the number of completed ticks this episode.
func (w *World) Steps() int {
	return w.steps
}

// Size returns the grid side length.
func (w *World) Size() int {
	return w.size
}

// Done reports whether the episode has ended.
func (w *World) Done() bool {
	return w.done
}
