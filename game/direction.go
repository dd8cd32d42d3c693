package game

import "fmt"

// Direction rappresenta una direzione cardinale. The four values form the
// whole action space; their declaration order is the tie-break order used
// by deterministic policies.
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions lists the action space in declaration order.
var Directions = [4]Direction{Up, Right, Down, Left}

// Offset converts a Direction into a displacement vector. Y grows downward.
func (d Direction) Offset() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -1}
	case Right:
		return Point{X: 1, Y: 0}
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	default:
		return Point{X: 0, Y: 0}
	}
}

// TurnLeft restituisce la direzione risultante da una rotazione a sinistra.
func (d Direction) TurnLeft() Direction {
	switch d {
	case Up:
		return Left
	case Right:
		return Up
	case Down:
		return Right
	case Left:
		return Down
	default:
		return d
	}
}

// TurnRight restituisce la direzione risultante da una rotazione a destra.
func (d Direction) TurnRight() Direction {
	switch d {
	case Up:
		return Right
	case Right:
		return Down
	case Down:
		return Left
	case Left:
		return Up
	default:
		return d
	}
}

// Opposite returns the 180-degree reversal of d.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Right:
		return Left
	case Down:
		return Up
	case Left:
		return Right
	default:
		return d
	}
}

// Valid reports whether d is one of the four cardinal directions.
func (d Direction) Valid() bool {
	return d >= Up && d <= Left
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "UP"
	case Right:
		return "RIGHT"
	case Down:
		return "DOWN"
	case Left:
		return "LEFT"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection converts a direction name as produced by String back into
// a Direction.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "UP":
		return Up, nil
	case "RIGHT":
		return Right, nil
	case "DOWN":
		return Down, nil
	case "LEFT":
		return Left, nil
	default:
		return 0, fmt.Errorf("unknown direction %q", s)
	}
}
