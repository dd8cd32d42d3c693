package game

// abs restituisce il valore assoluto di un intero.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Manhattan calcola la distanza di Manhattan tra due punti. The grid does
// not wrap, so this is the plain |dx|+|dy| metric.
func Manhattan(a, b Point) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

// InBounds reports whether p lies inside a size×size grid.
func InBounds(p Point, size int) bool {
	return p.X >= 0 && p.X < size && p.Y >= 0 && p.Y < size
}
