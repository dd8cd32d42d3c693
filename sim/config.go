// Package sim drives episodes: it owns the tick loop connecting the
// world, the planner and a policy, and the batch evaluation on top.
package sim

import (
	"errors"
	"fmt"
)

// ErrBadConfig marks configuration rejected before any tick runs.
var ErrBadConfig = errors.New("invalid configuration")

// Config carries the explicit per-episode settings. There are no global
// defaults baked into the components; the caller decides everything.
type Config struct {
	// Size is the grid side length.
	Size int
	// MaxSteps is the tick budget; exceeding it ends the episode with
	// a timeout termination.
	MaxSteps int
	// Seed drives food placement. Batch runs derive per-episode seeds
	// from it.
	Seed uint64
}

// Validate rejects configurations no episode can start from. The grid
// must hold the initial two-segment snake plus food.
func (c Config) Validate() error {
	if c.Size <= 0 {
		return fmt.Errorf("%w: grid size must be positive, got %d", ErrBadConfig, c.Size)
	}
	if c.Size < 3 {
		// The starting snake sits at (c,c)-(c,c+1) with c = size/2;
		// size 2 would place the tail outside the grid.
		return fmt.Errorf("%w: grid size must be at least 3, got %d", ErrBadConfig, c.Size)
	}
	if c.MaxSteps <= 0 {
		return fmt.Errorf("%w: max steps must be positive, got %d", ErrBadConfig, c.MaxSteps)
	}
	return nil
}
