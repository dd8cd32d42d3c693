package sim

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"golang.org/x/exp/rand"

	"snake-agent/game"
	"snake-agent/planner"
	"snake-agent/policy"
)

// Termination classifies how an episode ended. All three are normal
// results, not errors.
type Termination int

const (
	// TerminationCollided covers wall/self collision and the boxed-in
	// no-safe-move case.
	TerminationCollided Termination = iota
	// TerminationTimeout covers the step budget running out and
	// external cancellation.
	TerminationTimeout
	// TerminationWon means the snake filled the whole grid.
	TerminationWon
)

func (t Termination) String() string {
	switch t {
	case TerminationCollided:
		return "collided"
	case TerminationTimeout:
		return "timeout"
	case TerminationWon:
		return "won"
	default:
		return "unknown"
	}
}

// EpisodeResult summarizes one finished episode.
type EpisodeResult struct {
	Score       int
	Turns       int
	Termination Termination
}

// RunEpisode plays a single episode to completion: each tick plans the
// candidate moves, lets the policy pick one and steps the world. The
// returned error covers only configuration and policy faults; collisions,
// timeouts and cancellation are reported in the result.
func RunEpisode(ctx context.Context, cfg Config, p policy.Policy, logger log.Logger) (EpisodeResult, error) {
	if err := cfg.Validate(); err != nil {
		return EpisodeResult{}, err
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	w := game.NewWorld(cfg.Size, rng)

	for w.Steps() < cfg.MaxSteps {
		if ctx.Err() != nil {
			// External abort is a normal termination.
			return result(w, TerminationTimeout), nil
		}

		candidates := planner.PlanWorld(w)
		dir, err := p.Act(candidates)
		if errors.Is(err, policy.ErrNoSafeMove) {
			return result(w, TerminationCollided), nil
		}
		if err != nil {
			return EpisodeResult{}, fmt.Errorf("policy failed at step %d: %w", w.Steps(), err)
		}

		outcome, err := w.Step(dir)
		if err != nil {
			return EpisodeResult{}, fmt.Errorf("step %d rejected: %w", w.Steps(), err)
		}

		_ = level.Debug(logger).Log(
			"msg", "tick",
			"step", w.Steps(),
			"dir", dir,
			"outcome", outcome,
			"score", w.Score(),
		)

		switch outcome {
		case game.Collided:
			return result(w, TerminationCollided), nil
		case game.Won:
			return result(w, TerminationWon), nil
		}
	}

	return result(w, TerminationTimeout), nil
}

func result(w *game.World, t Termination) EpisodeResult {
	return EpisodeResult{
		Score:       w.Score(),
		Turns:       w.Steps(),
		Termination: t,
	}
}
