package sim

import (
	"context"
	"fmt"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"golang.org/x/sync/errgroup"

	"snake-agent/policy"
	"snake-agent/stats"
)

// RunBatch evaluates a policy over n independent episodes and collects
// their metrics into one log. Episode i runs with seed cfg.Seed+i, so a
// batch is reproducible regardless of worker count. The policy is shared
// across workers and must be safe for concurrent use (the stateless
// greedy policy is); everything else is per-episode.
func RunBatch(ctx context.Context, n int, cfg Config, p policy.Policy, workers int, logger log.Logger) (*stats.Log, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: episode count must be positive, got %d", ErrBadConfig, n)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if workers < 1 {
		workers = 1
	}

	episodeLog := stats.NewLog()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := 0; i < n; i++ {
		episode := i
		g.Go(func() error {
			epCfg := cfg
			epCfg.Seed = cfg.Seed + uint64(episode)

			res, err := RunEpisode(gctx, epCfg, p, logger)
			if err != nil {
				return fmt.Errorf("episode %d: %w", episode, err)
			}

			episodeLog.Record(res.Score, res.Turns)
			_ = level.Info(logger).Log(
				"msg", "episode finished",
				"episode", episode,
				"seed", epCfg.Seed,
				"score", res.Score,
				"turns", res.Turns,
				"termination", res.Termination,
			)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return episodeLog, nil
}
