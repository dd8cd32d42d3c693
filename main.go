package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"snake-agent/policy"
	"snake-agent/sim"
	"snake-agent/stats"
)

type runReport struct {
	RunID    string                         `json:"run_id"`
	Episodes int                            `json:"episodes"`
	Size     int                            `json:"size"`
	MaxSteps int                            `json:"max_steps"`
	Seed     uint64                         `json:"seed"`
	Summary  map[string]stats.MetricSummary `json:"summary"`
}

func main() {
	size := flag.Int("size", 10, "Grid side length")
	episodes := flag.Int("episodes", 100, "Number of episodes to run")
	maxSteps := flag.Int("max-steps", 1000, "Step budget per episode")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "Base random seed")
	workers := flag.Int("workers", 1, "Parallel episode workers")
	verbose := flag.Bool("v", false, "Log every tick")
	flag.Parse()

	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	if *verbose {
		logger = level.NewFilter(logger, level.AllowDebug())
	} else {
		logger = level.NewFilter(logger, level.AllowInfo())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg := sim.Config{
		Size:     *size,
		MaxSteps: *maxSteps,
		Seed:     *seed,
	}

	episodeLog, err := sim.RunBatch(ctx, *episodes, cfg, policy.Greedy{}, *workers, logger)
	if err != nil {
		_ = level.Error(logger).Log("msg", "run failed", "err", err)
		os.Exit(1)
	}

	report := runReport{
		RunID:    episodeLog.RunID(),
		Episodes: *episodes,
		Size:     cfg.Size,
		MaxSteps: cfg.MaxSteps,
		Seed:     cfg.Seed,
		Summary:  episodeLog.Summary(),
	}
	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		_ = level.Error(logger).Log("msg", "encoding report failed", "err", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
