// Package stats records per-episode metrics for offline comparison of
// policy variants.
package stats

import (
	"sync"

	"github.com/google/uuid"
)

// Metric names tracked for every episode.
const (
	MetricScore = "score"
	MetricTurns = "turns"
)

// Log accumula le metriche di ogni episodio di una run. Append-only:
// entries are never removed or rewritten. Safe for concurrent recording
// from parallel episode workers.
type Log struct {
	runID  string
	mutex  sync.RWMutex
	series map[string][]int
}

// MetricSummary holds the aggregate statistics of one metric.
type MetricSummary struct {
	Count int     `json:"count"`
	Mean  float64 `json:"mean"`
	Max   int     `json:"max"`
	Min   int     `json:"min"`
}

// NewLog creates an empty log with a fresh run identifier.
func NewLog() *Log {
	return &Log{
		runID: uuid.New().String(),
		series: map[string][]int{
			MetricScore: {},
			MetricTurns: {},
		},
	}
}

// RunID returns the identifier of this run.
func (l *Log) RunID() string {
	return l.runID
}

// Record appends one completed episode to every tracked metric.
func (l *Log) Record(score, turns int) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	l.series[MetricScore] = append(l.series[MetricScore], score)
	l.series[MetricTurns] = append(l.series[MetricTurns], turns)
}

// Series returns a copy of the recorded values for one metric, in
// recording order.
func (l *Log) Series(metric string) []int {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	values := l.series[metric]
	out := make([]int, len(values))
	copy(out, values)
	return out
}

// Summary computes per-metric aggregates over everything recorded so far.
func (l *Log) Summary() map[string]MetricSummary {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	out := make(map[string]MetricSummary, len(l.series))
	for name, values := range l.series {
		out[name] = summarize(values)
	}
	return out
}

func summarize(values []int) MetricSummary {
	s := MetricSummary{Count: len(values)}
	if s.Count == 0 {
		return s
	}

	sum := 0
	s.Max = values[0]
	s.Min = values[0]
	for _, v := range values {
		sum += v
		if v > s.Max {
			s.Max = v
		}
		if v < s.Min {
			s.Min = v
		}
	}
	s.Mean = float64(sum) / float64(s.Count)
	return s
}
