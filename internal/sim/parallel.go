package sim

import (
	"context"
	"sync"

	"github.com/Pavel-chemist/floating-objects/internal/world"
)

// Ensemble runs independent worlds, one per seed, on separate goroutines.
// Each world is only ever touched by its own goroutine.
type Ensemble struct {
	newWorld   func(seed int64) *world.World
	newMetrics func() []Metric
	numRuns    int
	seedStart  int64
}

func NewEnsemble(newWorld func(seed int64) *world.World, newMetrics func() []Metric, numRuns int, seedStart int64) *Ensemble {
	return &Ensemble{
		newWorld:   newWorld,
		newMetrics: newMetrics,
		numRuns:    numRuns,
		seedStart:  seedStart,
	}
}

func (e *Ensemble) Run(ctx context.Context, cfg Config) ([]*Result, error) {
	results := make([]*Result, e.numRuns)
	errs := make([]error, e.numRuns)

	var wg sync.WaitGroup
	for i := 0; i < e.numRuns; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			s := New(e.newWorld(e.seedStart + int64(idx)))
			if e.newMetrics != nil {
				for _, m := range e.newMetrics() {
					s.AddMetric(m)
				}
			}

			results[idx], errs[idx] = s.Run(ctx, cfg)
		}(i)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}
