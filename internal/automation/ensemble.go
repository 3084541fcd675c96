package automation

import (
	"context"
	"sync"

	"github.com/san-kum/orrery/internal/logging"
	"github.com/san-kum/orrery/internal/orrery"
)

// BuildFunc builds a fresh system for one seed.
type BuildFunc func(seed int64) (*orrery.System, error)

// Ensemble plays one scenario against systems built from consecutive seeds.
// Each run owns its system, so runs proceed in parallel.
type Ensemble struct {
	build     BuildFunc
	numRuns   int
	seedStart int64
	log       *logging.Logger
}

// EnsembleResult is the outcome of one seed. Err is nil when every
// expectation held.
type EnsembleResult struct {
	Seed    int64
	Results []StepResult
	Err     error
}

func NewEnsemble(build BuildFunc, numRuns int, seedStart int64, log *logging.Logger) *Ensemble {
	if log == nil {
		log = logging.Discard()
	}
	return &Ensemble{build: build, numRuns: numRuns, seedStart: seedStart, log: log}
}

// Run returns one result per seed, in seed order. Scenario failures are
// reported per run; only a build failure aborts the ensemble.
func (e *Ensemble) Run(ctx context.Context, sc *Scenario) ([]EnsembleResult, error) {
	results := make([]EnsembleResult, e.numRuns)
	errs := make([]error, e.numRuns)

	var wg sync.WaitGroup
	for i := 0; i < e.numRuns; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			seed := e.seedStart + int64(idx)
			sys, err := e.build(seed)
			if err != nil {
				errs[idx] = err
				return
			}
			steps, err := RunScenario(ctx, sc, sys, nil)
			results[idx] = EnsembleResult{Seed: seed, Results: steps, Err: err}
			if err != nil {
				e.log.Debug("seed %d: %v", seed, err)
			}
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

// Passed counts runs without error.
func Passed(results []EnsembleResult) int {
	n := 0
	for _, r := range results {
		if r.Err == nil {
			n++
		}
	}
	return n
}
