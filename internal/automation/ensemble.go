package automation

import (
	"context"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/san-kum/sortvis/internal/algorithms"
	"github.com/san-kum/sortvis/internal/engine"
	"github.com/san-kum/sortvis/internal/experiment"
)

// Ensemble sorts numRuns independently shuffled sequences of the same size
// with one algorithm, one goroutine per run. Run i uses seed seedStart+i.
type Ensemble struct {
	algorithm algorithms.Type
	size      int
	numRuns   int
	seedStart uint64
	logger    *log.Logger
}

func NewEnsemble(logger *log.Logger, t algorithms.Type, size, numRuns int, seedStart uint64) *Ensemble {
	return &Ensemble{algorithm: t, size: size, numRuns: max(numRuns, 1), seedStart: seedStart, logger: logger}
}

func (e *Ensemble) Run(ctx context.Context) ([]*engine.Result, error) {
	results := make([]*engine.Result, e.numRuns)
	errs := make([]error, e.numRuns)

	var wg sync.WaitGroup
	for i := 0; i < e.numRuns; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			exp := experiment.New(e.logger, experiment.Config{
				Algorithm: e.algorithm,
				Size:      e.size,
				Seed:      e.seedStart + uint64(idx),
			})
			if errs[idx] = exp.Setup(nil); errs[idx] != nil {
				return
			}
			results[idx], errs[idx] = exp.Run(ctx)
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

// Summary holds per-run averages of an ensemble.
type Summary struct {
	Runs        int
	Steps       float64
	Comparisons float64
	Swaps       float64
	Writes      float64
	MinSteps    int
	MaxSteps    int
}

func Summarize(results []*engine.Result) Summary {
	s := Summary{Runs: len(results)}
	if len(results) == 0 {
		return s
	}
	s.MinSteps = results[0].Steps
	for _, r := range results {
		s.Steps += float64(r.Steps)
		s.Comparisons += float64(r.Metrics.Comparisons)
		s.Swaps += float64(r.Metrics.Swaps)
		s.Writes += float64(r.Metrics.Writes)
		s.MinSteps = min(s.MinSteps, r.Steps)
		s.MaxSteps = max(s.MaxSteps, r.Steps)
	}
	n := float64(len(results))
	s.Steps /= n
	s.Comparisons /= n
	s.Swaps /= n
	s.Writes /= n
	return s
}
