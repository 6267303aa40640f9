package experiment

import (
	"fmt"
	"maps"
	"slices"

	"github.com/san-kum/sortvis/internal/algorithms"
	"github.com/san-kum/sortvis/internal/engine"
	"github.com/san-kum/sortvis/internal/metrics"
)

type Registry struct {
	algorithms map[string]algorithms.Type
	metrics    map[string]func() engine.Metric
}

func NewRegistry() *Registry {
	r := &Registry{
		algorithms: make(map[string]algorithms.Type),
		metrics:    make(map[string]func() engine.Metric),
	}

	for _, t := range algorithms.Types() {
		r.algorithms[t.Info().Key] = t
	}

	r.metrics["sortedness"] = func() engine.Metric { return metrics.NewSortedness() }
	r.metrics["inversions"] = func() engine.Metric { return metrics.NewInversions() }
	r.metrics["swap_ratio"] = func() engine.Metric { return metrics.NewSwapRatio() }

	return r
}

// GetAlgorithm resolves a registered key first, then any spelling accepted by
// algorithms.ParseType.
func (r *Registry) GetAlgorithm(name string) (algorithms.Type, error) {
	if t, ok := r.algorithms[name]; ok {
		return t, nil
	}
	t, err := algorithms.ParseType(name)
	if err != nil {
		return 0, fmt.Errorf("unknown algorithm: %s", name)
	}
	return t, nil
}

func (r *Registry) GetMetric(name string) (engine.Metric, error) {
	fn, ok := r.metrics[name]
	if !ok {
		return nil, fmt.Errorf("unknown metric: %s", name)
	}
	return fn(), nil
}

// ListAlgorithms returns the registered keys in enum order.
func (r *Registry) ListAlgorithms() []string {
	names := make([]string, 0, len(r.algorithms))
	for _, t := range algorithms.Types() {
		names = append(names, t.Info().Key)
	}
	return names
}

func (r *Registry) ListMetrics() []string {
	return slices.Sorted(maps.Keys(r.metrics))
}

func (r *Registry) DefaultMetrics() []engine.Metric {
	return []engine.Metric{
		metrics.NewSortedness(),
		metrics.NewInversions(),
		metrics.NewSwapRatio(),
	}
}
