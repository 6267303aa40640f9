package experiment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/sortvis/internal/algorithms"
	"github.com/san-kum/sortvis/internal/sequence"
)

func TestRegistry_Algorithms(t *testing.T) {
	r := NewRegistry()
	assert.Equal(t, []string{"quick", "merge", "bubble", "heap"}, r.ListAlgorithms())

	for _, name := range []string{"heap", "Heap Sort", "merge_sort"} {
		_, err := r.GetAlgorithm(name)
		assert.NoError(t, err, name)
	}

	_, err := r.GetAlgorithm("bogo")
	assert.EqualError(t, err, "unknown algorithm: bogo")
}

func TestRegistry_Metrics(t *testing.T) {
	r := NewRegistry()
	assert.Equal(t, []string{"inversions", "sortedness", "swap_ratio"}, r.ListMetrics())

	m, err := r.GetMetric("inversions")
	require.NoError(t, err)
	assert.Equal(t, "inversions", m.Name())

	_, err = r.GetMetric("entropy")
	assert.Error(t, err)

	assert.Len(t, r.DefaultMetrics(), 3)
}

func TestExperiment_RunBeforeSetup(t *testing.T) {
	e := New(nil, Config{Algorithm: algorithms.Heap, Size: 10})
	_, err := e.Run(context.Background())
	assert.Error(t, err)
}

func TestExperiment_RunSeededValues(t *testing.T) {
	e := New(nil, Config{
		Algorithm: algorithms.Bubble,
		Values:    []int{5, 3, 4, 1, 2},
	})
	require.NoError(t, e.Setup(NewRegistry().DefaultMetrics()))

	res, err := e.Run(context.Background())
	require.NoError(t, err)
	assert.True(t, res.Sorted)
	assert.Equal(t, 5, res.Size)
	assert.Equal(t, 10, res.Metrics.Comparisons)
	assert.Equal(t, 8, res.Metrics.Swaps)
	assert.Equal(t, 1.0, res.Values["sortedness"])
	assert.Equal(t, "bubble", e.Label())
}

func TestExperiment_SameSeedSameWork(t *testing.T) {
	run := func() int {
		e := New(nil, Config{Algorithm: algorithms.Quick, Size: 80, Seed: 5, Label: "q"})
		require.NoError(t, e.Setup(nil))
		res, err := e.Run(context.Background())
		require.NoError(t, err)
		return res.Metrics.Comparisons
	}
	assert.Equal(t, run(), run())
}

func TestExperiment_InvalidSize(t *testing.T) {
	e := New(nil, Config{Algorithm: algorithms.Merge, Size: -4})
	assert.Error(t, e.Setup(nil))
}

func TestExperiment_DuplicateValues(t *testing.T) {
	e := New(nil, Config{Algorithm: algorithms.Quick, Values: []int{3, 1, 3}})
	assert.ErrorIs(t, e.Setup(nil), sequence.ErrDuplicate)
}
