package sequence

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"time"
)

// ErrDuplicate reports input that holds the same value more than once.
var ErrDuplicate = errors.New("duplicate value")

// Metrics are the rolling counters of a run.
type Metrics struct {
	Comparisons int
	Swaps       int
	Writes      int
	Elapsed     time.Duration
}

// Snapshot is a deep copy of a Sequence, safe to retain.
type Snapshot struct {
	Values     []int
	Highlights []int
	Metrics
}

// IsSorted reports whether the snapshot values are strictly ascending.
func (s Snapshot) IsSorted() bool {
	return strictlyAscending(s.Values)
}

// Sequence is the array under sort together with its scratch buffer,
// highlights and metrics.
type Sequence struct {
	values     []int
	scratch    []int
	highlights []int
	metrics    Metrics
	rng        *rand.Rand
}

// New builds an identity sequence of the given size and shuffles it with rng.
// A nil rng falls back to a fixed PCG seed.
func New(size int, rng *rand.Rand) *Sequence {
	if size < 0 {
		size = 0
	}
	if rng == nil {
		rng = NewRand(0)
	}
	s := &Sequence{
		values:     make([]int, size),
		scratch:    make([]int, size),
		highlights: make([]int, 0, 4),
		rng:        rng,
	}
	s.Reset()
	return s
}

// NewRand returns a PCG-backed generator for the given seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Reset restores the identity permutation, zeroes the metrics, clears the
// highlights and shuffles.
func (s *Sequence) Reset() {
	for i := range s.values {
		s.values[i] = i
	}
	s.metrics = Metrics{}
	s.highlights = s.highlights[:0]
	s.Shuffle()
}

// Shuffle applies a uniform random permutation to the current contents.
// Metrics are left untouched.
func (s *Sequence) Shuffle() {
	s.rng.Shuffle(len(s.values), func(i, j int) {
		s.values[i], s.values[j] = s.values[j], s.values[i]
	})
}

// Load replaces the contents with a copy of values, zeroing the metrics and
// clearing the highlights. Values are expected to be distinct; callers taking
// outside input check them with CheckDistinct first.
func (s *Sequence) Load(values []int) {
	s.values = slices.Clone(values)
	if s.values == nil {
		s.values = []int{}
	}
	s.scratch = make([]int, len(values))
	s.metrics = Metrics{}
	s.highlights = s.highlights[:0]
}

// CheckDistinct returns an error wrapping ErrDuplicate when values repeats an
// element.
func CheckDistinct(values []int) error {
	seen := make(map[int]struct{}, len(values))
	for i, v := range values {
		if _, ok := seen[v]; ok {
			return fmt.Errorf("%w %d at index %d", ErrDuplicate, v, i)
		}
		seen[v] = struct{}{}
	}
	return nil
}

// Len returns the number of elements.
func (s *Sequence) Len() int { return len(s.values) }

// At returns the element at i without counting a comparison.
func (s *Sequence) At(i int) int { return s.values[i] }

// Values exposes the array by reference. Callers must not modify it.
func (s *Sequence) Values() []int { return s.values }

// Metrics returns the counters accumulated since the last Reset or Load.
func (s *Sequence) Metrics() Metrics { return s.metrics }

// Highlights exposes the highlight set by reference. Callers must not modify it.
func (s *Sequence) Highlights() []int { return s.highlights }

// Less compares the elements at i and j and counts one comparison.
func (s *Sequence) Less(i, j int) bool {
	s.metrics.Comparisons++
	return s.values[i] < s.values[j]
}

// Swap exchanges the elements at i and j. Swapping an index with itself is
// not counted.
func (s *Sequence) Swap(i, j int) {
	if i == j {
		return
	}
	s.values[i], s.values[j] = s.values[j], s.values[i]
	s.metrics.Swaps++
}

// Stage copies the element at i into scratch slot k and counts one write.
func (s *Sequence) Stage(k, i int) {
	s.scratch[k] = s.values[i]
	s.metrics.Writes++
}

// Commit copies scratch[lo:hi] back over values[lo:hi].
func (s *Sequence) Commit(lo, hi int) {
	copy(s.values[lo:hi], s.scratch[lo:hi])
}

// Highlight overwrites the highlight set.
func (s *Sequence) Highlight(idx ...int) {
	s.highlights = append(s.highlights[:0], idx...)
}

// AddElapsed accumulates active step time.
func (s *Sequence) AddElapsed(d time.Duration) {
	if d > 0 {
		s.metrics.Elapsed += d
	}
}

// IsSorted reports whether the values are strictly ascending.
func (s *Sequence) IsSorted() bool {
	return strictlyAscending(s.values)
}

// Snapshot returns a deep copy of the current state.
func (s *Sequence) Snapshot() Snapshot {
	return Snapshot{
		Values:     slices.Clone(s.values),
		Highlights: slices.Clone(s.highlights),
		Metrics:    s.metrics,
	}
}

func strictlyAscending(v []int) bool {
	for i := 1; i < len(v); i++ {
		if v[i] <= v[i-1] {
			return false
		}
	}
	return true
}
