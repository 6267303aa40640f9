package algorithms

import (
	"slices"
	"testing"
)

func isMaxHeap(v []int, end int) bool {
	for i := 0; i < end; i++ {
		for _, c := range []int{2*i + 1, 2*i + 2} {
			if c < end && v[c] > v[i] {
				return false
			}
		}
	}
	return true
}

func TestHeap_BuildPhaseProducesMaxHeap(t *testing.T) {
	s := load(1, 2, 3, 4, 5, 6, 7, 8, 9)
	h := newHeap()
	h.Init(s)

	for h.next >= 0 || h.node >= 0 {
		h.Step(s)
	}
	if h.boundary() != s.Len() {
		t.Fatalf("extraction started before build finished")
	}
	if !isMaxHeap(s.Values(), s.Len()) {
		t.Fatalf("not a max heap after build: %v", s.Values())
	}
	if s.At(0) != 9 {
		t.Errorf("root = %d, want 9", s.At(0))
	}
}

func TestHeap_OneComparisonPerStep(t *testing.T) {
	s := load(3, 9, 4, 7, 1, 8, 2, 6, 5, 0)
	h := newHeap()
	h.Init(s)

	prev := s.Metrics()
	for !h.Done() {
		h.Step(s)
		cur := s.Metrics()
		if d := cur.Comparisons - prev.Comparisons; d > 1 {
			t.Fatalf("step did %d comparisons", d)
		}
		if d := cur.Swaps - prev.Swaps; d > 1 {
			t.Fatalf("step did %d swaps", d)
		}
		prev = cur
	}
	if !s.IsSorted() {
		t.Errorf("not sorted: %v", s.Values())
	}
}

func TestHeap_TailStaysSorted(t *testing.T) {
	s := load(8, 3, 6, 1, 9, 2, 7, 0, 5, 4)
	h := newHeap()
	h.Init(s)

	for !h.Done() {
		h.Step(s)
		tail := s.Values()[h.boundary():]
		if !slices.IsSorted(tail) {
			t.Fatalf("sorted tail out of order: %v", tail)
		}
		for _, v := range s.Values()[:h.boundary()] {
			if len(tail) > 0 && v > tail[0] {
				t.Fatalf("heap element %d larger than tail head %d", v, tail[0])
			}
		}
	}
	if h.boundary() != 1 {
		t.Errorf("boundary = %d at finish, want 1", h.boundary())
	}
}

func TestHeap_TwoElements(t *testing.T) {
	s := load(1, 2)
	h := newHeap()
	h.Init(s)

	steps := drive(t, h, s, 10)
	if !slices.Equal(s.Values(), []int{1, 2}) {
		t.Errorf("values = %v", s.Values())
	}
	// sift root, then one extraction swap
	if steps != 2 {
		t.Errorf("steps = %d, want 2", steps)
	}
}
