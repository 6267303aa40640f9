package algorithms

import (
	"slices"
	"testing"
)

func TestMerge_ArrayChangesOnlyOnCommit(t *testing.T) {
	s := load(4, 3, 2, 1)
	m := newMerge()
	m.Init(s)

	// width 1, pair [0,1): compare, stage other, commit
	m.Step(s)
	if !slices.Equal(s.Values(), []int{4, 3, 2, 1}) {
		t.Fatalf("array changed before commit: %v", s.Values())
	}
	if !slices.Equal(s.Highlights(), []int{0, 1}) {
		t.Errorf("compare highlights = %v", s.Highlights())
	}
	m.Step(s)
	if !slices.Equal(s.Highlights(), []int{0}) {
		t.Errorf("drain highlights = %v", s.Highlights())
	}
	m.Step(s)
	if !slices.Equal(s.Values(), []int{3, 4, 2, 1}) {
		t.Errorf("after first commit: %v", s.Values())
	}

	drive(t, m, s, 100)
	if !slices.Equal(s.Values(), []int{1, 2, 3, 4}) {
		t.Errorf("final: %v", s.Values())
	}

	mt := s.Metrics()
	if mt.Swaps != 0 {
		t.Errorf("merge should not swap, got %d", mt.Swaps)
	}
	// Two levels of n staged writes each.
	if mt.Writes != 8 {
		t.Errorf("writes = %d, want 8", mt.Writes)
	}
}

func TestMerge_OddLengthCarriesTail(t *testing.T) {
	s := load(5, 4, 3, 2, 1)
	m := newMerge()
	m.Init(s)
	drive(t, m, s, 200)

	if !s.IsSorted() {
		t.Errorf("not sorted: %v", s.Values())
	}
	if m.runWidth() < 5 {
		t.Errorf("final width = %d, expected the last merge to span the sequence", m.runWidth())
	}
}

func TestMerge_FinalCommitSpansSequence(t *testing.T) {
	s := load(6, 2, 9, 1, 7, 3, 8)
	m := newMerge()
	m.Init(s)

	var last Result
	for !m.Done() {
		last = m.Step(s)
	}
	if !last.Finished || !last.Continue {
		t.Errorf("last result = %+v", last)
	}
	if !slices.Equal(s.Highlights(), []int{0, 6}) {
		t.Errorf("final commit highlights = %v, want [0 6]", s.Highlights())
	}
}
