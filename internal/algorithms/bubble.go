package algorithms

import "github.com/san-kum/sortvis/internal/sequence"

// bubbleSorter compares adjacent pairs, swapping them when out of order. The inner
// bound shrinks by one after every pass and the run ends after n-1 passes.
type bubbleSorter struct {
	n    int
	pass int
	i    int
	done bool
	cur  Cursors
}

func newBubble() *bubbleSorter {
	return &bubbleSorter{done: true, cur: noCursors}
}

func (b *bubbleSorter) Init(s *sequence.Sequence) {
	b.n = s.Len()
	b.pass = 0
	b.i = 0
	b.done = b.n < 2
	b.cur = noCursors
}

func (b *bubbleSorter) Step(s *sequence.Sequence) Result {
	if b.done {
		return finished
	}

	i := b.i
	s.Highlight(i, i+1)
	if s.Less(i+1, i) {
		s.Swap(i, i+1)
	}
	b.cur = Cursors{Current: i, Compare: i + 1, Partition: b.n - b.pass - 1}

	b.i++
	if b.i >= b.n-b.pass-1 {
		b.i = 0
		b.pass++
	}
	b.done = b.pass >= b.n-1
	return progress(b.done)
}

func (b *bubbleSorter) Done() bool { return b.done }

func (b *bubbleSorter) Cursors() Cursors { return b.cur }
