package algorithms

import (
	"slices"

	"github.com/san-kum/sortvis/internal/sequence"
)

// span is an inclusive [lo, hi] index range awaiting partitioning.
type span struct {
	lo, hi int
}

// quickSorter is Lomuto quicksort using the first element of each range as the
// pivot. Pending ranges live on an explicit stack.
//
// A step is one of: popping the next range, comparing the scan element with
// the pivot (and swapping it into the boundary when smaller), or placing the
// pivot once the scan is exhausted.
type quickSorter struct {
	stack  []span
	active bool
	lo, hi int
	scan   int
	bound  int
	cur    Cursors
}

func newQuick() *quickSorter {
	return &quickSorter{cur: noCursors}
}

func (q *quickSorter) Init(s *sequence.Sequence) {
	q.stack = q.stack[:0]
	q.active = false
	q.cur = noCursors
	if n := s.Len(); n >= 2 {
		q.stack = append(q.stack, span{0, n - 1})
	}
}

func (q *quickSorter) Step(s *sequence.Sequence) Result {
	if q.Done() {
		return finished
	}

	if !q.active {
		top := q.stack[len(q.stack)-1]
		q.stack = q.stack[:len(q.stack)-1]
		q.lo, q.hi = top.lo, top.hi
		q.scan = top.lo + 1
		q.bound = top.lo
		q.active = true
		q.mark(s)
		return progress(false)
	}

	if q.scan <= q.hi {
		if s.Less(q.scan, q.lo) {
			q.bound++
			s.Swap(q.bound, q.scan)
		}
		q.mark(s)
		q.scan++
		return progress(false)
	}

	s.Swap(q.lo, q.bound)
	s.Highlight(distinct(q.lo, q.bound)...)
	q.cur = Cursors{Current: q.bound, Compare: -1, Partition: q.bound}
	q.push(q.bound+1, q.hi)
	q.push(q.lo, q.bound-1)
	q.active = false
	return progress(q.Done())
}

// mark highlights pivot, scan index and partition boundary.
func (q *quickSorter) mark(s *sequence.Sequence) {
	scan := q.scan
	if scan > q.hi {
		scan = q.hi
	}
	s.Highlight(distinct(q.lo, scan, q.bound)...)
	q.cur = Cursors{Current: q.lo, Compare: scan, Partition: q.bound}
}

// distinct drops repeated indices, keeping first occurrences in order.
func distinct(idx ...int) []int {
	out := idx[:0]
	for _, i := range idx {
		if !slices.Contains(out, i) {
			out = append(out, i)
		}
	}
	return out
}

func (q *quickSorter) push(lo, hi int) {
	if hi-lo >= 1 {
		q.stack = append(q.stack, span{lo, hi})
	}
}

// pending returns the number of ranges waiting on the stack.
func (q *quickSorter) pending() int { return len(q.stack) }

func (q *quickSorter) Done() bool { return !q.active && len(q.stack) == 0 }

func (q *quickSorter) Cursors() Cursors { return q.cur }
