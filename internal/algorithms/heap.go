package algorithms

import "github.com/san-kum/sortvis/internal/sequence"

// heapSorter is heap sort over a max-heap stored in [0, end). The build phase sifts
// every internal node from the last one down to the root; extraction then
// swaps the root behind the boundary, shrinks it and sifts the new root.
//
// Sifting is split so that a step does at most one comparison and one swap:
// one step picks the larger of two children, the next compares the node with
// that child and swaps them when the child is larger.
type heapSorter struct {
	next  int
	end   int
	node  int
	child int
	done  bool
	cur   Cursors
}

func newHeap() *heapSorter {
	return &heapSorter{done: true, node: -1, child: -1, cur: noCursors}
}

func (h *heapSorter) Init(s *sequence.Sequence) {
	n := s.Len()
	h.next = n/2 - 1
	h.end = n
	h.node = -1
	h.child = -1
	h.cur = noCursors
	h.done = n < 2
}

func (h *heapSorter) Step(s *sequence.Sequence) Result {
	if h.done {
		return finished
	}

	if h.node < 0 {
		if h.next >= 0 {
			h.node = h.next
			h.next--
		} else {
			last := h.end - 1
			s.Swap(0, last)
			s.Highlight(0, last)
			h.cur = Cursors{Current: 0, Compare: last, Partition: last}
			h.end = last
			h.startSift(0)
			return h.advance()
		}
	}

	if h.child < 0 {
		l := 2*h.node + 1
		if r := l + 1; r < h.end {
			s.Highlight(l, r)
			h.cur = Cursors{Current: h.node, Compare: r, Partition: h.end}
			if s.Less(l, r) {
				h.child = r
			} else {
				h.child = l
			}
			return h.advance()
		}
		h.child = l
	}

	s.Highlight(h.node, h.child)
	h.cur = Cursors{Current: h.node, Compare: h.child, Partition: h.end}
	if s.Less(h.node, h.child) {
		s.Swap(h.node, h.child)
		h.startSift(h.child)
	} else {
		h.startSift(-1)
	}
	return h.advance()
}

// startSift makes node the node being sifted, or clears it when node has no
// children inside the heap.
func (h *heapSorter) startSift(node int) {
	h.child = -1
	if node < 0 || 2*node+1 >= h.end {
		h.node = -1
		return
	}
	h.node = node
}

func (h *heapSorter) advance() Result {
	h.done = h.next < 0 && h.node < 0 && h.end <= 1
	return progress(h.done)
}

// boundary returns the first index of the sorted tail.
func (h *heapSorter) boundary() int { return h.end }

func (h *heapSorter) Done() bool { return h.done }

func (h *heapSorter) Cursors() Cursors { return h.cur }
