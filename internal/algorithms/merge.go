package algorithms

import "github.com/san-kum/sortvis/internal/sequence"

// mergeSorter is bottom-up merge sort. Runs of width 1, 2, 4, ... are merged pairwise
// into the sequence scratch buffer; each step stages one element, and a final
// step commits the merged run back into the array. The array therefore only
// changes on commit steps.
type mergeSorter struct {
	n     int
	width int
	left  int
	mid   int
	right int
	i, j  int
	k     int
	done  bool
	cur   Cursors
}

func newMerge() *mergeSorter {
	return &mergeSorter{done: true, cur: noCursors}
}

func (m *mergeSorter) Init(s *sequence.Sequence) {
	m.n = s.Len()
	m.width = 1
	m.left = 0
	m.done = false
	m.cur = noCursors
	m.seek()
}

// seek positions the stepper on the next pair of runs that both hold
// elements, moving on to the next width when a level is exhausted.
func (m *mergeSorter) seek() {
	for m.width < m.n {
		for m.left < m.n {
			mid := min(m.left+m.width, m.n)
			right := min(m.left+2*m.width, m.n)
			if mid < right {
				m.mid, m.right = mid, right
				m.i, m.j, m.k = m.left, mid, m.left
				return
			}
			m.left += 2 * m.width
		}
		m.left = 0
		m.width *= 2
	}
	m.done = true
}

func (m *mergeSorter) Step(s *sequence.Sequence) Result {
	if m.done {
		return finished
	}

	if m.k < m.right {
		m.cur = Cursors{Current: m.i, Compare: m.j, Partition: m.mid}
		switch {
		case m.i < m.mid && m.j < m.right:
			s.Highlight(m.i, m.j)
			if s.Less(m.j, m.i) {
				s.Stage(m.k, m.j)
				m.j++
			} else {
				s.Stage(m.k, m.i)
				m.i++
			}
		case m.i < m.mid:
			s.Highlight(m.i)
			m.cur.Compare = -1
			s.Stage(m.k, m.i)
			m.i++
		default:
			s.Highlight(m.j)
			m.cur.Current = -1
			s.Stage(m.k, m.j)
			m.j++
		}
		m.k++
		return progress(false)
	}

	s.Commit(m.left, m.right)
	s.Highlight(m.left, m.right-1)
	m.cur = Cursors{Current: m.left, Compare: m.right - 1, Partition: m.mid}
	m.left += 2 * m.width
	m.seek()
	return progress(m.done)
}

// runWidth returns the current run width.
func (m *mergeSorter) runWidth() int { return m.width }

func (m *mergeSorter) Done() bool { return m.done }

func (m *mergeSorter) Cursors() Cursors { return m.cur }
