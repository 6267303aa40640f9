package metrics

import "github.com/san-kum/sortvis/internal/engine"

// Inversions counts pairs (i, j) with i < j and v[i] > v[j] at the latest
// observation. The first observation of a run is kept as the starting
// disorder.
type Inversions struct {
	name    string
	initial int
	current int
	samples int
	buf     []int
	tmp     []int
}

func NewInversions() *Inversions {
	return &Inversions{
		name: "inversions",
	}
}

func (m *Inversions) Name() string {
	return m.name
}

func (m *Inversions) Observe(v engine.View) {
	m.current = m.count(v.Values())
	if m.samples == 0 {
		m.initial = m.current
	}
	m.samples++
}

func (m *Inversions) Value() float64 {
	return float64(m.current)
}

// Initial returns the inversion count of the first observation.
func (m *Inversions) Initial() int {
	return m.initial
}

func (m *Inversions) Reset() {
	m.initial = 0
	m.current = 0
	m.samples = 0
}

// count runs a merge-count over a private copy so the observed sequence is
// never touched.
func (m *Inversions) count(values []int) int {
	n := len(values)
	if cap(m.buf) < n {
		m.buf = make([]int, n)
		m.tmp = make([]int, n)
	}
	buf, tmp := m.buf[:n], m.tmp[:n]
	copy(buf, values)

	total := 0
	for width := 1; width < n; width *= 2 {
		for lo := 0; lo < n; lo += 2 * width {
			mid := min(lo+width, n)
			hi := min(lo+2*width, n)
			i, j, k := lo, mid, lo
			for i < mid && j < hi {
				if buf[j] < buf[i] {
					total += mid - i
					tmp[k] = buf[j]
					j++
				} else {
					tmp[k] = buf[i]
					i++
				}
				k++
			}
			k += copy(tmp[k:], buf[i:mid])
			copy(tmp[k:], buf[j:hi])
		}
		buf, tmp = tmp, buf
	}
	return total
}
