package metrics

import "github.com/san-kum/sortvis/internal/engine"

// Sortedness is the fraction of adjacent pairs already in ascending order at
// the latest observation. Every observation is kept so the curve can be
// plotted after a run.
type Sortedness struct {
	name   string
	series []float64
}

func NewSortedness() *Sortedness {
	return &Sortedness{
		name:   "sortedness",
		series: make([]float64, 0, 64),
	}
}

func (s *Sortedness) Name() string {
	return s.name
}

func (s *Sortedness) Observe(v engine.View) {
	s.series = append(s.series, adjacentOrder(v.Values()))
}

func (s *Sortedness) Value() float64 {
	if len(s.series) == 0 {
		return 0
	}
	return s.series[len(s.series)-1]
}

func (s *Sortedness) Series() []float64 {
	return s.series
}

func (s *Sortedness) Reset() {
	s.series = s.series[:0]
}

func adjacentOrder(values []int) float64 {
	if len(values) < 2 {
		return 1.0
	}
	ordered := 0
	for i := 1; i < len(values); i++ {
		if values[i-1] < values[i] {
			ordered++
		}
	}
	return float64(ordered) / float64(len(values)-1)
}
