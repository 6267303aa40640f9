package metrics

import "github.com/san-kum/sortvis/internal/engine"

// SwapRatio is swaps per comparison at the latest observation.
type SwapRatio struct {
	name  string
	ratio float64
}

func NewSwapRatio() *SwapRatio {
	return &SwapRatio{
		name: "swap_ratio",
	}
}

func (s *SwapRatio) Name() string {
	return s.name
}

func (s *SwapRatio) Observe(v engine.View) {
	m := v.Metrics()
	if m.Comparisons == 0 {
		s.ratio = 0
		return
	}
	s.ratio = float64(m.Swaps) / float64(m.Comparisons)
}

func (s *SwapRatio) Value() float64 {
	return s.ratio
}

func (s *SwapRatio) Reset() {
	s.ratio = 0
}
