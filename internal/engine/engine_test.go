package engine_test

import (
	"context"
	"slices"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/sortvis/internal/algorithms"
	"github.com/san-kum/sortvis/internal/engine"
	"github.com/san-kum/sortvis/internal/sequence"
)

func newEngine(size int, seed uint64, t algorithms.Type) *engine.Engine {
	cfg := engine.DefaultConfig()
	cfg.Size = size
	cfg.Seed = seed
	cfg.Algorithm = t
	e, err := engine.New(nil, cfg)
	Expect(err).NotTo(HaveOccurred())
	return e
}

func runToEnd(e *engine.Engine) int {
	steps := 0
	for !e.IsFinished() {
		Expect(e.Step()).To(BeTrue())
		steps++
	}
	return steps
}

type countingMetric struct {
	observed int
	resets   int
}

func (c *countingMetric) Name() string        { return "count" }
func (c *countingMetric) Observe(engine.View) { c.observed++ }
func (c *countingMetric) Value() float64      { return float64(c.observed) }
func (c *countingMetric) Reset()              { c.observed = 0; c.resets++ }

type recordingObserver struct {
	snaps   []sequence.Snapshot
	cursors []algorithms.Cursors
}

func (r *recordingObserver) OnStep(s sequence.Snapshot, c algorithms.Cursors) {
	r.snaps = append(r.snaps, s)
	r.cursors = append(r.cursors, c)
}

var _ = Describe("Engine", func() {
	Describe("construction", func() {
		It("defaults to the first algorithm and the default size", func() {
			e, err := engine.New(nil, engine.DefaultConfig())
			Expect(err).NotTo(HaveOccurred())
			Expect(e.AlgorithmType()).To(Equal(algorithms.Quick))
			Expect(e.AlgorithmName()).To(Equal("Quick Sort"))
			Expect(e.State().Values).To(HaveLen(engine.DefaultSize))
			Expect(e.IsFinished()).To(BeFalse())
		})

		It("rejects invalid configuration", func() {
			cfg := engine.DefaultConfig()
			cfg.Size = -1
			_, err := engine.New(nil, cfg)
			Expect(err).To(MatchError(engine.ErrInvalidSize))

			cfg = engine.DefaultConfig()
			cfg.MinSpeed, cfg.MaxSpeed = 2, 1
			_, err = engine.New(nil, cfg)
			Expect(err).To(MatchError(engine.ErrSpeedBounds))

			cfg = engine.DefaultConfig()
			cfg.Algorithm = algorithms.Type(99)
			_, err = engine.New(nil, cfg)
			Expect(err).To(MatchError(engine.ErrUnknownAlgorithm))
		})

		It("is finished immediately for a single element", func() {
			e := newEngine(1, 0, algorithms.Bubble)
			Expect(e.IsFinished()).To(BeTrue())
			Expect(e.Step()).To(BeFalse())

			e.Reset()
			Expect(e.IsFinished()).To(BeTrue())
			m := e.State().Metrics
			Expect(m.Comparisons).To(BeZero())
			Expect(m.Swaps).To(BeZero())
		})

		It("shuffles deterministically for a fixed seed", func() {
			a := newEngine(30, 123, algorithms.Quick)
			b := newEngine(30, 123, algorithms.Heap)
			Expect(a.State().Values).To(Equal(b.State().Values))
		})
	})

	DescribeTable("sorts every size to a strictly ascending permutation",
		func(t algorithms.Type) {
			sizes := []int{0, 1, 2, 3, 5, 8, 13, 21, 34, 55, 89, 100, 144, 233, 377, 610, 1000}
			for _, n := range sizes {
				e := newEngine(n, uint64(n)*7+1, t)
				before := slices.Sorted(slices.Values(e.State().Values))

				runToEnd(e)

				after := e.State()
				Expect(after.IsSorted()).To(BeTrue(), "%v n=%d", t, n)
				Expect(slices.Equal(after.Values, before)).To(BeTrue(), "%v n=%d multiset", t, n)
			}
		},
		Entry("quick", algorithms.Quick),
		Entry("merge", algorithms.Merge),
		Entry("bubble", algorithms.Bubble),
		Entry("heap", algorithms.Heap),
	)

	DescribeTable("keeps metrics monotonic and zero after reset",
		func(t algorithms.Type) {
			e := newEngine(60, 5, t)
			for range 25 {
				e.Step()
			}
			e.Reset()
			m := e.State().Metrics
			Expect(m.Comparisons).To(BeZero())
			Expect(m.Swaps).To(BeZero())
			Expect(m.Writes).To(BeZero())
			Expect(m.Elapsed).To(BeZero())

			prev := m
			for e.Step() {
				cur := e.State().Metrics
				Expect(cur.Comparisons).To(BeNumerically(">=", prev.Comparisons))
				Expect(cur.Swaps).To(BeNumerically(">=", prev.Swaps))
				Expect(cur.Elapsed).To(BeNumerically(">=", prev.Elapsed))
				prev = cur
			}
		},
		Entry("quick", algorithms.Quick),
		Entry("merge", algorithms.Merge),
		Entry("bubble", algorithms.Bubble),
		Entry("heap", algorithms.Heap),
	)

	DescribeTable("treats steps after finishing as no-ops",
		func(t algorithms.Type) {
			e := newEngine(20, 3, t)
			runToEnd(e)
			before := e.State()
			cursors := e.Cursors()

			for range 5 {
				Expect(e.Step()).To(BeFalse())
			}

			after := e.State()
			Expect(after.Values).To(Equal(before.Values))
			Expect(after.Highlights).To(Equal(before.Highlights))
			Expect(after.Comparisons).To(Equal(before.Comparisons))
			Expect(after.Swaps).To(Equal(before.Swaps))
			Expect(after.Elapsed).To(Equal(before.Elapsed))
			Expect(e.Cursors()).To(Equal(cursors))
		},
		Entry("quick", algorithms.Quick),
		Entry("merge", algorithms.Merge),
		Entry("bubble", algorithms.Bubble),
		Entry("heap", algorithms.Heap),
	)

	Describe("bubble sort on [5 3 4 1 2]", func() {
		var e *engine.Engine

		BeforeEach(func() {
			e = newEngine(5, 0, algorithms.Bubble)
			e.Load([]int{5, 3, 4, 1, 2})
		})

		It("compares and swaps the first pair on step one", func() {
			Expect(e.Step()).To(BeTrue())
			s := e.State()
			Expect(s.Values).To(Equal([]int{3, 5, 4, 1, 2}))
			Expect(s.Comparisons).To(Equal(1))
			Expect(s.Swaps).To(Equal(1))
			Expect(s.Highlights).To(Equal([]int{0, 1}))
			Expect(e.CurrentIndex()).To(Equal(0))
			Expect(e.CompareIndex()).To(Equal(1))
		})

		It("finishes sorted after ten comparisons", func() {
			steps := runToEnd(e)
			s := e.State()
			Expect(s.Values).To(Equal([]int{1, 2, 3, 4, 5}))
			Expect(s.Comparisons).To(Equal(10))
			Expect(s.Swaps).To(Equal(8))
			Expect(steps).To(Equal(10))
			Expect(e.Steps()).To(Equal(10))
		})
	})

	Describe("switching algorithms", func() {
		It("re-initializes against partially sorted contents", func() {
			e := newEngine(40, 17, algorithms.Quick)
			for range 3 {
				Expect(e.Step()).To(BeTrue())
			}
			partial := e.State()

			Expect(e.SetAlgorithm(algorithms.Bubble)).To(Succeed())
			Expect(e.AlgorithmType()).To(Equal(algorithms.Bubble))
			Expect(e.IsFinished()).To(BeFalse())

			s := e.State()
			Expect(s.Values).To(Equal(partial.Values))
			Expect(s.Comparisons).To(Equal(partial.Comparisons))
			Expect(s.Swaps).To(Equal(partial.Swaps))

			runToEnd(e)
			Expect(e.State().IsSorted()).To(BeTrue())
		})

		It("clears the finished flag of a sorted run", func() {
			e := newEngine(10, 1, algorithms.Heap)
			runToEnd(e)
			Expect(e.SetAlgorithm(algorithms.Merge)).To(Succeed())
			Expect(e.IsFinished()).To(BeFalse())
			runToEnd(e)
			Expect(e.State().IsSorted()).To(BeTrue())
		})

		It("restarts progress when the same type is selected again", func() {
			e := newEngine(10, 2, algorithms.Bubble)
			e.Step()
			e.Step()
			Expect(e.Steps()).To(Equal(2))
			Expect(e.SetAlgorithm(algorithms.Bubble)).To(Succeed())
			Expect(e.Steps()).To(BeZero())
			Expect(e.IsFinished()).To(BeFalse())
		})

		It("rejects types outside the enum and keeps the current stepper", func() {
			e := newEngine(10, 2, algorithms.Merge)
			Expect(e.SetAlgorithm(algorithms.Type(-1))).To(MatchError(engine.ErrUnknownAlgorithm))
			Expect(e.AlgorithmType()).To(Equal(algorithms.Merge))
		})
	})

	Describe("shuffle", func() {
		It("keeps metrics and makes the run restartable", func() {
			e := newEngine(25, 4, algorithms.Quick)
			runToEnd(e)
			done := e.State()

			e.Shuffle()
			Expect(e.IsFinished()).To(BeFalse())
			Expect(e.State().Comparisons).To(Equal(done.Comparisons))

			runToEnd(e)
			Expect(e.State().IsSorted()).To(BeTrue())
			Expect(e.State().Comparisons).To(BeNumerically(">", done.Comparisons))
		})
	})

	Describe("speed", func() {
		It("clamps to the configured bounds", func() {
			e := newEngine(5, 0, algorithms.Quick)
			Expect(e.SetSpeed(10)).To(Equal(engine.DefaultMaxSpeed))
			Expect(e.SetSpeed(0)).To(Equal(engine.DefaultMinSpeed))
			Expect(e.SetSpeed(2.5)).To(Equal(2.5))
			Expect(e.Speed()).To(Equal(2.5))
		})

		It("does not affect step semantics", func() {
			a := newEngine(30, 8, algorithms.Heap)
			b := newEngine(30, 8, algorithms.Heap)
			b.SetSpeed(4)
			runToEnd(a)
			runToEnd(b)
			Expect(a.State().Comparisons).To(Equal(b.State().Comparisons))
			Expect(a.Steps()).To(Equal(b.Steps()))
		})
	})

	Describe("observers and Run", func() {
		It("notifies observers once per productive step", func() {
			e := newEngine(12, 6, algorithms.Merge)
			obs := &recordingObserver{}
			e.AddObserver(obs)

			steps := runToEnd(e)
			Expect(obs.snaps).To(HaveLen(steps))
			Expect(obs.snaps[len(obs.snaps)-1].IsSorted()).To(BeTrue())
		})

		It("samples metrics at start, interval and end", func() {
			e := newEngine(3, 0, algorithms.Bubble)
			e.Load([]int{3, 2, 1})
			m := &countingMetric{}
			e.AddMetric(m)

			res, err := e.Run(context.Background(), 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Sorted).To(BeTrue())
			Expect(res.Steps).To(Equal(3))
			Expect(res.Metrics.Comparisons).To(Equal(3))
			// start + 2 interior samples + end
			Expect(res.Values["count"]).To(Equal(4.0))
			Expect(m.resets).To(Equal(1))
		})

		It("stops when the context is canceled", func() {
			e := newEngine(200, 1, algorithms.Bubble)
			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			res, err := e.Run(ctx, 0)
			Expect(err).To(MatchError(context.Canceled))
			Expect(res.Steps).To(BeZero())
			Expect(e.IsFinished()).To(BeFalse())
		})
	})
})
