package engine

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/san-kum/sortvis/internal/algorithms"
	"github.com/san-kum/sortvis/internal/sequence"
)

type Engine struct {
	logger    *log.Logger
	seq       *sequence.Sequence
	algorithm algorithms.Type
	stepper   algorithms.Stepper
	finished  bool
	steps     int

	speed, minSpeed, maxSpeed float64

	observers []Observer
	metrics   []Metric
}

// New builds an engine with a shuffled sequence of cfg.Size elements and the
// configured algorithm ready to step. A nil logger discards output.
func New(logger *log.Logger, cfg Config) (*Engine, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	e := &Engine{
		logger:    logger.WithPrefix("engine"),
		seq:       sequence.New(cfg.Size, sequence.NewRand(cfg.Seed)),
		algorithm: cfg.Algorithm,
		minSpeed:  cfg.MinSpeed,
		maxSpeed:  cfg.MaxSpeed,
		speed:     1.0,
		observers: make([]Observer, 0),
		metrics:   make([]Metric, 0),
	}
	if cfg.Speed != 0 {
		e.SetSpeed(cfg.Speed)
	} else {
		e.SetSpeed(1.0)
	}
	if err := e.SetAlgorithm(cfg.Algorithm); err != nil {
		return nil, err
	}

	e.logger.Debug("engine ready", "size", cfg.Size, "seed", cfg.Seed, "algorithm", e.algorithm)
	return e, nil
}

func validateConfig(cfg Config) error {
	if cfg.Size < 0 {
		return fmt.Errorf("%w, got %d", ErrInvalidSize, cfg.Size)
	}
	if cfg.MinSpeed <= 0 || cfg.MaxSpeed < cfg.MinSpeed {
		return fmt.Errorf("%w, got [%g, %g]", ErrSpeedBounds, cfg.MinSpeed, cfg.MaxSpeed)
	}
	if !cfg.Algorithm.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(cfg.Algorithm))
	}
	return nil
}

func (e *Engine) AddObserver(o Observer) { e.observers = append(e.observers, o) }
func (e *Engine) AddMetric(m Metric)     { e.metrics = append(e.metrics, m) }

// Reset restores the identity permutation, zeroes metrics, reshuffles and
// restarts the active algorithm. The selected algorithm is kept.
func (e *Engine) Reset() {
	e.seq.Reset()
	e.restart()
	e.logger.Debug("reset", "algorithm", e.algorithm, "size", e.seq.Len())
}

// Shuffle permutes the current contents and restarts the active algorithm
// without touching the metrics.
func (e *Engine) Shuffle() {
	e.seq.Shuffle()
	e.restart()
	e.logger.Debug("shuffle", "algorithm", e.algorithm)
}

// Load replaces the sequence with values, zeroes metrics and restarts the
// active algorithm. It bypasses shuffling for deterministic runs.
func (e *Engine) Load(values []int) {
	e.seq.Load(values)
	e.restart()
	e.logger.Debug("load", "algorithm", e.algorithm, "size", len(values))
}

// SetAlgorithm discards any in-progress work and initializes t against the
// current sequence contents. Selecting the active type restarts it.
func (e *Engine) SetAlgorithm(t algorithms.Type) error {
	st, err := algorithms.New(t)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnknownAlgorithm, err)
	}
	e.algorithm = t
	e.stepper = st
	e.restart()
	e.logger.Debug("algorithm selected", "algorithm", t, "finished", e.finished)
	return nil
}

func (e *Engine) restart() {
	e.stepper.Init(e.seq)
	e.finished = e.stepper.Done()
	e.steps = 0
}

// Step performs one primitive operation. It returns false, doing nothing,
// once the run is finished.
func (e *Engine) Step() bool {
	if e.finished {
		return false
	}

	start := time.Now()
	res := e.stepper.Step(e.seq)
	e.seq.AddElapsed(time.Since(start))

	if res.Continue {
		e.steps++
		e.notify()
	}
	if res.Finished {
		e.finished = true
		m := e.seq.Metrics()
		e.logger.Debug("finished", "algorithm", e.algorithm, "steps", e.steps,
			"comparisons", m.Comparisons, "swaps", m.Swaps, "elapsed", m.Elapsed)
	}
	return res.Continue
}

func (e *Engine) notify() {
	if len(e.observers) == 0 {
		return
	}
	snap := e.seq.Snapshot()
	cur := e.stepper.Cursors()
	for _, o := range e.observers {
		o.OnStep(snap, cur)
	}
}

// SetSpeed stores the playback hint clamped to the configured bounds and
// returns the stored value. It has no effect on step semantics.
func (e *Engine) SetSpeed(v float64) float64 {
	e.speed = min(max(v, e.minSpeed), e.maxSpeed)
	return e.speed
}

func (e *Engine) Speed() float64 { return e.speed }

// SpeedBounds returns the configured [min, max] speed range.
func (e *Engine) SpeedBounds() (float64, float64) { return e.minSpeed, e.maxSpeed }

func (e *Engine) IsFinished() bool { return e.finished }

// Steps counts the steps that did work since the run was last restarted.
func (e *Engine) Steps() int { return e.steps }

// State returns a deep copy of the sequence state.
func (e *Engine) State() sequence.Snapshot { return e.seq.Snapshot() }

// Sequence exposes the live sequence for read-only rendering.
func (e *Engine) Sequence() View { return e.seq }

func (e *Engine) AlgorithmType() algorithms.Type { return e.algorithm }
func (e *Engine) AlgorithmName() string          { return e.algorithm.String() }

func (e *Engine) Cursors() algorithms.Cursors { return e.stepper.Cursors() }
func (e *Engine) CurrentIndex() int           { return e.stepper.Cursors().Current }
func (e *Engine) CompareIndex() int           { return e.stepper.Cursors().Compare }
func (e *Engine) PartitionIndex() int         { return e.stepper.Cursors().Partition }

// Run steps until the run finishes or ctx is done. Metrics observe the
// sequence before the first step, every sampleEvery steps (never when
// sampleEvery <= 0) and after the last one.
func (e *Engine) Run(ctx context.Context, sampleEvery int) (*Result, error) {
	for _, m := range e.metrics {
		m.Reset()
	}
	e.observe()

	for !e.finished {
		select {
		case <-ctx.Done():
			return e.result(), ctx.Err()
		default:
		}

		if !e.Step() {
			break
		}
		if sampleEvery > 0 && e.steps%sampleEvery == 0 && !e.finished {
			e.observe()
		}
	}

	e.observe()
	return e.result(), nil
}

func (e *Engine) observe() {
	for _, m := range e.metrics {
		m.Observe(e.seq)
	}
}

func (e *Engine) result() *Result {
	r := &Result{
		Algorithm: e.algorithm,
		Size:      e.seq.Len(),
		Steps:     e.steps,
		Metrics:   e.seq.Metrics(),
		Sorted:    e.seq.IsSorted(),
		Values:    make(map[string]float64, len(e.metrics)),
	}
	for _, m := range e.metrics {
		r.Values[m.Name()] = m.Value()
	}
	return r
}
