package experiment

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/san-kum/sortvis/internal/algorithms"
	"github.com/san-kum/sortvis/internal/engine"
	"github.com/san-kum/sortvis/internal/sequence"
)

type Config struct {
	Label       string
	Algorithm   algorithms.Type
	Size        int
	Seed        uint64
	Values      []int
	SampleEvery int
}

type Experiment struct {
	cfg    Config
	logger *log.Logger
	engine *engine.Engine
}

func New(logger *log.Logger, cfg Config) *Experiment {
	return &Experiment{
		cfg:    cfg,
		logger: logger,
	}
}

// Setup builds the engine, loading explicit values when configured, and
// attaches the given metrics and observers.
func (e *Experiment) Setup(ms []engine.Metric, observers ...engine.Observer) error {
	ecfg := engine.DefaultConfig()
	ecfg.Size = e.cfg.Size
	ecfg.Seed = e.cfg.Seed
	ecfg.Algorithm = e.cfg.Algorithm
	if e.cfg.Values != nil {
		if err := sequence.CheckDistinct(e.cfg.Values); err != nil {
			return fmt.Errorf("setup %s: %w", e.Label(), err)
		}
		ecfg.Size = 0
	}

	eng, err := engine.New(e.logger, ecfg)
	if err != nil {
		return fmt.Errorf("setup %s: %w", e.Label(), err)
	}
	if e.cfg.Values != nil {
		eng.Load(e.cfg.Values)
	}
	for _, m := range ms {
		eng.AddMetric(m)
	}
	for _, o := range observers {
		eng.AddObserver(o)
	}
	e.engine = eng
	return nil
}

func (e *Experiment) Run(ctx context.Context) (*engine.Result, error) {
	if e.engine == nil {
		return nil, fmt.Errorf("experiment not setup")
	}
	return e.engine.Run(ctx, e.cfg.SampleEvery)
}

// Label names the run for reports, defaulting to the algorithm key.
func (e *Experiment) Label() string {
	if e.cfg.Label != "" {
		return e.cfg.Label
	}
	return e.cfg.Algorithm.Info().Key
}

// Engine returns the underlying engine for adding observers.
func (e *Experiment) Engine() *engine.Engine {
	return e.engine
}
