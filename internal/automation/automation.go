package automation

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/sortvis/internal/engine"
	"github.com/san-kum/sortvis/internal/experiment"
	"github.com/san-kum/sortvis/internal/sequence"
)

// Scenario defines a scripted batch of runs
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Steps       []ScenarioStep `yaml:"steps"`
}

// ScenarioStep is a single run in a scenario
type ScenarioStep struct {
	Label       string   `yaml:"label"`
	Algorithm   string   `yaml:"algorithm"`
	Size        int      `yaml:"size"`
	Seed        uint64   `yaml:"seed"`
	Values      []int    `yaml:"values"`
	SampleEvery int      `yaml:"sample_every"`
	Metrics     []string `yaml:"metrics"`
}

// StepResult pairs a run result with the label it was reported under.
type StepResult struct {
	Label string
	*engine.Result
}

// LoadScenario loads a scenario from a YAML file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseScenario(data)
}

func ParseScenario(data []byte) (*Scenario, error) {
	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, err
	}
	if len(scenario.Steps) == 0 {
		return nil, fmt.Errorf("scenario %q has no steps", scenario.Name)
	}
	for i, step := range scenario.Steps {
		if err := sequence.CheckDistinct(step.Values); err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return &scenario, nil
}

// RunScenario executes all steps in a scenario
func RunScenario(ctx context.Context, logger *log.Logger, scenario *Scenario, registry *experiment.Registry) ([]StepResult, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	results := make([]StepResult, 0, len(scenario.Steps))

	for i, step := range scenario.Steps {
		logger.Info("running step", "step", i+1, "of", len(scenario.Steps), "algorithm", step.Algorithm)

		t, err := registry.GetAlgorithm(step.Algorithm)
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}

		ms := registry.DefaultMetrics()
		if len(step.Metrics) > 0 {
			ms = ms[:0]
			for _, name := range step.Metrics {
				m, err := registry.GetMetric(name)
				if err != nil {
					return results, fmt.Errorf("step %d: %w", i+1, err)
				}
				ms = append(ms, m)
			}
		}

		exp := experiment.New(logger, experiment.Config{
			Label:       step.Label,
			Algorithm:   t,
			Size:        step.Size,
			Seed:        step.Seed,
			Values:      step.Values,
			SampleEvery: step.SampleEvery,
		})
		if err := exp.Setup(ms); err != nil {
			return results, fmt.Errorf("step %d setup: %w", i+1, err)
		}

		result, err := exp.Run(ctx)
		if err != nil {
			return results, fmt.Errorf("step %d run: %w", i+1, err)
		}

		results = append(results, StepResult{Label: exp.Label(), Result: result})
	}

	return results, nil
}

// SizeSweep runs one algorithm across a range of sequence sizes
type SizeSweep struct {
	Algorithm string
	MinSize   int
	MaxSize   int
	NumSteps  int
	Seed      uint64
}

// SweepResult holds the work done at one size
type SweepResult struct {
	Size        int
	Steps       int
	Comparisons int
	Swaps       int
	Writes      int
}

// RunSweep executes a size sweep
func RunSweep(ctx context.Context, logger *log.Logger, sweep *SizeSweep, registry *experiment.Registry) ([]SweepResult, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if sweep.NumSteps < 1 || sweep.MinSize < 0 || sweep.MaxSize < sweep.MinSize {
		return nil, fmt.Errorf("invalid sweep range [%d, %d] in %d steps", sweep.MinSize, sweep.MaxSize, sweep.NumSteps)
	}

	t, err := registry.GetAlgorithm(sweep.Algorithm)
	if err != nil {
		return nil, err
	}

	sizeStep := 0.0
	if sweep.NumSteps > 1 {
		sizeStep = float64(sweep.MaxSize-sweep.MinSize) / float64(sweep.NumSteps-1)
	}

	results := make([]SweepResult, 0, sweep.NumSteps)
	for i := 0; i < sweep.NumSteps; i++ {
		size := sweep.MinSize + int(float64(i)*sizeStep+0.5)

		exp := experiment.New(logger, experiment.Config{Algorithm: t, Size: size, Seed: sweep.Seed})
		if err := exp.Setup(nil); err != nil {
			return nil, err
		}

		result, err := exp.Run(ctx)
		if err != nil {
			return nil, err
		}

		results = append(results, SweepResult{
			Size:        size,
			Steps:       result.Steps,
			Comparisons: result.Metrics.Comparisons,
			Swaps:       result.Metrics.Swaps,
			Writes:      result.Metrics.Writes,
		})

		logger.Debug("sweep", "step", i+1, "of", sweep.NumSteps, "size", size)
	}

	return results, nil
}
