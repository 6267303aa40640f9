package engine

import (
	"time"

	"github.com/san-kum/sortvis/internal/algorithms"
	"github.com/san-kum/sortvis/internal/sequence"
)

const (
	DefaultSize     = 100
	DefaultMinSpeed = 0.1
	DefaultMaxSpeed = 5.0
)

type Config struct {
	Size      int
	Seed      uint64
	Algorithm algorithms.Type
	MinSpeed  float64
	MaxSpeed  float64
	Speed     float64
}

func DefaultConfig() Config {
	return Config{
		Size:      DefaultSize,
		Algorithm: algorithms.Quick,
		MinSpeed:  DefaultMinSpeed,
		MaxSpeed:  DefaultMaxSpeed,
		Speed:     1.0,
	}
}

// Observer is notified after every step that did work.
type Observer interface {
	OnStep(snap sequence.Snapshot, cur algorithms.Cursors)
}

// View is the read-only face of a sequence handed to metrics.
type View interface {
	Values() []int
	Metrics() sequence.Metrics
}

type Metric interface {
	Name() string
	Observe(v View)
	Value() float64
	Reset()
}

// Result summarizes a run driven by Run.
type Result struct {
	Algorithm algorithms.Type
	Size      int
	Steps     int
	Metrics   sequence.Metrics
	Sorted    bool
	Values    map[string]float64
}

// Elapsed is the active step time of the run.
func (r *Result) Elapsed() time.Duration { return r.Metrics.Elapsed }
