package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/sortvis/internal/algorithms"
	"github.com/san-kum/sortvis/internal/engine"
)

const (
	DefaultSize        = engine.DefaultSize
	DefaultAlgorithm   = "quick"
	DefaultMinSpeed    = engine.DefaultMinSpeed
	DefaultMaxSpeed    = engine.DefaultMaxSpeed
	DefaultSpeed       = 1.0
	DefaultBaseRate    = 60.0
	DefaultFrameRate   = 30
	DefaultTheme       = "classic"
	DefaultSampleEvery = 0
)

var ErrInvalid = errors.New("config: invalid configuration")

type Config struct {
	Size        int         `yaml:"size"`
	Algorithm   string      `yaml:"algorithm"`
	Seed        uint64      `yaml:"seed"`
	Speed       SpeedConfig `yaml:"speed"`
	BaseRate    float64     `yaml:"base_rate"`
	FrameRate   int         `yaml:"frame_rate"`
	Theme       string      `yaml:"theme"`
	SampleEvery int         `yaml:"sample_every"`
}

type SpeedConfig struct {
	Min     float64 `yaml:"min"`
	Max     float64 `yaml:"max"`
	Initial float64 `yaml:"initial"`
}

func DefaultConfig() *Config {
	return &Config{
		Size:      DefaultSize,
		Algorithm: DefaultAlgorithm,
		Speed: SpeedConfig{
			Min:     DefaultMinSpeed,
			Max:     DefaultMaxSpeed,
			Initial: DefaultSpeed,
		},
		BaseRate:    DefaultBaseRate,
		FrameRate:   DefaultFrameRate,
		Theme:       DefaultTheme,
		SampleEvery: DefaultSampleEvery,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// LoadPartial reads a YAML file without filling defaults, so only the keys
// present in the file are set. The result is meant for Merge.
func LoadPartial(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Size < 0 {
		return fmt.Errorf("%w: size must be non-negative, got %d", ErrInvalid, c.Size)
	}
	if _, err := algorithms.ParseType(c.Algorithm); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if c.Speed.Min <= 0 || c.Speed.Max < c.Speed.Min {
		return fmt.Errorf("%w: speed range [%g, %g]", ErrInvalid, c.Speed.Min, c.Speed.Max)
	}
	if c.BaseRate <= 0 {
		return fmt.Errorf("%w: base_rate must be positive, got %g", ErrInvalid, c.BaseRate)
	}
	if c.FrameRate <= 0 {
		return fmt.Errorf("%w: frame_rate must be positive, got %d", ErrInvalid, c.FrameRate)
	}
	return nil
}

// EngineConfig converts the file configuration into engine settings.
func (c *Config) EngineConfig() (engine.Config, error) {
	if err := c.Validate(); err != nil {
		return engine.Config{}, err
	}
	t, _ := algorithms.ParseType(c.Algorithm)
	return engine.Config{
		Size:      c.Size,
		Seed:      c.Seed,
		Algorithm: t,
		MinSpeed:  c.Speed.Min,
		MaxSpeed:  c.Speed.Max,
		Speed:     c.Speed.Initial,
	}, nil
}

// Merge copies the fields of other that are set onto c.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}
	if other.Size != 0 {
		c.Size = other.Size
	}
	if other.Algorithm != "" {
		c.Algorithm = other.Algorithm
	}
	if other.Seed != 0 {
		c.Seed = other.Seed
	}
	if other.Speed.Min != 0 {
		c.Speed.Min = other.Speed.Min
	}
	if other.Speed.Max != 0 {
		c.Speed.Max = other.Speed.Max
	}
	if other.Speed.Initial != 0 {
		c.Speed.Initial = other.Speed.Initial
	}
	if other.BaseRate != 0 {
		c.BaseRate = other.BaseRate
	}
	if other.FrameRate != 0 {
		c.FrameRate = other.FrameRate
	}
	if other.Theme != "" {
		c.Theme = other.Theme
	}
	if other.SampleEvery != 0 {
		c.SampleEvery = other.SampleEvery
	}
}
