package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/san-kum/sortvis/internal/algorithms"
	"github.com/san-kum/sortvis/internal/config"
	"github.com/san-kum/sortvis/internal/engine"
	"github.com/san-kum/sortvis/internal/sequence"
	"github.com/san-kum/sortvis/internal/viz"
)

const envPrefix = "SORTVIS"

var (
	configFile string
	preset     string
	logLevel   string
	settings   *viper.Viper
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd registers every command and binds the persistent flags to
// SORTVIS_* environment variables. Without a subcommand it opens the
// interactive visualizer.
func newRootCmd() *cobra.Command {
	settings = viper.New()
	settings.SetEnvPrefix(envPrefix)
	settings.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	settings.AutomaticEnv()

	rootCmd := &cobra.Command{
		Use:          "sortvis",
		Short:        "step-by-step sorting algorithm visualizer",
		SilenceUsage: true,
		RunE:         runInteractive,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file path (yaml)")
	flags.StringVar(&preset, "preset", "", "use preset configuration")
	flags.StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	flags.Int("size", config.DefaultSize, "number of elements")
	flags.Uint64("seed", 0, "shuffle seed (0 picks one from the clock)")
	flags.String("algorithm", config.DefaultAlgorithm, "quick, merge, bubble or heap")
	flags.String("theme", config.DefaultTheme, "color theme: "+strings.Join(viz.ThemeNames(), ", "))
	flags.Int("fps", config.DefaultFrameRate, "frame rate")
	flags.Float64("speed", config.DefaultSpeed, "initial playback speed")

	bindings := map[string]string{
		"size":       "size",
		"seed":       "seed",
		"algorithm":  "algorithm",
		"theme":      "theme",
		"frame_rate": "fps",
		"speed":      "speed",
	}
	for key, flag := range bindings {
		_ = settings.BindPFlag(key, flags.Lookup(flag))
	}

	rootCmd.AddCommand(
		newRunCmd(),
		newCompareCmd(),
		newPresetsCmd(),
		newScenarioCmd(),
		newSweepCmd(),
		newInitConfigCmd(),
	)
	return rootCmd
}

func newLogger() *log.Logger {
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		level = log.WarnLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "sortvis",
	})
}

// resolveConfig layers defaults, preset, config file, environment and flags,
// later sources winning. override, when non-empty, replaces the algorithm.
func resolveConfig(override string) (*config.Config, error) {
	var file *config.Config
	if configFile != "" {
		f, err := config.LoadPartial(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		file = f
	}

	cfg := config.DefaultConfig()
	if preset != "" {
		t, err := algorithms.ParseType(presetAlgorithm(override, file))
		if err != nil {
			return nil, err
		}
		key := t.Info().Key
		p := config.GetPreset(key, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(key))
		}
		cfg = p
	}

	// config file overrides preset
	cfg.Merge(file)

	if settings.IsSet("size") {
		cfg.Size = settings.GetInt("size")
	}
	if settings.IsSet("seed") {
		cfg.Seed = settings.GetUint64("seed")
	}
	if settings.IsSet("algorithm") {
		cfg.Algorithm = settings.GetString("algorithm")
	}
	if settings.IsSet("theme") {
		cfg.Theme = settings.GetString("theme")
	}
	if settings.IsSet("frame_rate") {
		cfg.FrameRate = settings.GetInt("frame_rate")
	}
	if settings.IsSet("speed") {
		cfg.Speed.Initial = settings.GetFloat64("speed")
	}
	if override != "" {
		cfg.Algorithm = override
	}
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// presetAlgorithm picks the algorithm whose presets apply, using the same
// precedence as the final config.
func presetAlgorithm(override string, file *config.Config) string {
	switch {
	case override != "":
		return override
	case settings.IsSet("algorithm"):
		return settings.GetString("algorithm")
	case file != nil && file.Algorithm != "":
		return file.Algorithm
	}
	return config.DefaultAlgorithm
}

func runInteractive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig("")
	if err != nil {
		return err
	}
	ecfg, err := cfg.EngineConfig()
	if err != nil {
		return err
	}
	e, err := engine.New(newLogger(), ecfg)
	if err != nil {
		return err
	}
	return viz.Run(e, viz.Options{
		Theme:     cfg.Theme,
		FrameRate: cfg.FrameRate,
		BaseRate:  cfg.BaseRate,
	})
}

// parseValues reads a comma separated list such as "5,3,4,1,2".
func parseValues(s string) ([]int, error) {
	fields := strings.Split(s, ",")
	values := make([]int, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q: %w", f, err)
		}
		values = append(values, v)
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("no values in %q", s)
	}
	if err := sequence.CheckDistinct(values); err != nil {
		return nil, err
	}
	return values, nil
}
