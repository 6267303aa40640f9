package main

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/guptarohit/asciigraph"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/san-kum/sortvis/internal/algorithms"
	"github.com/san-kum/sortvis/internal/automation"
	"github.com/san-kum/sortvis/internal/config"
	"github.com/san-kum/sortvis/internal/experiment"
)

var (
	sweepMin   int
	sweepMax   int
	sweepSteps int
)

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets [algorithm]",
		Short: "list available presets",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			types := algorithms.Types()
			if len(args) > 0 {
				t, err := algorithms.ParseType(args[0])
				if err != nil {
					return err
				}
				types = []algorithms.Type{t}
			}
			for _, t := range types {
				key := t.Info().Key
				fmt.Fprintf(out, "presets for %s:\n", key)
				for _, name := range config.ListPresets(key) {
					p := config.GetPreset(key, name)
					fmt.Fprintf(out, "  %-8s size=%d seed=%d speed=%.1f\n", name, p.Size, p.Seed, p.Speed.Initial)
				}
			}
			return nil
		},
	}
}

func newScenarioCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scenario [file]",
		Short: "run a YAML scenario",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}
}

func newSweepCmd() *cobra.Command {
	sweepCmd := &cobra.Command{
		Use:   "sweep [algorithm]",
		Short: "measure work across a range of sizes",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSweep,
	}
	sweepCmd.Flags().IntVar(&sweepMin, "min", 10, "smallest size")
	sweepCmd.Flags().IntVar(&sweepMax, "max", 500, "largest size")
	sweepCmd.Flags().IntVar(&sweepSteps, "steps", 10, "number of sizes")
	return sweepCmd
}

func newInitConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init-config [path]",
		Short: "write the resolved configuration to a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig("")
			if err != nil {
				return err
			}
			if err := config.Save(args[0], cfg); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", args[0])
			return nil
		},
	}
}

func runScenario(cmd *cobra.Command, args []string) error {
	sc, err := automation.LoadScenario(args[0])
	if err != nil {
		return err
	}
	logger := newLogger()

	results, err := automation.RunScenario(commandContext(cmd), logger, sc, experiment.NewRegistry())
	if err != nil {
		return err
	}

	tbl := newTable()
	tbl.SetTitle(sc.Name)
	tbl.AppendHeader(table.Row{"Run", "Algorithm", "Size", "Steps", "Comparisons", "Swaps", "Writes", "Sorted"})
	for _, r := range results {
		tbl.AppendRow(table.Row{
			r.Label,
			r.Algorithm.String(),
			r.Size,
			humanize.Comma(int64(r.Steps)),
			humanize.Comma(int64(r.Metrics.Comparisons)),
			humanize.Comma(int64(r.Metrics.Swaps)),
			humanize.Comma(int64(r.Metrics.Writes)),
			r.Sorted,
		})
	}
	if sc.Description != "" {
		tbl.SetCaption(sc.Description)
	}

	fmt.Fprintln(cmd.OutOrStdout(), tbl.Render())
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	var override string
	if len(args) > 0 {
		override = args[0]
	}
	cfg, err := resolveConfig(override)
	if err != nil {
		return err
	}

	sweep := &automation.SizeSweep{
		Algorithm: cfg.Algorithm,
		MinSize:   sweepMin,
		MaxSize:   sweepMax,
		NumSteps:  sweepSteps,
		Seed:      cfg.Seed,
	}
	results, err := automation.RunSweep(commandContext(cmd), newLogger(), sweep, experiment.NewRegistry())
	if err != nil {
		return err
	}

	tbl := newTable()
	tbl.AppendHeader(table.Row{"Size", "Steps", "Comparisons", "Swaps", "Writes"})
	comparisons := make([]float64, len(results))
	for i, r := range results {
		comparisons[i] = float64(r.Comparisons)
		tbl.AppendRow(table.Row{
			r.Size,
			humanize.Comma(int64(r.Steps)),
			humanize.Comma(int64(r.Comparisons)),
			humanize.Comma(int64(r.Swaps)),
			humanize.Comma(int64(r.Writes)),
		})
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, tbl.Render())
	if len(comparisons) > 1 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, asciigraph.Plot(comparisons, asciigraph.Height(10), asciigraph.Width(60), asciigraph.Caption("comparisons by size")))
	}
	return nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
