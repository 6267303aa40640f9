package main

import (
	"context"
	"fmt"
	"io"
	"maps"
	"os"
	"os/signal"
	"slices"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/guptarohit/asciigraph"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/san-kum/sortvis/internal/algorithms"
	"github.com/san-kum/sortvis/internal/automation"
	"github.com/san-kum/sortvis/internal/engine"
	"github.com/san-kum/sortvis/internal/experiment"
	"github.com/san-kum/sortvis/internal/export"
	"github.com/san-kum/sortvis/internal/metrics"
	"github.com/san-kum/sortvis/internal/tui"
	"github.com/san-kum/sortvis/internal/viz"
)

var (
	trace       bool
	live        bool
	valuesFlag  string
	sampleEvery int
	svgPath     string
	runs        int
)

func newRunCmd() *cobra.Command {
	runCmd := &cobra.Command{
		Use:   "run [algorithm]",
		Short: "sort to completion and print a summary",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSort,
	}
	runCmd.Flags().BoolVar(&trace, "trace", false, "print every step")
	runCmd.Flags().BoolVar(&live, "live", false, "render bars in the terminal while sorting")
	runCmd.Flags().StringVar(&valuesFlag, "values", "", "sort these values instead of a shuffle, e.g. 5,3,4,1,2")
	runCmd.Flags().IntVar(&sampleEvery, "sample-every", 0, "metric sampling interval in steps (0 picks one from the size)")
	runCmd.Flags().StringVar(&svgPath, "svg", "", "write the initial bars and the sortedness curve as SVG files with this prefix")
	return runCmd
}

func newCompareCmd() *cobra.Command {
	compareCmd := &cobra.Command{
		Use:   "compare",
		Short: "run every algorithm on the same shuffled array",
		Args:  cobra.NoArgs,
		RunE:  compareAlgorithms,
	}
	compareCmd.Flags().IntVar(&runs, "runs", 1, "average over this many seeds")
	return compareCmd
}

func runSort(cmd *cobra.Command, args []string) error {
	var override string
	if len(args) > 0 {
		override = args[0]
	}
	cfg, err := resolveConfig(override)
	if err != nil {
		return err
	}
	logger := newLogger()

	t, err := algorithms.ParseType(cfg.Algorithm)
	if err != nil {
		return err
	}

	var values []int
	if valuesFlag != "" {
		if values, err = parseValues(valuesFlag); err != nil {
			return err
		}
	}

	every := sampleEvery
	if every <= 0 {
		every = cfg.SampleEvery
	}
	if every <= 0 {
		n := cfg.Size
		if values != nil {
			n = len(values)
		}
		every = max(1, n/2)
	}

	out := cmd.OutOrStdout()
	var observers []engine.Observer
	if trace {
		observers = append(observers, tui.NewStepPrinter(out))
	}
	if live {
		r := tui.NewLiveRenderer(out, t.String(), cfg.FrameRate)
		r.Start()
		defer r.Stop()
		observers = append(observers, r)
	}

	sortedness := metrics.NewSortedness()
	inversions := metrics.NewInversions()
	exp := experiment.New(logger, experiment.Config{
		Algorithm:   t,
		Size:        cfg.Size,
		Seed:        cfg.Seed,
		Values:      values,
		SampleEvery: every,
	})
	ms := []engine.Metric{sortedness, inversions, metrics.NewSwapRatio()}
	if err := exp.Setup(ms, observers...); err != nil {
		return err
	}
	initial := exp.Engine().State()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	logger.Info("sorting", "algorithm", t, "size", cfg.Size, "seed", cfg.Seed)
	result, err := exp.Run(ctx)
	if err != nil {
		return err
	}

	printSummary(out, result, inversions.Initial())
	if series := sortedness.Series(); len(series) > 1 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, asciigraph.Plot(series, asciigraph.Height(10), asciigraph.Width(80), asciigraph.Caption("sortedness")))
	}

	if svgPath != "" {
		none := algorithms.Cursors{Current: -1, Compare: -1, Partition: -1}
		theme := viz.GetTheme(cfg.Theme)
		if err := export.WriteFile(svgPath+"-bars.svg", export.SnapshotToSVG(initial, none, theme, 800, 300)); err != nil {
			return err
		}
		if err := export.WriteFile(svgPath+"-sortedness.svg", export.SeriesToSVG(sortedness.Series(), 800, 300, string(theme.Accent))); err != nil {
			return err
		}
		logger.Info("wrote svg", "prefix", svgPath)
	}
	return nil
}

func printSummary(w io.Writer, r *engine.Result, inversions int) {
	info := r.Algorithm.Info()
	title := color.New(color.FgCyan, color.Bold)
	fmt.Fprintf(w, "%s (average %s, worst %s)\n", title.Sprint(info.Name), info.Average, info.Worst)
	fmt.Fprintf(w, "size:        %d\n", r.Size)
	fmt.Fprintf(w, "steps:       %s\n", humanize.Comma(int64(r.Steps)))
	fmt.Fprintf(w, "comparisons: %s\n", humanize.Comma(int64(r.Metrics.Comparisons)))
	fmt.Fprintf(w, "swaps:       %s\n", humanize.Comma(int64(r.Metrics.Swaps)))
	fmt.Fprintf(w, "writes:      %s\n", humanize.Comma(int64(r.Metrics.Writes)))
	fmt.Fprintf(w, "inversions:  %s\n", humanize.Comma(int64(inversions)))
	fmt.Fprintf(w, "elapsed:     %v\n", r.Elapsed())
	sorted := color.New(color.FgGreen)
	if !r.Sorted {
		sorted = color.New(color.FgRed)
	}
	fmt.Fprintf(w, "sorted:      %s\n", sorted.Sprint(r.Sorted))
	if len(r.Values) > 0 {
		fmt.Fprintln(w, "\nmetrics:")
		for _, name := range slices.Sorted(maps.Keys(r.Values)) {
			fmt.Fprintf(w, "  %s: %.4f\n", name, r.Values[name])
		}
	}
}

func compareAlgorithms(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig("")
	if err != nil {
		return err
	}
	logger := newLogger()
	ctx := commandContext(cmd)

	if runs > 1 {
		return compareEnsembles(cmd, cfg.Size, cfg.Seed)
	}

	tbl := newTable()
	tbl.AppendHeader(table.Row{"Algorithm", "Steps", "Comparisons", "Swaps", "Writes", "Time", "Average", "Worst"})

	for _, t := range algorithms.Types() {
		// same size and seed give every algorithm the same shuffle
		exp := experiment.New(logger, experiment.Config{Algorithm: t, Size: cfg.Size, Seed: cfg.Seed})
		if err := exp.Setup(nil); err != nil {
			return err
		}
		r, err := exp.Run(ctx)
		if err != nil {
			return err
		}
		info := t.Info()
		tbl.AppendRow(table.Row{
			info.Name,
			humanize.Comma(int64(r.Steps)),
			humanize.Comma(int64(r.Metrics.Comparisons)),
			humanize.Comma(int64(r.Metrics.Swaps)),
			humanize.Comma(int64(r.Metrics.Writes)),
			r.Elapsed().String(),
			info.Average,
			info.Worst,
		})
	}
	tbl.AppendFooter(table.Row{fmt.Sprintf("n=%d seed=%d", cfg.Size, cfg.Seed)})

	fmt.Fprintln(cmd.OutOrStdout(), tbl.Render())
	return nil
}

// newTable returns a light-styled table that keeps header and footer text
// as written.
func newTable() table.Writer {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Format.Header = text.FormatDefault
	tbl.Style().Format.Footer = text.FormatDefault
	return tbl
}

func compareEnsembles(cmd *cobra.Command, size int, seed uint64) error {
	logger := newLogger()
	tbl := newTable()
	tbl.AppendHeader(table.Row{"Algorithm", "Mean steps", "Min", "Max", "Mean comparisons", "Mean swaps", "Mean writes"})

	for _, t := range algorithms.Types() {
		results, err := automation.NewEnsemble(logger, t, size, runs, seed).Run(commandContext(cmd))
		if err != nil {
			return err
		}
		s := automation.Summarize(results)
		tbl.AppendRow(table.Row{
			t.String(),
			humanize.CommafWithDigits(s.Steps, 1),
			humanize.Comma(int64(s.MinSteps)),
			humanize.Comma(int64(s.MaxSteps)),
			humanize.CommafWithDigits(s.Comparisons, 1),
			humanize.CommafWithDigits(s.Swaps, 1),
			humanize.CommafWithDigits(s.Writes, 1),
		})
	}
	tbl.AppendFooter(table.Row{fmt.Sprintf("n=%d runs=%d seeds=%d..%d", size, runs, seed, seed+uint64(runs)-1)})

	fmt.Fprintln(cmd.OutOrStdout(), tbl.Render())
	return nil
}
