package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/san-kum/sortvis/internal/algorithms"
	"github.com/san-kum/sortvis/internal/sequence"
)

// StepPrinter writes one line per step: the step number, the counters,
// the highlighted indices and, for short sequences, the values.
type StepPrinter struct {
	out       io.Writer
	step      int
	maxValues int
}

func NewStepPrinter(out io.Writer) *StepPrinter {
	return &StepPrinter{out: out, maxValues: 32}
}

func (p *StepPrinter) OnStep(snap sequence.Snapshot, cur algorithms.Cursors) {
	p.step++
	m := snap.Metrics
	line := fmt.Sprintf("%6d  cmp=%-6d swp=%-6d wr=%-6d hl=%v cur=%d,%d,%d",
		p.step, m.Comparisons, m.Swaps, m.Writes, snap.Highlights,
		cur.Current, cur.Compare, cur.Partition)
	if len(snap.Values) <= p.maxValues {
		line += "  " + formatValues(snap.Values)
	}
	fmt.Fprintln(p.out, line)
}

// Steps returns the number of lines written so far.
func (p *StepPrinter) Steps() int { return p.step }

func formatValues(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprint(v)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
