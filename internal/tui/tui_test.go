package tui

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/sortvis/internal/algorithms"
	"github.com/san-kum/sortvis/internal/engine"
	"github.com/san-kum/sortvis/internal/sequence"
)

func TestStepPrinter_BubbleTrace(t *testing.T) {
	cfg := engine.DefaultConfig()
	cfg.Size = 5
	cfg.Algorithm = algorithms.Bubble
	e, err := engine.New(nil, cfg)
	require.NoError(t, err)
	e.Load([]int{5, 3, 4, 1, 2})

	var buf bytes.Buffer
	p := NewStepPrinter(&buf)
	e.AddObserver(p)

	_, err = e.Run(context.Background(), 0)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 10)
	assert.Equal(t, 10, p.Steps())
	assert.Contains(t, lines[0], "cmp=1 ")
	assert.Contains(t, lines[0], "[3 5 4 1 2]")
	assert.Contains(t, lines[9], "cmp=10")
	assert.Contains(t, lines[9], "[1 2 3 4 5]")
}

func TestStepPrinter_LongSequenceOmitsValues(t *testing.T) {
	var buf bytes.Buffer
	p := NewStepPrinter(&buf)
	values := make([]int, 100)
	p.OnStep(sequence.Snapshot{Values: values}, algorithms.Cursors{Current: -1, Compare: -1, Partition: -1})
	assert.NotContains(t, buf.String(), "[0 0")
}

func TestLiveRenderer_Draw(t *testing.T) {
	var buf bytes.Buffer
	r := NewLiveRenderer(&buf, "Quick Sort", 30)
	snap := sequence.Snapshot{
		Values:  []int{3, 1, 2},
		Metrics: sequence.Metrics{Comparisons: 4, Swaps: 2},
	}
	r.Draw(snap, algorithms.Cursors{Current: 0, Compare: 1, Partition: 2})

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, clearScreen))
	assert.Contains(t, out, "Quick Sort  n=3")
	assert.Contains(t, out, "@")
	assert.Contains(t, out, "%")
	assert.Contains(t, out, "+")
	assert.Contains(t, out, "cmp=4 swp=2 wr=0")
}

func TestLiveRenderer_FrameLimit(t *testing.T) {
	var buf bytes.Buffer
	r := NewLiveRenderer(&buf, "x", 1)
	none := algorithms.Cursors{Current: -1, Compare: -1, Partition: -1}

	r.OnStep(sequence.Snapshot{Values: []int{2, 1}}, none)
	r.OnStep(sequence.Snapshot{Values: []int{2, 1}}, none)
	// the sorted frame is always drawn
	r.OnStep(sequence.Snapshot{Values: []int{1, 2}}, none)

	assert.Equal(t, 2, strings.Count(buf.String(), clearScreen))
}

func TestColumn(t *testing.T) {
	assert.Equal(t, 5, column(5, 10))
	assert.Equal(t, 0, column(0, 700))
	assert.Equal(t, 690, column(69, 700))
}
