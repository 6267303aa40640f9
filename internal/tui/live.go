package tui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/san-kum/sortvis/internal/algorithms"
	"github.com/san-kum/sortvis/internal/sequence"
)

const (
	width       = 70
	height      = 20
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

// LiveRenderer redraws the sequence as vertical bars, at most frameRate
// times per second.
type LiveRenderer struct {
	out     io.Writer
	title   string
	limiter *rate.Limiter
	canvas  [][]rune
}

func NewLiveRenderer(out io.Writer, title string, frameRate int) *LiveRenderer {
	if out == nil {
		out = os.Stdout
	}
	if frameRate <= 0 {
		frameRate = 30
	}
	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = make([]rune, width)
	}
	return &LiveRenderer{
		out:     out,
		title:   title,
		limiter: rate.NewLimiter(rate.Limit(frameRate), 1),
		canvas:  canvas,
	}
}

func (r *LiveRenderer) OnStep(snap sequence.Snapshot, cur algorithms.Cursors) {
	if !r.limiter.Allow() && !snap.IsSorted() {
		return
	}
	r.Draw(snap, cur)
}

// Draw renders one frame regardless of the frame limit.
func (r *LiveRenderer) Draw(snap sequence.Snapshot, cur algorithms.Cursors) {
	r.clear()
	r.drawBars(snap.Values, cur)
	r.render(snap)
}

func (r *LiveRenderer) clear() {
	for y := range r.canvas {
		for x := range r.canvas[y] {
			r.canvas[y][x] = ' '
		}
	}
}

func (r *LiveRenderer) set(x, y int, c rune) {
	if x >= 0 && x < width && y >= 0 && y < height {
		r.canvas[y][x] = c
	}
}

// column maps a canvas column back to the index it displays.
func column(x, n int) int {
	if n <= width {
		return x
	}
	return x * n / width
}

func (r *LiveRenderer) drawBars(values []int, cur algorithms.Cursors) {
	n := len(values)
	if n == 0 {
		return
	}
	maxVal := 1
	for _, v := range values {
		maxVal = max(maxVal, v)
	}

	cols := min(n, width)
	for x := 0; x < cols; x++ {
		idx := column(x, n)
		h := values[idx] * height / maxVal
		if values[idx] > 0 && h == 0 {
			h = 1
		}
		c := glyph(idx, cur)
		for y := height - 1; y >= height-h; y-- {
			r.set(x, y, c)
		}
	}
}

func glyph(idx int, cur algorithms.Cursors) rune {
	switch idx {
	case cur.Current:
		return '@'
	case cur.Compare:
		return '%'
	case cur.Partition:
		return '+'
	}
	return '#'
}

func (r *LiveRenderer) render(snap sequence.Snapshot) {
	var b strings.Builder
	b.WriteString(clearScreen)
	b.WriteString(fmt.Sprintf("  %s  n=%d\n", r.title, len(snap.Values)))
	b.WriteString("  " + strings.Repeat("-", width) + "\n")

	for _, row := range r.canvas {
		b.WriteString("  ")
		b.WriteString(strings.TrimRight(string(row), " "))
		b.WriteString("\n")
	}

	b.WriteString("  " + strings.Repeat("-", width) + "\n")
	m := snap.Metrics
	b.WriteString(fmt.Sprintf("  cmp=%d swp=%d wr=%d t=%s\n", m.Comparisons, m.Swaps, m.Writes, m.Elapsed.Round(time.Microsecond)))

	fmt.Fprint(r.out, b.String())
}

func (r *LiveRenderer) Start() { fmt.Fprint(r.out, hideCursor) }
func (r *LiveRenderer) Stop()  { fmt.Fprint(r.out, showCursor) }
