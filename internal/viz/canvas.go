package viz

import (
	"strings"
)

// Braille cells hold 2x4 dots:
// 1 4
// 2 5
// 3 6
// 7 8
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const brailleBlank = 0x2800

// Canvas is a braille dot grid used by the dot plot view. Its resolution in
// dots is (Width*2) x (Height*4).
type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  max(w, 1),
		Height: max(h, 1),
	}
	c.Grid = make([][]rune, c.Height)
	for i := range c.Grid {
		c.Grid[i] = make([]rune, c.Width)
	}
	c.Clear()
	return c
}

// Set lights the dot at (x, y), with y growing downwards.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = brailleBlank
		}
	}
}

// Plot draws one dot per value: index along x, value along y. Sequences
// wider than the canvas are sampled.
func (c *Canvas) Plot(values []int) {
	c.Clear()
	n := len(values)
	if n == 0 {
		return
	}
	maxVal := 1
	for _, v := range values {
		maxVal = max(maxVal, v)
	}

	dotsW, dotsH := c.Width*2, c.Height*4
	cols := min(n, dotsW)
	for x := 0; x < cols; x++ {
		idx := x
		if n > dotsW {
			idx = x * n / dotsW
		}
		y := (dotsH - 1) - values[idx]*(dotsH-1)/maxVal
		c.Set(x, y)
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for i, row := range c.Grid {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(string(row))
	}
	return b.String()
}
