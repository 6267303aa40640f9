package export

import (
	"fmt"
	"os"
	"strings"

	"github.com/san-kum/sortvis/internal/algorithms"
	"github.com/san-kum/sortvis/internal/sequence"
	"github.com/san-kum/sortvis/internal/viz"
)

// SnapshotToSVG draws the sequence as a bar chart, coloring bars by cursor
// role with the theme's palette.
func SnapshotToSVG(snap sequence.Snapshot, cur algorithms.Cursors, theme viz.Theme, width, height int) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	n := len(snap.Values)
	if n > 0 {
		highlighted := make(map[int]bool, len(snap.Highlights))
		for _, i := range snap.Highlights {
			highlighted[i] = true
		}
		maxVal := 1
		for _, v := range snap.Values {
			maxVal = max(maxVal, v)
		}

		barW := float64(width) / float64(n)
		gap := 0.0
		if barW >= 4 {
			gap = 1
		}
		for i, v := range snap.Values {
			h := float64(v) / float64(maxVal) * float64(height)
			sb.WriteString(fmt.Sprintf(`<rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s"/>
`, float64(i)*barW, float64(height)-h, barW-gap, h, barColor(i, cur, highlighted, theme)))
		}
	}

	sb.WriteString("</svg>")
	return sb.String()
}

func barColor(i int, cur algorithms.Cursors, highlighted map[int]bool, theme viz.Theme) string {
	switch {
	case i == cur.Current:
		return string(theme.Current)
	case i == cur.Compare:
		return string(theme.Compare)
	case i == cur.Partition || highlighted[i]:
		return string(theme.Highlight)
	}
	return string(theme.Normal)
}

// SeriesToSVG plots a series against its sample index as a polyline.
func SeriesToSVG(series []float64, width, height int, strokeColor string) string {
	if len(series) < 2 {
		return ""
	}

	minY, maxY := series[0], series[0]
	for _, y := range series {
		minY = min(minY, y)
		maxY = max(maxY, y)
	}

	// Add padding
	rangeY := maxY - minY
	if rangeY == 0 {
		rangeY = 1
	}
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeY = maxY - minY
	rangeX := float64(len(series) - 1)

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor))

	for i, v := range series {
		x := float64(i) / rangeX * float64(width)
		y := float64(height) - (v-minY)/rangeY*float64(height)

		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}

// WriteFile saves an SVG document.
func WriteFile(path, svg string) error {
	return os.WriteFile(path, []byte(svg), 0644)
}
