// Package diagram renders profile cross-sections as terminal art and as
// image files.
package diagram

import (
	"strings"

	"gosaf/internal/geom"
)

// DrawASCIIProfile rasterizes the profile boundary onto a character grid.
// Rows are printed top-down; the aspect ratio is halved vertically to
// compensate for terminal cell shape.
func DrawASCIIProfile(pg geom.Polygon, widthChars int) string {
	if widthChars < 8 {
		widthChars = 8
	}
	props := pg.Properties()
	if props.Width <= 0 || props.Height <= 0 {
		return ""
	}
	heightChars := int(float64(widthChars) * props.Height / props.Width / 2)
	if heightChars < 4 {
		heightChars = 4
	}

	grid := make([][]rune, heightChars+1)
	for i := range grid {
		grid[i] = make([]rune, widthChars+1)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}
	rasterizeRing(grid, pg.Outer, props, widthChars, heightChars)
	if pg.Hole != nil {
		rasterizeRing(grid, pg.Hole, props, widthChars, heightChars)
	}

	var sb strings.Builder
	for i := len(grid) - 1; i >= 0; i-- {
		sb.WriteString("  ")
		sb.WriteString(strings.TrimRight(string(grid[i]), " "))
		sb.WriteString("\n")
	}
	return sb.String()
}

func rasterizeRing(grid [][]rune, r geom.Ring, props geom.Properties, w, h int) {
	n := len(r)
	for i := 0; i < n; i++ {
		a, b := r[i], r[(i+1)%n]
		// Sample each edge densely enough to hit every crossed cell.
		steps := 2 * (w + h)
		for s := 0; s <= steps; s++ {
			t := float64(s) / float64(steps)
			x := a.X + t*(b.X-a.X)
			y := a.Y + t*(b.Y-a.Y)
			col := int((x - props.MinX) / props.Width * float64(w))
			row := int((y - props.MinY) / props.Height * float64(h))
			if row >= 0 && row < len(grid) && col >= 0 && col < len(grid[row]) {
				grid[row][col] = '█'
			}
		}
	}
}
