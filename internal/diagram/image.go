package diagram

import (
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"gosaf/internal/geom"
)

// ExportProfileDiagram plots a profile boundary (outer ring plus the cavity
// ring, if any) to an image file. The format follows the file extension:
// png, svg or pdf, defaulting to png.
func ExportProfileDiagram(pg geom.Polygon, title, filename string) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "y (mm)"
	p.Y.Label.Text = "z (mm)"

	outline, err := ringLine(pg.Outer, color.Black, 2)
	if err != nil {
		return err
	}
	p.Add(outline)

	if pg.Hole != nil {
		hole, err := ringLine(pg.Hole, color.RGBA{R: 100, G: 100, B: 100, A: 255}, 1.5)
		if err != nil {
			return err
		}
		p.Add(hole)
	}

	// Keep the section undistorted.
	props := pg.Properties()
	pad := 0.05 * (props.Width + props.Height)
	p.X.Min, p.X.Max = props.MinX-pad, props.MaxX+pad
	p.Y.Min, p.Y.Max = props.MinY-pad, props.MaxY+pad

	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		os.MkdirAll(dir, 0o755)
	}

	width := 6 * vg.Inch
	height := width * vg.Length((p.Y.Max-p.Y.Min)/(p.X.Max-p.X.Min))

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}

// ringLine builds a closed plot line from a ring.
func ringLine(r geom.Ring, c color.Color, w float64) (*plotter.Line, error) {
	pts := make(plotter.XYs, len(r)+1)
	for i, v := range r {
		pts[i] = plotter.XY{X: v.X, Y: v.Y}
	}
	pts[len(r)] = plotter.XY{X: r[0].X, Y: r[0].Y}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	line.LineStyle.Width = vg.Points(w)
	line.LineStyle.Color = c
	return line, nil
}
