package geom

import (
	"errors"
	"math"
)

// ErrHoleOutside reports a hole ring not strictly inside the outer boundary.
var ErrHoleOutside = errors.New("hole ring lies outside the outer boundary")

// Polygon is an immutable closed boundary: an outer ring wound
// counter-clockwise and, for hollow sections, a hole ring wound clockwise.
type Polygon struct {
	Outer Ring
	Hole  Ring
}

// NewPolygon validates the rings and normalizes their winding (outer
// counter-clockwise, hole clockwise). hole may be nil for solid sections.
func NewPolygon(outer, hole Ring) (Polygon, error) {
	if len(outer) < 3 {
		return Polygon{}, ErrTooFewPoints
	}
	if !outer.IsSimple() {
		return Polygon{}, ErrNotSimple
	}
	if outer.SignedArea() < 0 {
		outer = outer.Reverse()
	}
	if hole == nil {
		return Polygon{Outer: outer}, nil
	}
	if len(hole) < 3 {
		return Polygon{}, ErrTooFewPoints
	}
	if !hole.IsSimple() {
		return Polygon{}, ErrNotSimple
	}
	if !outer.ContainsRing(hole) {
		return Polygon{}, ErrHoleOutside
	}
	if hole.SignedArea() > 0 {
		hole = hole.Reverse()
	}
	return Polygon{Outer: outer, Hole: hole}, nil
}

// Translate returns a copy of the polygon shifted by d.
func (pg Polygon) Translate(d Vec) Polygon {
	out := Polygon{Outer: pg.Outer.Translate(d)}
	if pg.Hole != nil {
		out.Hole = pg.Hole.Translate(d)
	}
	return out
}

// Properties holds derived scalar quantities of a polygon.
type Properties struct {
	Area      float64 // net area, hole subtracted (mm²)
	Perimeter float64 // outer plus hole boundary length (mm)

	CentroidX float64 // mm
	CentroidY float64 // mm

	// Bounding box of the outer ring
	MinX   float64
	MaxX   float64
	MinY   float64
	MaxY   float64
	Width  float64 // mm
	Height float64 // mm
}

// Properties computes the derived geometric quantities. The hole reduces the
// area and shifts the composite centroid; its boundary adds to the perimeter.
func (pg Polygon) Properties() Properties {
	var props Properties

	min, max := pg.Outer.Bounds()
	props.MinX, props.MaxX = min.X, max.X
	props.MinY, props.MaxY = min.Y, max.Y
	props.Width = max.X - min.X
	props.Height = max.Y - min.Y

	outerArea := pg.Outer.Area()
	outerC := pg.Outer.Centroid()
	props.Area = outerArea
	props.Perimeter = pg.Outer.Perimeter()
	props.CentroidX, props.CentroidY = outerC.X, outerC.Y

	if pg.Hole != nil {
		holeArea := pg.Hole.Area()
		holeC := pg.Hole.Centroid()
		props.Area = outerArea - holeArea
		props.Perimeter += pg.Hole.Perimeter()
		if math.Abs(props.Area) > 0 {
			props.CentroidX = (outerArea*outerC.X - holeArea*holeC.X) / props.Area
			props.CentroidY = (outerArea*outerC.Y - holeArea*holeC.Y) / props.Area
		}
	}
	return props
}
