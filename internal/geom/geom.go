// Package geom provides the 2D boundary geometry used to construct
// structural profile cross-sections: a turtle-style path builder that
// composes straight and circular-arc segments, and closed polygon rings
// with derived geometric properties (area, perimeter, centroid).
//
// All coordinates are in mm. Angles are in degrees, counter-clockwise
// from the positive x-axis.
package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Vec is a 2D point or displacement.
type Vec = r2.Vec

// closeTol is the distance under which two points are considered coincident.
const closeTol = 1e-9

func coincident(a, b Vec) bool {
	return math.Abs(a.X-b.X) <= closeTol && math.Abs(a.Y-b.Y) <= closeTol
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
