// Package profile implements parametric structural cross-section profiles:
// family-specific dimension structs, composers that trace each family's
// boundary as a closed path, and the corrosion transform deriving reduced
// profiles from existing ones.
//
// All dimensions are in mm. Dimension structs are validated eagerly at
// construction and treated as immutable afterwards; the corrosion transform
// always returns a new instance (or the receiver itself for zero corrosion).
package profile

import (
	"errors"
	"fmt"

	"gosaf/internal/geom"
)

const (
	// defaultSegmentAngle bounds arc tessellation to 5 degree chords.
	defaultSegmentAngle = 5.0
	// minThickness is the feasibility floor for any wall remaining after
	// corrosion. Walls at or below it are rejected as fully corroded
	// rather than kept as numerically razor-thin material.
	minThickness = 1e-6
)

// ErrFullyCorroded reports a corrosion transform that consumed a wall.
var ErrFullyCorroded = errors.New("fully corroded")

// tessellationAngle is the active arc tessellation limit in degrees. It is
// set once at startup from configuration and read-only afterwards.
var tessellationAngle = defaultSegmentAngle

// SetSegmentAngle adjusts the global tessellation limit. Non-positive values
// are ignored. Intended to be called once during program initialization.
func SetSegmentAngle(deg float64) {
	if deg > 0 {
		tessellationAngle = deg
	}
}

// Profile is a parametric cross-section capable of producing its boundary
// polygon and a corroded variant of itself.
type Profile interface {
	// Designation is the display name, e.g. "RHS 200x100x5".
	Designation() string
	// Polygon traces the boundary (outer ring plus hole ring for hollow
	// families) in local profile coordinates.
	Polygon() (geom.Polygon, error)
	// Corroded returns a new profile with uniformly reduced dimensions,
	// or the receiver itself when the corrosion is exactly zero.
	Corroded(c Corrosion) (Profile, error)
}

// Metadata carries opaque display attributes through geometric operations
// unchanged. It has no geometric meaning.
type Metadata struct {
	Color string
	Layer string
}

// ValidationError reports infeasible profile dimensions.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func errorf(format string, args ...any) *ValidationError {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// ReferencePoint selects the coordinate origin of cornered (open) profiles.
type ReferencePoint string

const (
	// ReferenceIntersection places the origin where the outer faces
	// intersect (the heel). This is the traced origin.
	ReferenceIntersection ReferencePoint = "intersection"
	// ReferenceOuter shifts the profile by its total width and height, so
	// the traced origin moves to the far corner.
	ReferenceOuter ReferencePoint = "outer"
)

func (rp ReferencePoint) validate() error {
	switch rp {
	case "", ReferenceIntersection, ReferenceOuter:
		return nil
	}
	return errorf("unrecognized reference point %q", string(rp))
}

// shift translates a traced ring according to the reference point.
func (rp ReferencePoint) shift(ring geom.Ring, width, height float64) geom.Ring {
	if rp == ReferenceOuter {
		return ring.Translate(geom.Vec{X: -width, Y: -height})
	}
	return ring
}
