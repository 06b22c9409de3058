package geom

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrNegativeValue reports a negative arc radius.
	ErrNegativeValue = errors.New("negative value")
	// ErrNonPositiveValue reports a non-positive maximum segment angle.
	ErrNonPositiveValue = errors.New("non-positive value")
	// ErrTooFewPoints reports a path closed with fewer than 3 points.
	ErrTooFewPoints = errors.New("at least 3 points required")
	// ErrNotSimple reports a self-intersecting boundary.
	ErrNotSimple = errors.New("constructed polygon is not valid")
	// ErrFinalized reports an append on a path already turned into a ring.
	ErrFinalized = errors.New("path already finalized")
)

// PathBuilder accumulates an ordered vertex list from a current position.
// Append calls chain and record the first failure; the error surfaces from
// GenerateRing (or Err). A builder is created with a start point, mutated by
// a finite sequence of appends and finalized exactly once.
type PathBuilder struct {
	pts  []Vec
	err  error
	done bool
}

// NewPath starts a path at the given point.
func NewPath(start Vec) *PathBuilder {
	return &PathBuilder{pts: []Vec{start}}
}

// Err returns the first error recorded by an append call, if any.
func (p *PathBuilder) Err() error {
	return p.err
}

// Vertices returns a copy of the points accumulated so far.
func (p *PathBuilder) Vertices() []Vec {
	return append([]Vec(nil), p.pts...)
}

func (p *PathBuilder) setErr(err error) {
	if p.err == nil {
		p.err = err
	}
}

func (p *PathBuilder) current() Vec {
	return p.pts[len(p.pts)-1]
}

// AppendLine appends a straight segment of the given length in the direction
// angleDeg. A negative length reverses the direction.
func (p *PathBuilder) AppendLine(length, angleDeg float64) *PathBuilder {
	if p.err != nil {
		return p
	}
	if p.done {
		p.setErr(ErrFinalized)
		return p
	}
	a := radians(angleDeg)
	cur := p.current()
	p.pts = append(p.pts, Vec{X: cur.X + length*math.Cos(a), Y: cur.Y + length*math.Sin(a)})
	return p
}

// AppendArc appends a tessellated circular arc. sweepDeg is the signed total
// angle (positive counter-clockwise), tangentDeg the tangent direction at the
// arc start, and maxSegDeg the largest angle covered by one chord. A zero
// sweep or zero radius is a no-op; a fully corroded corner collapses to this.
func (p *PathBuilder) AppendArc(sweepDeg, tangentDeg, radius, maxSegDeg float64) *PathBuilder {
	if p.err != nil {
		return p
	}
	if p.done {
		p.setErr(ErrFinalized)
		return p
	}
	if radius < 0 {
		p.setErr(fmt.Errorf("arc radius %g: %w", radius, ErrNegativeValue))
		return p
	}
	if maxSegDeg <= 0 {
		p.setErr(fmt.Errorf("max segment angle %g: %w", maxSegDeg, ErrNonPositiveValue))
		return p
	}
	if sweepDeg == 0 || radius == 0 {
		return p
	}

	// The center sits one radius perpendicular to the tangent: to the left
	// for a counter-clockwise sweep, to the right for a clockwise one.
	side := 1.0
	if sweepDeg < 0 {
		side = -1
	}
	t := radians(tangentDeg)
	cur := p.current()
	center := Vec{X: cur.X - side*radius*math.Sin(t), Y: cur.Y + side*radius*math.Cos(t)}

	n := int(math.Ceil(math.Abs(sweepDeg) / maxSegDeg))
	if n < 1 {
		n = 1
	}
	step := radians(sweepDeg / float64(n))
	sin, cos := math.Sin(step), math.Cos(step)

	// Rotate the start radius-vector incrementally about the center. The
	// start point itself is already in the list and is not re-emitted.
	rx, ry := cur.X-center.X, cur.Y-center.Y
	for i := 0; i < n; i++ {
		rx, ry = rx*cos-ry*sin, rx*sin+ry*cos
		p.pts = append(p.pts, Vec{X: center.X + rx, Y: center.Y + ry})
	}
	return p
}

// GenerateRing closes the accumulated path into a validated simple ring and
// finalizes the builder. If the last point coincides with the first, it is
// dropped; otherwise the ring closes implicitly back to the start, so callers
// need not emit a final segment. With centerCentroid the ring is translated
// so its centroid sits at the origin.
func (p *PathBuilder) GenerateRing(centerCentroid bool) (Ring, error) {
	if p.err != nil {
		return nil, p.err
	}
	p.done = true

	// Zero-length segments (a corner radius consuming a whole straight)
	// leave coincident neighbours behind; collapse them before validation.
	pts := make([]Vec, 0, len(p.pts))
	for _, v := range p.pts {
		if len(pts) > 0 && coincident(pts[len(pts)-1], v) {
			continue
		}
		pts = append(pts, v)
	}
	if len(pts) > 1 && coincident(pts[0], pts[len(pts)-1]) {
		pts = pts[:len(pts)-1]
	}
	if len(pts) < 3 {
		return nil, ErrTooFewPoints
	}
	ring := Ring(pts)
	if !ring.IsSimple() {
		return nil, ErrNotSimple
	}
	if centerCentroid {
		c := ring.Centroid()
		ring = ring.Translate(Vec{X: -c.X, Y: -c.Y})
	}
	return ring, nil
}
