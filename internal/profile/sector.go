package profile

import (
	"fmt"
	"math"

	"gosaf/internal/geom"
)

// AnnulusSector is a partial circular hollow section: the material between
// two concentric arcs over a limited sweep, closed by two radial end faces.
type AnnulusSector struct {
	Name          string
	OuterRadius   float64 // mm
	WallThickness float64 // mm
	StartAngle    float64 // degrees, counter-clockwise from +x
	SweepAngle    float64 // degrees, counter-clockwise extent
	Meta          Metadata
}

// NewAnnulusSector validates and constructs an annulus sector.
func NewAnnulusSector(name string, outerRadius, wallThickness, startAngle, sweepAngle float64) (*AnnulusSector, error) {
	p := &AnnulusSector{
		Name:          name,
		OuterRadius:   outerRadius,
		WallThickness: wallThickness,
		StartAngle:    startAngle,
		SweepAngle:    sweepAngle,
	}
	if p.Name == "" {
		p.Name = fmt.Sprintf("SECT %gx%g-%g", 2*outerRadius, wallThickness, sweepAngle)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate checks the dimensions for feasibility.
func (p *AnnulusSector) Validate() error {
	if p.OuterRadius <= 0 {
		return errorf("annulus sector outer radius must be positive, got %g", p.OuterRadius)
	}
	if p.WallThickness <= 0 || p.WallThickness >= p.OuterRadius {
		return errorf("annulus sector wall thickness %g infeasible for radius %g", p.WallThickness, p.OuterRadius)
	}
	if p.SweepAngle <= 0 || p.SweepAngle >= 360 {
		return errorf("annulus sector sweep must be in (0, 360) degrees, got %g", p.SweepAngle)
	}
	return nil
}

// Designation implements Profile.
func (p *AnnulusSector) Designation() string {
	return p.Name
}

// Polygon traces a single ring: the outer arc counter-clockwise, a radial
// step inward, the inner arc back clockwise, and the implicit radial closure
// to the start point. No auxiliary cutting wedge is needed when the boundary
// is composed directly.
func (p *AnnulusSector) Polygon() (geom.Polygon, error) {
	if err := p.Validate(); err != nil {
		return geom.Polygon{}, err
	}
	ro := p.OuterRadius
	ri := ro - p.WallThickness
	seg := math.Min(tessellationAngle, 360/(math.Pi*2*ro))
	start := radialPoint(ro, p.StartAngle)
	end := p.StartAngle + p.SweepAngle
	ring, err := geom.NewPath(start).
		AppendArc(p.SweepAngle, p.StartAngle+90, ro, seg).
		AppendLine(p.WallThickness, end+180).
		AppendArc(-p.SweepAngle, end-90, ri, seg).
		GenerateRing(false)
	if err != nil {
		return geom.Polygon{}, err
	}
	return geom.NewPolygon(ring, nil)
}

func radialPoint(r, angleDeg float64) geom.Vec {
	a := angleDeg * math.Pi / 180
	return geom.Vec{X: r * math.Cos(a), Y: r * math.Sin(a)}
}

// Corroded implements Profile. The sector corrodes like a hollow section
// wall: the outer arc recedes by the outside loss, the inner arc by the
// inside loss. The angular extent is unchanged.
func (p *AnnulusSector) Corroded(c Corrosion) (Profile, error) {
	if err := c.validate(true); err != nil {
		return nil, err
	}
	if c.IsZero() {
		return p, nil
	}
	out := &AnnulusSector{
		Name:          annotate(p.Name, c),
		OuterRadius:   p.OuterRadius - c.Outside,
		WallThickness: p.WallThickness - c.Outside - c.Inside,
		StartAngle:    p.StartAngle,
		SweepAngle:    p.SweepAngle,
		Meta:          p.Meta,
	}
	if out.WallThickness <= minThickness {
		return nil, fmt.Errorf("%s: %w", p.Name, ErrFullyCorroded)
	}
	if err := out.Validate(); err != nil {
		return nil, err
	}
	return out, nil
}
