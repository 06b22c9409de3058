package profile

import (
	"fmt"
	"math"

	"gosaf/internal/geom"
)

// CHS is a circular hollow section.
type CHS struct {
	Name          string
	OuterDiameter float64 // mm
	WallThickness float64 // mm
	Meta          Metadata
}

// NewCHS validates and constructs a circular hollow section. An empty name
// derives a designation from the dimensions.
func NewCHS(name string, outerDiameter, wallThickness float64) (*CHS, error) {
	p := &CHS{Name: name, OuterDiameter: outerDiameter, WallThickness: wallThickness}
	if p.Name == "" {
		p.Name = fmt.Sprintf("CHS %gx%g", outerDiameter, wallThickness)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate checks the dimensions for feasibility.
func (p *CHS) Validate() error {
	if p.OuterDiameter <= 0 {
		return errorf("CHS outer diameter must be positive, got %g", p.OuterDiameter)
	}
	if p.WallThickness <= 0 {
		return errorf("CHS wall thickness must be positive, got %g", p.WallThickness)
	}
	if 2*p.WallThickness >= p.OuterDiameter {
		return errorf("CHS wall thickness %g leaves no cavity in diameter %g", p.WallThickness, p.OuterDiameter)
	}
	return nil
}

// Designation implements Profile.
func (p *CHS) Designation() string {
	return p.Name
}

// InnerDiameter is the enclosed cavity diameter.
func (p *CHS) InnerDiameter() float64 {
	return p.OuterDiameter - 2*p.WallThickness
}

// segmentAngle keeps the tessellation chord length near 1 mm regardless of
// profile size, capped at the default 5 degrees.
func (p *CHS) segmentAngle() float64 {
	return math.Min(tessellationAngle, 360/(math.Pi*p.OuterDiameter))
}

// Polygon traces the outer ring and the cavity ring as full-circle arcs
// centered on the origin.
func (p *CHS) Polygon() (geom.Polygon, error) {
	if err := p.Validate(); err != nil {
		return geom.Polygon{}, err
	}
	seg := p.segmentAngle()
	outer, err := circleRing(p.OuterDiameter/2, seg)
	if err != nil {
		return geom.Polygon{}, err
	}
	hole, err := circleRing(p.InnerDiameter()/2, seg)
	if err != nil {
		return geom.Polygon{}, err
	}
	return geom.NewPolygon(outer, hole)
}

// circleRing traces one full counter-clockwise circle about the origin,
// starting on the positive x-axis.
func circleRing(radius, segmentAngle float64) (geom.Ring, error) {
	return geom.NewPath(geom.Vec{X: radius}).
		AppendArc(360, 90, radius, segmentAngle).
		GenerateRing(false)
}

// Corroded implements Profile. The outer envelope shrinks by the outside
// loss per side, the cavity grows by the inside loss per side.
func (p *CHS) Corroded(c Corrosion) (Profile, error) {
	if err := c.validate(true); err != nil {
		return nil, err
	}
	if c.IsZero() {
		return p, nil
	}
	out := &CHS{
		Name:          annotate(p.Name, c),
		OuterDiameter: p.OuterDiameter - 2*c.Outside,
		WallThickness: p.WallThickness - c.Outside - c.Inside,
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
