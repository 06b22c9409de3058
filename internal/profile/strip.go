package profile

import (
	"fmt"

	"gosaf/internal/geom"
)

// Strip is a plain rectangular flat bar.
type Strip struct {
	Name      string
	Width     float64 // mm
	Thickness float64 // mm
	Meta      Metadata
}

// NewStrip validates and constructs a flat bar.
func NewStrip(name string, width, thickness float64) (*Strip, error) {
	p := &Strip{Name: name, Width: width, Thickness: thickness}
	if p.Name == "" {
		p.Name = fmt.Sprintf("FL %gx%g", width, thickness)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate checks the dimensions for feasibility.
func (p *Strip) Validate() error {
	if p.Width <= 0 || p.Thickness <= 0 {
		return errorf("strip dimensions must be positive, got %gx%g", p.Width, p.Thickness)
	}
	return nil
}

// Designation implements Profile.
func (p *Strip) Designation() string {
	return p.Name
}

// Polygon traces the rectangle counter-clockwise from the origin.
func (p *Strip) Polygon() (geom.Polygon, error) {
	if err := p.Validate(); err != nil {
		return geom.Polygon{}, err
	}
	ring, err := geom.NewPath(geom.Vec{}).
		AppendLine(p.Width, 0).
		AppendLine(p.Thickness, 90).
		AppendLine(p.Width, 180).
		GenerateRing(false)
	if err != nil {
		return geom.Polygon{}, err
	}
	return geom.NewPolygon(ring, nil)
}

// Corroded implements Profile: all four faces are exposed.
func (p *Strip) Corroded(c Corrosion) (Profile, error) {
	if err := c.validate(false); err != nil {
		return nil, err
	}
	if c.IsZero() {
		return p, nil
	}
	out := &Strip{
		Name:      annotate(p.Name, c),
		Width:     p.Width - 2*c.Outside,
		Thickness: p.Thickness - 2*c.Outside,
		Meta:      p.Meta,
	}
	if out.Thickness <= minThickness || out.Width <= minThickness {
		return nil, fmt.Errorf("%s: %w", p.Name, ErrFullyCorroded)
	}
	return out, nil
}
