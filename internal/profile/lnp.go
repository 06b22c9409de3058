package profile

import (
	"fmt"

	"gosaf/internal/geom"
)

// LNP is an angle profile: two perpendicular legs of equal thickness meeting
// at the heel. Width is the horizontal leg length, Height the vertical one,
// both measured over the outer faces.
type LNP struct {
	Name      string
	Width     float64 // mm
	Height    float64 // mm
	Thickness float64 // mm

	RootRadius float64 // concave fillet between the inner faces
	ToeRadius  float64 // convex rounding at both leg ends
	BackRadius float64 // convex rounding of the outer heel corner

	RefPoint ReferencePoint
	Meta     Metadata
}

// NewLNP validates and constructs an angle profile.
func NewLNP(name string, width, height, thickness, rootRadius, toeRadius float64) (*LNP, error) {
	p := &LNP{
		Name:       name,
		Width:      width,
		Height:     height,
		Thickness:  thickness,
		RootRadius: rootRadius,
		ToeRadius:  toeRadius,
	}
	if p.Name == "" {
		p.Name = fmt.Sprintf("LNP %gx%gx%g", width, height, thickness)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate derives every straight-segment length analytically and rejects
// any negative one before path construction.
func (p *LNP) Validate() error {
	if p.Width <= 0 || p.Height <= 0 {
		return errorf("LNP leg lengths must be positive, got %gx%g", p.Width, p.Height)
	}
	if p.Thickness <= 0 {
		return errorf("LNP thickness must be positive, got %g", p.Thickness)
	}
	if p.Thickness >= p.Width || p.Thickness >= p.Height {
		return errorf("LNP thickness %g not smaller than leg lengths %gx%g", p.Thickness, p.Width, p.Height)
	}
	if p.RootRadius < 0 || p.ToeRadius < 0 || p.BackRadius < 0 {
		return errorf("LNP radii must be non-negative")
	}
	if err := p.RefPoint.validate(); err != nil {
		return err
	}
	for _, l := range p.segmentLengths() {
		if l < 0 {
			return errorf("LNP %g/%g/%g radii %g/%g/%g yield a negative segment",
				p.Width, p.Height, p.Thickness, p.RootRadius, p.ToeRadius, p.BackRadius)
		}
	}
	return nil
}

// segmentLengths lists the straight spans in traversal order: web toe face,
// web inner, base inner, base toe face, base outer, web outer.
func (p *LNP) segmentLengths() [6]float64 {
	t, r1, r2, rb := p.Thickness, p.RootRadius, p.ToeRadius, p.BackRadius
	return [6]float64{
		t - r2,
		p.Height - r2 - t - r1,
		p.Width - t - r1 - r2,
		t - r2,
		p.Width - rb,
		p.Height - rb,
	}
}

// Designation implements Profile.
func (p *LNP) Designation() string {
	return p.Name
}

// Polygon traces the angle boundary starting at the web toe: across the web
// end, down the inner web face, around the root fillet, along the inner base
// face, down the base toe, back along the outer base face and up the outer
// web face around the heel.
func (p *LNP) Polygon() (geom.Polygon, error) {
	if err := p.Validate(); err != nil {
		return geom.Polygon{}, err
	}
	l := p.segmentLengths()
	r1, r2, rb := p.RootRadius, p.ToeRadius, p.BackRadius
	seg := tessellationAngle
	ring, err := geom.NewPath(geom.Vec{Y: p.Height}).
		AppendLine(l[0], 0).
		AppendArc(-90, 0, r2, seg).
		AppendLine(l[1], 270).
		AppendArc(90, 270, r1, seg).
		AppendLine(l[2], 0).
		AppendArc(-90, 0, r2, seg).
		AppendLine(l[3], 270).
		AppendLine(l[4], 180).
		AppendArc(-90, 180, rb, seg).
		AppendLine(l[5], 90).
		GenerateRing(false)
	if err != nil {
		return geom.Polygon{}, err
	}
	return geom.NewPolygon(p.RefPoint.shift(ring, p.Width, p.Height), nil)
}

// Corroded implements Profile. Every face of an angle is exposed, so legs
// and thickness lose material on both sides; the concave root opens up while
// the convex toe and heel radii sharpen.
func (p *LNP) Corroded(c Corrosion) (Profile, error) {
	if err := c.validate(false); err != nil {
		return nil, err
	}
	if c.IsZero() {
		return p, nil
	}
	out := &LNP{
		Name:       annotate(p.Name, c),
		Width:      p.Width - 2*c.Outside,
		Height:     p.Height - 2*c.Outside,
		Thickness:  p.Thickness - 2*c.Outside,
		RootRadius: growRadius(p.RootRadius, c.Outside),
		ToeRadius:  shrinkRadius(p.ToeRadius, c.Outside),
		BackRadius: shrinkRadius(p.BackRadius, c.Outside),
		RefPoint:   p.RefPoint,
		Meta:       p.Meta,
	}
	if out.Thickness <= minThickness {
		return nil, fmt.Errorf("%s: %w", p.Name, ErrFullyCorroded)
	}
	if err := out.Validate(); err != nil {
		return nil, err
	}
	return out, nil
}
