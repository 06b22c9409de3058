package profile

import (
	"fmt"

	"gosaf/internal/geom"
)

// Corner indexes for RHS radii, in boundary traversal order.
const (
	CornerBottomLeft = iota
	CornerTopLeft
	CornerTopRight
	CornerBottomRight
)

// RHS is a rectangular (or, with equal sides, square) hollow section. Every
// wall thickness and corner radius is independent.
type RHS struct {
	Name        string
	TotalWidth  float64 // mm
	TotalHeight float64 // mm

	WallLeft   float64 // mm
	WallRight  float64 // mm
	WallTop    float64 // mm
	WallBottom float64 // mm

	OuterRadii [4]float64 // by Corner* index
	InnerRadii [4]float64

	Meta Metadata
}

// NewRHS constructs a hollow section with uniform wall thickness and the
// catalog corner convention (inner radius = outer radius - thickness).
func NewRHS(name string, width, height, thickness, outerRadius float64) (*RHS, error) {
	p := &RHS{
		Name:        name,
		TotalWidth:  width,
		TotalHeight: height,
		WallLeft:    thickness,
		WallRight:   thickness,
		WallTop:     thickness,
		WallBottom:  thickness,
	}
	inner := outerRadius - thickness
	if inner < 0 {
		inner = 0
	}
	for i := range p.OuterRadii {
		p.OuterRadii[i] = outerRadius
		p.InnerRadii[i] = inner
	}
	if p.Name == "" {
		family := "RHS"
		if width == height {
			family = "SHS"
		}
		p.Name = fmt.Sprintf("%s %gx%gx%g", family, width, height, thickness)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// InnerWidth is the cavity width.
func (p *RHS) InnerWidth() float64 {
	return p.TotalWidth - p.WallLeft - p.WallRight
}

// InnerHeight is the cavity height.
func (p *RHS) InnerHeight() float64 {
	return p.TotalHeight - p.WallTop - p.WallBottom
}

func (p *RHS) walls() [4]float64 {
	return [4]float64{p.WallLeft, p.WallRight, p.WallTop, p.WallBottom}
}

// Validate checks wall, radius and derived straight-segment feasibility
// before any path command is issued.
func (p *RHS) Validate() error {
	if p.TotalWidth <= 0 || p.TotalHeight <= 0 {
		return errorf("RHS outer dimensions must be positive, got %gx%g", p.TotalWidth, p.TotalHeight)
	}
	names := [4]string{"left", "right", "top", "bottom"}
	for i, t := range p.walls() {
		if t <= 0 {
			return errorf("RHS %s wall thickness must be positive, got %g", names[i], t)
		}
	}
	if p.InnerWidth() <= 0 || p.InnerHeight() <= 0 {
		return errorf("RHS walls leave no cavity in %gx%g", p.TotalWidth, p.TotalHeight)
	}
	for i := 0; i < 4; i++ {
		if p.OuterRadii[i] < 0 || p.InnerRadii[i] < 0 {
			return errorf("RHS corner %d radius must be non-negative", i)
		}
	}
	// Adjacent wall thicknesses per corner, traversal order.
	adj := [4][2]float64{
		{p.WallLeft, p.WallBottom},
		{p.WallLeft, p.WallTop},
		{p.WallRight, p.WallTop},
		{p.WallRight, p.WallBottom},
	}
	for i := 0; i < 4; i++ {
		limit := adj[i][0]
		if adj[i][1] < limit {
			limit = adj[i][1]
		}
		if p.OuterRadii[i]-p.InnerRadii[i] > limit {
			return errorf("RHS corner %d outer radius %g exceeds inner radius %g plus wall thickness %g",
				i, p.OuterRadii[i], p.InnerRadii[i], limit)
		}
	}
	if err := cornerRingLengths(p.TotalWidth, p.TotalHeight, p.OuterRadii); err != nil {
		return err
	}
	return cornerRingLengths(p.InnerWidth(), p.InnerHeight(), p.InnerRadii)
}

// cornerRingLengths rejects radii that would drive any wall straight length
// negative.
func cornerRingLengths(w, h float64, r [4]float64) error {
	spans := [4]float64{
		h - r[CornerBottomLeft] - r[CornerTopLeft],
		w - r[CornerTopLeft] - r[CornerTopRight],
		h - r[CornerTopRight] - r[CornerBottomRight],
		w - r[CornerBottomRight] - r[CornerBottomLeft],
	}
	for _, s := range spans {
		if s < 0 {
			return errorf("corner radii too large for %gx%g ring", w, h)
		}
	}
	return nil
}

// cornerRing traces a rounded rectangle clockwise from the bottom-left
// corner: four straight walls joined by four -90 degree corner arcs.
func cornerRing(origin geom.Vec, w, h float64, r [4]float64, seg float64) (geom.Ring, error) {
	return geom.NewPath(geom.Vec{X: origin.X, Y: origin.Y + r[CornerBottomLeft]}).
		AppendLine(h-r[CornerBottomLeft]-r[CornerTopLeft], 90).
		AppendArc(-90, 90, r[CornerTopLeft], seg).
		AppendLine(w-r[CornerTopLeft]-r[CornerTopRight], 0).
		AppendArc(-90, 0, r[CornerTopRight], seg).
		AppendLine(h-r[CornerTopRight]-r[CornerBottomRight], 270).
		AppendArc(-90, 270, r[CornerBottomRight], seg).
		AppendLine(w-r[CornerBottomRight]-r[CornerBottomLeft], 180).
		AppendArc(-90, 180, r[CornerBottomLeft], seg).
		GenerateRing(false)
}

// Designation implements Profile.
func (p *RHS) Designation() string {
	return p.Name
}

// Polygon traces the outer and cavity rings. Both start at the bottom-left
// corner so their orientations match; the origin sits at the outer
// bottom-left of the bounding box.
func (p *RHS) Polygon() (geom.Polygon, error) {
	if err := p.Validate(); err != nil {
		return geom.Polygon{}, err
	}
	outer, err := cornerRing(geom.Vec{}, p.TotalWidth, p.TotalHeight, p.OuterRadii, tessellationAngle)
	if err != nil {
		return geom.Polygon{}, err
	}
	hole, err := cornerRing(geom.Vec{X: p.WallLeft, Y: p.WallBottom},
		p.InnerWidth(), p.InnerHeight(), p.InnerRadii, tessellationAngle)
	if err != nil {
		return geom.Polygon{}, err
	}
	return geom.NewPolygon(outer, hole)
}

// Corroded implements Profile: the outer envelope shrinks per side by the
// outside loss, the cavity grows per side by the inside loss, outer corner
// radii shrink (floored at zero) and inner radii grow.
func (p *RHS) Corroded(c Corrosion) (Profile, error) {
	if err := c.validate(true); err != nil {
		return nil, err
	}
	if c.IsZero() {
		return p, nil
	}
	loss := c.Outside + c.Inside
	out := &RHS{
		Name:        annotate(p.Name, c),
		TotalWidth:  p.TotalWidth - 2*c.Outside,
		TotalHeight: p.TotalHeight - 2*c.Outside,
		WallLeft:    p.WallLeft - loss,
		WallRight:   p.WallRight - loss,
		WallTop:     p.WallTop - loss,
		WallBottom:  p.WallBottom - loss,
		Meta:        p.Meta,
	}
	for i := 0; i < 4; i++ {
		out.OuterRadii[i] = shrinkRadius(p.OuterRadii[i], c.Outside)
		out.InnerRadii[i] = growRadius(p.InnerRadii[i], c.Inside)
	}
	for _, t := range out.walls() {
		if t <= minThickness {
			return nil, fmt.Errorf("%s: %w", p.Name, ErrFullyCorroded)
		}
	}
	if err := out.Validate(); err != nil {
		return nil, err
	}
	return out, nil
}
