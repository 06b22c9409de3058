package profile

import (
	"fmt"
	"math"

	"gosaf/internal/geom"
)

// Flange describes one flange of a channel profile. Thickness is measured at
// the middle of the working width (halfway between the inner web face and the
// toe), the convention used by the DIN 1026 tables.
type Flange struct {
	Width       float64 // mm, from the outer web face to the toe
	Thickness   float64 // mm, at the slope reference point
	Slope       float64 // inner face grade in percent
	RootRadius  float64 // concave fillet at the web
	ToeRadius   float64 // convex rounding at the toe
	OuterRadius float64 // convex rounding of the back corner
}

// UNP is a channel profile: a vertical web with a top and a bottom flange,
// each with independent thickness, slope and radii. The bottom flange is a
// mirror of the top construction about the mid-web line.
type UNP struct {
	Name         string
	Height       float64 // mm
	WebThickness float64 // mm
	Top          Flange
	Bottom       Flange

	RefPoint ReferencePoint
	Meta     Metadata
}

// NewUNP constructs a channel with identical top and bottom flanges.
func NewUNP(name string, height, webThickness float64, flange Flange) (*UNP, error) {
	p := &UNP{
		Name:         name,
		Height:       height,
		WebThickness: webThickness,
		Top:          flange,
		Bottom:       flange,
	}
	if p.Name == "" {
		p.Name = fmt.Sprintf("UNP %gx%g", height, flange.Width)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// flangeGeometry holds the derived quantities of one flange: slope angle,
// thickness at the toe face and at the web face, tangent offsets of the toe
// and root arcs, and the straight spans of the end face and the sloped face.
type flangeGeometry struct {
	angleDeg     float64 // slope angle in degrees
	toeThickness float64 // vertical extent of the end face at the toe
	rootHeight   float64 // flange depth at the inner web face
	toeOffset    float64 // tangent offset of the toe arc along both faces
	rootOffset   float64 // tangent offset of the root fillet along both faces
	endFace      float64 // straight part of the toe end face
	slopeFace    float64 // straight part of the sloped inner face
}

// derive computes the flange geometry against a given web thickness. The
// sloped inner face passes through the thickness reference point and the
// tangent arcs consume r*tan(turn/2) of each adjoining face.
func (f Flange) derive(web float64) flangeGeometry {
	grade := f.Slope / 100
	alpha := math.Atan(grade)
	half := (f.Width - web) / 2

	var g flangeGeometry
	g.angleDeg = alpha * 180 / math.Pi
	g.toeThickness = f.Thickness - grade*half
	g.rootHeight = f.Thickness + grade*half

	turn := math.Pi/2 - alpha
	g.toeOffset = f.ToeRadius * math.Tan(turn/2)
	g.rootOffset = f.RootRadius * math.Tan(turn/2)

	g.endFace = g.toeThickness - g.toeOffset
	g.slopeFace = (f.Width-web)*math.Sqrt(1+grade*grade) - g.toeOffset - g.rootOffset
	return g
}

func (f Flange) validate(side string, web float64) error {
	if f.Width <= web {
		return errorf("UNP %s flange width %g not larger than web thickness %g", side, f.Width, web)
	}
	if f.Thickness <= 0 {
		return errorf("UNP %s flange thickness must be positive, got %g", side, f.Thickness)
	}
	if f.Slope < 0 || f.Slope >= 100 {
		return errorf("UNP %s flange slope must be in [0, 100) percent, got %g", side, f.Slope)
	}
	if f.RootRadius < 0 || f.ToeRadius < 0 || f.OuterRadius < 0 {
		return errorf("UNP %s flange radii must be non-negative", side)
	}
	g := f.derive(web)
	if g.toeThickness <= 0 {
		return errorf("UNP %s flange slope %g%% consumes the toe thickness", side, f.Slope)
	}
	if g.endFace < 0 || g.slopeFace < 0 {
		return errorf("UNP %s flange radii too large for its width", side)
	}
	if f.Width-f.OuterRadius < 0 {
		return errorf("UNP %s flange outer radius %g exceeds its width %g", side, f.OuterRadius, f.Width)
	}
	return nil
}

// Validate derives every straight-segment length analytically and rejects
// any negative one before path construction.
func (p *UNP) Validate() error {
	if p.Height <= 0 {
		return errorf("UNP height must be positive, got %g", p.Height)
	}
	if p.WebThickness <= 0 {
		return errorf("UNP web thickness must be positive, got %g", p.WebThickness)
	}
	if err := p.RefPoint.validate(); err != nil {
		return err
	}
	if err := p.Top.validate("top", p.WebThickness); err != nil {
		return err
	}
	if err := p.Bottom.validate("bottom", p.WebThickness); err != nil {
		return err
	}
	if p.webInner() < 0 {
		return errorf("UNP flanges leave no web between them in height %g", p.Height)
	}
	if p.Height-p.Top.OuterRadius-p.Bottom.OuterRadius < 0 {
		return errorf("UNP back corner radii exceed the height %g", p.Height)
	}
	return nil
}

// webInner is the straight span of the inner web face between the two root
// fillets.
func (p *UNP) webInner() float64 {
	gt := p.Top.derive(p.WebThickness)
	gb := p.Bottom.derive(p.WebThickness)
	return p.Height - gb.rootHeight - gb.rootOffset - gt.rootHeight - gt.rootOffset
}

// Designation implements Profile.
func (p *UNP) Designation() string {
	return p.Name
}

// Polygon traces the channel counter-clockwise from the bottom back corner:
// along the bottom flange to its toe, up and around the toe arc onto the
// sloped inner face, through the root fillet onto the inner web face, then
// the mirrored top flange, and back down the outer web face.
func (p *UNP) Polygon() (geom.Polygon, error) {
	if err := p.Validate(); err != nil {
		return geom.Polygon{}, err
	}
	gb := p.Bottom.derive(p.WebThickness)
	gt := p.Top.derive(p.WebThickness)
	seg := tessellationAngle
	ring, err := geom.NewPath(geom.Vec{X: p.Bottom.OuterRadius}).
		AppendLine(p.Bottom.Width-p.Bottom.OuterRadius, 0).
		AppendLine(gb.endFace, 90).
		AppendArc(90-gb.angleDeg, 90, p.Bottom.ToeRadius, seg).
		AppendLine(gb.slopeFace, 180-gb.angleDeg).
		AppendArc(-(90 - gb.angleDeg), 180-gb.angleDeg, p.Bottom.RootRadius, seg).
		AppendLine(p.webInner(), 90).
		AppendArc(-(90 - gt.angleDeg), 90, p.Top.RootRadius, seg).
		AppendLine(gt.slopeFace, gt.angleDeg).
		AppendArc(90-gt.angleDeg, gt.angleDeg, p.Top.ToeRadius, seg).
		AppendLine(gt.endFace, 90).
		AppendLine(p.Top.Width-p.Top.OuterRadius, 180).
		AppendArc(90, 180, p.Top.OuterRadius, seg).
		AppendLine(p.Height-p.Top.OuterRadius-p.Bottom.OuterRadius, 270).
		AppendArc(90, 270, p.Bottom.OuterRadius, seg).
		GenerateRing(false)
	if err != nil {
		return geom.Polygon{}, err
	}
	width := math.Max(p.Top.Width, p.Bottom.Width)
	return geom.NewPolygon(p.RefPoint.shift(ring, width, p.Height), nil)
}

// corroded applies the open-profile corrosion rules to one flange.
func (f Flange) corroded(c float64) Flange {
	return Flange{
		Width:       f.Width - 2*c,
		Thickness:   f.Thickness - 2*c,
		Slope:       f.Slope,
		RootRadius:  growRadius(f.RootRadius, c),
		ToeRadius:   shrinkRadius(f.ToeRadius, c),
		OuterRadius: shrinkRadius(f.OuterRadius, c),
	}
}

// Corroded implements Profile. Web and flanges are exposed on both faces.
func (p *UNP) Corroded(c Corrosion) (Profile, error) {
	if err := c.validate(false); err != nil {
		return nil, err
	}
	if c.IsZero() {
		return p, nil
	}
	out := &UNP{
		Name:         annotate(p.Name, c),
		Height:       p.Height - 2*c.Outside,
		WebThickness: p.WebThickness - 2*c.Outside,
		Top:          p.Top.corroded(c.Outside),
		Bottom:       p.Bottom.corroded(c.Outside),
		RefPoint:     p.RefPoint,
		Meta:         p.Meta,
	}
	for _, t := range []float64{out.WebThickness, out.Top.Thickness, out.Bottom.Thickness} {
		if t <= minThickness {
			return nil, fmt.Errorf("%s: %w", p.Name, ErrFullyCorroded)
		}
	}
	if err := out.Validate(); err != nil {
		return nil, err
	}
	return out, nil
}
