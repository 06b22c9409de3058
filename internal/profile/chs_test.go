package profile

import (
	"errors"
	"math"
	"testing"
)

func TestNewCHSDerivesName(t *testing.T) {
	p, err := NewCHS("", 60.3, 3.2)
	if err != nil {
		t.Fatalf("NewCHS: %v", err)
	}
	if got, want := p.Designation(), "CHS 60.3x3.2"; got != want {
		t.Errorf("designation = %q, want %q", got, want)
	}
	if got, want := p.InnerDiameter(), 60.3-2*3.2; math.Abs(got-want) > 1e-12 {
		t.Errorf("inner diameter = %g, want %g", got, want)
	}
}

func TestNewCHSRejectsInfeasible(t *testing.T) {
	cases := []struct {
		name string
		d, t float64
	}{
		{"zero diameter", 0, 3},
		{"zero wall", 60, 0},
		{"negative wall", 60, -1},
		{"solid bar", 60, 30},
	}
	for _, tc := range cases {
		if _, err := NewCHS("", tc.d, tc.t); err == nil {
			t.Errorf("%s: NewCHS(%g, %g) accepted", tc.name, tc.d, tc.t)
		}
	}
}

func TestCHSPolygonArea(t *testing.T) {
	p, err := NewCHS("", 60.3, 3.2)
	if err != nil {
		t.Fatalf("NewCHS: %v", err)
	}
	pg, err := p.Polygon()
	if err != nil {
		t.Fatalf("Polygon: %v", err)
	}
	props := pg.Properties()
	ro, ri := 60.3/2, 60.3/2-3.2
	want := math.Pi * (ro*ro - ri*ri)
	if math.Abs(props.Area-want)/want > 0.01 {
		t.Errorf("area = %g, want about %g", props.Area, want)
	}
	if math.Abs(props.CentroidX) > 1e-9 || math.Abs(props.CentroidY) > 1e-9 {
		t.Errorf("centroid = (%g, %g), want origin", props.CentroidX, props.CentroidY)
	}
	if math.Abs(props.Width-60.3)/60.3 > 0.01 {
		t.Errorf("width = %g, want about 60.3", props.Width)
	}
}

func TestCHSCorroded(t *testing.T) {
	p, err := NewCHS("", 100, 5)
	if err != nil {
		t.Fatalf("NewCHS: %v", err)
	}
	out, err := p.Corroded(Corrosion{Outside: 1, Inside: 0.5})
	if err != nil {
		t.Fatalf("Corroded: %v", err)
	}
	c := out.(*CHS)
	if got, want := c.OuterDiameter, 98.0; math.Abs(got-want) > 1e-12 {
		t.Errorf("outer diameter = %g, want %g", got, want)
	}
	if got, want := c.WallThickness, 3.5; math.Abs(got-want) > 1e-12 {
		t.Errorf("wall thickness = %g, want %g", got, want)
	}
	// The cavity grows by twice the inside loss.
	if got, want := c.InnerDiameter(), p.InnerDiameter()+2*0.5; math.Abs(got-want) > 1e-12 {
		t.Errorf("inner diameter = %g, want %g", got, want)
	}
	if got, want := c.Designation(), "CHS 100x5 (corroded out 1, in 0.5)"; got != want {
		t.Errorf("designation = %q, want %q", got, want)
	}
}

func TestCHSFullyCorroded(t *testing.T) {
	p, err := NewCHS("", 100, 5)
	if err != nil {
		t.Fatalf("NewCHS: %v", err)
	}
	if _, err := p.Corroded(Corrosion{Outside: 3, Inside: 2}); !errors.Is(err, ErrFullyCorroded) {
		t.Errorf("Corroded error = %v, want ErrFullyCorroded", err)
	}
}
