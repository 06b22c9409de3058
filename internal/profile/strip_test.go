package profile

import (
	"errors"
	"math"
	"testing"
)

func TestStripPolygon(t *testing.T) {
	p, err := NewStrip("", 100, 10)
	if err != nil {
		t.Fatalf("NewStrip: %v", err)
	}
	if got, want := p.Designation(), "FL 100x10"; got != want {
		t.Errorf("designation = %q, want %q", got, want)
	}
	pg, err := p.Polygon()
	if err != nil {
		t.Fatalf("Polygon: %v", err)
	}
	props := pg.Properties()
	if math.Abs(props.Area-1000) > 1e-9 {
		t.Errorf("area = %g, want 1000", props.Area)
	}
	if math.Abs(props.Perimeter-220) > 1e-9 {
		t.Errorf("perimeter = %g, want 220", props.Perimeter)
	}
	if math.Abs(props.CentroidX-50) > 1e-9 || math.Abs(props.CentroidY-5) > 1e-9 {
		t.Errorf("centroid = (%g, %g), want (50, 5)", props.CentroidX, props.CentroidY)
	}
}

func TestStripCorroded(t *testing.T) {
	p, err := NewStrip("", 100, 10)
	if err != nil {
		t.Fatalf("NewStrip: %v", err)
	}
	out, err := p.Corroded(Uniform(2))
	if err != nil {
		t.Fatalf("Corroded: %v", err)
	}
	s := out.(*Strip)
	if s.Width != 96 || s.Thickness != 6 {
		t.Errorf("dimensions = %gx%g, want 96x6", s.Width, s.Thickness)
	}
	if got, want := s.Designation(), "FL 100x10 (corroded 2)"; got != want {
		t.Errorf("designation = %q, want %q", got, want)
	}
	if _, err := p.Corroded(Uniform(5)); !errors.Is(err, ErrFullyCorroded) {
		t.Errorf("Corroded error = %v, want ErrFullyCorroded", err)
	}
}
