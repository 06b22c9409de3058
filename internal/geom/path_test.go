package geom

import (
	"errors"
	"math"
	"testing"
)

func TestAppendArcFullCircleCloses(t *testing.T) {
	cases := []struct {
		radius, maxSeg float64
	}{
		{1, 5},
		{0.5, 1},
		{250, 15},
		{1000, 360},
		{3, 0.25},
	}
	for _, tc := range cases {
		pb := NewPath(Vec{X: tc.radius}).AppendArc(360, 90, tc.radius, tc.maxSeg)
		if err := pb.Err(); err != nil {
			t.Fatalf("radius %g maxSeg %g: %v", tc.radius, tc.maxSeg, err)
		}
		pts := pb.Vertices()
		last := pts[len(pts)-1]
		if math.Abs(last.X-tc.radius) > 1e-9 || math.Abs(last.Y) > 1e-9 {
			t.Errorf("radius %g maxSeg %g: 360 degree arc ends at (%g, %g), want (%g, 0)",
				tc.radius, tc.maxSeg, last.X, last.Y, tc.radius)
		}
	}
}

func TestAppendArcSegmentCount(t *testing.T) {
	pb := NewPath(Vec{X: 1}).AppendArc(90, 90, 1, 20)
	// ceil(90/20) = 5 chords plus the start point.
	if got := len(pb.Vertices()); got != 6 {
		t.Errorf("expected 6 points, got %d", got)
	}
	// A sweep below the limit still produces one chord.
	pb = NewPath(Vec{X: 1}).AppendArc(3, 90, 1, 20)
	if got := len(pb.Vertices()); got != 2 {
		t.Errorf("expected 2 points, got %d", got)
	}
}

func TestAppendArcNoop(t *testing.T) {
	start := Vec{X: 2, Y: 3}
	pb := NewPath(start).AppendArc(0, 45, 10, 5)
	if got := len(pb.Vertices()); got != 1 {
		t.Errorf("zero sweep: expected unchanged point list, got %d points", got)
	}
	pb = NewPath(start).AppendArc(90, 45, 0, 5)
	if got := len(pb.Vertices()); got != 1 {
		t.Errorf("zero radius: expected unchanged point list, got %d points", got)
	}
	if pb.Err() != nil {
		t.Errorf("no-op arc should not record an error: %v", pb.Err())
	}
}

func TestAppendArcErrors(t *testing.T) {
	pb := NewPath(Vec{}).AppendArc(90, 0, -1, 5)
	if !errors.Is(pb.Err(), ErrNegativeValue) {
		t.Errorf("negative radius: got %v, want ErrNegativeValue", pb.Err())
	}
	pb = NewPath(Vec{}).AppendArc(90, 0, 1, 0)
	if !errors.Is(pb.Err(), ErrNonPositiveValue) {
		t.Errorf("zero max segment angle: got %v, want ErrNonPositiveValue", pb.Err())
	}
	pb = NewPath(Vec{}).AppendArc(90, 0, 1, -2)
	if !errors.Is(pb.Err(), ErrNonPositiveValue) {
		t.Errorf("negative max segment angle: got %v, want ErrNonPositiveValue", pb.Err())
	}
	// The recorded error surfaces from GenerateRing.
	if _, err := pb.AppendLine(1, 0).GenerateRing(false); !errors.Is(err, ErrNonPositiveValue) {
		t.Errorf("GenerateRing should return the recorded error, got %v", err)
	}
}

func TestAppendArcClockwiseCenter(t *testing.T) {
	// A -90 degree arc from the origin heading east must curve down-right
	// around a center at (0, -1).
	pb := NewPath(Vec{}).AppendArc(-90, 0, 1, 90)
	pts := pb.Vertices()
	last := pts[len(pts)-1]
	if math.Abs(last.X-1) > 1e-12 || math.Abs(last.Y+1) > 1e-12 {
		t.Errorf("clockwise quarter arc ends at (%g, %g), want (1, -1)", last.X, last.Y)
	}
}

func TestUnitSquareProperties(t *testing.T) {
	ring, err := NewPath(Vec{}).
		AppendLine(1, 0).
		AppendLine(1, 90).
		AppendLine(1, 180).
		AppendLine(1, 270).
		GenerateRing(true)
	if err != nil {
		t.Fatal(err)
	}
	if got := ring.Area(); math.Abs(got-1) > 1e-12 {
		t.Errorf("area = %g, want 1", got)
	}
	if got := ring.Perimeter(); math.Abs(got-4) > 1e-12 {
		t.Errorf("perimeter = %g, want 4", got)
	}
	c := ring.Centroid()
	if math.Abs(c.X) > 1e-12 || math.Abs(c.Y) > 1e-12 {
		t.Errorf("centroid = (%g, %g), want origin", c.X, c.Y)
	}
}

func TestGenerateRingImplicitClosure(t *testing.T) {
	// Three sides of a triangle; the closing edge is implicit.
	ring, err := NewPath(Vec{}).
		AppendLine(2, 0).
		AppendLine(2, 120).
		GenerateRing(false)
	if err != nil {
		t.Fatal(err)
	}
	if len(ring) != 3 {
		t.Fatalf("expected 3 vertices, got %d", len(ring))
	}
	want := 2 * 2 * math.Sin(math.Pi/3) / 2 // equilateral, side 2
	if got := ring.Area(); math.Abs(got-want) > 1e-12 {
		t.Errorf("area = %g, want %g", got, want)
	}
}

func TestGenerateRingTooFewPoints(t *testing.T) {
	if _, err := NewPath(Vec{}).AppendLine(1, 0).GenerateRing(false); !errors.Is(err, ErrTooFewPoints) {
		t.Errorf("got %v, want ErrTooFewPoints", err)
	}
}

func TestGenerateRingRejectsSelfIntersection(t *testing.T) {
	// A bow tie: (0,0) -> (1,1) -> (1,0) -> (0,1).
	pb := NewPath(Vec{}).
		AppendLine(math.Sqrt2, 45).
		AppendLine(1, 270).
		AppendLine(math.Sqrt2, 135)
	if _, err := pb.GenerateRing(false); !errors.Is(err, ErrNotSimple) {
		t.Errorf("got %v, want ErrNotSimple", err)
	}
}

func TestAppendAfterFinalize(t *testing.T) {
	pb := NewPath(Vec{}).AppendLine(1, 0).AppendLine(1, 90)
	if _, err := pb.GenerateRing(false); err != nil {
		t.Fatal(err)
	}
	pb.AppendLine(1, 180)
	if !errors.Is(pb.Err(), ErrFinalized) {
		t.Errorf("append after finalize: got %v, want ErrFinalized", pb.Err())
	}
}

func TestNegativeLineLengthReverses(t *testing.T) {
	pb := NewPath(Vec{}).AppendLine(-2, 0)
	pts := pb.Vertices()
	if math.Abs(pts[1].X+2) > 1e-12 || math.Abs(pts[1].Y) > 1e-12 {
		t.Errorf("got (%g, %g), want (-2, 0)", pts[1].X, pts[1].Y)
	}
}
