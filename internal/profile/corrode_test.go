package profile

import (
	"math"
	"testing"
)

func TestCorrosionZeroReturnsSameInstance(t *testing.T) {
	p, err := NewCHS("", 100, 5)
	if err != nil {
		t.Fatalf("NewCHS: %v", err)
	}
	out, err := p.Corroded(Corrosion{})
	if err != nil {
		t.Fatalf("Corroded: %v", err)
	}
	if out != Profile(p) {
		t.Error("zero corrosion returned a new instance")
	}
}

func TestCorrosionRejectsNegative(t *testing.T) {
	p, err := NewStrip("", 100, 10)
	if err != nil {
		t.Fatalf("NewStrip: %v", err)
	}
	if _, err := p.Corroded(Corrosion{Outside: -1}); err == nil {
		t.Error("negative corrosion accepted")
	}
}

func TestCorrosionRejectsInsideOnOpenProfile(t *testing.T) {
	p, err := NewStrip("", 100, 10)
	if err != nil {
		t.Fatalf("NewStrip: %v", err)
	}
	if _, err := p.Corroded(Corrosion{Outside: 1, Inside: 1}); err == nil {
		t.Error("inside corrosion accepted on a profile without a cavity")
	}
}

// Applying corrosion in two steps must be equivalent to one combined step,
// in dimensions and in the recorded designation.
func TestCorrosionAdditivity(t *testing.T) {
	p, err := NewCHS("", 100, 8)
	if err != nil {
		t.Fatalf("NewCHS: %v", err)
	}
	step1, err := p.Corroded(Corrosion{Outside: 0.5, Inside: 0.25})
	if err != nil {
		t.Fatalf("first step: %v", err)
	}
	step2, err := step1.Corroded(Corrosion{Outside: 1, Inside: 0.75})
	if err != nil {
		t.Fatalf("second step: %v", err)
	}
	combined, err := p.Corroded(Corrosion{Outside: 1.5, Inside: 1})
	if err != nil {
		t.Fatalf("combined: %v", err)
	}
	a, b := step2.(*CHS), combined.(*CHS)
	if math.Abs(a.OuterDiameter-b.OuterDiameter) > 1e-9 {
		t.Errorf("outer diameter %g != %g", a.OuterDiameter, b.OuterDiameter)
	}
	if math.Abs(a.WallThickness-b.WallThickness) > 1e-9 {
		t.Errorf("wall thickness %g != %g", a.WallThickness, b.WallThickness)
	}
	if a.Designation() != b.Designation() {
		t.Errorf("designation %q != %q", a.Designation(), b.Designation())
	}
}

func TestCorrosionAdditivityAcrossFamilies(t *testing.T) {
	must := func(p Profile, err error) Profile {
		t.Helper()
		if err != nil {
			t.Fatalf("construct: %v", err)
		}
		return p
	}
	mustCHS := must(NewCHS("", 100, 8))
	mustRHS := must(NewRHS("", 100, 200, 8, 16))
	mustSector := must(NewAnnulusSector("", 50, 8, 0, 120))
	mustLNP := must(NewLNP("", 80, 80, 8, 10, 5))
	mustUNP := must(NewUNP("", 200, 8.5, Flange{Width: 75, Thickness: 11.5, Slope: 8, RootRadius: 11.5, ToeRadius: 6}))
	mustStrip := must(NewStrip("", 100, 10))

	cases := []struct {
		p    Profile
		a, b Corrosion
	}{
		{mustCHS, Corrosion{Outside: 0.5, Inside: 0.25}, Corrosion{Outside: 1, Inside: 0.5}},
		{mustRHS, Corrosion{Outside: 0.5, Inside: 0.25}, Corrosion{Outside: 1, Inside: 0.5}},
		{mustSector, Corrosion{Outside: 0.5, Inside: 0.25}, Corrosion{Outside: 1, Inside: 0.5}},
		{mustLNP, Uniform(0.5), Uniform(1)},
		{mustUNP, Uniform(0.5), Uniform(1)},
		{mustStrip, Uniform(0.5), Uniform(1)},
	}
	for _, tc := range cases {
		step1, err := tc.p.Corroded(tc.a)
		if err != nil {
			t.Fatalf("%s: first step: %v", tc.p.Designation(), err)
		}
		step2, err := step1.Corroded(tc.b)
		if err != nil {
			t.Fatalf("%s: second step: %v", tc.p.Designation(), err)
		}
		sum := Corrosion{Outside: tc.a.Outside + tc.b.Outside, Inside: tc.a.Inside + tc.b.Inside}
		combined, err := tc.p.Corroded(sum)
		if err != nil {
			t.Fatalf("%s: combined: %v", tc.p.Designation(), err)
		}
		if step2.Designation() != combined.Designation() {
			t.Errorf("%s: designation %q != %q", tc.p.Designation(), step2.Designation(), combined.Designation())
		}
		pg1, err := step2.Polygon()
		if err != nil {
			t.Fatalf("%s: stepped polygon: %v", tc.p.Designation(), err)
		}
		pg2, err := combined.Polygon()
		if err != nil {
			t.Fatalf("%s: combined polygon: %v", tc.p.Designation(), err)
		}
		a1, a2 := pg1.Properties().Area, pg2.Properties().Area
		if math.Abs(a1-a2) > 1e-9 {
			t.Errorf("%s: stepped area %g != combined area %g", tc.p.Designation(), a1, a2)
		}
	}
}

func TestAnnotateAccumulates(t *testing.T) {
	name := annotate("UNP 200", Uniform(1))
	if want := "UNP 200 (corroded 1)"; name != want {
		t.Fatalf("annotate = %q, want %q", name, want)
	}
	name = annotate(name, Uniform(0.5))
	if want := "UNP 200 (corroded 1.5)"; name != want {
		t.Errorf("annotate = %q, want %q", name, want)
	}
}

func TestParseAnnotation(t *testing.T) {
	cases := []struct {
		in   string
		base string
		c    Corrosion
	}{
		{"CHS 100x5", "CHS 100x5", Corrosion{}},
		{"CHS 100x5 (corroded 2)", "CHS 100x5", Corrosion{Outside: 2}},
		{"CHS 100x5 (corroded out 1, in 0.5)", "CHS 100x5", Corrosion{Outside: 1, Inside: 0.5}},
		{"weird (corroded garbage)", "weird (corroded garbage)", Corrosion{}},
	}
	for _, tc := range cases {
		base, c := parseAnnotation(tc.in)
		if base != tc.base || c != tc.c {
			t.Errorf("parseAnnotation(%q) = %q, %+v, want %q, %+v", tc.in, base, c, tc.base, tc.c)
		}
	}
}

func TestRadiusTransforms(t *testing.T) {
	if got := shrinkRadius(5, 2); got != 3 {
		t.Errorf("shrinkRadius(5, 2) = %g, want 3", got)
	}
	if got := shrinkRadius(1, 2); got != 0 {
		t.Errorf("shrinkRadius(1, 2) = %g, want 0", got)
	}
	if got := growRadius(5, 2); got != 7 {
		t.Errorf("growRadius(5, 2) = %g, want 7", got)
	}
}
