package profile

import (
	"strconv"
	"strings"
)

// Corrosion is a uniform material-loss specification in mm per exposed
// surface. Open (single-plate) families corrode from both faces with the
// Outside value and must leave Inside zero; hollow families distinguish the
// outer envelope from the enclosed cavity.
type Corrosion struct {
	Outside float64
	Inside  float64
}

// Uniform is a corrosion spec acting equally on every exposed surface of an
// open profile.
func Uniform(c float64) Corrosion {
	return Corrosion{Outside: c}
}

// IsZero reports a true no-op corrosion.
func (c Corrosion) IsZero() bool {
	return c.Outside == 0 && c.Inside == 0
}

func (c Corrosion) validate(hollow bool) error {
	if c.Outside < 0 || c.Inside < 0 {
		return errorf("corrosion must be non-negative, got outside %g inside %g", c.Outside, c.Inside)
	}
	if !hollow && c.Inside != 0 {
		return errorf("inside corrosion %g on a profile without an enclosed cavity", c.Inside)
	}
	return nil
}

// shrinkRadius reduces a convex (toe or outer corner) radius. A fully
// corroded rounded corner becomes sharp, never negative.
func shrinkRadius(r, c float64) float64 {
	if r <= c {
		return 0
	}
	return r - c
}

// growRadius enlarges a concave (root or fillet) radius: material receding
// from a concave corner exposes more curvature.
func growRadius(r, c float64) float64 {
	return r + c
}

const annotationMark = " (corroded "

// annotate records the total accumulated corrosion in a designation. A prior
// annotation is parsed, summed with the new increment and re-serialized, so
// repeated transforms stay equivalent to one combined transform.
func annotate(name string, c Corrosion) string {
	base, prev := parseAnnotation(name)
	total := Corrosion{Outside: prev.Outside + c.Outside, Inside: prev.Inside + c.Inside}
	var b strings.Builder
	b.WriteString(base)
	b.WriteString(annotationMark)
	if total.Inside == 0 {
		b.WriteString(formatMM(total.Outside))
	} else {
		b.WriteString("out ")
		b.WriteString(formatMM(total.Outside))
		b.WriteString(", in ")
		b.WriteString(formatMM(total.Inside))
	}
	b.WriteString(")")
	return b.String()
}

// parseAnnotation splits a designation into its base name and any previously
// recorded corrosion.
func parseAnnotation(name string) (string, Corrosion) {
	i := strings.LastIndex(name, annotationMark)
	if i < 0 || !strings.HasSuffix(name, ")") {
		return name, Corrosion{}
	}
	body := name[i+len(annotationMark) : len(name)-1]
	if out, ok := strings.CutPrefix(body, "out "); ok {
		outPart, inPart, found := strings.Cut(out, ", in ")
		if !found {
			return name, Corrosion{}
		}
		co, err1 := strconv.ParseFloat(outPart, 64)
		ci, err2 := strconv.ParseFloat(inPart, 64)
		if err1 != nil || err2 != nil {
			return name, Corrosion{}
		}
		return name[:i], Corrosion{Outside: co, Inside: ci}
	}
	co, err := strconv.ParseFloat(body, 64)
	if err != nil {
		return name, Corrosion{}
	}
	return name[:i], Corrosion{Outside: co}
}

// formatMM renders a millimetre value with the shortest exact representation.
func formatMM(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
