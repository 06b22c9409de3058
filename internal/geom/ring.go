package geom

import "math"

// Ring is an ordered closed boundary. The edge from the last vertex back to
// the first is implicit; the first vertex is not repeated at the end.
type Ring []Vec

// SignedArea computes the shoelace area: positive for counter-clockwise
// winding, negative for clockwise.
func (r Ring) SignedArea() float64 {
	n := len(r)
	if n < 3 {
		return 0
	}
	var sum float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += r[i].X*r[j].Y - r[j].X*r[i].Y
	}
	return sum / 2
}

// Area is the absolute enclosed area.
func (r Ring) Area() float64 {
	return math.Abs(r.SignedArea())
}

// Perimeter is the total boundary length including the implicit closing edge.
func (r Ring) Perimeter() float64 {
	n := len(r)
	if n < 2 {
		return 0
	}
	var sum float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += math.Hypot(r[j].X-r[i].X, r[j].Y-r[i].Y)
	}
	return sum
}

// Centroid computes the area centroid using the shoelace formula. A
// degenerate ring with zero area yields the origin.
func (r Ring) Centroid() Vec {
	n := len(r)
	if n < 3 {
		return Vec{}
	}
	var signedArea, sumX, sumY float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		cross := r[i].X*r[j].Y - r[j].X*r[i].Y
		signedArea += cross
		sumX += (r[i].X + r[j].X) * cross
		sumY += (r[i].Y + r[j].Y) * cross
	}
	signedArea /= 2
	if signedArea == 0 {
		return Vec{}
	}
	return Vec{X: sumX / (6 * signedArea), Y: sumY / (6 * signedArea)}
}

// Bounds returns the axis-aligned bounding box corners.
func (r Ring) Bounds() (min, max Vec) {
	if len(r) == 0 {
		return Vec{}, Vec{}
	}
	min, max = r[0], r[0]
	for _, v := range r[1:] {
		min.X = math.Min(min.X, v.X)
		max.X = math.Max(max.X, v.X)
		min.Y = math.Min(min.Y, v.Y)
		max.Y = math.Max(max.Y, v.Y)
	}
	return min, max
}

// Reverse returns a copy of the ring with opposite winding.
func (r Ring) Reverse() Ring {
	out := make(Ring, len(r))
	for i, v := range r {
		out[len(r)-1-i] = v
	}
	return out
}

// Translate returns a copy of the ring shifted by d.
func (r Ring) Translate(d Vec) Ring {
	out := make(Ring, len(r))
	for i, v := range r {
		out[i] = Vec{X: v.X + d.X, Y: v.Y + d.Y}
	}
	return out
}

// IsSimple reports whether no two non-adjacent edges of the ring intersect.
func (r Ring) IsSimple() bool {
	n := len(r)
	if n < 3 {
		return false
	}
	for i := 0; i < n; i++ {
		p1, p2 := r[i], r[(i+1)%n]
		for j := i + 1; j < n; j++ {
			// Skip the shared-vertex neighbours, including the
			// first/last edge pair.
			if j == i+1 || (i == 0 && j == n-1) {
				continue
			}
			q1, q2 := r[j], r[(j+1)%n]
			if segmentsIntersect(p1, p2, q1, q2) {
				return false
			}
		}
	}
	return true
}

// Contains reports whether p lies strictly inside the ring, by ray casting
// against every edge.
func (r Ring) Contains(p Vec) bool {
	n := len(r)
	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		vi, vj := r[i], r[j]
		if (vi.Y > p.Y) != (vj.Y > p.Y) &&
			p.X < (vj.X-vi.X)*(p.Y-vi.Y)/(vj.Y-vi.Y)+vi.X {
			inside = !inside
		}
	}
	return inside
}

// ContainsRing reports whether every vertex of o lies inside r.
func (r Ring) ContainsRing(o Ring) bool {
	for _, v := range o {
		if !r.Contains(v) {
			return false
		}
	}
	return true
}

func direction(o, a, b Vec) float64 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}

func onSegment(p, q, r Vec) bool {
	return math.Min(p.X, r.X) <= q.X && q.X <= math.Max(p.X, r.X) &&
		math.Min(p.Y, r.Y) <= q.Y && q.Y <= math.Max(p.Y, r.Y)
}

// segmentsIntersect reports whether segments p1p2 and q1q2 share any point.
func segmentsIntersect(p1, p2, q1, q2 Vec) bool {
	d1 := direction(q1, q2, p1)
	d2 := direction(q1, q2, p2)
	d3 := direction(p1, p2, q1)
	d4 := direction(p1, p2, q2)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}
	switch {
	case d1 == 0 && onSegment(q1, p1, q2):
		return true
	case d2 == 0 && onSegment(q1, p2, q2):
		return true
	case d3 == 0 && onSegment(p1, q1, p2):
		return true
	case d4 == 0 && onSegment(p1, q2, p2):
		return true
	}
	return false
}
