// Package triangle defines the measurement tuple and sentinel errors
// for hyperbolic triangle completion.
package triangle

import "errors"

// Sentinel errors for triangle completion.
var (
	// ErrInsufficientData indicates fewer than two known measurements, or
	// a configuration the rule sequence cannot close.
	ErrInsufficientData = errors.New("triangle: insufficient data to complete measurements")
	// ErrTooManyInputs indicates more than three known measurements.
	ErrTooManyInputs = errors.New("triangle: more than three known measurements")
	// ErrInvalidTriangle indicates measurements that cannot form a valid
	// hyperbolic triangle, or a law solver's domain guard triggered.
	ErrInvalidTriangle = errors.New("triangle: measurements do not form a valid hyperbolic triangle")
)

// Vertex selects one corner of the triangle for the per-vertex solvers.
type Vertex int

const (
	// VertexA is the corner with angle A, opposite side a.
	VertexA Vertex = iota
	// VertexB is the corner with angle B, opposite side b.
	VertexB
	// VertexC is the corner with angle C, opposite side c.
	VertexC
)

// Triangle is the six-slot measurement set of a hyperbolic triangle:
// angles A, B, C in radians, sides SideA, SideB, SideC in hyperbolic
// length, each side opposite its angle. Zero is the sentinel for
// "unknown" — valid triangles have strictly positive angles and sides,
// so the sentinel never collides with a legal measurement.
//
// Triangle is a value type: no solver mutates its input; every solver
// returns a fresh tuple.
type Triangle struct {
	A, B, C             float64 // angles, radians, domain (0, π)
	SideA, SideB, SideC float64 // sides, hyperbolic length, domain (0, ∞)
}

// known reports whether a measurement slot is populated.
func known(x float64) bool { return x != 0 }

// knownCount returns how many of the six slots are populated.
func (t Triangle) knownCount() int {
	n := 0
	for _, v := range [6]float64{t.A, t.B, t.C, t.SideA, t.SideB, t.SideC} {
		if known(v) {
			n++
		}
	}
	return n
}

// complete reports whether all six slots are populated.
func (t Triangle) complete() bool {
	return t.knownCount() == 6
}

// angle returns the angle slot at vertex v.
func (t Triangle) angle(v Vertex) float64 {
	switch v {
	case VertexA:
		return t.A
	case VertexB:
		return t.B
	default:
		return t.C
	}
}

// side returns the side slot opposite vertex v.
func (t Triangle) side(v Vertex) float64 {
	switch v {
	case VertexA:
		return t.SideA
	case VertexB:
		return t.SideB
	default:
		return t.SideC
	}
}

// setAngle returns a copy of t with the angle at v replaced.
func (t Triangle) setAngle(v Vertex, a float64) Triangle {
	switch v {
	case VertexA:
		t.A = a
	case VertexB:
		t.B = a
	default:
		t.C = a
	}
	return t
}

// setSide returns a copy of t with the side opposite v replaced.
func (t Triangle) setSide(v Vertex, s float64) Triangle {
	switch v {
	case VertexA:
		t.SideA = s
	case VertexB:
		t.SideB = s
	default:
		t.SideC = s
	}
	return t
}

// others returns the two vertices that are not v, in A→B→C order.
func others(v Vertex) (Vertex, Vertex) {
	switch v {
	case VertexA:
		return VertexB, VertexC
	case VertexB:
		return VertexA, VertexC
	default:
		return VertexA, VertexB
	}
}
