package triangle

import (
	"fmt"
	"math"

	"github.com/axenov/hyperbolic-diffusion/hmath"
)

// flatEps widens the acosh domain guards: a cosh result within rounding
// of 1 only arises from flat configurations (angle sums at π, hypotenuse
// equal to a leg), which never reach the boundary bit-exactly once the
// inputs have passed through trig.
const flatEps = 1e-12

// Pythagoras solves the hyperbolic right-triangle relation
//
//	cosh(h) = cosh(x)·cosh(y)
//
// between the two legs x, y and the hypotenuse h. Exactly one blank is
// filled when the other two values are known; any other combination is
// returned unchanged. Only meaningful once a right angle is established
// by the caller.
func Pythagoras(x, y, h float64) (float64, float64, float64, error) {
	switch {
	case known(x) && known(y) && !known(h):
		h = hmath.Acosh(math.Cosh(x) * math.Cosh(y))
	case known(x) && known(h) && !known(y):
		q := math.Cosh(h) / math.Cosh(x)
		if q <= 1+flatEps {
			return x, y, h, fmt.Errorf("%w: hypotenuse shorter than leg", ErrInvalidTriangle)
		}
		y = hmath.Acosh(q)
	case known(y) && known(h) && !known(x):
		q := math.Cosh(h) / math.Cosh(y)
		if q <= 1+flatEps {
			return x, y, h, fmt.Errorf("%w: hypotenuse shorter than leg", ErrInvalidTriangle)
		}
		x = hmath.Acosh(q)
	}
	return x, y, h, nil
}

// SineRule propagates the hyperbolic sine rule
//
//	sinh(a)/sin(A) = sinh(b)/sin(B) = sinh(c)/sin(C)
//
// across the tuple. One fully known angle/side pair establishes the
// ratio; every other pair with exactly one known member is then filled.
// Without a complete pair the tuple is returned unchanged.
//
// Deriving an angle requires the ratio sinh(side)/k to lie strictly
// inside (−1, 1) before taking the arcsine; out-of-range measurements
// fail with ErrInvalidTriangle.
func SineRule(t Triangle) (Triangle, error) {
	var k float64
	for _, v := range [3]Vertex{VertexA, VertexB, VertexC} {
		if known(t.angle(v)) && known(t.side(v)) {
			k = math.Sinh(t.side(v)) / math.Sin(t.angle(v))
			break
		}
	}
	if k == 0 {
		return t, nil
	}

	var err error
	for _, v := range [3]Vertex{VertexA, VertexB, VertexC} {
		angle, side := t.angle(v), t.side(v)
		switch {
		case known(angle) && !known(side):
			t = t.setSide(v, hmath.Asinh(k*math.Sin(angle)))
		case known(side) && !known(angle):
			ratio := math.Sinh(side) / k
			if ratio <= -1 || ratio >= 1 {
				err = fmt.Errorf("%w: sine rule ratio %v outside (-1,1)", ErrInvalidTriangle, ratio)
				return t, err
			}
			t = t.setAngle(v, math.Asin(ratio))
		}
	}
	return t, nil
}

// CosineRuleI applies the first hyperbolic law of cosines at vertex v:
//
//	cosh(a) = cosh(b)·cosh(c) − sinh(b)·sinh(c)·cos(A)
//
// (a opposite A; b, c the adjacent sides). It solves the angle from
// three known sides, or the opposite side from the angle plus both
// adjacent sides. Anything else is a no-op.
func CosineRuleI(t Triangle, v Vertex) (Triangle, error) {
	p, q := others(v)
	opp, adj1, adj2 := t.side(v), t.side(p), t.side(q)
	angle := t.angle(v)

	switch {
	case known(adj1) && known(adj2) && known(opp) && !known(angle):
		cos := (math.Cosh(adj1)*math.Cosh(adj2) - math.Cosh(opp)) /
			(math.Sinh(adj1) * math.Sinh(adj2))
		if cos <= -1 || cos >= 1 {
			return t, fmt.Errorf("%w: cosine rule cos %v outside (-1,1)", ErrInvalidTriangle, cos)
		}
		t = t.setAngle(v, math.Acos(cos))
	case known(adj1) && known(adj2) && known(angle) && !known(opp):
		ch := math.Cosh(adj1)*math.Cosh(adj2) - math.Sinh(adj1)*math.Sinh(adj2)*math.Cos(angle)
		if ch <= 1+flatEps {
			return t, fmt.Errorf("%w: cosine rule cosh %v below 1", ErrInvalidTriangle, ch)
		}
		t = t.setSide(v, hmath.Acosh(ch))
	}
	return t, nil
}

// CosineRuleII applies the second (dual) hyperbolic law of cosines at
// vertex v:
//
//	cos(A) = −cos(B)·cos(C) + sin(B)·sin(C)·cosh(a)
//
// It solves the angle from its opposite side plus the other two angles,
// or the side from all three angles — the angle-angle-angle case that
// only exists in hyperbolic geometry. Anything else is a no-op.
func CosineRuleII(t Triangle, v Vertex) (Triangle, error) {
	p, q := others(v)
	angle, other1, other2 := t.angle(v), t.angle(p), t.angle(q)
	opp := t.side(v)

	switch {
	case known(other1) && known(other2) && known(opp) && !known(angle):
		cos := -math.Cos(other1)*math.Cos(other2) +
			math.Sin(other1)*math.Sin(other2)*math.Cosh(opp)
		if cos <= -1 || cos >= 1 {
			return t, fmt.Errorf("%w: dual cosine rule cos %v outside (-1,1)", ErrInvalidTriangle, cos)
		}
		t = t.setAngle(v, math.Acos(cos))
	case known(angle) && known(other1) && known(other2) && !known(opp):
		s1, s2 := math.Sin(other1), math.Sin(other2)
		if s1 == 0 || s2 == 0 {
			return t, fmt.Errorf("%w: dual cosine rule needs nonzero sines", ErrInvalidTriangle)
		}
		ch := (math.Cos(angle) + math.Cos(other1)*math.Cos(other2)) / (s1 * s2)
		if ch <= 1+flatEps {
			return t, fmt.Errorf("%w: dual cosine rule cosh %v below 1", ErrInvalidTriangle, ch)
		}
		t = t.setSide(v, hmath.Acosh(ch))
	}
	return t, nil
}

// MaxAngleSide resolves the two-sides-only collapse: with only sides b
// and c known and every angle undetermined, the closure makes the third
// side the longest one and places the angle opposite it at
//
//	cos(A) = tanh(b/2)·tanh(c/2)
//
// and the opposite side follows from the half-angle identity
//
//	sinh²(a/2) = sinh²(b/2) + sinh²(c/2).
//
// Returns the resolved angle and side.
func MaxAngleSide(b, c float64) (angle, side float64, err error) {
	p := math.Tanh(b/2) * math.Tanh(c/2)
	if p <= -1 || p >= 1 {
		return 0, 0, fmt.Errorf("%w: tanh product %v outside (-1,1)", ErrInvalidTriangle, p)
	}
	angle = math.Acos(p)
	side = 2 * hmath.Asinh(math.Hypot(math.Sinh(b/2), math.Sinh(c/2)))
	return angle, side, nil
}
