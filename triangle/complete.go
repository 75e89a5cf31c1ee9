package triangle

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// rightAngleEps is the tolerance for recognizing a right angle; inputs
// arrive through degree conversion, so π/2 is rarely hit bit-exactly.
const rightAngleEps = 1e-12

// rule is one named transition of the completion sequence: a pure
// function from one measurement set to the next. Rules that do not
// apply return their input unchanged.
type rule struct {
	name  string
	apply func(Triangle) (Triangle, error)
}

// Complete drives the law solvers over t in the fixed documented order
// until all six slots are populated.
//
// Sequence:
//  1. Sine rule — propagate anything an existing pair derives.
//  2. Pythagoras — if a right angle is known, relate its opposite side
//     (the hypotenuse) to the two legs.
//  3. Exactly one cosine pattern, first match wins:
//     (A,c,B)→II, (A,b,C)→II, (B,a,C)→II, (C,a,b)→I, (A,b,c)→I, (B,a,c)→I.
//  4. All three sides known ⇒ derive every missing angle via rule I.
//  5. Sine rule again.
//  6. Angle-angle-angle input ⇒ derive all three sides via rule II.
//  7. Two sides known, everything else blank ⇒ MaxAngleSide.
//  8. Final sine-rule pass.
//
// The input is validated first (see Validate). If the sequence ends
// with slots still blank, Complete fails with ErrInsufficientData; any
// solver domain-guard failure aborts with ErrInvalidTriangle.
func Complete(t Triangle) (Triangle, error) {
	if err := Validate(t); err != nil {
		return t, err
	}

	// The pure-angles rule only fires for an AAA input, judged on the
	// original known-mask, not on slots filled along the way.
	aaa := known(t.A) && known(t.B) && known(t.C) &&
		!known(t.SideA) && !known(t.SideB) && !known(t.SideC)

	steps := []rule{
		{"sine-propagate", SineRule},
		{"pythagoras", applyPythagoras},
		{"cosine-pattern", applyCosinePattern},
		{"sides-to-angles", applySidesToAngles},
		{"sine-close", SineRule},
		{"angles-to-sides", guarded(aaa, applyAnglesToSides)},
		{"two-side-collapse", applyMaxAngleSide},
		{"sine-final", SineRule},
	}
	var err error
	for _, step := range steps {
		if t, err = step.apply(t); err != nil {
			return t, err
		}
	}

	if !t.complete() {
		return t, ErrInsufficientData
	}
	return t, nil
}

// guarded wraps a rule body so it only fires when cond held at entry.
func guarded(cond bool, apply func(Triangle) (Triangle, error)) func(Triangle) (Triangle, error) {
	return func(t Triangle) (Triangle, error) {
		if !cond {
			return t, nil
		}
		return apply(t)
	}
}

// applyPythagoras fills the third side of a right triangle. The side
// opposite the right angle is the hypotenuse; the two others are legs.
func applyPythagoras(t Triangle) (Triangle, error) {
	for _, v := range [3]Vertex{VertexA, VertexB, VertexC} {
		if !scalar.EqualWithinAbs(t.angle(v), math.Pi/2, rightAngleEps) {
			continue
		}
		p, q := others(v)
		x, y, h, err := Pythagoras(t.side(p), t.side(q), t.side(v))
		if err != nil {
			return t, err
		}
		return t.setSide(p, x).setSide(q, y).setSide(v, h), nil
	}
	return t, nil
}

// applyCosinePattern selects the single highest-priority
// two-angle-one-side or one-angle-two-side pattern and applies the
// matching law of cosines. Only the first satisfied pattern fires.
func applyCosinePattern(t Triangle) (Triangle, error) {
	type pattern struct {
		match  [3]float64
		second bool   // second (dual) form instead of the first
		target Vertex // vertex the rule solves at
	}
	patterns := []pattern{
		{[3]float64{t.A, t.SideC, t.B}, true, VertexC},
		{[3]float64{t.A, t.SideB, t.C}, true, VertexB},
		{[3]float64{t.B, t.SideA, t.C}, true, VertexA},
		{[3]float64{t.C, t.SideA, t.SideB}, false, VertexC},
		{[3]float64{t.A, t.SideB, t.SideC}, false, VertexA},
		{[3]float64{t.B, t.SideA, t.SideC}, false, VertexB},
	}
	for _, p := range patterns {
		if !known(p.match[0]) || !known(p.match[1]) || !known(p.match[2]) {
			continue
		}
		if p.second {
			return CosineRuleII(t, p.target)
		}
		return CosineRuleI(t, p.target)
	}
	return t, nil
}

// applySidesToAngles derives every missing angle once all three sides
// are known, keeping the tuple consistent even when the cosine pattern
// produced only a subset.
func applySidesToAngles(t Triangle) (Triangle, error) {
	if !known(t.SideA) || !known(t.SideB) || !known(t.SideC) {
		return t, nil
	}
	var err error
	for _, v := range [3]Vertex{VertexA, VertexB, VertexC} {
		if t, err = CosineRuleI(t, v); err != nil {
			return t, err
		}
	}
	return t, nil
}

// applyAnglesToSides derives all three sides from pure angle data via
// the dual cosine rule — valid only in hyperbolic geometry, where
// angle-angle-angle determines the triangle.
func applyAnglesToSides(t Triangle) (Triangle, error) {
	var err error
	for _, v := range [3]Vertex{VertexA, VertexB, VertexC} {
		if t, err = CosineRuleII(t, v); err != nil {
			return t, err
		}
	}
	return t, nil
}

// applyMaxAngleSide resolves the ambiguous two-sides-only input: the
// remaining side and its opposite angle come from MaxAngleSide, after
// which the sine rule can close the other two angles.
func applyMaxAngleSide(t Triangle) (Triangle, error) {
	if known(t.A) || known(t.B) || known(t.C) {
		return t, nil
	}
	for _, v := range [3]Vertex{VertexA, VertexB, VertexC} {
		p, q := others(v)
		if known(t.side(v)) || !known(t.side(p)) || !known(t.side(q)) {
			continue
		}
		angle, side, err := MaxAngleSide(t.side(p), t.side(q))
		if err != nil {
			return t, err
		}
		return t.setAngle(v, angle).setSide(v, side), nil
	}
	return t, nil
}
