package hmath

import "math"

// Asinh returns the inverse hyperbolic sine of x,
// computed as ln(x + √(x²+1)). Defined for all finite x.
func Asinh(x float64) float64 {
	return math.Log(x + math.Sqrt(x*x+1))
}

// Acosh returns the inverse hyperbolic cosine of x,
// computed as ln(x + √(x²−1)).
// The domain is x ≥ 1; smaller inputs produce NaN, so callers that
// derive x from a law of cosines must guard before calling.
func Acosh(x float64) float64 {
	return math.Log(x + math.Sqrt(x*x-1))
}

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// PoincareGyro converts between the Poincaré radius r ∈ [0,1) and the
// gyrovector radius rg ≥ 0 of the same hyperbolic circle:
//
//	r  = tanh(rg/2)
//	rg = ln((1+r)/(1−r))
//
// Exactly one of the two arguments is expected to be nonzero; the other
// is filled in and the completed pair returned. If both or neither are
// nonzero the pair is returned unchanged — the historical passthrough
// contract the drawing front end relies on.
func PoincareGyro(r, rg float64) (float64, float64) {
	switch {
	case r != 0 && rg == 0:
		rg = math.Log((1 + r) / (1 - r))
	case rg != 0 && r == 0:
		r = math.Tanh(rg / 2)
	}
	return r, rg
}
