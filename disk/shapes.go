package disk

import (
	"fmt"
	"math"

	"github.com/jbeda/geom"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/axenov/hyperbolic-diffusion/hmath"
	"github.com/axenov/hyperbolic-diffusion/triangle"
)

// nearBoundary is the disk-radius fraction standing in for an ideal
// point when a geodesic line is built from a degenerate isosceles
// triangle; 0.999 keeps the legs finite while the endpoints visually
// touch the boundary.
const nearBoundary = 0.999

// maxGyroRadius is the largest renderable gyrovector radius: beyond it
// tanh(rg/2) underflows onto the boundary in double precision.
const maxGyroRadius = 35

// Triangle completes the measurement set (angles in degrees, sides in
// hyperbolic length, zero = unknown) and projects it with its C-corner
// at the disk center: two straight radial sides at rot and rot+C, then
// the curved third side. Three elements.
func Triangle(f Frame, angleA, sideA, angleB, sideB, angleC, sideC, rot float64) ([]Element, error) {
	ct, err := triangle.Complete(triangle.Triangle{
		A: hmath.DegToRad(angleA), SideA: sideA,
		B: hmath.DegToRad(angleB), SideB: sideB,
		C: hmath.DegToRad(angleC), SideC: sideC,
	})
	if err != nil {
		return nil, err
	}

	aung := math.Tanh(ct.SideA / 2)
	bung := math.Tanh(ct.SideB / 2)
	rotRad := hmath.DegToRad(rot)

	arc, err := SideArc(f, aung, bung, ct.A, ct.B, ct.C, rotRad)
	if err != nil {
		return nil, err
	}
	return []Element{
		chord(f.Center, polar(f, aung, rotRad)),
		chord(f.Center, polar(f, bung, rotRad+ct.C)),
		arc,
	}, nil
}

// Polygon projects the regular hyperbolic n-gon with interior angle u
// (degrees) centered on the disk, rotated by rot degrees. Each edge is
// one arc; n elements.
//
// Rejects n < 3 and angle sums n·u ≥ (n−2)·180 that only flat or
// spherical geometry could realize.
func Polygon(f Frame, n int, u, rot float64) ([]Element, error) {
	if n < 3 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSides, n)
	}
	if float64(n)*u >= float64(n-2)*180 {
		return nil, fmt.Errorf("%w: %d sides at %v°", ErrImpossibleGeometry, n, u)
	}

	central := 2 * math.Pi / float64(n)
	half := hmath.DegToRad(u / 2)
	ct, err := triangle.Complete(triangle.Triangle{A: half, B: half, C: central})
	if err != nil {
		return nil, err
	}

	aung := math.Tanh(ct.SideA / 2)
	rotRad := hmath.DegToRad(rot)
	els := make([]Element, 0, n)
	for k := 0; k < n; k++ {
		arc, err := SideArc(f, aung, aung, half, half, central, rotRad+float64(k)*central)
		if err != nil {
			return nil, err
		}
		els = append(els, arc)
	}
	return els, nil
}

// Rectangle projects a Lambert-style quadrilateral: a right angle at
// the disk center, the two given corner angles (degrees, distinct) at
// the ends of the radial sides, and the far corner mirrored across the
// connecting geodesic. Two straight sides and two curved sides; four
// elements.
func Rectangle(f Frame, angleA, angleB, rot float64) ([]Element, error) {
	if angleA == angleB {
		return nil, fmt.Errorf("%w: both corners at %v°", ErrInvalidAngles, angleA)
	}
	// With the right angle at the center, the corner halves must leave
	// the auxiliary triangle a positive defect: A/2 + B/2 + 90 < 180.
	if angleA+angleB >= 180 {
		return nil, fmt.Errorf("%w: corner angles sum to %v°", ErrImpossibleGeometry, angleA+angleB)
	}

	halfA := hmath.DegToRad(angleA / 2)
	halfB := hmath.DegToRad(angleB / 2)
	ct, err := triangle.Complete(triangle.Triangle{A: halfA, B: halfB, C: math.Pi / 2})
	if err != nil {
		return nil, err
	}
	legB, legA := ct.SideA, ct.SideB // radial sides to the B- and A-corners

	// Drop the perpendicular from the center onto the hypotenuse
	// geodesic: h is its length, thetaB the slice of the right angle on
	// the B-corner side (right-triangle relations cot θ = cosh(leg)·tan(half)
	// and sinh h = sinh(leg)·sin(half)).
	thetaB := math.Atan(1 / (math.Cosh(legB) * math.Tan(halfB)))
	thetaA := math.Pi/2 - thetaB
	h := hmath.Asinh(math.Sinh(legB) * math.Sin(halfB))

	rotRad := hmath.DegToRad(rot)
	els := []Element{
		chord(f.Center, polar(f, math.Tanh(legB/2), rotRad)),
		chord(f.Center, polar(f, math.Tanh(legA/2), rotRad+math.Pi/2)),
	}

	// Far corner: the mirror image of the center, at distance 2h along
	// rot+thetaB. Each curved side is the geodesic from a radial corner
	// to that mirror point, solved as its own central triangle.
	near, err := triangle.Complete(triangle.Triangle{C: thetaB, SideA: legB, SideB: 2 * h})
	if err != nil {
		return nil, err
	}
	arcB, err := SideArc(f, math.Tanh(legB/2), math.Tanh(h), near.A, near.B, thetaB, rotRad)
	if err != nil {
		return nil, err
	}
	far, err := triangle.Complete(triangle.Triangle{C: thetaA, SideA: 2 * h, SideB: legA})
	if err != nil {
		return nil, err
	}
	arcA, err := SideArc(f, math.Tanh(h), math.Tanh(legA/2), far.A, far.B, thetaA, rotRad+thetaB)
	if err != nil {
		return nil, err
	}
	return append(els, arcB, arcA), nil
}

// Line projects the geodesic between two boundary angles a1, a2
// (degrees, each within [0, 360], distinct). Angular wraparound is
// normalized by advancing whichever endpoint trails by more than π. A
// separation of exactly π is a diameter chord; anything else becomes
// the curved side of a degenerate isosceles triangle whose legs reach
// nearBoundary. One element.
func Line(f Frame, a1, a2 float64) ([]Element, error) {
	if a1 < 0 || a1 > 360 || a2 < 0 || a2 > 360 {
		return nil, fmt.Errorf("%w: boundary angles %v°, %v°", ErrOutOfDomain, a1, a2)
	}
	if a1 == a2 {
		return nil, fmt.Errorf("%w: boundary angles coincide at %v°", ErrInvalidAngles, a1)
	}

	r1, r2 := hmath.DegToRad(a1), hmath.DegToRad(a2)
	if r2-r1 > math.Pi {
		r1 += 2 * math.Pi
	} else if r1-r2 > math.Pi {
		r2 += 2 * math.Pi
	}
	lo := math.Min(r1, r2)
	sep := math.Abs(r2 - r1)

	if scalar.EqualWithinAbs(sep, math.Pi, defectEps) {
		return []Element{chord(polar(f, 1, lo), polar(f, 1, lo+math.Pi))}, nil
	}

	leg := 2 * math.Atanh(nearBoundary)
	ct, err := triangle.Complete(triangle.Triangle{C: sep, SideA: leg, SideB: leg})
	if err != nil {
		return nil, err
	}
	arc, err := SideArc(f, nearBoundary, nearBoundary, ct.A, ct.B, sep, lo)
	if err != nil {
		return nil, err
	}
	return []Element{arc}, nil
}

// Circle projects a single hyperbolic circle centered on the disk.
// Exactly one of r (Poincaré radius, inside [0,1)) and rg (gyrovector
// radius) may be nonzero; the Euclidean image has radius r·R.
func Circle(f Frame, r, rg float64) (Element, error) {
	if (r != 0) == (rg != 0) {
		return Element{}, ErrAmbiguousInput
	}
	if rg != 0 {
		if rg < 0 {
			return Element{}, fmt.Errorf("%w: negative gyrovector radius %v", ErrOutOfDomain, rg)
		}
		if rg > maxGyroRadius {
			return Element{}, fmt.Errorf("%w: gyrovector radius %v", ErrRadiusTooLarge, rg)
		}
		r, _ = hmath.PoincareGyro(0, rg)
	} else if r < 0 || r >= 1 {
		return Element{}, fmt.Errorf("%w: Poincaré radius %v", ErrOutOfDomain, r)
	}
	return circle(f.Center, r*f.R), nil
}

// CircleSeries projects n concentric circles whose gyrovector radii
// interpolate linearly over [r1, r2]; r2 must exceed r1 and r1 must be
// positive. n elements.
func CircleSeries(f Frame, n int, r1, r2 float64) ([]Element, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d circles", ErrInvalidCount, n)
	}
	if r1 <= 0 {
		return nil, fmt.Errorf("%w: gyrovector range must start above 0, got %v", ErrOutOfDomain, r1)
	}
	if r2 <= r1 {
		return nil, fmt.Errorf("%w: [%v, %v]", ErrInvalidRange, r1, r2)
	}

	radii := []float64{r1}
	if n > 1 {
		radii = floats.Span(make([]float64, n), r1, r2)
	}
	els := make([]Element, 0, n)
	for _, rg := range radii {
		el, err := Circle(f, 0, rg)
		if err != nil {
			return nil, err
		}
		els = append(els, el)
	}
	return els, nil
}

// Horocycles approximates a horocycle family: n nested circles, all
// internally tangent to the disk boundary at direction a (degrees),
// with radii linearly interpolated between the center and the boundary.
// n elements.
func Horocycles(f Frame, n int, a float64) ([]Element, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d circles", ErrInvalidCount, n)
	}
	if a < 0 || a > 360 {
		return nil, fmt.Errorf("%w: direction %v°", ErrOutOfDomain, a)
	}

	dir := hmath.DegToRad(a)
	// n interior radii strictly between 0 and R.
	span := floats.Span(make([]float64, n+2), 0, f.R)
	els := make([]Element, 0, n)
	for _, rk := range span[1 : n+1] {
		center := geom.Coord{
			X: f.Center.X + (f.R-rk)*math.Cos(dir),
			Y: f.Center.Y + (f.R-rk)*math.Sin(dir),
		}
		els = append(els, circle(center, rk))
	}
	return els, nil
}
