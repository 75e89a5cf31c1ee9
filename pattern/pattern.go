package pattern

import (
	"errors"
	"fmt"
	"math"

	"github.com/axenov/hyperbolic-diffusion/disk"
	"github.com/axenov/hyperbolic-diffusion/hmath"
)

// Sentinel errors for composite generation.
var (
	// ErrZeroCount indicates a pencil or family with no members.
	ErrZeroCount = errors.New("pattern: member count must be positive")
	// ErrAngleRange indicates a direction beyond 360 degrees.
	ErrAngleRange = errors.New("pattern: direction must lie within [0, 360] degrees")
)

// idealOffset is the fixed degree offset of the extra member an odd
// parallel pencil receives: just short of the diameter through the
// ideal point, standing in for the limiting parallel.
const idealOffset = 179

// Perpendiculars builds n geodesics symmetric about the diameter at
// direction a (degrees): member k joins the boundary angles a ± k·g
// with g = π/(n+1), so each member crosses the diameter at a right
// angle. Returns n single-element geodesics flattened in order.
func Perpendiculars(f disk.Frame, n int, a float64) ([]disk.Element, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrZeroCount, n)
	}
	if a < 0 || a > 360 {
		return nil, fmt.Errorf("%w: got %v°", ErrAngleRange, a)
	}

	step := hmath.RadToDeg(math.Pi / float64(n+1))
	els := make([]disk.Element, 0, n)
	for k := 1; k <= n; k++ {
		line, err := disk.Line(f, wrap(a+float64(k)*step), wrap(a-float64(k)*step))
		if err != nil {
			return nil, err
		}
		els = append(els, line...)
	}
	return els, nil
}

// Parallels builds the pencil of k geodesics sharing the ideal
// boundary point at a1 (degrees): members join a1 to a1 ± j·g with
// g = 2π/(k+1). An odd k inserts one additional member at the fixed
// idealOffset before the symmetric pairs. Returns k single-element
// geodesics flattened in order.
func Parallels(f disk.Frame, k int, a1 float64) ([]disk.Element, error) {
	if k < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrZeroCount, k)
	}
	if a1 < 0 || a1 > 360 {
		return nil, fmt.Errorf("%w: got %v°", ErrAngleRange, a1)
	}

	step := hmath.RadToDeg(2 * math.Pi / float64(k+1))
	els := make([]disk.Element, 0, k)
	if k%2 == 1 {
		line, err := disk.Line(f, wrap(a1), wrap(a1+idealOffset))
		if err != nil {
			return nil, err
		}
		els = append(els, line...)
	}
	for j := 1; j <= k/2; j++ {
		for _, sign := range [2]float64{1, -1} {
			line, err := disk.Line(f, wrap(a1), wrap(a1+sign*float64(j)*step))
			if err != nil {
				return nil, err
			}
			els = append(els, line...)
		}
	}
	return els, nil
}

// Rosette draws the fixed decorative composite: a central hexagon with
// 40° corners, a six-member perpendicular fan, opposing horocycle
// families and a five-circle series.
func Rosette(f disk.Frame) ([]disk.Element, error) {
	var els []disk.Element

	hexagon, err := disk.Polygon(f, 6, 40, 0)
	if err != nil {
		return nil, err
	}
	els = append(els, hexagon...)

	fan, err := Perpendiculars(f, 6, 0)
	if err != nil {
		return nil, err
	}
	els = append(els, fan...)

	for _, dir := range [2]float64{90, 270} {
		horo, err := disk.Horocycles(f, 4, dir)
		if err != nil {
			return nil, err
		}
		els = append(els, horo...)
	}

	series, err := disk.CircleSeries(f, 5, 0.5, 2.5)
	if err != nil {
		return nil, err
	}
	return append(els, series...), nil
}

// wrap folds a degree value into [0, 360).
func wrap(deg float64) float64 {
	return math.Mod(math.Mod(deg, 360)+360, 360)
}
