package triangle

import (
	"fmt"
	"math"
)

// Validate checks a measurement set before completion is attempted.
//
// A valid input has between 2 and 3 known slots; every known angle lies
// strictly inside (0, π); known angles sum to strictly less than π;
// known sides are strictly positive; and when all three sides are known
// they satisfy the strict triangle inequality.
func Validate(t Triangle) error {
	switch n := t.knownCount(); {
	case n < 2:
		return fmt.Errorf("%w: need at least 2 known measurements", ErrInsufficientData)
	case n > 3:
		return fmt.Errorf("%w: got more than 3 known measurements", ErrTooManyInputs)
	}

	sum := 0.0
	for _, a := range [3]float64{t.A, t.B, t.C} {
		if a < 0 {
			return fmt.Errorf("%w: negative angle %v", ErrInvalidTriangle, a)
		}
		if a >= math.Pi {
			return fmt.Errorf("%w: angle %v not below π", ErrInvalidTriangle, a)
		}
		sum += a
	}
	if sum >= math.Pi {
		return fmt.Errorf("%w: angle sum %v not below π", ErrInvalidTriangle, sum)
	}

	for _, s := range [3]float64{t.SideA, t.SideB, t.SideC} {
		if s < 0 {
			return fmt.Errorf("%w: negative side %v", ErrInvalidTriangle, s)
		}
	}
	if known(t.SideA) && known(t.SideB) && known(t.SideC) {
		if t.SideA >= t.SideB+t.SideC ||
			t.SideB >= t.SideA+t.SideC ||
			t.SideC >= t.SideA+t.SideB {
			return fmt.Errorf("%w: sides violate the strict triangle inequality", ErrInvalidTriangle)
		}
	}
	return nil
}
