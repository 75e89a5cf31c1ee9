package triangle_test

import (
	"fmt"
	"math"

	"github.com/axenov/hyperbolic-diffusion/hmath"
	"github.com/axenov/hyperbolic-diffusion/triangle"
)

// ExampleComplete shows the angle-angle-angle path, which has no
// Euclidean counterpart: three angles alone determine the hyperbolic
// triangle, including all side lengths.
func ExampleComplete() {
	t, err := triangle.Complete(triangle.Triangle{
		A: hmath.DegToRad(30),
		B: hmath.DegToRad(10),
		C: hmath.DegToRad(120),
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("all six slots filled:", t.SideA > 0 && t.SideB > 0 && t.SideC > 0)
	fmt.Println("angle defect positive:", t.A+t.B+t.C < math.Pi)
	// Output:
	// all six slots filled: true
	// angle defect positive: true
}

// ExampleComplete_invalid shows the deterministic rejection of a
// measurement set whose angle sum is not hyperbolic.
func ExampleComplete_invalid() {
	_, err := triangle.Complete(triangle.Triangle{
		A: hmath.DegToRad(90),
		B: hmath.DegToRad(90),
		C: hmath.DegToRad(10),
	})
	fmt.Println(err != nil)
	// Output:
	// true
}
