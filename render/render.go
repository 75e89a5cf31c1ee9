package render

import (
	"fmt"
	"math"

	"github.com/axenov/hyperbolic-diffusion/disk"
	"github.com/axenov/hyperbolic-diffusion/pattern"
)

// Draw replays descriptors onto the surface in order: arcs and circles
// become StrokeArc calls, chords become StrokeLine calls. The first
// unmapped kind aborts the replay.
func Draw(s Surface, els []disk.Element) error {
	if s == nil {
		return ErrUninitializedSurface
	}
	for i, el := range els {
		switch el.Kind {
		case disk.KindArc:
			s.StrokeArc(el.Center, el.Radius, el.Start, el.End)
		case disk.KindCircle:
			s.StrokeArc(el.Center, el.Radius, 0, 2*math.Pi)
		case disk.KindChord:
			s.StrokeLine(el.P1, el.P2)
		default:
			return fmt.Errorf("%w: element %d has kind %d", ErrUnknownKind, i, el.Kind)
		}
	}
	return nil
}

// Renderer binds a surface to a projection frame and exposes one
// method per figure builder. Geometry errors from the builders pass
// through unchanged; nothing is stroked on failure.
type Renderer struct {
	S Surface
	F disk.Frame
}

func (r Renderer) draw(els []disk.Element, err error) error {
	if err != nil {
		return err
	}
	return Draw(r.S, els)
}

// Boundary strokes the disk boundary itself.
func (r Renderer) Boundary() error {
	if r.S == nil {
		return ErrUninitializedSurface
	}
	r.S.StrokeArc(r.F.Center, r.F.R, 0, 2*math.Pi)
	return nil
}

// Triangle completes and strokes a hyperbolic triangle; angles are
// degrees, sides gyrovector lengths, with zero marking unknowns.
func (r Renderer) Triangle(angleA, sideA, angleB, sideB, angleC, sideC, rot float64) error {
	return r.draw(disk.Triangle(r.F, angleA, sideA, angleB, sideB, angleC, sideC, rot))
}

// Polygon strokes the regular n-gon with corner angle u degrees.
func (r Renderer) Polygon(n int, u, rot float64) error {
	return r.draw(disk.Polygon(r.F, n, u, rot))
}

// Rectangle strokes the equal-sided quadrilateral with opposing corner
// angles angleA and angleB degrees.
func (r Renderer) Rectangle(angleA, angleB, rot float64) error {
	return r.draw(disk.Rectangle(r.F, angleA, angleB, rot))
}

// Line strokes the geodesic between two boundary angles in degrees.
func (r Renderer) Line(a1, a2 float64) error {
	return r.draw(disk.Line(r.F, a1, a2))
}

// Circle strokes one centered circle; exactly one of rad (Poincaré)
// and rg (gyrovector) may be set.
func (r Renderer) Circle(rad, rg float64) error {
	el, err := disk.Circle(r.F, rad, rg)
	if err != nil {
		return err
	}
	return Draw(r.S, []disk.Element{el})
}

// CircleSeries strokes n concentric circles between gyrovector radii
// r1 and r2.
func (r Renderer) CircleSeries(n int, r1, r2 float64) error {
	return r.draw(disk.CircleSeries(r.F, n, r1, r2))
}

// Horocycles strokes n nested horocycles tangent at direction a.
func (r Renderer) Horocycles(n int, a float64) error {
	return r.draw(disk.Horocycles(r.F, n, a))
}

// Perpendiculars strokes the n-member fan around direction a.
func (r Renderer) Perpendiculars(n int, a float64) error {
	return r.draw(pattern.Perpendiculars(r.F, n, a))
}

// Parallels strokes the k-member pencil through the ideal point at a1.
func (r Renderer) Parallels(k int, a1 float64) error {
	return r.draw(pattern.Parallels(r.F, k, a1))
}

// Rosette strokes the fixed decorative composite.
func (r Renderer) Rosette() error {
	return r.draw(pattern.Rosette(r.F))
}
