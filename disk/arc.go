package disk

import (
	"fmt"
	"math"

	"github.com/jbeda/geom"
	"gonum.org/v1/gonum/floats/scalar"
)

// defectEps bounds the curvature-defect test cos(π−(A+B+C)) == 1.
const defectEps = 1e-12

// polar returns the point at the given disk-radius fraction and angle.
func polar(f Frame, frac, angle float64) geom.Coord {
	return geom.Coord{
		X: f.Center.X + f.R*frac*math.Cos(angle),
		Y: f.Center.Y + f.R*frac*math.Sin(angle),
	}
}

// SideArc projects the curved side of a completed triangle whose third
// vertex sits at the disk center. The two other vertices lie at polar
// (R·aung, rot) — the corner carrying angle B — and (R·bung, rot+C),
// the corner carrying angle A; aung and bung are the disk-projected
// radii tanh(side/2) of the radial sides.
//
// If the angle defect π−(A+B+C) vanishes the curvature is zero and the
// side collapses to a straight chord spanning the full disk diameter at
// rot. Otherwise the side is the arc of the unique Euclidean circle
// through both vertices orthogonal to the disk boundary:
//
//	ρ = R·(1−aung²) / (2·aung·sin B)
//	K = vertexB + ρ·(cos(rot+π/2−B), sin(rot+π/2−B))
//
// Start and End are atan2 angles against K, ordered so the
// counterclockwise sweep Start→End is the short arc between the
// vertices: K lies outside the disk, and seen from there the A-corner
// precedes the B-corner.
func SideArc(f Frame, aung, bung, A, B, C, rot float64) (Element, error) {
	if scalar.EqualWithinAbs(math.Cos(math.Pi-(A+B+C)), 1, defectEps) {
		return Element{
			Kind: KindChord,
			P1:   polar(f, 1, rot),
			P2:   polar(f, 1, rot+math.Pi),
		}, nil
	}
	if aung <= 0 || aung >= 1 || bung <= 0 || bung >= 1 {
		return Element{}, fmt.Errorf("%w: projected radii %v, %v", ErrOutOfDomain, aung, bung)
	}
	sinB := math.Sin(B)
	if sinB <= 0 {
		return Element{}, fmt.Errorf("%w: degenerate vertex angle %v", ErrOutOfDomain, B)
	}

	vb := polar(f, aung, rot)
	va := polar(f, bung, rot+C)
	rho := f.R * (1 - aung*aung) / (2 * aung * sinB)
	center := geom.Coord{
		X: vb.X + rho*math.Cos(rot+math.Pi/2-B),
		Y: vb.Y + rho*math.Sin(rot+math.Pi/2-B),
	}
	return Element{
		Kind:   KindArc,
		Center: center,
		Radius: rho,
		Start:  math.Atan2(va.Y-center.Y, va.X-center.X),
		End:    math.Atan2(vb.Y-center.Y, vb.X-center.X),
	}, nil
}

// chord builds a straight-segment descriptor.
func chord(p1, p2 geom.Coord) Element {
	return Element{Kind: KindChord, P1: p1, P2: p2}
}

// circle builds a full-circle descriptor.
func circle(center geom.Coord, radius float64) Element {
	return Element{Kind: KindCircle, Center: center, Radius: radius, Start: 0, End: 2 * math.Pi}
}
