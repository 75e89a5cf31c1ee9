package disk_test

import (
	"math"
	"testing"

	"github.com/jbeda/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/axenov/hyperbolic-diffusion/disk"
	"github.com/axenov/hyperbolic-diffusion/triangle"
)

// countKinds tallies descriptor kinds in a builder result.
func countKinds(els []disk.Element) (arcs, chords, circles int) {
	for _, el := range els {
		switch el.Kind {
		case disk.KindArc:
			arcs++
		case disk.KindChord:
			chords++
		case disk.KindCircle:
			circles++
		}
	}
	return arcs, chords, circles
}

// TestTriangle_ThreeAngles draws the 30°/10°/120° triangle of the
// angle-angle-angle path: two straight radial sides plus one arc.
func TestTriangle_ThreeAngles(t *testing.T) {
	els, err := disk.Triangle(frame(), 30, 0, 10, 0, 120, 0, 0)
	require.NoError(t, err, "AAA input must complete and project")
	require.Len(t, els, 3, "a triangle is three elements")

	arcs, chords, _ := countKinds(els)
	assert.Equal(t, 2, chords, "two straight radial sides")
	assert.Equal(t, 1, arcs, "one curved side")

	// Both radial sides start at the disk center.
	f := frame()
	assert.Equal(t, f.Center, els[0].P1, "first side starts at the center")
	assert.Equal(t, f.Center, els[1].P1, "second side starts at the center")
}

// TestTriangle_CurvedSideMeetsRadialTips verifies composition: the arc
// passes through the far tips of both straight sides.
func TestTriangle_CurvedSideMeetsRadialTips(t *testing.T) {
	els, err := disk.Triangle(frame(), 0, 1, 0, 1.2, 80, 0, 15)
	require.NoError(t, err, "side-angle-side input must complete")
	require.Len(t, els, 3)

	arc := els[2]
	require.Equal(t, disk.KindArc, arc.Kind)
	onArc(t, arc, els[0].P2, "arc must meet the tip of the first radial side")
	onArc(t, arc, els[1].P2, "arc must meet the tip of the second radial side")
}

// TestTriangle_PropagatesCompletionErrors keeps solver failures intact.
func TestTriangle_PropagatesCompletionErrors(t *testing.T) {
	_, err := disk.Triangle(frame(), 90, 0, 90, 0, 10, 0, 0)
	assert.ErrorIs(t, err, triangle.ErrInvalidTriangle, "angle sum ≥ π must fail")

	_, err = disk.Triangle(frame(), 0, 1, 0, 0, 0, 0, 0)
	assert.ErrorIs(t, err, triangle.ErrInsufficientData, "one known slot must fail")
}

// TestPolygon_Rejections covers the two documented rejections.
func TestPolygon_Rejections(t *testing.T) {
	_, err := disk.Polygon(frame(), 2, 50, 0)
	assert.ErrorIs(t, err, disk.ErrInvalidSides, "fewer than three sides")

	// 3·70 = 210 ≥ (3−2)·180: no hyperbolic triangle has 70° corners
	// summing past the flat bound.
	_, err = disk.Polygon(frame(), 3, 70, 0)
	assert.ErrorIs(t, err, disk.ErrImpossibleGeometry, "3 sides at 70° is flat-or-spherical")
}

// TestPolygon_FiveSides draws the 5-gon with 50° corners: exactly five
// arcs, evenly rotated, all the same radius.
func TestPolygon_FiveSides(t *testing.T) {
	els, err := disk.Polygon(frame(), 5, 50, 20)
	require.NoError(t, err)
	require.Len(t, els, 5, "five sides, five arcs")

	arcs, chords, circles := countKinds(els)
	assert.Equal(t, 5, arcs, "every edge is an arc")
	assert.Zero(t, chords+circles, "no other element kinds")
	for _, el := range els[1:] {
		assert.InDelta(t, els[0].Radius, el.Radius, tol, "regular polygon edges share one arc radius")
	}
}

// TestPolygon_EdgesShareVertices checks that consecutive edge arcs meet:
// the sweep start of edge k is the vertex it shares with edge k+1.
func TestPolygon_EdgesShareVertices(t *testing.T) {
	els, err := disk.Polygon(frame(), 4, 40, 0)
	require.NoError(t, err)
	require.Len(t, els, 4)

	for k := range els {
		next := els[(k+1)%len(els)]
		start := geom.Coord{
			X: els[k].Center.X + els[k].Radius*math.Cos(els[k].Start),
			Y: els[k].Center.Y + els[k].Radius*math.Sin(els[k].Start),
		}
		onArc(t, next, start, "consecutive polygon edges must share a vertex")
	}
}

// TestRectangle_Composition draws the Lambert quadrilateral: two
// straight radial sides, two curved sides, all four corners chained.
func TestRectangle_Composition(t *testing.T) {
	f := frame()
	els, err := disk.Rectangle(f, 50, 70, 10)
	require.NoError(t, err)
	require.Len(t, els, 4, "two chords and two arcs")

	arcs, chords, _ := countKinds(els)
	assert.Equal(t, 2, chords, "two straight sides")
	assert.Equal(t, 2, arcs, "two curved sides")

	// The curved sides hang off the radial tips and meet each other at
	// the mirrored far corner (the sweep start of the first arc).
	onArc(t, els[2], els[0].P2, "first arc meets the first radial tip")
	onArc(t, els[3], els[1].P2, "second arc meets the second radial tip")

	farCorner := geom.Coord{
		X: els[2].Center.X + els[2].Radius*math.Cos(els[2].Start),
		Y: els[2].Center.Y + els[2].Radius*math.Sin(els[2].Start),
	}
	onArc(t, els[3], farCorner, "both arcs must meet at the far corner")
}

// TestRectangle_EqualAnglesRejected enforces the distinctness contract.
func TestRectangle_EqualAnglesRejected(t *testing.T) {
	_, err := disk.Rectangle(frame(), 60, 60, 0)
	assert.ErrorIs(t, err, disk.ErrInvalidAngles, "equal corner angles rejected")
}

// TestRectangle_InfeasibleAngleSum rejects corner sums at or past 180°
// with the geometry sentinel rather than a leaked solver guard.
func TestRectangle_InfeasibleAngleSum(t *testing.T) {
	_, err := disk.Rectangle(frame(), 100, 90, 0)
	assert.ErrorIs(t, err, disk.ErrImpossibleGeometry, "corner sum ≥ 180° is flat-or-spherical")
}

// TestLine_DiameterAtPiSeparation draws the geodesic between opposite
// boundary points: a straight diameter chord.
func TestLine_DiameterAtPiSeparation(t *testing.T) {
	f := frame()
	els, err := disk.Line(f, 0, 180)
	require.NoError(t, err)
	require.Len(t, els, 1)
	require.Equal(t, disk.KindChord, els[0].Kind, "π separation is a diameter")
	assert.InDelta(t, 2*f.R, els[0].P1.DistanceFrom(els[0].P2), tol, "chord spans the full diameter")
}

// TestLine_ArcEndpointsNearBoundary draws a non-diameter geodesic and
// checks both endpoints sit at the near-boundary radius in the right
// directions.
func TestLine_ArcEndpointsNearBoundary(t *testing.T) {
	f := frame()
	els, err := disk.Line(f, 30, 120)
	require.NoError(t, err)
	require.Len(t, els, 1)
	require.Equal(t, disk.KindArc, els[0].Kind, "generic separation is an arc")

	// The near-ideal legs run through cosh ≈ 10³, so incidence here is
	// a few digits looser than the interior-triangle cases.
	const lineTol = 1e-4
	el := els[0]
	for _, deg := range []float64{30, 120} {
		rad := deg * math.Pi / 180
		p := geom.Coord{
			X: f.Center.X + f.R*0.999*math.Cos(rad),
			Y: f.Center.Y + f.R*0.999*math.Sin(rad),
		}
		assert.InDelta(t, el.Radius, el.Center.DistanceFrom(p), lineTol,
			"geodesic endpoint near the boundary")
	}
	d := el.Center.DistanceFrom(f.Center)
	assert.InDelta(t, f.R*f.R+el.Radius*el.Radius, d*d, 1e-2, "geodesic arc is orthogonal to the boundary")
}

// TestLine_WraparoundNormalization joins 350° and 10° the short way
// around zero rather than sweeping 340°.
func TestLine_WraparoundNormalization(t *testing.T) {
	els, err := disk.Line(frame(), 350, 10)
	require.NoError(t, err)
	require.Len(t, els, 1)
	assert.Equal(t, disk.KindArc, els[0].Kind, "20° separation must be an arc, not a diameter")
}

// TestLine_Rejections covers domain and distinctness failures.
func TestLine_Rejections(t *testing.T) {
	_, err := disk.Line(frame(), 400, 10)
	assert.ErrorIs(t, err, disk.ErrOutOfDomain, "angles beyond 360° rejected")

	_, err = disk.Line(frame(), 45, 45)
	assert.ErrorIs(t, err, disk.ErrInvalidAngles, "coinciding endpoints rejected")
}

// TestCircle_SpecifiedBehaviors pins the contract triple from the
// drawing front end: Poincaré radius scales the frame, dual input is
// ambiguous, the boundary is out of domain.
func TestCircle_SpecifiedBehaviors(t *testing.T) {
	f := frame()

	el, err := disk.Circle(f, 0.5, 0)
	require.NoError(t, err)
	assert.Equal(t, disk.KindCircle, el.Kind)
	assert.InDelta(t, 0.5*f.R, el.Radius, tol, "Euclidean radius is r·R")
	assert.Equal(t, f.Center, el.Center, "circle sits at the disk center")

	_, err = disk.Circle(f, 0.5, 0.5)
	assert.ErrorIs(t, err, disk.ErrAmbiguousInput, "both radii given")

	_, err = disk.Circle(f, 0, 0)
	assert.ErrorIs(t, err, disk.ErrAmbiguousInput, "neither radius given")

	_, err = disk.Circle(f, 1.0, 0)
	assert.ErrorIs(t, err, disk.ErrOutOfDomain, "Poincaré radius at the boundary")

	_, err = disk.Circle(f, 0, 36)
	assert.ErrorIs(t, err, disk.ErrRadiusTooLarge, "gyrovector radius past the render limit")
}

// TestCircle_GyrovectorMatchesConversion checks rg routing through the
// gyrovector conversion: rg = ln 3 is the Poincaré radius 0.5.
func TestCircle_GyrovectorMatchesConversion(t *testing.T) {
	f := frame()
	el, err := disk.Circle(f, 0, math.Log(3))
	require.NoError(t, err)
	assert.InDelta(t, 0.5*f.R, el.Radius, tol, "tanh(ln3/2) = 0.5")
}

// TestCircleSeries_InterpolatesRadii draws four circles over [1, 4]
// and expects strictly increasing Euclidean radii with exact ends.
func TestCircleSeries_InterpolatesRadii(t *testing.T) {
	f := frame()
	els, err := disk.CircleSeries(f, 4, 1, 4)
	require.NoError(t, err)
	require.Len(t, els, 4)

	first, _ := disk.Circle(f, 0, 1.0)
	last, _ := disk.Circle(f, 0, 4.0)
	assert.InDelta(t, first.Radius, els[0].Radius, tol, "series starts at r1")
	assert.InDelta(t, last.Radius, els[3].Radius, tol, "series ends at r2")
	for k := 1; k < len(els); k++ {
		assert.Greater(t, els[k].Radius, els[k-1].Radius, "radii strictly increase")
	}
}

// TestCircleSeries_Rejections covers count and range validation.
func TestCircleSeries_Rejections(t *testing.T) {
	_, err := disk.CircleSeries(frame(), 0, 1, 2)
	assert.ErrorIs(t, err, disk.ErrInvalidCount, "zero circles rejected")

	_, err = disk.CircleSeries(frame(), 3, 2, 2)
	assert.ErrorIs(t, err, disk.ErrInvalidRange, "non-increasing range rejected")

	_, err = disk.CircleSeries(frame(), 3, 0, 2)
	assert.ErrorIs(t, err, disk.ErrOutOfDomain, "range must start above zero")
}

// TestHorocycles_TangentAtBoundary verifies every member circle touches
// the boundary point in direction a and stays inside the disk.
func TestHorocycles_TangentAtBoundary(t *testing.T) {
	f := frame()
	els, err := disk.Horocycles(f, 3, 90)
	require.NoError(t, err)
	require.Len(t, els, 3)

	boundary := geom.Coord{X: f.Center.X, Y: f.Center.Y + f.R}
	for _, el := range els {
		assert.InDelta(t, el.Radius, el.Center.DistanceFrom(boundary), tol,
			"member circle is tangent at the shared boundary point")
		assert.Less(t, el.Radius, f.R, "member circle stays inside the disk")
		assert.Greater(t, el.Radius, 0.0, "member circle is not degenerate")
	}
}

// TestHorocycles_Rejections covers count and direction validation.
func TestHorocycles_Rejections(t *testing.T) {
	_, err := disk.Horocycles(frame(), 0, 10)
	assert.ErrorIs(t, err, disk.ErrInvalidCount, "zero members rejected")

	_, err = disk.Horocycles(frame(), 3, 400)
	assert.ErrorIs(t, err, disk.ErrOutOfDomain, "direction beyond 360° rejected")
}
