package pattern_test

import (
	"testing"

	"github.com/jbeda/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/axenov/hyperbolic-diffusion/disk"
	"github.com/axenov/hyperbolic-diffusion/pattern"
)

// frame returns the shared test frame: disk of radius 100 at (200, 150).
func frame() disk.Frame {
	return disk.Frame{Center: geom.Coord{X: 200, Y: 150}, R: 100}
}

// countKinds tallies descriptor kinds in a composite result.
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

// TestPerpendiculars_FanComposition fans three geodesics around the
// zero direction: the middle member spans 90°–270° and so degenerates
// to the diameter chord, the outer two stay arcs.
func TestPerpendiculars_FanComposition(t *testing.T) {
	els, err := pattern.Perpendiculars(frame(), 3, 0)
	require.NoError(t, err)
	require.Len(t, els, 3, "one descriptor per pencil member")

	arcs, chords, _ := countKinds(els)
	assert.Equal(t, 2, arcs, "off-axis members curve")
	assert.Equal(t, 1, chords, "the k·g = π/2 member is the diameter")
	assert.Equal(t, disk.KindChord, els[1].Kind, "diameter sits at its fan position")
}

// TestPerpendiculars_SingleMember degenerates to one geodesic at ±90°
// around the direction, which is the perpendicular diameter.
func TestPerpendiculars_SingleMember(t *testing.T) {
	els, err := pattern.Perpendiculars(frame(), 1, 30)
	require.NoError(t, err)
	require.Len(t, els, 1)
	assert.Equal(t, disk.KindChord, els[0].Kind, "±π/2 offsets span a diameter")
}

// TestPerpendiculars_Rejections covers the count and range guards.
func TestPerpendiculars_Rejections(t *testing.T) {
	_, err := pattern.Perpendiculars(frame(), 0, 0)
	assert.ErrorIs(t, err, pattern.ErrZeroCount, "empty fan")

	_, err = pattern.Perpendiculars(frame(), 3, 400)
	assert.ErrorIs(t, err, pattern.ErrAngleRange, "direction beyond 360°")
}

// TestParallels_EvenPencil builds the four-member pencil through the
// ideal point at 0°: pairs at ±72° and ±144°, mirror-symmetric about
// the shared diameter.
func TestParallels_EvenPencil(t *testing.T) {
	f := frame()
	els, err := pattern.Parallels(f, 4, 0)
	require.NoError(t, err)
	require.Len(t, els, 4, "even pencil has exactly the symmetric pairs")

	arcs, chords, _ := countKinds(els)
	assert.Equal(t, 4, arcs, "no member separation reaches π")
	assert.Zero(t, chords)

	// Members come in mirror pairs about the diameter through 0°. The
	// near-ideal legs keep the reconstruction loose, same as for Line.
	for j := 0; j < len(els); j += 2 {
		up, down := els[j], els[j+1]
		assert.InDelta(t, up.Center.X, down.Center.X, 1e-3, "pair %d mirrors in x", j/2)
		assert.InDelta(t, up.Center.Y-f.Center.Y, f.Center.Y-down.Center.Y, 1e-3,
			"pair %d mirrors across the shared diameter", j/2)
	}
}

// TestParallels_OddPencilAddsLimitingMember checks the extra
// near-diameter member an odd count receives before the pairs.
func TestParallels_OddPencilAddsLimitingMember(t *testing.T) {
	els, err := pattern.Parallels(frame(), 3, 0)
	require.NoError(t, err)
	require.Len(t, els, 3)

	arcs, chords, _ := countKinds(els)
	assert.Equal(t, 3, arcs, "179° stops just short of the diameter")
	assert.Zero(t, chords)
}

// TestParallels_Rejections covers the count and range guards.
func TestParallels_Rejections(t *testing.T) {
	_, err := pattern.Parallels(frame(), 0, 0)
	assert.ErrorIs(t, err, pattern.ErrZeroCount, "empty pencil")

	_, err = pattern.Parallels(frame(), 2, -10)
	assert.ErrorIs(t, err, pattern.ErrAngleRange, "negative ideal point")
}

// TestRosette_Composition totals the fixed composite: six hexagon
// edges, a six-member fan, two four-horocycle families and a
// five-circle series.
func TestRosette_Composition(t *testing.T) {
	els, err := pattern.Rosette(frame())
	require.NoError(t, err)
	require.Len(t, els, 25)

	arcs, chords, circles := countKinds(els)
	assert.Equal(t, 12, arcs, "hexagon edges plus fan members")
	assert.Zero(t, chords, "no fan member of step π/7 reaches the diameter")
	assert.Equal(t, 13, circles, "horocycles plus the concentric series")
}
