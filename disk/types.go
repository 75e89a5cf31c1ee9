// Package disk defines the frame, descriptor types and sentinel errors
// of the Poincaré disk projection engine.
package disk

import (
	"errors"

	"github.com/jbeda/geom"
)

// Sentinel errors for disk projection.
var (
	// ErrInvalidSides indicates a polygon with fewer than three sides.
	ErrInvalidSides = errors.New("disk: polygon needs at least three sides")
	// ErrImpossibleGeometry indicates an angle sum that no hyperbolic
	// figure can realize (n·U ≥ (n−2)·180°).
	ErrImpossibleGeometry = errors.New("disk: angle sum impossible in hyperbolic geometry")
	// ErrInvalidAngles indicates angle parameters that must be distinct.
	ErrInvalidAngles = errors.New("disk: angle parameters must be distinct")
	// ErrAmbiguousInput indicates two mutually exclusive parameters both
	// given, or neither given.
	ErrAmbiguousInput = errors.New("disk: exactly one of the radius parameters may be set")
	// ErrOutOfDomain indicates a parameter outside the Poincaré disk
	// domain (radius at or beyond the boundary, angle beyond 360°).
	ErrOutOfDomain = errors.New("disk: parameter outside the Poincaré disk domain")
	// ErrRadiusTooLarge indicates a gyrovector radius whose Euclidean
	// image underflows onto the boundary and cannot be rendered.
	ErrRadiusTooLarge = errors.New("disk: gyrovector radius too large to render")
	// ErrInvalidCount indicates a non-positive element count.
	ErrInvalidCount = errors.New("disk: element count must be positive")
	// ErrInvalidRange indicates a radius range that is not increasing.
	ErrInvalidRange = errors.New("disk: radius range must be increasing")
)

// Frame is the immutable per-drawing context: the Poincaré disk's
// center and outer radius in screen coordinates. The engine receives it
// by value on every call and never retains it.
type Frame struct {
	Center geom.Coord
	R      float64
}

// Kind discriminates the three descriptor shapes.
type Kind int

const (
	// KindArc is a circular arc from Start to End around Center.
	KindArc Kind = iota
	// KindChord is a straight segment from P1 to P2.
	KindChord
	// KindCircle is a full circle around Center.
	KindCircle
)

// Element is one render-ready primitive in screen space. Arcs and
// circles use Center/Radius (plus Start/End for arcs, radians); chords
// use P1/P2.
type Element struct {
	Kind       Kind
	Center     geom.Coord
	Radius     float64
	Start, End float64
	P1, P2     geom.Coord
}
