// Package render turns disk descriptors into stroke calls on a
// pluggable drawing surface.
package render

import (
	"errors"

	"github.com/jbeda/geom"
)

// Sentinel errors reported by the drawing entry points.
var (
	// ErrUninitializedSurface indicates a nil drawing backend.
	ErrUninitializedSurface = errors.New("render: surface is not initialized")
	// ErrUnknownKind indicates a descriptor kind with no stroke mapping.
	ErrUnknownKind = errors.New("render: unknown element kind")
)

// Surface is the stroke contract a drawing backend implements. Angles
// are radians, coordinates and radii live in the same pixel space as
// the disk.Frame that produced the descriptors.
type Surface interface {
	// Clear resets the surface to an empty drawing.
	Clear()
	// SetStroke sets the pen for subsequent strokes.
	SetStroke(color string, width float64)
	// StrokeArc strokes the circular arc from angle start to end,
	// counterclockwise, around center.
	StrokeArc(center geom.Coord, radius, start, end float64)
	// StrokeLine strokes the straight segment from p1 to p2.
	StrokeLine(p1, p2 geom.Coord)
}

// Recorder is a Surface that keeps counters instead of drawing.
type Recorder struct {
	Clears  int
	Arcs    int
	Lines   int
	Strokes []string // colors in SetStroke order
}

// Clear implements Surface.
func (r *Recorder) Clear() { r.Clears++ }

// SetStroke implements Surface.
func (r *Recorder) SetStroke(color string, _ float64) {
	r.Strokes = append(r.Strokes, color)
}

// StrokeArc implements Surface.
func (r *Recorder) StrokeArc(_ geom.Coord, _, _, _ float64) { r.Arcs++ }

// StrokeLine implements Surface.
func (r *Recorder) StrokeLine(_, _ geom.Coord) { r.Lines++ }

// Primitives reports the total stroke count.
func (r *Recorder) Primitives() int { return r.Arcs + r.Lines }
