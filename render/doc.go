// Package render turns disk descriptors into stroke calls on a
// pluggable drawing surface.
//
// 🚀 What:
//
//   - Surface — the minimal stroke contract a backend implements:
//     Clear, SetStroke, StrokeArc, StrokeLine.
//   - Draw — replays a descriptor slice onto a Surface, one stroke per
//     element.
//   - SVGSurface — a Surface writing an SVG document to an io.Writer.
//   - Recorder — an in-memory Surface for tests.
//   - Renderer — a Surface plus a Frame, with one method per figure
//     builder so callers go from parameters to strokes in one call.
//
// ✨ Why:
//
//	The geometry layers only ever describe circles, arcs and segments;
//	keeping the backend behind four methods lets the same figures land
//	on SVG, a raster canvas or a test double unchanged.
//
// Errors:
//
//   - ErrUninitializedSurface — Draw or a Renderer method was given a
//     nil Surface.
//   - ErrUnknownKind — a descriptor carries a Kind this package does
//     not stroke.
//
// Geometry errors from the figure builders pass through Renderer
// methods unwrapped, so errors.Is against the disk and pattern
// sentinels keeps working.
package render
