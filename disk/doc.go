// Package disk projects solved hyperbolic measurements into the
// Poincaré disk: render-ready circular-arc and chord descriptors in
// screen coordinates.
//
// 🚀 What:
//
//   - Frame — the caller-owned disk placement (screen center + radius);
//     received by value per call, never cached or mutated.
//   - Element — one render-ready primitive: a circular arc (center,
//     radius, start/end angle), a straight chord, or a full circle.
//   - SideArc — the core projection: a completed triangle's curved side
//     becomes a Euclidean arc orthogonal to the disk boundary, or a
//     diameter chord when the angle defect vanishes.
//   - Builders — Triangle, Polygon, Rectangle, Line, Circle,
//     CircleSeries, Horocycles — each composes triangle completions and
//     SideArc into a descriptor list.
//
// ✨ Why descriptors instead of draw calls?
//
//	The engine stays testable without any rendering surface: callers
//	(package render) translate Elements into stroke primitives. Angles
//	cross this API in degrees, matching the drawing front end; sides are
//	hyperbolic lengths.
//
// Geometry:
//
//	A geodesic through two interior points is the unique Euclidean
//	circle through them orthogonal to the disk boundary. With a vertex
//	at polar (R·aung, rot) carrying conformal angle B, the arc's radius
//	is R·(1−aung²)/(2·aung·sin B) and its center sits at that radius
//	along the direction rot + π/2 − B — orthogonality then holds by
//	construction (|K|² = R² + ρ²).
//
// Errors: see the sentinels in types.go. All failures are deterministic
// functions of the inputs; composites abort on the first sub-failure.
package disk
