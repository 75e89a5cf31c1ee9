// Package hyperbolic is the geometry core of the hyperbolic-diffusion
// drawing application: it solves hyperbolic triangles and projects
// triangles, regular polygons, circles, geodesic lines, line pencils and
// horocycle families onto the Poincaré disk as screen-space arcs and
// chords.
//
// 🚀 What is inside?
//
//	A small symbolic-numeric inference engine plus an analytic projection
//	layer, split into focused subpackages:
//	  • hmath    — scalar hyperbolic utilities: asinh/acosh, degree⇄radian,
//	    Poincaré⇄gyrovector radius, disk⇄half-plane circle conversion
//	  • triangle — hyperbolic law solvers (Pythagorean, sine rule, both
//	    cosine rules, maximum-angle/side) and the completion orchestrator
//	    that fills a partially specified triangle
//	  • disk     — the projection engine: turns completed measurements and
//	    a disk frame into circular-arc / chord descriptors, and builds the
//	    primitive shapes (triangle, regular polygon, rectangle, geodesic
//	    line, circle, circle series, horocycle family)
//	  • pattern  — composite generators: perpendicular and parallel
//	    pencils and a fixed decorative rosette
//	  • render   — the Surface capability (stroke primitives), a drawing
//	    adapter, a recorder double, and an SVG surface
//
// ✨ Why this shape?
//
//   - Pure value semantics — every solver takes values and returns a new
//     tuple; no shared mutable state, no caching, fully synchronous
//   - Descriptor-first — the engine returns arc/line descriptors; issuing
//     primitive calls against a surface is a separate, swappable adapter
//   - Deterministic failures — every error is a sentinel, a pure function
//     of the inputs; nothing is retried
//
// The network client that ships canvas snapshots to the diffusion server
// lives in the application, not here.
package hyperbolic
