// Package pattern composes the disk primitives into line pencils and
// decorative families.
//
// 🚀 What:
//
//   - Perpendiculars — n geodesics fanned symmetrically around a center
//     direction with angular step π/(n+1); every member crosses the
//     direction's diameter at right angles.
//   - Parallels — a pencil of k geodesics through the ideal boundary
//     point at a1 with step 2π/(k+1); an odd k adds one near-diameter
//     member at a fixed 179° offset.
//   - Rosette — a fixed composite: central polygon, perpendicular fan,
//     two horocycle families and a circle series.
//
// ✨ Why:
//
//	Pencils and families are pure repetition of the single-geodesic and
//	single-circle builders at computed angular offsets; this package
//	owns the offset arithmetic and nothing else.
//
// Failure is atomic but not transactional: the first failing sub-call
// aborts the composite, and descriptors already produced are simply
// discarded by the caller.
package pattern
