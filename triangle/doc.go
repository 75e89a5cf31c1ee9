// Package triangle completes partially specified hyperbolic triangles.
//
// 🚀 What:
//
//	A Triangle holds six measurement slots — three angles (radians) and
//	three opposite sides (hyperbolic lengths) — where zero means
//	"unknown". Complete drives four independent law solvers in a fixed
//	sequence until every slot is populated, or reports why it cannot be:
//	  • Pythagoras    — cosh(h) = cosh(x)·cosh(y) when a right angle is known
//	  • SineRule      — sinh(a)/sin(A) = sinh(b)/sin(B) = sinh(c)/sin(C)
//	  • CosineRuleI   — cosh(a) = cosh(b)·cosh(c) − sinh(b)·sinh(c)·cos(A)
//	  • CosineRuleII  — cos(A) = −cos(B)·cos(C) + sin(B)·sin(C)·cosh(a)
//	  • MaxAngleSide  — the two-sides-only collapse: cos(A) = tanh(b/2)·tanh(c/2)
//
// ✨ Why:
//
//	In hyperbolic geometry angle-angle-angle determines the triangle, the
//	angle sum falls strictly short of π, and every projection into the
//	Poincaré disk needs all six measurements. The orchestrator is the
//	inference engine that gets a drawing request from 2–3 knowns to a
//	renderable figure.
//
// Design:
//
//   - Every solver is a pure function: value in, value out, no aliasing.
//   - Complete is an ordered list of named transition rules over the
//     known-mask; each rule is independently testable.
//   - Domain guards (asin/acos arguments strictly inside (−1,1), acosh
//     arguments ≥ 1) fail fast with ErrInvalidTriangle.
//
// Errors:
//
//   - ErrInsufficientData — fewer than 2 knowns, or the rule sequence
//     cannot close the remaining slots.
//   - ErrTooManyInputs    — more than 3 knowns.
//   - ErrInvalidTriangle  — degenerate or infeasible measurements, or a
//     law solver's domain guard triggered.
//
// Complexity: O(1) — a bounded number of scalar evaluations per call.
package triangle
