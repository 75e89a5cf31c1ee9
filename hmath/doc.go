// Package hmath provides the scalar hyperbolic utilities shared by the
// triangle solver and the disk projection engine.
//
// 🚀 What:
//
//   - Asinh, Acosh — inverse hyperbolic sine and cosine (Acosh is NaN
//     outside x ≥ 1; callers guard their own domains).
//   - DegToRad, RadToDeg — exact round-tripping angle conversions.
//   - PoincareGyro — Poincaré radius ⇄ gyrovector radius conversion,
//     r = tanh(rg/2) and rg = ln((1+r)/(1−r)).
//   - DiskHalfPlane — fills the derivable slots of a CircleModel from one
//     of seven sanctioned input pairings (disk ⇄ half-plane).
//
// ✨ Why:
//
//	Both radius representations coexist transiently inside every
//	projection: the solver works in hyperbolic lengths, the disk drawing
//	works in Euclidean radius fractions. These helpers are the only
//	bridge between the two.
//
// Errors:
//
//   - ErrNoPairing      — none of the seven input pairings is satisfied.
//   - ErrConvertDomain  — a pairing is satisfied but a value falls outside
//     the formula's domain.
//
// All functions are pure and stateless.
package hmath
