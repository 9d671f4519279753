// SPDX-License-Identifier: MIT

// Package geom provides lines, segments and axis-aligned rectangles together
// with their intersection and classification queries.
//
// 🚀 Types
//
//	• Line2, Line3: Origin plus a Direction that need not be normalized. The
//	  zero-argument default direction is +Y.
//	• Segment2, Segment3: Begin and End; direction and length are derived.
//	• Rect: Left, Top, Right, Bottom in the canonical form Left ≤ Right and
//	  Top ≥ Bottom, restored by every constructor and setter.
//	• IntersectionResult: OUTSIDE < ON_THE_EDGE < PARTIALLY_INSIDE < FULLY_INSIDE.
//
// ✨ Solvers
//
//   - IntersectLines2 solves the 2×2 system with cross products and fails with
//     ErrParallel when |cross(dA, dB)| is below the tolerance.
//   - IntersectLines3 finds the closest points of two lines (Bourke). It fails
//     with ErrParallel on a vanishing denominator and with ErrSkew when the two
//     closest points are farther apart than the tolerance.
//   - Segment intersection runs the line solver on End−Begin and accepts the
//     point only when it lies inside both segments (ErrNoIntersection).
//
// Failures are sentinel errors checked with errors.Is; no query panics.
package geom
