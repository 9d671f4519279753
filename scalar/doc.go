// SPDX-License-Identifier: MIT

// Package scalar is the numeric floor every other lvmath package stands on.
//
// 🚀 What lives here?
//
//	• Type constraints: Real, Signed, Unsigned, Integer, Number.
//	• The per-type tolerance policy used by every "nearly" predicate:
//	  float32 → 1e-5, float64 → 1e-9, integers → 0 (exact).
//	• Small arithmetic helpers: Abs, AbsDiff, Clamp, Lerp, Sqrt, InvSqrt.
//	• A numeric formatter/parser keyed by the scalar type: floats are written
//	  with six fixed decimals ("1.000000"), integers in plain decimal.
//	• Little-endian component codecs used by the binary contracts of vectors,
//	  matrices, quaternions and rectangles.
//
// ⚙️ Usage:
//
//	eps := scalar.Tol[float64]()            // 1e-9
//	ok := scalar.IsNearlyEqual(a, b, eps)
//	s := scalar.Format(float32(1))          // "1.000000"
//	v, err := scalar.Parse[int32](" 42 ")   // 42, nil
//
// Every "nearly" operation in lvmath accepts an optional trailing tolerance
// argument; when it is omitted the value of Tolerance[T] applies.
package scalar
