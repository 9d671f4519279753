// SPDX-License-Identifier: MIT

// Package vector provides fixed-size value vectors with 2, 3 and 4 components.
//
// 🚀 Types
//
//	• Vector2[T], Vector3[T], Vector4[T] over any scalar.Number: floats, signed
//	  and unsigned integers. Aliases such as Vector3f, Vector2i or Vector4u8 name
//	  the common instantiations.
//	• Vector2b, Vector3b, Vector4b: boolean masks with logical operators, produced
//	  by component comparisons such as Less3.
//	• Ref2, Ref3, Ref4: aliasing swizzle bundles. XZRef on a *Vector3 returns a
//	  Ref2 whose writes land in the X and Z fields of the original vector; XZ on a
//	  value returns a plain Vector2 copy.
//
// ✨ Semantics
//
//   - Every value is a plain struct: copying copies, == is exact equality.
//   - Nearly-equal predicates take an optional trailing tolerance, defaulting
//     to scalar.Tolerance[T] (exact for integers).
//   - GetNormalized returns the receiver unchanged when LengthSquared is within
//     tolerance of zero; it never divides by zero.
//   - At/SetAt panic on an out-of-range index. That is a programming error,
//     not a runtime condition.
//
// ⚙️ Wire forms
//
//	text   "1.000000, 2.000000, 3.000000"   (String / FromString / Parse3)
//	binary little-endian components, no padding (MarshalBinary)
//	JSON   {"x":1,"y":2,"z":3}
//
// Length and normalization are computed in float64 and converted back, so
// integer vectors truncate.
package vector
