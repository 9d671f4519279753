// SPDX-License-Identifier: MIT

// Package quaternion implements rotation quaternions over float32 and float64.
//
// A Quaternion stores its scalar part W and its imaginary part X, Y, Z. The
// textual, binary and flat-index order is always W, X, Y, Z.
//
// Conventions:
//
//   - FromEuler composes rotations about X, then Y, then Z (roll, pitch, yaw)
//     from half-angle sines and cosines; GetXEuler, GetYEuler and GetZEuler
//     invert it. The pitch sine is clamped so |s| ≥ 1 maps to ±π/2 instead of
//     feeding asin a value outside its domain (gimbal lock).
//   - Mul (alias CrossProduct) is the Hamilton product. For unit quaternions
//     a.Mul(b) applies b first, then a.
//   - GetInverse is Conjugated()/DotProduct(self). The inverse of the zero
//     quaternion is Zero; nothing divides by zero.
//   - GetNormalized returns the receiver unchanged when LengthSquared is within
//     tolerance of zero.
//
// Identity[T]() and Zero[T]() build the constants for any instantiation.
package quaternion
