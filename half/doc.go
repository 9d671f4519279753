// SPDX-License-Identifier: MIT

// Package half implements the IEEE-754 binary16 ("half precision") codec.
//
// The encoder rounds to nearest, ties to even, and produces exactly the bit
// pattern a hardware float→half conversion would: overflow saturates to ±Inf,
// tiny values become subnormals or signed zero, NaN stays a quiet NaN that keeps
// its sign and the top ten payload bits. Decoding is exact.
//
// A Half compares by raw bits, so two NaNs with the same encoding are equal
// under ==, while their decoded float32 values are not.
//
//	h := half.New(1.5)
//	h.Get()  // 1.5
//	h.Raw()  // 0x3e00
package half
