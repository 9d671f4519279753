// SPDX-License-Identifier: MIT

package scalar

import "math"

// Abs returns |v|. Unsigned values are returned unchanged.
func Abs[T Number](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// AbsDiff returns |a-b| without wrapping around for unsigned types.
func AbsDiff[T Number](a, b T) T {
	if a > b {
		return a - b
	}
	return b - a
}

// Min returns the smaller of a and b.
func Min[T Number](a, b T) T {
	if b < a {
		return b
	}
	return a
}

// Max returns the larger of a and b.
func Max[T Number](a, b T) T {
	if b > a {
		return b
	}
	return a
}

// Clamp limits v to [lo, hi].
func Clamp[T Number](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp01 limits v to [0, 1].
func Clamp01[T Real](v T) T {
	return Clamp(v, 0, 1)
}

// Lerp interpolates between a and b with t clamped to [0, 1].
func Lerp[T Real](a, b, t T) T {
	return LerpUnclamped(a, b, Clamp01(t))
}

// LerpUnclamped interpolates between a and b without restricting t,
// so values outside [0, 1] extrapolate.
func LerpUnclamped[T Real](a, b, t T) T {
	return a + (b-a)*t
}

// Sqrt returns the square root of v computed in float64 precision.
func Sqrt[T Number](v T) T {
	return T(math.Sqrt(float64(v)))
}

// InvSqrt returns 1/sqrt(v) in float64 precision.
func InvSqrt[T Number](v T) float64 {
	return 1 / math.Sqrt(float64(v))
}

// Sin, Cos, Asin and Atan2 lift the float64 math routines to T.

// Sin is math.Sin for any Real.
func Sin[T Real](v T) T { return T(math.Sin(float64(v))) }

// Cos is math.Cos for any Real.
func Cos[T Real](v T) T { return T(math.Cos(float64(v))) }

// Asin is math.Asin for any Real.
func Asin[T Real](v T) T { return T(math.Asin(float64(v))) }

// Atan2 is math.Atan2 for any Real.
func Atan2[T Real](y, x T) T { return T(math.Atan2(float64(y), float64(x))) }

// CopySign returns a value with the magnitude of f and the sign of sign.
func CopySign[T Real](f, sign T) T {
	return T(math.Copysign(float64(f), float64(sign)))
}

// Pi returns π converted to T.
func Pi[T Real]() T {
	p := math.Pi
	return T(p)
}

// IsFinite reports whether v is neither NaN nor ±Inf. Integers are always finite.
func IsFinite[T Number](v T) bool {
	if !IsFloat[T]() {
		return true
	}
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
