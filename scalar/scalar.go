// SPDX-License-Identifier: MIT

package scalar

import (
	"reflect"

	"golang.org/x/exp/constraints"
)

// Real is satisfied by the floating-point scalars.
type Real interface {
	constraints.Float
}

// Signed is satisfied by the signed integers. int is encoded with its
// platform width.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is satisfied by the unsigned integers except uintptr.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integer is satisfied by every signed or unsigned integer.
type Integer interface {
	Signed | Unsigned
}

// Number is the widest scalar constraint accepted by vectors and rectangles.
type Number interface {
	Integer | Real
}

// Default tolerances per scalar family.
const (
	// Float32Tolerance is the default absolute tolerance for float32 comparisons.
	Float32Tolerance float32 = 1e-5

	// Float64Tolerance is the default absolute tolerance for float64 comparisons.
	Float64Tolerance float64 = 1e-9
)

// Kind reports the underlying reflect.Kind of T. The predeclared scalars
// resolve through a type switch; only named types such as
// `type meters float64` go through reflect.
func Kind[T Number]() reflect.Kind {
	var zero T
	switch any(zero).(type) {
	case float32:
		return reflect.Float32
	case float64:
		return reflect.Float64
	case int:
		return reflect.Int
	case int8:
		return reflect.Int8
	case int16:
		return reflect.Int16
	case int32:
		return reflect.Int32
	case int64:
		return reflect.Int64
	case uint:
		return reflect.Uint
	case uint8:
		return reflect.Uint8
	case uint16:
		return reflect.Uint16
	case uint32:
		return reflect.Uint32
	case uint64:
		return reflect.Uint64
	}
	return reflect.TypeOf((*T)(nil)).Elem().Kind()
}

// IsFloat reports whether T is a floating-point scalar.
func IsFloat[T Number]() bool {
	k := Kind[T]()
	return k == reflect.Float32 || k == reflect.Float64
}

// Tolerance returns the default comparison tolerance of T.
// Integers compare exactly, so their tolerance is 0.
func Tolerance[T Number]() T {
	var zero T
	switch Kind[T]() {
	case reflect.Float32:
		f := Float32Tolerance
		return T(f)
	case reflect.Float64:
		f := Float64Tolerance
		return T(f)
	default:
		return zero
	}
}

// Tol resolves an optional trailing tolerance argument: the first element when
// present, Tolerance[T] otherwise.
func Tol[T Number](tolerance ...T) T {
	if len(tolerance) > 0 {
		return tolerance[0]
	}
	return Tolerance[T]()
}

// IsNearlyEqual reports whether |a-b| ≤ tol. NaN never compares nearly equal.
func IsNearlyEqual[T Number](a, b, tol T) bool {
	return AbsDiff(a, b) <= tol
}

// IsNearlyZero reports whether |v| ≤ tol.
func IsNearlyZero[T Number](v, tol T) bool {
	return Abs(v) <= tol
}
