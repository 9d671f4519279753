// SPDX-License-Identifier: MIT

package vector

import (
	"github.com/katalvlaran/lvmath/scalar"
)

// Vector2 is a two-component vector.
type Vector2[T scalar.Number] struct {
	X T `json:"x" yaml:"x"`
	Y T `json:"y" yaml:"y"`
}

// Vector2ComponentCount is the number of scalars in a Vector2.
const Vector2ComponentCount = 2

// New2 builds a Vector2 from its components.
func New2[T scalar.Number](x, y T) Vector2[T] {
	return Vector2[T]{X: x, Y: y}
}

// Splat2 builds a Vector2 with every component set to v.
func Splat2[T scalar.Number](v T) Vector2[T] {
	return Vector2[T]{X: v, Y: v}
}

// FromArray2 builds a Vector2 from an array in field order.
func FromArray2[T scalar.Number](a [2]T) Vector2[T] {
	return Vector2[T]{X: a[0], Y: a[1]}
}

// ToArray returns the components in field order.
func (v Vector2[T]) ToArray() [2]T { return [2]T{v.X, v.Y} }

// Set overwrites every component.
func (v *Vector2[T]) Set(x, y T) { v.X, v.Y = x, y }

// SetZero resets every component to zero.
func (v *Vector2[T]) SetZero() { *v = Vector2[T]{} }

// At returns component i (0 → X, 1 → Y). It panics when i is out of range.
func (v Vector2[T]) At(i int) T {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	}
	panic(indexPanic(panicIndex2, i))
}

// SetAt writes component i. It panics when i is out of range.
func (v *Vector2[T]) SetAt(i int, value T) {
	switch i {
	case 0:
		v.X = value
	case 1:
		v.Y = value
	default:
		panic(indexPanic(panicIndex2, i))
	}
}

// Add returns v + o.
func (v Vector2[T]) Add(o Vector2[T]) Vector2[T] { return Vector2[T]{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vector2[T]) Sub(o Vector2[T]) Vector2[T] { return Vector2[T]{v.X - o.X, v.Y - o.Y} }

// Mul returns the component-wise product.
func (v Vector2[T]) Mul(o Vector2[T]) Vector2[T] { return Vector2[T]{v.X * o.X, v.Y * o.Y} }

// Div returns the component-wise quotient.
func (v Vector2[T]) Div(o Vector2[T]) Vector2[T] { return Vector2[T]{v.X / o.X, v.Y / o.Y} }

// AddScalar adds s to every component.
func (v Vector2[T]) AddScalar(s T) Vector2[T] { return Vector2[T]{v.X + s, v.Y + s} }

// SubScalar subtracts s from every component.
func (v Vector2[T]) SubScalar(s T) Vector2[T] { return Vector2[T]{v.X - s, v.Y - s} }

// Scale multiplies every component by s.
func (v Vector2[T]) Scale(s T) Vector2[T] { return Vector2[T]{v.X * s, v.Y * s} }

// DivScalar divides every component of v by s.
func (v Vector2[T]) DivScalar(s T) Vector2[T] { return Vector2[T]{v.X / s, v.Y / s} }

// Negated returns -v. Unsigned components wrap around.
func (v Vector2[T]) Negated() Vector2[T] { return Vector2[T]{-v.X, -v.Y} }

// AddAssign adds o to v in place.
func (v *Vector2[T]) AddAssign(o Vector2[T]) {
	v.X += o.X
	v.Y += o.Y
}

// SubAssign subtracts o from v in place.
func (v *Vector2[T]) SubAssign(o Vector2[T]) {
	v.X -= o.X
	v.Y -= o.Y
}

// ScaleAssign multiplies v by s in place.
func (v *Vector2[T]) ScaleAssign(s T) {
	v.X *= s
	v.Y *= s
}

// DotProduct returns v·o.
func (v Vector2[T]) DotProduct(o Vector2[T]) T { return v.X*o.X + v.Y*o.Y }

// CrossProduct returns the z component of the 3D cross product, i.e. the
// signed area of the parallelogram spanned by v and o.
func (v Vector2[T]) CrossProduct(o Vector2[T]) T { return v.X*o.Y - v.Y*o.X }

// LengthSquared returns the squared length of v, avoiding the square root.
func (v Vector2[T]) LengthSquared() T { return v.X*v.X + v.Y*v.Y }

// Length returns the Euclidean length of v.
func (v Vector2[T]) Length() T { return scalar.Sqrt(v.LengthSquared()) }

// DistanceSquared returns the squared distance between v and o.
func (v Vector2[T]) DistanceSquared(o Vector2[T]) T { return o.Sub(v).LengthSquared() }

// Distance returns the Euclidean distance between v and o.
func (v Vector2[T]) Distance(o Vector2[T]) T { return o.Sub(v).Length() }

// GetNormalized returns v scaled to unit length, or v itself when
// LengthSquared is not greater than the tolerance.
func (v Vector2[T]) GetNormalized(tolerance ...T) Vector2[T] {
	ls := v.LengthSquared()
	if ls <= scalar.Tol(tolerance...) {
		return v
	}
	inv := scalar.InvSqrt(ls)
	return Vector2[T]{T(float64(v.X) * inv), T(float64(v.Y) * inv)}
}

// Normalize is the in-place form of GetNormalized.
func (v *Vector2[T]) Normalize(tolerance ...T) { *v = v.GetNormalized(tolerance...) }

// Min returns the component-wise minimum.
func (v Vector2[T]) Min(o Vector2[T]) Vector2[T] {
	return Vector2[T]{scalar.Min(v.X, o.X), scalar.Min(v.Y, o.Y)}
}

// Max returns the component-wise maximum.
func (v Vector2[T]) Max(o Vector2[T]) Vector2[T] {
	return Vector2[T]{scalar.Max(v.X, o.X), scalar.Max(v.Y, o.Y)}
}

// Abs returns the component-wise absolute value.
func (v Vector2[T]) Abs() Vector2[T] { return Vector2[T]{scalar.Abs(v.X), scalar.Abs(v.Y)} }

// Clamp limits every component to the matching [lo, hi] range.
func (v Vector2[T]) Clamp(lo, hi Vector2[T]) Vector2[T] {
	return Vector2[T]{scalar.Clamp(v.X, lo.X, hi.X), scalar.Clamp(v.Y, lo.Y, hi.Y)}
}

// Extend appends a Z component.
func (v Vector2[T]) Extend(z T) Vector3[T] { return Vector3[T]{v.X, v.Y, z} }

// IsNearlyEqual compares every component within tolerance.
func (v Vector2[T]) IsNearlyEqual(o Vector2[T], tolerance ...T) bool {
	tol := scalar.Tol(tolerance...)
	return scalar.IsNearlyEqual(v.X, o.X, tol) && scalar.IsNearlyEqual(v.Y, o.Y, tol)
}

// IsEqual is exact equality, identical to ==.
func (v Vector2[T]) IsEqual(o Vector2[T]) bool { return v == o }

// IsNearlyZero reports whether every component of v is within tolerance of zero.
func (v Vector2[T]) IsNearlyZero(tolerance ...T) bool {
	return v.IsNearlyEqual(Vector2[T]{}, tolerance...)
}

// IsZero reports whether every component of v is exactly zero.
func (v Vector2[T]) IsZero() bool { return v == Vector2[T]{} }

// IsNearlyUnit reports whether Length is within tolerance of 1.
func (v Vector2[T]) IsNearlyUnit(tolerance ...T) bool {
	return scalar.IsNearlyEqual(v.Length(), 1, scalar.Tol(tolerance...))
}

// IsUnit reports whether v has length exactly 1.
func (v Vector2[T]) IsUnit() bool { return v.Length() == 1 }

// Lerp2 interpolates between a and b with t clamped to [0, 1].
func Lerp2[T scalar.Real](a, b Vector2[T], t T) Vector2[T] {
	return LerpUnclamped2(a, b, scalar.Clamp01(t))
}

// LerpUnclamped2 interpolates between a and b without restricting t.
func LerpUnclamped2[T scalar.Real](a, b Vector2[T], t T) Vector2[T] {
	return Vector2[T]{scalar.LerpUnclamped(a.X, b.X, t), scalar.LerpUnclamped(a.Y, b.Y, t)}
}
