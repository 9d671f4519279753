// SPDX-License-Identifier: MIT

package vector

import "github.com/katalvlaran/lvmath/scalar"

// Vector3 is a three-component vector.
type Vector3[T scalar.Number] struct {
	X T `json:"x" yaml:"x"`
	Y T `json:"y" yaml:"y"`
	Z T `json:"z" yaml:"z"`
}

// Vector3ComponentCount is the number of scalars in a Vector3.
const Vector3ComponentCount = 3

// New3 builds a Vector3 from its components.
func New3[T scalar.Number](x, y, z T) Vector3[T] {
	return Vector3[T]{X: x, Y: y, Z: z}
}

// Splat3 builds a Vector3 with every component set to v.
func Splat3[T scalar.Number](v T) Vector3[T] {
	return Vector3[T]{X: v, Y: v, Z: v}
}

// FromArray3 builds a Vector3 from an array in field order.
func FromArray3[T scalar.Number](a [3]T) Vector3[T] {
	return Vector3[T]{X: a[0], Y: a[1], Z: a[2]}
}

// ToArray returns the components in field order.
func (v Vector3[T]) ToArray() [3]T { return [3]T{v.X, v.Y, v.Z} }

// Set overwrites every component.
func (v *Vector3[T]) Set(x, y, z T) { v.X, v.Y, v.Z = x, y, z }

// SetZero resets every component to zero.
func (v *Vector3[T]) SetZero() { *v = Vector3[T]{} }

// At returns component i (0 → X, 1 → Y, 2 → Z). It panics when i is out of range.
func (v Vector3[T]) At(i int) T {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	}
	panic(indexPanic(panicIndex3, i))
}

// SetAt writes component i. It panics when i is out of range.
func (v *Vector3[T]) SetAt(i int, value T) {
	switch i {
	case 0:
		v.X = value
	case 1:
		v.Y = value
	case 2:
		v.Z = value
	default:
		panic(indexPanic(panicIndex3, i))
	}
}

// Add returns the component-wise sum v + o.
func (v Vector3[T]) Add(o Vector3[T]) Vector3[T] { return Vector3[T]{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns the component-wise difference v − o.
func (v Vector3[T]) Sub(o Vector3[T]) Vector3[T] { return Vector3[T]{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Mul returns the component-wise product.
func (v Vector3[T]) Mul(o Vector3[T]) Vector3[T] { return Vector3[T]{v.X * o.X, v.Y * o.Y, v.Z * o.Z} }

// Div returns the component-wise quotient.
func (v Vector3[T]) Div(o Vector3[T]) Vector3[T] { return Vector3[T]{v.X / o.X, v.Y / o.Y, v.Z / o.Z} }

// AddScalar adds s to every component.
func (v Vector3[T]) AddScalar(s T) Vector3[T] { return Vector3[T]{v.X + s, v.Y + s, v.Z + s} }

// SubScalar subtracts s from every component.
func (v Vector3[T]) SubScalar(s T) Vector3[T] { return Vector3[T]{v.X - s, v.Y - s, v.Z - s} }

// Scale multiplies every component by s.
func (v Vector3[T]) Scale(s T) Vector3[T] { return Vector3[T]{v.X * s, v.Y * s, v.Z * s} }

// DivScalar divides every component of v by s.
func (v Vector3[T]) DivScalar(s T) Vector3[T] { return Vector3[T]{v.X / s, v.Y / s, v.Z / s} }

// Negated returns -v. Unsigned components wrap around.
func (v Vector3[T]) Negated() Vector3[T] { return Vector3[T]{-v.X, -v.Y, -v.Z} }

// AddAssign adds o to v in place.
func (v *Vector3[T]) AddAssign(o Vector3[T]) {
	v.X += o.X
	v.Y += o.Y
	v.Z += o.Z
}

// SubAssign subtracts o from v in place.
func (v *Vector3[T]) SubAssign(o Vector3[T]) {
	v.X -= o.X
	v.Y -= o.Y
	v.Z -= o.Z
}

// ScaleAssign multiplies v by s in place.
func (v *Vector3[T]) ScaleAssign(s T) {
	v.X *= s
	v.Y *= s
	v.Z *= s
}

// DotProduct returns v·o.
func (v Vector3[T]) DotProduct(o Vector3[T]) T { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// CrossProduct returns v×o, perpendicular to both operands (right-handed).
func (v Vector3[T]) CrossProduct(o Vector3[T]) Vector3[T] {
	return Vector3[T]{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// LengthSquared returns the squared length of v, avoiding the square root.
func (v Vector3[T]) LengthSquared() T { return v.X*v.X + v.Y*v.Y + v.Z*v.Z }

// Length returns the Euclidean length of v.
func (v Vector3[T]) Length() T { return scalar.Sqrt(v.LengthSquared()) }

// DistanceSquared returns the squared distance between v and o.
func (v Vector3[T]) DistanceSquared(o Vector3[T]) T { return o.Sub(v).LengthSquared() }

// Distance returns the Euclidean distance between v and o.
func (v Vector3[T]) Distance(o Vector3[T]) T { return o.Sub(v).Length() }

// GetNormalized returns v scaled to unit length, or v itself when
// LengthSquared is not greater than the tolerance.
func (v Vector3[T]) GetNormalized(tolerance ...T) Vector3[T] {
	ls := v.LengthSquared()
	if ls <= scalar.Tol(tolerance...) {
		return v
	}
	inv := scalar.InvSqrt(ls)
	return Vector3[T]{T(float64(v.X) * inv), T(float64(v.Y) * inv), T(float64(v.Z) * inv)}
}

// Normalize is the in-place form of GetNormalized.
func (v *Vector3[T]) Normalize(tolerance ...T) { *v = v.GetNormalized(tolerance...) }

// Min returns the component-wise minimum of v and o.
func (v Vector3[T]) Min(o Vector3[T]) Vector3[T] {
	return Vector3[T]{scalar.Min(v.X, o.X), scalar.Min(v.Y, o.Y), scalar.Min(v.Z, o.Z)}
}

// Max returns the component-wise maximum of v and o.
func (v Vector3[T]) Max(o Vector3[T]) Vector3[T] {
	return Vector3[T]{scalar.Max(v.X, o.X), scalar.Max(v.Y, o.Y), scalar.Max(v.Z, o.Z)}
}

// Abs returns the component-wise absolute value.
func (v Vector3[T]) Abs() Vector3[T] {
	return Vector3[T]{scalar.Abs(v.X), scalar.Abs(v.Y), scalar.Abs(v.Z)}
}

// Clamp limits every component to the matching [lo, hi] range.
func (v Vector3[T]) Clamp(lo, hi Vector3[T]) Vector3[T] {
	return Vector3[T]{scalar.Clamp(v.X, lo.X, hi.X), scalar.Clamp(v.Y, lo.Y, hi.Y), scalar.Clamp(v.Z, lo.Z, hi.Z)}
}

// Extend appends a W component.
func (v Vector3[T]) Extend(w T) Vector4[T] { return Vector4[T]{v.X, v.Y, v.Z, w} }

// IsNearlyEqual compares every component within tolerance.
func (v Vector3[T]) IsNearlyEqual(o Vector3[T], tolerance ...T) bool {
	tol := scalar.Tol(tolerance...)
	return scalar.IsNearlyEqual(v.X, o.X, tol) &&
		scalar.IsNearlyEqual(v.Y, o.Y, tol) &&
		scalar.IsNearlyEqual(v.Z, o.Z, tol)
}

// IsEqual is exact equality, identical to ==.
func (v Vector3[T]) IsEqual(o Vector3[T]) bool { return v == o }

// IsNearlyZero reports whether every component of v is within tolerance of zero.
func (v Vector3[T]) IsNearlyZero(tolerance ...T) bool {
	return v.IsNearlyEqual(Vector3[T]{}, tolerance...)
}

// IsZero reports whether every component of v is exactly zero.
func (v Vector3[T]) IsZero() bool { return v == Vector3[T]{} }

// IsNearlyUnit reports whether Length is within tolerance of 1.
func (v Vector3[T]) IsNearlyUnit(tolerance ...T) bool {
	return scalar.IsNearlyEqual(v.Length(), 1, scalar.Tol(tolerance...))
}

// IsUnit reports whether v has length exactly 1.
func (v Vector3[T]) IsUnit() bool { return v.Length() == 1 }

// Lerp3 interpolates between a and b with t clamped to [0, 1].
func Lerp3[T scalar.Real](a, b Vector3[T], t T) Vector3[T] {
	return LerpUnclamped3(a, b, scalar.Clamp01(t))
}

// LerpUnclamped3 interpolates between a and b without restricting t.
func LerpUnclamped3[T scalar.Real](a, b Vector3[T], t T) Vector3[T] {
	return Vector3[T]{
		scalar.LerpUnclamped(a.X, b.X, t),
		scalar.LerpUnclamped(a.Y, b.Y, t),
		scalar.LerpUnclamped(a.Z, b.Z, t),
	}
}
