// SPDX-License-Identifier: MIT

package vector

import "github.com/katalvlaran/lvmath/scalar"

// Vector4 is a four-component vector.
type Vector4[T scalar.Number] struct {
	X T `json:"x" yaml:"x"`
	Y T `json:"y" yaml:"y"`
	Z T `json:"z" yaml:"z"`
	W T `json:"w" yaml:"w"`
}

// Vector4ComponentCount is the number of scalars in a Vector4.
const Vector4ComponentCount = 4

// New4 builds a Vector4 from its components.
func New4[T scalar.Number](x, y, z, w T) Vector4[T] {
	return Vector4[T]{X: x, Y: y, Z: z, W: w}
}

// Splat4 builds a Vector4 with every component set to v.
func Splat4[T scalar.Number](v T) Vector4[T] {
	return Vector4[T]{X: v, Y: v, Z: v, W: v}
}

// FromArray4 builds a Vector4 from an array in field order.
func FromArray4[T scalar.Number](a [4]T) Vector4[T] {
	return Vector4[T]{X: a[0], Y: a[1], Z: a[2], W: a[3]}
}

// ToArray returns the components in field order.
func (v Vector4[T]) ToArray() [4]T { return [4]T{v.X, v.Y, v.Z, v.W} }

// Set overwrites every component.
func (v *Vector4[T]) Set(x, y, z, w T) { v.X, v.Y, v.Z, v.W = x, y, z, w }

// SetZero resets every component to zero.
func (v *Vector4[T]) SetZero() { *v = Vector4[T]{} }

// At returns component i (0 → X … 3 → W). It panics when i is out of range.
func (v Vector4[T]) At(i int) T {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	case 3:
		return v.W
	}
	panic(indexPanic(panicIndex4, i))
}

// SetAt writes component i. It panics when i is out of range.
func (v *Vector4[T]) SetAt(i int, value T) {
	switch i {
	case 0:
		v.X = value
	case 1:
		v.Y = value
	case 2:
		v.Z = value
	case 3:
		v.W = value
	default:
		panic(indexPanic(panicIndex4, i))
	}
}

// Add returns the component-wise sum v + o.
func (v Vector4[T]) Add(o Vector4[T]) Vector4[T] {
	return Vector4[T]{v.X + o.X, v.Y + o.Y, v.Z + o.Z, v.W + o.W}
}

// Sub returns the component-wise difference v − o.
func (v Vector4[T]) Sub(o Vector4[T]) Vector4[T] {
	return Vector4[T]{v.X - o.X, v.Y - o.Y, v.Z - o.Z, v.W - o.W}
}

// Mul returns the component-wise product.
func (v Vector4[T]) Mul(o Vector4[T]) Vector4[T] {
	return Vector4[T]{v.X * o.X, v.Y * o.Y, v.Z * o.Z, v.W * o.W}
}

// Div returns the component-wise quotient.
func (v Vector4[T]) Div(o Vector4[T]) Vector4[T] {
	return Vector4[T]{v.X / o.X, v.Y / o.Y, v.Z / o.Z, v.W / o.W}
}

// AddScalar adds s to every component.
func (v Vector4[T]) AddScalar(s T) Vector4[T] { return Vector4[T]{v.X + s, v.Y + s, v.Z + s, v.W + s} }

// SubScalar subtracts s from every component.
func (v Vector4[T]) SubScalar(s T) Vector4[T] { return Vector4[T]{v.X - s, v.Y - s, v.Z - s, v.W - s} }

// Scale multiplies every component by s.
func (v Vector4[T]) Scale(s T) Vector4[T] { return Vector4[T]{v.X * s, v.Y * s, v.Z * s, v.W * s} }

// DivScalar divides every component of v by s.
func (v Vector4[T]) DivScalar(s T) Vector4[T] { return Vector4[T]{v.X / s, v.Y / s, v.Z / s, v.W / s} }

// Negated returns -v. Unsigned components wrap around.
func (v Vector4[T]) Negated() Vector4[T] { return Vector4[T]{-v.X, -v.Y, -v.Z, -v.W} }

// AddAssign adds o to v in place.
func (v *Vector4[T]) AddAssign(o Vector4[T]) {
	v.X += o.X
	v.Y += o.Y
	v.Z += o.Z
	v.W += o.W
}

// SubAssign subtracts o from v in place.
func (v *Vector4[T]) SubAssign(o Vector4[T]) {
	v.X -= o.X
	v.Y -= o.Y
	v.Z -= o.Z
	v.W -= o.W
}

// ScaleAssign multiplies v by s in place.
func (v *Vector4[T]) ScaleAssign(s T) {
	v.X *= s
	v.Y *= s
	v.Z *= s
	v.W *= s
}

// DotProduct returns v·o.
func (v Vector4[T]) DotProduct(o Vector4[T]) T {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z + v.W*o.W
}

// LengthSquared returns the squared length of v, avoiding the square root.
func (v Vector4[T]) LengthSquared() T { return v.DotProduct(v) }

// Length returns the Euclidean length of v.
func (v Vector4[T]) Length() T { return scalar.Sqrt(v.LengthSquared()) }

// DistanceSquared returns the squared distance between v and o.
func (v Vector4[T]) DistanceSquared(o Vector4[T]) T { return o.Sub(v).LengthSquared() }

// Distance returns the Euclidean distance between v and o.
func (v Vector4[T]) Distance(o Vector4[T]) T { return o.Sub(v).Length() }

// GetNormalized returns v scaled to unit length, or v itself when
// LengthSquared is not greater than the tolerance.
func (v Vector4[T]) GetNormalized(tolerance ...T) Vector4[T] {
	ls := v.LengthSquared()
	if ls <= scalar.Tol(tolerance...) {
		return v
	}
	inv := scalar.InvSqrt(ls)
	return Vector4[T]{
		T(float64(v.X) * inv),
		T(float64(v.Y) * inv),
		T(float64(v.Z) * inv),
		T(float64(v.W) * inv),
	}
}

// Normalize is the in-place form of GetNormalized.
func (v *Vector4[T]) Normalize(tolerance ...T) { *v = v.GetNormalized(tolerance...) }

// Min returns the component-wise minimum of v and o.
func (v Vector4[T]) Min(o Vector4[T]) Vector4[T] {
	return Vector4[T]{scalar.Min(v.X, o.X), scalar.Min(v.Y, o.Y), scalar.Min(v.Z, o.Z), scalar.Min(v.W, o.W)}
}

// Max returns the component-wise maximum of v and o.
func (v Vector4[T]) Max(o Vector4[T]) Vector4[T] {
	return Vector4[T]{scalar.Max(v.X, o.X), scalar.Max(v.Y, o.Y), scalar.Max(v.Z, o.Z), scalar.Max(v.W, o.W)}
}

// Abs returns the component-wise absolute value.
func (v Vector4[T]) Abs() Vector4[T] {
	return Vector4[T]{scalar.Abs(v.X), scalar.Abs(v.Y), scalar.Abs(v.Z), scalar.Abs(v.W)}
}

// Clamp limits every component to the matching [lo, hi] range.
func (v Vector4[T]) Clamp(lo, hi Vector4[T]) Vector4[T] {
	return Vector4[T]{
		scalar.Clamp(v.X, lo.X, hi.X),
		scalar.Clamp(v.Y, lo.Y, hi.Y),
		scalar.Clamp(v.Z, lo.Z, hi.Z),
		scalar.Clamp(v.W, lo.W, hi.W),
	}
}

// IsNearlyEqual compares every component within tolerance.
func (v Vector4[T]) IsNearlyEqual(o Vector4[T], tolerance ...T) bool {
	tol := scalar.Tol(tolerance...)
	return scalar.IsNearlyEqual(v.X, o.X, tol) &&
		scalar.IsNearlyEqual(v.Y, o.Y, tol) &&
		scalar.IsNearlyEqual(v.Z, o.Z, tol) &&
		scalar.IsNearlyEqual(v.W, o.W, tol)
}

// IsEqual is exact equality, identical to ==.
func (v Vector4[T]) IsEqual(o Vector4[T]) bool { return v == o }

// IsNearlyZero reports whether every component of v is within tolerance of zero.
func (v Vector4[T]) IsNearlyZero(tolerance ...T) bool {
	return v.IsNearlyEqual(Vector4[T]{}, tolerance...)
}

// IsZero reports whether every component of v is exactly zero.
func (v Vector4[T]) IsZero() bool { return v == Vector4[T]{} }

// IsNearlyUnit reports whether Length is within tolerance of 1.
func (v Vector4[T]) IsNearlyUnit(tolerance ...T) bool {
	return scalar.IsNearlyEqual(v.Length(), 1, scalar.Tol(tolerance...))
}

// IsUnit reports whether v has length exactly 1.
func (v Vector4[T]) IsUnit() bool { return v.Length() == 1 }

// Lerp4 interpolates between a and b with t clamped to [0, 1].
func Lerp4[T scalar.Real](a, b Vector4[T], t T) Vector4[T] {
	return LerpUnclamped4(a, b, scalar.Clamp01(t))
}

// LerpUnclamped4 interpolates between a and b without restricting t.
func LerpUnclamped4[T scalar.Real](a, b Vector4[T], t T) Vector4[T] {
	return Vector4[T]{
		scalar.LerpUnclamped(a.X, b.X, t),
		scalar.LerpUnclamped(a.Y, b.Y, t),
		scalar.LerpUnclamped(a.Z, b.Z, t),
		scalar.LerpUnclamped(a.W, b.W, t),
	}
}
