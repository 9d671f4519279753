// SPDX-License-Identifier: MIT

package quaternion

import (
	"github.com/katalvlaran/lvmath/scalar"
	"github.com/katalvlaran/lvmath/vector"
)

// Quaternion is W + Xi + Yj + Zk.
type Quaternion[T scalar.Real] struct {
	W T `json:"w" yaml:"w"`
	X T `json:"x" yaml:"x"`
	Y T `json:"y" yaml:"y"`
	Z T `json:"z" yaml:"z"`
}

// ComponentCount is the number of scalars in a Quaternion.
const ComponentCount = 4

// Identity returns (1, 0, 0, 0). Each call builds a fresh value, so there is
// no shared instance a caller could modify.
func Identity[T scalar.Real]() Quaternion[T] { return Quaternion[T]{W: 1} }

// Zero returns (0, 0, 0, 0).
func Zero[T scalar.Real]() Quaternion[T] { return Quaternion[T]{} }

// New builds a quaternion from its scalar and imaginary parts.
func New[T scalar.Real](w, x, y, z T) Quaternion[T] {
	return Quaternion[T]{W: w, X: x, Y: y, Z: z}
}

// FromArray reads W, X, Y, Z in that order.
func FromArray[T scalar.Real](a [ComponentCount]T) Quaternion[T] {
	return Quaternion[T]{a[0], a[1], a[2], a[3]}
}

// FromEuler builds the rotation about X by x, then Y by y, then Z by z (radians).
func FromEuler[T scalar.Real](x, y, z T) Quaternion[T] {
	sx, cx := scalar.Sin(x/2), scalar.Cos(x/2)
	sy, cy := scalar.Sin(y/2), scalar.Cos(y/2)
	sz, cz := scalar.Sin(z/2), scalar.Cos(z/2)

	return Quaternion[T]{
		W: cx*cy*cz + sx*sy*sz,
		X: sx*cy*cz - cx*sy*sz,
		Y: cx*sy*cz + sx*cy*sz,
		Z: cx*cy*sz - sx*sy*cz,
	}
}

// FromEulerVector is FromEuler(v.X, v.Y, v.Z).
func FromEulerVector[T scalar.Real](v vector.Vector3[T]) Quaternion[T] {
	return FromEuler(v.X, v.Y, v.Z)
}

// ToArray returns W, X, Y, Z in that order.
func (q Quaternion[T]) ToArray() [ComponentCount]T { return [ComponentCount]T{q.W, q.X, q.Y, q.Z} }

// Set assigns all four components.
func (q *Quaternion[T]) Set(w, x, y, z T) { q.W, q.X, q.Y, q.Z = w, x, y, z }

// At returns component i in W, X, Y, Z order. It panics when i is outside [0, 4).
func (q Quaternion[T]) At(i int) T {
	return *q.component(i)
}

// SetAt writes component i in W, X, Y, Z order.
func (q *Quaternion[T]) SetAt(i int, v T) {
	*q.component(i) = v
}

func (q *Quaternion[T]) component(i int) *T {
	switch i {
	case 0:
		return &q.W
	case 1:
		return &q.X
	case 2:
		return &q.Y
	case 3:
		return &q.Z
	}
	panic(indexPanic(i))
}

// Vector returns the imaginary part as a Vector3.
func (q Quaternion[T]) Vector() vector.Vector3[T] { return vector.New3(q.X, q.Y, q.Z) }

// GetXEuler returns the rotation about X (roll).
func (q Quaternion[T]) GetXEuler() T {
	sinr := 2 * (q.W*q.X + q.Y*q.Z)
	cosr := 1 - 2*(q.X*q.X+q.Y*q.Y)
	return scalar.Atan2(sinr, cosr)
}

// GetYEuler returns the rotation about Y (pitch), saturating at ±π/2.
func (q Quaternion[T]) GetYEuler() T {
	sinp := 2 * (q.W*q.Y - q.Z*q.X)
	if scalar.Abs(sinp) >= 1 {
		return scalar.CopySign(scalar.Pi[T]()/2, sinp)
	}
	return scalar.Asin(sinp)
}

// GetZEuler returns the rotation about Z (yaw).
func (q Quaternion[T]) GetZEuler() T {
	siny := 2 * (q.W*q.Z + q.X*q.Y)
	cosy := 1 - 2*(q.Y*q.Y+q.Z*q.Z)
	return scalar.Atan2(siny, cosy)
}

// ToEulerAngles returns (GetXEuler, GetYEuler, GetZEuler).
func (q Quaternion[T]) ToEulerAngles() vector.Vector3[T] {
	return vector.New3(q.GetXEuler(), q.GetYEuler(), q.GetZEuler())
}

// Conjugated negates the imaginary part.
func (q Quaternion[T]) Conjugated() Quaternion[T] { return Quaternion[T]{q.W, -q.X, -q.Y, -q.Z} }

// Conjugate negates the imaginary part in place.
func (q *Quaternion[T]) Conjugate() { *q = q.Conjugated() }

// Negated negates all four components. It is the same rotation as q.
func (q Quaternion[T]) Negated() Quaternion[T] { return Quaternion[T]{-q.W, -q.X, -q.Y, -q.Z} }

// Add returns the component-wise sum q + o. The result is generally not a
// unit quaternion even when both operands are; normalize before rotating.
func (q Quaternion[T]) Add(o Quaternion[T]) Quaternion[T] {
	return Quaternion[T]{q.W + o.W, q.X + o.X, q.Y + o.Y, q.Z + o.Z}
}

// Sub returns q − o.
func (q Quaternion[T]) Sub(o Quaternion[T]) Quaternion[T] {
	return Quaternion[T]{q.W - o.W, q.X - o.X, q.Y - o.Y, q.Z - o.Z}
}

// Scale multiplies all four components by s.
func (q Quaternion[T]) Scale(s T) Quaternion[T] {
	return Quaternion[T]{q.W * s, q.X * s, q.Y * s, q.Z * s}
}

// DivScalar divides all four components by s.
func (q Quaternion[T]) DivScalar(s T) Quaternion[T] {
	return Quaternion[T]{q.W / s, q.X / s, q.Y / s, q.Z / s}
}

// DotProduct is the four-component dot product.
func (q Quaternion[T]) DotProduct(o Quaternion[T]) T {
	return q.W*o.W + q.X*o.X + q.Y*o.Y + q.Z*o.Z
}

// CrossProduct returns the Hamilton product q·o.
func (q Quaternion[T]) CrossProduct(o Quaternion[T]) Quaternion[T] {
	return Quaternion[T]{
		W: q.W*o.W - q.X*o.X - q.Y*o.Y - q.Z*o.Z,
		X: q.W*o.X + q.X*o.W + q.Y*o.Z - q.Z*o.Y,
		Y: q.W*o.Y + q.Y*o.W + q.Z*o.X - q.X*o.Z,
		Z: q.W*o.Z + q.Z*o.W + q.X*o.Y - q.Y*o.X,
	}
}

// Mul is CrossProduct.
func (q Quaternion[T]) Mul(o Quaternion[T]) Quaternion[T] { return q.CrossProduct(o) }

// GetInverse returns Conjugated()/DotProduct(q); the zero quaternion maps to Zero.
func (q Quaternion[T]) GetInverse() Quaternion[T] {
	ls := q.LengthSquared()
	if ls == 0 {
		return Zero[T]()
	}
	return q.Conjugated().DivScalar(ls)
}

// Inverse replaces q with GetInverse().
func (q *Quaternion[T]) Inverse() { *q = q.GetInverse() }

// RotateVector applies the rotation q·(0, v)·q⁻¹ to v.
func (q Quaternion[T]) RotateVector(v vector.Vector3[T]) vector.Vector3[T] {
	p := Quaternion[T]{X: v.X, Y: v.Y, Z: v.Z}
	return q.Mul(p).Mul(q.GetInverse()).Vector()
}

// LengthSquared returns the squared length of q, avoiding the square root.
func (q Quaternion[T]) LengthSquared() T { return q.DotProduct(q) }

// Length returns the Euclidean length of q.
func (q Quaternion[T]) Length() T { return scalar.Sqrt(q.LengthSquared()) }

// GetNormalized returns q scaled to unit length, or q itself when
// LengthSquared is not greater than the tolerance.
func (q Quaternion[T]) GetNormalized(tolerance ...T) Quaternion[T] {
	ls := q.LengthSquared()
	if ls <= scalar.Tol(tolerance...) {
		return q
	}
	return q.Scale(T(scalar.InvSqrt(ls)))
}

// Normalize replaces q with GetNormalized(tolerance...).
func (q *Quaternion[T]) Normalize(tolerance ...T) { *q = q.GetNormalized(tolerance...) }

// IsNearlyEqual compares every component within tolerance.
func (q Quaternion[T]) IsNearlyEqual(o Quaternion[T], tolerance ...T) bool {
	tol := scalar.Tol(tolerance...)
	return scalar.IsNearlyEqual(q.W, o.W, tol) &&
		scalar.IsNearlyEqual(q.X, o.X, tol) &&
		scalar.IsNearlyEqual(q.Y, o.Y, tol) &&
		scalar.IsNearlyEqual(q.Z, o.Z, tol)
}

// IsEqual is exact equality, identical to ==.
func (q Quaternion[T]) IsEqual(o Quaternion[T]) bool { return q == o }

// IsNearlyZero reports whether every component is within tolerance of zero.
func (q Quaternion[T]) IsNearlyZero(tolerance ...T) bool {
	return q.IsNearlyEqual(Quaternion[T]{}, tolerance...)
}

// IsZero reports whether q is exactly (0, 0, 0, 0).
func (q Quaternion[T]) IsZero() bool { return q == Quaternion[T]{} }

// IsNearlyUnit reports whether Length is within tolerance of 1.
func (q Quaternion[T]) IsNearlyUnit(tolerance ...T) bool {
	return scalar.IsNearlyEqual(q.Length(), 1, scalar.Tol(tolerance...))
}

// IsUnit reports whether q has length exactly 1.
func (q Quaternion[T]) IsUnit() bool { return q.Length() == 1 }

// IsReal reports whether the imaginary part is nearly zero.
func (q Quaternion[T]) IsReal(tolerance ...T) bool {
	return q.Vector().IsNearlyZero(tolerance...)
}

// IsImaginary reports whether W is nearly zero while the imaginary part is not.
// The zero quaternion is real but not imaginary, so IsImaginary is not !IsReal.
func (q Quaternion[T]) IsImaginary(tolerance ...T) bool {
	tol := scalar.Tol(tolerance...)
	return scalar.IsNearlyZero(q.W, tol) && !q.Vector().IsNearlyZero(tol)
}
