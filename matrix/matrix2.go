// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/lvmath/scalar"
	"github.com/katalvlaran/lvmath/vector"
)

// Matrix2 is a 2×2 row-major matrix.
type Matrix2[T scalar.Real] struct {
	R0, R1 vector.Vector2[T]
}

// Shape of Matrix2.
const (
	Matrix2RowCount       = 2
	Matrix2ColumnCount    = 2
	Matrix2ComponentCount = Matrix2RowCount * Matrix2ColumnCount
)

// New2 builds a Matrix2 from its elements in row-major order.
func New2[T scalar.Real](r00, r01, r10, r11 T) Matrix2[T] {
	return Matrix2[T]{
		R0: vector.Vector2[T]{X: r00, Y: r01},
		R1: vector.Vector2[T]{X: r10, Y: r11},
	}
}

// FromRows2 builds a Matrix2 from its rows.
func FromRows2[T scalar.Real](r0, r1 vector.Vector2[T]) Matrix2[T] {
	return Matrix2[T]{R0: r0, R1: r1}
}

// FromArray2 builds a Matrix2 from a flat row-major array.
func FromArray2[T scalar.Real](a [Matrix2ComponentCount]T) Matrix2[T] {
	return New2(a[0], a[1], a[2], a[3])
}

// Identity2 returns the 2×2 identity.
func Identity2[T scalar.Real]() Matrix2[T] { return New2[T](1, 0, 0, 1) }

// Zero2 returns the 2x2 zero matrix.
func Zero2[T scalar.Real]() Matrix2[T] { return Matrix2[T]{} }

// ToArray flattens m in row-major order.
func (m Matrix2[T]) ToArray() [Matrix2ComponentCount]T {
	return [Matrix2ComponentCount]T{m.R0.X, m.R0.Y, m.R1.X, m.R1.Y}
}

func (m *Matrix2[T]) row(i int) *vector.Vector2[T] {
	switch i {
	case 0:
		return &m.R0
	case 1:
		return &m.R1
	}
	panic(indexPanic(panicRow2, i))
}

// At returns the element at flat row-major index i. It panics when i is out of range.
func (m Matrix2[T]) At(i int) T {
	checkFlat(panicIndex2, i, Matrix2ComponentCount)
	return m.row(i / Matrix2ColumnCount).At(i % Matrix2ColumnCount)
}

// SetAt writes the element at flat row-major index i.
func (m *Matrix2[T]) SetAt(i int, v T) {
	checkFlat(panicIndex2, i, Matrix2ComponentCount)
	m.row(i / Matrix2ColumnCount).SetAt(i%Matrix2ColumnCount, v)
}

// Get returns the element at (row, col).
func (m Matrix2[T]) Get(row, col int) T {
	checkCell(panicIndex2, row, col, Matrix2RowCount)
	return m.row(row).At(col)
}

// SetElement writes the element at (row, col).
func (m *Matrix2[T]) SetElement(row, col int, v T) {
	checkCell(panicIndex2, row, col, Matrix2RowCount)
	m.row(row).SetAt(col, v)
}

// Row returns a copy of row i.
func (m Matrix2[T]) Row(i int) vector.Vector2[T] { return *m.row(i) }

// Column returns a copy of column i.
func (m Matrix2[T]) Column(i int) vector.Vector2[T] {
	return vector.Vector2[T]{X: m.R0.At(i), Y: m.R1.At(i)}
}

// ColumnRef aliases column i.
func (m *Matrix2[T]) ColumnRef(i int) vector.Ref2[T] {
	return vector.Ref2[T]{A: componentPtr2(&m.R0, i), B: componentPtr2(&m.R1, i)}
}

// SetZero resets every element.
func (m *Matrix2[T]) SetZero() { *m = Matrix2[T]{} }

// SetIdentity overwrites m with the identity.
func (m *Matrix2[T]) SetIdentity() { *m = Identity2[T]() }

// Add returns the element-wise sum m + o.
func (m Matrix2[T]) Add(o Matrix2[T]) Matrix2[T] { return Matrix2[T]{m.R0.Add(o.R0), m.R1.Add(o.R1)} }

// Sub returns the element-wise difference m − o.
func (m Matrix2[T]) Sub(o Matrix2[T]) Matrix2[T] { return Matrix2[T]{m.R0.Sub(o.R0), m.R1.Sub(o.R1)} }

// Scale multiplies every element by s.
func (m Matrix2[T]) Scale(s T) Matrix2[T] { return Matrix2[T]{m.R0.Scale(s), m.R1.Scale(s)} }

// Mul returns the matrix product m·o.
func (m Matrix2[T]) Mul(o Matrix2[T]) Matrix2[T] {
	return Matrix2[T]{
		R0: o.R0.Scale(m.R0.X).Add(o.R1.Scale(m.R0.Y)),
		R1: o.R0.Scale(m.R1.X).Add(o.R1.Scale(m.R1.Y)),
	}
}

// MulVector returns m·v with v as a column vector.
func (m Matrix2[T]) MulVector(v vector.Vector2[T]) vector.Vector2[T] {
	return vector.Vector2[T]{X: m.R0.DotProduct(v), Y: m.R1.DotProduct(v)}
}

// VectorMul returns vᵀ·m with v as a row vector.
func (m Matrix2[T]) VectorMul(v vector.Vector2[T]) vector.Vector2[T] {
	return m.R0.Scale(v.X).Add(m.R1.Scale(v.Y))
}

// Determinant returns ad − bc.
func (m Matrix2[T]) Determinant() T {
	return m.R0.X*m.R1.Y - m.R0.Y*m.R1.X
}

// GetTransposed returns mᵀ.
func (m Matrix2[T]) GetTransposed() Matrix2[T] {
	return New2(m.R0.X, m.R1.X, m.R0.Y, m.R1.Y)
}

// Transpose transposes m in place.
func (m *Matrix2[T]) Transpose() { *m = m.GetTransposed() }

// GetAdjoint returns the matrix of signed cofactors.
func (m Matrix2[T]) GetAdjoint() Matrix2[T] {
	return New2(m.R1.Y, -m.R1.X, -m.R0.Y, m.R0.X)
}

// GetInverted returns m⁻¹, or m itself when |det| ≤ tolerance.
// Callers that must detect singularity check Determinant first.
func (m Matrix2[T]) GetInverted(tolerance ...T) Matrix2[T] {
	det := m.Determinant()
	if scalar.IsNearlyZero(det, scalar.Tol(tolerance...)) {
		return m
	}
	return m.GetAdjoint().GetTransposed().Scale(1 / det)
}

// Invert is the in-place form of GetInverted.
func (m *Matrix2[T]) Invert(tolerance ...T) { *m = m.GetInverted(tolerance...) }

// Trace returns the sum of the diagonal.
func (m Matrix2[T]) Trace() T { return m.R0.X + m.R1.Y }

// IsEqual reports exact equality with o.
func (m Matrix2[T]) IsEqual(o Matrix2[T]) bool { return m == o }

// IsNearlyEqual reports whether every element of m is within tolerance of the same element of o.
func (m Matrix2[T]) IsNearlyEqual(o Matrix2[T], tolerance ...T) bool {
	tol := scalar.Tol(tolerance...)
	return m.R0.IsNearlyEqual(o.R0, tol) && m.R1.IsNearlyEqual(o.R1, tol)
}

// IsZero reports whether every element of m is exactly zero.
func (m Matrix2[T]) IsZero() bool { return m == Matrix2[T]{} }

// IsNearlyZero reports whether every element of m is within tolerance of zero.
func (m Matrix2[T]) IsNearlyZero(tolerance ...T) bool {
	return m.IsNearlyEqual(Matrix2[T]{}, tolerance...)
}

// IsIdentity reports whether m is exactly the identity.
func (m Matrix2[T]) IsIdentity() bool { return m == Identity2[T]() }

// IsNearlyIdentity is IsIdentity with a tolerance on every element.
func (m Matrix2[T]) IsNearlyIdentity(tolerance ...T) bool {
	return m.IsNearlyEqual(Identity2[T](), tolerance...)
}

// IsSymmetric compares the mirrored off-diagonal pair exactly.
func (m Matrix2[T]) IsSymmetric() bool { return m.R0.Y == m.R1.X }

// IsNearlySymmetric reports whether m and its transpose agree within tolerance.
func (m Matrix2[T]) IsNearlySymmetric(tolerance ...T) bool {
	return scalar.IsNearlyEqual(m.R0.Y, m.R1.X, scalar.Tol(tolerance...))
}

// IsDiagonal reports whether every off-diagonal element is exactly zero.
func (m Matrix2[T]) IsDiagonal() bool { return m.R0.Y == 0 && m.R1.X == 0 }

// IsNearlyDiagonal reports whether every off-diagonal element is within tolerance of zero.
func (m Matrix2[T]) IsNearlyDiagonal(tolerance ...T) bool {
	tol := scalar.Tol(tolerance...)
	return scalar.IsNearlyZero(m.R0.Y, tol) && scalar.IsNearlyZero(m.R1.X, tol)
}
