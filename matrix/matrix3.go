// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/lvmath/scalar"
	"github.com/katalvlaran/lvmath/vector"
)

// Matrix3 is a 3×3 row-major matrix.
type Matrix3[T scalar.Real] struct {
	R0, R1, R2 vector.Vector3[T]
}

// Shape of Matrix3.
const (
	Matrix3RowCount       = 3
	Matrix3ColumnCount    = 3
	Matrix3ComponentCount = Matrix3RowCount * Matrix3ColumnCount
)

// New3 builds a Matrix3 from its elements in row-major order.
func New3[T scalar.Real](r00, r01, r02, r10, r11, r12, r20, r21, r22 T) Matrix3[T] {
	return Matrix3[T]{
		R0: vector.Vector3[T]{X: r00, Y: r01, Z: r02},
		R1: vector.Vector3[T]{X: r10, Y: r11, Z: r12},
		R2: vector.Vector3[T]{X: r20, Y: r21, Z: r22},
	}
}

// FromRows3 builds a Matrix3 from its rows.
func FromRows3[T scalar.Real](r0, r1, r2 vector.Vector3[T]) Matrix3[T] {
	return Matrix3[T]{R0: r0, R1: r1, R2: r2}
}

// FromArray3 builds a Matrix3 from a flat row-major array.
func FromArray3[T scalar.Real](a [Matrix3ComponentCount]T) Matrix3[T] {
	return New3(a[0], a[1], a[2], a[3], a[4], a[5], a[6], a[7], a[8])
}

// FromMatrix2 embeds m in the upper-left corner of an identity.
func FromMatrix2[T scalar.Real](m Matrix2[T]) Matrix3[T] {
	return Matrix3[T]{
		R0: m.R0.Extend(0),
		R1: m.R1.Extend(0),
		R2: vector.Vector3[T]{Z: 1},
	}
}

// Identity3 returns the 3×3 identity.
func Identity3[T scalar.Real]() Matrix3[T] { return New3[T](1, 0, 0, 0, 1, 0, 0, 0, 1) }

// Zero3 returns the 3x3 zero matrix.
func Zero3[T scalar.Real]() Matrix3[T] { return Matrix3[T]{} }

// ToArray flattens m in row-major order.
func (m Matrix3[T]) ToArray() [Matrix3ComponentCount]T {
	return [Matrix3ComponentCount]T{
		m.R0.X, m.R0.Y, m.R0.Z,
		m.R1.X, m.R1.Y, m.R1.Z,
		m.R2.X, m.R2.Y, m.R2.Z,
	}
}

func (m *Matrix3[T]) row(i int) *vector.Vector3[T] {
	switch i {
	case 0:
		return &m.R0
	case 1:
		return &m.R1
	case 2:
		return &m.R2
	}
	panic(indexPanic(panicRow3, i))
}

// At returns the element at flat row-major index i. It panics when i is out of range.
func (m Matrix3[T]) At(i int) T {
	checkFlat(panicIndex3, i, Matrix3ComponentCount)
	return m.row(i / Matrix3ColumnCount).At(i % Matrix3ColumnCount)
}

// SetAt writes the element at flat row-major index i.
func (m *Matrix3[T]) SetAt(i int, v T) {
	checkFlat(panicIndex3, i, Matrix3ComponentCount)
	m.row(i / Matrix3ColumnCount).SetAt(i%Matrix3ColumnCount, v)
}

// Get returns the element at (row, col).
func (m Matrix3[T]) Get(row, col int) T {
	checkCell(panicIndex3, row, col, Matrix3RowCount)
	return m.row(row).At(col)
}

// SetElement writes the element at (row, col).
func (m *Matrix3[T]) SetElement(row, col int, v T) {
	checkCell(panicIndex3, row, col, Matrix3RowCount)
	m.row(row).SetAt(col, v)
}

// Row returns a copy of row i.
func (m Matrix3[T]) Row(i int) vector.Vector3[T] { return *m.row(i) }

// Column returns a copy of column i.
func (m Matrix3[T]) Column(i int) vector.Vector3[T] {
	return vector.Vector3[T]{X: m.R0.At(i), Y: m.R1.At(i), Z: m.R2.At(i)}
}

// ColumnRef aliases column i.
func (m *Matrix3[T]) ColumnRef(i int) vector.Ref3[T] {
	return vector.Ref3[T]{
		A: componentPtr3(&m.R0, i),
		B: componentPtr3(&m.R1, i),
		C: componentPtr3(&m.R2, i),
	}
}

// SetZero sets every element to zero.
func (m *Matrix3[T]) SetZero() { *m = Matrix3[T]{} }

// SetIdentity overwrites m with the identity.
func (m *Matrix3[T]) SetIdentity() { *m = Identity3[T]() }

// Add returns the element-wise sum m + o.
func (m Matrix3[T]) Add(o Matrix3[T]) Matrix3[T] {
	return Matrix3[T]{m.R0.Add(o.R0), m.R1.Add(o.R1), m.R2.Add(o.R2)}
}

// Sub returns the element-wise difference m − o.
func (m Matrix3[T]) Sub(o Matrix3[T]) Matrix3[T] {
	return Matrix3[T]{m.R0.Sub(o.R0), m.R1.Sub(o.R1), m.R2.Sub(o.R2)}
}

// Scale multiplies every element by s.
func (m Matrix3[T]) Scale(s T) Matrix3[T] {
	return Matrix3[T]{m.R0.Scale(s), m.R1.Scale(s), m.R2.Scale(s)}
}

// Mul returns the matrix product m·o.
func (m Matrix3[T]) Mul(o Matrix3[T]) Matrix3[T] {
	return Matrix3[T]{
		R0: o.VectorMul(m.R0),
		R1: o.VectorMul(m.R1),
		R2: o.VectorMul(m.R2),
	}
}

// MulVector returns m·v with v as a column vector.
func (m Matrix3[T]) MulVector(v vector.Vector3[T]) vector.Vector3[T] {
	return vector.Vector3[T]{X: m.R0.DotProduct(v), Y: m.R1.DotProduct(v), Z: m.R2.DotProduct(v)}
}

// VectorMul returns vᵀ·m with v as a row vector.
func (m Matrix3[T]) VectorMul(v vector.Vector3[T]) vector.Vector3[T] {
	return m.R0.Scale(v.X).Add(m.R1.Scale(v.Y)).Add(m.R2.Scale(v.Z))
}

// Determinant expands along row 0: Σ (−1)^j · m[0][j] · det(minor(0, j)).
func (m Matrix3[T]) Determinant() T {
	return m.R0.X*(m.R1.Y*m.R2.Z-m.R1.Z*m.R2.Y) -
		m.R0.Y*(m.R1.X*m.R2.Z-m.R1.Z*m.R2.X) +
		m.R0.Z*(m.R1.X*m.R2.Y-m.R1.Y*m.R2.X)
}

// Minor returns the 2×2 matrix left after deleting row and col.
func (m Matrix3[T]) Minor(row, col int) Matrix2[T] {
	checkCell(panicIndex3, row, col, Matrix3RowCount)
	var out [Matrix2ComponentCount]T
	k := 0
	for r := 0; r < Matrix3RowCount; r++ {
		if r == row {
			continue
		}
		for c := 0; c < Matrix3ColumnCount; c++ {
			if c == col {
				continue
			}
			out[k] = m.Get(r, c)
			k++
		}
	}
	return FromArray2(out)
}

// GetTransposed returns mᵀ.
func (m Matrix3[T]) GetTransposed() Matrix3[T] {
	return Matrix3[T]{m.Column(0), m.Column(1), m.Column(2)}
}

// Transpose transposes m in place.
func (m *Matrix3[T]) Transpose() { *m = m.GetTransposed() }

// GetAdjoint returns the matrix of signed cofactors, C[i][j] = (−1)^(i+j)·det(minor(i, j)).
func (m Matrix3[T]) GetAdjoint() Matrix3[T] {
	var out Matrix3[T]
	for i := 0; i < Matrix3RowCount; i++ {
		for j := 0; j < Matrix3ColumnCount; j++ {
			c := m.Minor(i, j).Determinant()
			if (i+j)%2 == 1 {
				c = -c
			}
			out.SetElement(i, j, c)
		}
	}
	return out
}

// GetInverted returns m⁻¹, or m itself when |det| ≤ tolerance.
// Callers that must detect singularity check Determinant first.
func (m Matrix3[T]) GetInverted(tolerance ...T) Matrix3[T] {
	det := m.Determinant()
	if scalar.IsNearlyZero(det, scalar.Tol(tolerance...)) {
		return m
	}
	return m.GetAdjoint().GetTransposed().Scale(1 / det)
}

// Invert is the in-place form of GetInverted.
func (m *Matrix3[T]) Invert(tolerance ...T) { *m = m.GetInverted(tolerance...) }

// Trace returns the sum of the diagonal.
func (m Matrix3[T]) Trace() T { return m.R0.X + m.R1.Y + m.R2.Z }

// IsEqual reports exact equality with o.
func (m Matrix3[T]) IsEqual(o Matrix3[T]) bool { return m == o }

// IsNearlyEqual reports whether every element of m is within tolerance of the same element of o.
func (m Matrix3[T]) IsNearlyEqual(o Matrix3[T], tolerance ...T) bool {
	tol := scalar.Tol(tolerance...)
	return m.R0.IsNearlyEqual(o.R0, tol) && m.R1.IsNearlyEqual(o.R1, tol) && m.R2.IsNearlyEqual(o.R2, tol)
}

// IsZero reports whether every element of m is exactly zero.
func (m Matrix3[T]) IsZero() bool { return m == Matrix3[T]{} }

// IsNearlyZero reports whether every element of m is within tolerance of zero.
func (m Matrix3[T]) IsNearlyZero(tolerance ...T) bool {
	return m.IsNearlyEqual(Matrix3[T]{}, tolerance...)
}

// IsIdentity reports whether m is exactly the identity.
func (m Matrix3[T]) IsIdentity() bool { return m == Identity3[T]() }

// IsNearlyIdentity is IsIdentity with a tolerance on every element.
func (m Matrix3[T]) IsNearlyIdentity(tolerance ...T) bool {
	return m.IsNearlyEqual(Identity3[T](), tolerance...)
}

// IsSymmetric compares every mirrored off-diagonal pair exactly.
func (m Matrix3[T]) IsSymmetric() bool {
	return m.R0.Y == m.R1.X && m.R0.Z == m.R2.X && m.R1.Z == m.R2.Y
}

// IsNearlySymmetric reports whether m and its transpose agree within tolerance.
func (m Matrix3[T]) IsNearlySymmetric(tolerance ...T) bool {
	tol := scalar.Tol(tolerance...)
	return scalar.IsNearlyEqual(m.R0.Y, m.R1.X, tol) &&
		scalar.IsNearlyEqual(m.R0.Z, m.R2.X, tol) &&
		scalar.IsNearlyEqual(m.R1.Z, m.R2.Y, tol)
}

// IsDiagonal reports whether every off-diagonal element is exactly zero.
func (m Matrix3[T]) IsDiagonal() bool {
	return m.IsNearlyDiagonal(0)
}

// IsNearlyDiagonal reports whether every off-diagonal element is within tolerance of zero.
func (m Matrix3[T]) IsNearlyDiagonal(tolerance ...T) bool {
	tol := scalar.Tol(tolerance...)
	for i := 0; i < Matrix3RowCount; i++ {
		for j := 0; j < Matrix3ColumnCount; j++ {
			if i != j && !scalar.IsNearlyZero(m.Get(i, j), tol) {
				return false
			}
		}
	}
	return true
}
