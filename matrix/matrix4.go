// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/lvmath/scalar"
	"github.com/katalvlaran/lvmath/vector"
)

// Matrix4 is a 4×4 row-major matrix.
type Matrix4[T scalar.Real] struct {
	R0, R1, R2, R3 vector.Vector4[T]
}

// Shape of Matrix4.
const (
	Matrix4RowCount       = 4
	Matrix4ColumnCount    = 4
	Matrix4ComponentCount = Matrix4RowCount * Matrix4ColumnCount
)

// New4 builds a Matrix4 from its elements in row-major order.
func New4[T scalar.Real](
	r00, r01, r02, r03,
	r10, r11, r12, r13,
	r20, r21, r22, r23,
	r30, r31, r32, r33 T,
) Matrix4[T] {
	return Matrix4[T]{
		R0: vector.Vector4[T]{X: r00, Y: r01, Z: r02, W: r03},
		R1: vector.Vector4[T]{X: r10, Y: r11, Z: r12, W: r13},
		R2: vector.Vector4[T]{X: r20, Y: r21, Z: r22, W: r23},
		R3: vector.Vector4[T]{X: r30, Y: r31, Z: r32, W: r33},
	}
}

// FromRows4 builds a Matrix4 from its rows.
func FromRows4[T scalar.Real](r0, r1, r2, r3 vector.Vector4[T]) Matrix4[T] {
	return Matrix4[T]{R0: r0, R1: r1, R2: r2, R3: r3}
}

// FromArray4 builds a Matrix4 from a flat row-major array.
func FromArray4[T scalar.Real](a [Matrix4ComponentCount]T) Matrix4[T] {
	return Matrix4[T]{
		R0: vector.FromArray4([4]T(a[0:4])),
		R1: vector.FromArray4([4]T(a[4:8])),
		R2: vector.FromArray4([4]T(a[8:12])),
		R3: vector.FromArray4([4]T(a[12:16])),
	}
}

// FromMatrix3 embeds m in the upper-left corner of an identity.
func FromMatrix3[T scalar.Real](m Matrix3[T]) Matrix4[T] {
	return Matrix4[T]{
		R0: m.R0.Extend(0),
		R1: m.R1.Extend(0),
		R2: m.R2.Extend(0),
		R3: vector.Vector4[T]{W: 1},
	}
}

// Identity4 returns the 4×4 identity.
func Identity4[T scalar.Real]() Matrix4[T] {
	return New4[T](
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	)
}

// Zero4 returns the 4x4 zero matrix.
func Zero4[T scalar.Real]() Matrix4[T] { return Matrix4[T]{} }

// ToArray flattens m in row-major order.
func (m Matrix4[T]) ToArray() [Matrix4ComponentCount]T {
	var out [Matrix4ComponentCount]T
	for r := 0; r < Matrix4RowCount; r++ {
		row := m.row(r).ToArray()
		copy(out[r*Matrix4ColumnCount:], row[:])
	}
	return out
}

func (m *Matrix4[T]) row(i int) *vector.Vector4[T] {
	switch i {
	case 0:
		return &m.R0
	case 1:
		return &m.R1
	case 2:
		return &m.R2
	case 3:
		return &m.R3
	}
	panic(indexPanic(panicRow4, i))
}

// At returns the element at flat row-major index i. It panics when i is out of range.
func (m Matrix4[T]) At(i int) T {
	checkFlat(panicIndex4, i, Matrix4ComponentCount)
	return m.row(i / Matrix4ColumnCount).At(i % Matrix4ColumnCount)
}

// SetAt writes the element at flat row-major index i.
func (m *Matrix4[T]) SetAt(i int, v T) {
	checkFlat(panicIndex4, i, Matrix4ComponentCount)
	m.row(i / Matrix4ColumnCount).SetAt(i%Matrix4ColumnCount, v)
}

// Get returns the element at (row, col).
func (m Matrix4[T]) Get(row, col int) T {
	checkCell(panicIndex4, row, col, Matrix4RowCount)
	return m.row(row).At(col)
}

// SetElement writes the element at (row, col).
func (m *Matrix4[T]) SetElement(row, col int, v T) {
	checkCell(panicIndex4, row, col, Matrix4RowCount)
	m.row(row).SetAt(col, v)
}

// Row returns a copy of row i.
func (m Matrix4[T]) Row(i int) vector.Vector4[T] { return *m.row(i) }

// Column returns a copy of column i.
func (m Matrix4[T]) Column(i int) vector.Vector4[T] {
	return vector.Vector4[T]{X: m.R0.At(i), Y: m.R1.At(i), Z: m.R2.At(i), W: m.R3.At(i)}
}

// ColumnRef aliases column i.
func (m *Matrix4[T]) ColumnRef(i int) vector.Ref4[T] {
	return vector.Ref4[T]{
		A: componentPtr4(&m.R0, i),
		B: componentPtr4(&m.R1, i),
		C: componentPtr4(&m.R2, i),
		D: componentPtr4(&m.R3, i),
	}
}

// SetZero sets every element to zero.
func (m *Matrix4[T]) SetZero() { *m = Matrix4[T]{} }

// SetIdentity overwrites m with the identity.
func (m *Matrix4[T]) SetIdentity() { *m = Identity4[T]() }

// Add returns the element-wise sum m + o.
func (m Matrix4[T]) Add(o Matrix4[T]) Matrix4[T] {
	return Matrix4[T]{m.R0.Add(o.R0), m.R1.Add(o.R1), m.R2.Add(o.R2), m.R3.Add(o.R3)}
}

// Sub returns the element-wise difference m − o.
func (m Matrix4[T]) Sub(o Matrix4[T]) Matrix4[T] {
	return Matrix4[T]{m.R0.Sub(o.R0), m.R1.Sub(o.R1), m.R2.Sub(o.R2), m.R3.Sub(o.R3)}
}

// Scale multiplies every element by s.
func (m Matrix4[T]) Scale(s T) Matrix4[T] {
	return Matrix4[T]{m.R0.Scale(s), m.R1.Scale(s), m.R2.Scale(s), m.R3.Scale(s)}
}

// Mul returns the matrix product m·o.
func (m Matrix4[T]) Mul(o Matrix4[T]) Matrix4[T] {
	return Matrix4[T]{
		R0: o.VectorMul(m.R0),
		R1: o.VectorMul(m.R1),
		R2: o.VectorMul(m.R2),
		R3: o.VectorMul(m.R3),
	}
}

// MulVector returns m·v with v as a column vector.
func (m Matrix4[T]) MulVector(v vector.Vector4[T]) vector.Vector4[T] {
	return vector.Vector4[T]{
		X: m.R0.DotProduct(v),
		Y: m.R1.DotProduct(v),
		Z: m.R2.DotProduct(v),
		W: m.R3.DotProduct(v),
	}
}

// VectorMul returns vᵀ·m with v as a row vector.
func (m Matrix4[T]) VectorMul(v vector.Vector4[T]) vector.Vector4[T] {
	return m.R0.Scale(v.X).Add(m.R1.Scale(v.Y)).Add(m.R2.Scale(v.Z)).Add(m.R3.Scale(v.W))
}

// Minor returns the 3×3 matrix left after deleting row and col.
func (m Matrix4[T]) Minor(row, col int) Matrix3[T] {
	checkCell(panicIndex4, row, col, Matrix4RowCount)
	var out [Matrix3ComponentCount]T
	k := 0
	for r := 0; r < Matrix4RowCount; r++ {
		if r == row {
			continue
		}
		for c := 0; c < Matrix4ColumnCount; c++ {
			if c == col {
				continue
			}
			out[k] = m.Get(r, c)
			k++
		}
	}
	return FromArray3(out)
}

// Determinant expands along row 0: Σ (−1)^j · m[0][j] · det(minor(0, j)).
func (m Matrix4[T]) Determinant() T {
	return m.R0.X*m.Minor(0, 0).Determinant() -
		m.R0.Y*m.Minor(0, 1).Determinant() +
		m.R0.Z*m.Minor(0, 2).Determinant() -
		m.R0.W*m.Minor(0, 3).Determinant()
}

// GetTransposed returns mᵀ.
func (m Matrix4[T]) GetTransposed() Matrix4[T] {
	return Matrix4[T]{m.Column(0), m.Column(1), m.Column(2), m.Column(3)}
}

// Transpose transposes m in place.
func (m *Matrix4[T]) Transpose() { *m = m.GetTransposed() }

// GetAdjoint returns the matrix of signed cofactors, C[i][j] = (−1)^(i+j)·det(minor(i, j)).
func (m Matrix4[T]) GetAdjoint() Matrix4[T] {
	var out Matrix4[T]
	for i := 0; i < Matrix4RowCount; i++ {
		for j := 0; j < Matrix4ColumnCount; j++ {
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
func (m Matrix4[T]) GetInverted(tolerance ...T) Matrix4[T] {
	det := m.Determinant()
	if scalar.IsNearlyZero(det, scalar.Tol(tolerance...)) {
		return m
	}
	return m.GetAdjoint().GetTransposed().Scale(1 / det)
}

// Invert is the in-place form of GetInverted.
func (m *Matrix4[T]) Invert(tolerance ...T) { *m = m.GetInverted(tolerance...) }

// Trace returns the sum of the diagonal.
func (m Matrix4[T]) Trace() T { return m.R0.X + m.R1.Y + m.R2.Z + m.R3.W }

// IsEqual reports exact equality with o.
func (m Matrix4[T]) IsEqual(o Matrix4[T]) bool { return m == o }

// IsNearlyEqual reports whether every element of m is within tolerance of the same element of o.
func (m Matrix4[T]) IsNearlyEqual(o Matrix4[T], tolerance ...T) bool {
	tol := scalar.Tol(tolerance...)
	return m.R0.IsNearlyEqual(o.R0, tol) &&
		m.R1.IsNearlyEqual(o.R1, tol) &&
		m.R2.IsNearlyEqual(o.R2, tol) &&
		m.R3.IsNearlyEqual(o.R3, tol)
}

// IsZero reports whether every element of m is exactly zero.
func (m Matrix4[T]) IsZero() bool { return m == Matrix4[T]{} }

// IsNearlyZero reports whether every element of m is within tolerance of zero.
func (m Matrix4[T]) IsNearlyZero(tolerance ...T) bool {
	return m.IsNearlyEqual(Matrix4[T]{}, tolerance...)
}

// IsIdentity reports whether m is exactly the identity.
func (m Matrix4[T]) IsIdentity() bool { return m == Identity4[T]() }

// IsNearlyIdentity is IsIdentity with a tolerance on every element.
func (m Matrix4[T]) IsNearlyIdentity(tolerance ...T) bool {
	return m.IsNearlyEqual(Identity4[T](), tolerance...)
}

// IsSymmetric compares every mirrored off-diagonal pair exactly.
func (m Matrix4[T]) IsSymmetric() bool {
	for i := 0; i < Matrix4RowCount; i++ {
		for j := i + 1; j < Matrix4ColumnCount; j++ {
			if m.Get(i, j) != m.Get(j, i) {
				return false
			}
		}
	}
	return true
}

// IsNearlySymmetric reports whether m and its transpose agree within tolerance.
func (m Matrix4[T]) IsNearlySymmetric(tolerance ...T) bool {
	tol := scalar.Tol(tolerance...)
	for i := 0; i < Matrix4RowCount; i++ {
		for j := i + 1; j < Matrix4ColumnCount; j++ {
			if !scalar.IsNearlyEqual(m.Get(i, j), m.Get(j, i), tol) {
				return false
			}
		}
	}
	return true
}

// IsDiagonal reports whether every off-diagonal element is exactly zero.
func (m Matrix4[T]) IsDiagonal() bool { return m.IsNearlyDiagonal(0) }

// IsNearlyDiagonal reports whether every off-diagonal element is within tolerance of zero.
func (m Matrix4[T]) IsNearlyDiagonal(tolerance ...T) bool {
	tol := scalar.Tol(tolerance...)
	for i := 0; i < Matrix4RowCount; i++ {
		for j := 0; j < Matrix4ColumnCount; j++ {
			if i != j && !scalar.IsNearlyZero(m.Get(i, j), tol) {
				return false
			}
		}
	}
	return true
}
