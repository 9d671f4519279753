// SPDX-License-Identifier: MIT

package matrix

// Common instantiations.
type (
	Matrix2f = Matrix2[float32]
	Matrix2d = Matrix2[float64]
	Matrix3f = Matrix3[float32]
	Matrix3d = Matrix3[float64]
	Matrix4f = Matrix4[float32]
	Matrix4d = Matrix4[float64]
)
