// Package matrix offers fixed-size square matrices for linear algebra on
// small shapes.
//
// The matrix package provides:
//
//   - Matrix2, Matrix3 and Matrix4 over float32 or float64, stored as named
//     row vectors (R0, R1, …) and addressable as a flat row-major sequence
//     through At/SetAt/ToArray.
//   - Determinant by cofactor expansion along row 0, the signed cofactor
//     matrix (GetAdjoint) and the inverse GetAdjoint().GetTransposed()/det.
//   - Structural predicates (identity, zero, symmetric, diagonal) in exact and
//     tolerance-based forms.
//
// Singular inverse policy: when |det| ≤ tolerance, GetInverted returns the
// receiver unchanged. It never reports an error, so callers that must detect
// singularity compare Determinant against their own threshold.
//
// Contract violations (row, column or flat index out of range) panic.
//
// See the examples in this package for usage patterns.
package matrix
