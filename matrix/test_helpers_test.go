// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for the fixed-size kernels.
//   • Keep all data finite and well-formed to avoid tolerance interference.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvmath/matrix"
)

// MustParse3 PARSES a flat row-major list into a Matrix3 or fails the test.
// Implementation:
//   - Stage 1: Call matrix.Parse3.
//   - Stage 2: t.Fatalf on error to abort the test early.
//
// Inputs:
//   - s: nine comma-separated numbers.
//
// Returns:
//   - matrix.Matrix3d holding the parsed elements.
//
// Notes:
//   - Keeps literal-heavy tests readable; the text form is row-major.
func MustParse3(tb testing.TB, s string) matrix.Matrix3d {
	tb.Helper()
	m, err := matrix.Parse3[float64](s)
	if err != nil {
		tb.Fatalf("matrix.Parse3(%q): %v", s, err)
	}
	return m
}

// sequential4 returns the 4×4 matrix whose flat element i equals i.
func sequential4() matrix.Matrix4d {
	var m matrix.Matrix4d
	for i := 0; i < matrix.Matrix4ComponentCount; i++ {
		m.SetAt(i, float64(i))
	}
	return m
}
