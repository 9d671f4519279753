// SPDX-License-Identifier: MIT
// Package matrix: panic messages and error helpers.
// Fixed-size matrices have no recoverable runtime failures apart from parsing
// and decoding; those surface the scalar package sentinels (scalar.ErrParse,
// scalar.ErrBufferSize) wrapped with the operation tag. Index violations are
// programmer errors and panic with the stable messages below.

package matrix

import (
	"errors"
	"fmt"
)

// ErrJSONLength is returned when a JSON array does not hold exactly
// ComponentCount numbers.
var ErrJSONLength = errors.New("matrix: JSON array has the wrong length")

const (
	panicIndex2 = "matrix: Matrix2 index out of range"
	panicIndex3 = "matrix: Matrix3 index out of range"
	panicIndex4 = "matrix: Matrix4 index out of range"
	panicRow2   = "matrix: Matrix2 row out of range"
	panicRow3   = "matrix: Matrix3 row out of range"
	panicRow4   = "matrix: Matrix4 row out of range"
	panicCol    = "matrix: column out of range"
)

func indexPanic(msg string, i int) string {
	return fmt.Sprintf("%s: %d", msg, i)
}

func checkFlat(msg string, i, n int) {
	if i < 0 || i >= n {
		panic(indexPanic(msg, i))
	}
}

func checkCell(msg string, row, col, n int) {
	if row < 0 || row >= n || col < 0 || col >= n {
		panic(fmt.Sprintf("%s: (%d, %d)", msg, row, col))
	}
}

// matrixErrorf wraps err with a short operation tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
