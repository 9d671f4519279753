// SPDX-License-Identifier: MIT

package vector

import "fmt"

// Stable panic messages for contract violations.
const (
	panicIndex2 = "vector: Vector2 index out of range"
	panicIndex3 = "vector: Vector3 index out of range"
	panicIndex4 = "vector: Vector4 index out of range"
)

func indexPanic(msg string, i int) string {
	return fmt.Sprintf("%s: %d", msg, i)
}

// vectorErrorf prefixes err with the operation tag, keeping it matchable via errors.Is.
func vectorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
