// SPDX-License-Identifier: MIT

package quaternion

import "fmt"

const panicIndex = "quaternion: index out of range"

func indexPanic(i int) string {
	return fmt.Sprintf("%s: %d", panicIndex, i)
}

// quaternionErrorf prefixes err with the operation tag, keeping it matchable via errors.Is.
func quaternionErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
