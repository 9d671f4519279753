// SPDX-License-Identifier: MIT

package geom

import (
	"errors"
	"fmt"
)

var (
	// ErrParallel is returned when two lines are parallel or nearly so.
	ErrParallel = errors.New("geom: lines are parallel")

	// ErrSkew is returned when two 3D lines are not parallel but never meet.
	ErrSkew = errors.New("geom: lines are skew")

	// ErrNoIntersection is returned when the supporting lines meet outside a segment.
	ErrNoIntersection = errors.New("geom: segments do not intersect")
)

// geomErrorf prefixes err with the operation tag, keeping it matchable via errors.Is.
func geomErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
