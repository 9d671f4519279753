// SPDX-License-Identifier: MIT

package geom

import "fmt"

// IntersectionResult classifies a point or rectangle against a rectangle.
// Values are ordered by containment strength.
type IntersectionResult uint8

const (
	Outside IntersectionResult = iota
	OnTheEdge
	PartiallyInside
	FullyInside
)

var resultNames = [...]string{
	Outside:         "OUTSIDE",
	OnTheEdge:       "ON_THE_EDGE",
	PartiallyInside: "PARTIALLY_INSIDE",
	FullyInside:     "FULLY_INSIDE",
}

// String returns the upper-case name, e.g. "FULLY_INSIDE".
func (r IntersectionResult) String() string {
	if int(r) < len(resultNames) {
		return resultNames[r]
	}
	return fmt.Sprintf("IntersectionResult(%d)", uint8(r))
}

// MarshalText writes the String form so reports stay readable.
func (r IntersectionResult) MarshalText() ([]byte, error) {
	if int(r) >= len(resultNames) {
		return nil, fmt.Errorf("geom: invalid IntersectionResult %d", uint8(r))
	}
	return []byte(resultNames[r]), nil
}

// UnmarshalText accepts the String form.
func (r *IntersectionResult) UnmarshalText(text []byte) error {
	for i, name := range resultNames {
		if name == string(text) {
			*r = IntersectionResult(i)
			return nil
		}
	}
	return fmt.Errorf("geom: unknown IntersectionResult %q", text)
}
