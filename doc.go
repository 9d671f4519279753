// Package lvmath is a small numeric and geometric kernel for graphics and
// simulation code: vectors, fixed-size matrices, quaternions, lines,
// segments and rectangles over generic scalar types.
//
// What is inside?
//
//	scalar/      numeric constraints, tolerance policy, scalar text and binary codecs
//	half/        IEEE 754 binary16 with round-to-nearest-even conversion
//	vector/      Vector2/3/4, boolean vectors and swizzles
//	matrix/      Matrix2/3/4: determinant, adjoint, inverse, products
//	quaternion/  rotations, Euler conversion, Hamilton product
//	geom/        Line, Segment, Rect and the intersection solvers
//	stream/      length-checked binary reads and writes for every value type
//
// Every value type has the same contracts: a text form that round-trips
// through FromString, a little-endian binary layout with no padding, JSON
// with lower-case keys, and a Hash based on its binary form.
//
// Tolerance: comparisons take an optional trailing tolerance. When omitted
// it is 1e-5 for float32, 1e-9 for float64 and 0 for integers.
//
// Quick example:
//
//	a := geom.NewSegment2(vector.New2(0.0, 0.0), vector.New2(10.0, 0.0))
//	b := geom.NewSegment2(vector.New2(5.0, -5.0), vector.New2(5.0, 5.0))
//	hit, err := a.Intersects(b) // hit.Point == (5, 0), err == nil
//
// The lvcheck command (cmd/lvcheck) evaluates YAML scenario files against
// these kernels and prints a JSON report.
//
//	go get github.com/katalvlaran/lvmath
package lvmath
