// Package scenario loads geometry scenarios from YAML, evaluates them
// concurrently against the lvmath kernels and produces a JSON report.
//
// A scenario names a kind (segment2, line2, segment3, line3, rect_point,
// rect_rect, matrix3_inverse, matrix4_inverse, quaternion_euler, half), two
// flat numeric inputs a and b whose lengths depend on the kind, and one or
// more expectations. Load validates the whole file before anything runs;
// Run evaluates every scenario, bounded by WithWorkers, and never stops at
// the first failing expectation.
//
// Input layouts per kind:
//
//	segment2/line2      a, b = [x0, y0, x1, y1]       (segment ends / origin + direction)
//	segment3/line3      a, b = [x0, y0, z0, x1, y1, z1]
//	rect_point          a = [left, top, right, bottom], b = [x, y]
//	rect_rect           a, b = [left, top, right, bottom]
//	matrix3_inverse     a = 9 row-major elements
//	matrix4_inverse     a = 16 row-major elements
//	quaternion_euler    a = [x, y, z] radians, optional b = vector to rotate
//	half                a = [value]
package scenario
