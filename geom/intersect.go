// SPDX-License-Identifier: MIT

package geom

import (
	"github.com/katalvlaran/lvmath/scalar"
	"github.com/katalvlaran/lvmath/vector"
)

// Hit2 is a successful 2D intersection: Point = oA + dA·TA = oB + dB·TB.
type Hit2[T scalar.Real] struct {
	Point vector.Vector2[T] `json:"point"`
	TA    T                 `json:"ta"`
	TB    T                 `json:"tb"`
}

// Hit3 is a successful 3D intersection. Point lies on line A and ClosestB on
// line B; they are within tolerance of each other.
type Hit3[T scalar.Real] struct {
	Point    vector.Vector3[T] `json:"point"`
	ClosestB vector.Vector3[T] `json:"closest_b"`
	TA       T                 `json:"ta"`
	TB       T                 `json:"tb"`
}

// IntersectLines2 intersects the lines oA + dA·t and oB + dB·s.
// Directions need not be normalized. Returns ErrParallel when
// |cross(dA, dB)| < tolerance, and always when it is exactly zero.
func IntersectLines2[T scalar.Real](oA, dA, oB, dB vector.Vector2[T], tolerance ...T) (Hit2[T], error) {
	d := dA.CrossProduct(dB)
	if d == 0 || scalar.Abs(d) < scalar.Tol(tolerance...) {
		return Hit2[T]{}, ErrParallel
	}

	a2b := oB.Sub(oA)
	tA := a2b.CrossProduct(dB) / d
	tB := a2b.CrossProduct(dA) / d
	return Hit2[T]{Point: oA.Add(dA.Scale(tA)), TA: tA, TB: tB}, nil
}

// IntersectLines3 computes the closest points of oA + dA·t and oB + dB·s
// following Paul Bourke's formulation. A vanishing denominator yields
// ErrParallel; closest points farther apart than tolerance yield ErrSkew.
func IntersectLines3[T scalar.Real](oA, dA, oB, dB vector.Vector3[T], tolerance ...T) (Hit3[T], error) {
	tol := scalar.Tol(tolerance...)

	p13 := oA.Sub(oB)
	d1343 := p13.DotProduct(dB)
	d4321 := dB.DotProduct(dA)
	d1321 := p13.DotProduct(dA)
	d4343 := dB.DotProduct(dB)
	d2121 := dA.DotProduct(dA)

	denom := d2121*d4343 - d4321*d4321
	if scalar.IsNearlyZero(denom, tol) {
		return Hit3[T]{}, ErrParallel
	}

	mua := (d1343*d4321 - d1321*d4343) / denom
	mub := (d1343 + d4321*mua) / d4343
	pa := oA.Add(dA.Scale(mua))
	pb := oB.Add(dB.Scale(mub))
	if pa.DistanceSquared(pb) > tol*tol {
		return Hit3[T]{}, ErrSkew
	}
	return Hit3[T]{Point: pa, ClosestB: pb, TA: mua, TB: mub}, nil
}
