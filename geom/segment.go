// SPDX-License-Identifier: MIT

package geom

import (
	"github.com/cespare/xxhash/v2"

	"github.com/katalvlaran/lvmath/scalar"
	"github.com/katalvlaran/lvmath/vector"
)

// Segment2 is the finite segment from Begin to End.
type Segment2[T scalar.Real] struct {
	Begin vector.Vector2[T] `json:"begin" yaml:"begin"`
	End   vector.Vector2[T] `json:"end" yaml:"end"`
}

// NewSegment2 returns the segment from begin to end.
func NewSegment2[T scalar.Real](begin, end vector.Vector2[T]) Segment2[T] {
	return Segment2[T]{Begin: begin, End: end}
}

// Set replaces both endpoints.
func (s *Segment2[T]) Set(begin, end vector.Vector2[T]) { s.Begin, s.End = begin, end }

// Length returns the distance from Begin to End.
func (s Segment2[T]) Length() T { return s.Begin.Distance(s.End) }

// GetDirectionWithMagnitude returns End − Begin.
func (s Segment2[T]) GetDirectionWithMagnitude() vector.Vector2[T] { return s.End.Sub(s.Begin) }

// GetDirection returns End − Begin normalized (unchanged when degenerate).
func (s Segment2[T]) GetDirection() vector.Vector2[T] { return s.GetDirectionWithMagnitude().GetNormalized() }

// PointAt interpolates with t clamped to [0, 1].
func (s Segment2[T]) PointAt(t T) vector.Vector2[T] { return vector.Lerp2(s.Begin, s.End, t) }

// PointAtUnclamped extrapolates beyond the endpoints for t outside [0, 1].
func (s Segment2[T]) PointAtUnclamped(t T) vector.Vector2[T] {
	return vector.LerpUnclamped2(s.Begin, s.End, t)
}

// ToLine returns the supporting line with Direction End − Begin.
func (s Segment2[T]) ToLine() Line2[T] { return NewLine2(s.Begin, s.GetDirectionWithMagnitude()) }

// IsPointInside reports whether p is collinear with the segment and its
// projection falls between Begin and End. Both tests scale the tolerance by
// the segment size, so it bounds the sine of the angle between End−Begin and
// p−Begin rather than the raw cross product. No square root is taken.
func (s Segment2[T]) IsPointInside(p vector.Vector2[T], tolerance ...T) bool {
	ba := s.GetDirectionWithMagnitude()
	pa := p.Sub(s.Begin)
	cross := ba.CrossProduct(pa)
	return onSegment(cross*cross, ba.LengthSquared(), pa.LengthSquared(), ba.DotProduct(pa), scalar.Tol(tolerance...))
}

// Intersects returns the crossing of s and o. TA and TB are the segment
// parameters in [0, 1]. Lines meeting outside either segment yield
// ErrNoIntersection.
func (s Segment2[T]) Intersects(o Segment2[T], tolerance ...T) (Hit2[T], error) {
	hit, err := IntersectLines2(s.Begin, s.GetDirectionWithMagnitude(), o.Begin, o.GetDirectionWithMagnitude(), tolerance...)
	if err != nil {
		return Hit2[T]{}, err
	}
	hit.Point = s.PointAtUnclamped(hit.TA)
	if !s.IsPointInside(hit.Point, tolerance...) || !o.IsPointInside(hit.Point, tolerance...) {
		return Hit2[T]{}, ErrNoIntersection
	}
	return hit, nil
}

// IsNearlyEqual compares both endpoints within tolerance.
func (s Segment2[T]) IsNearlyEqual(o Segment2[T], tolerance ...T) bool {
	return s.Begin.IsNearlyEqual(o.Begin, tolerance...) && s.End.IsNearlyEqual(o.End, tolerance...)
}

// IsEqual reports exact equality with o.
func (s Segment2[T]) IsEqual(o Segment2[T]) bool { return s == o }

// String returns "begin; end".
func (s Segment2[T]) String() string { return s.Begin.String() + "; " + s.End.String() }

// Hash returns the xxhash of the binary form of s.
func (s Segment2[T]) Hash() uint64 {
	var buf [32]byte
	return xxhash.Sum64(scalar.AppendAll(buf[:0], s.Begin.X, s.Begin.Y, s.End.X, s.End.Y))
}

// Segment3 is the finite segment from Begin to End.
type Segment3[T scalar.Real] struct {
	Begin vector.Vector3[T] `json:"begin" yaml:"begin"`
	End   vector.Vector3[T] `json:"end" yaml:"end"`
}

// NewSegment3 returns the segment from begin to end.
func NewSegment3[T scalar.Real](begin, end vector.Vector3[T]) Segment3[T] {
	return Segment3[T]{Begin: begin, End: end}
}

// Set replaces both endpoints.
func (s *Segment3[T]) Set(begin, end vector.Vector3[T]) { s.Begin, s.End = begin, end }

// Length returns the distance from Begin to End.
func (s Segment3[T]) Length() T { return s.Begin.Distance(s.End) }

// GetDirectionWithMagnitude returns End − Begin.
func (s Segment3[T]) GetDirectionWithMagnitude() vector.Vector3[T] { return s.End.Sub(s.Begin) }

// GetDirection returns End − Begin normalized (unchanged when degenerate).
func (s Segment3[T]) GetDirection() vector.Vector3[T] { return s.GetDirectionWithMagnitude().GetNormalized() }

// PointAt interpolates with t clamped to [0, 1].
func (s Segment3[T]) PointAt(t T) vector.Vector3[T] { return vector.Lerp3(s.Begin, s.End, t) }

// PointAtUnclamped extrapolates beyond the endpoints for t outside [0, 1].
func (s Segment3[T]) PointAtUnclamped(t T) vector.Vector3[T] {
	return vector.LerpUnclamped3(s.Begin, s.End, t)
}

// ToLine returns the supporting line with Direction End − Begin.
func (s Segment3[T]) ToLine() Line3[T] { return NewLine3(s.Begin, s.GetDirectionWithMagnitude()) }

// IsPointInside is the 3D form of Segment2.IsPointInside; the squared length
// of the cross product vector takes the place of the squared cross product.
func (s Segment3[T]) IsPointInside(p vector.Vector3[T], tolerance ...T) bool {
	ba := s.GetDirectionWithMagnitude()
	pa := p.Sub(s.Begin)
	return onSegment(ba.CrossProduct(pa).LengthSquared(), ba.LengthSquared(), pa.LengthSquared(), ba.DotProduct(pa), scalar.Tol(tolerance...))
}

// onSegment checks |cross| ≤ tol·max(1, |ba|·|pa|) in squared form and
// −slack ≤ dot ≤ |ba|² + slack with slack = tol·max(1, |ba|²).
func onSegment[T scalar.Real](cross2, ba2, pa2, dot, tol T) bool {
	if cross2 > tol*tol*max(1, ba2*pa2) {
		return false
	}
	slack := tol * max(1, ba2)
	return dot >= -slack && dot <= ba2+slack
}

// Intersects returns the meeting point of s and o. Besides ErrNoIntersection
// it reports ErrParallel and ErrSkew from the line solver.
func (s Segment3[T]) Intersects(o Segment3[T], tolerance ...T) (Hit3[T], error) {
	hit, err := IntersectLines3(s.Begin, s.GetDirectionWithMagnitude(), o.Begin, o.GetDirectionWithMagnitude(), tolerance...)
	if err != nil {
		return Hit3[T]{}, err
	}
	hit.Point = s.PointAtUnclamped(hit.TA)
	if !s.IsPointInside(hit.Point, tolerance...) || !o.IsPointInside(hit.Point, tolerance...) {
		return Hit3[T]{}, ErrNoIntersection
	}
	return hit, nil
}

// IsNearlyEqual compares both endpoints within tolerance.
func (s Segment3[T]) IsNearlyEqual(o Segment3[T], tolerance ...T) bool {
	return s.Begin.IsNearlyEqual(o.Begin, tolerance...) && s.End.IsNearlyEqual(o.End, tolerance...)
}

// IsEqual reports exact equality with o.
func (s Segment3[T]) IsEqual(o Segment3[T]) bool { return s == o }

// String returns "begin; end".
func (s Segment3[T]) String() string { return s.Begin.String() + "; " + s.End.String() }

// Hash returns the xxhash of the binary form of s.
func (s Segment3[T]) Hash() uint64 {
	var buf [48]byte
	return xxhash.Sum64(scalar.AppendAll(buf[:0],
		s.Begin.X, s.Begin.Y, s.Begin.Z, s.End.X, s.End.Y, s.End.Z))
}
