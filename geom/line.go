// SPDX-License-Identifier: MIT

package geom

import (
	"github.com/cespare/xxhash/v2"

	"github.com/katalvlaran/lvmath/scalar"
	"github.com/katalvlaran/lvmath/vector"
)

// Line2 is the infinite line Origin + Direction·t.
type Line2[T scalar.Real] struct {
	Origin    vector.Vector2[T] `json:"origin" yaml:"origin"`
	Direction vector.Vector2[T] `json:"direction" yaml:"direction"`
}

// DefaultLine2 returns the line through the origin along +Y.
func DefaultLine2[T scalar.Real]() Line2[T] {
	return Line2[T]{Direction: vector.New2[T](0, 1)}
}

// NewLine2 returns the line through origin along direction.
func NewLine2[T scalar.Real](origin, direction vector.Vector2[T]) Line2[T] {
	return Line2[T]{Origin: origin, Direction: direction}
}

// Set replaces origin and direction.
func (l *Line2[T]) Set(origin, direction vector.Vector2[T]) {
	l.Origin, l.Direction = origin, direction
}

// PointAt returns Origin + Direction·t.
func (l Line2[T]) PointAt(t T) vector.Vector2[T] { return l.Origin.Add(l.Direction.Scale(t)) }

// Intersects runs IntersectLines2 on l and o.
func (l Line2[T]) Intersects(o Line2[T], tolerance ...T) (Hit2[T], error) {
	return IntersectLines2(l.Origin, l.Direction, o.Origin, o.Direction, tolerance...)
}

// IsNearlyEqual compares origin and direction within tolerance.
func (l Line2[T]) IsNearlyEqual(o Line2[T], tolerance ...T) bool {
	return l.Origin.IsNearlyEqual(o.Origin, tolerance...) && l.Direction.IsNearlyEqual(o.Direction, tolerance...)
}

// IsEqual reports exact equality with o.
func (l Line2[T]) IsEqual(o Line2[T]) bool { return l == o }

// String returns "origin; direction".
func (l Line2[T]) String() string { return l.Origin.String() + "; " + l.Direction.String() }

// Hash returns the xxhash of the binary form of l.
func (l Line2[T]) Hash() uint64 {
	var buf [32]byte
	return xxhash.Sum64(scalar.AppendAll(buf[:0], l.Origin.X, l.Origin.Y, l.Direction.X, l.Direction.Y))
}

// Line3 is the infinite line Origin + Direction·t.
type Line3[T scalar.Real] struct {
	Origin    vector.Vector3[T] `json:"origin" yaml:"origin"`
	Direction vector.Vector3[T] `json:"direction" yaml:"direction"`
}

// DefaultLine3 returns the line through the origin along +Y.
func DefaultLine3[T scalar.Real]() Line3[T] {
	return Line3[T]{Direction: vector.New3[T](0, 1, 0)}
}

// NewLine3 returns the line through origin along direction.
func NewLine3[T scalar.Real](origin, direction vector.Vector3[T]) Line3[T] {
	return Line3[T]{Origin: origin, Direction: direction}
}

// Set replaces origin and direction.
func (l *Line3[T]) Set(origin, direction vector.Vector3[T]) {
	l.Origin, l.Direction = origin, direction
}

// PointAt returns Origin + Direction·t.
func (l Line3[T]) PointAt(t T) vector.Vector3[T] { return l.Origin.Add(l.Direction.Scale(t)) }

// Intersects runs IntersectLines3 on l and o.
func (l Line3[T]) Intersects(o Line3[T], tolerance ...T) (Hit3[T], error) {
	return IntersectLines3(l.Origin, l.Direction, o.Origin, o.Direction, tolerance...)
}

// IsNearlyEqual compares origin and direction within tolerance.
func (l Line3[T]) IsNearlyEqual(o Line3[T], tolerance ...T) bool {
	return l.Origin.IsNearlyEqual(o.Origin, tolerance...) && l.Direction.IsNearlyEqual(o.Direction, tolerance...)
}

// IsEqual reports exact equality with o.
func (l Line3[T]) IsEqual(o Line3[T]) bool { return l == o }

// String returns "origin; direction".
func (l Line3[T]) String() string { return l.Origin.String() + "; " + l.Direction.String() }

// Hash returns the xxhash of the binary form of l.
func (l Line3[T]) Hash() uint64 {
	var buf [48]byte
	return xxhash.Sum64(scalar.AppendAll(buf[:0],
		l.Origin.X, l.Origin.Y, l.Origin.Z, l.Direction.X, l.Direction.Y, l.Direction.Z))
}
