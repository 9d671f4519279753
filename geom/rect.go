// SPDX-License-Identifier: MIT

package geom

import (
	"github.com/katalvlaran/lvmath/scalar"
	"github.com/katalvlaran/lvmath/vector"
)

// Rect is an axis-aligned rectangle with Y growing upwards: Top is the larger
// Y and Bottom the smaller one.
//
// Constructors and setters keep Left ≤ Right and Top ≥ Bottom by swapping.
// Writing the fields directly bypasses that; call Set to restore it.
type Rect[T scalar.Number] struct {
	Left   T `json:"left" yaml:"left"`
	Top    T `json:"top" yaml:"top"`
	Right  T `json:"right" yaml:"right"`
	Bottom T `json:"bottom" yaml:"bottom"`
}

// RectComponentCount is the number of scalars in a Rect.
const RectComponentCount = 4

// NewRect builds a canonical Rect from its edges in any order.
func NewRect[T scalar.Number](left, top, right, bottom T) Rect[T] {
	var r Rect[T]
	r.Set(left, top, right, bottom)
	return r
}

// Set assigns the edges and swaps them into canonical form.
func (r *Rect[T]) Set(left, top, right, bottom T) {
	if left > right {
		left, right = right, left
	}
	if top < bottom {
		top, bottom = bottom, top
	}
	r.Left, r.Top, r.Right, r.Bottom = left, top, right, bottom
}

// SetRect copies o, normalizing it on the way.
func (r *Rect[T]) SetRect(o Rect[T]) { r.Set(o.Left, o.Top, o.Right, o.Bottom) }

// Width returns |Right − Left|.
func (r Rect[T]) Width() T { return scalar.AbsDiff(r.Right, r.Left) }

// Height returns |Top − Bottom|.
func (r Rect[T]) Height() T { return scalar.AbsDiff(r.Top, r.Bottom) }

// Size returns (Width, Height).
func (r Rect[T]) Size() vector.Vector2[T] { return vector.New2(r.Width(), r.Height()) }

// LT returns the (Left, Top) corner.
func (r Rect[T]) LT() vector.Vector2[T] { return vector.New2(r.Left, r.Top) }

// RT returns the (Right, Top) corner.
func (r Rect[T]) RT() vector.Vector2[T] { return vector.New2(r.Right, r.Top) }

// LB returns the (Left, Bottom) corner.
func (r Rect[T]) LB() vector.Vector2[T] { return vector.New2(r.Left, r.Bottom) }

// RB returns the (Right, Bottom) corner.
func (r Rect[T]) RB() vector.Vector2[T] { return vector.New2(r.Right, r.Bottom) }

// Center returns the midpoint; integer rects round towards Left/Bottom.
func (r Rect[T]) Center() vector.Vector2[T] {
	return vector.New2(r.Left+r.Width()/2, r.Bottom+r.Height()/2)
}

// Area returns Width·Height.
func (r Rect[T]) Area() T { return r.Width() * r.Height() }

// IsEmpty reports a rect with no area. Empty rects contain nothing.
func (r Rect[T]) IsEmpty() bool { return r.Area() <= 0 }

// IsEqual is exact equality, identical to ==.
func (r Rect[T]) IsEqual(o Rect[T]) bool { return r == o }

// IsInside classifies (x, y): FullyInside when strictly interior, OnTheEdge
// when on a boundary within range on the other axis, else Outside.
func (r Rect[T]) IsInside(x, y T) IntersectionResult {
	if r.IsEmpty() {
		return Outside
	}
	if r.Left < x && x < r.Right && r.Bottom < y && y < r.Top {
		return FullyInside
	}
	onVertical := (x == r.Left || x == r.Right) && r.Bottom <= y && y <= r.Top
	onHorizontal := (y == r.Top || y == r.Bottom) && r.Left <= x && x <= r.Right
	if onVertical || onHorizontal {
		return OnTheEdge
	}
	return Outside
}

// IsInsidePoint is IsInside for a vector.
func (r Rect[T]) IsInsidePoint(p vector.Vector2[T]) IntersectionResult { return r.IsInside(p.X, p.Y) }

// IsInsideRect combines the classification of the four corners of o:
// all fully inside, some fully inside, some on the edge, or none.
func (r Rect[T]) IsInsideRect(o Rect[T]) IntersectionResult {
	if r.IsEmpty() || o.IsEmpty() {
		return Outside
	}
	corners := [4]IntersectionResult{
		r.IsInsidePoint(o.LT()),
		r.IsInsidePoint(o.LB()),
		r.IsInsidePoint(o.RT()),
		r.IsInsidePoint(o.RB()),
	}

	full, edge := 0, 0
	for _, c := range corners {
		switch c {
		case FullyInside:
			full++
		case OnTheEdge:
			edge++
		}
	}
	switch {
	case full == len(corners):
		return FullyInside
	case full > 0:
		return PartiallyInside
	case edge > 0:
		return OnTheEdge
	}
	return Outside
}
