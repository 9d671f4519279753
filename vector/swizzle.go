// SPDX-License-Identifier: MIT

package vector

import "github.com/katalvlaran/lvmath/scalar"

// Ref2 aliases two fields of a larger value. Writes through A and B land in
// the source fields in the order named by the swizzle that produced the Ref2
// (XZRef → A is X, B is Z). A Ref2 must not outlive the value it borrows from.
type Ref2[T scalar.Number] struct {
	A, B *T
}

// Get copies the referenced scalars into a Vector2.
func (r Ref2[T]) Get() Vector2[T] { return Vector2[T]{*r.A, *r.B} }

// Set writes v.X through A and v.Y through B.
func (r Ref2[T]) Set(v Vector2[T]) {
	*r.A = v.X
	*r.B = v.Y
}

// Ref3 aliases three fields of a larger value.
type Ref3[T scalar.Number] struct {
	A, B, C *T
}

// Get copies the referenced scalars into a Vector3.
func (r Ref3[T]) Get() Vector3[T] { return Vector3[T]{*r.A, *r.B, *r.C} }

// Set writes v through the references in order.
func (r Ref3[T]) Set(v Vector3[T]) {
	*r.A = v.X
	*r.B = v.Y
	*r.C = v.Z
}

// Ref4 aliases four scalars, e.g. a matrix column.
type Ref4[T scalar.Number] struct {
	A, B, C, D *T
}

// Get copies the referenced scalars into a Vector4.
func (r Ref4[T]) Get() Vector4[T] { return Vector4[T]{*r.A, *r.B, *r.C, *r.D} }

// Set writes v through the references in order.
func (r Ref4[T]) Set(v Vector4[T]) {
	*r.A = v.X
	*r.B = v.Y
	*r.C = v.Z
	*r.D = v.W
}

// Vector3 swizzles. The plain form copies; the Ref form aliases.

// XY copies (X, Y) into a Vector2.
func (v Vector3[T]) XY() Vector2[T] { return Vector2[T]{v.X, v.Y} }

// XZ copies (X, Z) into a Vector2.
func (v Vector3[T]) XZ() Vector2[T] { return Vector2[T]{v.X, v.Z} }

// YZ copies (Y, Z) into a Vector2.
func (v Vector3[T]) YZ() Vector2[T] { return Vector2[T]{v.Y, v.Z} }

// XYRef returns a Ref2 aliasing v.X and v.Y.
func (v *Vector3[T]) XYRef() Ref2[T] { return Ref2[T]{&v.X, &v.Y} }

// XZRef returns a Ref2 aliasing v.X and v.Z.
func (v *Vector3[T]) XZRef() Ref2[T] { return Ref2[T]{&v.X, &v.Z} }

// YZRef returns a Ref2 aliasing v.Y and v.Z.
func (v *Vector3[T]) YZRef() Ref2[T] { return Ref2[T]{&v.Y, &v.Z} }

// Vector4 swizzles.

// XY copies (X, Y) into a Vector2.
func (v Vector4[T]) XY() Vector2[T] { return Vector2[T]{v.X, v.Y} }

// XZ copies (X, Z) into a Vector2.
func (v Vector4[T]) XZ() Vector2[T] { return Vector2[T]{v.X, v.Z} }

// XW copies (X, W) into a Vector2.
func (v Vector4[T]) XW() Vector2[T] { return Vector2[T]{v.X, v.W} }

// YZ copies (Y, Z) into a Vector2.
func (v Vector4[T]) YZ() Vector2[T] { return Vector2[T]{v.Y, v.Z} }

// YW copies (Y, W) into a Vector2.
func (v Vector4[T]) YW() Vector2[T] { return Vector2[T]{v.Y, v.W} }

// ZW copies (Z, W) into a Vector2.
func (v Vector4[T]) ZW() Vector2[T] { return Vector2[T]{v.Z, v.W} }

// XYZ copies (X, Y, Z) into a Vector3.
func (v Vector4[T]) XYZ() Vector3[T] { return Vector3[T]{v.X, v.Y, v.Z} }

// XYW copies (X, Y, W) into a Vector3.
func (v Vector4[T]) XYW() Vector3[T] { return Vector3[T]{v.X, v.Y, v.W} }

// XZW copies (X, Z, W) into a Vector3.
func (v Vector4[T]) XZW() Vector3[T] { return Vector3[T]{v.X, v.Z, v.W} }

// YZW copies (Y, Z, W) into a Vector3.
func (v Vector4[T]) YZW() Vector3[T] { return Vector3[T]{v.Y, v.Z, v.W} }

// XYRef returns a Ref2 aliasing v.X and v.Y.
func (v *Vector4[T]) XYRef() Ref2[T] { return Ref2[T]{&v.X, &v.Y} }

// XZRef returns a Ref2 aliasing v.X and v.Z.
func (v *Vector4[T]) XZRef() Ref2[T] { return Ref2[T]{&v.X, &v.Z} }

// XWRef returns a Ref2 aliasing v.X and v.W.
func (v *Vector4[T]) XWRef() Ref2[T] { return Ref2[T]{&v.X, &v.W} }

// YZRef returns a Ref2 aliasing v.Y and v.Z.
func (v *Vector4[T]) YZRef() Ref2[T] { return Ref2[T]{&v.Y, &v.Z} }

// YWRef returns a Ref2 aliasing v.Y and v.W.
func (v *Vector4[T]) YWRef() Ref2[T] { return Ref2[T]{&v.Y, &v.W} }

// ZWRef returns a Ref2 aliasing v.Z and v.W.
func (v *Vector4[T]) ZWRef() Ref2[T] { return Ref2[T]{&v.Z, &v.W} }

// XYZRef returns a Ref3 aliasing v.X, v.Y and v.Z.
func (v *Vector4[T]) XYZRef() Ref3[T] { return Ref3[T]{&v.X, &v.Y, &v.Z} }

// XYWRef returns a Ref3 aliasing v.X, v.Y and v.W.
func (v *Vector4[T]) XYWRef() Ref3[T] { return Ref3[T]{&v.X, &v.Y, &v.W} }

// XZWRef returns a Ref3 aliasing v.X, v.Z and v.W.
func (v *Vector4[T]) XZWRef() Ref3[T] { return Ref3[T]{&v.X, &v.Z, &v.W} }

// YZWRef returns a Ref3 aliasing v.Y, v.Z and v.W.
func (v *Vector4[T]) YZWRef() Ref3[T] { return Ref3[T]{&v.Y, &v.Z, &v.W} }
