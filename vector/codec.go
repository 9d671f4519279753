// SPDX-License-Identifier: MIT

package vector

import (
	"github.com/cespare/xxhash/v2"

	"github.com/katalvlaran/lvmath/scalar"
)

// ---------- Vector2 ----------

// String returns "x, y" with the canonical scalar formatting.
func (v Vector2[T]) String() string { return scalar.FormatList(v.X, v.Y) }

// Parse2 reads the String form of a Vector2.
func Parse2[T scalar.Number](s string) (Vector2[T], error) {
	var a [2]T
	if err := scalar.ParseList(s, a[:]); err != nil {
		return Vector2[T]{}, vectorErrorf("vector: Parse2", err)
	}
	return FromArray2(a), nil
}

// FromString parses s into v; v is untouched on failure.
func (v *Vector2[T]) FromString(s string) error {
	p, err := Parse2[T](s)
	if err != nil {
		return err
	}
	*v = p
	return nil
}

// BinarySize returns the encoded size in bytes.
func (Vector2[T]) BinarySize() int { return Vector2ComponentCount * scalar.Size[T]() }

// AppendBinary appends the little-endian components to b.
func (v Vector2[T]) AppendBinary(b []byte) ([]byte, error) {
	return scalar.AppendAll(b, v.X, v.Y), nil
}

// MarshalBinary encodes v in its little-endian layout.
func (v Vector2[T]) MarshalBinary() ([]byte, error) {
	return v.AppendBinary(make([]byte, 0, v.BinarySize()))
}

// UnmarshalBinary decodes data into v; it must be exactly BinarySize bytes.
func (v *Vector2[T]) UnmarshalBinary(data []byte) error {
	var a [2]T
	if err := scalar.DecodeAll(data, a[:]); err != nil {
		return vectorErrorf("vector: Vector2.UnmarshalBinary", err)
	}
	*v = FromArray2(a)
	return nil
}

// Hash returns the xxhash of the binary form. Equal vectors hash equally;
// note that 0 and -0 differ.
func (v Vector2[T]) Hash() uint64 {
	var buf [16]byte
	return xxhash.Sum64(scalar.AppendAll(buf[:0], v.X, v.Y))
}

// ---------- Vector3 ----------

// String returns "x, y, z" with the canonical scalar formatting.
func (v Vector3[T]) String() string { return scalar.FormatList(v.X, v.Y, v.Z) }

// Parse3 reads the String form of a Vector3.
func Parse3[T scalar.Number](s string) (Vector3[T], error) {
	var a [3]T
	if err := scalar.ParseList(s, a[:]); err != nil {
		return Vector3[T]{}, vectorErrorf("vector: Parse3", err)
	}
	return FromArray3(a), nil
}

// FromString parses s into v; v is untouched on failure.
func (v *Vector3[T]) FromString(s string) error {
	p, err := Parse3[T](s)
	if err != nil {
		return err
	}
	*v = p
	return nil
}

// BinarySize returns the encoded size in bytes.
func (Vector3[T]) BinarySize() int { return Vector3ComponentCount * scalar.Size[T]() }

// AppendBinary appends the little-endian layout of v to b.
func (v Vector3[T]) AppendBinary(b []byte) ([]byte, error) {
	return scalar.AppendAll(b, v.X, v.Y, v.Z), nil
}

// MarshalBinary encodes v in its little-endian layout.
func (v Vector3[T]) MarshalBinary() ([]byte, error) {
	return v.AppendBinary(make([]byte, 0, v.BinarySize()))
}

// UnmarshalBinary decodes data into v; it must be exactly BinarySize bytes.
func (v *Vector3[T]) UnmarshalBinary(data []byte) error {
	var a [3]T
	if err := scalar.DecodeAll(data, a[:]); err != nil {
		return vectorErrorf("vector: Vector3.UnmarshalBinary", err)
	}
	*v = FromArray3(a)
	return nil
}

// Hash returns the xxhash of the binary form of v.
func (v Vector3[T]) Hash() uint64 {
	var buf [24]byte
	return xxhash.Sum64(scalar.AppendAll(buf[:0], v.X, v.Y, v.Z))
}

// ---------- Vector4 ----------

// String returns "x, y, z, w" with the canonical scalar formatting.
func (v Vector4[T]) String() string { return scalar.FormatList(v.X, v.Y, v.Z, v.W) }

// Parse4 reads the String form of a Vector4.
func Parse4[T scalar.Number](s string) (Vector4[T], error) {
	var a [4]T
	if err := scalar.ParseList(s, a[:]); err != nil {
		return Vector4[T]{}, vectorErrorf("vector: Parse4", err)
	}
	return FromArray4(a), nil
}

// FromString parses s into v; v is untouched on failure.
func (v *Vector4[T]) FromString(s string) error {
	p, err := Parse4[T](s)
	if err != nil {
		return err
	}
	*v = p
	return nil
}

// BinarySize returns the encoded size in bytes.
func (Vector4[T]) BinarySize() int { return Vector4ComponentCount * scalar.Size[T]() }

// AppendBinary appends the little-endian layout of v to b.
func (v Vector4[T]) AppendBinary(b []byte) ([]byte, error) {
	return scalar.AppendAll(b, v.X, v.Y, v.Z, v.W), nil
}

// MarshalBinary encodes v in its little-endian layout.
func (v Vector4[T]) MarshalBinary() ([]byte, error) {
	return v.AppendBinary(make([]byte, 0, v.BinarySize()))
}

// UnmarshalBinary decodes data into v; it must be exactly BinarySize bytes.
func (v *Vector4[T]) UnmarshalBinary(data []byte) error {
	var a [4]T
	if err := scalar.DecodeAll(data, a[:]); err != nil {
		return vectorErrorf("vector: Vector4.UnmarshalBinary", err)
	}
	*v = FromArray4(a)
	return nil
}

// Hash returns the xxhash of the binary form of v.
func (v Vector4[T]) Hash() uint64 {
	var buf [32]byte
	return xxhash.Sum64(scalar.AppendAll(buf[:0], v.X, v.Y, v.Z, v.W))
}
