// SPDX-License-Identifier: MIT

package quaternion

import (
	"github.com/cespare/xxhash/v2"

	"github.com/katalvlaran/lvmath/scalar"
)

// String returns "W, X, Y, Z".
func (q Quaternion[T]) String() string { return scalar.FormatList(q.W, q.X, q.Y, q.Z) }

// Parse reads the String form.
func Parse[T scalar.Real](s string) (Quaternion[T], error) {
	var a [ComponentCount]T
	if err := scalar.ParseList(s, a[:]); err != nil {
		return Quaternion[T]{}, quaternionErrorf("quaternion: Parse", err)
	}
	return FromArray(a), nil
}

// FromString parses s into q; q is untouched on failure.
func (q *Quaternion[T]) FromString(s string) error {
	p, err := Parse[T](s)
	if err != nil {
		return err
	}
	*q = p
	return nil
}

// BinarySize returns the encoded size in bytes.
func (Quaternion[T]) BinarySize() int { return ComponentCount * scalar.Size[T]() }

// AppendBinary appends W, X, Y, Z little-endian to b.
func (q Quaternion[T]) AppendBinary(b []byte) ([]byte, error) {
	return scalar.AppendAll(b, q.W, q.X, q.Y, q.Z), nil
}

// MarshalBinary encodes W, X, Y, Z little-endian.
func (q Quaternion[T]) MarshalBinary() ([]byte, error) {
	return q.AppendBinary(make([]byte, 0, q.BinarySize()))
}

// UnmarshalBinary decodes data into q; it must be exactly BinarySize bytes.
func (q *Quaternion[T]) UnmarshalBinary(data []byte) error {
	var a [ComponentCount]T
	if err := scalar.DecodeAll(data, a[:]); err != nil {
		return quaternionErrorf("quaternion: UnmarshalBinary", err)
	}
	*q = FromArray(a)
	return nil
}

// Hash returns the xxhash of the binary form.
func (q Quaternion[T]) Hash() uint64 {
	var buf [32]byte
	return xxhash.Sum64(scalar.AppendAll(buf[:0], q.W, q.X, q.Y, q.Z))
}
