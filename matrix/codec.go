// SPDX-License-Identifier: MIT

package matrix

import (
	"encoding/json"
	"fmt"

	"github.com/cespare/xxhash/v2"

	"github.com/katalvlaran/lvmath/scalar"
)

// Text, binary and JSON forms all use the flat row-major element sequence.

// ---------- Matrix2 ----------

// String returns the flat row-major element list.
func (m Matrix2[T]) String() string {
	a := m.ToArray()
	return scalar.FormatList(a[:]...)
}

// Parse2 reads the String form of a Matrix2.
func Parse2[T scalar.Real](s string) (Matrix2[T], error) {
	var a [Matrix2ComponentCount]T
	if err := scalar.ParseList(s, a[:]); err != nil {
		return Matrix2[T]{}, matrixErrorf("matrix: Parse2", err)
	}
	return FromArray2(a), nil
}

// FromString parses s into m; m is untouched on failure.
func (m *Matrix2[T]) FromString(s string) error {
	p, err := Parse2[T](s)
	if err != nil {
		return err
	}
	*m = p
	return nil
}

// BinarySize returns the encoded size in bytes.
func (Matrix2[T]) BinarySize() int { return Matrix2ComponentCount * scalar.Size[T]() }

// AppendBinary appends the little-endian layout of m to b.
func (m Matrix2[T]) AppendBinary(b []byte) ([]byte, error) {
	a := m.ToArray()
	return scalar.AppendAll(b, a[:]...), nil
}

// MarshalBinary encodes m in its little-endian layout.
func (m Matrix2[T]) MarshalBinary() ([]byte, error) {
	return m.AppendBinary(make([]byte, 0, m.BinarySize()))
}

// UnmarshalBinary decodes data into m; it must be exactly BinarySize bytes.
func (m *Matrix2[T]) UnmarshalBinary(data []byte) error {
	var a [Matrix2ComponentCount]T
	if err := scalar.DecodeAll(data, a[:]); err != nil {
		return matrixErrorf("matrix: Matrix2.UnmarshalBinary", err)
	}
	*m = FromArray2(a)
	return nil
}

// MarshalJSON encodes m as a flat row-major array, [r00, r01, r10, r11].
// Rows are not nested; Matrix3 and Matrix4 use the same flat shape with 9
// and 16 numbers.
func (m Matrix2[T]) MarshalJSON() ([]byte, error) { return json.Marshal(m.ToArray()) }

// UnmarshalJSON reads a flat row-major array of exactly 4 numbers.
func (m *Matrix2[T]) UnmarshalJSON(data []byte) error {
	var a [Matrix2ComponentCount]T
	if err := unmarshalFlat(data, a[:]); err != nil {
		return matrixErrorf("matrix: Matrix2.UnmarshalJSON", err)
	}
	*m = FromArray2(a)
	return nil
}

// Hash returns the xxhash of the binary form of m.
func (m Matrix2[T]) Hash() uint64 {
	var buf [Matrix2ComponentCount * 8]byte
	b, _ := m.AppendBinary(buf[:0])
	return xxhash.Sum64(b)
}

// ---------- Matrix3 ----------

// String returns the elements as a flat row-major list.
func (m Matrix3[T]) String() string {
	a := m.ToArray()
	return scalar.FormatList(a[:]...)
}

// Parse3 reads the String form of a Matrix3.
func Parse3[T scalar.Real](s string) (Matrix3[T], error) {
	var a [Matrix3ComponentCount]T
	if err := scalar.ParseList(s, a[:]); err != nil {
		return Matrix3[T]{}, matrixErrorf("matrix: Parse3", err)
	}
	return FromArray3(a), nil
}

// FromString parses s into m; m is untouched on failure.
func (m *Matrix3[T]) FromString(s string) error {
	p, err := Parse3[T](s)
	if err != nil {
		return err
	}
	*m = p
	return nil
}

// BinarySize returns the encoded size in bytes.
func (Matrix3[T]) BinarySize() int { return Matrix3ComponentCount * scalar.Size[T]() }

// AppendBinary appends the little-endian layout of m to b.
func (m Matrix3[T]) AppendBinary(b []byte) ([]byte, error) {
	a := m.ToArray()
	return scalar.AppendAll(b, a[:]...), nil
}

// MarshalBinary encodes m in its little-endian layout.
func (m Matrix3[T]) MarshalBinary() ([]byte, error) {
	return m.AppendBinary(make([]byte, 0, m.BinarySize()))
}

// UnmarshalBinary decodes data into m; it must be exactly BinarySize bytes.
func (m *Matrix3[T]) UnmarshalBinary(data []byte) error {
	var a [Matrix3ComponentCount]T
	if err := scalar.DecodeAll(data, a[:]); err != nil {
		return matrixErrorf("matrix: Matrix3.UnmarshalBinary", err)
	}
	*m = FromArray3(a)
	return nil
}

// MarshalJSON encodes m as a flat row-major array.
func (m Matrix3[T]) MarshalJSON() ([]byte, error) { return json.Marshal(m.ToArray()) }

// UnmarshalJSON reads a flat row-major array of exactly 9 numbers.
func (m *Matrix3[T]) UnmarshalJSON(data []byte) error {
	var a [Matrix3ComponentCount]T
	if err := unmarshalFlat(data, a[:]); err != nil {
		return matrixErrorf("matrix: Matrix3.UnmarshalJSON", err)
	}
	*m = FromArray3(a)
	return nil
}

// Hash returns the xxhash of the binary form of m.
func (m Matrix3[T]) Hash() uint64 {
	var buf [Matrix3ComponentCount * 8]byte
	b, _ := m.AppendBinary(buf[:0])
	return xxhash.Sum64(b)
}

// ---------- Matrix4 ----------

// String returns the elements as a flat row-major list.
func (m Matrix4[T]) String() string {
	a := m.ToArray()
	return scalar.FormatList(a[:]...)
}

// Parse4 reads the String form of a Matrix4.
func Parse4[T scalar.Real](s string) (Matrix4[T], error) {
	var a [Matrix4ComponentCount]T
	if err := scalar.ParseList(s, a[:]); err != nil {
		return Matrix4[T]{}, matrixErrorf("matrix: Parse4", err)
	}
	return FromArray4(a), nil
}

// FromString parses s into m; m is untouched on failure.
func (m *Matrix4[T]) FromString(s string) error {
	p, err := Parse4[T](s)
	if err != nil {
		return err
	}
	*m = p
	return nil
}

// BinarySize returns the encoded size in bytes.
func (Matrix4[T]) BinarySize() int { return Matrix4ComponentCount * scalar.Size[T]() }

// AppendBinary appends the little-endian layout of m to b.
func (m Matrix4[T]) AppendBinary(b []byte) ([]byte, error) {
	a := m.ToArray()
	return scalar.AppendAll(b, a[:]...), nil
}

// MarshalBinary encodes m in its little-endian layout.
func (m Matrix4[T]) MarshalBinary() ([]byte, error) {
	return m.AppendBinary(make([]byte, 0, m.BinarySize()))
}

// UnmarshalBinary decodes data into m; it must be exactly BinarySize bytes.
func (m *Matrix4[T]) UnmarshalBinary(data []byte) error {
	var a [Matrix4ComponentCount]T
	if err := scalar.DecodeAll(data, a[:]); err != nil {
		return matrixErrorf("matrix: Matrix4.UnmarshalBinary", err)
	}
	*m = FromArray4(a)
	return nil
}

// MarshalJSON encodes m as a flat row-major array.
func (m Matrix4[T]) MarshalJSON() ([]byte, error) { return json.Marshal(m.ToArray()) }

// UnmarshalJSON reads a flat row-major array of exactly 16 numbers.
func (m *Matrix4[T]) UnmarshalJSON(data []byte) error {
	var a [Matrix4ComponentCount]T
	if err := unmarshalFlat(data, a[:]); err != nil {
		return matrixErrorf("matrix: Matrix4.UnmarshalJSON", err)
	}
	*m = FromArray4(a)
	return nil
}

// Hash returns the xxhash of the binary form of m.
func (m Matrix4[T]) Hash() uint64 {
	var buf [Matrix4ComponentCount * 8]byte
	b, _ := m.AppendBinary(buf[:0])
	return xxhash.Sum64(b)
}

// unmarshalFlat decodes a JSON array that must hold exactly len(dst) numbers.
func unmarshalFlat[T scalar.Real](data []byte, dst []T) error {
	var values []T
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}
	if len(values) != len(dst) {
		return fmt.Errorf("%w: expected %d, obtained %d", ErrJSONLength, len(dst), len(values))
	}
	copy(dst, values)
	return nil
}
