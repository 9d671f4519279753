// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/katalvlaran/lvmath/scalar"
)

// Vector2b is a two-component boolean mask.
type Vector2b struct {
	X bool `json:"x" yaml:"x"`
	Y bool `json:"y" yaml:"y"`
}

// Vector3b is a three-component boolean mask.
type Vector3b struct {
	X bool `json:"x" yaml:"x"`
	Y bool `json:"y" yaml:"y"`
	Z bool `json:"z" yaml:"z"`
}

// Vector4b is a four-component boolean mask.
type Vector4b struct {
	X bool `json:"x" yaml:"x"`
	Y bool `json:"y" yaml:"y"`
	Z bool `json:"z" yaml:"z"`
	W bool `json:"w" yaml:"w"`
}

// And returns the component-wise conjunction. Masks from Equal2 and Less2
// combine with And/Or/Not, and All/Any collapse them to a single bool.
func (v Vector2b) And(o Vector2b) Vector2b { return Vector2b{v.X && o.X, v.Y && o.Y} }

// Or returns the component-wise disjunction.
func (v Vector2b) Or(o Vector2b) Vector2b { return Vector2b{v.X || o.X, v.Y || o.Y} }

// Xor reports, per component, whether v and o differ.
func (v Vector2b) Xor(o Vector2b) Vector2b { return Vector2b{v.X != o.X, v.Y != o.Y} }

// Not flips every component.
func (v Vector2b) Not() Vector2b { return Vector2b{!v.X, !v.Y} }

// All reports whether every component is true.
func (v Vector2b) All() bool { return v.X && v.Y }

// Any reports whether at least one component is true.
func (v Vector2b) Any() bool { return v.X || v.Y }

// None reports whether every component is false.
func (v Vector2b) None() bool { return !v.Any() }

// IsEqual reports exact equality with o.
func (v Vector2b) IsEqual(o Vector2b) bool { return v == o }

// ToArray returns the components in X, Y order.
func (v Vector2b) ToArray() [2]bool { return [2]bool{v.X, v.Y} }

// And returns the component-wise conjunction.
func (v Vector3b) And(o Vector3b) Vector3b { return Vector3b{v.X && o.X, v.Y && o.Y, v.Z && o.Z} }

// Or returns the component-wise disjunction.
func (v Vector3b) Or(o Vector3b) Vector3b { return Vector3b{v.X || o.X, v.Y || o.Y, v.Z || o.Z} }

// Xor reports, per component, whether v and o differ.
func (v Vector3b) Xor(o Vector3b) Vector3b { return Vector3b{v.X != o.X, v.Y != o.Y, v.Z != o.Z} }

// Not flips every component.
func (v Vector3b) Not() Vector3b { return Vector3b{!v.X, !v.Y, !v.Z} }

// All reports whether every component is true.
func (v Vector3b) All() bool { return v.X && v.Y && v.Z }

// Any reports whether at least one component is true.
func (v Vector3b) Any() bool { return v.X || v.Y || v.Z }

// None reports whether every component is false.
func (v Vector3b) None() bool { return !v.Any() }

// IsEqual reports exact equality with o.
func (v Vector3b) IsEqual(o Vector3b) bool { return v == o }

// ToArray returns the components in X, Y, Z order.
func (v Vector3b) ToArray() [3]bool { return [3]bool{v.X, v.Y, v.Z} }

// And returns the component-wise conjunction.
func (v Vector4b) And(o Vector4b) Vector4b {
	return Vector4b{v.X && o.X, v.Y && o.Y, v.Z && o.Z, v.W && o.W}
}

// Or returns the component-wise disjunction.
func (v Vector4b) Or(o Vector4b) Vector4b {
	return Vector4b{v.X || o.X, v.Y || o.Y, v.Z || o.Z, v.W || o.W}
}

// Xor reports, per component, whether v and o differ.
func (v Vector4b) Xor(o Vector4b) Vector4b {
	return Vector4b{v.X != o.X, v.Y != o.Y, v.Z != o.Z, v.W != o.W}
}

// Not flips every component.
func (v Vector4b) Not() Vector4b { return Vector4b{!v.X, !v.Y, !v.Z, !v.W} }

// All reports whether every component is true.
func (v Vector4b) All() bool { return v.X && v.Y && v.Z && v.W }

// Any reports whether at least one component is true.
func (v Vector4b) Any() bool { return v.X || v.Y || v.Z || v.W }

// None reports whether every component is false.
func (v Vector4b) None() bool { return !v.Any() }

// IsEqual reports exact equality with o.
func (v Vector4b) IsEqual(o Vector4b) bool { return v == o }

// ToArray returns the components in X, Y, Z, W order.
func (v Vector4b) ToArray() [4]bool { return [4]bool{v.X, v.Y, v.Z, v.W} }

// Component comparisons.

// Equal2 compares a and b component by component.
func Equal2[T scalar.Number](a, b Vector2[T]) Vector2b { return Vector2b{a.X == b.X, a.Y == b.Y} }

// Less2 reports a < b per component.
func Less2[T scalar.Number](a, b Vector2[T]) Vector2b { return Vector2b{a.X < b.X, a.Y < b.Y} }

// Equal3 compares a and b component by component.
func Equal3[T scalar.Number](a, b Vector3[T]) Vector3b {
	return Vector3b{a.X == b.X, a.Y == b.Y, a.Z == b.Z}
}

// Less3 reports a < b per component.
func Less3[T scalar.Number](a, b Vector3[T]) Vector3b {
	return Vector3b{a.X < b.X, a.Y < b.Y, a.Z < b.Z}
}

// Equal4 compares a and b component by component.
func Equal4[T scalar.Number](a, b Vector4[T]) Vector4b {
	return Vector4b{a.X == b.X, a.Y == b.Y, a.Z == b.Z, a.W == b.W}
}

// Less4 reports a < b per component.
func Less4[T scalar.Number](a, b Vector4[T]) Vector4b {
	return Vector4b{a.X < b.X, a.Y < b.Y, a.Z < b.Z, a.W < b.W}
}

// NearlyEqual3 compares a and b per component within tolerance.
func NearlyEqual3[T scalar.Number](a, b Vector3[T], tolerance ...T) Vector3b {
	tol := scalar.Tol(tolerance...)
	return Vector3b{
		scalar.IsNearlyEqual(a.X, b.X, tol),
		scalar.IsNearlyEqual(a.Y, b.Y, tol),
		scalar.IsNearlyEqual(a.Z, b.Z, tol),
	}
}

// ---------- text and binary forms ----------

func formatBools(values ...bool) string {
	parts := make([]string, len(values))
	for i, b := range values {
		parts[i] = strconv.FormatBool(b)
	}
	return strings.Join(parts, scalar.Separator)
}

func parseBools(s string, dst []bool) error {
	tokens := strings.Split(s, ",")
	if len(tokens) != len(dst) {
		return fmt.Errorf("%w: expected %d tokens, obtained %d", scalar.ErrParse, len(dst), len(tokens))
	}
	tmp := make([]bool, len(dst))
	for i, tok := range tokens {
		b, err := strconv.ParseBool(strings.TrimSpace(tok))
		if err != nil {
			return fmt.Errorf("%w: %q", scalar.ErrParse, tok)
		}
		tmp[i] = b
	}
	copy(dst, tmp)
	return nil
}

func appendBools(b []byte, values ...bool) []byte {
	for _, v := range values {
		if v {
			b = append(b, 1)
		} else {
			b = append(b, 0)
		}
	}
	return b
}

func decodeBools(data []byte, dst []bool) error {
	if len(data) != len(dst) {
		return fmt.Errorf("%w: expected %d bytes, obtained %d", scalar.ErrBufferSize, len(dst), len(data))
	}
	for i, c := range data {
		dst[i] = c != 0
	}
	return nil
}

// String formats v as comma-separated booleans, e.g. "true, false".
func (v Vector2b) String() string { return formatBools(v.X, v.Y) }

// String formats v like Vector2b.String.
func (v Vector3b) String() string { return formatBools(v.X, v.Y, v.Z) }

// String formats v like Vector2b.String.
func (v Vector4b) String() string { return formatBools(v.X, v.Y, v.Z, v.W) }

// FromString parses "true, false"; v is untouched on failure.
func (v *Vector2b) FromString(s string) error {
	var a [2]bool
	if err := parseBools(s, a[:]); err != nil {
		return err
	}
	*v = Vector2b{a[0], a[1]}
	return nil
}

// FromString parses the String form into v; v is untouched on failure.
func (v *Vector3b) FromString(s string) error {
	var a [3]bool
	if err := parseBools(s, a[:]); err != nil {
		return err
	}
	*v = Vector3b{a[0], a[1], a[2]}
	return nil
}

// FromString parses the String form into v; v is untouched on failure.
func (v *Vector4b) FromString(s string) error {
	var a [4]bool
	if err := parseBools(s, a[:]); err != nil {
		return err
	}
	*v = Vector4b{a[0], a[1], a[2], a[3]}
	return nil
}

// Boolean masks encode one byte per component: 0 or 1.

// BinarySize returns the encoded size in bytes.
func (Vector2b) BinarySize() int { return 2 }

// BinarySize returns the encoded size in bytes.
func (Vector3b) BinarySize() int { return 3 }

// BinarySize returns the encoded size in bytes.
func (Vector4b) BinarySize() int { return 4 }

// MarshalBinary encodes v as 2 bytes, one per component (1 for true).
func (v Vector2b) MarshalBinary() ([]byte, error) { return appendBools(nil, v.X, v.Y), nil }

// MarshalBinary encodes v as 3 bytes, one per component (1 for true).
func (v Vector3b) MarshalBinary() ([]byte, error) { return appendBools(nil, v.X, v.Y, v.Z), nil }

// MarshalBinary encodes v as 4 bytes, one per component (1 for true).
func (v Vector4b) MarshalBinary() ([]byte, error) { return appendBools(nil, v.X, v.Y, v.Z, v.W), nil }

// UnmarshalBinary decodes exactly two bytes into v. Any non-zero byte reads
// as true, so data written by other encoders that use 0xFF still decodes.
// A wrong length fails with scalar.ErrBufferSize and leaves v untouched.
func (v *Vector2b) UnmarshalBinary(data []byte) error {
	var a [2]bool
	if err := decodeBools(data, a[:]); err != nil {
		return vectorErrorf("vector: Vector2b.UnmarshalBinary", err)
	}
	*v = Vector2b{a[0], a[1]}
	return nil
}

// UnmarshalBinary decodes data into v; it must be exactly BinarySize bytes.
func (v *Vector3b) UnmarshalBinary(data []byte) error {
	var a [3]bool
	if err := decodeBools(data, a[:]); err != nil {
		return vectorErrorf("vector: Vector3b.UnmarshalBinary", err)
	}
	*v = Vector3b{a[0], a[1], a[2]}
	return nil
}

// UnmarshalBinary decodes data into v; it must be exactly BinarySize bytes.
func (v *Vector4b) UnmarshalBinary(data []byte) error {
	var a [4]bool
	if err := decodeBools(data, a[:]); err != nil {
		return vectorErrorf("vector: Vector4b.UnmarshalBinary", err)
	}
	*v = Vector4b{a[0], a[1], a[2], a[3]}
	return nil
}

// Hash returns the xxhash of the binary form of v.
func (v Vector2b) Hash() uint64 { return xxhash.Sum64(appendBools(make([]byte, 0, 2), v.X, v.Y)) }

// Hash returns the xxhash of the binary form of v.
func (v Vector3b) Hash() uint64 { return xxhash.Sum64(appendBools(make([]byte, 0, 3), v.X, v.Y, v.Z)) }

// Hash returns the xxhash of the binary form of v.
func (v Vector4b) Hash() uint64 {
	return xxhash.Sum64(appendBools(make([]byte, 0, 4), v.X, v.Y, v.Z, v.W))
}
