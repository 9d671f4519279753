// SPDX-License-Identifier: MIT

package half

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvmath/scalar"
)

var (
	// ErrNotFinite is returned when a NaN or infinite half is marshaled to JSON,
	// which has no literal for those values.
	ErrNotFinite = errors.New("half: value is not finite")

	// ErrSize is returned by UnmarshalBinary when the input is not exactly 2 bytes.
	ErrSize = errors.New("half: binary form must be 2 bytes")
)

// Well-known bit patterns.
const (
	RawZero     uint16 = 0x0000
	RawOne      uint16 = 0x3c00
	RawMax      uint16 = 0x7bff // 65504
	RawInf      uint16 = 0x7c00
	RawNegInf   uint16 = 0xfc00
	RawQuietNaN uint16 = 0x7e00
)

// Size is the encoded width of a Half in bytes.
const Size = 2

// Half is a 16-bit floating-point value.
type Half struct {
	bits uint16
}

// New encodes v, which is first converted to float32.
func New[T scalar.Number](v T) Half {
	return Half{bits: Encode(float32(v))}
}

// FromRaw wraps an existing bit pattern.
func FromRaw(bits uint16) Half { return Half{bits: bits} }

// Set encodes f into h.
func (h *Half) Set(f float32) { h.bits = Encode(f) }

// SetFloat64 encodes f into h through float32.
func (h *Half) SetFloat64(f float64) { h.bits = Encode(float32(f)) }

// Get decodes h.
func (h Half) Get() float32 { return Decode(h.bits) }

// Float64 decodes h and widens the result.
func (h Half) Float64() float64 { return float64(Decode(h.bits)) }

// Raw returns the bit pattern. Meant for serialization.
func (h Half) Raw() uint16 { return h.bits }

// SetRaw replaces the bit pattern.
func (h *Half) SetRaw(bits uint16) { h.bits = bits }

// IsNaN reports whether h encodes a NaN.
func (h Half) IsNaN() bool {
	return h.bits&exponentMask == exponentMask && h.bits&mantissaMask != 0
}

// IsInf reports whether h is an infinity with the given sign; sign 0 matches both.
func (h Half) IsInf(sign int) bool {
	switch {
	case sign > 0:
		return h.bits == RawInf
	case sign < 0:
		return h.bits == RawNegInf
	default:
		return h.bits&^signMask == RawInf
	}
}

// String formats the decoded value like any float32 scalar.
func (h Half) String() string { return scalar.Format(h.Get()) }

// Parse reads a decimal number and encodes it.
func Parse(s string) (Half, error) {
	f, err := scalar.Parse[float32](s)
	if err != nil {
		return Half{}, err
	}
	return New(f), nil
}

// FromString parses s into h; h is untouched on failure.
func (h *Half) FromString(s string) error {
	v, err := Parse(s)
	if err != nil {
		return err
	}
	*h = v
	return nil
}

// MarshalJSON writes the decoded value as a JSON number.
func (h Half) MarshalJSON() ([]byte, error) {
	f := h.Get()
	if math.IsNaN(float64(f)) || math.IsInf(float64(f), 0) {
		return nil, fmt.Errorf("%w: raw 0x%04x", ErrNotFinite, h.bits)
	}
	return json.Marshal(f)
}

// UnmarshalJSON reads a JSON number and encodes it.
func (h *Half) UnmarshalJSON(data []byte) error {
	var f float32
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("half: %w", err)
	}
	h.Set(f)
	return nil
}

// MarshalBinary writes the raw pattern, little-endian.
func (h Half) MarshalBinary() ([]byte, error) {
	return binary.LittleEndian.AppendUint16(make([]byte, 0, Size), h.bits), nil
}

// UnmarshalBinary reads a raw little-endian pattern.
func (h *Half) UnmarshalBinary(data []byte) error {
	if len(data) != Size {
		return fmt.Errorf("%w: obtained %d", ErrSize, len(data))
	}
	h.bits = binary.LittleEndian.Uint16(data)
	return nil
}

// BinarySize returns Size.
func (Half) BinarySize() int { return Size }
