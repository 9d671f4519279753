// SPDX-License-Identifier: MIT

package half

import "math"

// Bit layout constants of binary16.
const (
	signMask     uint16 = 0x8000
	exponentMask uint16 = 0x7c00
	mantissaMask uint16 = 0x03ff
	quietBit     uint16 = 0x0200
)

// Encode converts f to its binary16 bit pattern.
func Encode(f float32) uint16 {
	b := math.Float32bits(f)
	sign := uint16(b>>16) & signMask
	exp := int32(b>>23) & 0xff
	mant := b & 0x7fffff

	switch {
	case exp == 0xff:
		if mant == 0 {
			return sign | exponentMask
		}
		return sign | exponentMask | quietBit | uint16(mant>>13)
	case exp >= 143:
		// |f| ≥ 2^16 always overflows; the largest finite half is 65504.
		return sign | exponentMask
	case exp >= 113:
		h := uint16(exp-112)<<10 | uint16(mant>>13)
		rem := mant & 0x1fff
		if rem > 0x1000 || (rem == 0x1000 && h&1 == 1) {
			h++ // a carry may roll into the exponent, up to Inf
		}
		return sign | h
	}

	// Subnormal or zero result.
	shift := uint32(126 - exp)
	if exp == 0 || shift > 24 {
		return sign
	}
	m := mant | 0x800000
	h := uint16(m >> shift)
	rem := m & (1<<shift - 1)
	halfway := uint32(1) << (shift - 1)
	if rem > halfway || (rem == halfway && h&1 == 1) {
		h++
	}
	return sign | h
}

// Decode converts a binary16 bit pattern to float32. Every half value is
// exactly representable, so no rounding happens.
func Decode(h uint16) float32 {
	sign := uint32(h&signMask) << 16
	exp := uint32(h&exponentMask) >> 10
	mant := uint32(h & mantissaMask)

	switch exp {
	case 0:
		if mant == 0 {
			return math.Float32frombits(sign)
		}
		e := uint32(113)
		for mant&0x400 == 0 {
			mant <<= 1
			e--
		}
		mant &= 0x3ff
		return math.Float32frombits(sign | e<<23 | mant<<13)
	case 0x1f:
		if mant == 0 {
			return math.Float32frombits(sign | 0x7f800000)
		}
		return math.Float32frombits(sign | 0x7fc00000 | mant<<13)
	default:
		return math.Float32frombits(sign | (exp+112)<<23 | mant<<13)
	}
}
