// SPDX-License-Identifier: MIT

package scalar

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/bits"
	"reflect"
)

// Size returns the encoded byte width of T. int and uint use the platform
// width.
func Size[T Number]() int {
	switch Kind[T]() {
	case reflect.Int8, reflect.Uint8:
		return 1
	case reflect.Int16, reflect.Uint16:
		return 2
	case reflect.Int32, reflect.Uint32, reflect.Float32:
		return 4
	case reflect.Int, reflect.Uint:
		return bits.UintSize / 8
	default:
		return 8
	}
}

// AppendLE appends the little-endian encoding of v to dst.
func AppendLE[T Number](dst []byte, v T) []byte {
	switch Kind[T]() {
	case reflect.Float32:
		return binary.LittleEndian.AppendUint32(dst, math.Float32bits(float32(v)))
	case reflect.Float64:
		return binary.LittleEndian.AppendUint64(dst, math.Float64bits(float64(v)))
	}
	switch Size[T]() {
	case 1:
		return append(dst, byte(v))
	case 2:
		return binary.LittleEndian.AppendUint16(dst, uint16(v))
	case 4:
		return binary.LittleEndian.AppendUint32(dst, uint32(v))
	default:
		return binary.LittleEndian.AppendUint64(dst, uint64(v))
	}
}

// DecodeLE reads one little-endian T from the front of src.
// src must hold at least Size[T]() bytes.
func DecodeLE[T Number](src []byte) T {
	switch Kind[T]() {
	case reflect.Float32:
		return T(math.Float32frombits(binary.LittleEndian.Uint32(src)))
	case reflect.Float64:
		return T(math.Float64frombits(binary.LittleEndian.Uint64(src)))
	}
	signed := isSigned[T]()
	switch Size[T]() {
	case 1:
		if signed {
			return T(int8(src[0]))
		}
		return T(src[0])
	case 2:
		if signed {
			return T(int16(binary.LittleEndian.Uint16(src)))
		}
		return T(binary.LittleEndian.Uint16(src))
	case 4:
		if signed {
			return T(int32(binary.LittleEndian.Uint32(src)))
		}
		return T(binary.LittleEndian.Uint32(src))
	default:
		if signed {
			return T(int64(binary.LittleEndian.Uint64(src)))
		}
		return T(binary.LittleEndian.Uint64(src))
	}
}

func isSigned[T Number]() bool {
	switch Kind[T]() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

// AppendAll appends the little-endian encodings of values to dst in order.
func AppendAll[T Number](dst []byte, values ...T) []byte {
	for _, v := range values {
		dst = AppendLE(dst, v)
	}
	return dst
}

// DecodeAll fills dst from src, which must hold exactly len(dst)*Size[T]() bytes.
func DecodeAll[T Number](src []byte, dst []T) error {
	size := Size[T]()
	if len(src) != size*len(dst) {
		return fmt.Errorf("%w: expected %d bytes, obtained %d", ErrBufferSize, size*len(dst), len(src))
	}
	for i := range dst {
		dst[i] = DecodeLE[T](src[i*size:])
	}
	return nil
}
