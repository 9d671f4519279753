// SPDX-License-Identifier: MIT

package vector

// Common instantiations.
type (
	Vector2f   = Vector2[float32]
	Vector2d   = Vector2[float64]
	Vector2i8  = Vector2[int8]
	Vector2i16 = Vector2[int16]
	Vector2i   = Vector2[int32]
	Vector2i64 = Vector2[int64]
	Vector2u8  = Vector2[uint8]
	Vector2u16 = Vector2[uint16]
	Vector2u   = Vector2[uint32]
	Vector2u64 = Vector2[uint64]

	Vector3f   = Vector3[float32]
	Vector3d   = Vector3[float64]
	Vector3i8  = Vector3[int8]
	Vector3i16 = Vector3[int16]
	Vector3i   = Vector3[int32]
	Vector3i64 = Vector3[int64]
	Vector3u8  = Vector3[uint8]
	Vector3u16 = Vector3[uint16]
	Vector3u   = Vector3[uint32]
	Vector3u64 = Vector3[uint64]

	Vector4f   = Vector4[float32]
	Vector4d   = Vector4[float64]
	Vector4i8  = Vector4[int8]
	Vector4i16 = Vector4[int16]
	Vector4i   = Vector4[int32]
	Vector4i64 = Vector4[int64]
	Vector4u8  = Vector4[uint8]
	Vector4u16 = Vector4[uint16]
	Vector4u   = Vector4[uint32]
	Vector4u64 = Vector4[uint64]
)
