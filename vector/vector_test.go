// SPDX-License-Identifier: MIT
package vector_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmath/scalar"
	"github.com/katalvlaran/lvmath/vector"
)

func TestVector_AdditionLaws(t *testing.T) {
	u := vector.New3(1.5, -2.0, 3.25)
	v := vector.New3(0.5, 4.0, -1.0)
	w := vector.New3(-3.0, 0.125, 8.0)

	assert.Equal(t, u.Add(v), v.Add(u), "u+v == v+u")
	assert.Equal(t, u.Add(v).Add(w), u.Add(v.Add(w)), "(u+v)+w == u+(v+w)")
	assert.True(t, u.Sub(u).IsZero(), "u-u is the zero vector")

	i := vector.New4[int32](1, 2, 3, 4)
	j := vector.New4[int32](-4, 5, 0, 7)
	assert.Equal(t, i.Add(j), j.Add(i))
	assert.Equal(t, vector.Vector4i{}, i.Sub(i))

	a := vector.New2[uint8](250, 3)
	b := vector.New2[uint8](10, 7)
	assert.Equal(t, a.Add(b), b.Add(a), "wrap-around addition still commutes")
}

func TestVector_ComponentArithmetic(t *testing.T) {
	v := vector.New2(6.0, 8.0)
	assert.Equal(t, vector.New2(12.0, 4.0), v.Mul(vector.New2(2.0, 0.5)))
	assert.Equal(t, vector.New2(3.0, 2.0), v.Div(vector.New2(2.0, 4.0)))
	assert.Equal(t, vector.New2(7.0, 9.0), v.AddScalar(1))
	assert.Equal(t, vector.New2(5.0, 7.0), v.SubScalar(1))
	assert.Equal(t, vector.New2(3.0, 4.0), v.DivScalar(2))
	assert.Equal(t, vector.New2(-6.0, -8.0), v.Negated())

	v.AddAssign(vector.New2(1.0, 1.0))
	v.ScaleAssign(2)
	v.SubAssign(vector.New2(4.0, 8.0))
	assert.Equal(t, vector.New2(10.0, 10.0), v)

	x := vector.New3[int16](-3, 9, 1)
	assert.Equal(t, vector.New3[int16](-3, 2, 0), x.Min(vector.New3[int16](0, 2, 0)))
	assert.Equal(t, vector.New3[int16](0, 9, 1), x.Max(vector.New3[int16](0, 2, 0)))
	assert.Equal(t, vector.New3[int16](3, 9, 1), x.Abs())
	assert.Equal(t, vector.New3[int16](-1, 5, 1), x.Clamp(vector.Splat3[int16](-1), vector.Splat3[int16](5)))
}

func TestVector_DotAndCross(t *testing.T) {
	x := vector.Vector3f{X: 1}
	y := vector.Vector3f{Y: 1}
	assert.True(t, x.CrossProduct(y).IsNearlyEqual(vector.Vector3f{Z: 1}), "x × y = z")
	assert.Equal(t, float32(0), x.DotProduct(y), "orthogonal unit vectors")
	assert.True(t, y.CrossProduct(x).IsNearlyEqual(vector.Vector3f{Z: -1}), "anti-commutative")

	assert.Equal(t, 1.0, vector.New2(1.0, 0.0).CrossProduct(vector.New2(0.0, 1.0)), "counter-clockwise is positive")
	assert.Equal(t, -1.0, vector.New2(0.0, 1.0).CrossProduct(vector.New2(1.0, 0.0)))
	assert.Equal(t, int32(11), vector.New2[int32](1, 2).DotProduct(vector.New2[int32](3, 4)))
	assert.Equal(t, 70.0, vector.New4(1.0, 2.0, 3.0, 4.0).DotProduct(vector.New4(5.0, 6.0, 7.0, 8.0)))
}

func TestVector_LengthAndNormalize(t *testing.T) {
	v := vector.New2(3.0, 4.0)
	assert.Equal(t, 25.0, v.LengthSquared())
	assert.Equal(t, 5.0, v.Length())
	assert.Equal(t, 5.0, vector.Vector2d{}.Distance(v))
	assert.Equal(t, 25.0, v.DistanceSquared(vector.Vector2d{}))

	n := v.GetNormalized()
	assert.True(t, n.IsNearlyEqual(vector.New2(0.6, 0.8)))
	assert.True(t, n.IsNearlyUnit())

	tiny := vector.New3(1e-6, 0.0, 0.0)
	assert.Equal(t, tiny, tiny.GetNormalized(1e-9), "LengthSquared 1e-12 ≤ tolerance keeps the vector")
	assert.True(t, tiny.GetNormalized(0).IsNearlyUnit(), "a zero tolerance normalizes anything non-zero")

	zero := vector.Vector4d{}
	zero.Normalize()
	assert.True(t, zero.IsZero(), "zero vector stays zero, no NaN")
	assert.False(t, math.IsNaN(zero.X))

	iv := vector.New3[int32](0, 0, 4)
	assert.Equal(t, vector.New3[int32](0, 0, 1), iv.GetNormalized(), "integer normalization truncates")
	assert.True(t, vector.New3[int32](1, 0, 0).IsUnit())
}

func TestVector_NearlyEqual(t *testing.T) {
	a := vector.New4(1.0, 2.0, 3.0, 4.0)
	b := vector.New4(1.0+1e-12, 2.0, 3.0, 4.0-1e-12)
	assert.True(t, a.IsNearlyEqual(b), "default float64 tolerance")
	assert.False(t, a.IsEqual(b), "exact equality differs")
	assert.False(t, a.IsNearlyEqual(vector.New4(1.1, 2.0, 3.0, 4.0)))
	assert.True(t, a.IsNearlyEqual(vector.New4(1.1, 2.0, 3.0, 4.0), 0.2), "explicit tolerance")
	assert.True(t, vector.New2[uint16](3, 4).IsNearlyEqual(vector.New2[uint16](4, 3), 1))
	assert.False(t, vector.New2[uint16](3, 4).IsNearlyEqual(vector.New2[uint16](4, 3)), "integers compare exactly by default")
	assert.True(t, vector.New3(1e-10, -1e-10, 0.0).IsNearlyZero())
}

func TestVector_IndexAccess(t *testing.T) {
	v := vector.New4[int64](10, 20, 30, 40)
	for i := 0; i < vector.Vector4ComponentCount; i++ {
		assert.Equal(t, v.ToArray()[i], v.At(i))
	}
	v.SetAt(2, -1)
	assert.Equal(t, int64(-1), v.Z)

	assert.PanicsWithValue(t, "vector: Vector4 index out of range: 4", func() { v.At(4) })
	assert.Panics(t, func() { v.SetAt(-1, 0) })
	var v2 vector.Vector2f
	assert.Panics(t, func() { v2.At(2) })
	var v3 vector.Vector3d
	assert.Panics(t, func() { v3.SetAt(3, 1) })

	v3.Set(1, 2, 3)
	assert.Equal(t, vector.FromArray3([3]float64{1, 2, 3}), v3)
	v3.SetZero()
	assert.True(t, v3.IsZero())
}

func TestVector_Swizzles(t *testing.T) {
	v := vector.New4(1.0, 2.0, 3.0, 4.0)

	assert.Equal(t, vector.New2(1.0, 4.0), v.XW(), "copy swizzle")
	assert.Equal(t, vector.New3(2.0, 3.0, 4.0), v.YZW())

	cp := v.XZ()
	cp.X = 100
	assert.Equal(t, 1.0, v.X, "copy swizzle never writes back")

	ref := v.XZRef()
	ref.Set(vector.New2(-1.0, -3.0))
	assert.Equal(t, vector.New4(-1.0, 2.0, -3.0, 4.0), v, "aliasing swizzle writes through")
	*ref.B = 30
	assert.Equal(t, 30.0, v.Z)
	assert.Equal(t, vector.New2(-1.0, 30.0), ref.Get())

	r3 := v.XYWRef()
	r3.Set(vector.Splat3(7.0))
	assert.Equal(t, vector.New4(7.0, 7.0, 30.0, 7.0), v)

	p := vector.New3[int32](1, 2, 3)
	p.YZRef().Set(vector.New2[int32](8, 9))
	assert.Equal(t, vector.New3[int32](1, 8, 9), p)
	assert.Equal(t, vector.New2[int32](1, 8), p.XY())

	assert.Equal(t, vector.New3(1.0, 2.0, 5.0), vector.New2(1.0, 2.0).Extend(5))
	assert.Equal(t, vector.New4(1.0, 2.0, 3.0, 0.0), vector.New3(1.0, 2.0, 3.0).Extend(0))
}

func TestVector_Lerp(t *testing.T) {
	a := vector.New3(0.0, 0.0, 0.0)
	b := vector.New3(10.0, -10.0, 2.0)
	assert.Equal(t, vector.New3(5.0, -5.0, 1.0), vector.Lerp3(a, b, 0.5))
	assert.Equal(t, b, vector.Lerp3(a, b, 7), "clamped")
	assert.Equal(t, vector.New3(20.0, -20.0, 4.0), vector.LerpUnclamped3(a, b, 2))
	assert.Equal(t, vector.New2(0.5, 0.5), vector.Lerp2(vector.Vector2d{}, vector.Splat2(1.0), 0.5))
	assert.Equal(t, vector.Vector4d{}, vector.Lerp4(vector.Vector4d{}, vector.Splat4(1.0), -1))
}

func TestVector_Text(t *testing.T) {
	assert.Equal(t, "1.000000, 2.000000", vector.Vector2f{X: 1, Y: 2}.String())
	assert.Equal(t, "1, -2, 3", vector.New3[int8](1, -2, 3).String())

	v, err := vector.Parse4[float64]("1.5, -2, 3e2 ,4")
	require.NoError(t, err)
	assert.Equal(t, vector.New4(1.5, -2.0, 300.0, 4.0), v)

	orig := vector.New3(0.25, 0.5, 0.75)
	var back vector.Vector3d
	require.NoError(t, back.FromString(orig.String()))
	assert.Equal(t, orig, back, "text round trip")

	keep := vector.New2[int32](5, 6)
	err = keep.FromString("1, 2, 3")
	assert.ErrorIs(t, err, scalar.ErrParse)
	assert.Equal(t, vector.New2[int32](5, 6), keep, "untouched on failure")
	_, err = vector.Parse3[uint8]("1, 2, 300")
	assert.ErrorIs(t, err, scalar.ErrParse)
}

func TestVector_Binary(t *testing.T) {
	v := vector.Vector2f{X: 1, Y: -2}
	raw, err := v.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0x00, 0x80, 0x3f, 0x00, 0x00, 0x00, 0xc0}, raw, "little-endian X then Y")
	assert.Equal(t, 8, v.BinarySize())

	var back vector.Vector2f
	require.NoError(t, back.UnmarshalBinary(raw))
	assert.Equal(t, v, back)
	assert.ErrorIs(t, back.UnmarshalBinary(raw[:7]), scalar.ErrBufferSize)

	w := vector.New4[uint16](1, 2, 3, 0xffff)
	raw, err = w.MarshalBinary()
	require.NoError(t, err)
	assert.Len(t, raw, 8)
	var wb vector.Vector4u16
	require.NoError(t, wb.UnmarshalBinary(raw))
	assert.Equal(t, w, wb)

	d := vector.New3(1.0, 2.0, 3.0)
	raw, err = d.MarshalBinary()
	require.NoError(t, err)
	var db vector.Vector3d
	require.NoError(t, db.UnmarshalBinary(raw))
	assert.Equal(t, d, db)
}

func TestVector_JSON(t *testing.T) {
	data, err := json.Marshal(vector.New4(1.0, 2.0, 3.0, 4.0))
	require.NoError(t, err)
	assert.JSONEq(t, `{"x":1,"y":2,"z":3,"w":4}`, string(data))

	var v vector.Vector3i
	require.NoError(t, json.Unmarshal([]byte(`{"x":-1,"y":2,"z":3}`), &v))
	assert.Equal(t, vector.New3[int32](-1, 2, 3), v)
}

func TestVector_Hash(t *testing.T) {
	a := vector.New3(1.0, 2.0, 3.0)
	b := vector.New3(1.0, 2.0, 3.0)
	assert.Equal(t, a.Hash(), b.Hash(), "equal values hash equally")
	assert.NotEqual(t, a.Hash(), vector.New3(3.0, 2.0, 1.0).Hash())
	assert.Equal(t, vector.New2[int8](1, 2).Hash(), vector.New2[int8](1, 2).Hash())
	assert.NotEqual(t, vector.New4[uint32](0, 0, 0, 1).Hash(), vector.New4[uint32](1, 0, 0, 0).Hash())
}
