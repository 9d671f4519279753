// SPDX-License-Identifier: MIT
package geom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmath/geom"
	"github.com/katalvlaran/lvmath/vector"
)

func TestIntersectLines2(t *testing.T) {
	hit, err := geom.IntersectLines2(
		vector.New2(0.0, 0), vector.New2(1.0, 1),
		vector.New2(0.0, 2), vector.New2(1.0, -1),
	)
	require.NoError(t, err)
	assert.Equal(t, vector.New2(1.0, 1), hit.Point)
	assert.Equal(t, 1.0, hit.TA)
	assert.Equal(t, 1.0, hit.TB)

	// Both parametric forms land on the same point.
	a := geom.NewLine2(vector.New2(-3.0, 1), vector.New2(2.0, 0.5))
	b := geom.NewLine2(vector.New2(4.0, -2), vector.New2(-1.0, 3))
	hit, err = a.Intersects(b)
	require.NoError(t, err)
	assert.True(t, a.PointAt(hit.TA).IsNearlyEqual(hit.Point))
	assert.True(t, b.PointAt(hit.TB).IsNearlyEqual(hit.Point))
}

func TestIntersectLines2_Parallel(t *testing.T) {
	_, err := geom.IntersectLines2(
		vector.New2(0.0, 0), vector.New2(1.0, 0),
		vector.New2(0.0, 1), vector.New2(2.0, 0),
	)
	require.ErrorIs(t, err, geom.ErrParallel)

	oA, dA := vector.New2(0.0, 0), vector.New2(1.0, 0)
	oB, dB := vector.New2(0.0, 1), vector.New2(1.0, 1e-7)
	_, err = geom.IntersectLines2(oA, dA, oB, dB)
	require.NoError(t, err, "1e-7 is above the default tolerance")
	_, err = geom.IntersectLines2(oA, dA, oB, dB, 1e-6)
	require.ErrorIs(t, err, geom.ErrParallel, "explicit tolerance")
}

func TestIntersectLines3(t *testing.T) {
	a := geom.NewLine3(vector.New3(0.0, 0, 0), vector.New3(1.0, 0, 0))
	b := geom.NewLine3(vector.New3(2.0, -1, 0), vector.New3(0.0, 1, 0))

	hit, err := a.Intersects(b)
	require.NoError(t, err)
	assert.Equal(t, vector.New3(2.0, 0, 0), hit.Point)
	assert.Equal(t, hit.Point, hit.ClosestB)
	assert.Equal(t, 2.0, hit.TA)
	assert.Equal(t, 1.0, hit.TB)
}

func TestIntersectLines3_Degenerate(t *testing.T) {
	x := geom.NewLine3(vector.New3(0.0, 0, 0), vector.New3(1.0, 0, 0))

	skew := geom.NewLine3(vector.New3(2.0, -1, 1), vector.New3(0.0, 1, 0))
	_, err := x.Intersects(skew)
	require.ErrorIs(t, err, geom.ErrSkew, "closest points are one unit apart")

	parallel := geom.NewLine3(vector.New3(0.0, 1, 0), vector.New3(3.0, 0, 0))
	_, err = x.Intersects(parallel)
	require.ErrorIs(t, err, geom.ErrParallel)

	_, err = geom.IntersectLines3(x.Origin, x.Direction, vector.New3(1.0, 1, 1), vector.Vector3d{})
	require.ErrorIs(t, err, geom.ErrParallel, "zero direction")
}

func TestLine_Defaults(t *testing.T) {
	assert.Equal(t, vector.New2(0.0, 1), geom.DefaultLine2[float64]().Direction)
	assert.Equal(t, vector.New3[float32](0, 1, 0), geom.DefaultLine3[float32]().Direction)

	var l geom.Line2d
	l.Set(vector.New2(1.0, 1), vector.New2(0.0, 2))
	assert.Equal(t, vector.New2(1.0, 4), l.PointAt(1.5))
	assert.True(t, l.IsEqual(geom.NewLine2(vector.New2(1.0, 1), vector.New2(0.0, 2))))
	assert.True(t, l.IsNearlyEqual(geom.NewLine2(vector.New2(1.0, 1+1e-12), vector.New2(0.0, 2))))
	assert.Equal(t, "1.000000, 1.000000; 0.000000, 2.000000", l.String())
}

func TestSegment2_Intersects(t *testing.T) {
	s := geom.NewSegment2(vector.New2(0.0, 0), vector.New2(10.0, 0))

	hit, err := s.Intersects(geom.NewSegment2(vector.New2(5.0, -5), vector.New2(5.0, 5)))
	require.NoError(t, err)
	assert.True(t, hit.Point.IsNearlyEqual(vector.New2(5.0, 0)))
	assert.InDelta(t, 0.5, hit.TA, 1e-12)
	assert.InDelta(t, 0.5, hit.TB, 1e-12)

	_, err = s.Intersects(geom.NewSegment2(vector.New2(15.0, -5), vector.New2(15.0, 5)))
	require.ErrorIs(t, err, geom.ErrNoIntersection, "supporting lines meet beyond End")

	_, err = s.Intersects(geom.NewSegment2(vector.New2(0.0, 1), vector.New2(10.0, 1)))
	require.ErrorIs(t, err, geom.ErrParallel)

	f := geom.NewSegment2[float32](vector.New2[float32](0, 0), vector.New2[float32](10, 0))
	hf, err := f.Intersects(geom.NewSegment2[float32](vector.New2[float32](5, -5), vector.New2[float32](5, 5)))
	require.NoError(t, err)
	assert.Equal(t, vector.New2[float32](5, 0), hf.Point)
}

func TestSegment2_IntersectsObliqueFloat32(t *testing.T) {
	a := geom.NewSegment2(vector.New2[float32](0, 0), vector.New2[float32](100, 37))
	b := geom.NewSegment2(vector.New2[float32](13, 91), vector.New2[float32](71, -20))

	hit, err := a.Intersects(b)
	require.NoError(t, err, "rounding of the solved point must stay within the default float32 tolerance")
	assert.InDelta(t, 50.739846, hit.Point.X, 1e-3)
	assert.InDelta(t, 18.773743, hit.Point.Y, 1e-3)
	assert.InDelta(t, 0.507398, hit.TA, 1e-4)
	assert.InDelta(t, 0.650687, hit.TB, 1e-4)

	// Same line as b, cut at half its length: the crossing is past its End.
	short := geom.NewSegment2(vector.New2[float32](13, 91), vector.New2[float32](42, 35.5))
	_, err = a.Intersects(short)
	require.ErrorIs(t, err, geom.ErrNoIntersection)

	assert.True(t, a.IsPointInside(vector.New2[float32](50, 18.5)))
	assert.False(t, a.IsPointInside(vector.New2[float32](50, 19.5)), "one unit off the line")
	assert.False(t, a.IsPointInside(vector.New2[float32](110, 40.7)), "past End")
}

func TestSegment2_Queries(t *testing.T) {
	s := geom.NewSegment2(vector.New2(0.0, 0), vector.New2(10.0, 0))
	assert.Equal(t, 10.0, s.Length())
	assert.Equal(t, vector.New2(10.0, 0), s.GetDirectionWithMagnitude())
	assert.Equal(t, vector.New2(1.0, 0), s.GetDirection())
	assert.Equal(t, vector.New2(10.0, 0), s.PointAt(1.5), "clamped")
	assert.Equal(t, vector.New2(0.0, 0), s.PointAt(-1), "clamped")
	assert.Equal(t, vector.New2(15.0, 0), s.PointAtUnclamped(1.5))
	assert.Equal(t, geom.NewLine2(vector.New2(0.0, 0), vector.New2(10.0, 0)), s.ToLine())

	inside := map[string]struct {
		p    vector.Vector2d
		want bool
	}{
		"middle":       {vector.New2(5.0, 0), true},
		"begin":        {vector.New2(0.0, 0), true},
		"end":          {vector.New2(10.0, 0), true},
		"nearly on":    {vector.New2(5.0, 1e-12), true},
		"off the line": {vector.New2(5.0, 1), false},
		"past end":     {vector.New2(11.0, 0), false},
		"before begin": {vector.New2(-1.0, 0), false},
	}
	for name, tc := range inside {
		assert.Equal(t, tc.want, s.IsPointInside(tc.p), name)
	}
	assert.False(t, s.IsPointInside(vector.New2(5.0, 1e-12), 1e-15), "explicit tolerance")

	degenerate := geom.NewSegment2(vector.New2(1.0, 1), vector.New2(1.0, 1))
	assert.Equal(t, vector.Vector2d{}, degenerate.GetDirection(), "zero direction stays zero")
}

func TestSegment3_Intersects(t *testing.T) {
	a := geom.NewSegment3(vector.New3(5.0, 5, 4), vector.New3(10.0, 10, 6))
	b := geom.NewSegment3(vector.New3(5.0, 5, 5), vector.New3(10.0, 10, 3))

	hit, err := a.Intersects(b)
	require.NoError(t, err)
	assert.True(t, hit.Point.IsNearlyEqual(vector.New3(6.25, 6.25, 4.5)), "got %v", hit.Point)
	assert.InDelta(t, 0.25, hit.TA, 1e-12)
	assert.InDelta(t, 0.25, hit.TB, 1e-12)

	short := geom.NewSegment3(vector.New3(5.0, 5, 5), vector.New3(6.0, 6, 4.6))
	_, err = a.Intersects(short)
	require.ErrorIs(t, err, geom.ErrNoIntersection, "lines meet at 1.25 along the short segment")

	lifted := geom.NewSegment3(vector.New3(5.0, 5, 5), vector.New3(10.0, 10, 3)).ToLine()
	lifted.Origin = lifted.Origin.Add(vector.New3(1.0, -1, 0))
	_, err = a.ToLine().Intersects(lifted)
	require.ErrorIs(t, err, geom.ErrSkew)
}

func TestSegment3_Queries(t *testing.T) {
	s := geom.NewSegment3(vector.New3(0.0, 0, 0), vector.New3(0.0, 0, 4))
	assert.Equal(t, 4.0, s.Length())
	assert.Equal(t, vector.New3(0.0, 0, 1), s.GetDirection())
	assert.Equal(t, vector.New3(0.0, 0, 2), s.PointAt(0.5))
	assert.Equal(t, vector.New3(0.0, 0, 4), s.PointAt(2))
	assert.Equal(t, vector.New3(0.0, 0, 8), s.PointAtUnclamped(2))
	assert.True(t, s.IsPointInside(vector.New3(0.0, 0, 3)))
	assert.False(t, s.IsPointInside(vector.New3(0.0, 0.5, 3)))
	assert.False(t, s.IsPointInside(vector.New3(0.0, 0, 5)))

	var c geom.Segment3d
	c.Set(s.Begin, s.End)
	assert.True(t, c.IsEqual(s))
	assert.True(t, c.IsNearlyEqual(s))
	assert.Equal(t, s.Hash(), c.Hash())
	assert.NotEqual(t, s.Hash(), geom.NewSegment3(s.End, s.Begin).Hash())
}
