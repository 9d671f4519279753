// SPDX-License-Identifier: MIT

package geom

type (
	Line2f    = Line2[float32]
	Line2d    = Line2[float64]
	Line3f    = Line3[float32]
	Line3d    = Line3[float64]
	Segment2f = Segment2[float32]
	Segment2d = Segment2[float64]
	Segment3f = Segment3[float32]
	Segment3d = Segment3[float64]

	Rectf = Rect[float32]
	Rectd = Rect[float64]
	Recti = Rect[int32]
	Rectu = Rect[uint32]
)
