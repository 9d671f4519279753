package geom_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvmath/geom"
	"github.com/katalvlaran/lvmath/vector"
)

// ExampleSegment2_Intersects crosses two segments, then moves one away.
func ExampleSegment2_Intersects() {
	s := geom.NewSegment2(vector.New2(0.0, 0), vector.New2(10.0, 0))

	hit, err := s.Intersects(geom.NewSegment2(vector.New2(5.0, -5), vector.New2(5.0, 5)))
	fmt.Println(hit.Point, err)

	_, err = s.Intersects(geom.NewSegment2(vector.New2(15.0, -5), vector.New2(15.0, 5)))
	fmt.Println(errors.Is(err, geom.ErrNoIntersection))
	// Output:
	// 5.000000, 0.000000 <nil>
	// true
}

// ExampleRect_IsInside classifies points against a 10×10 rect.
func ExampleRect_IsInside() {
	r := geom.NewRect(0.0, 10, 10, 0)
	fmt.Println(r.IsInside(5, 5), r.IsInside(0, 5), r.IsInside(-1, 5))
	// Output:
	// FULLY_INSIDE ON_THE_EDGE OUTSIDE
}
