package quaternion_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvmath/quaternion"
	"github.com/katalvlaran/lvmath/vector"
)

// ExampleQuaternion_RotateVector turns +X a quarter turn about Z.
func ExampleQuaternion_RotateVector() {
	q := quaternion.FromEuler(0, 0, math.Pi/2)
	v := q.RotateVector(vector.New3(1.0, 0, 0))
	fmt.Println(v.IsNearlyEqual(vector.New3(0.0, 1, 0)))
	fmt.Printf("%.3f\n", v.Y)
	// Output:
	// true
	// 1.000
}
