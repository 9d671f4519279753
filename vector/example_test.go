// SPDX-License-Identifier: MIT
package vector_test

import (
	"fmt"

	"github.com/katalvlaran/lvmath/vector"
)

// ExampleVector4_XZRef shows the aliasing swizzle writing into the source vector.
func ExampleVector4_XZRef() {
	v := vector.New4[float32](1, 2, 3, 4)
	v.XZRef().Set(vector.New2[float32](10, 30))
	fmt.Println(v)
	fmt.Println(v.XZ())
	// Output:
	// 10.000000, 2.000000, 30.000000, 4.000000
	// 10.000000, 30.000000
}

// ExampleVector3_GetNormalized shows the null-safe fallback for short vectors.
func ExampleVector3_GetNormalized() {
	fmt.Println(vector.New3(0.0, 3.0, 4.0).GetNormalized())
	fmt.Println(vector.Vector3d{}.GetNormalized())
	// Output:
	// 0.000000, 0.600000, 0.800000
	// 0.000000, 0.000000, 0.000000
}
