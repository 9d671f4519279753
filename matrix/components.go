// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/lvmath/scalar"
	"github.com/katalvlaran/lvmath/vector"
)

// componentPtr2/3/4 return the address of component i of a row, which lets
// column references alias matrix storage without unsafe casts.

func componentPtr2[T scalar.Real](v *vector.Vector2[T], i int) *T {
	switch i {
	case 0:
		return &v.X
	case 1:
		return &v.Y
	}
	panic(indexPanic(panicCol, i))
}

func componentPtr3[T scalar.Real](v *vector.Vector3[T], i int) *T {
	switch i {
	case 0:
		return &v.X
	case 1:
		return &v.Y
	case 2:
		return &v.Z
	}
	panic(indexPanic(panicCol, i))
}

func componentPtr4[T scalar.Real](v *vector.Vector4[T], i int) *T {
	switch i {
	case 0:
		return &v.X
	case 1:
		return &v.Y
	case 2:
		return &v.Z
	case 3:
		return &v.W
	}
	panic(indexPanic(panicCol, i))
}
