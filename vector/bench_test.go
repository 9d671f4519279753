// SPDX-License-Identifier: MIT
package vector_test

import (
	"testing"

	"github.com/katalvlaran/lvmath/vector"
)

// sinks to defeat dead-code elimination
var (
	sinkV3 vector.Vector3f
	sinkF  float32
	sinkH  uint64
)

func BenchmarkVector3_CrossNormalize(b *testing.B) {
	b.ReportAllocs()
	a := vector.New3[float32](1, 2, 3)
	c := vector.New3[float32](-4, 0.5, 2)
	for i := 0; i < b.N; i++ {
		sinkV3 = a.CrossProduct(c).GetNormalized()
	}
}

func BenchmarkVector3_Dot(b *testing.B) {
	b.ReportAllocs()
	a := vector.New3[float32](1, 2, 3)
	c := vector.New3[float32](-4, 0.5, 2)
	for i := 0; i < b.N; i++ {
		sinkF = a.DotProduct(c)
	}
}

func BenchmarkVector4_Hash(b *testing.B) {
	b.ReportAllocs()
	v := vector.New4(1.0, 2.0, 3.0, 4.0)
	for i := 0; i < b.N; i++ {
		sinkH = v.Hash()
	}
}
