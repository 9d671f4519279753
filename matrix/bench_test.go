// Package matrix_test provides benchmarks for the fixed-size matrix kernels.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvmath/matrix"
)

// sinks to defeat dead-code elimination
var (
	sinkM4 matrix.Matrix4d
	sinkF  float64
)

func benchMatrix4() matrix.Matrix4d {
	return matrix.New4(
		1.0, 0.0, 2.0, -1.0,
		3.0, 0.0, 0.0, 5.0,
		2.0, 1.0, 4.0, -3.0,
		1.0, 0.0, 5.0, 0.0,
	)
}

func BenchmarkMatrix4_Determinant(b *testing.B) {
	b.ReportAllocs()
	m := benchMatrix4()
	for i := 0; i < b.N; i++ {
		sinkF = m.Determinant()
	}
}

func BenchmarkMatrix4_GetInverted(b *testing.B) {
	b.ReportAllocs()
	m := benchMatrix4()
	for i := 0; i < b.N; i++ {
		sinkM4 = m.GetInverted()
	}
}

func BenchmarkMatrix4_Mul(b *testing.B) {
	b.ReportAllocs()
	m := benchMatrix4()
	n := m.GetTransposed()
	for i := 0; i < b.N; i++ {
		sinkM4 = m.Mul(n)
	}
}
