// Package matrix_test provides benchmarks for the kernels the solvers lean on.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/gsbench/matrix"
)

// benchSizes are the matrix sizes to benchmark.
var benchSizes = []int{128, 512, 2000}

// sinks to defeat dead-code elimination
var (
	sinkM *matrix.Dense
	sinkV []float64
	sinkF float64
)

func BenchmarkGeneratorSystem(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			g := matrix.NewGenerator(matrix.WithSeed(1337))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				a, v, err := g.System(n)
				if err != nil {
					b.Fatal(err)
				}
				sinkM, sinkV = a, v
			}
		})
	}
}

func BenchmarkClone(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			a, err := matrix.NewGenerator(matrix.WithSeed(11)).Matrix(n)
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkM = a.Clone()
			}
		})
	}
}

func BenchmarkDotRange(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			g := matrix.NewGenerator(matrix.WithSeed(22))
			x, _ := g.Vector(n)
			y, _ := g.Vector(n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkF = matrix.DotRange(x, y, 0, n)
			}
		})
	}
}

func BenchmarkDistance(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			g := matrix.NewGenerator(matrix.WithSeed(33))
			x, _ := g.Vector(n)
			y, _ := g.Vector(n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkF, _ = matrix.Distance(x, y)
			}
		})
	}
}
