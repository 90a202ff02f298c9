// Package matrix_test provides benchmarks for core matrix package operations,
// using deterministic random fill for Dense matrices.
package matrix_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/algebra/matrix"
	"github.com/katalvlaran/algebra/ring"
)

// benchSizes are the matrix sizes to benchmark.
var benchSizes = []int{32, 64, 128}

// sinks to defeat dead-code elimination
var sinkM *matrix.Dense[float64]

// mustDenseRand returns an n×n diagonally dominant matrix with seeded entries.
func mustDenseRand(b *testing.B, n int, seed int64) *matrix.Dense[float64] {
	b.Helper()
	m, err := matrix.NewDense[float64](n, n)
	if err != nil {
		b.Fatal(err)
	}
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := rng.Float64()
			if i == j {
				v += float64(n)
			}
			_ = m.Set(i, j, v)
		}
	}

	return m
}

func BenchmarkAdd(b *testing.B) {
	alg := matrix.NewAlgebra[float64](ring.Reals{})
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := mustDenseRand(b, n, 1337)
			y := mustDenseRand(b, n, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := alg.Add(x, y)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkMultiply(b *testing.B) {
	alg := matrix.NewAlgebra[float64](ring.Reals{})
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := mustDenseRand(b, n, 1)
			y := mustDenseRand(b, n, 2)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := alg.Multiply(x, y)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkInverse(b *testing.B) {
	alg := matrix.NewAlgebra[float64](ring.Reals{})
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := mustDenseRand(b, n, 99)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := alg.Inverse(x)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}
