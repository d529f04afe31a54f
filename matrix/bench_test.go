// SPDX-License-Identifier: MIT

// Package matrix_test provides benchmarks for the accessors and validators
// on deterministic Dense fills.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/twoopt/matrix"
)

// benchSizes are the matrix sizes to benchmark.
var benchSizes = []int{128, 512}

// sinks to defeat dead-code elimination
var (
	sinkF float64
	sinkN int
)

// symmetricDense fills an n×n matrix with |i-j|, a valid symmetric metric.
func symmetricDense(b *testing.B, n int) *matrix.Dense {
	b.Helper()
	m, err := matrix.NewDense(n, n)
	if err != nil {
		b.Fatal(err)
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			d := float64(i - j)
			if d < 0 {
				d = -d
			}
			if err = m.Set(i, j, d); err != nil {
				b.Fatal(err)
			}
		}
	}

	return m
}

func BenchmarkAtScan(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m := symmetricDense(b, n)
			b.ResetTimer()
			for it := 0; it < b.N; it++ {
				var s float64
				for i := 0; i < n; i++ {
					for j := 0; j < n; j++ {
						v, _ := m.At(i, j)
						s += v
					}
				}
				sinkF = s
			}
		})
	}
}

func BenchmarkCopyData(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m := symmetricDense(b, n)
			dst := make([]float64, n*n)
			b.ResetTimer()
			for it := 0; it < b.N; it++ {
				sinkN = m.CopyData(dst)
			}
		})
	}
}

func BenchmarkValidateSymmetric(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m := symmetricDense(b, n)
			b.ResetTimer()
			for it := 0; it < b.N; it++ {
				if err := matrix.ValidateSymmetric(m, 0); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
