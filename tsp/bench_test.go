// Package tsp_test contains benchmarks for the 2-opt optimizer.
// Scope:
//   - Optimize end-to-end on scrambled circles (dense fast path and generic path).
//   - A single Step scan on a fresh identity tour.
//   - TourCost as a micro-benchmark.
//
// Policy:
//   - Deterministic geometry (scrambled circles, fixed steps).
//   - Pre-build all inputs outside the timer; measure only the algorithmic core.
package tsp_test

import (
	"testing"

	"github.com/katalvlaran/twoopt/tsp"
)

// ------------------------------------------------------------------------------------
// Optimize: full convergence loop.
// ------------------------------------------------------------------------------------

func benchOptimize(b *testing.B, n, step int, dense bool) {
	rows := euclidRows(scrambledCircle(n, step))
	var m = euclid(scrambledCircle(n, step))
	if dense {
		m = mustDense(b, rows)
	}
	opts := tsp.DefaultOptions()

	b.ReportAllocs()
	b.ResetTimer()

	var it int
	for it = 0; it < b.N; it++ {
		if _, err := tsp.Optimize(m, opts); err != nil {
			b.Fatalf("Optimize: %v", err)
		}
	}
}

func BenchmarkOptimize_Dense_n50(b *testing.B)    { benchOptimize(b, 50, 7, true) }
func BenchmarkOptimize_Dense_n200(b *testing.B)   { benchOptimize(b, 200, 77, true) }
func BenchmarkOptimize_Generic_n50(b *testing.B)  { benchOptimize(b, 50, 7, false) }
func BenchmarkOptimize_Generic_n200(b *testing.B) { benchOptimize(b, 200, 77, false) }

// ------------------------------------------------------------------------------------
// Step: one scan plus one reversal from the identity tour.
// ------------------------------------------------------------------------------------

func BenchmarkStep_n200(b *testing.B) {
	const n = 200
	m := mustDense(b, euclidRows(scrambledCircle(n, 77)))
	tour := tsp.IdentityTour(n)

	b.ReportAllocs()
	b.ResetTimer()

	var it int
	for it = 0; it < b.N; it++ {
		b.StopTimer()
		copy(tour, tsp.IdentityTour(n))
		b.StartTimer()
		if _, _, err := tsp.Step(m, tour, epsTiny); err != nil {
			b.Fatalf("Step: %v", err)
		}
	}
}

// ------------------------------------------------------------------------------------
// TourCost micro-benchmark.
// ------------------------------------------------------------------------------------

func BenchmarkTourCost_n200(b *testing.B) {
	const n = 200
	m := mustDense(b, euclidRows(scrambledCircle(n, 77)))
	tour := tsp.IdentityTour(n)

	b.ReportAllocs()
	b.ResetTimer()

	var it int
	for it = 0; it < b.N; it++ {
		if _, err := tsp.TourCost(m, tour); err != nil {
			b.Fatalf("TourCost: %v", err)
		}
	}
}
