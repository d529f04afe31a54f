// Package tsp - validation and weight prefetch shared by Step and Optimize.
//
// This file contains small helpers that:
//  1. Validate Options (cap and tolerance bounds).
//  2. Validate the distance matrix (nil, shape, NaN/Inf, negativity, optional
//     symmetry) while copying it into a private flat buffer for the hot loops.
//
// Design principles:
//   - Deterministic, side-effect free functions; the caller's matrix is only read.
//   - No logging, no panics on user input - only sentinel errors from types.go
//     and the matrix package.
//   - O(n²) time, O(n²) extra space for the buffer.
package tsp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/twoopt/matrix"
)

// validateOptions checks internal consistency of Options.
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	if opts.MaxIterations < 0 {
		return fmt.Errorf("MaxIterations=%d: %w", opts.MaxIterations, ErrInvalidOptions)
	}

	return validateEps(opts.Eps)
}

// validateEps rejects tolerances that would make the rule Δ < −eps ill-posed.
func validateEps(eps float64) error {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		return fmt.Errorf("Eps=%v: %w", eps, ErrInvalidOptions)
	}

	return nil
}

// distTable is a dense, linearized copy of the distance matrix: w[u*n+v] ~ At(u,v).
// Reading it avoids interface indirection and error returns in the scan loops.
type distTable struct {
	n int
	w []float64
}

// at is the hot-path accessor with zero allocations.
func (t *distTable) at(u, v int) float64 { return t.w[u*t.n+v] }

// newDistTable validates dist and prefetches it into a distTable.
//
// Contract:
//   - dist is non-nil and square (n×n, n ≥ 0).
//   - every entry is finite (else ErrNonFiniteWeight) and ≥ 0 (else ErrNegativeWeight).
//   - with requireSymmetric, |d(i,j) − d(j,i)| ≤ 1e-12 (else matrix.ErrAsymmetry).
//
// Complexity: O(n²).
func newDistTable(dist matrix.Matrix, requireSymmetric bool) (*distTable, error) {
	if err := matrix.ValidateSquareNonNil(dist); err != nil {
		return nil, err
	}
	if requireSymmetric {
		if err := matrix.ValidateSymmetric(dist, symTol); err != nil {
			return nil, err
		}
	}

	n := dist.Rows()
	t := &distTable{n: n, w: make([]float64, n*n)}

	// Fast path: *matrix.Dense shares our row-major layout.
	if d, ok := dist.(*matrix.Dense); ok {
		d.CopyData(t.w)
	} else {
		var (
			i, j int
			x    float64
			err  error
		)
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				if x, err = dist.At(i, j); err != nil {
					return nil, err
				}
				t.w[i*n+j] = x
			}
		}
	}

	var (
		k int
		x float64
	)
	for k, x = range t.w {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, fmt.Errorf("tsp: weight (%d,%d)=%v: %w", k/n, k%n, x, ErrNonFiniteWeight)
		}
		if x < 0 {
			return nil, fmt.Errorf("tsp: weight (%d,%d)=%v: %w", k/n, k%n, x, ErrNegativeWeight)
		}
	}

	return t, nil
}
