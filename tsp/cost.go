// Package tsp - tour cost.
//
// TourCost sums the closed cycle cost of an open tour: every tour[i]→tour[i+1]
// edge plus the closing tour[n-1]→tour[0] edge. It is side-effect free and is
// used by tests and reporters; the optimizer itself works on deltas only.
//
// Complexity: O(n) time, O(1) extra space.
package tsp

import (
	"math"

	"github.com/katalvlaran/twoopt/matrix"
)

// TourCost returns the cost of the cyclic route described by tour over dist.
// A single-city tour costs d(t0,t0); the empty tour costs 0.
//
// Errors: matrix ErrNilMatrix/ErrNonSquare, ErrDimensionMismatch (tour is not a
// permutation for dist's n), ErrNonFiniteWeight, ErrNegativeWeight.
func TourCost(dist matrix.Matrix, tour []int) (float64, error) {
	if err := matrix.ValidateSquareNonNil(dist); err != nil {
		return 0, err
	}
	n := dist.Rows()
	if err := ValidatePermutation(tour, n); err != nil {
		return 0, err
	}

	var (
		sum  float64
		i    int
		w    float64
		err  error
		u, v int
	)
	for i = 0; i < n; i++ {
		u = tour[i]
		v = tour[(i+1)%n]
		if w, err = dist.At(u, v); err != nil {
			return 0, ErrDimensionMismatch
		}
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return 0, ErrNonFiniteWeight
		}
		if w < 0 {
			return 0, ErrNegativeWeight
		}
		sum += w
	}

	return sum, nil
}
