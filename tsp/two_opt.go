// Package tsp - first-improvement 2-opt scan.
//
// One pass looks at every pair of non-adjacent tour edges in a fixed order
// and applies the FIRST improving reconnection it meets:
//
//	for i := 0 .. n-2, for j := i+2 .. n-1, skipping (0, n-1):
//	    a=T[i], b=T[i+1], c=T[j], d=T[(j+1) mod n]
//	    Δ = w(a,c) + w(b,d) − w(a,b) − w(c,d)
//	    if Δ < −eps: reverse T[i+1..j], stop.
//
// The applied move is therefore the lexicographically smallest (i,j) among
// all improving pairs, not the globally best one; identical input always
// yields an identical move sequence.
//
// The pair (0, n-1) is skipped: its edges (T[0],T[1]) and (T[n-1],T[0]) share
// the endpoint T[0], so it is not a 2-opt move (for symmetric costs its Δ is
// exactly 0 anyway). As a consequence n < 4 admits no candidate at all.
//
// The formula treats (c,d) and (d,c) as the same edge. On asymmetric matrices
// the reported Δ may differ from the true cost change of the reversed tour;
// Options.RequireSymmetric lets callers reject such input.
//
// Complexity:
//   - One pass: O(n²) candidate checks, each O(1).
//   - An accepted move costs O(j−i) for the reversal.
package tsp

import "github.com/katalvlaran/twoopt/matrix"

// Step runs a single first-improvement pass on tour (an open cyclic
// permutation of {0..n-1}) and applies at most one move in place.
//
// Returns the applied Move and true, or the zero Move and false when no pair
// improves by more than eps (the tour is then left untouched).
//
// Errors: ErrInvalidOptions (bad eps), ErrDimensionMismatch (tour is not a
// permutation for dist's n), plus the matrix errors of newDistTable.
//
// Complexity: O(n²) for prefetch and scan. Loops should use Optimize, which
// prefetches the matrix once per run instead of once per pass.
func Step(dist matrix.Matrix, tour []int, eps float64) (Move, bool, error) {
	if err := validateEps(eps); err != nil {
		return Move{}, false, err
	}
	t, err := newDistTable(dist, false)
	if err != nil {
		return Move{}, false, err
	}
	if err = ValidatePermutation(tour, t.n); err != nil {
		return Move{}, false, err
	}
	m, ok := t.step(tour, eps)

	return m, ok, nil
}

// step is the hot path of Step: find the first improving move and apply it.
func (t *distTable) step(tour []int, eps float64) (Move, bool) {
	m, ok := t.find(tour, eps)
	if ok {
		// Reconnect (a,c),(b,d) by reversing the inner segment [i+1..j].
		reverseInPlace(tour, m.I+1, m.J)
	}

	return m, ok
}

// find scans (i,j) in row-major order and returns the first pair whose
// delta is below −eps, without mutating tour.
func (t *distTable) find(tour []int, eps float64) (Move, bool) {
	var (
		n          = len(tour)
		i, j, jEnd int
		a, b, c, d int
		wab, delta float64
	)
	for i = 0; i < n-1; i++ {
		a = tour[i]
		b = tour[i+1]
		wab = t.at(a, b)
		jEnd = n // exclusive bound on j
		if i == 0 {
			jEnd = n - 1 // (0, n-1) shares endpoint tour[0]
		}
		for j = i + 2; j < jEnd; j++ {
			c = tour[j]
			d = tour[(j+1)%n]
			delta = t.at(a, c) + t.at(b, d) - wab - t.at(c, d)
			if delta < -eps {
				return Move{I: i, J: j, Delta: delta}, true
			}
		}
	}

	return Move{}, false
}
