// Package tsp computes 2-opt locally optimal Travelling Salesman tours over a
// dense distance matrix.
//
// The optimizer starts from the identity tour [0, 1, ..., n-1] and repeatedly
// applies the first improving 2-opt move found in a fixed row-major scan of
// position pairs (i, j), until no move improves the tour by more than
// Options.Eps or Options.MaxIterations moves have been applied:
//
//	res, err := tsp.Optimize(dist, tsp.DefaultOptions())
//
//   - Optimize - full run; returns the tour, the summed improvement and the
//     number of applied moves.
//   - Step     - a single pass over an existing tour (applies ≤ 1 move).
//   - TourCost - closed-cycle cost of a tour.
//
// Tours are open cyclic permutations: len(tour) == n and the last city
// connects back to the first.
//
// Everything is deterministic and single-threaded. The distance matrix is
// only read, so callers may run independent optimizations over one matrix
// concurrently.
//
// Complexity: O(n²) per pass, O(iter·n²) per run.
package tsp
