// Package tsp - convergence loop.
//
// Optimize is the canonical entry point: it validates Options and the matrix
// once, starts from the identity tour and repeats the first-improvement pass
// (two_opt.go) until no improving move remains or MaxIterations moves have
// been applied.
//
// Design principles:
//   - Deterministic: no randomness; the initial tour is always the identity.
//   - Strict sentinels: only errors from types.go and the matrix package.
//   - The caller's matrix is copied once into a flat buffer and never mutated,
//     so one matrix may back any number of concurrent Optimize calls.
package tsp

import "github.com/katalvlaran/twoopt/matrix"

// Optimize computes a 2-opt local optimum for dist starting from [0..n-1].
//
// Contracts:
//   - dist must be square with finite, non-negative entries; n = 0 is legal
//     and yields an empty tour.
//   - Result.Iterations ≤ opts.MaxIterations; Result.TotalImprovement ≤ 0 and
//     equals the sum of every applied Move.Delta.
//   - Result.Tour is always a permutation of {0..n-1}.
//   - Result.Converged is true iff a further pass would apply nothing. When the
//     cap stops the run, one extra non-mutating scan decides it.
//
// Errors: ErrInvalidOptions, ErrNegativeWeight, ErrNonFiniteWeight, and the
// matrix sentinels ErrNilMatrix, ErrNonSquare, ErrAsymmetry (RequireSymmetric only).
//
// Complexity: O(n²) prefetch + O(iter·n²) scanning; O(n²) extra space.
func Optimize(dist matrix.Matrix, opts Options) (Result, error) {
	if err := validateOptions(opts); err != nil {
		return Result{}, err
	}
	t, err := newDistTable(dist, opts.RequireSymmetric)
	if err != nil {
		return Result{}, err
	}

	var (
		tour = IdentityTour(t.n)
		res  = Result{Tour: tour}
		m    Move
		ok   bool
	)
	for res.Iterations < opts.MaxIterations {
		if m, ok = t.step(tour, opts.Eps); !ok {
			// Local optimum under the 2-opt neighborhood.
			res.Converged = true

			return res, nil
		}
		res.TotalImprovement += m.Delta
		res.Iterations++
		if opts.OnMove != nil {
			opts.OnMove(res.Iterations, m)
		}
	}

	// Cap reached: probe without applying.
	_, ok = t.find(tour, opts.Eps)
	res.Converged = !ok

	return res, nil
}
