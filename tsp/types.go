// Package tsp - public types, defaults and sentinel errors.
//
// Everything the optimizer returns or accepts is declared here:
//   - Options (+ DefaultOptions) controlling the iteration cap and tolerance,
//   - Move, the explicit result of a single improvement pass,
//   - Result, the record produced by one Optimize run,
//   - the package sentinel errors, matched by callers via errors.Is.
package tsp

import "errors"

const (
	// DefaultMaxIterations caps the number of applied moves per run.
	DefaultMaxIterations = 10000

	// DefaultEps is the improvement tolerance: a move is applied only when
	// its delta is strictly below −DefaultEps.
	DefaultEps = 1e-10

	// symTol is the structural tolerance used when RequireSymmetric is set.
	// It is independent from Options.Eps (which governs "improvement").
	symTol = 1e-12
)

var (
	// ErrInvalidOptions is returned for a negative MaxIterations or a
	// negative/NaN/Inf Eps.
	ErrInvalidOptions = errors.New("tsp: invalid options")

	// ErrDimensionMismatch is returned when a tour is not a permutation of
	// {0..n-1} for the n of the distance matrix.
	ErrDimensionMismatch = errors.New("tsp: dimension mismatch")

	// ErrNegativeWeight is returned when the distance matrix holds a negative entry.
	ErrNegativeWeight = errors.New("tsp: negative edge weight")

	// ErrNonFiniteWeight is returned when the distance matrix holds NaN or ±Inf.
	ErrNonFiniteWeight = errors.New("tsp: non-finite edge weight")
)

// Options configures one optimization run. Start from DefaultOptions().
type Options struct {
	// MaxIterations bounds the number of applied moves. Zero is legal and
	// means the identity tour is returned unimproved.
	MaxIterations int

	// Eps is the acceptance tolerance: a candidate is applied iff Δ < −Eps.
	Eps float64

	// RequireSymmetric rejects matrices that are not symmetric (within 1e-12)
	// with matrix.ErrAsymmetry. The delta formula assumes symmetric costs, so
	// for asymmetric input the reported improvement may differ from the real
	// cost change of the reversed tour.
	RequireSymmetric bool

	// OnMove, when non-nil, is called after every applied move with the
	// 1-based iteration number. It must not retain or mutate the run's state.
	OnMove func(iter int, m Move)
}

// DefaultOptions returns Options with MaxIterations = DefaultMaxIterations,
// Eps = DefaultEps, symmetry not enforced and no move hook.
func DefaultOptions() Options {
	return Options{
		MaxIterations: DefaultMaxIterations,
		Eps:           DefaultEps,
	}
}

// Move describes one applied 2-opt swap: edges (tour[I],tour[I+1]) and
// (tour[J],tour[(J+1)%n]) were replaced by reversing tour[I+1..J].
// Delta is the cost change computed before the reversal (always < −Eps).
type Move struct {
	I, J  int
	Delta float64
}

// Result holds the outcome of one Optimize run.
type Result struct {
	// Tour is the final open cyclic tour (len == n); the caller owns it.
	Tour []int

	// TotalImprovement is the sum of all applied deltas (≤ 0).
	TotalImprovement float64

	// Iterations is the number of applied moves (0 ≤ Iterations ≤ MaxIterations).
	Iterations int

	// Converged reports whether Tour is a 2-opt local optimum, i.e. a further
	// Step would apply nothing. False only when the cap cut the run short.
	Converged bool
}
