// SPDX-License-Identifier: MIT

// Package matrix provides the dense distance-matrix storage consumed by the
// tsp optimizer.
//
// The package provides:
//
//   - Matrix, a minimal read/write interface over a rows×cols float64 grid.
//   - Dense, a row-major implementation backed by one flat slice.
//   - Validators for the distance-matrix contract: square shape, finite and
//     non-negative entries, optional symmetry within a tolerance.
//
// All public entry points return sentinel errors (see errors.go) instead of
// panicking on user input; callers match them with errors.Is.
package matrix
