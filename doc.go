// Package twoopt is the root of a small toolkit for improving traveling
// salesman tours with the first-improvement 2-opt heuristic over dense
// distance matrices.
//
// Layout:
//
//	matrix/      Matrix interface, row-major Dense storage, distance validators
//	tsp/         Optimize (convergence loop), Step (one 2-opt pass), tour helpers, TourCost
//	instance/    text instance reader/writer (optionally zstd), random Euclidean generator
//	config/      TOML run settings with validation
//	runner/      repeated timed runs, determinism check, report printing
//	cmd/twoopt/  CLI: optimize an instance file and print the summary
//	cmd/tspgen/  CLI: generate a random Euclidean instance
//
// Quick start:
//
//	dist, _ := instance.ReadFile("inst.txt")
//	res, err := tsp.Optimize(dist, tsp.DefaultOptions())
//	if err != nil { /* handle */ }
//	fmt.Println(res.Tour, res.TotalImprovement, res.Iterations, res.Converged)
//
// The optimizer is deterministic: the start tour is always the identity
// permutation and candidate pairs are scanned in a fixed order, so the same
// matrix always yields the same tour.
package twoopt
