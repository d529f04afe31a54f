// Package instance reads, writes and generates distance-matrix instances.
//
// The text format is an integer N followed by N×N whitespace-separated
// reals in row-major order. Any run of spaces, tabs or newlines separates
// tokens, so one row per line is conventional but not required:
//
//	4
//	0 1 1 1.41421356
//	1 0 1.41421356 1
//	1 1.41421356 0 1
//	1.41421356 1 1 0
//
// Files whose name ends in ".zst" are transparently zstd-compressed on both
// read and write.
//
// Euclidean and RandomPoints build synthetic instances: uniform points in a
// square and their pairwise straight-line distances.
package instance
