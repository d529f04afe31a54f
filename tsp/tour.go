// Package tsp - tour utilities.
//
// A tour is an open cyclic permutation of {0..n-1}: len(tour) == n and the
// successor of tour[n-1] is tour[0]. These helpers operate purely on tour
// structure, without depending on distance matrices.
//
// Design:
//   - No logging, no panics on user input - only sentinel errors from types.go.
//   - O(n) time; in-place mutations avoid extra allocations.
package tsp

import (
	"strconv"
	"strings"
)

// IdentityTour returns the identity tour [0, 1, ..., n-1]; n ≤ 0 yields an empty tour.
//
// Complexity: O(n) time, O(n) space.
func IdentityTour(n int) []int {
	if n < 0 {
		n = 0
	}
	tour := make([]int, n)
	var i int
	for i = 0; i < n; i++ {
		tour[i] = i
	}

	return tour
}

// ValidatePermutation checks that tour is a permutation of {0..n-1} of length n.
// The empty tour is the (only) permutation for n == 0.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(tour []int, n int) error {
	if n < 0 || len(tour) != n {
		return ErrDimensionMismatch
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = tour[i]
		// Out-of-range element violates the dimension contract.
		if v < 0 || v >= n {
			return ErrDimensionMismatch
		}
		// Duplicate also violates the bijection contract.
		if seen[v] {
			return ErrDimensionMismatch
		}
		seen[v] = true
	}

	return nil
}

// reverseInPlace reverses the inclusive segment tour[i..k] in place.
// This is the primitive behind every 2-opt move.
//
// Contract: 0 ≤ i ≤ k < len(tour) (checked by callers).
// Complexity: O(k-i) time, O(1) space.
func reverseInPlace(tour []int, i, k int) {
	for i < k {
		tour[i], tour[k] = tour[k], tour[i]
		i++
		k--
	}
}

// CopyTour returns an independent copy of the input tour slice.
func CopyTour(tour []int) []int {
	if tour == nil {
		return nil
	}
	out := make([]int, len(tour))
	copy(out, tour)

	return out
}

// EqualCycles reports whether a and b describe the same undirected cycle:
// equal up to rotation and/or reversal of direction.
//
// Complexity: O(n) time, O(1) space.
func EqualCycles(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	n := len(a)
	if n == 0 {
		return true
	}

	// Find a[0] in b.
	var (
		p = -1
		j int
	)
	for j = 0; j < n; j++ {
		if b[j] == a[0] {
			p = j
			break
		}
	}
	if p == -1 {
		return false
	}

	var (
		i            int
		fwdOK, revOK = true, true
	)
	for i = 0; i < n && (fwdOK || revOK); i++ {
		if a[i] != b[(p+i)%n] {
			fwdOK = false
		}
		if a[i] != b[((p-i)%n+n)%n] {
			revOK = false
		}
	}

	return fwdOK || revOK
}

// DebugString returns a compact printable representation for tests/debug,
// e.g. "[0 3 1 2 | 0]" where the vertical bar marks the implicit closing edge.
func DebugString(tour []int) string {
	if len(tour) == 0 {
		return "[]"
	}
	var (
		sb strings.Builder
		i  int
	)
	sb.WriteByte('[')
	for i = 0; i < len(tour); i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(tour[i]))
	}
	sb.WriteString(" | ")
	sb.WriteString(strconv.Itoa(tour[0]))
	sb.WriteByte(']')

	return sb.String()
}
