// Package tsp_test provides lightweight testing helpers shared across *_test.go
// files in this package.
package tsp_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/twoopt/matrix"
	"github.com/katalvlaran/twoopt/tsp"
	"github.com/stretchr/testify/require"
)

// -----------------------------------------------------------------------------
// Constants - single source of truth for test knobs
// -----------------------------------------------------------------------------

const (
	// epsTiny matches tsp.DefaultEps; kept local to make intent explicit.
	epsTiny = 1e-10

	// floatTol is the absolute tolerance for comparing summed float costs.
	floatTol = 1e-9

	// circleN is the default instance size for circle-based tests.
	circleN = 40
)

// -----------------------------------------------------------------------------
// Minimal matrix implementation for tests (square, bounds-checked, with Clone).
// It satisfies matrix.Matrix without being *matrix.Dense, so it exercises the
// generic prefetch path.
// -----------------------------------------------------------------------------

// testDense is a simple dense matrix with bounds-checked At/Set and deep Clone.
type testDense struct{ a [][]float64 }

var _ matrix.Matrix = testDense{}

func (m testDense) Rows() int { return len(m.a) }
func (m testDense) Cols() int {
	if len(m.a) == 0 {
		return 0
	}

	return len(m.a[0])
}
func (m testDense) At(i, j int) (float64, error) {
	if i < 0 || i >= m.Rows() || j < 0 || j >= m.Cols() {
		return 0, matrix.ErrIndexOutOfBounds
	}

	return m.a[i][j], nil
}
func (m testDense) Set(i, j int, v float64) error {
	if i < 0 || i >= m.Rows() || j < 0 || j >= m.Cols() {
		return matrix.ErrIndexOutOfBounds
	}
	m.a[i][j] = v

	return nil
}
func (m testDense) Clone() matrix.Matrix {
	cp := make([][]float64, len(m.a))
	var i int
	for i = range m.a {
		cp[i] = append([]float64(nil), m.a[i]...)
	}

	return testDense{a: cp}
}

// -----------------------------------------------------------------------------
// Generic helpers
// -----------------------------------------------------------------------------

// Repeat runs fn N times. Useful for determinism/stability checks.
func Repeat(t *testing.T, n int, fn func(t *testing.T)) {
	t.Helper()
	var i int
	for i = 0; i < n; i++ {
		fn(t)
	}
}

// mustDense converts literal rows to *matrix.Dense or fails the test.
func mustDense(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// mustCost returns tsp.TourCost or fails the test.
func mustCost(t testing.TB, m matrix.Matrix, tour []int) float64 {
	t.Helper()
	c, err := tsp.TourCost(m, tour)
	require.NoError(t, err)

	return c
}

// -----------------------------------------------------------------------------
// Geometric generators (Euclidean symmetric / asymmetric)
// -----------------------------------------------------------------------------

// euclidRows builds a symmetric metric from 2D points with exact zero diagonal.
func euclidRows(pts [][2]float64) [][]float64 {
	n := len(pts)
	a := make([][]float64, n)
	var i, j int
	for i = 0; i < n; i++ {
		a[i] = make([]float64, n)
	}

	// Fill upper triangle, mirror to lower triangle.
	var d float64
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			d = math.Hypot(pts[i][0]-pts[j][0], pts[i][1]-pts[j][1])
			a[i][j] = d
			a[j][i] = d
		}
	}

	return a
}

// euclid wraps euclidRows into the generic (non-Dense) test matrix.
func euclid(pts [][2]float64) matrix.Matrix {
	return testDense{a: euclidRows(pts)}
}

// euclidAsym adds a directional bias on j<i entries to break symmetry.
func euclidAsym(pts [][2]float64, bias float64) matrix.Matrix {
	a := euclidRows(pts)
	var i, j int
	for i = range a {
		for j = 0; j < i; j++ {
			a[i][j] += bias
		}
	}

	return testDense{a: a}
}

// scrambledCircle places n points on a circle, listed in a scrambled order
// (index k sits at angle (k*step mod n)), so the identity tour crosses itself.
// step must be coprime with n.
func scrambledCircle(n, step int) [][2]float64 {
	pts := make([][2]float64, n)
	var (
		k     int
		theta float64
	)
	for k = 0; k < n; k++ {
		theta = 2 * math.Pi * float64((k*step)%n) / float64(n)
		pts[k] = [2]float64{math.Cos(theta), math.Sin(theta)}
	}

	return pts
}

// unitSquare lists the corners so that the identity tour 0→1→2→3 crosses.
var unitSquare = [][2]float64{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
