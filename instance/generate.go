package instance

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/twoopt/matrix"
)

// DefaultSide is the edge length of the square RandomPoints samples from.
const DefaultSide = 100.0

// Point is a location in the plane.
type Point = [2]float64

// RandomPoints returns n points drawn uniformly from [0,side)², reproducibly
// for a given seed.
func RandomPoints(n int, seed uint64, side float64) ([]Point, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: n=%d", ErrBadPoints, n)
	}
	if !(side > 0) || math.IsInf(side, 0) {
		return nil, fmt.Errorf("%w: side=%v", ErrBadPoints, side)
	}

	rng := rand.New(rand.NewSource(seed))
	pts := make([]Point, n)
	var i int
	for i = range pts {
		pts[i] = Point{rng.Float64() * side, rng.Float64() * side}
	}

	return pts, nil
}

// Euclidean builds the symmetric straight-line distance matrix of pts.
// The diagonal is exactly zero; each pair is computed once and mirrored.
func Euclidean(pts []Point) (*matrix.Dense, error) {
	n := len(pts)
	if n == 0 {
		return matrix.Empty(), nil
	}
	m, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}

	var (
		i, j int
		d    float64
	)
	for i = 0; i < n; i++ {
		if math.IsNaN(pts[i][0]) || math.IsNaN(pts[i][1]) ||
			math.IsInf(pts[i][0], 0) || math.IsInf(pts[i][1], 0) {
			return nil, fmt.Errorf("%w: point %d=%v", ErrBadPoints, i, pts[i])
		}
	}
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			d = floats.Distance(pts[i][:], pts[j][:], 2)
			if err = m.Set(i, j, d); err != nil {
				return nil, err
			}
			if err = m.Set(j, i, d); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}
