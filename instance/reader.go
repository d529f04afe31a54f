package instance

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/DataDog/zstd"

	"github.com/katalvlaran/twoopt/matrix"
)

// MaxCities bounds the header so a corrupt file cannot request an
// arbitrarily large allocation.
const MaxCities = 1 << 14

// zstdExt marks compressed instance files.
const zstdExt = ".zst"

// Read parses one instance from r.
// N = 0 yields matrix.Empty(). Errors wrap one of the package sentinels with
// the offending position.
//
// Complexity: O(N²) time and memory.
func Read(r io.Reader) (*matrix.Dense, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("instance: read header: %w", err)
		}

		return nil, fmt.Errorf("%w: empty input", ErrBadHeader)
	}
	n, err := strconv.Atoi(sc.Text())
	if err != nil || n < 0 || n > MaxCities {
		return nil, fmt.Errorf("%w: %q (want integer in [0,%d])", ErrBadHeader, sc.Text(), MaxCities)
	}
	if n == 0 {
		if sc.Scan() {
			return nil, fmt.Errorf("%w: %q after empty matrix", ErrTrailingData, sc.Text())
		}

		if err = sc.Err(); err != nil {
			return nil, fmt.Errorf("instance: read trailer: %w", err)
		}

		return matrix.Empty(), nil
	}

	m, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}

	var (
		i, j int
		v    float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if !sc.Scan() {
				if err = sc.Err(); err != nil {
					return nil, fmt.Errorf("instance: read (%d,%d): %w", i, j, err)
				}

				return nil, fmt.Errorf("%w: stream ended at (%d,%d) of %dx%d", ErrMissingData, i, j, n, n)
			}
			if v, err = parseDistance(sc.Text()); err != nil {
				return nil, fmt.Errorf("(%d,%d): %w", i, j, err)
			}
			if err = m.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	if sc.Scan() {
		return nil, fmt.Errorf("%w: %q after %dx%d values", ErrTrailingData, sc.Text(), n, n)
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("instance: read trailer: %w", err)
	}

	return m, nil
}

// parseDistance converts one token into a finite, non-negative distance.
func parseDistance(tok string) (float64, error) {
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		// Overflow comes back as ±Inf with ErrRange.
		if errors.Is(err, strconv.ErrRange) && math.IsInf(v, 0) {
			return 0, fmt.Errorf("%w: %q", ErrNonFinite, tok)
		}

		return 0, fmt.Errorf("%w: %q", ErrBadValue, tok)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q", ErrNonFinite, tok)
	}
	if v < 0 {
		return 0, fmt.Errorf("%w: %q", ErrNegativeDistance, tok)
	}

	return v, nil
}

// ReadFile opens path and parses it with Read, decompressing ".zst" files.
func ReadFile(path string) (*matrix.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("instance: open: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, zstdExt) {
		zr := zstd.NewReader(f)
		defer zr.Close()
		r = zr
	}

	m, err := Read(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}
