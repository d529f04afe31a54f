package instance_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/twoopt/instance"
	"github.com/katalvlaran/twoopt/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rowsOf reads every entry of m back into literal rows.
func rowsOf(t *testing.T, m matrix.Matrix) [][]float64 {
	t.Helper()
	out := make([][]float64, m.Rows())
	var i, j int
	for i = range out {
		out[i] = make([]float64, m.Cols())
		for j = range out[i] {
			v, err := m.At(i, j)
			require.NoError(t, err)
			out[i][j] = v
		}
	}

	return out
}

// -----------------------------------------------------------------------------
// Well-formed input
// -----------------------------------------------------------------------------

func TestRead_Valid(t *testing.T) {
	want := [][]float64{
		{0, 1, 2.5},
		{1, 0, 3},
		{2.5, 3, 0},
	}
	tests := []struct {
		name string
		in   string
	}{
		{"one row per line", "3\n0 1 2.5\n1 0 3\n2.5 3 0\n"},
		{"single line", "3 0 1 2.5 1 0 3 2.5 3 0"},
		{"tabs and blank lines", "\n3\n\n0\t1\t2.5\n1 \t 0 3\r\n2.5e0 3.0 0\n\n"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			m, err := instance.Read(strings.NewReader(tc.in))
			require.NoError(t, err)
			assert.Equal(t, want, rowsOf(t, m))
		})
	}
}

func TestRead_ZeroCities(t *testing.T) {
	m, err := instance.Read(strings.NewReader("0\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, m.Rows())
	assert.Equal(t, 0, m.Cols())
}

func TestRead_AsymmetricAccepted(t *testing.T) {
	m, err := instance.Read(strings.NewReader("2\n0 4\n9 0\n"))
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0, 4}, {9, 0}}, rowsOf(t, m))
	assert.False(t, matrix.IsSymmetric(m, 0))
}

// -----------------------------------------------------------------------------
// Malformed input
// -----------------------------------------------------------------------------

func TestRead_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
		pos  string
	}{
		{"empty", "", instance.ErrBadHeader, ""},
		{"whitespace only", " \n\t", instance.ErrBadHeader, ""},
		{"header not integer", "2.5\n0 0\n0 0", instance.ErrBadHeader, ""},
		{"header negative", "-1", instance.ErrBadHeader, ""},
		{"header too large", "99999999", instance.ErrBadHeader, ""},
		{"short row data", "2\n0 1\n1", instance.ErrMissingData, "(1,1)"},
		{"header only", "3\n", instance.ErrMissingData, "(0,0)"},
		{"bad token", "2\n0 x\n1 0", instance.ErrBadValue, "(0,1)"},
		{"negative", "2\n0 1\n-1 0", instance.ErrNegativeDistance, "(1,0)"},
		{"nan", "2\n0 NaN\n1 0", instance.ErrNonFinite, "(0,1)"},
		{"inf", "2\n0 1\nInf 0", instance.ErrNonFinite, "(1,0)"},
		{"overflow", "2\n0 1e999\n1 0", instance.ErrNonFinite, "(0,1)"},
		{"trailing", "2\n0 1\n1 0\n7", instance.ErrTrailingData, ""},
		{"trailing after empty", "0 1", instance.ErrTrailingData, ""},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			m, err := instance.Read(strings.NewReader(tc.in))
			require.ErrorIs(t, err, tc.want)
			assert.Nil(t, m)
			if tc.pos != "" {
				assert.Contains(t, err.Error(), tc.pos)
			}
		})
	}
}
