package runner_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/katalvlaran/twoopt/runner"
	"github.com/katalvlaran/twoopt/tsp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReport_Print(t *testing.T) {
	rep := runner.Report{
		First: tsp.Result{
			Tour:             []int{0, 2, 1, 3},
			TotalImprovement: -1.25,
			Iterations:       2,
			Converged:        true,
		},
		Cost: 7.5,
		Mean: 1500 * time.Microsecond,
	}

	var buf bytes.Buffer
	require.NoError(t, rep.Print(&buf))
	assert.Equal(t, "Optimized tour: 0 2 1 3 \n"+
		"Total improvement: 1.250000\n"+
		"Iterations: 2\n"+
		"Tour cost: 7.500000\n"+
		"Converged: true\n"+
		"Average time spent: 0.001500 seconds\n", buf.String())
}

func TestReport_PrintNoImprovement(t *testing.T) {
	rep := runner.Report{First: tsp.Result{Tour: []int{0}, Converged: true}}

	var buf bytes.Buffer
	require.NoError(t, rep.Print(&buf))
	assert.Contains(t, buf.String(), "Total improvement: 0.000000\n")
	assert.Contains(t, buf.String(), "Optimized tour: 0 \n")
}
