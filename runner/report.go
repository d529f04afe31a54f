package runner

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/twoopt/tsp"
)

// Report summarizes a batch of identical runs.
type Report struct {
	// First is the result of the first run; every other run matched it.
	First tsp.Result

	// Cost is the closed-cycle cost of First.Tour.
	Cost float64

	// Durations holds the wall time of each run in order.
	Durations []time.Duration

	// Timing statistics over Durations. StdDev is the sample deviation,
	// zero for a single run.
	Mean, StdDev, Min, Max time.Duration
}

func (r *Report) summarize() {
	if len(r.Durations) == 0 {
		return
	}
	ns := make([]float64, len(r.Durations))
	for i, d := range r.Durations {
		ns[i] = float64(d)
	}

	r.Mean = time.Duration(stat.Mean(ns, nil))
	if len(ns) > 1 {
		r.StdDev = time.Duration(stat.StdDev(ns, nil))
	}
	r.Min = time.Duration(floats.Min(ns))
	r.Max = time.Duration(floats.Max(ns))
}

// Print writes the human-readable summary:
//
//	Optimized tour: 0 1 3 2
//	Total improvement: 0.828427
//	Iterations: 1
//	Tour cost: 4.000000
//	Converged: true
//	Average time spent: 0.000012 seconds
//
// Total improvement is reported as a positive saving.
func (r Report) Print(w io.Writer) error {
	bw := bufio.NewWriter(w)

	buf := []byte("Optimized tour: ")
	for _, city := range r.First.Tour {
		buf = strconv.AppendInt(buf, int64(city), 10)
		buf = append(buf, ' ')
	}
	buf = append(buf, '\n')
	if _, err := bw.Write(buf); err != nil {
		return err
	}

	saving := -r.First.TotalImprovement
	if saving == 0 {
		saving = 0 // no "-0.000000"
	}
	fmt.Fprintf(bw, "Total improvement: %f\n", saving)
	fmt.Fprintf(bw, "Iterations: %d\n", r.First.Iterations)
	fmt.Fprintf(bw, "Tour cost: %f\n", r.Cost)
	fmt.Fprintf(bw, "Converged: %t\n", r.First.Converged)
	fmt.Fprintf(bw, "Average time spent: %.6f seconds\n", r.Mean.Seconds())

	return bw.Flush()
}
