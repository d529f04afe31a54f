// Package runner repeats an optimization, times every repetition and checks
// that all repetitions agree.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/k0kubun/go-ansi"
	"github.com/schollz/progressbar/v3"

	"github.com/katalvlaran/twoopt/matrix"
	"github.com/katalvlaran/twoopt/tsp"
)

var (
	// ErrInvalidRuns is returned when fewer than one run is requested.
	ErrInvalidRuns = errors.New("runner: runs must be >= 1")

	// ErrNondeterministic is returned when two runs on the same input
	// produced different results.
	ErrNondeterministic = errors.New("runner: runs disagree")
)

// RunConfig controls a batch of repeated runs.
type RunConfig struct {
	// Runs is the number of repetitions (≥ 1).
	Runs int

	// Options is passed to every tsp.Optimize call. Options.OnMove fires
	// during the first run only.
	Options tsp.Options

	// Progress draws a progress bar to ProgressWriter (ANSI stdout when nil).
	Progress       bool
	ProgressWriter io.Writer
}

// Run optimizes dist cfg.Runs times. ctx is checked between runs.
func Run(ctx context.Context, dist matrix.Matrix, cfg RunConfig) (Report, error) {
	if cfg.Runs < 1 {
		return Report{}, fmt.Errorf("%w: got %d", ErrInvalidRuns, cfg.Runs)
	}

	var bar *progressbar.ProgressBar
	if cfg.Progress {
		bar = newBar(cfg.Runs, cfg.ProgressWriter)
	}

	var (
		rep   = Report{Durations: make([]time.Duration, 0, cfg.Runs)}
		opts  = cfg.Options
		res   tsp.Result
		start time.Time
		err   error
		i     int
	)
	for i = 0; i < cfg.Runs; i++ {
		if err = ctx.Err(); err != nil {
			return Report{}, fmt.Errorf("runner: before run %d: %w", i+1, err)
		}

		start = time.Now()
		res, err = tsp.Optimize(dist, opts)
		rep.Durations = append(rep.Durations, time.Since(start))
		if err != nil {
			return Report{}, err
		}

		if i == 0 {
			rep.First = res
			opts.OnMove = nil
		} else if !sameResult(rep.First, res) {
			return Report{}, fmt.Errorf("%w: run %d gave %s after %d moves, run 1 gave %s after %d",
				ErrNondeterministic, i+1, tsp.DebugString(res.Tour), res.Iterations,
				tsp.DebugString(rep.First.Tour), rep.First.Iterations)
		}
		if bar != nil {
			_ = bar.Add(1)
		}
	}

	if rep.Cost, err = tsp.TourCost(dist, rep.First.Tour); err != nil {
		return Report{}, err
	}
	rep.summarize()

	return rep, nil
}

func newBar(runs int, w io.Writer) *progressbar.ProgressBar {
	if w == nil {
		w = ansi.NewAnsiStdout()
	}

	return progressbar.NewOptions(runs,
		progressbar.OptionSetWriter(w),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(15),
		progressbar.OptionShowCount(),
		progressbar.OptionSetDescription("[cyan]2-opt[reset] timing runs..."),
		progressbar.OptionOnCompletion(func() { fmt.Fprintln(w) }),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))
}

// sameResult compares two runs field by field; float deltas must match
// bit for bit since the computation is deterministic.
func sameResult(a, b tsp.Result) bool {
	return a.TotalImprovement == b.TotalImprovement &&
		a.Iterations == b.Iterations &&
		a.Converged == b.Converged &&
		slices.Equal(a.Tour, b.Tour)
}
