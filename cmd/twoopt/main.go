// Command twoopt improves the identity tour of a distance-matrix instance
// with first-improvement 2-opt, repeats the run for timing and prints a
// summary.
//
// Usage:
//
//	twoopt [flags] <matrix-file>
//
// Files ending in ".zst" are decompressed on the fly.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/katalvlaran/twoopt/config"
	"github.com/katalvlaran/twoopt/instance"
	"github.com/katalvlaran/twoopt/matrix"
	"github.com/katalvlaran/twoopt/runner"
	"github.com/katalvlaran/twoopt/tsp"
)

// symmetryTol matches the tolerance enforced by -require-symmetric.
const symmetryTol = 1e-12

var (
	configPath       = flag.String("config", "", "TOML run config (optional; flags override it)")
	runs             = flag.Int("runs", config.DefaultRuns, "Timed repetitions; all must agree")
	maxIters         = flag.Int("max-iters", tsp.DefaultMaxIterations, "Cap on applied moves per run (0 = no moves)")
	eps              = flag.Float64("eps", tsp.DefaultEps, "Apply a move only when its delta is below -eps")
	requireSymmetric = flag.Bool("require-symmetric", false, "Reject asymmetric matrices")
	progress         = flag.Bool("progress", false, "Draw a progress bar over the timing runs")
	verbose          = flag.Bool("v", false, "Log every applied move of the first run")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] <matrix-file>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	log.SetFlags(0)
	log.SetPrefix("twoopt: ")

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.Fatalf("Unable to load config: %v", err)
		}
	}
	overrideFromFlags(&cfg)
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid settings: %v", err)
	}

	dist, err := instance.ReadFile(flag.Arg(0))
	if err != nil {
		log.Fatalf("Unable to load instance: %v", err)
	}
	if !cfg.RequireSymmetric && !matrix.IsSymmetric(dist, symmetryTol) {
		log.Printf("warning: %s is not symmetric; reported improvement may differ from the real cost change", flag.Arg(0))
	}

	opts := cfg.Options()
	if cfg.Verbose {
		opts.OnMove = func(iter int, m tsp.Move) {
			log.Printf("move %d: reverse [%d..%d] delta %g", iter, m.I+1, m.J, m.Delta)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	rep, err := runner.Run(ctx, dist, runner.RunConfig{
		Runs:     cfg.Runs,
		Options:  opts,
		Progress: cfg.Progress,
	})
	stop()
	if err != nil {
		log.Fatalf("Optimization failed: %v", err)
	}

	if err = rep.Print(os.Stdout); err != nil {
		log.Fatalf("Unable to write report: %v", err)
	}
}

// overrideFromFlags copies explicitly set flags over the file values.
func overrideFromFlags(cfg *config.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "runs":
			cfg.Runs = *runs
		case "max-iters":
			cfg.MaxIterations = *maxIters
		case "eps":
			cfg.Eps = *eps
		case "require-symmetric":
			cfg.RequireSymmetric = *requireSymmetric
		case "progress":
			cfg.Progress = *progress
		case "v":
			cfg.Verbose = *verbose
		}
	})
}
