// Command tspgen writes a random Euclidean instance: n points uniform in a
// side×side square and their pairwise distances.
//
// Usage:
//
//	tspgen -n 200 -seed 7 -o inst.txt.zst
package main

import (
	"flag"
	"log"
	"os"

	"github.com/katalvlaran/twoopt/instance"
)

var (
	n      = flag.Int("n", 100, "Number of cities")
	seed   = flag.Uint64("seed", 1, "Random seed")
	side   = flag.Float64("side", instance.DefaultSide, "Edge length of the sampling square")
	output = flag.String("o", "", "Output file (stdout when empty; \".zst\" compresses)")
)

func main() {
	flag.Parse()
	log.SetFlags(0)
	log.SetPrefix("tspgen: ")

	pts, err := instance.RandomPoints(*n, *seed, *side)
	if err != nil {
		log.Fatalf("Unable to generate points: %v", err)
	}
	dist, err := instance.Euclidean(pts)
	if err != nil {
		log.Fatalf("Unable to build distances: %v", err)
	}

	if *output == "" {
		err = instance.Write(os.Stdout, dist)
	} else {
		err = instance.WriteFile(*output, dist)
	}
	if err != nil {
		log.Fatalf("Unable to write instance: %v", err)
	}
}
