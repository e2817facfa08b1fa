// Command hpremc loads a protein from a JSON file and runs Replica
// Exchange Monte Carlo folding over it, printing the best energy found
// and the final coordinate trace.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"

	"github.com/archfold/hpremc/foldmanager"
	"github.com/archfold/hpremc/geometry"
	"github.com/archfold/hpremc/metrics"
	"github.com/archfold/hpremc/proteinio"
	"github.com/archfold/hpremc/remc"
)

func main() {
	var (
		path    = flag.String("protein", "", "path to a protein JSON file (required)")
		index   = flag.Int("index", 0, "index of the protein to fold, within the file's array")
		phi     = flag.Int("phi", 100, "Metropolis steps per replica per iteration")
		k       = flag.Int("k", 5, "number of replicas")
		tmin    = flag.Int("tmin", 1, "minimum replica temperature")
		tmax    = flag.Int("tmax", 100, "maximum replica temperature")
		maxIter = flag.Int("max-iter", 1000, "maximum REMC iterations")
		seed    = flag.Int64("seed", 1, "PRNG seed")
	)
	flag.Parse()

	if *path == "" {
		fmt.Fprintln(os.Stderr, "hpremc: -protein is required")
		flag.Usage()
		os.Exit(2)
	}

	proteins, err := proteinio.ReadProteins(*path)
	if err != nil {
		log.Fatalf("hpremc: %v", err)
	}
	if *index < 0 || *index >= len(proteins) {
		log.Fatalf("hpremc: index %d out of range; file has %d protein(s)", *index, len(proteins))
	}
	p := proteins[*index]

	var dims geometry.Dimensionality
	if p.RecommendedDimension() == 3 {
		dims = geometry.Dims3{X: 2 * p.Len(), Y: 2 * p.Len(), Z: 2 * p.Len()}
	} else {
		dims = geometry.Dims2{X: 2 * p.Len(), Y: 2 * p.Len()}
	}

	rng := rand.New(rand.NewSource(*seed))
	mgr, err := foldmanager.New(p, dims, rng)
	if err != nil {
		log.Fatalf("hpremc: %v", err)
	}

	x0, err := mgr.InitialConformation()
	if err != nil {
		log.Fatalf("hpremc: %v", err)
	}

	opts := remc.Options{
		Phi:     *phi,
		K:       *k,
		Tmin:    *tmin,
		Tmax:    *tmax,
		MaxIter: *maxIter,
		EStar:   p.EStar(),
		Seed:    *seed,
	}
	result, err := remc.Run(x0, mgr, opts)
	if err != nil {
		log.Fatalf("hpremc: %v", err)
	}

	fmt.Printf("protein:    %s\n", p.Name())
	fmt.Printf("iterations: %d\n", result.Iterations)
	fmt.Printf("best energy: %d (target %d)\n", result.BestEnergy, p.EStar())
	fmt.Printf("replica swaps: %d (%d distinct pairs)\n", len(result.Swaps), len(result.SwapCounts()))
	fmt.Printf("contact components: %d\n", len(metrics.ContactComponents(result.Best)))
	fmt.Printf("compactness index: %.2f\n", metrics.CompactnessIndex(result.Best))
	fmt.Println("coordinates:")
	for _, c := range result.Best.Coordinates() {
		fmt.Printf("  %v\n", c.Axes())
	}
}
