// Package remc implements the Replica Exchange Monte Carlo outer loop: K
// replicas at distinct temperatures, each advanced by metropolis.Optimize,
// followed by an alternating-offset adjacent-pair temperature-swap pass
// (spec §4.7).
//
// Grounded on original_source's REMC.py for the exact algorithm, including
// the offset-toggle swap schedule.
package remc

import (
	"math"
	"math/rand"

	"github.com/archfold/hpremc/conformation"
	"github.com/archfold/hpremc/foldmanager"
	"github.com/archfold/hpremc/metropolis"
)

// IterationRecord captures one outer-loop iteration's state, supporting P5
// (best-energy monotonicity) as an inspectable trace — the structured
// replacement for the Python reference's per-iteration print() calls.
type IterationRecord struct {
	Iter         int
	BestEnergy   int
	Temperatures []int
}

// SwapEvent records one accepted adjacent-pair temperature swap between
// replica slots i and j (i<j) at the given iteration.
type SwapEvent struct {
	Iter int
	I, J int
}

// Result is the outcome of Run.
type Result struct {
	Best       *conformation.Conformation
	BestEnergy int
	Iterations int
	History    []IterationRecord
	Swaps      []SwapEvent
}

// SwapCounts tallies, per adjacent replica-slot pair, how many times Run
// accepted a swap between them over the whole run. A pair absent from the
// result never exchanged.
func (r Result) SwapCounts() map[[2]int]int {
	counts := make(map[[2]int]int, len(r.Swaps))
	for _, sw := range r.Swaps {
		counts[[2]int{sw.I, sw.J}]++
	}
	return counts
}

// Run executes the REMC algorithm of spec §4.7 starting from x0: sample K
// distinct temperatures from [Tmin,Tmax], start all K replicas from x0
// (shared, not cloned: Optimize never mutates its input), then
// repeat per-replica metropolis.Optimize followed by an alternating-offset
// adjacent swap pass, until the best energy reaches opts.EStar or
// opts.MaxIter iterations have run.
//
// Returns ErrHyperparameter immediately if opts.Validate fails — before any
// replica work begins (spec §7's propagation policy).
func Run(x0 *conformation.Conformation, mgr *foldmanager.Manager, opts Options) (Result, error) {
	if err := opts.Validate(); err != nil {
		return Result{}, err
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	temperatures := sampleTemperatures(opts.Tmin, opts.Tmax, opts.K, rng)

	replicas := make([]*conformation.Conformation, opts.K)
	for k := range replicas {
		replicas[k] = x0
	}

	best := x0
	bestEnergy := x0.Energy()
	offset := 0
	history := make([]IterationRecord, 0, opts.MaxIter)
	var swaps []SwapEvent

	for iter := 1; bestEnergy > opts.EStar && iter <= opts.MaxIter; iter++ {
		next := make([]*conformation.Conformation, opts.K)
		for k := 0; k < opts.K; k++ {
			result, err := metropolis.Optimize(replicas[k], float64(temperatures[k]), mgr, rng, metropolis.Options{Steps: opts.Phi})
			if err != nil {
				return Result{}, err
			}
			next[k] = result
			if result.Energy() < bestEnergy {
				bestEnergy = result.Energy()
				best = result
			}
		}

		for i := offset + 1; i+1 < opts.K; i += 2 {
			j := i + 1
			delta := (1/float64(temperatures[j]) - 1/float64(temperatures[i])) * float64(next[i].Energy()-next[j].Energy())
			swap := delta <= 0
			if !swap {
				q := rng.Float64()
				swap = q <= math.Exp(-delta)
			}
			if swap {
				temperatures[i], temperatures[j] = temperatures[j], temperatures[i]
				swaps = append(swaps, SwapEvent{Iter: iter, I: i, J: j})
			}
		}

		offset = 1 - offset
		replicas = next

		recorded := make([]int, opts.K)
		copy(recorded, temperatures)
		history = append(history, IterationRecord{Iter: iter, BestEnergy: bestEnergy, Temperatures: recorded})
	}

	return Result{
		Best:       best,
		BestEnergy: bestEnergy,
		Iterations: len(history),
		History:    history,
		Swaps:      swaps,
	}, nil
}

// sampleTemperatures draws k distinct integers from [tmin,tmax] without
// replacement via a partial Fisher-Yates shuffle, the same construction
// shuffleIntsInPlace/permRange use for an unbiased sample: the whole range
// is materialized, but only its first k slots are shuffled.
func sampleTemperatures(tmin, tmax, k int, rng *rand.Rand) []int {
	n := tmax - tmin + 1
	pool := make([]int, n)
	for i := range pool {
		pool[i] = tmin + i
	}
	for i := 0; i < k; i++ {
		j := i + rng.Intn(n-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	out := make([]int, k)
	copy(out, pool[:k])
	return out
}
