// Package metropolis implements the fixed-step, single-temperature
// Metropolis Monte Carlo inner loop over a VHSd neighbourhood (spec §4.6).
//
// Grounded on tsp/two_opt.go's accept/reject loop shape (deterministic scan,
// one candidate evaluated at a time, strict sentinel errors) and
// tsp/types.go's Options/DefaultOptions convention.
package metropolis

import (
	"math"
	"math/rand"

	"github.com/archfold/hpremc/conformation"
	"github.com/archfold/hpremc/foldmanager"
)

// Optimize runs phi = opts.Steps iterations of Metropolis Monte Carlo
// starting from x0, at the given fixed temperature, using mgr to compute
// each step's VHSd neighbourhood.
//
// Per step: compute the current conformation's neighbourhood; if empty,
// return immediately with whatever has been accepted so far (spec §4.6: "no
// escape" — a conformation with no legal local move is a local dead end for
// this step, not an error). Otherwise pick one neighbour uniformly at
// random and accept it if its energy is strictly lower, or — using the
// canonical Metropolis rule, not the reference's inverted q > threshold
// branch (spec §9 flags this as a known bug in the Python original) —
// accept with probability exp(-deltaE/temperature) when deltaE >= 0.
//
// Returns ErrInvalidTemperature if temperature <= 0.
func Optimize(x0 *conformation.Conformation, temperature float64, mgr *foldmanager.Manager, rng *rand.Rand, opts Options) (*conformation.Conformation, error) {
	if temperature <= 0 {
		return nil, ErrInvalidTemperature
	}

	current := x0
	for step := 0; step < opts.Steps; step++ {
		neighbours := mgr.VHSdNeighbourhood(current)
		if len(neighbours) == 0 {
			break
		}
		candidate := neighbours[rng.Intn(len(neighbours))]

		deltaE := float64(candidate.Energy() - current.Energy())
		if deltaE < 0 {
			current = candidate
			continue
		}
		q := rng.Float64()
		if q <= math.Exp(-deltaE/temperature) {
			current = candidate
		}
	}
	return current, nil
}
