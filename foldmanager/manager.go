// Package foldmanager implements the self-avoiding-walk initial-conformation
// sampler and the VHSd local-move neighbourhood generator (spec §4.4, §4.5).
//
// Grounded on tsp/rng.go's injectable-*rand.Rand discipline (no package-level
// PRNG anywhere) and original_source's ConformationManager.py for the exact
// retry/placement and neighbourhood algorithms.
package foldmanager

import (
	"math/rand"

	"github.com/archfold/hpremc/conformation"
	"github.com/archfold/hpremc/geometry"
	"github.com/archfold/hpremc/lattice"
	"github.com/archfold/hpremc/protein"
)

// Manager samples initial conformations and enumerates VHSd neighbourhoods
// for a fixed protein and lattice shape. It owns no conformation state of
// its own — unlike the Python reference's ConformationManager, it does not
// accumulate a history list; every call is a pure function of its inputs
// plus the shared rng stream.
type Manager struct {
	protein        *protein.Protein
	dims           geometry.Dimensionality
	rng            *rand.Rand
	maxSAWAttempts int
}

// New constructs a Manager. rng must be non-nil: the PRNG is an explicit,
// injectable dependency, never a package-level global (tsp/rng.go's
// discipline). Returns ErrBadDimension if dims has neither 2 nor 3 axes.
func New(p *protein.Protein, dims geometry.Dimensionality, rng *rand.Rand, opts ...Option) (*Manager, error) {
	if dims.Len() != 2 && dims.Len() != 3 {
		return nil, ErrBadDimension
	}
	m := &Manager{
		protein:        p,
		dims:           dims,
		rng:            rng,
		maxSAWAttempts: defaultMaxSAWAttempts,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// InitialConformation runs the self-avoiding-walk placement of spec §4.4:
// reset the lattice, place residue 0 uniformly at random, then extend the
// chain one residue at a time via a uniformly-random free adjacent cell.
// Any dead end (ErrNoCandidate) restarts the whole attempt from scratch, up
// to maxSAWAttempts times, after which ErrInitialPlacementFailed is returned.
func (m *Manager) InitialConformation() (*conformation.Conformation, error) {
	n := m.protein.Len()
	for attempt := 0; attempt < m.maxSAWAttempts; attempt++ {
		lat := lattice.New(m.dims)
		coordOf := make([]geometry.Point, n)

		first := randomPoint(m.rng, m.dims)
		if err := lat.SetOccupied(first, true); err != nil {
			continue
		}
		coordOf[0] = first
		occupied := map[string]bool{first.Key(): true}

		ok := true
		current := first
		for i := 1; i < n; i++ {
			next, err := lat.RandomFreeAdjacent(m.rng, current, occupied)
			if err != nil {
				ok = false
				break
			}
			if err := lat.SetOccupied(next, true); err != nil {
				ok = false
				break
			}
			coordOf[i] = next
			occupied[next.Key()] = true
			current = next
		}
		if !ok {
			continue
		}

		conf, err := conformation.New(m.protein, lat, coordOf)
		if err != nil {
			continue
		}
		return conf, nil
	}
	return nil, ErrInitialPlacementFailed
}

// randomPoint samples a uniformly random in-bounds coordinate over dims.
func randomPoint(rng *rand.Rand, dims geometry.Dimensionality) geometry.Point {
	switch d := dims.(type) {
	case geometry.Dims3:
		return geometry.Coord3{X: rng.Intn(d.X), Y: rng.Intn(d.Y), Z: rng.Intn(d.Z)}
	default:
		d2 := dims.(geometry.Dims2)
		return geometry.Coord2{X: rng.Intn(d2.X), Y: rng.Intn(d2.Y)}
	}
}
