package foldmanager

import (
	"github.com/archfold/hpremc/conformation"
	"github.com/archfold/hpremc/geometry"
	"github.com/archfold/hpremc/lattice"
)

// VHSdNeighbourhood computes the VHSd local-move neighbourhood of x (spec
// §4.5): for each residue, the endpoints try an end move and every interior
// residue tries a corner move; a residue whose move generator errors
// (ErrNotEndCell, ErrNotCornerCell) contributes no neighbours — the move
// error is swallowed locally, exactly as original_source's
// compute_vhsd_neighbourhood does with its bare except. Every candidate
// target yields one cloned Conformation with that single residue displaced,
// its energy cache invalidated. Iteration order is deterministic: residue
// id order, then lattice.AllAdjacent's fixed offset order (P3).
func (m *Manager) VHSdNeighbourhood(x *conformation.Conformation) []*conformation.Conformation {
	p := x.Protein()
	lat := x.Lattice()
	n := p.Len()

	residueAt := make(map[string]int, n)
	for i := 0; i < n; i++ {
		c, err := x.CoordinateOf(i)
		if err != nil {
			continue
		}
		residueAt[c.Key()] = i
	}

	var out []*conformation.Conformation
	for residueID := 0; residueID < n; residueID++ {
		cell, err := x.CoordinateOf(residueID)
		if err != nil {
			continue
		}

		var targets []geometry.Point
		if p.IsEndpoint(residueID) {
			if t, err := lattice.EndMove(lat, cell, p, residueID, residueAt); err == nil {
				targets = append(targets, t...)
			}
		} else {
			if t, err := lattice.CornerMove(lat, cell, p, residueID, residueAt); err == nil {
				targets = append(targets, t...)
			}
		}

		for _, target := range targets {
			if moved := displace(x, residueID, cell, target); moved != nil {
				out = append(out, moved)
			}
		}
	}
	return out
}

// displace clones x with residueID moved from cell to target, invalidating
// the clone's energy cache (the displaced residue's contacts may differ).
func displace(x *conformation.Conformation, residueID int, cell, target geometry.Point) *conformation.Conformation {
	clone := x.Clone()
	lat := clone.Lattice()
	_ = lat.SetOccupied(cell, false)
	_ = lat.SetOccupied(target, true)
	coords := clone.Coordinates()
	coords[residueID] = target

	moved, err := conformation.New(clone.Protein(), lat, coords)
	if err != nil {
		// Unreachable for a well-formed move target: EndMove/CornerMove only
		// return free, in-bounds cells adjacent to the chain. Kept as a
		// defensive fallback so a future move generator's bug degrades to
		// "no neighbour" instead of a panic.
		return nil
	}
	moved.InvalidateEnergy()
	return moved
}
