package lattice

import (
	"github.com/archfold/hpremc/geometry"
	"github.com/archfold/hpremc/protein"
)

// MoveFunc is the extension-point signature shared by end/corner moves and
// any future move generator (crankshaft, pull). A MoveFunc never mutates
// its Lattice; it returns the set of legal target coordinates for the
// residue currently sitting at cell, or a sentinel error when its
// geometric precondition fails. Move-generator errors are recovered
// locally by the VHSd neighbourhood enumerator (spec §7): a residue that
// yields an error simply contributes no neighbours.
type MoveFunc func(l *Lattice, cell geometry.Point, p *protein.Protein, residueID int, residueAt map[string]int) ([]geometry.Point, error)

// chainNeighbours returns the in-bounds, occupied, sequence-adjacent
// neighbours of cell (the residues the chain actually connects through,
// as opposed to merely-adjacent-in-space unrelated residues).
func chainNeighbours(l *Lattice, cell geometry.Point, p *protein.Protein, residueID int, residueAt map[string]int) []geometry.Point {
	var out []geometry.Point
	for _, n := range l.AllAdjacent(cell) {
		if !l.occ[n.Key()] {
			continue
		}
		otherID, ok := residueAt[n.Key()]
		if !ok {
			continue
		}
		if p.AreSequenceNeighbours(otherID, residueID) {
			out = append(out, n)
		}
	}
	return out
}

// EndMove computes the end-move candidate targets for the residue at cell,
// which must be the first or last residue of p and must have exactly one
// chain-adjacent occupied neighbour (spec §4.1).
//
// Result: the free neighbours of that unique chain neighbour, excluding
// cell itself.
func EndMove(l *Lattice, cell geometry.Point, p *protein.Protein, residueID int, residueAt map[string]int) ([]geometry.Point, error) {
	neighbours := chainNeighbours(l, cell, p, residueID, residueAt)
	if len(neighbours) != 1 {
		return nil, ErrNotEndCell
	}
	pivot := neighbours[0]

	var targets []geometry.Point
	for _, n := range l.AllAdjacent(pivot) {
		if l.occ[n.Key()] {
			continue
		}
		if n.Key() == cell.Key() {
			continue
		}
		targets = append(targets, n)
	}
	if len(targets) == 0 {
		return nil, ErrNotEndCell
	}
	return targets, nil
}

// CornerMove computes the corner-move candidate targets for an interior
// residue at cell, which must have exactly two chain-adjacent occupied
// neighbours p, q (spec §4.1).
//
// Result: the cells simultaneously adjacent to both p and q, free, and not
// cell itself.
func CornerMove(l *Lattice, cell geometry.Point, p *protein.Protein, residueID int, residueAt map[string]int) ([]geometry.Point, error) {
	neighbours := chainNeighbours(l, cell, p, residueID, residueAt)
	if len(neighbours) != 2 {
		return nil, ErrNotCornerCell
	}

	adjA := l.AllAdjacent(neighbours[0])
	adjBSet := make(map[string]bool, len(l.AllAdjacent(neighbours[1])))
	for _, n := range l.AllAdjacent(neighbours[1]) {
		adjBSet[n.Key()] = true
	}

	var targets []geometry.Point
	for _, n := range adjA {
		if !adjBSet[n.Key()] {
			continue
		}
		if l.occ[n.Key()] {
			continue
		}
		if n.Key() == cell.Key() {
			continue
		}
		targets = append(targets, n)
	}
	if len(targets) == 0 {
		return nil, ErrNotCornerCell
	}
	return targets, nil
}
