// Package lattice implements the bounded integer occupancy grid, its
// neighbour enumeration, and the end/corner move generators (spec §4.1).
//
// Grounded on gridgraph.GridGraph (NewGridGraph/InBounds/NeighborOffsets)
// from the teacher repository, generalized from a fixed 2D width/height to
// geometry.Dims (2 or 3 axes) and from "land/water" cell semantics to
// "occupied/free" residue-placement semantics.
package lattice

import (
	"math/rand"

	"github.com/archfold/hpremc/geometry"
)

// Lattice is a mutable, bounded occupancy grid. The keyspace of occ is
// exactly the Cartesian product of [0,dimI) on construction (spec §3); at
// rest its True-valued cells equal the image of the owning Conformation's
// residue→coordinate map.
type Lattice struct {
	dims geometry.Dimensionality
	occ  map[string]bool
}

// New constructs a Lattice over dims with every cell initially free.
// Complexity: O(volume).
func New(dims geometry.Dimensionality) *Lattice {
	l := &Lattice{dims: dims, occ: make(map[string]bool)}
	l.populate()
	return l
}

// populate seeds occ with every in-bounds cell set to false.
func (l *Lattice) populate() {
	switch d := l.dims.(type) {
	case geometry.Dims2:
		for x := 0; x < d.X; x++ {
			for y := 0; y < d.Y; y++ {
				l.occ[geometry.Coord2{X: x, Y: y}.Key()] = false
			}
		}
	case geometry.Dims3:
		for x := 0; x < d.X; x++ {
			for y := 0; y < d.Y; y++ {
				for z := 0; z < d.Z; z++ {
					l.occ[geometry.Coord3{X: x, Y: y, Z: z}.Key()] = false
				}
			}
		}
	}
}

// Dims returns the lattice's dimension bounds.
func (l *Lattice) Dims() geometry.Dimensionality { return l.dims }

// SetOccupied marks p occupied (v=true) or free (v=false).
// Returns ErrOutOfBounds if p lies outside the lattice.
func (l *Lattice) SetOccupied(p geometry.Point, v bool) error {
	if !geometry.InBounds(l.dims, p) {
		return ErrOutOfBounds
	}
	l.occ[p.Key()] = v
	return nil
}

// IsOccupied reports whether p is marked occupied. Out-of-bounds points are
// reported free; callers that need strict bounds checking should use
// geometry.InBounds directly.
func (l *Lattice) IsOccupied(p geometry.Point) bool {
	return l.occ[p.Key()]
}

// Reset clears every cell to free.
func (l *Lattice) Reset() {
	for k := range l.occ {
		l.occ[k] = false
	}
}

// AreAdjacent reports whether a and b are lattice-adjacent (ℓ1 distance 1).
func (l *Lattice) AreAdjacent(a, b geometry.Point) bool {
	return geometry.AreAdjacent(a, b)
}

// AllAdjacent returns the up-to-2d in-bounds neighbours of p, in the fixed
// enumeration order (−x,+x,−y,+y[,−z,+z]).
func (l *Lattice) AllAdjacent(p geometry.Point) []geometry.Point {
	return geometry.NeighborOffsets(l.dims, p)
}

// RandomFreeAdjacent uniformly samples one in-bounds neighbour of p that is
// not occupied and not in exclude. Returns ErrNoCandidate if none exist.
func (l *Lattice) RandomFreeAdjacent(rng *rand.Rand, p geometry.Point, exclude map[string]bool) (geometry.Point, error) {
	all := l.AllAdjacent(p)
	candidates := make([]geometry.Point, 0, len(all))
	for _, n := range all {
		if l.occ[n.Key()] {
			continue
		}
		if exclude != nil && exclude[n.Key()] {
			continue
		}
		candidates = append(candidates, n)
	}
	if len(candidates) == 0 {
		return nil, ErrNoCandidate
	}
	return candidates[rng.Intn(len(candidates))], nil
}

// Clone returns a deep copy: an independent occupancy map over the same
// dims. The source is never mutated by the clone.
func (l *Lattice) Clone() *Lattice {
	occCopy := make(map[string]bool, len(l.occ))
	for k, v := range l.occ {
		occCopy[k] = v
	}
	return &Lattice{dims: l.dims, occ: occCopy}
}
