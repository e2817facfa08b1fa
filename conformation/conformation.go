// Package conformation implements the Protein + Lattice + residue→coordinate
// embedding, its validity predicate (I1–I4), and its H-H contact energy
// function (spec §4.3).
//
// Grounded on tsp's pure-function cost computation (cost.go) for
// ComputeEnergy: deterministic and side-effect-free over its inputs.
package conformation

import (
	"github.com/archfold/hpremc/geometry"
	"github.com/archfold/hpremc/lattice"
	"github.com/archfold/hpremc/polarity"
	"github.com/archfold/hpremc/protein"
)

// Conformation is a self-avoiding embedding of a Protein's chain into a
// Lattice. It exclusively owns its Lattice; cloning takes a full snapshot.
//
// Invariants (spec §3):
//
//	I1: coordOf has exactly n entries, one per residue id, bijective with residueAt.
//	I2: every coordinate is in bounds; the lattice's occupied cells equal the image of coordOf.
//	I3: sequence-adjacent residues are lattice-adjacent.
//	I4: self-avoiding (residueAt's keys are the coordinates, which are a set).
type Conformation struct {
	protein     *protein.Protein
	lat         *lattice.Lattice
	coordOf     []geometry.Point  // indexed by residue id
	residueAt   map[string]int    // coordinate key -> residue id
	energy      int
	energyFresh bool
}

// New validates and constructs a Conformation from a protein, an owned
// lattice, and a residue-id-indexed coordinate slice. Returns
// ErrInvalidConformation if I1 (bijection, full coverage), I2 (bounds,
// occupancy agreement) or I3 (sequence neighbours lattice-adjacent) does
// not hold.
func New(p *protein.Protein, lat *lattice.Lattice, coordOf []geometry.Point) (*Conformation, error) {
	n := p.Len()
	if len(coordOf) != n {
		return nil, ErrInvalidConformation
	}
	residueAt := make(map[string]int, n)
	for id, c := range coordOf {
		if !geometry.InBounds(lat.Dims(), c) {
			return nil, ErrInvalidConformation
		}
		if !lat.IsOccupied(c) {
			return nil, ErrInvalidConformation
		}
		if _, dup := residueAt[c.Key()]; dup {
			return nil, ErrInvalidConformation
		}
		residueAt[c.Key()] = id
	}
	if len(residueAt) != n {
		return nil, ErrInvalidConformation
	}

	c := &Conformation{protein: p, lat: lat, coordOf: coordOf, residueAt: residueAt}
	if !c.IsValid() {
		return nil, ErrInvalidConformation
	}
	return c, nil
}

// Protein returns the owning protein.
func (c *Conformation) Protein() *protein.Protein { return c.protein }

// Lattice returns the owned lattice (read-only by convention; mutate only
// through Clone + move application).
func (c *Conformation) Lattice() *lattice.Lattice { return c.lat }

// CoordinateOf returns the coordinate of the residue with the given id.
func (c *Conformation) CoordinateOf(residueID int) (geometry.Point, error) {
	if residueID < 0 || residueID >= len(c.coordOf) {
		return nil, ErrResidueNotFound
	}
	return c.coordOf[residueID], nil
}

// Coordinates returns a read-only view of every residue's coordinate, in
// sequence order — the shape a downstream visualizer iterates (spec §6).
func (c *Conformation) Coordinates() []geometry.Point {
	out := make([]geometry.Point, len(c.coordOf))
	copy(out, c.coordOf)
	return out
}

// ResidueAt returns the residue id occupying coordinate p, if any.
func (c *Conformation) ResidueAt(p geometry.Point) (int, bool) {
	id, ok := c.residueAt[p.Key()]
	return id, ok
}

// IsValid reports whether I3 holds across all consecutive residue pairs.
// I1/I2 are construction invariants (checked once in New); I4 is implied by
// residueAt being a map keyed on coordinate.
func (c *Conformation) IsValid() bool {
	n := c.protein.Len()
	for i := 0; i < n-1; i++ {
		if !geometry.AreAdjacent(c.coordOf[i], c.coordOf[i+1]) {
			return false
		}
	}
	return true
}

// ComputeEnergy computes and caches the H-H contact energy (spec §4.3):
//
//	E = -|{(i,j): 0<=i<j<n, j-i>1, both H, lattice-adjacent}|
//
// Sequence-adjacent pairs are bonds, not topological contacts, and never
// count. Deterministic, idempotent, and a pure function of coordOf and
// protein (P2).
func (c *Conformation) ComputeEnergy() int {
	n := c.protein.Len()
	contacts := 0
	for i := 0; i < n; i++ {
		if c.protein.At(i).Polarity() != polarity.Hydrophobic {
			continue
		}
		for j := i + 2; j < n; j++ {
			if c.protein.At(j).Polarity() != polarity.Hydrophobic {
				continue
			}
			if geometry.AreAdjacent(c.coordOf[i], c.coordOf[j]) {
				contacts++
			}
		}
	}
	c.energy = -contacts
	c.energyFresh = true
	return c.energy
}

// Energy returns the cached energy, recomputing lazily if the cache was
// invalidated by a prior mutation (resolves spec §9's Open Question: every
// read site must see a fresh-or-recomputed value, never a stale zero).
func (c *Conformation) Energy() int {
	if !c.energyFresh {
		return c.ComputeEnergy()
	}
	return c.energy
}

// InvalidateEnergy marks the cached energy stale. Called by anything that
// mutates coordOf/lat in place (the VHSd enumerator's clones).
func (c *Conformation) InvalidateEnergy() { c.energyFresh = false }

// Clone returns a deep copy: an independent Lattice and coordinate/residue
// maps. The energy cache is carried over unchanged, since nothing about
// the embedding has changed yet — callers that go on to mutate the clone
// must call InvalidateEnergy themselves (foldmanager's VHSd enumerator does).
func (c *Conformation) Clone() *Conformation {
	coordOf := make([]geometry.Point, len(c.coordOf))
	copy(coordOf, c.coordOf)
	residueAt := make(map[string]int, len(c.residueAt))
	for k, v := range c.residueAt {
		residueAt[k] = v
	}
	return &Conformation{
		protein:     c.protein,
		lat:         c.lat.Clone(),
		coordOf:     coordOf,
		residueAt:   residueAt,
		energy:      c.energy,
		energyFresh: c.energyFresh,
	}
}

// Contacts returns every topological H-H contact pair counted by
// ComputeEnergy, each as [2]int{i, j} with i<j, in ascending residue-id
// order. This is the concrete, in-scope shape of the "read-only view ...
// suitable for downstream visualizers" spec §6 promises (the
// visualization layer itself is out of scope; its input contract is not).
// len(c.Contacts()) always equals -c.Energy().
func (c *Conformation) Contacts() [][2]int {
	n := c.protein.Len()
	var out [][2]int
	for i := 0; i < n; i++ {
		if c.protein.At(i).Polarity() != polarity.Hydrophobic {
			continue
		}
		for j := i + 2; j < n; j++ {
			if c.protein.At(j).Polarity() != polarity.Hydrophobic {
				continue
			}
			if geometry.AreAdjacent(c.coordOf[i], c.coordOf[j]) {
				out = append(out, [2]int{i, j})
			}
		}
	}
	return out
}
