// Package geometry provides integer lattice coordinates in 2 or 3 dimensions,
// ℓ1 adjacency, and bounded-box neighbour enumeration.
//
// Dimension is a small finite set ({2,3}), so this package monomorphizes
// instead of building a generic d-tuple type: Coord2/Dims2 for the planar
// case, Coord3/Dims3 for the cubic case, both satisfying Point/Dimensionality
// so callers (lattice, conformation) can stay dimension-agnostic.
package geometry
