package lattice

import "errors"

// Sentinel errors for lattice operations (spec §7).
var (
	// ErrOutOfBounds indicates a coordinate outside the lattice dimensions.
	ErrOutOfBounds = errors.New("lattice: coordinate out of bounds")

	// ErrNoCandidate indicates no free adjacent cell was available.
	ErrNoCandidate = errors.New("lattice: no free adjacent cell")

	// ErrNotEndCell indicates an end move was attempted on a cell that does
	// not have exactly one occupied, sequence-adjacent neighbour, or that
	// has no free target cell.
	ErrNotEndCell = errors.New("lattice: not an end cell")

	// ErrNotCornerCell indicates a corner move was attempted on a cell that
	// does not have exactly two occupied, sequence-adjacent neighbours, or
	// that has no free target cell.
	ErrNotCornerCell = errors.New("lattice: not a corner cell")

	// ErrDimensionMismatch indicates a point's dimensionality does not match
	// the lattice's.
	ErrDimensionMismatch = errors.New("lattice: point dimensionality mismatch")
)
