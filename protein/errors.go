package protein

import "errors"

// Sentinel errors for protein construction.
var (
	// ErrTooShort indicates a sequence of length < 2.
	ErrTooShort = errors.New("protein: sequence length must be >= 2")

	// ErrBadResidueIDs indicates residue ids are not exactly {0,...,n-1}
	// in positional order.
	ErrBadResidueIDs = errors.New("protein: residue ids must be 0..n-1 in positional order")

	// ErrBadDimension indicates RecommendedDimension is not 2 or 3.
	ErrBadDimension = errors.New("protein: recommended dimension must be 2 or 3")
)
