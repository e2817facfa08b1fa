package conformation

import "errors"

// Sentinel errors for conformation operations (spec §7).
var (
	// ErrResidueNotFound indicates a lookup by residue id missed.
	ErrResidueNotFound = errors.New("conformation: residue not found")

	// ErrInvalidConformation indicates a post-construction validity check
	// failed — unreachable for core-produced conformations, but guarded
	// against external misuse of New.
	ErrInvalidConformation = errors.New("conformation: invariants I1-I4 violated")
)
