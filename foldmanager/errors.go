package foldmanager

import "errors"

// Sentinel errors for manager construction and initial placement (spec §7).
var (
	// ErrBadDimension indicates dims has neither 2 nor 3 axes.
	ErrBadDimension = errors.New("foldmanager: dims must have 2 or 3 axes")

	// ErrInitialPlacementFailed indicates every attempt at a self-avoiding
	// walk placement was refused by the lattice within maxSAWAttempts.
	ErrInitialPlacementFailed = errors.New("foldmanager: could not place protein after max attempts")
)
