package proteinio

import "errors"

// Sentinel errors for protein JSON loading (spec §6, §7).
var (
	// ErrInvalidPolarity indicates a sequence entry's "polarity" field was
	// neither "H" nor "P" — a hard load error per spec §6.
	ErrInvalidPolarity = errors.New("proteinio: polarity must be \"H\" or \"P\"")

	// ErrEmptyFile indicates the JSON document decoded to no proteins.
	ErrEmptyFile = errors.New("proteinio: no proteins found")
)
