package qstate

import "errors"

var (
	// ErrConfiguration indicates a builder was asked to use its default
	// data (e.g. the built-in number-code tables) under a basis
	// truncation too small to hold it.
	ErrConfiguration = errors.New("invalid configuration")

	// ErrDegenerateInput indicates an accumulated state had zero norm
	// at normalization time. A zero "normalized" state is physically
	// meaningless, so the fault surfaces instead of a silent NaN vector.
	ErrDegenerateInput = errors.New("degenerate input")

	// ErrDimensionMismatch covers every basis-size disagreement: vectors
	// or matrices whose dimension differs from the stated truncation,
	// Fock indices outside 0..N-1, and non-positive truncations.
	ErrDimensionMismatch = errors.New("dimension mismatch")
)
