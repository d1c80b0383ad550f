// Package errors collects the sentinel errors the core can raise to its
// caller. Per the error taxonomy, rejections and invariant violations are
// never represented this way — they are events. Go errors here are reserved
// for the handful of failures that must stop the caller cold: a malformed
// save, an inconsistent balance-constant set, or RNG misuse.
package errors

import stderrors "errors"

var (
	// ErrIncompatibleVersion is returned by the codec when a save's
	// save_version does not match the version this build understands.
	ErrIncompatibleVersion = stderrors.New("guildhall: incompatible save_version")

	// ErrMalformedSave is returned by the codec when canonical bytes cannot
	// be decoded into a GameState at all.
	ErrMalformedSave = stderrors.New("guildhall: malformed save")

	// ErrConstantsInconsistent is returned at Engine construction when the
	// loaded balance constants violate the invariant
	// SUCCESS_CHANCE_MAX + PARTIAL_CHANCE_FIXED <= 100 - FAIL_CHANCE_MIN.
	ErrConstantsInconsistent = stderrors.New("guildhall: balance constants violate resolution-chance invariant")

	// ErrInvalidRNGBound is returned by the RNG source when asked to draw
	// from a non-positive bound.
	ErrInvalidRNGBound = stderrors.New("guildhall: rng bound must be > 0")
)
