package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidConfig    = errors.New("invalid configuration")
	ErrOutOfBounds      = errors.New("cell out of bounds")
	ErrContradiction    = errors.New("contradictory knowledge")
	ErrStoreUnavailable = errors.New("store unavailable")
)
