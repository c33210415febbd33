package internalerr

import "errors"

// Sentinel errors for the collaborator layers. The inference core is
// total and never returns errors.
var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrStoreUnavailable = errors.New("store unavailable")
	ErrInvalidConfig    = errors.New("invalid configuration")
)
