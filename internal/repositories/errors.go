package repositories

import "errors"

// Sentinel errors shared by every repository and service. Callers check them
// with errors.Is; handlers map them to HTTP status codes. This replaces the
// mixed throw/nil-return signaling the domain historically had.
var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
	ErrInvalid  = errors.New("invalid")
)
