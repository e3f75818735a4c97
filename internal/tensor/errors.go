package tensor

import "errors"

// Common errors.
var (
	ErrAxisOutOfRange = errors.New("axis out of range")
	ErrShape          = errors.New("shape mismatch")
)
