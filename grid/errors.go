package grid

import "errors"

var (
	// ErrOutOfBounds indicates a coordinate outside [0,W)x[0,H)
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
	// ErrInvalidSize indicates a non-positive width or height at construction
	ErrInvalidSize = errors.New("grid: width and height must be positive")
)
